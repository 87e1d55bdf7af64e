package events

import (
	"encoding/base64"
	"errors"
	"net/http"
	"strings"
	"time"
)

const (
	KindFall = "caida"
	KindTest = "test"

	DefaultDevice = "ESP32-CAM"
)

var ErrInvalidImage = errors.New("invalid image payload")

// Event is one reported fall or test occurrence. Events are immutable once stored.
type Event struct {
	ID           string
	Kind         string
	Magnitude    float64
	Device       string
	DeviceID     string
	ImageURL     string
	CapturedAt   time.Time
	Acknowledged bool
}

// Format tags which ingress encoding a Report was decoded from.
type Format int

const (
	FormatJSON Format = iota
	FormatMultipart
	FormatMQTT
)

func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatMultipart:
		return "multipart"
	case FormatMQTT:
		return "mqtt"
	default:
		return "unknown"
	}
}

// Report is a device-reported event before normalisation.
type Report struct {
	Format     Format
	Kind       string
	Magnitude  float64
	Device     string
	Code       string
	CapturedAt time.Time
	Image      *Image
}

// IsFall reports whether the device explicitly sent a fall kind.
func (r Report) IsFall() bool {
	return strings.TrimSpace(r.Kind) == KindFall
}

type Image struct {
	Data        []byte
	ContentType string
}

// DecodeImage accepts raw base64 or a data URL ("data:image/jpeg;base64,...").
func DecodeImage(encoded string) (*Image, error) {
	encoded = strings.TrimSpace(encoded)
	if encoded == "" {
		return nil, nil
	}
	contentType := ""
	if strings.HasPrefix(encoded, "data:") {
		header, payload, ok := strings.Cut(encoded, ",")
		if !ok || !strings.HasSuffix(header, ";base64") {
			return nil, ErrInvalidImage
		}
		contentType = strings.TrimSuffix(strings.TrimPrefix(header, "data:"), ";base64")
		encoded = payload
	}
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, errors.Join(ErrInvalidImage, err)
	}
	if len(data) == 0 {
		return nil, ErrInvalidImage
	}
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}
	return &Image{Data: data, ContentType: contentType}, nil
}
