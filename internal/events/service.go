package events

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"fallguard-backend/internal/devices"
	"fallguard-backend/internal/metrics"

	"github.com/google/uuid"
)

var ErrBlobNotConfigured = errors.New("blob store not configured")

type codeResolver interface {
	ResolveCode(ctx context.Context, code string) (devices.Device, error)
}

type uploader interface {
	Upload(ctx context.Context, name string, data []byte, contentType string) (string, error)
}

// Dispatcher hands a fall event to the notification fan-out. Implementations
// must not block on delivery.
type Dispatcher interface {
	Dispatch(ctx context.Context, event Event) error
}

type Config struct {
	Store      Store
	Resolver   codeResolver
	Blobs      uploader
	Dispatcher Dispatcher
	Now        func() time.Time
}

type Service struct {
	store      Store
	resolver   codeResolver
	blobs      uploader
	dispatcher Dispatcher
	now        func() time.Time
}

func NewService(cfg Config) *Service {
	s := &Service{
		store:      cfg.Store,
		resolver:   cfg.Resolver,
		blobs:      cfg.Blobs,
		dispatcher: cfg.Dispatcher,
		now:        cfg.Now,
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

// Ingest normalises a report, stores it and, for falls, dispatches a
// notification. Only a store failure is returned; pairing-code, image and
// dispatch failures degrade the event instead.
func (s *Service) Ingest(ctx context.Context, report Report) (Event, error) {
	const fn = "Service:Ingest"
	event := Event{
		ID:         uuid.NewString(),
		Kind:       strings.TrimSpace(report.Kind),
		Magnitude:  report.Magnitude,
		Device:     strings.TrimSpace(report.Device),
		CapturedAt: report.CapturedAt,
	}
	if event.Kind == "" {
		event.Kind = KindFall
	}
	if event.Device == "" {
		event.Device = DefaultDevice
	}
	if event.CapturedAt.IsZero() {
		event.CapturedAt = s.now()
	}

	if code := strings.TrimSpace(report.Code); code != "" {
		event.Device, event.DeviceID = s.resolveCode(ctx, code)
	}

	if report.Image != nil {
		event.ImageURL = s.uploadImage(ctx, event, report.Image)
	}

	if err := s.store.Append(ctx, event); err != nil {
		return Event{}, fmt.Errorf("%s:%w", fn, err)
	}
	metrics.EventsIngested.WithLabelValues(metrics.KindLabel(event.Kind), report.Format.String()).Inc()
	slog.InfoContext(ctx, "Event received",
		"event_id", event.ID,
		"kind", event.Kind,
		"magnitude", event.Magnitude,
		"device", event.Device,
		"format", report.Format.String(),
	)

	// Only an explicitly reported fall notifies; a defaulted kind is stored
	// as a fall but stays silent.
	if report.IsFall() && s.dispatcher != nil {
		if err := s.dispatcher.Dispatch(ctx, event); err != nil {
			slog.ErrorContext(ctx, "Error dispatching fall notification", "event_id", event.ID, "error", err)
		}
	}
	return event, nil
}

func (s *Service) Recent(ctx context.Context) ([]Event, error) {
	return s.store.Recent(ctx)
}

// resolveCode maps a pairing code to the registered device. A miss keeps the
// raw code as the device label.
func (s *Service) resolveCode(ctx context.Context, code string) (label, deviceID string) {
	if s.resolver == nil {
		return code, ""
	}
	device, err := s.resolver.ResolveCode(ctx, code)
	if err != nil {
		if !errors.Is(err, devices.ErrUnknownCode) {
			slog.WarnContext(ctx, "Pairing code lookup failed", "code", code, "error", err)
		}
		return code, ""
	}
	return device.Name, device.ID
}

func (s *Service) uploadImage(ctx context.Context, event Event, image *Image) string {
	if s.blobs == nil {
		slog.WarnContext(ctx, "Dropping event image", "event_id", event.ID, "error", ErrBlobNotConfigured)
		metrics.ImageUploadFailures.Inc()
		return ""
	}
	url, err := s.blobs.Upload(ctx, imageName(event, image.ContentType), image.Data, image.ContentType)
	if err != nil {
		slog.WarnContext(ctx, "Dropping event image", "event_id", event.ID, "error", err)
		metrics.ImageUploadFailures.Inc()
		return ""
	}
	return url
}

func imageName(event Event, contentType string) string {
	ext := ".jpg"
	switch contentType {
	case "image/png":
		ext = ".png"
	case "image/gif":
		ext = ".gif"
	case "image/webp":
		ext = ".webp"
	}
	return fmt.Sprintf("%s/%d-%s%s", sanitize(event.Device), event.CapturedAt.UnixMilli(), event.ID, ext)
}

func sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, s)
}
