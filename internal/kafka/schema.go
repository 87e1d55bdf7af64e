package kafka

import (
	"encoding/json"
	"errors"
)

var ErrInvalidRecord = errors.New("invalid alert record")

// Alert records are published in the Connect envelope so a JDBC sink can
// archive the topic without a schema registry.
type AlertRecord struct {
	Schema  Schema       `json:"schema"`
	Payload AlertPayload `json:"payload"`
}

type AlertPayload struct {
	EventID   string  `json:"event_id"`
	Kind      string  `json:"kind"`
	Magnitude float64 `json:"magnitude"`
	Device    string  `json:"device"`
	DeviceID  string  `json:"device_id"`
	ImageURL  string  `json:"image_url"`
	Timestamp int64   `json:"timestamp"`
}

type Schema struct {
	Type     string  `json:"type"`
	Name     string  `json:"name"`
	Fields   []Field `json:"fields"`
	Optional bool    `json:"optional"`
}

type Field struct {
	Field    string `json:"field"`
	Type     string `json:"type"`
	Optional bool   `json:"optional,omitempty"`
}

var AlertSchema = Schema{
	Type:     "struct",
	Name:     "FallAlert",
	Optional: false,
	Fields: []Field{
		{Field: "event_id", Type: "string"},
		{Field: "kind", Type: "string"},
		{Field: "magnitude", Type: "double"},
		{Field: "device", Type: "string"},
		{Field: "device_id", Type: "string", Optional: true},
		{Field: "image_url", Type: "string", Optional: true},
		{Field: "timestamp", Type: "int64"},
	},
}

func NewAlertRecord(payload AlertPayload) AlertRecord {
	return AlertRecord{Schema: AlertSchema, Payload: payload}
}

// ParseAlertRecord accepts both the enveloped form and a bare payload.
func ParseAlertRecord(data []byte) (AlertPayload, error) {
	var probe struct {
		Payload json.RawMessage `json:"payload"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return AlertPayload{}, err
	}
	raw := data
	if len(probe.Payload) > 0 {
		raw = probe.Payload
	}
	var payload AlertPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return AlertPayload{}, err
	}
	if payload.EventID == "" {
		return AlertPayload{}, ErrInvalidRecord
	}
	return payload, nil
}
