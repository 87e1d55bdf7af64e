package alerter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"fallguard-backend/internal/events"
	k "fallguard-backend/internal/kafka"
	"fallguard-backend/internal/notify"
	"fallguard-backend/internal/worker"
)

var (
	ErrReadMessage  = errors.New("error reading message")
	ErrJSONParse    = errors.New("error parsing alert record")
	ErrInvalidAlert = errors.New("invalid alert")
	ErrWriteMessage = errors.New("error writing message")
)

type notifier interface {
	Notify(ctx context.Context, alert notify.Alert) notify.Summary
}

type Config struct {
	Brokers  []string
	GroupID  string
	Topic    string
	Notifier notifier
	Location *time.Location
}

// Alerter consumes fall alerts from Kafka and runs the notification fan-out
// for each one.
type Alerter struct {
	worker   *worker.Worker
	reader   k.Reader
	notifier notifier
	loc      *time.Location
	timeout  time.Duration
}

func New(cfg Config) *Alerter {
	alerter := &Alerter{
		reader:   k.NewReader(cfg.Brokers, cfg.GroupID, cfg.Topic),
		notifier: cfg.Notifier,
		loc:      cfg.Location,
		timeout:  notify.DefaultDeliveryTimeout,
	}
	if alerter.loc == nil {
		alerter.loc = time.UTC
	}

	alerter.worker = worker.New(worker.Config{
		Name:      "alerter-worker",
		Processor: alerter,
	})
	return alerter
}

func (a *Alerter) Run(ctx context.Context) {
	a.worker.Run(ctx)
}

func (a *Alerter) Close(ctx context.Context) {
	slog.InfoContext(ctx, "Closing alerter resources...")
	a.reader.Close()
}

// Auto-commit active
func (a *Alerter) ProcessMessage(ctx context.Context) error {
	const fn = "Alerter:ProcessMessage"
	m, err := a.reader.ReadMessage(ctx)
	if err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrReadMessage, err)
	}
	payload, err := k.ParseAlertRecord(m.Value)
	if err != nil {
		if errors.Is(err, k.ErrInvalidRecord) {
			return fmt.Errorf("%s:%w:%w", fn, ErrInvalidAlert, err)
		}
		return fmt.Errorf("%s:%w:%w", fn, ErrJSONParse, err)
	}
	if payload.Kind != events.KindFall {
		return fmt.Errorf("%s:%w: kind %q", fn, ErrInvalidAlert, payload.Kind)
	}

	alert := notify.Alert{
		EventID:   payload.EventID,
		Magnitude: payload.Magnitude,
		Device:    payload.Device,
		Date:      notify.FormatDate(time.UnixMilli(payload.Timestamp), a.loc),
		ImageURL:  payload.ImageURL,
	}
	deliverCtx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()
	summary := a.notifier.Notify(deliverCtx, alert)
	slog.InfoContext(ctx, "Processed fall alert",
		"event_id", payload.EventID,
		"sent", summary.Sent(),
		"failed", summary.Failed(),
	)
	return nil
}
