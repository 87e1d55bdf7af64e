package alerter

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"fallguard-backend/internal/events"
	k "fallguard-backend/internal/kafka"

	kafkago "github.com/segmentio/kafka-go"
)

const DefaultPublishTimeout = 10 * time.Second

// Publisher hands fall events to the alerter over Kafka. It satisfies
// events.Dispatcher: the write runs in the background, detached from the
// caller's context, and failures are only logged.
type Publisher struct {
	writer  k.Writer
	timeout time.Duration
	wg      sync.WaitGroup
}

func NewPublisher(brokers []string, topic string) *Publisher {
	return newPublisher(k.NewWriter(brokers, topic))
}

func newPublisher(writer k.Writer) *Publisher {
	return &Publisher{writer: writer, timeout: DefaultPublishTimeout}
}

func (p *Publisher) Dispatch(ctx context.Context, event events.Event) error {
	const fn = "Publisher:Dispatch"
	record := k.NewAlertRecord(k.AlertPayload{
		EventID:   event.ID,
		Kind:      event.Kind,
		Magnitude: event.Magnitude,
		Device:    event.Device,
		DeviceID:  event.DeviceID,
		ImageURL:  event.ImageURL,
		Timestamp: event.CapturedAt.UnixMilli(),
	})
	out, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrWriteMessage, err)
	}
	msg := kafkago.Message{Key: []byte(event.Device), Value: out}

	detached := context.WithoutCancel(ctx)
	p.wg.Go(func() {
		ctx, cancel := context.WithTimeout(detached, p.timeout)
		defer cancel()
		if err := p.writer.WriteMessages(ctx, msg); err != nil {
			slog.ErrorContext(ctx, "Error publishing fall alert", "event_id", event.ID,
				"error", fmt.Errorf("%s:%w:%w", fn, ErrWriteMessage, err))
			return
		}
		slog.InfoContext(ctx, "Published fall alert", "event_id", event.ID, "device", event.Device)
	})
	return nil
}

// Wait blocks until in-flight publishes finish.
func (p *Publisher) Wait() {
	p.wg.Wait()
}

func (p *Publisher) Close(ctx context.Context) {
	slog.InfoContext(ctx, "Closing publisher resources...")
	p.wg.Wait()
	p.writer.Close()
}
