package worker

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

const DefaultErrorBackoff = time.Second

type Config struct {
	Name      string
	Processor Processor
	// ErrorBackoff is the pause after a failed message. Zero uses
	// DefaultErrorBackoff.
	ErrorBackoff time.Duration
}

type Processor interface {
	ProcessMessage(ctx context.Context) error
}

// Worker drives a Processor until its context is cancelled. A failing
// message is logged and the loop pauses before the next one, so an
// unreachable broker does not spin.
type Worker struct {
	name      string
	processor Processor
	backoff   time.Duration
	failures  int
}

func New(cfg Config) *Worker {
	w := &Worker{
		name:      cfg.Name,
		processor: cfg.Processor,
		backoff:   cfg.ErrorBackoff,
	}
	if w.backoff <= 0 {
		w.backoff = DefaultErrorBackoff
	}
	return w
}

func (w *Worker) Run(ctx context.Context) {
	slog.InfoContext(ctx, "Worker started...", "worker", w.name)
	for {
		select {
		case <-ctx.Done():
			slog.InfoContext(ctx, "Worker stopped...", "worker", w.name, "failures", w.failures)
			return
		default:
			err := w.processor.ProcessMessage(ctx)
			if err == nil || errors.Is(err, context.Canceled) {
				continue
			}
			w.failures++
			slog.ErrorContext(ctx, "Error processing message", "worker", w.name, "error", err)
			w.pause(ctx)
		}
	}
}

func (w *Worker) pause(ctx context.Context) {
	t := time.NewTimer(w.backoff)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
