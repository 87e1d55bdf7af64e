package notify

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"fallguard-backend/internal/events"
	"fallguard-backend/internal/metrics"
)

// Alert is the data a channel renders into a message.
type Alert struct {
	EventID   string
	Magnitude float64
	Device    string
	Date      string
	ImageURL  string
}

// NewAlert renders the event's capture time in loc.
func NewAlert(event events.Event, loc *time.Location) Alert {
	if loc == nil {
		loc = time.UTC
	}
	return Alert{
		EventID:   event.ID,
		Magnitude: event.Magnitude,
		Device:    event.Device,
		Date:      FormatDate(event.CapturedAt, loc),
		ImageURL:  event.ImageURL,
	}
}

// FormatDate renders t the way the dashboard shows dates (dd/mm/yyyy, hh:mm:ss).
func FormatDate(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("02/01/2006, 15:04:05")
}

// Channel delivers an alert to one recipient.
type Channel interface {
	Name() string
	Recipients() []string
	Send(ctx context.Context, recipient string, alert Alert) error
}

type Result struct {
	Channel   string
	Recipient string
	Err       error
}

type Summary struct {
	EventID string
	Results []Result
}

func (s Summary) Sent() int {
	n := 0
	for _, r := range s.Results {
		if r.Err == nil {
			n++
		}
	}
	return n
}

func (s Summary) Failed() int {
	return len(s.Results) - s.Sent()
}

// Fanout sends one alert over every configured channel. Channels run
// concurrently; recipients within a channel are attempted in order, once each.
type Fanout struct {
	channels []Channel
}

func NewFanout(channels ...Channel) *Fanout {
	return &Fanout{channels: channels}
}

func (f *Fanout) Enabled() bool {
	return len(f.channels) > 0
}

// Notify never fails: each delivery error is logged and recorded in the summary.
func (f *Fanout) Notify(ctx context.Context, alert Alert) Summary {
	var (
		mu      sync.Mutex
		wg      sync.WaitGroup
		results []Result
	)
	for _, ch := range f.channels {
		wg.Go(func() {
			for _, recipient := range ch.Recipients() {
				res := f.deliver(ctx, ch, recipient, alert)
				mu.Lock()
				results = append(results, res)
				mu.Unlock()
			}
		})
	}
	wg.Wait()

	summary := Summary{EventID: alert.EventID, Results: results}
	slog.InfoContext(ctx, "Notification fan-out complete",
		"event_id", alert.EventID,
		"sent", summary.Sent(),
		"failed", summary.Failed(),
	)
	return summary
}

func (f *Fanout) deliver(ctx context.Context, ch Channel, recipient string, alert Alert) (res Result) {
	res = Result{Channel: ch.Name(), Recipient: recipient}
	defer func() {
		if r := recover(); r != nil {
			res.Err = &panicError{value: r}
		}
		outcome := "sent"
		if res.Err != nil {
			outcome = "failed"
			slog.ErrorContext(ctx, "Notification delivery failed",
				"event_id", alert.EventID,
				"channel", res.Channel,
				"recipient", recipient,
				"error", res.Err,
			)
		}
		metrics.Notifications.WithLabelValues(res.Channel, outcome).Inc()
	}()
	res.Err = ch.Send(ctx, recipient, alert)
	return res
}

type panicError struct {
	value any
}

func (e *panicError) Error() string {
	return fmt.Sprintf("channel panicked: %v", e.value)
}
