package notify

import (
	"context"
	"sync"
	"time"

	"fallguard-backend/internal/events"
)

const DefaultDeliveryTimeout = 30 * time.Second

// AsyncDispatcher runs the fan-out on a background goroutine detached from
// the request that produced the event.
type AsyncDispatcher struct {
	fanout  *Fanout
	loc     *time.Location
	timeout time.Duration
	wg      sync.WaitGroup
}

func NewAsyncDispatcher(fanout *Fanout, loc *time.Location) *AsyncDispatcher {
	return &AsyncDispatcher{fanout: fanout, loc: loc, timeout: DefaultDeliveryTimeout}
}

func (d *AsyncDispatcher) Dispatch(ctx context.Context, event events.Event) error {
	if !d.fanout.Enabled() {
		return nil
	}
	alert := NewAlert(event, d.loc)
	detached := context.WithoutCancel(ctx)
	d.wg.Go(func() {
		ctx, cancel := context.WithTimeout(detached, d.timeout)
		defer cancel()
		d.fanout.Notify(ctx, alert)
	})
	return nil
}

// Wait blocks until in-flight deliveries finish.
func (d *AsyncDispatcher) Wait() {
	d.wg.Wait()
}
