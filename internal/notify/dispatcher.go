package notify

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Dispatcher sends events asynchronously so notification latency never
// stalls the probe loop. Wait blocks until in-flight sends finish.
type Dispatcher struct {
	notifier Notifier
	timeout  time.Duration
	log      *zap.Logger
	wg       sync.WaitGroup
}

func NewDispatcher(n Notifier, log *zap.Logger) *Dispatcher {
	return &Dispatcher{notifier: n, timeout: 30 * time.Second, log: log}
}

func (d *Dispatcher) Dispatch(ev Event) {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		defer cancel()
		if err := d.notifier.Send(ctx, ev); err != nil {
			d.log.Warn("notification failed",
				zap.String("event_type", string(ev.Type)),
				zap.String("service", ev.Target.Name),
				zap.Error(err))
		}
	}()
}

func (d *Dispatcher) Wait() {
	d.wg.Wait()
}
