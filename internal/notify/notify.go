package notify

import (
	"context"
	"time"

	"go.uber.org/multierr"

	"github.com/hamed0406/ewsmon/internal/domain"
)

// Event describes one confirmed state change of a target.
type Event struct {
	Type       domain.EventType
	Target     domain.Target
	HTTPStatus *int
	DurationMS *float64
	Reason     string
	When       time.Time
}

type Notifier interface {
	Send(ctx context.Context, ev Event) error
}

// Multi fans an event out to every channel. All channels are attempted
// even when earlier ones fail; the errors are combined.
type Multi []Notifier

func (m Multi) Send(ctx context.Context, ev Event) error {
	var errs error
	for _, n := range m {
		if n == nil {
			continue
		}
		errs = multierr.Append(errs, n.Send(ctx, ev))
	}
	return errs
}
