package latency

import (
	"context"
	"time"

	"github.com/dharmasatrya/travelsim/internal/random"
)

// Range is a simulated response delay. The zero value disables it.
type Range struct {
	Min time.Duration
	Max time.Duration
}

func Disabled() Range {
	return Range{}
}

func (r Range) Enabled() bool {
	return r.Max > 0
}

// Draw picks a delay in [Min,Max].
func (r Range) Draw(src *random.Source) time.Duration {
	if !r.Enabled() {
		return 0
	}
	if r.Max <= r.Min {
		return r.Max
	}
	return r.Min + time.Duration(src.Uniform(0, float64(r.Max-r.Min)))
}

// Wait blocks for a drawn delay or until ctx is done.
func (r Range) Wait(ctx context.Context, src *random.Source) error {
	delay := r.Draw(src)
	if delay <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
