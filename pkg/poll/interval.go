package poll

import (
	"fmt"
	"time"

	"github.com/jzx17/gopoller/pkg/types"
)

// IntervalPoller limits polling by a wall-clock budget, pausing for a fixed
// interval between attempts. The clock and sleeper are injectable to keep
// the timing deterministic under test.
//
// The deadline check looks one interval ahead before sleeping: polling stops
// when now+interval would pass start+duration. The poller therefore never
// sleeps past the deadline and prefers declaring timeout slightly early over
// a late extra attempt.
type IntervalPoller struct {
	*basePoller
	clock     types.Clock
	duration  time.Duration
	interval  time.Duration
	sleeper   types.Sleeper
	onTimeout func() error
}

// NewIntervalPoller creates a poller with the given wall-clock budget and
// delay between attempts. Both durations must be non-negative; a zero
// duration with a zero interval degenerates to a single attempt followed by
// an immediate timeout.
//
// Unless overridden with WithSleeper, pauses run on a sleeper derived from
// the poller's clock, so substituting a mock clock controls the sleeps too.
func NewIntervalPoller(duration, interval time.Duration, opts ...Option) (*IntervalPoller, error) {
	if duration < 0 {
		return nil, fmt.Errorf("%w: duration must not be negative, got %s", types.ErrInvalidConfig, duration)
	}
	if interval < 0 {
		return nil, fmt.Errorf("%w: interval must not be negative, got %s", types.ErrInvalidConfig, interval)
	}

	p := &IntervalPoller{
		basePoller: newBasePoller(),
		clock:      types.NewRealClock(),
		duration:   duration,
		interval:   interval,
	}
	for _, opt := range opts {
		if err := opt.apply(p); err != nil {
			return nil, err
		}
	}
	if p.sleeper == nil {
		p.sleeper = types.NewClockSleeper(p.clock)
	}
	return p, nil
}

// Duration returns the configured wall-clock budget.
func (p *IntervalPoller) Duration() time.Duration {
	return p.duration
}

// Interval returns the configured delay between attempts.
func (p *IntervalPoller) Interval() time.Duration {
	return p.interval
}

func (p *IntervalPoller) loop(step func() (bool, error)) (int, error) {
	attempts := 0
	deadline := p.clock.Now().Add(p.duration)
	for {
		attempts++

		done, err := step()
		if err != nil {
			return attempts, err
		}
		if done {
			return attempts, nil
		}

		// Stop before sleeping would overrun the budget.
		if p.clock.Now().Add(p.interval).After(deadline) {
			if p.onTimeout != nil {
				if err := p.onTimeout(); err != nil {
					return attempts, err
				}
			}
			return attempts, nil
		}

		p.sleeper.Sleep(p.interval)
	}
}
