package poll

import (
	"fmt"

	"github.com/jzx17/gopoller/pkg/types"
)

// Option is a configuration option accepted by the poller constructors.
// Options are validated as they are applied; an invalid value fails the
// construction immediately rather than surfacing during a poll.
type Option interface {
	apply(Poller) error
}

// baseOption configures the state shared by all pollers.
type baseOption func(*basePoller) error

func (o baseOption) apply(p Poller) error {
	return o(p.base())
}

// intervalOption configures knobs that only exist on the interval poller.
type intervalOption func(*IntervalPoller) error

func (o intervalOption) apply(p Poller) error {
	ip, ok := p.(*IntervalPoller)
	if !ok {
		return fmt.Errorf("%w: option applies only to interval pollers", types.ErrInvalidConfig)
	}
	return o(ip)
}

// WithLogger sets the diagnostic logger.
func WithLogger(logger Logger) Option {
	return baseOption(func(b *basePoller) error {
		if logger == nil {
			return fmt.Errorf("%w: logger must not be nil", types.ErrInvalidConfig)
		}
		b.logger = logger
		return nil
	})
}

// IgnoreErrors adds the given error targets to the allow-list; work function
// errors matching any of them (errors.Is) are suppressed instead of aborting
// the poll.
func IgnoreErrors(targets ...error) Option {
	return baseOption(func(b *basePoller) error {
		for _, target := range targets {
			if target == nil {
				return fmt.Errorf("%w: ignored error must not be nil", types.ErrInvalidConfig)
			}
		}
		b.matchers = append(b.matchers, types.MatchErrors(targets...))
		return nil
	})
}

// IgnoreMatching adds matcher predicates to the allow-list.
func IgnoreMatching(matchers ...types.ErrorMatcher) Option {
	return baseOption(func(b *basePoller) error {
		for _, match := range matchers {
			if match == nil {
				return fmt.Errorf("%w: error matcher must not be nil", types.ErrInvalidConfig)
			}
		}
		b.matchers = append(b.matchers, matchers...)
		return nil
	})
}

// WithClock sets the clock used to track the interval poller's time budget.
func WithClock(clock types.Clock) Option {
	return intervalOption(func(p *IntervalPoller) error {
		if clock == nil {
			return fmt.Errorf("%w: clock must not be nil", types.ErrInvalidConfig)
		}
		p.clock = clock
		return nil
	})
}

// WithSleeper sets the sleeper used to pause between interval poll attempts.
func WithSleeper(sleeper types.Sleeper) Option {
	return intervalOption(func(p *IntervalPoller) error {
		if sleeper == nil {
			return fmt.Errorf("%w: sleeper must not be nil", types.ErrInvalidConfig)
		}
		p.sleeper = sleeper
		return nil
	})
}

// OnTimeout sets an action invoked exactly once, synchronously, when the
// interval poller's time budget runs out without success. A non-nil error
// returned by the action propagates out of the poll, converting the timeout
// into a failure.
func OnTimeout(action func() error) Option {
	return intervalOption(func(p *IntervalPoller) error {
		if action == nil {
			return fmt.Errorf("%w: timeout action must not be nil", types.ErrInvalidConfig)
		}
		p.onTimeout = action
		return nil
	})
}
