package poll

import (
	"github.com/jzx17/gopoller/pkg/types"
)

// Func is the work function polled against an input of type A.
type Func[A, B any] func(A) (B, error)

// Predicate reports whether a work function output satisfies the stop
// condition.
type Predicate[B any] func(B) bool

// PollResult records the outcome of a single poll run.
type PollResult[T any] struct {
	// Attempts is the number of work function invocations performed, >= 1.
	Attempts int

	// Value is the output of the last attempt. It is the zero value when the
	// last attempt's error was suppressed.
	Value T
}

// Poller is the termination strategy shared by CountPoller and
// IntervalPoller. Polling itself happens through the package-level Poll
// functions because methods cannot introduce type parameters.
type Poller interface {
	// loop drives step until it reports done, fails, or the strategy's
	// budget runs out, returning the number of attempts made.
	loop(step func() (bool, error)) (int, error)

	// base exposes the shared suppression and logging state.
	base() *basePoller
}

// Poll repeatedly obtains a fresh input from supply, invokes fn on it and
// tests pred against the output, until pred is satisfied or the poller's
// budget runs out. A nil supply provides the zero value of A on every
// attempt.
//
// Errors from fn matching the poller's allow-list are suppressed: logged,
// counted as a zero-valued attempt, and never treated as success. Any other
// error aborts the poll and is returned unchanged with a zero PollResult.
func Poll[A, B any](p Poller, supply func() A, fn Func[A, B], pred Predicate[B]) (PollResult[B], error) {
	if fn == nil {
		return PollResult[B]{}, types.ErrNilFunction
	}
	if pred == nil {
		return PollResult[B]{}, types.ErrNilPredicate
	}
	if supply == nil {
		supply = func() A {
			var zero A
			return zero
		}
	}

	b := p.base()
	var out B
	attempts, err := p.loop(func() (bool, error) {
		v, err := fn(supply())
		if err != nil {
			if !b.suppress(err) {
				return false, err
			}
			// suppressed attempt: zero output, no predicate test
			var zero B
			out = zero
			return false, nil
		}
		out = v
		return pred(v), nil
	})
	if err != nil {
		return PollResult[B]{}, err
	}
	return PollResult[B]{Attempts: attempts, Value: out}, nil
}

// PollValue polls a supplier-less work function until pred is satisfied or
// the poller's budget runs out.
func PollValue[B any](p Poller, fn func() (B, error), pred Predicate[B]) (PollResult[B], error) {
	if fn == nil {
		return PollResult[B]{}, types.ErrNilFunction
	}
	return Poll(p, nil, func(struct{}) (B, error) { return fn() }, pred)
}

// PollUntil runs a side-effecting action until done reports true or the
// poller's budget runs out, returning the number of attempts made.
func PollUntil(p Poller, run func() error, done func() bool) (int, error) {
	if run == nil {
		return 0, types.ErrNilFunction
	}
	if done == nil {
		return 0, types.ErrNilPredicate
	}
	res, err := Poll(p, nil,
		func(struct{}) (struct{}, error) { return struct{}{}, run() },
		func(struct{}) bool { return done() })
	return res.Attempts, err
}
