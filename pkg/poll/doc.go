// Package poll provides a small polling executor family: repeatedly invoke a
// work function until its output satisfies a stop predicate or a termination
// budget runs out.
//
// Two termination strategies are available:
//
//  1. CountPoller: a fixed attempt budget, attempts run back-to-back.
//  2. IntervalPoller: a wall-clock budget with a fixed delay between
//     attempts, an injectable clock and sleeper, and an optional timeout
//     action.
//
// Basic usage:
//
//	poller, err := poll.NewCountPoller(10)
//	if err != nil {
//		return err
//	}
//
//	n := 0
//	res, err := poll.PollValue(poller, func() (int, error) {
//		n++
//		return n, nil
//	}, func(v int) bool { return v == 6 })
//	// res.Attempts == 6, res.Value == 6
//
// Interval polling with a time budget:
//
//	poller, err := poll.NewIntervalPoller(3*time.Second, 300*time.Millisecond,
//		poll.OnTimeout(func() error {
//			return fmt.Errorf("condition not reached in time")
//		}))
//
// Error suppression:
//
// Errors returned by the work function normally abort the poll and propagate
// to the caller unchanged. Errors matching a configured allow-list are logged
// at warn level and count as a completed, zero-valued attempt instead:
//
//	poller, err := poll.NewCountPoller(5,
//		poll.IgnoreErrors(io.ErrUnexpectedEOF),
//		poll.IgnoreMatching(types.MatchOf[*net.OpError]()))
//
// Exhausting the budget is not an error: the poll returns the last output and
// the attempt count. The interval poller's OnTimeout action can opt in to
// turning a timeout into an error.
//
// Thread safety:
//
// Pollers hold no per-call state, so a configured poller may be shared by
// concurrent callers; each call runs with its own attempt counter and timing
// window on the calling goroutine.
package poll
