package types

import "time"

// Sleeper pauses the calling goroutine between poll attempts.
// Implementations shared across concurrent poll calls must be thread-safe.
type Sleeper interface {
	Sleep(d time.Duration)
}

// SleeperFunc adapts a function to the Sleeper interface.
type SleeperFunc func(d time.Duration)

// Sleep calls f(d).
func (f SleeperFunc) Sleep(d time.Duration) {
	f(d)
}

// NewClockSleeper returns a Sleeper that waits on a timer from the given
// clock. Pairing the sleeper with a mock clock makes poll timing fully
// controllable under test.
func NewClockSleeper(clock Clock) Sleeper {
	return SleeperFunc(func(d time.Duration) {
		timer := clock.NewTimer(d)
		<-timer.C()
	})
}

// NopSleeper returns a Sleeper that returns immediately without pausing.
// Useful in tests and for callers that want back-to-back attempts with a
// wall-clock budget.
func NopSleeper() Sleeper {
	return SleeperFunc(func(time.Duration) {})
}
