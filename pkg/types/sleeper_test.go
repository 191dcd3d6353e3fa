package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClockSleeper_WaitsOnClockTimer(t *testing.T) {
	sleeper := NewClockSleeper(NewRealClock())

	start := time.Now()
	sleeper.Sleep(10 * time.Millisecond)

	assert.GreaterOrEqual(t, time.Since(start), 10*time.Millisecond)
}

func TestNopSleeper_ReturnsImmediately(t *testing.T) {
	sleeper := NopSleeper()

	start := time.Now()
	sleeper.Sleep(time.Hour)

	assert.Less(t, time.Since(start), time.Second)
}

func TestSleeperFunc(t *testing.T) {
	var got time.Duration
	sleeper := SleeperFunc(func(d time.Duration) { got = d })

	sleeper.Sleep(42 * time.Millisecond)

	assert.Equal(t, 42*time.Millisecond, got)
}

func TestRealClock(t *testing.T) {
	clock := NewRealClock()

	before := time.Now()
	now := clock.Now()
	assert.False(t, now.Before(before))

	assert.GreaterOrEqual(t, clock.Since(before), time.Duration(0))

	timer := clock.NewTimer(time.Millisecond)
	select {
	case <-timer.C():
	case <-time.After(time.Second):
		t.Fatal("timer did not fire")
	}
}
