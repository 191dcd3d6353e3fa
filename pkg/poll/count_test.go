package poll

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jzx17/gopoller/internal/testutils"
	"github.com/jzx17/gopoller/pkg/types"
)

func TestCountPoller_SucceedsOnSixthAttempt(t *testing.T) {
	poller, err := NewCountPoller(10)
	require.NoError(t, err)

	n := 0
	res, err := PollValue(poller, func() (int, error) {
		n++
		return n, nil
	}, func(v int) bool { return v == 6 })

	require.NoError(t, err)
	assert.Equal(t, 6, res.Attempts)
	assert.Equal(t, 6, res.Value)
}

func TestCountPoller_ExhaustsBudget(t *testing.T) {
	poller, err := NewCountPoller(4)
	require.NoError(t, err)

	n := 0
	res, err := PollValue(poller, func() (int, error) {
		n++
		return n, nil
	}, func(v int) bool { return false })

	require.NoError(t, err)
	assert.Equal(t, 4, res.Attempts)
	assert.Equal(t, 4, res.Value, "exhaustion returns the last output")
}

func TestCountPoller_SingleAttempt(t *testing.T) {
	poller, err := NewCountPoller(1)
	require.NoError(t, err)

	invocations := 0
	res, err := PollValue(poller, func() (string, error) {
		invocations++
		return "once", nil
	}, func(string) bool { return false })

	require.NoError(t, err)
	assert.Equal(t, 1, invocations)
	assert.Equal(t, 1, res.Attempts)
	assert.Equal(t, "once", res.Value)
}

func TestCountPoller_InvalidCount(t *testing.T) {
	for _, count := range []int{0, -1, -100} {
		_, err := NewCountPoller(count)
		require.Error(t, err, "count %d", count)
		assert.ErrorIs(t, err, types.ErrInvalidConfig)
	}
}

func TestCountPoller_SuppressedErrorsExhaustBudget(t *testing.T) {
	flaky := errors.New("resource not ready")
	logger := testutils.NewLogRecorder()

	poller, err := NewCountPoller(5,
		IgnoreErrors(flaky),
		WithLogger(logger))
	require.NoError(t, err)

	invocations := 0
	res, err := PollValue(poller, func() (int, error) {
		invocations++
		return 0, flaky
	}, func(v int) bool { return v > 0 })

	require.NoError(t, err, "suppressed errors complete the poll instead of propagating")
	assert.Equal(t, 5, invocations)
	assert.Equal(t, 5, res.Attempts)
	assert.Zero(t, res.Value)
	assert.Len(t, logger.Entries(), 5, "each suppressed error is logged")
}

func TestCountPoller_SuppressedThenSuccess(t *testing.T) {
	flaky := errors.New("warming up")
	poller, err := NewCountPoller(10, IgnoreErrors(flaky))
	require.NoError(t, err)

	n := 0
	res, err := PollValue(poller, func() (int, error) {
		n++
		if n <= 2 {
			return 0, flaky
		}
		return n, nil
	}, func(v int) bool { return v >= 3 })

	require.NoError(t, err)
	assert.Equal(t, 3, res.Attempts)
	assert.Equal(t, 3, res.Value)
}

func TestCountPoller_UnmatchedErrorPropagates(t *testing.T) {
	ignored := errors.New("ignored kind")
	fatal := errors.New("boom")

	poller, err := NewCountPoller(10, IgnoreErrors(ignored))
	require.NoError(t, err)

	invocations := 0
	res, err := PollValue(poller, func() (int, error) {
		invocations++
		return 0, fatal
	}, func(int) bool { return true })

	require.ErrorIs(t, err, fatal)
	assert.Equal(t, 1, invocations, "remaining budget is abandoned")
	assert.Zero(t, res)
}

func TestCountPoller_WrappedErrorMatchesAllowList(t *testing.T) {
	base := errors.New("connection refused")
	poller, err := NewCountPoller(3, IgnoreErrors(base))
	require.NoError(t, err)

	res, err := PollValue(poller, func() (int, error) {
		return 0, fmt.Errorf("dial target: %w", base)
	}, func(int) bool { return true })

	require.NoError(t, err)
	assert.Equal(t, 3, res.Attempts)
}

func TestCountPoller_PredicateSkippedOnSuppressedAttempts(t *testing.T) {
	flaky := errors.New("not yet")
	poller, err := NewCountPoller(3, IgnoreErrors(flaky))
	require.NoError(t, err)

	predicateCalls := 0
	_, err = PollValue(poller, func() (int, error) {
		return 0, flaky
	}, func(int) bool {
		predicateCalls++
		return true
	})

	require.NoError(t, err)
	assert.Zero(t, predicateCalls, "a suppressed attempt never advances toward success")
}
