package types

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

type timeoutError struct {
	op string
}

func (e *timeoutError) Error() string {
	return e.op + " timed out"
}

func TestMatchErrors(t *testing.T) {
	sentinel := errors.New("sentinel")
	other := errors.New("other")

	match := MatchErrors(sentinel)

	assert.True(t, match(sentinel))
	assert.True(t, match(fmt.Errorf("wrapped: %w", sentinel)))
	assert.False(t, match(other))
	assert.False(t, match(nil))
}

func TestMatchErrors_MultipleTargets(t *testing.T) {
	a := errors.New("a")
	b := errors.New("b")

	match := MatchErrors(a, b)

	assert.True(t, match(a))
	assert.True(t, match(b))
	assert.False(t, match(errors.New("c")))
}

func TestMatchOf(t *testing.T) {
	match := MatchOf[*timeoutError]()

	assert.True(t, match(&timeoutError{op: "dial"}))
	assert.True(t, match(fmt.Errorf("attempt failed: %w", &timeoutError{op: "read"})))
	assert.False(t, match(errors.New("plain")))
}

func TestMatchAny(t *testing.T) {
	a := errors.New("a")

	match := MatchAny(MatchErrors(a), MatchOf[*timeoutError](), nil)

	assert.True(t, match(a))
	assert.True(t, match(&timeoutError{op: "poll"}))
	assert.False(t, match(errors.New("unrelated")))
}
