package types

import (
	"errors"
)

// Predefined configuration errors. All of them are raised synchronously at
// construction or before the first attempt, never in the middle of a poll.
var (
	// ErrNilFunction indicates the work function was not provided
	ErrNilFunction = errors.New("poll function must not be nil")

	// ErrNilPredicate indicates the stop predicate was not provided
	ErrNilPredicate = errors.New("poll predicate must not be nil")

	// ErrInvalidConfig indicates an invalid poller configuration value
	ErrInvalidConfig = errors.New("invalid poller configuration")
)

// ErrorMatcher reports whether an error returned by the work function should
// be suppressed instead of aborting the poll. A suppressed error still counts
// as a completed attempt with a zero-valued output.
type ErrorMatcher func(error) bool

// MatchErrors builds a matcher that suppresses errors matching any of the
// given targets in the sense of errors.Is.
func MatchErrors(targets ...error) ErrorMatcher {
	return func(err error) bool {
		for _, target := range targets {
			if errors.Is(err, target) {
				return true
			}
		}
		return false
	}
}

// MatchOf builds a matcher that suppresses errors assignable to type E in
// the sense of errors.As. E is typically a pointer to a concrete error type
// or an error interface.
func MatchOf[E error]() ErrorMatcher {
	return func(err error) bool {
		var target E
		return errors.As(err, &target)
	}
}

// MatchAny combines matchers; the result matches when any of them does.
func MatchAny(matchers ...ErrorMatcher) ErrorMatcher {
	return func(err error) bool {
		for _, match := range matchers {
			if match != nil && match(err) {
				return true
			}
		}
		return false
	}
}
