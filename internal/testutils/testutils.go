// Package testutils provides shared helpers for poller tests: a mock clock
// wrapper and a recording logger.
package testutils

import (
	"fmt"
	"sync"
)

// LogRecorder captures log lines emitted through the poll.Logger interface
// so tests can assert on suppression diagnostics.
type LogRecorder struct {
	mu      sync.Mutex
	entries []string
}

// NewLogRecorder creates an empty recorder.
func NewLogRecorder() *LogRecorder {
	return &LogRecorder{}
}

func (r *LogRecorder) record(level, format string, args ...interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, level+": "+fmt.Sprintf(format, args...))
}

// Debugf records a debug line
func (r *LogRecorder) Debugf(format string, args ...interface{}) {
	r.record("DEBUG", format, args...)
}

// Infof records an info line
func (r *LogRecorder) Infof(format string, args ...interface{}) {
	r.record("INFO", format, args...)
}

// Warnf records a warning line
func (r *LogRecorder) Warnf(format string, args ...interface{}) {
	r.record("WARN", format, args...)
}

// Errorf records an error line
func (r *LogRecorder) Errorf(format string, args ...interface{}) {
	r.record("ERROR", format, args...)
}

// Entries returns a copy of the recorded lines in emission order.
func (r *LogRecorder) Entries() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.entries))
	copy(out, r.entries)
	return out
}
