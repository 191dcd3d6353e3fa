package poll

import (
	"github.com/jzx17/gopoller/pkg/types"
)

// basePoller holds the state shared by every termination strategy: the
// error allow-list and the diagnostic logger. It is immutable after
// construction.
type basePoller struct {
	matchers []types.ErrorMatcher
	logger   Logger
}

func newBasePoller() *basePoller {
	return &basePoller{logger: defaultLogger()}
}

func (b *basePoller) base() *basePoller {
	return b
}

// suppress reports whether err matches the configured allow-list, emitting
// a warning diagnostic when it does.
func (b *basePoller) suppress(err error) bool {
	for _, match := range b.matchers {
		if match(err) {
			b.logger.Warnf("poller is ignoring the error: %v", err)
			return true
		}
	}
	return false
}
