package poll

import (
	"fmt"

	"github.com/jzx17/gopoller/pkg/types"
)

// CountPoller limits polling by a fixed number of attempts. Attempts run
// back-to-back without pausing; polling stops as soon as the stop predicate
// is satisfied or the budget is exhausted.
type CountPoller struct {
	*basePoller
	count int
}

// NewCountPoller creates a poller with the given attempt budget. The count
// must be positive.
func NewCountPoller(count int, opts ...Option) (*CountPoller, error) {
	if count <= 0 {
		return nil, fmt.Errorf("%w: attempt count must be positive, got %d", types.ErrInvalidConfig, count)
	}

	p := &CountPoller{
		basePoller: newBasePoller(),
		count:      count,
	}
	for _, opt := range opts {
		if err := opt.apply(p); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// Count returns the configured attempt budget.
func (p *CountPoller) Count() int {
	return p.count
}

func (p *CountPoller) loop(step func() (bool, error)) (int, error) {
	attempts := 0
	for i := 0; i < p.count; i++ {
		attempts++
		done, err := step()
		if err != nil {
			return attempts, err
		}
		if done {
			break
		}
	}
	return attempts, nil
}
