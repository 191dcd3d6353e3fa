package waitfor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/jzx17/gopoller/pkg/poll"
	"github.com/jzx17/gopoller/pkg/types"
)

// maxBodyBytes caps how much of a response body is read when evaluating
// conditions.
const maxBodyBytes = 1 << 20

// Observation is the outcome of a single probe attempt.
type Observation struct {
	// StatusCode is the HTTP status of the attempt, 0 when the request
	// itself failed.
	StatusCode int

	// Ready reports whether the target's condition held.
	Ready bool

	// Detail explains why the condition did not hold.
	Detail string
}

// Probe checks a single target.
type Probe struct {
	target Target
	client *http.Client
}

// NewProbe creates a probe for the target. A nil client falls back to a
// default client with a per-request timeout derived from the poll interval.
func NewProbe(target Target, client *http.Client) *Probe {
	if client == nil {
		timeout := target.Interval.Duration()
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		client = &http.Client{Timeout: timeout}
	}
	return &Probe{target: target, client: client}
}

// Check performs one request against the target and evaluates its condition.
// Transport-level failures are returned as errors; condition mismatches are
// reported through the Observation so the poller keeps attempting.
func (p *Probe) Check(ctx context.Context) (Observation, error) {
	req, err := http.NewRequestWithContext(ctx, p.target.Method, p.target.URL, nil)
	if err != nil {
		return Observation{}, err
	}
	for k, v := range p.target.Headers {
		req.Header.Set(k, v)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return Observation{}, err
	}
	defer resp.Body.Close()

	obs := Observation{StatusCode: resp.StatusCode}

	if resp.StatusCode != p.target.Status {
		obs.Detail = fmt.Sprintf("status %d, want %d", resp.StatusCode, p.target.Status)
		return obs, nil
	}

	if p.target.Contains == "" && p.target.JSONPath == "" {
		obs.Ready = true
		return obs, nil
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return Observation{}, err
	}

	if p.target.Contains != "" && !strings.Contains(string(body), p.target.Contains) {
		obs.Detail = fmt.Sprintf("body does not contain %q", p.target.Contains)
		return obs, nil
	}

	if p.target.JSONPath != "" {
		got := gjson.GetBytes(body, p.target.JSONPath)
		if !got.Exists() {
			obs.Detail = fmt.Sprintf("json path %q not found", p.target.JSONPath)
			return obs, nil
		}
		if got.String() != p.target.Equals {
			obs.Detail = fmt.Sprintf("json path %q is %q, want %q", p.target.JSONPath, got.String(), p.target.Equals)
			return obs, nil
		}
	}

	obs.Ready = true
	return obs, nil
}

// ErrTimeout is returned by Wait when a target does not become ready within
// its time budget.
var ErrTimeout = errors.New("target did not become ready in time")

// Wait polls the target until it reports ready or the target's time budget
// runs out, in which case an error wrapping ErrTimeout is returned.
//
// Transport errors (connection refused, DNS failures, request timeouts) are
// suppressed between attempts: a target that is still starting up looks
// exactly like one that is slow to become healthy.
func Wait(ctx context.Context, target Target, logger poll.Logger, client *http.Client) (poll.PollResult[Observation], error) {
	opts := []poll.Option{
		poll.IgnoreMatching(types.MatchOf[*url.Error]()),
		poll.OnTimeout(func() error {
			return fmt.Errorf("%w: %s after %s", ErrTimeout, target.Name, target.Timeout.Duration())
		}),
	}
	if logger != nil {
		opts = append(opts, poll.WithLogger(logger))
	}

	poller, err := poll.NewIntervalPoller(target.Timeout.Duration(), target.Interval.Duration(), opts...)
	if err != nil {
		return poll.PollResult[Observation]{}, err
	}

	probe := NewProbe(target, client)
	return poll.PollValue(poller, func() (Observation, error) {
		return probe.Check(ctx)
	}, func(obs Observation) bool {
		return obs.Ready
	})
}
