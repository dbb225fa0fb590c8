package probe

import (
	"context"
	"time"

	"github.com/hamed0406/healthchecker/internal/domain"
)

const (
	// DefaultTimeout bounds a single HTTP request.
	DefaultTimeout = 500 * time.Millisecond

	// DefaultMaxLatency is the latency an up endpoint must stay strictly under.
	// It is checked independently of DefaultTimeout.
	DefaultMaxLatency = 500 * time.Millisecond
)

// Kind tells why a probe ended up or down.
type Kind string

const (
	KindUp                  Kind = "up"
	KindDownStatus          Kind = "down_status"
	KindDownLatency         Kind = "down_latency"
	KindDownNetworkError    Kind = "down_network_error"
	KindDownUnexpectedError Kind = "down_unexpected_error"
)

// Verdict is the outcome of a single probe.
//
// Fields:
//   - StatusCode: HTTP status when a response arrived; 0 for transport and
//     request construction failures.
//   - LatencyMS: wall clock from request start to body read (or failure).
//   - Reason: response status line or the failure text.
type Verdict struct {
	Kind       Kind
	StatusCode int
	LatencyMS  float64
	Reason     string
}

// Up is the boolean handed to the aggregator.
func (v Verdict) Up() bool { return v.Kind == KindUp }

// Prober performs one probe of an endpoint. Implementations never fail;
// every problem resolves to a down verdict.
type Prober interface {
	Probe(ctx context.Context, ep domain.Endpoint) Verdict
}

// Classify applies the pass/fail rule to a received response. The status
// rule is checked first, so a slow 503 reports as a status failure.
func Classify(status int, latency, maxLatency time.Duration) Kind {
	if status < 200 || status >= 300 {
		return KindDownStatus
	}
	if latency >= maxLatency {
		return KindDownLatency
	}
	return KindUp
}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
