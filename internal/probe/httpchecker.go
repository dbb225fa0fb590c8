package probe

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/hamed0406/healthchecker/internal/domain"
)

// maxDrain caps how much of a response body is read before it is discarded.
const maxDrain = 1 << 20

type HTTPChecker struct {
	Client      *http.Client
	MaxLatency  time.Duration
	DiagnoseDNS bool // classify DNS for the host after a network failure
	Logger      *zap.Logger
}

func NewHTTPChecker(logger *zap.Logger, timeout time.Duration) *HTTPChecker {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HTTPChecker{
		Client:     &http.Client{Timeout: timeout},
		MaxLatency: DefaultMaxLatency,
		Logger:     logger,
	}
}

// Probe sends one request for ep and classifies it. It never returns an
// error and recovers from panics raised while probing.
func (h *HTTPChecker) Probe(ctx context.Context, ep domain.Endpoint) (v Verdict) {
	label := ep.Label()
	start := time.Now()
	log := h.logger()

	defer func() {
		if r := recover(); r != nil {
			v = Verdict{
				Kind:      KindDownUnexpectedError,
				LatencyMS: millis(time.Since(start)),
				Reason:    fmt.Sprint(r),
			}
			h.logUnexpected(label, v)
		}
		log.Debug("probe_result",
			zap.String("endpoint", label),
			zap.Int("status", v.StatusCode),
			zap.Float64("latency_ms", v.LatencyMS),
			zap.Bool("up", v.Up()),
			zap.String("kind", string(v.Kind)),
			zap.String("reason", v.Reason),
		)
	}()

	req, err := newRequest(ctx, ep)
	if err != nil {
		v = Verdict{Kind: KindDownUnexpectedError, LatencyMS: millis(time.Since(start)), Reason: err.Error()}
		h.logUnexpected(label, v)
		return v
	}

	resp, err := h.Client.Do(req)
	if err != nil {
		v = Verdict{Kind: KindDownNetworkError, LatencyMS: millis(time.Since(start)), Reason: err.Error()}
		h.logNetwork(ctx, ep, &v)
		return v
	}
	defer resp.Body.Close()

	_, err = io.Copy(io.Discard, io.LimitReader(resp.Body, maxDrain))
	latency := time.Since(start)
	if err != nil {
		v = Verdict{
			Kind:       KindDownNetworkError,
			StatusCode: resp.StatusCode,
			LatencyMS:  millis(latency),
			Reason:     err.Error(),
		}
		h.logNetwork(ctx, ep, &v)
		return v
	}

	return Verdict{
		Kind:       Classify(resp.StatusCode, latency, h.maxLatency()),
		StatusCode: resp.StatusCode,
		LatencyMS:  millis(latency),
		Reason:     resp.Status,
	}
}

func (h *HTTPChecker) maxLatency() time.Duration {
	if h.MaxLatency <= 0 {
		return DefaultMaxLatency
	}
	return h.MaxLatency
}

func (h *HTTPChecker) logger() *zap.Logger {
	if h.Logger == nil {
		return zap.NewNop()
	}
	return h.Logger
}

// logNetwork reports a transport failure at warn. A failure caused by the
// caller cancelling ctx is shutdown, not an outage, and stays at debug.
func (h *HTTPChecker) logNetwork(ctx context.Context, ep domain.Endpoint, v *Verdict) {
	if ctx.Err() != nil {
		h.logger().Debug("probe_cancelled",
			zap.String("endpoint", ep.Label()),
			zap.String("reason", v.Reason),
		)
		return
	}
	fields := []zap.Field{
		zap.String("endpoint", ep.Label()),
		zap.String("reason", v.Reason),
	}
	if h.DiagnoseDNS {
		dctx, cancel := context.WithTimeout(ctx, h.Client.Timeout)
		dns := CheckDNS(dctx, hostOf(ep.URL))
		cancel()
		v.Reason = fmt.Sprintf("%s dns=%s", v.Reason, dns.Class)
		fields = append(fields,
			zap.String("dns_class", dns.Class),
			zap.Strings("nameservers", dns.Nameservers),
			zap.String("resolver_error", dns.ResolverError),
		)
	}
	h.logger().Warn("probe_network_error", fields...)
}

func (h *HTTPChecker) logUnexpected(label string, v Verdict) {
	h.logger().Error("probe_unexpected_error",
		zap.String("endpoint", label),
		zap.String("reason", v.Reason),
	)
}

// newRequest builds the request for ep. A body, when set, must be JSON; it is
// re-encoded and sent as application/json. Configured headers win over the
// default content type.
func newRequest(ctx context.Context, ep domain.Endpoint) (*http.Request, error) {
	var body io.Reader
	var isJSON bool
	if ep.Body != "" {
		var payload any
		if err := json.Unmarshal([]byte(ep.Body), &payload); err != nil {
			return nil, fmt.Errorf("parse body: %w", err)
		}
		if payload != nil {
			b, err := json.Marshal(payload)
			if err != nil {
				return nil, fmt.Errorf("encode body: %w", err)
			}
			body = bytes.NewReader(b)
			isJSON = true
		}
	}

	req, err := http.NewRequestWithContext(ctx, ep.HTTPMethod(), ep.URL, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if isJSON {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, val := range ep.Headers {
		req.Header.Set(k, val)
	}
	return req, nil
}

// hostOf pulls the hostname (no port) from a URL string.
func hostOf(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Hostname() == "" {
		return raw
	}
	return u.Hostname()
}

var _ Prober = (*HTTPChecker)(nil)
