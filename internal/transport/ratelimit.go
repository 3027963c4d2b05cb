package transport

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/time/rate"
)

// RateLimitTransport decorates a Transport with a client-side token bucket.
// Send blocks at the network boundary until the limiter grants a slot or the
// context is canceled. It shapes traffic; it never reissues a request.
type RateLimitTransport struct {
	inner   Transport
	limiter *rate.Limiter
}

// WithRateLimit wraps inner with a requests-per-minute throttle.
// rpm <= 0 disables throttling and returns a pass-through decorator.
func WithRateLimit(inner Transport, rpm int) *RateLimitTransport {
	limiter := rate.NewLimiter(rate.Inf, 1)
	if rpm > 0 {
		limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(rpm)), 1)
	}

	return &RateLimitTransport{
		inner:   inner,
		limiter: limiter,
	}
}

// Send waits for limiter capacity, then forwards to the inner transport.
func (r *RateLimitTransport) Send(ctx context.Context, method, url string, body []byte) (*Envelope, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("transport: rate limit wait: %w", err)
	}
	return r.inner.Send(ctx, method, url, body)
}
