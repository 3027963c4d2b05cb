package transport

import (
	"context"
	"errors"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/sony/gobreaker/v2"

	"github.com/authpipe/authpipe/internal/config"
)

// BreakerTransport decorates a Transport with a sony/gobreaker circuit
// breaker. An open circuit short-circuits the call with ErrCircuitOpen before
// any request is issued; it never retries. Callers see an open circuit as an
// opaque transport failure.
type BreakerTransport struct {
	inner Transport
	cb    *gobreaker.TwoStepCircuitBreaker[struct{}]
}

// WithBreaker wraps inner with a circuit breaker configured from cfg.
func WithBreaker(inner Transport, cfg config.BreakerConfig, logger *zerolog.Logger) *BreakerTransport {
	failureThreshold := cfg.GetFailureThreshold()

	settings := gobreaker.Settings{
		Name:    "authpipe-transport",
		Timeout: cfg.GetOpenDuration(),
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= uint32(failureThreshold) //nolint:gosec // GetFailureThreshold is positive
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			if logger == nil {
				return
			}
			event := logger.Info()
			if to == gobreaker.StateOpen {
				event = logger.Warn()
			}
			event.
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("circuit breaker state change")
		},
		IsSuccessful: func(err error) bool {
			return !countsAsFailure(err)
		},
	}

	return &BreakerTransport{
		inner: inner,
		cb:    gobreaker.NewTwoStepCircuitBreaker[struct{}](settings),
	}
}

// Send forwards to the inner transport when the circuit allows it.
func (b *BreakerTransport) Send(ctx context.Context, method, url string, body []byte) (*Envelope, error) {
	done, err := b.cb.Allow()
	if err != nil {
		return nil, ErrCircuitOpen
	}

	envelope, err := b.inner.Send(ctx, method, url, body)
	done(err)

	return envelope, err
}

// countsAsFailure decides which outcomes trip the breaker. Structured 4xx
// failures are well-formed server answers and leave the circuit alone; 5xx,
// 429 and opaque failures count.
func countsAsFailure(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) {
		return false
	}
	if statusErr, ok := AsStatusError(err); ok {
		return statusErr.Status >= http.StatusInternalServerError ||
			statusErr.Status == http.StatusTooManyRequests
	}
	return true
}
