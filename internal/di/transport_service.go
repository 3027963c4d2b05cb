package di

import (
	"github.com/samber/do/v2"

	"github.com/authpipe/authpipe/internal/transport"
)

// TransportService wraps the outbound transport with its configured
// decorators applied (rate limit innermost-out, then breaker).
type TransportService struct {
	Transport transport.Transport
}

// NewTransport builds the HTTP transport and applies the optional decorators
// from configuration.
func NewTransport(i do.Injector) (*TransportService, error) {
	cfgSvc := do.MustInvoke[*ConfigService](i)
	logSvc := do.MustInvoke[*LoggerService](i)

	transportCfg := cfgSvc.Config.Transport

	var t transport.Transport = transport.NewHTTPClient(transportCfg)

	if rpm, ok := transportCfg.GetRPMOption().Get(); ok {
		t = transport.WithRateLimit(t, rpm)
	}
	if transportCfg.Breaker.Enabled {
		t = transport.WithBreaker(t, transportCfg.Breaker, logSvc.Logger)
	}

	return &TransportService{Transport: t}, nil
}
