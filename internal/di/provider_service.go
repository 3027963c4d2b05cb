package di

import (
	"fmt"

	"github.com/samber/do/v2"

	"github.com/authpipe/authpipe/internal/provider"
)

// ParamSourceKey is the named injection key for an optional query-parameter
// source (used by resetPass). Absent = no parameters.
const ParamSourceKey = "provider.params"

// ProviderService wraps the action pipeline provider.
type ProviderService struct {
	Provider *provider.Provider
}

// NewProvider builds the authentication provider from the container's config,
// logger and transport.
func NewProvider(i do.Injector) (*ProviderService, error) {
	cfgSvc := do.MustInvoke[*ConfigService](i)
	logSvc := do.MustInvoke[*LoggerService](i)
	transportSvc := do.MustInvoke[*TransportService](i)

	opts := []provider.Option{
		provider.WithLogger(*logSvc.Logger),
	}

	if params, err := do.InvokeNamed[provider.ParamSource](i, ParamSourceKey); err == nil {
		opts = append(opts, provider.WithParamSource(params))
	}

	p, err := provider.New(cfgSvc.Config, transportSvc.Transport, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to build provider: %w", err)
	}

	return &ProviderService{Provider: p}, nil
}
