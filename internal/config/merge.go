package config

// Overrides is a partial configuration supplied by the caller or loaded from a
// file. Every field is optional: nil means "inherit the default", while an
// explicit zero value (e.g. endpoint: "") replaces it. This is what makes
// local-only logout (endpoint "") expressible without losing the default for
// everyone else.
type Overrides struct {
	BaseEndpoint *string `yaml:"base_endpoint" toml:"base_endpoint"`

	Login        *ActionOverrides `yaml:"login" toml:"login"`
	Register     *ActionOverrides `yaml:"register" toml:"register"`
	Logout       *ActionOverrides `yaml:"logout" toml:"logout"`
	RequestPass  *ActionOverrides `yaml:"request_pass" toml:"request_pass"`
	ResetPass    *ActionOverrides `yaml:"reset_pass" toml:"reset_pass"`
	RefreshToken *ActionOverrides `yaml:"refresh_token" toml:"refresh_token"`

	Token    *ExtractorOverrides `yaml:"token" toml:"token"`
	Errors   *ExtractorOverrides `yaml:"errors" toml:"errors"`
	Messages *ExtractorOverrides `yaml:"messages" toml:"messages"`

	Logging   *LoggingOverrides   `yaml:"logging" toml:"logging"`
	Transport *TransportOverrides `yaml:"transport" toml:"transport"`
}

// ActionOverrides is the optional-field mirror of ActionConfig.
type ActionOverrides struct {
	Endpoint              *string            `yaml:"endpoint" toml:"endpoint"`
	Method                *string            `yaml:"method" toml:"method"`
	AlwaysFail            *bool              `yaml:"always_fail" toml:"always_fail"`
	Redirect              *RedirectOverrides `yaml:"redirect" toml:"redirect"`
	DefaultErrors         []string           `yaml:"default_errors" toml:"default_errors"`
	DefaultMessages       []string           `yaml:"default_messages" toml:"default_messages"`
	ResetPasswordTokenKey *string            `yaml:"reset_password_token_key" toml:"reset_password_token_key"`
}

// RedirectOverrides is the optional-field mirror of RedirectConfig.
type RedirectOverrides struct {
	Success *string `yaml:"success" toml:"success"`
	Failure *string `yaml:"failure" toml:"failure"`
}

// ExtractorOverrides is the optional-field mirror of ExtractorConfig.
type ExtractorOverrides struct {
	Key *string `yaml:"key" toml:"key"`
}

// LoggingOverrides is the optional-field mirror of LoggingConfig.
type LoggingOverrides struct {
	Level  *string `yaml:"level" toml:"level"`
	Format *string `yaml:"format" toml:"format"`
	Output *string `yaml:"output" toml:"output"`
	Pretty *bool   `yaml:"pretty" toml:"pretty"`
}

// TransportOverrides is the optional-field mirror of TransportConfig.
type TransportOverrides struct {
	BaseURL   *string           `yaml:"base_url" toml:"base_url"`
	TimeoutMS *int              `yaml:"timeout_ms" toml:"timeout_ms"`
	RPM       *int              `yaml:"rpm" toml:"rpm"`
	Breaker   *BreakerOverrides `yaml:"breaker" toml:"breaker"`
}

// BreakerOverrides is the optional-field mirror of BreakerConfig.
type BreakerOverrides struct {
	Enabled          *bool `yaml:"enabled" toml:"enabled"`
	FailureThreshold *int  `yaml:"failure_threshold" toml:"failure_threshold"`
	OpenSeconds      *int  `yaml:"open_seconds" toml:"open_seconds"`
}

// Resolve deep-merges the overrides over Default() and returns the resolved
// configuration. A nil receiver resolves to the plain defaults.
func (o *Overrides) Resolve() *Config {
	cfg := Default()
	if o == nil {
		return cfg
	}

	apply(&cfg.BaseEndpoint, o.BaseEndpoint)

	mergeAction(&cfg.Login, o.Login)
	mergeAction(&cfg.Register, o.Register)
	mergeAction(&cfg.Logout, o.Logout)
	mergeAction(&cfg.RequestPass, o.RequestPass)
	mergeAction(&cfg.ResetPass, o.ResetPass)
	mergeAction(&cfg.RefreshToken, o.RefreshToken)

	if o.Token != nil {
		apply(&cfg.Token.Key, o.Token.Key)
	}
	if o.Errors != nil {
		apply(&cfg.Errors.Key, o.Errors.Key)
	}
	if o.Messages != nil {
		apply(&cfg.Messages.Key, o.Messages.Key)
	}

	if o.Logging != nil {
		apply(&cfg.Logging.Level, o.Logging.Level)
		apply(&cfg.Logging.Format, o.Logging.Format)
		apply(&cfg.Logging.Output, o.Logging.Output)
		apply(&cfg.Logging.Pretty, o.Logging.Pretty)
	}

	if o.Transport != nil {
		apply(&cfg.Transport.BaseURL, o.Transport.BaseURL)
		apply(&cfg.Transport.TimeoutMS, o.Transport.TimeoutMS)
		apply(&cfg.Transport.RPM, o.Transport.RPM)
		if o.Transport.Breaker != nil {
			apply(&cfg.Transport.Breaker.Enabled, o.Transport.Breaker.Enabled)
			apply(&cfg.Transport.Breaker.FailureThreshold, o.Transport.Breaker.FailureThreshold)
			apply(&cfg.Transport.Breaker.OpenSeconds, o.Transport.Breaker.OpenSeconds)
		}
	}

	return cfg
}

// mergeAction applies per-action overrides onto a resolved ActionConfig.
func mergeAction(dst *ActionConfig, src *ActionOverrides) {
	if src == nil {
		return
	}
	apply(&dst.Endpoint, src.Endpoint)
	apply(&dst.Method, src.Method)
	apply(&dst.AlwaysFail, src.AlwaysFail)
	if src.Redirect != nil {
		apply(&dst.Redirect.Success, src.Redirect.Success)
		apply(&dst.Redirect.Failure, src.Redirect.Failure)
	}
	if src.DefaultErrors != nil {
		dst.DefaultErrors = append([]string(nil), src.DefaultErrors...)
	}
	if src.DefaultMessages != nil {
		dst.DefaultMessages = append([]string(nil), src.DefaultMessages...)
	}
	apply(&dst.ResetPasswordTokenKey, src.ResetPasswordTokenKey)
}

// apply copies src over dst when src is set. nil src = inherit.
func apply[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
