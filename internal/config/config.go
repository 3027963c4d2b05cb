// Package config provides the declarative configuration for authpipe actions.
// A caller-supplied partial Overrides is deep-merged over built-in defaults at
// construction time; the resolved Config is read-only for the lifetime of the
// provider built from it.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/samber/mo"
)

// Configuration errors.
var (
	ErrUnknownAction = errors.New("config: unknown action")
)

// Action name constants. These are the fixed keys of the per-action
// configuration table.
const (
	ActionLogin        = "login"
	ActionRegister     = "register"
	ActionLogout       = "logout"
	ActionRequestPass  = "requestPass"
	ActionResetPass    = "resetPass"
	ActionRefreshToken = "refreshToken"
)

// ActionNames lists every configured action in declaration order.
var ActionNames = []string{
	ActionLogin,
	ActionRegister,
	ActionLogout,
	ActionRequestPass,
	ActionResetPass,
	ActionRefreshToken,
}

// InvalidMethodError is returned when an action's HTTP method is not a
// recognized verb.
type InvalidMethodError struct {
	Action string
	Method string
}

func (e InvalidMethodError) Error() string {
	return fmt.Sprintf("config: invalid method %q for action %q", e.Method, e.Action)
}

// Config is the fully resolved provider configuration. Construct it with
// Default() or Overrides.Resolve(); never mutate it afterwards. Concurrent
// reads require no synchronization.
type Config struct {
	// BaseEndpoint is prepended to every action endpoint.
	BaseEndpoint string

	Login        ActionConfig
	Register     ActionConfig
	Logout       ActionConfig
	RequestPass  ActionConfig
	ResetPass    ActionConfig
	RefreshToken ActionConfig

	// Token, Errors and Messages name the dotted response paths the default
	// extractors read from.
	Token    ExtractorConfig
	Errors   ExtractorConfig
	Messages ExtractorConfig

	Logging   LoggingConfig
	Transport TransportConfig
}

// ActionConfig describes one authentication action.
type ActionConfig struct {
	// Endpoint is the relative path segment appended to BaseEndpoint.
	// An empty logout endpoint means local-only logout: no network call.
	Endpoint string

	// Method is the HTTP verb, lowercase (get, post, put, patch, delete).
	Method string

	// AlwaysFail forces the failure branch regardless of transport outcome.
	AlwaysFail bool

	Redirect RedirectConfig

	// DefaultErrors and DefaultMessages are the ordered fallback strings used
	// when the response carries no explicit errors/messages at the configured
	// extraction path.
	DefaultErrors   []string
	DefaultMessages []string

	// ResetPasswordTokenKey names the query parameter and body field the
	// reset-password token is carried in. Only meaningful for resetPass.
	ResetPasswordTokenKey string
}

// RedirectConfig holds post-action navigation targets. Empty string = no
// redirect.
type RedirectConfig struct {
	Success string
	Failure string
}

// GetSuccessOption returns the success redirect target as an Option.
// Returns None when no redirect is configured.
func (r *RedirectConfig) GetSuccessOption() mo.Option[string] {
	if r.Success == "" {
		return mo.None[string]()
	}
	return mo.Some(r.Success)
}

// GetFailureOption returns the failure redirect target as an Option.
// Returns None when no redirect is configured.
func (r *RedirectConfig) GetFailureOption() mo.Option[string] {
	if r.Failure == "" {
		return mo.None[string]()
	}
	return mo.Some(r.Failure)
}

// ExtractorConfig names the dotted response path a default extractor reads.
type ExtractorConfig struct {
	Key string
}

// Action returns the ActionConfig for the named action, or ErrUnknownAction.
func (c *Config) Action(name string) (*ActionConfig, error) {
	switch name {
	case ActionLogin:
		return &c.Login, nil
	case ActionRegister:
		return &c.Register, nil
	case ActionLogout:
		return &c.Logout, nil
	case ActionRequestPass:
		return &c.RequestPass, nil
	case ActionResetPass:
		return &c.ResetPass, nil
	case ActionRefreshToken:
		return &c.RefreshToken, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAction, name)
	}
}

// URL joins BaseEndpoint and the action endpoint into the request URL path.
func (c *Config) URL(action *ActionConfig) string {
	return c.BaseEndpoint + action.Endpoint
}

// Validate checks the resolved configuration for errors.
func (c *Config) Validate() error {
	for _, name := range ActionNames {
		action, err := c.Action(name)
		if err != nil {
			return err
		}
		switch action.Method {
		case "get", "post", "put", "patch", "delete":
		default:
			return InvalidMethodError{Action: name, Method: action.Method}
		}
	}
	return nil
}

// TransportConfig defines transport-level settings for the single request each
// action issues.
type TransportConfig struct {
	// BaseURL is the scheme+host the action URL path is resolved against,
	// e.g. "https://app.example.com". Required for the HTTP transport.
	BaseURL string

	// TimeoutMS is the per-request timeout in milliseconds. Zero = default.
	TimeoutMS int

	// RPM throttles outgoing requests per minute. Zero = unlimited.
	RPM int

	// Breaker configures the optional circuit breaker decorator.
	Breaker BreakerConfig
}

// BreakerConfig defines circuit breaker behavior for the transport.
type BreakerConfig struct {
	Enabled          bool
	FailureThreshold int
	OpenSeconds      int
}

// GetTimeoutOption returns the request timeout as an Option.
// Returns None if TimeoutMS is zero (use default).
func (t *TransportConfig) GetTimeoutOption() mo.Option[time.Duration] {
	if t.TimeoutMS <= 0 {
		return mo.None[time.Duration]()
	}
	return mo.Some(time.Duration(t.TimeoutMS) * time.Millisecond)
}

// GetRPMOption returns the requests-per-minute throttle as an Option.
// Returns None if RPM is zero (unlimited).
func (t *TransportConfig) GetRPMOption() mo.Option[int] {
	if t.RPM <= 0 {
		return mo.None[int]()
	}
	return mo.Some(t.RPM)
}

// GetFailureThreshold returns the breaker failure threshold with default fallback.
func (b *BreakerConfig) GetFailureThreshold() int {
	if b.FailureThreshold <= 0 {
		return DefaultBreakerFailureThreshold
	}
	return b.FailureThreshold
}

// GetOpenDuration returns how long the breaker stays open with default fallback.
func (b *BreakerConfig) GetOpenDuration() time.Duration {
	if b.OpenSeconds <= 0 {
		return DefaultBreakerOpenDuration
	}
	return time.Duration(b.OpenSeconds) * time.Second
}

// Log level constants.
const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, console
	Output string // stdout, stderr, or file path
	Pretty bool   // enable colored console output
}

// ParseLevel converts a string log level to zerolog.Level.
// Returns zerolog.InfoLevel if the level string is invalid.
func (l *LoggingConfig) ParseLevel() zerolog.Level {
	switch strings.ToLower(l.Level) {
	case LevelDebug:
		return zerolog.DebugLevel
	case LevelInfo:
		return zerolog.InfoLevel
	case LevelWarn:
		return zerolog.WarnLevel
	case LevelError:
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
