package provider

import (
	"github.com/samber/mo"

	"github.com/authpipe/authpipe/internal/config"
	"github.com/authpipe/authpipe/internal/extract"
	"github.com/authpipe/authpipe/internal/transport"
)

// TokenExtractor pulls the access token out of a response envelope.
// Returns None when no token is present. Implementations must be pure.
type TokenExtractor func(action Action, envelope *transport.Envelope) mo.Option[string]

// ErrorExtractor pulls the ordered error list out of a failure envelope,
// falling back to the action's configured defaults.
type ErrorExtractor func(action Action, envelope *transport.Envelope) []string

// MessageExtractor pulls the ordered message list out of a response envelope,
// falling back to the action's configured defaults.
type MessageExtractor func(action Action, envelope *transport.Envelope) []string

// DefaultTokenExtractor reads the configured token key path from the response
// body. The token has no fallback: an absent path is None.
func DefaultTokenExtractor(cfg *config.Config) TokenExtractor {
	return func(_ Action, envelope *transport.Envelope) mo.Option[string] {
		if envelope == nil {
			return mo.None[string]()
		}
		token := extract.String(envelope.Body, cfg.Token.Key)
		if token == "" {
			return mo.None[string]()
		}
		return mo.Some(token)
	}
}

// DefaultErrorExtractor reads the configured errors key path from the failure
// body, falling back to the action's defaultErrors.
func DefaultErrorExtractor(cfg *config.Config) ErrorExtractor {
	return func(action Action, envelope *transport.Envelope) []string {
		fallback := actionDefaults(cfg, action, func(a *config.ActionConfig) []string {
			return a.DefaultErrors
		})
		if envelope == nil {
			return fallback
		}
		return extract.Strings(envelope.Body, cfg.Errors.Key, fallback)
	}
}

// DefaultMessageExtractor reads the configured messages key path from the
// response body, falling back to the action's defaultMessages.
func DefaultMessageExtractor(cfg *config.Config) MessageExtractor {
	return func(action Action, envelope *transport.Envelope) []string {
		fallback := actionDefaults(cfg, action, func(a *config.ActionConfig) []string {
			return a.DefaultMessages
		})
		if envelope == nil {
			return fallback
		}
		return extract.Strings(envelope.Body, cfg.Messages.Key, fallback)
	}
}

// actionDefaults copies one of the action's default string lists.
func actionDefaults(cfg *config.Config, action Action, pick func(*config.ActionConfig) []string) []string {
	actionCfg, err := cfg.Action(action.String())
	if err != nil {
		return nil
	}
	return append([]string(nil), pick(actionCfg)...)
}
