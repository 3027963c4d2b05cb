package provider

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/samber/mo"
	"github.com/tidwall/sjson"

	"github.com/authpipe/authpipe/internal/config"
	"github.com/authpipe/authpipe/internal/logging"
	"github.com/authpipe/authpipe/internal/transport"
)

// FallbackError is the last-resort error message used when the transport
// fails outside the HTTP error-response shape (network error, timeout).
// It is a fixed literal, independent of configuration.
const FallbackError = "Something went wrong."

// Provider executes authentication actions against a backend and normalizes
// every outcome into a Result. It holds no mutable state across invocations
// beyond the immutable resolved configuration, so concurrent invocations need
// no synchronization.
type Provider struct {
	cfg       *config.Config
	transport transport.Transport
	params    ParamSource
	logger    zerolog.Logger

	tokenExtractor   TokenExtractor
	errorExtractor   ErrorExtractor
	messageExtractor MessageExtractor
	customToken      bool
}

// Option customizes a Provider at construction time.
type Option func(*Provider)

// WithParamSource sets the query-parameter capability consulted by resetPass.
func WithParamSource(params ParamSource) Option {
	return func(p *Provider) {
		p.params = params
	}
}

// WithLogger sets the logger used for pipeline diagnostics.
func WithLogger(logger zerolog.Logger) Option {
	return func(p *Provider) {
		p.logger = logger
	}
}

// WithTokenExtractor overrides the default token getter.
func WithTokenExtractor(extractor TokenExtractor) Option {
	return func(p *Provider) {
		p.tokenExtractor = extractor
		p.customToken = true
	}
}

// WithErrorExtractor overrides the default errors getter.
func WithErrorExtractor(extractor ErrorExtractor) Option {
	return func(p *Provider) {
		p.errorExtractor = extractor
	}
}

// WithMessageExtractor overrides the default messages getter.
func WithMessageExtractor(extractor MessageExtractor) Option {
	return func(p *Provider) {
		p.messageExtractor = extractor
	}
}

// New builds a Provider over a resolved configuration and a transport.
// The configuration must not be mutated afterwards.
func New(cfg *config.Config, t transport.Transport, opts ...Option) (*Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("provider: invalid config: %w", err)
	}

	p := &Provider{
		cfg:              cfg,
		transport:        t,
		params:           NoParams,
		logger:           log.Logger,
		tokenExtractor:   DefaultTokenExtractor(cfg),
		errorExtractor:   DefaultErrorExtractor(cfg),
		messageExtractor: DefaultMessageExtractor(cfg),
	}
	for _, opt := range opts {
		opt(p)
	}

	return p, nil
}

// Config returns the provider's resolved configuration.
func (p *Provider) Config() *config.Config {
	return p.cfg
}

// Login authenticates the credentials in body.
func (p *Provider) Login(ctx context.Context, body []byte) Result {
	return p.Run(ctx, Login, body)
}

// Register creates an account from the fields in body.
func (p *Provider) Register(ctx context.Context, body []byte) Result {
	return p.Run(ctx, Register, body)
}

// Logout ends the session. With an empty configured endpoint no network call
// is issued (local-only logout).
func (p *Provider) Logout(ctx context.Context) Result {
	return p.Run(ctx, Logout, nil)
}

// RequestPass asks the backend to start a password reset.
func (p *Provider) RequestPass(ctx context.Context, body []byte) Result {
	return p.Run(ctx, RequestPass, body)
}

// ResetPass submits a new password. The reset token is looked up in the
// configured ParamSource and injected into the outgoing body.
func (p *Provider) ResetPass(ctx context.Context, body []byte) Result {
	return p.Run(ctx, ResetPass, body)
}

// RefreshToken exchanges the current token for a fresh one.
func (p *Provider) RefreshToken(ctx context.Context, body []byte) Result {
	return p.Run(ctx, RefreshToken, body)
}

// Run executes one action invocation end to end and returns its terminal
// Result. All failure kinds are recovered locally; Run never returns an
// error or panics past this boundary.
func (p *Provider) Run(ctx context.Context, action Action, body []byte) Result {
	ctx = logging.WithInvocationID(p.logger.WithContext(ctx), "")

	actionCfg, err := p.cfg.Action(action.String())
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("action", action.String()).Msg("unknown action")
		return Result{
			Action:   action,
			Kind:     FailureNetwork,
			Errors:   []string{FallbackError},
			Redirect: mo.None[string](),
			Token:    mo.None[string](),
		}
	}

	// Forced failure: deterministic, no network call, synthesized from the
	// input data. Lets the failure path be exercised for demos and tests.
	if actionCfg.AlwaysFail {
		log.Ctx(ctx).Debug().Str("action", action.String()).Msg("always_fail is set, forcing failure branch")
		return p.failure(action, actionCfg, FailureForced, transport.Empty())
	}

	envelope, result, done := p.send(ctx, action, actionCfg, body)
	if done {
		return result
	}

	if action.RequiresToken() {
		token, ok := p.tokenExtractor(action, envelope).Get()
		if !ok {
			// Operator-facing diagnostic: the backend answered but the token
			// path yielded nothing, which is almost always a key/getter
			// misconfiguration.
			log.Ctx(ctx).Warn().
				Str("action", action.String()).
				Str("token_key", p.cfg.Token.Key).
				Bool("custom_getter", p.customToken).
				Msg("response carries no extractable token")
			return p.failure(action, actionCfg, FailureTokenMissing, envelope)
		}
		return p.success(action, actionCfg, envelope, mo.Some(token))
	}

	return p.success(action, actionCfg, envelope, mo.None[string]())
}

// send performs the network step of the pipeline. done is true when the
// invocation already terminated in a failure Result.
func (p *Provider) send(
	ctx context.Context,
	action Action,
	actionCfg *config.ActionConfig,
	body []byte,
) (envelope *transport.Envelope, result Result, done bool) {
	// Local-only logout: empty endpoint means no backend call at all.
	if action == Logout && actionCfg.Endpoint == "" {
		log.Ctx(ctx).Debug().Msg("logout endpoint is empty, skipping network call")
		return transport.Empty(), Result{}, false
	}

	if action == ResetPass {
		injected, err := p.injectResetToken(ctx, actionCfg, body)
		if err != nil {
			log.Ctx(ctx).Error().Err(err).Msg("failed to inject reset password token")
			return nil, p.opaqueFailure(action, actionCfg, nil), true
		}
		body = injected
	}

	envelope, err := p.transport.Send(ctx, actionCfg.Method, p.cfg.URL(actionCfg), body)
	if err == nil {
		return envelope, Result{}, false
	}

	if statusErr, ok := transport.AsStatusError(err); ok {
		log.Ctx(ctx).Debug().
			Int("status", statusErr.Status).
			Str("action", action.String()).
			Msg("structured transport failure")
		return nil, p.failure(action, actionCfg, FailureTransport, statusErr.Envelope()), true
	}

	log.Ctx(ctx).Debug().Err(err).Str("action", action.String()).Msg("opaque transport failure")
	return nil, p.opaqueFailure(action, actionCfg, nil), true
}

// injectResetToken writes the query-parameter reset token into the outgoing
// JSON body under the configured key. This is the one place the pipeline
// mutates outgoing data from an external collaborator.
func (p *Provider) injectResetToken(ctx context.Context, actionCfg *config.ActionConfig, body []byte) ([]byte, error) {
	key := actionCfg.ResetPasswordTokenKey
	if key == "" {
		return body, nil
	}

	value, ok := p.params.Lookup(key)
	if !ok {
		log.Ctx(ctx).Debug().Str("param", key).Msg("reset password token not present in query parameters")
		return body, nil
	}

	if body == nil {
		body = []byte(`{}`)
	}
	return sjson.SetBytes(body, key, value)
}

// success builds the success-branch Result.
func (p *Provider) success(
	action Action,
	actionCfg *config.ActionConfig,
	envelope *transport.Envelope,
	token mo.Option[string],
) Result {
	return Result{
		Action:   action,
		Success:  true,
		Kind:     FailureNone,
		Response: envelope,
		Redirect: actionCfg.Redirect.GetSuccessOption(),
		Messages: p.messageExtractor(action, envelope),
		Token:    token,
	}
}

// failure builds the failure-branch Result for failures that carry an
// envelope (forced, structured transport, token missing).
func (p *Provider) failure(
	action Action,
	actionCfg *config.ActionConfig,
	kind FailureKind,
	envelope *transport.Envelope,
) Result {
	return Result{
		Action:   action,
		Success:  false,
		Kind:     kind,
		Response: envelope,
		Redirect: actionCfg.Redirect.GetFailureOption(),
		Errors:   p.errorExtractor(action, envelope),
		Token:    mo.None[string](),
	}
}

// opaqueFailure builds the failure Result for transport failures with no
// structured body: the error list is the fixed literal fallback.
func (p *Provider) opaqueFailure(action Action, actionCfg *config.ActionConfig, envelope *transport.Envelope) Result {
	return Result{
		Action:   action,
		Success:  false,
		Kind:     FailureNetwork,
		Response: envelope,
		Redirect: actionCfg.Redirect.GetFailureOption(),
		Errors:   []string{FallbackError},
		Token:    mo.None[string](),
	}
}
