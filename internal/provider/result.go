package provider

import (
	"github.com/samber/mo"

	"github.com/authpipe/authpipe/internal/transport"
)

// FailureKind distinguishes why an action failed. Forced failures
// (always_fail) and genuine transport failures are deliberately kept apart so
// callers can tell a demo toggle from a real outage.
type FailureKind string

// Failure kinds.
const (
	// FailureNone marks a successful result.
	FailureNone FailureKind = "none"
	// FailureForced marks a failure induced by the always_fail flag.
	FailureForced FailureKind = "forced"
	// FailureTransport marks an HTTP-level failure carrying a structured body.
	FailureTransport FailureKind = "transport"
	// FailureNetwork marks an opaque transport failure with no response body.
	FailureNetwork FailureKind = "network"
	// FailureTokenMissing marks a successful response lacking a required token.
	FailureTokenMissing FailureKind = "token_missing"
)

// Result is the terminal value of one action invocation. It is constructed
// exactly once by the pipeline and never mutated afterwards; callers receive
// it by value.
type Result struct {
	// Action names the invocation this result belongs to.
	Action Action

	// Success reports whether the action took the success branch.
	Success bool

	// Kind is FailureNone on success, otherwise the failure taxonomy entry.
	Kind FailureKind

	// Response is the raw envelope received (or the failure's envelope for
	// structured failures). Nil for opaque network failures. Opaque to
	// callers beyond extraction.
	Response *transport.Envelope

	// Redirect is the post-action navigation target, when configured.
	Redirect mo.Option[string]

	// Errors is the ordered error list. Empty on success.
	Errors []string

	// Messages is the ordered message list. Empty on failure.
	Messages []string

	// Token is the extracted access token. None for actions that produce no
	// token and on failure.
	Token mo.Option[string]
}
