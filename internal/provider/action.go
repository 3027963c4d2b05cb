// Package provider implements the configuration-driven authentication
// pipeline: per-action request construction, response interpretation via
// pluggable extractors, and the normalized Result value returned to callers.
package provider

import "github.com/authpipe/authpipe/internal/config"

// Action identifies one authentication operation.
type Action string

// The six supported actions.
const (
	Login        Action = config.ActionLogin
	Register     Action = config.ActionRegister
	Logout       Action = config.ActionLogout
	RequestPass  Action = config.ActionRequestPass
	ResetPass    Action = config.ActionResetPass
	RefreshToken Action = config.ActionRefreshToken
)

// Actions lists every action in declaration order.
func Actions() []Action {
	return []Action{Login, Register, Logout, RequestPass, ResetPass, RefreshToken}
}

// String returns the action's configuration key.
func (a Action) String() string {
	return string(a)
}

// RequiresToken reports whether a successful response must carry an
// extractable access token. Logout, requestPass and resetPass produce none.
func (a Action) RequiresToken() bool {
	switch a {
	case Login, Register, RefreshToken:
		return true
	default:
		return false
	}
}
