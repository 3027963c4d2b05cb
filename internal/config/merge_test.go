package config

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverrides_Resolve_NilInheritsDefaults(t *testing.T) {
	t.Parallel()

	var overrides *Overrides
	cfg := overrides.Resolve()

	assert.Equal(t, Default(), cfg)
}

func TestOverrides_Resolve_EmptyInheritsDefaults(t *testing.T) {
	t.Parallel()

	cfg := (&Overrides{}).Resolve()

	assert.Equal(t, Default(), cfg)
}

func TestOverrides_Resolve_PartialOverride(t *testing.T) {
	t.Parallel()

	overrides := &Overrides{
		BaseEndpoint: lo.ToPtr("/v2/auth/"),
		Login: &ActionOverrides{
			Endpoint: lo.ToPtr("sign-in"),
			Redirect: &RedirectOverrides{
				Success: lo.ToPtr("/home"),
			},
		},
		Token: &ExtractorOverrides{Key: lo.ToPtr("session.jwt")},
	}

	cfg := overrides.Resolve()

	assert.Equal(t, "/v2/auth/", cfg.BaseEndpoint)
	assert.Equal(t, "sign-in", cfg.Login.Endpoint)
	assert.Equal(t, "session.jwt", cfg.Token.Key)

	// Untouched sibling fields inherit defaults.
	assert.Equal(t, "post", cfg.Login.Method)
	assert.Equal(t, "/home", cfg.Login.Redirect.Success)
	assert.Empty(t, cfg.Login.Redirect.Failure)
	assert.Equal(t, Default().Login.DefaultErrors, cfg.Login.DefaultErrors)

	// Sibling actions entirely unaffected.
	assert.Equal(t, Default().Register, cfg.Register)
	assert.Equal(t, Default().Logout, cfg.Logout)
}

func TestOverrides_Resolve_ExplicitEmptyOverrides(t *testing.T) {
	t.Parallel()

	// endpoint: "" is an override (local-only logout), not absence.
	overrides := &Overrides{
		Logout: &ActionOverrides{
			Endpoint: lo.ToPtr(""),
		},
		Login: &ActionOverrides{
			Redirect: &RedirectOverrides{Success: lo.ToPtr("")},
		},
	}

	cfg := overrides.Resolve()

	assert.Empty(t, cfg.Logout.Endpoint)
	assert.Equal(t, "delete", cfg.Logout.Method)
	assert.True(t, cfg.Login.Redirect.GetSuccessOption().IsAbsent())
}

func TestOverrides_Resolve_AlwaysFail(t *testing.T) {
	t.Parallel()

	overrides := &Overrides{
		Register: &ActionOverrides{AlwaysFail: lo.ToPtr(true)},
	}

	cfg := overrides.Resolve()

	assert.True(t, cfg.Register.AlwaysFail)
	assert.False(t, cfg.Login.AlwaysFail)
}

func TestOverrides_Resolve_DefaultListsReplacedWholesale(t *testing.T) {
	t.Parallel()

	overrides := &Overrides{
		Login: &ActionOverrides{
			DefaultErrors: []string{"Nope."},
		},
	}

	cfg := overrides.Resolve()

	assert.Equal(t, []string{"Nope."}, cfg.Login.DefaultErrors)
	// Messages untouched.
	assert.Equal(t, Default().Login.DefaultMessages, cfg.Login.DefaultMessages)
}

func TestOverrides_Resolve_DoesNotAliasOverrideSlices(t *testing.T) {
	t.Parallel()

	errs := []string{"Nope."}
	overrides := &Overrides{
		Login: &ActionOverrides{DefaultErrors: errs},
	}

	cfg := overrides.Resolve()
	errs[0] = "mutated"

	require.Equal(t, []string{"Nope."}, cfg.Login.DefaultErrors)
}

func TestOverrides_Resolve_Transport(t *testing.T) {
	t.Parallel()

	overrides := &Overrides{
		Transport: &TransportOverrides{
			BaseURL:   lo.ToPtr("https://app.example.com"),
			TimeoutMS: lo.ToPtr(1500),
			Breaker: &BreakerOverrides{
				Enabled:          lo.ToPtr(true),
				FailureThreshold: lo.ToPtr(3),
			},
		},
	}

	cfg := overrides.Resolve()

	assert.Equal(t, "https://app.example.com", cfg.Transport.BaseURL)
	assert.Equal(t, 1500, cfg.Transport.TimeoutMS)
	assert.True(t, cfg.Transport.Breaker.Enabled)
	assert.Equal(t, 3, cfg.Transport.Breaker.GetFailureThreshold())
	assert.Equal(t, DefaultBreakerOpenDuration, cfg.Transport.Breaker.GetOpenDuration())
}
