package config

import "time"

// Default endpoints, keys and transport settings.
const (
	DefaultBaseEndpoint          = "/api/auth/"
	DefaultTokenKey              = "data.token"
	DefaultErrorsKey             = "data.errors"
	DefaultMessagesKey           = "data.messages"
	DefaultResetPasswordTokenKey = "reset_password_token"

	DefaultBreakerFailureThreshold = 5
	DefaultBreakerOpenDuration     = 30 * time.Second
)

// Default returns the built-in configuration every provider starts from.
// Caller overrides are deep-merged over this via Overrides.Resolve.
func Default() *Config {
	return &Config{
		BaseEndpoint: DefaultBaseEndpoint,
		Login: ActionConfig{
			Endpoint: "login",
			Method:   "post",
			Redirect: RedirectConfig{Success: "/"},
			DefaultErrors: []string{
				"Login/Email combination is not correct, please try again.",
			},
			DefaultMessages: []string{
				"You have been successfully logged in.",
			},
		},
		Register: ActionConfig{
			Endpoint: "register",
			Method:   "post",
			Redirect: RedirectConfig{Success: "/"},
			DefaultErrors: []string{
				"Registration could not be completed, please check your input.",
			},
			DefaultMessages: []string{
				"You have been successfully registered.",
			},
		},
		Logout: ActionConfig{
			Endpoint: "logout",
			Method:   "delete",
			Redirect: RedirectConfig{Success: "/"},
			DefaultErrors: []string{
				"Logout failed, please try again.",
			},
			DefaultMessages: []string{
				"You have been logged out.",
			},
		},
		RequestPass: ActionConfig{
			Endpoint: "request-pass",
			Method:   "post",
			Redirect: RedirectConfig{Success: "/"},
			DefaultErrors: []string{
				"Unable to request a password reset, please try again.",
			},
			DefaultMessages: []string{
				"Password reset instructions have been sent to your email.",
			},
		},
		ResetPass: ActionConfig{
			Endpoint: "reset-pass",
			Method:   "put",
			Redirect: RedirectConfig{Success: "/"},
			DefaultErrors: []string{
				"Unable to reset your password, please try again.",
			},
			DefaultMessages: []string{
				"Your password has been reset.",
			},
			ResetPasswordTokenKey: DefaultResetPasswordTokenKey,
		},
		RefreshToken: ActionConfig{
			Endpoint: "refresh-token",
			Method:   "post",
			DefaultErrors: []string{
				"Your session has expired, please log in again.",
			},
		},
		Token:    ExtractorConfig{Key: DefaultTokenKey},
		Errors:   ExtractorConfig{Key: DefaultErrorsKey},
		Messages: ExtractorConfig{Key: DefaultMessagesKey},
		Logging: LoggingConfig{
			Level:  LevelInfo,
			Format: "console",
			Output: "stderr",
		},
	}
}
