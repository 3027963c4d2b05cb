package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/samber/do/v2"
	"github.com/spf13/cobra"
	"github.com/tidwall/sjson"

	"github.com/authpipe/authpipe/internal/di"
	"github.com/authpipe/authpipe/internal/provider"
)

// ErrActionFailed is returned when an action resolves to the failure branch,
// so the process exits non-zero after the result has been printed.
var ErrActionFailed = errors.New("action failed")

var (
	flagData string
	flagSet  []string
	flagJSON bool

	flagResetToken string
)

func init() {
	actions := []struct {
		use    string
		short  string
		action provider.Action
	}{
		{"login", "Authenticate and obtain an access token", provider.Login},
		{"register", "Create an account and obtain an access token", provider.Register},
		{"logout", "End the current session", provider.Logout},
		{"request-pass", "Request a password reset email", provider.RequestPass},
		{"reset-pass", "Set a new password using a reset token", provider.ResetPass},
		{"refresh-token", "Exchange the current token for a fresh one", provider.RefreshToken},
	}

	for _, a := range actions {
		action := a.action
		cmd := &cobra.Command{
			Use:   a.use,
			Short: a.short,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return runAction(cmd, action)
			},
		}
		cmd.Flags().StringVar(&flagData, "data", "", "raw JSON request body")
		cmd.Flags().StringArrayVar(&flagSet, "set", nil, "set a body field (key=value, repeatable)")
		cmd.Flags().BoolVar(&flagJSON, "json", false, "print the result as JSON")

		if action == provider.ResetPass {
			cmd.Flags().StringVar(&flagResetToken, "reset-token", "", "password reset token to inject into the request body")
		}

		rootCmd.AddCommand(cmd)
	}
}

func runAction(cmd *cobra.Command, action provider.Action) error {
	body, err := buildBody(flagData, flagSet)
	if err != nil {
		return err
	}

	configPath := cfgFile
	if configPath == "" {
		configPath = findConfigFile()
	}

	injector := do.New()
	defer func() { _ = injector.Shutdown() }()

	do.ProvideNamedValue(injector, di.ConfigPathKey, configPath)
	di.RegisterSingletons(injector)

	if action == provider.ResetPass && flagResetToken != "" {
		cfgSvc, err := do.Invoke[*di.ConfigService](injector)
		if err != nil {
			return err
		}

		key := cfgSvc.Config.ResetPass.ResetPasswordTokenKey
		do.ProvideNamedValue[provider.ParamSource](injector, di.ParamSourceKey,
			provider.StaticSource{key: flagResetToken})
	}

	providerSvc, err := do.Invoke[*di.ProviderService](injector)
	if err != nil {
		return err
	}

	result := providerSvc.Provider.Run(cmd.Context(), action, body)

	if err := printResult(result); err != nil {
		return err
	}

	if !result.Success {
		cmd.SilenceErrors = true
		cmd.SilenceUsage = true

		return ErrActionFailed
	}

	return nil
}

// buildBody assembles the request body from --data and --set flags. Returns
// nil when neither is given so the request is sent without a body.
func buildBody(data string, sets []string) ([]byte, error) {
	if data == "" && len(sets) == 0 {
		return nil, nil
	}

	body := []byte(data)
	if len(body) == 0 {
		body = []byte("{}")
	} else if !json.Valid(body) {
		return nil, fmt.Errorf("--data is not valid JSON")
	}

	for _, kv := range sets {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid --set %q (expected key=value)", kv)
		}

		out, err := sjson.SetBytes(body, key, value)
		if err != nil {
			return nil, fmt.Errorf("failed to set body field %s: %w", key, err)
		}

		body = out
	}

	return body, nil
}

// resultView is the JSON output shape for --json.
type resultView struct {
	Action   string   `json:"action"`
	Success  bool     `json:"success"`
	Kind     string   `json:"kind"`
	Status   int      `json:"status,omitempty"`
	Token    string   `json:"token,omitempty"`
	Redirect string   `json:"redirect,omitempty"`
	Errors   []string `json:"errors,omitempty"`
	Messages []string `json:"messages,omitempty"`
}

func printResult(result provider.Result) error {
	if flagJSON {
		view := resultView{
			Action:   result.Action.String(),
			Success:  result.Success,
			Kind:     string(result.Kind),
			Token:    result.Token.OrElse(""),
			Redirect: result.Redirect.OrElse(""),
			Errors:   result.Errors,
			Messages: result.Messages,
		}
		if result.Response != nil {
			view.Status = result.Response.Status
		}

		out, err := json.MarshalIndent(view, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}

		fmt.Println(string(out))

		return nil
	}

	if result.Success {
		fmt.Printf("✓ %s succeeded\n", result.Action)

		for _, msg := range result.Messages {
			fmt.Printf("  %s\n", msg)
		}

		if token, ok := result.Token.Get(); ok {
			fmt.Printf("  token: %s\n", token)
		}
	} else {
		fmt.Printf("✗ %s failed (%s)\n", result.Action, result.Kind)

		for _, e := range result.Errors {
			fmt.Printf("  %s\n", e)
		}
	}

	if redirect, ok := result.Redirect.Get(); ok {
		fmt.Printf("  redirect: %s\n", redirect)
	}

	return nil
}
