// Package logging builds the zerolog logger for authpipe and carries
// per-invocation IDs through contexts.
package logging

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/authpipe/authpipe/internal/config"
)

type ctxKey string

// InvocationIDKey is the context key for action invocation IDs.
const InvocationIDKey ctxKey = "invocation_id"

// New creates a zerolog.Logger from LoggingConfig.
// Returns a configured logger ready for use as global logger.
func New(cfg config.LoggingConfig) (zerolog.Logger, error) {
	output, outputFile, err := selectOutput(cfg.Output)
	if err != nil {
		return zerolog.Logger{}, err
	}

	if shouldUsePretty(cfg, outputFile) {
		output = buildConsoleWriter(output)
	}

	logger := zerolog.New(output).
		Level(cfg.ParseLevel()).
		With().
		Timestamp().
		Logger()

	return logger, nil
}

// selectOutput returns the output writer and file handle for the given output config.
func selectOutput(outputCfg string) (io.Writer, *os.File, error) {
	switch outputCfg {
	case "", "stderr":
		return os.Stderr, os.Stderr, nil
	case "stdout":
		return os.Stdout, os.Stdout, nil
	default:
		outputCfg = filepath.Clean(outputCfg)
		f, err := os.OpenFile(outputCfg, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, nil, err
		}
		return f, f, nil
	}
}

// shouldUsePretty determines if pretty console output should be used.
func shouldUsePretty(cfg config.LoggingConfig, outputFile *os.File) bool {
	if cfg.Pretty {
		return true
	}

	switch cfg.Format {
	case "json":
		return false
	case "pretty":
		return true
	default:
		// Auto-detect: use pretty if the output is a terminal
		return outputFile != nil && isatty.IsTerminal(outputFile.Fd())
	}
}

// buildConsoleWriter creates a zerolog.ConsoleWriter with compact formatting.
func buildConsoleWriter(output io.Writer) zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:        output,
		TimeFormat: "15:04:05",
		FormatMessage: func(i interface{}) string {
			if i == nil {
				return ""
			}
			return fmt.Sprintf("-> %s", i)
		},
	}
}

// WithInvocationID attaches an invocation ID to the context and its zerolog
// logger. An empty id generates a new UUID.
func WithInvocationID(ctx context.Context, id string) context.Context {
	if id == "" {
		id = uuid.New().String()
	}

	ctx = context.WithValue(ctx, InvocationIDKey, id)
	logger := log.Ctx(ctx).With().Str("invocation_id", id).Logger()

	return logger.WithContext(ctx)
}

// InvocationID retrieves the invocation ID from context, or "" when absent.
func InvocationID(ctx context.Context) string {
	if id, ok := ctx.Value(InvocationIDKey).(string); ok {
		return id
	}
	return ""
}
