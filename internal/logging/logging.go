// Package logging builds the zap logger used by the siglab command.
//
// The processing packages under dsp/ and stats/ never log; only the command
// layer reports what it ran and how long it took.
package logging

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Formats accepted by WithFormat.
const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

// Option adjusts the zap configuration before the logger is built.
type Option func(*zap.Config) error

// WithLevel sets the minimum level ("debug", "info", "warn", "error").
func WithLevel(level string) Option {
	return func(cfg *zap.Config) error {
		lvl, err := zapcore.ParseLevel(strings.TrimSpace(level))
		if err != nil {
			return fmt.Errorf("logging: %w", err)
		}

		cfg.Level = zap.NewAtomicLevelAt(lvl)

		return nil
	}
}

// WithFormat selects JSON (the production default) or human-readable console
// output.
func WithFormat(format string) Option {
	return func(cfg *zap.Config) error {
		switch strings.ToLower(strings.TrimSpace(format)) {
		case "", FormatJSON:
			cfg.Encoding = FormatJSON
		case FormatConsole:
			cfg.Encoding = FormatConsole
			cfg.EncoderConfig = zap.NewDevelopmentEncoderConfig()
			cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		default:
			return fmt.Errorf("logging: unknown format %q", format)
		}

		return nil
	}
}

// WithFields attaches fields to every entry. Empty keys are skipped.
func WithFields(fields map[string]any) Option {
	return func(cfg *zap.Config) error {
		if cfg.InitialFields == nil {
			cfg.InitialFields = make(map[string]any, len(fields))
		}

		for k, v := range fields {
			if k == "" {
				continue
			}

			cfg.InitialFields[k] = v
		}

		return nil
	}
}

// WithOutput redirects entries to the given zap sink paths (default stderr).
func WithOutput(paths ...string) Option {
	return func(cfg *zap.Config) error {
		if len(paths) == 0 {
			return fmt.Errorf("logging: no output paths")
		}

		cfg.OutputPaths = paths

		return nil
	}
}

// New builds a logger from the zap production configuration with opts
// applied. Entries go to stderr so stdout stays free for results.
func New(opts ...Option) (*zap.Logger, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}

	return cfg.Build()
}

func newConfig(opts ...Option) (zap.Config, error) {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.Sampling = nil
	cfg.DisableStacktrace = true

	for _, opt := range opts {
		if opt == nil {
			continue
		}

		if err := opt(&cfg); err != nil {
			return zap.Config{}, err
		}
	}

	return cfg, nil
}
