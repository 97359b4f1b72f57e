package logpolicy

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.uber.org/multierr"

	"github.com/philipp01105/bridgelog/core"
)

// Environment variables read by FromEnv
const (
	EnvThreshold       = "BRIDGELOG_THRESHOLD"
	EnvRelease         = "BRIDGELOG_RELEASE"
	EnvMaxMessageBytes = "BRIDGELOG_MAX_MESSAGE_BYTES"
	EnvEscalationLevel = "BRIDGELOG_ESCALATION_LEVEL"
	EnvConsoleAsync    = "BRIDGELOG_CONSOLE_ASYNC"
	EnvConsoleFormat   = "BRIDGELOG_CONSOLE_FORMAT"
)

// FromEnv overlays BRIDGELOG_* environment variables onto cfg.
// Invalid values leave the corresponding field unchanged and are
// reported in the returned error.
func FromEnv(cfg *Config) error {
	var errs error

	if v := os.Getenv(EnvRelease); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Release = b
		} else {
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", EnvRelease, err))
		}
	}
	if v := os.Getenv(EnvThreshold); v != "" {
		if l, err := core.ParseLevel(v); err == nil {
			cfg.Threshold = &l
		} else {
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", EnvThreshold, err))
		}
	}
	if v := os.Getenv(EnvEscalationLevel); v != "" {
		if l, err := core.ParseLevel(v); err == nil {
			cfg.EscalationLevel = l
		} else {
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", EnvEscalationLevel, err))
		}
	}
	if v := os.Getenv(EnvMaxMessageBytes); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.MaxMessageBytes = n
		} else {
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", EnvMaxMessageBytes, err))
		}
	}
	if v := os.Getenv(EnvConsoleAsync); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Console.Async = b
		} else {
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", EnvConsoleAsync, err))
		}
	}
	if v := os.Getenv(EnvConsoleFormat); v != "" {
		switch f := strings.ToLower(strings.TrimSpace(v)); f {
		case FormatText, FormatJSON:
			cfg.Console.Format = f
		default:
			errs = multierr.Append(errs, fmt.Errorf("%s: unknown format %q", EnvConsoleFormat, v))
		}
	}

	return errs
}
