package logpolicy

import (
	"github.com/philipp01105/bridgelog/core"
)

// Console output formats
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config controls how a Policy is built.
type Config struct {
	// Release selects release defaults: threshold Error and no escalation.
	// Defaults to ReleaseBuild.
	Release bool
	// Threshold overrides the release-dependent default threshold when set.
	Threshold *core.Level
	// EscalationLevel is the minimum level of native records passed to the
	// escalation function in debug configurations (default: ErrorLevel).
	EscalationLevel core.Level
	// MaxMessageBytes bounds message size; <= 0 disables the limit.
	MaxMessageBytes int
	// CoarseClock timestamps records from the cached coarse clock.
	CoarseClock bool
	// Console configures the default console sink.
	Console ConsoleConfig
}

// ConsoleConfig configures the console sink installed by the Builder.
type ConsoleConfig struct {
	// Async queues records and writes them from a background goroutine.
	Async bool
	// Format is FormatText (default) or FormatJSON.
	Format string
}

// DefaultConfig returns the configuration of the current build.
func DefaultConfig() Config {
	return Config{
		Release:         ReleaseBuild,
		EscalationLevel: core.ErrorLevel,
		MaxMessageBytes: core.DefaultMaxMessageBytes,
		Console:         ConsoleConfig{Format: FormatText},
	}
}

// DefaultThreshold returns InfoLevel for debug and ErrorLevel for release configurations.
func DefaultThreshold(release bool) core.Level {
	if release {
		return core.ErrorLevel
	}
	return core.InfoLevel
}

// EffectiveThreshold returns Threshold when set, or the release-dependent default.
func (c Config) EffectiveThreshold() core.Level {
	if c.Threshold != nil {
		return *c.Threshold
	}
	return DefaultThreshold(c.Release)
}

// WithThreshold returns a copy of c with an explicit threshold.
func (c Config) WithThreshold(level core.Level) Config {
	c.Threshold = &level
	return c
}
