package logpolicy

import (
	"sync"

	"github.com/philipp01105/bridgelog/core"
	"github.com/philipp01105/bridgelog/sink"
)

var (
	defaultPolicy *Policy
	defaultMu     sync.RWMutex
	defaultOnce   sync.Once
)

func initDefault() {
	cfg := DefaultConfig()
	envErr := FromEnv(&cfg)
	p := NewBuilder().WithConfig(cfg).Build()
	if envErr != nil {
		p.fault(envErr)
	}

	defaultMu.Lock()
	if defaultPolicy == nil {
		defaultPolicy = p
	}
	defaultMu.Unlock()
}

// Default returns the process-wide policy, building it on first use
// from DefaultConfig and the BRIDGELOG_* environment.
func Default() *Policy {
	defaultMu.RLock()
	p := defaultPolicy
	defaultMu.RUnlock()
	if p != nil {
		return p
	}

	defaultOnce.Do(initDefault)

	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultPolicy
}

// SetDefault installs p as the process-wide policy. nil is ignored.
func SetDefault(p *Policy) {
	if p == nil {
		return
	}
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultPolicy = p
}

// Package-level functions using the default policy

// SetThreshold sets the threshold of the default policy
func SetThreshold(level core.Level) { Default().SetThreshold(level) }

// Threshold returns the threshold of the default policy
func Threshold() core.Level { return Default().Threshold() }

// SetSink replaces the sink of the default policy
func SetSink(fn sink.Func) { Default().SetSink(fn) }

// GetSink returns the sink of the default policy
func GetSink() sink.Func { return Default().Sink() }

// AddSink appends fn to the sink of the default policy
func AddSink(fn sink.Func) { Default().AddSink(fn) }

// PerformWithSink runs work with s as the default policy's sink
func PerformWithSink(s sink.Func, work func() error) error {
	return Default().PerformWithSink(s, work)
}

// PerformWithPrefix runs work with prefix appended to the default policy's prefix
func PerformWithPrefix(prefix string, work func() error) error {
	return Default().PerformWithPrefix(prefix, work)
}

// Format renders rec with the default policy's formatter
func Format(rec core.Record) string { return Default().Format(rec) }

// LogNative logs a native record through the default policy
func LogNative(level core.Level, file string, line int, format string, args ...any) {
	Default().LogNative(level, file, line, format, args...)
}

// LogScript logs a script record through the default policy
func LogScript(level core.Level, message string) {
	Default().LogScript(level, message)
}

// Trace logs at TraceLevel through the default policy
func Trace(format string, args ...any) {
	if !traceEnabled {
		return
	}
	Default().logAt(core.TraceLevel, 1, format, args)
}

// Info logs at InfoLevel through the default policy
func Info(format string, args ...any) {
	Default().logAt(core.InfoLevel, 1, format, args)
}

// Warn logs at WarningLevel through the default policy
func Warn(format string, args ...any) {
	Default().logAt(core.WarningLevel, 1, format, args)
}

// Error logs at ErrorLevel through the default policy
func Error(format string, args ...any) {
	Default().logAt(core.ErrorLevel, 1, format, args)
}

// Fatal logs at FatalLevel through the default policy. It does not exit.
func Fatal(format string, args ...any) {
	Default().logAt(core.FatalLevel, 1, format, args)
}

// Advice logs a warning prefixed with AdvicePrefix through the default policy
func Advice(format string, args ...any) {
	Default().logAt(core.WarningLevel, 1, AdvicePrefix+format, args)
}
