package logpolicy

import (
	"github.com/philipp01105/bridgelog/core"
)

// AdvicePrefix is prepended to messages logged with Advice.
const AdvicePrefix = "(ADVICE) "

// Trace logs at TraceLevel with the caller's position.
// It is a no-op when built with the bridgelog_notrace tag.
func (p *Policy) Trace(format string, args ...any) {
	if !traceEnabled {
		return
	}
	p.logAt(core.TraceLevel, 1, format, args)
}

// Info logs at InfoLevel with the caller's position
func (p *Policy) Info(format string, args ...any) {
	p.logAt(core.InfoLevel, 1, format, args)
}

// Warn logs at WarningLevel with the caller's position
func (p *Policy) Warn(format string, args ...any) {
	p.logAt(core.WarningLevel, 1, format, args)
}

// Error logs at ErrorLevel with the caller's position
func (p *Policy) Error(format string, args ...any) {
	p.logAt(core.ErrorLevel, 1, format, args)
}

// Fatal logs at FatalLevel with the caller's position. It does not exit.
func (p *Policy) Fatal(format string, args ...any) {
	p.logAt(core.FatalLevel, 1, format, args)
}

// Advice logs a warning prefixed with AdvicePrefix
func (p *Policy) Advice(format string, args ...any) {
	p.logAt(core.WarningLevel, 1, AdvicePrefix+format, args)
}

// logAt resolves the position skip frames above its caller and logs there.
func (p *Policy) logAt(level core.Level, skip int, format string, args []any) {
	if level < p.Threshold() {
		return
	}
	file, line := core.Caller(skip + 1)
	p.dispatch(level, core.NativeSource, file, line, format, args)
}
