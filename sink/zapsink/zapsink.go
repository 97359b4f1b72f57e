// Package zapsink forwards bridge records to a *zap.Logger, so that
// native and script logs show up in an application's main log stream.
//
// Records keep their level except FatalLevel, which is written at zap's
// ErrorLevel with severity=fatal: a bridge fatal must never terminate the
// process through zap's Fatal path.
package zapsink

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/bridgelog/core"
	"github.com/philipp01105/bridgelog/sink"
)

// New returns a sink that forwards each record to l.
func New(l *zap.Logger) sink.Func {
	if l == nil {
		return nil
	}
	return func(rec core.Record) {
		ce := l.Check(Level(rec.Level), rec.Message)
		if ce == nil {
			return
		}
		if rec.HasTime() {
			ce.Time = rec.Time
		}

		fields := make([]zap.Field, 0, 4)
		fields = append(fields, zap.Stringer("source", rec.Source))
		if rec.HasFile() {
			fields = append(fields, zap.String("file", rec.File))
		}
		if rec.HasLine() {
			fields = append(fields, zap.Int("line", rec.Line))
		}
		if rec.Level == core.FatalLevel {
			fields = append(fields, zap.String("severity", "fatal"))
		}
		ce.Write(fields...)
	}
}

// Level maps a bridge level to the zap level records are written at.
func Level(l core.Level) zapcore.Level {
	switch l.Clamp() {
	case core.TraceLevel:
		return zapcore.DebugLevel
	case core.InfoLevel:
		return zapcore.InfoLevel
	case core.WarningLevel:
		return zapcore.WarnLevel
	default:
		return zapcore.ErrorLevel
	}
}
