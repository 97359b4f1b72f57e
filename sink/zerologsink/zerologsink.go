// Package zerologsink forwards bridge records to a zerolog.Logger.
package zerologsink

import (
	"github.com/rs/zerolog"

	"github.com/philipp01105/bridgelog/core"
	"github.com/philipp01105/bridgelog/sink"
)

// New returns a sink that forwards each record to l. Events are created
// with WithLevel, so FatalLevel records do not exit the process.
func New(l zerolog.Logger) sink.Func {
	return func(rec core.Record) {
		ev := l.WithLevel(Level(rec.Level))
		if ev == nil {
			return
		}
		ev = ev.Stringer("source", rec.Source)
		if rec.HasFile() {
			ev = ev.Str("file", rec.File)
		}
		if rec.HasLine() {
			ev = ev.Int("line", rec.Line)
		}
		if rec.HasTime() {
			ev = ev.Time("record_time", rec.Time)
		}
		ev.Msg(rec.Message)
	}
}

// Level maps a bridge level to a zerolog level.
func Level(l core.Level) zerolog.Level {
	switch l.Clamp() {
	case core.TraceLevel:
		return zerolog.TraceLevel
	case core.InfoLevel:
		return zerolog.InfoLevel
	case core.WarningLevel:
		return zerolog.WarnLevel
	case core.ErrorLevel:
		return zerolog.ErrorLevel
	default:
		return zerolog.FatalLevel
	}
}
