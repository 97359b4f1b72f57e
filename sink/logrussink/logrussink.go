// Package logrussink forwards bridge records to a *logrus.Logger.
package logrussink

import (
	"github.com/sirupsen/logrus"

	"github.com/philipp01105/bridgelog/core"
	"github.com/philipp01105/bridgelog/sink"
)

// New returns a sink that forwards each record to l.
// FatalLevel records are logged at logrus.ErrorLevel with severity=fatal
// because logrus exits the process on Fatal.
func New(l *logrus.Logger) sink.Func {
	if l == nil {
		return nil
	}
	return func(rec core.Record) {
		level := Level(rec.Level)
		if !l.IsLevelEnabled(level) {
			return
		}

		fields := logrus.Fields{"source": rec.Source.String()}
		if rec.HasFile() {
			fields["file"] = rec.File
		}
		if rec.HasLine() {
			fields["line"] = rec.Line
		}
		if rec.Level == core.FatalLevel {
			fields["severity"] = "fatal"
		}

		entry := l.WithFields(fields)
		if rec.HasTime() {
			entry = entry.WithTime(rec.Time)
		}
		entry.Log(level, rec.Message)
	}
}

// Level maps a bridge level to the logrus level records are written at.
func Level(l core.Level) logrus.Level {
	switch l.Clamp() {
	case core.TraceLevel:
		return logrus.TraceLevel
	case core.InfoLevel:
		return logrus.InfoLevel
	case core.WarningLevel:
		return logrus.WarnLevel
	default:
		return logrus.ErrorLevel
	}
}
