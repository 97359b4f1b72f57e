package core

import (
	"runtime"
	"time"
)

// Source tags the origin of a record
type Source uint8

const (
	// NativeSource marks records logged from Go call sites
	NativeSource Source = iota + 1
	// ScriptSource marks records logged by the embedded script runtime
	ScriptSource
)

// String returns the name of the source
func (s Source) String() string {
	switch s {
	case NativeSource:
		return "native"
	case ScriptSource:
		return "script"
	default:
		return "unknown"
	}
}

// Record is a single log event as seen by sinks and formatters.
// A zero Time, an empty File and a non-positive Line mean the field is absent.
type Record struct {
	Time    time.Time
	Level   Level
	Source  Source
	File    string
	Line    int
	Message string
}

// HasTime reports whether the record carries a timestamp
func (r Record) HasTime() bool { return !r.Time.IsZero() }

// HasFile reports whether the record carries a file name
func (r Record) HasFile() bool { return r.File != "" }

// HasLine reports whether the record carries a line number
func (r Record) HasLine() bool { return r.Line > 0 }

// Caller returns the file and line of the function skip frames above
// the caller of Caller. It returns "", 0 when the frame is unavailable.
func Caller(skip int) (file string, line int) {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return "", 0
	}
	return file, line
}
