package core

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnknownLevel is returned by ParseLevel for unrecognised input.
var ErrUnknownLevel = errors.New("unknown log level")

// Level represents the severity of a log record
type Level int8

const (
	// TraceLevel for very detailed diagnostics
	TraceLevel Level = iota
	// InfoLevel for general informational messages
	InfoLevel
	// WarningLevel for recoverable problems
	WarningLevel
	// ErrorLevel for errors
	ErrorLevel
	// FatalLevel for unrecoverable errors. Logging at FatalLevel does not exit.
	FatalLevel
)

var levelNames = [...]string{
	TraceLevel:   "trace",
	InfoLevel:    "info",
	WarningLevel: "warn",
	ErrorLevel:   "error",
	FatalLevel:   "fatal",
}

// String returns the lower-case name of the level
func (l Level) String() string {
	if l.Valid() {
		return levelNames[l]
	}
	return "level(" + strconv.Itoa(int(l)) + ")"
}

// Valid reports whether l is one of the defined levels.
func (l Level) Valid() bool {
	return l >= TraceLevel && l <= FatalLevel
}

// Clamp maps out-of-range values onto the nearest defined level.
func (l Level) Clamp() Level {
	switch {
	case l < TraceLevel:
		return TraceLevel
	case l > FatalLevel:
		return FatalLevel
	default:
		return l
	}
}

// ParseLevel converts a level name or number to a Level
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace", "debug":
		return TraceLevel, nil
	case "info", "log":
		return InfoLevel, nil
	case "warn", "warning":
		return WarningLevel, nil
	case "error":
		return ErrorLevel, nil
	case "fatal":
		return FatalLevel, nil
	}
	if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil && Level(n).Valid() {
		return Level(n), nil
	}
	return InfoLevel, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
}
