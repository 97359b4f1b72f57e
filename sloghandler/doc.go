// Package sloghandler adapts a logpolicy.Policy to log/slog, so code
// written against the standard library's structured logging ends up
// in the same sinks as the rest of the bridge.
//
//	slog.SetDefault(slog.New(sloghandler.New(policy)))
//
// Attributes are rendered into the message as key=value pairs.
package sloghandler
