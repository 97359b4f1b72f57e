package sink

import (
	"github.com/philipp01105/bridgelog/core"
)

// Func consumes a log record. A nil Func means "no sink".
type Func func(rec core.Record)

// Chain returns a Func that calls every non-nil fn in order.
// It returns nil when no fn is set, and fn itself when only one is.
func Chain(fns ...Func) Func {
	live := make([]Func, 0, len(fns))
	for _, fn := range fns {
		if fn != nil {
			live = append(live, fn)
		}
	}
	switch len(live) {
	case 0:
		return nil
	case 1:
		return live[0]
	case 2:
		first, second := live[0], live[1]
		return func(rec core.Record) {
			first(rec)
			second(rec)
		}
	default:
		return func(rec core.Record) {
			for _, fn := range live {
				fn(rec)
			}
		}
	}
}

// Writer is a sink with its own output resource
type Writer interface {
	// Write outputs a record
	Write(rec core.Record) error

	// Close releases the underlying resource
	Close() error
}

// StatsProvider is implemented by writers that track delivery statistics
type StatsProvider interface {
	Stats() Snapshot
}

// FromWriter adapts w to a Func. Write errors go to onErr, which may be nil.
func FromWriter(w Writer, onErr func(error)) Func {
	if w == nil {
		return nil
	}
	return func(rec core.Record) {
		if err := w.Write(rec); err != nil && onErr != nil {
			onErr(err)
		}
	}
}
