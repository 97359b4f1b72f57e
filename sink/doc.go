// Package sink provides the sink function type the policy dispatches to
// and the building blocks for concrete sinks.
//
// A Func receives each record that passed the policy threshold. Funcs
// compose with Chain, which calls them in registration order; this is
// what Policy.AddSink uses underneath.
//
// Sinks that own an output resource implement Writer and are adapted
// to a Func with FromWriter. MultiWriter fans a record out to several
// writers and combines their errors with go.uber.org/multierr.
//
// Async writers apply a per-level OverflowPolicy when their queue is
// full: DropNewest (default for Trace/Info/Warning), DropOldest, or
// Block with a configurable timeout (default for Error and Fatal).
// Dropped, blocked and processed counts are tracked by Stats.
//
// Sub-packages:
//
//   - consolesink writes formatted lines to a console writer (default: stderr).
//   - zapsink, logrussink and zerologsink forward records to an
//     application's existing logger.
//   - metricsink counts records with Prometheus counters.
package sink
