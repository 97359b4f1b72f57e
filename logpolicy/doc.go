// Package logpolicy is the public API of bridgelog. It decides which
// records are dispatched, where they go, and what prefix they carry.
//
// A Policy holds three pieces of state: the threshold, the active
// sink and the active prefix. Records below the threshold cost a
// single atomic load; message arguments are only rendered once a
// record passed it.
//
// Two entry points feed a Policy. Go call sites use LogNative, or the
// helpers Info, Warn, Error and friends which capture the caller's
// file and line:
//
//	policy.Info("bundle loaded in %dms", elapsed)
//
// The embedded script runtime uses LogScript, usually through the
// scriptbridge package.
//
// Sinks can be replaced, appended to, or overridden for the duration
// of a function:
//
//	p := logpolicy.NewBuilder().
//	    WithConfig(logpolicy.DefaultConfig().WithThreshold(core.TraceLevel)).
//	    WithSink(mySink).
//	    Build()
//
//	err := p.PerformWithSink(captured, func() error {
//	    return runBundle()
//	})
//
// Scoped overrides are global: every goroutine logging through the
// Policy observes them until the function returns.
//
// The package-level functions delegate to Default, a Policy built on
// first use from DefaultConfig and the BRIDGELOG_* environment
// variables. SetDefault installs another one.
package logpolicy
