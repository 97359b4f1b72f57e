//go:build bridgelog_notrace
// +build bridgelog_notrace

package logpolicy

// Trace call sites compile to nothing with the bridgelog_notrace tag.
const traceEnabled = false
