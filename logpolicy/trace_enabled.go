//go:build !bridgelog_notrace
// +build !bridgelog_notrace

package logpolicy

const traceEnabled = true
