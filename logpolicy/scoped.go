package logpolicy

import (
	"slices"
	"strings"

	"github.com/philipp01105/bridgelog/sink"
)

// Active scopes are kept in entry order. Each scope removes only its own
// entry on exit, so scopes on different goroutines may end in any order
// and the values outside all scopes always come back.
type sinkScope struct {
	fn sink.Func
}

type prefixScope struct {
	prefix string
}

// PerformWithSink runs work with s as the active sink and restores the
// previous sink afterwards, including when work returns an error or
// panics. The override is visible to every goroutine logging through p.
func (p *Policy) PerformWithSink(s sink.Func, work func() error) error {
	scope := &sinkScope{fn: s}

	p.mu.Lock()
	p.sinks = append(p.sinks, scope)
	p.refreshSink()
	p.mu.Unlock()

	defer func() {
		p.mu.Lock()
		p.sinks = removeScope(p.sinks, scope)
		p.refreshSink()
		p.mu.Unlock()
	}()

	return work()
}

// PerformWithPrefix runs work with prefix appended to the active prefix.
// The prefix is removed on every exit path, so nested calls unwind in order.
func (p *Policy) PerformWithPrefix(prefix string, work func() error) error {
	scope := &prefixScope{prefix: prefix}

	p.mu.Lock()
	p.prefixes = append(p.prefixes, scope)
	p.refreshPrefix()
	p.mu.Unlock()

	defer func() {
		p.mu.Lock()
		p.prefixes = removeScope(p.prefixes, scope)
		p.refreshPrefix()
		p.mu.Unlock()
	}()

	return work()
}

// Prefix returns the active prefix
func (p *Policy) Prefix() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.prefix
}

// refreshSink recomputes the effective sink. Callers hold p.mu.
func (p *Policy) refreshSink() {
	if n := len(p.sinks); n > 0 {
		p.sink = p.sinks[n-1].fn
		return
	}
	p.sink = p.base
}

// refreshPrefix concatenates the active prefixes in entry order. Callers hold p.mu.
func (p *Policy) refreshPrefix() {
	switch len(p.prefixes) {
	case 0:
		p.prefix = ""
	case 1:
		p.prefix = p.prefixes[0].prefix
	default:
		var sb strings.Builder
		for _, s := range p.prefixes {
			sb.WriteString(s.prefix)
		}
		p.prefix = sb.String()
	}
}

func removeScope[S comparable](scopes []S, scope S) []S {
	if i := slices.Index(scopes, scope); i >= 0 {
		return slices.Delete(scopes, i, i+1)
	}
	return scopes
}
