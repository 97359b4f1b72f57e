package logpolicy

import (
	"fmt"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"

	"github.com/philipp01105/bridgelog/core"
	"github.com/philipp01105/bridgelog/formatter"
	"github.com/philipp01105/bridgelog/sink"
	"github.com/philipp01105/bridgelog/sink/consolesink"
)

// Policy holds the logging state shared by all call sites: the
// threshold, the active sink and the active prefix.
type Policy struct {
	threshold atomic.Int32

	// base is the sink set with SetSink and AddSink. sink and prefix are
	// the effective values derived from base and the active scopes.
	mu       sync.RWMutex
	base     sink.Func
	sink     sink.Func
	prefix   string
	sinks    []*sinkScope
	prefixes []*prefixScope

	formatter       formatter.Formatter
	clock           func() time.Time
	maxMessageBytes int
	release         bool
	escalationLevel core.Level
	escalate        func(core.Record)
	onFault         func(error)
	faults          atomic.Uint64
	writers         []sink.Writer
}

// Builder provides a fluent API for building Policy instances
type Builder struct {
	cfg       Config
	sink      sink.Func
	sinkSet   bool
	formatter formatter.Formatter
	clock     func() time.Time
	clockSet  bool
	escalate  func(core.Record)
	onFault   func(error)
}

// NewBuilder creates a new policy builder starting from DefaultConfig
func NewBuilder() *Builder {
	return &Builder{cfg: DefaultConfig()}
}

// WithConfig replaces the configuration
func (b *Builder) WithConfig(cfg Config) *Builder {
	b.cfg = cfg
	return b
}

// WithThreshold sets an explicit threshold
func (b *Builder) WithThreshold(level core.Level) *Builder {
	b.cfg.Threshold = &level
	return b
}

// WithRelease selects release or debug defaults
func (b *Builder) WithRelease(release bool) *Builder {
	b.cfg.Release = release
	return b
}

// WithSink sets the initial sink. Passing nil builds a policy without a sink.
// Without WithSink the policy writes to a console sink on stderr.
func (b *Builder) WithSink(fn sink.Func) *Builder {
	b.sink = fn
	b.sinkSet = true
	return b
}

// WithFormatter sets the formatter used by Format and the default console sink
func (b *Builder) WithFormatter(f formatter.Formatter) *Builder {
	b.formatter = f
	return b
}

// WithClock sets the timestamp source. A nil clock produces records without timestamps.
func (b *Builder) WithClock(clock func() time.Time) *Builder {
	b.clock = clock
	b.clockSet = true
	return b
}

// WithEscalation sets the function that receives native records at or
// above the escalation level in debug configurations
func (b *Builder) WithEscalation(fn func(core.Record)) *Builder {
	b.escalate = fn
	return b
}

// WithFaultHandler sets the function that receives recovered sink failures
func (b *Builder) WithFaultHandler(fn func(error)) *Builder {
	b.onFault = fn
	return b
}

// Build creates the Policy instance
func (b *Builder) Build() *Policy {
	p := &Policy{
		formatter:       b.formatter,
		maxMessageBytes: b.cfg.MaxMessageBytes,
		release:         b.cfg.Release,
		escalationLevel: b.cfg.EscalationLevel,
		escalate:        b.escalate,
		onFault:         b.onFault,
	}
	p.threshold.Store(int32(b.cfg.EffectiveThreshold()))

	if p.formatter == nil {
		p.formatter = formatter.NewTextFormatter(formatter.Config{})
	}
	if p.onFault == nil {
		p.onFault = stderrFault
	}

	switch {
	case b.clockSet:
		p.clock = b.clock
	case b.cfg.CoarseClock:
		core.StartCoarseClock()
		p.clock = core.CoarseNow
	default:
		p.clock = time.Now
	}

	if b.sinkSet {
		p.base = b.sink
	} else {
		p.base = p.consoleSink(b.cfg.Console)
	}
	p.sink = p.base
	return p
}

// consoleSink builds the platform console sink and remembers its writer for Close
func (p *Policy) consoleSink(cfg ConsoleConfig) sink.Func {
	f := p.formatter
	if cfg.Format == FormatJSON {
		f = formatter.NewJSONFormatter(formatter.Config{})
	}
	fn, w := consolesink.Func(consolesink.Config{
		Formatter: f,
		Async:     cfg.Async,
	}, p.fault)
	p.writers = append(p.writers, w)
	return fn
}

func stderrFault(err error) {
	fmt.Fprintf(os.Stderr, "bridgelog: %v\n", err)
}

// SetThreshold sets the minimum level that is dispatched
func (p *Policy) SetThreshold(level core.Level) {
	p.mu.Lock()
	p.threshold.Store(int32(level))
	p.mu.Unlock()
}

// Threshold returns the minimum level that is dispatched
func (p *Policy) Threshold() core.Level {
	return core.Level(p.threshold.Load())
}

// Enabled reports whether a record at level would pass the threshold
func (p *Policy) Enabled(level core.Level) bool {
	return level >= p.Threshold()
}

// SetSink replaces the sink used outside PerformWithSink scopes. nil
// means no sink. While a scope is active its sink stays in effect.
func (p *Policy) SetSink(fn sink.Func) {
	p.mu.Lock()
	p.base = fn
	p.refreshSink()
	p.mu.Unlock()
}

// Sink returns the active sink, including a scoped override
func (p *Policy) Sink() sink.Func {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.sink
}

// AddSink appends fn to the sink set with SetSink: the previous sink
// runs first, then fn. A failure in one does not stop the other.
func (p *Policy) AddSink(fn sink.Func) {
	if fn == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.base == nil {
		p.base = fn
	} else {
		p.base = sink.Chain(p.isolate(p.base), p.isolate(fn))
	}
	p.refreshSink()
}

// Format renders rec with the policy's formatter. It never fails: a
// formatter error falls back to the default text line.
func (p *Policy) Format(rec core.Record) string {
	out, err := p.formatter.Format(rec)
	if err != nil || out == nil {
		return formatter.String(rec)
	}
	return string(out)
}

// LogNative logs a message from a Go call site. args are only rendered
// into format after the level passed the threshold; with no args the
// format string is used verbatim.
func (p *Policy) LogNative(level core.Level, file string, line int, format string, args ...any) {
	if level < p.Threshold() {
		return
	}
	p.dispatch(level, core.NativeSource, file, line, format, args)
}

// LogScript logs a message rendered by the script runtime. It carries no
// file or line; the runtime may embed them in message.
func (p *Policy) LogScript(level core.Level, message string) {
	if level < p.Threshold() {
		return
	}
	p.dispatch(level, core.ScriptSource, "", 0, message, nil)
}

// Faults returns the number of recovered sink failures
func (p *Policy) Faults() uint64 {
	return p.faults.Load()
}

// Close closes the sink writers the Builder created
func (p *Policy) Close() error {
	return sink.Multi(p.writers...).Close()
}

// dispatch is the single path shared by native and script records.
// The sink is invoked outside the lock, so it may reconfigure the policy.
func (p *Policy) dispatch(level core.Level, source core.Source, file string, line int, format string, args []any) {
	p.mu.RLock()
	fn, prefix := p.sink, p.prefix
	p.mu.RUnlock()

	escalate := p.shouldEscalate(level, source)
	if fn == nil && !escalate {
		return
	}

	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	if prefix != "" {
		msg = prefix + msg
	}

	rec := core.Record{
		Level:   level,
		Source:  source,
		File:    file,
		Line:    line,
		Message: core.SanitizeMessage(msg, p.maxMessageBytes),
	}
	if p.clock != nil {
		rec.Time = p.clock()
	}

	if fn != nil {
		p.invoke(fn, rec)
	}
	if escalate {
		p.invoke(p.escalate, rec)
	}
}

func (p *Policy) shouldEscalate(level core.Level, source core.Source) bool {
	return p.escalate != nil && !p.release && source == core.NativeSource && level >= p.escalationLevel
}

// invoke calls fn and converts a panic into a fault
func (p *Policy) invoke(fn sink.Func, rec core.Record) {
	defer func() {
		if r := recover(); r != nil {
			p.fault(errors.Errorf("sink panicked on %s record: %v", rec.Level, r))
		}
	}()
	fn(rec)
}

func (p *Policy) isolate(fn sink.Func) sink.Func {
	return func(rec core.Record) {
		p.invoke(fn, rec)
	}
}

func (p *Policy) fault(err error) {
	p.faults.Add(1)
	defer func() { _ = recover() }()
	p.onFault(err)
}
