package sloghandler

import (
	"context"
	"log/slog"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/philipp01105/bridgelog/core"
	"github.com/philipp01105/bridgelog/logpolicy"
)

// LevelFatal is the lowest slog level logged at core.FatalLevel.
const LevelFatal = slog.LevelError + 4

// Handler is a slog.Handler that logs native records through a Policy.
// Attributes are appended to the message as key=value pairs; groups
// are flattened into dotted keys.
type Handler struct {
	policy *logpolicy.Policy
	attrs  string
	group  string
}

var _ slog.Handler = (*Handler)(nil)

// New creates a Handler for p. A nil p logs through logpolicy.Default.
func New(p *logpolicy.Policy) *Handler {
	return &Handler{policy: p}
}

func (h *Handler) target() *logpolicy.Policy {
	if h.policy != nil {
		return h.policy
	}
	return logpolicy.Default()
}

// Enabled reports whether the policy threshold passes records at level.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return h.target().Enabled(Level(level))
}

// Handle renders the record and logs it with the caller's position.
func (h *Handler) Handle(_ context.Context, record slog.Record) error {
	level := Level(record.Level)
	p := h.target()
	if !p.Enabled(level) {
		return nil
	}

	var sb strings.Builder
	sb.WriteString(record.Message)
	sb.WriteString(h.attrs)
	record.Attrs(func(a slog.Attr) bool {
		appendAttr(&sb, h.group, a)
		return true
	})

	var file string
	var line int
	if record.PC != 0 {
		frame, _ := runtime.CallersFrames([]uintptr{record.PC}).Next()
		file, line = frame.File, frame.Line
	}

	p.LogNative(level, file, line, sb.String())
	return nil
}

// WithAttrs returns a Handler that appends attrs to every message.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	var sb strings.Builder
	sb.WriteString(h.attrs)
	for _, a := range attrs {
		appendAttr(&sb, h.group, a)
	}
	return &Handler{
		policy: h.policy,
		attrs:  sb.String(),
		group:  h.group,
	}
}

// WithGroup returns a Handler that qualifies later attribute keys with name.
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	group := name
	if h.group != "" {
		group = h.group + "." + name
	}
	return &Handler{
		policy: h.policy,
		attrs:  h.attrs,
		group:  group,
	}
}

// Level maps a slog level onto a core level.
func Level(level slog.Level) core.Level {
	switch {
	case level >= LevelFatal:
		return core.FatalLevel
	case level >= slog.LevelError:
		return core.ErrorLevel
	case level >= slog.LevelWarn:
		return core.WarningLevel
	case level >= slog.LevelInfo:
		return core.InfoLevel
	default:
		return core.TraceLevel
	}
}

func appendAttr(sb *strings.Builder, group string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}

	key := a.Key
	switch {
	case group == "":
	case key == "":
		key = group
	default:
		key = group + "." + key
	}

	if a.Value.Kind() == slog.KindGroup {
		for _, ga := range a.Value.Group() {
			appendAttr(sb, key, ga)
		}
		return
	}

	sb.WriteByte(' ')
	sb.WriteString(key)
	sb.WriteByte('=')
	sb.WriteString(formatValue(a.Value))
}

func formatValue(v slog.Value) string {
	switch v.Kind() {
	case slog.KindString:
		return quoteIfNeeded(v.String())
	case slog.KindTime:
		return v.Time().Format(time.RFC3339Nano)
	case slog.KindAny:
		if err, ok := v.Any().(error); ok {
			return quoteIfNeeded(err.Error())
		}
		return quoteIfNeeded(v.String())
	default:
		return v.String()
	}
}

func quoteIfNeeded(s string) string {
	if s == "" || strings.ContainsAny(s, " =\"\t\n") {
		return strconv.Quote(s)
	}
	return s
}
