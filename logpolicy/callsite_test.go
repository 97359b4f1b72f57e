package logpolicy

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/philipp01105/bridgelog/core"
)

func TestCallSiteHelpers(t *testing.T) {
	var rec recorder
	p := newTestPolicy(core.TraceLevel, rec.sink)

	_, _, line, _ := runtime.Caller(0)
	p.Trace("t")
	p.Info("i %d", 1)
	p.Warn("w")
	p.Error("e")
	p.Fatal("f")
	p.Advice("use %s instead", "X")

	want := []struct {
		level core.Level
		msg   string
	}{
		{core.TraceLevel, "t"},
		{core.InfoLevel, "i 1"},
		{core.WarningLevel, "w"},
		{core.ErrorLevel, "e"},
		{core.FatalLevel, "f"},
		{core.WarningLevel, "(ADVICE) use X instead"},
	}

	got := rec.all()
	if !traceEnabled {
		want = want[1:]
		line++
	}
	if len(got) != len(want) {
		t.Fatalf("got %d records, want %d", len(got), len(want))
	}
	for i, w := range want {
		r := got[i]
		if r.Level != w.level || r.Message != w.msg {
			t.Errorf("record %d = {%s %q}, want {%s %q}", i, r.Level, r.Message, w.level, w.msg)
		}
		if r.Source != core.NativeSource {
			t.Errorf("record %d source = %s, want native", i, r.Source)
		}
		if filepath.Base(r.File) != "callsite_test.go" {
			t.Errorf("record %d file = %q, want callsite_test.go", i, r.File)
		}
		if r.Line != line+1+i {
			t.Errorf("record %d line = %d, want %d", i, r.Line, line+1+i)
		}
	}
}

func TestCallSiteHelpers_Filtered(t *testing.T) {
	var rec recorder
	p := newTestPolicy(core.ErrorLevel, rec.sink)

	p.Trace("t")
	p.Info("i")
	p.Warn("w")
	p.Advice("a")

	if len(rec.all()) != 0 {
		t.Errorf("expected no records below error, got %d", len(rec.all()))
	}
}

func TestPackageLevelHelpers(t *testing.T) {
	var rec recorder
	prev := Default()
	t.Cleanup(func() { SetDefault(prev) })

	SetDefault(newTestPolicy(core.TraceLevel, rec.sink))

	_, _, line, _ := runtime.Caller(0)
	Info("hello %s", "world")
	Warn("careful")
	Error("e")
	Fatal("f")
	Advice("a")
	Trace("t")

	want := []struct {
		level core.Level
		msg   string
	}{
		{core.InfoLevel, "hello world"},
		{core.WarningLevel, "careful"},
		{core.ErrorLevel, "e"},
		{core.FatalLevel, "f"},
		{core.WarningLevel, "(ADVICE) a"},
		{core.TraceLevel, "t"},
	}
	if !traceEnabled {
		want = want[:len(want)-1]
	}

	got := rec.all()
	if len(got) != len(want) {
		t.Fatalf("got %d records, want %d", len(got), len(want))
	}
	for i, w := range want {
		r := got[i]
		if r.Level != w.level || r.Message != w.msg {
			t.Errorf("record %d = {%s %q}, want {%s %q}", i, r.Level, r.Message, w.level, w.msg)
		}
		if filepath.Base(r.File) != "callsite_test.go" || r.Line != line+1+i {
			t.Errorf("record %d position = %s:%d, want callsite_test.go:%d", i, r.File, r.Line, line+1+i)
		}
	}
}
