package logrussink

import (
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/philipp01105/bridgelog/core"
)

func TestNew_Forwards(t *testing.T) {
	l, hook := test.NewNullLogger()
	l.SetLevel(logrus.TraceLevel)
	fn := New(l)

	at := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	fn(core.Record{Time: at, Level: core.WarningLevel, Source: core.ScriptSource, File: "index.bundle", Line: 4, Message: "slow"})

	e := hook.LastEntry()
	if e == nil {
		t.Fatal("Expected an entry")
	}
	if e.Message != "slow" || e.Level != logrus.WarnLevel {
		t.Errorf("unexpected entry %v %q", e.Level, e.Message)
	}
	if !e.Time.Equal(at) {
		t.Errorf("Expected record time, got %v", e.Time)
	}
	if e.Data["source"] != "script" || e.Data["file"] != "index.bundle" || e.Data["line"] != 4 {
		t.Errorf("unexpected data %v", e.Data)
	}
}

func TestNew_FatalDoesNotExit(t *testing.T) {
	l, hook := test.NewNullLogger()
	New(l)(core.Record{Level: core.FatalLevel, Message: "fatal"})

	e := hook.LastEntry()
	if e == nil || e.Level != logrus.ErrorLevel || e.Data["severity"] != "fatal" {
		t.Errorf("unexpected entry %+v", e)
	}
}

func TestNew_RespectsLoggerLevel(t *testing.T) {
	l, hook := test.NewNullLogger()
	l.SetLevel(logrus.InfoLevel)
	fn := New(l)

	fn(core.Record{Level: core.TraceLevel, Message: "hidden"})
	if len(hook.AllEntries()) != 0 {
		t.Error("Expected trace to be filtered by logrus level")
	}
	if New(nil) != nil {
		t.Error("New(nil) should be nil")
	}
}
