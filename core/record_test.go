package core

import (
	"path/filepath"
	"testing"
	"time"
)

func TestRecord_Presence(t *testing.T) {
	var r Record
	if r.HasTime() || r.HasFile() || r.HasLine() {
		t.Fatalf("zero record reports present fields: %+v", r)
	}

	r = Record{Time: time.Now(), File: "main.go", Line: 12}
	if !r.HasTime() || !r.HasFile() || !r.HasLine() {
		t.Fatalf("populated record reports absent fields: %+v", r)
	}
}

func TestSource_String(t *testing.T) {
	if NativeSource.String() != "native" {
		t.Errorf("NativeSource.String() = %q", NativeSource.String())
	}
	if ScriptSource.String() != "script" {
		t.Errorf("ScriptSource.String() = %q", ScriptSource.String())
	}
	if Source(0).String() != "unknown" {
		t.Errorf("Source(0).String() = %q", Source(0).String())
	}
}

func TestCaller(t *testing.T) {
	file, line := Caller(0)
	if filepath.Base(file) != "record_test.go" {
		t.Errorf("Caller(0) file = %q, want record_test.go", file)
	}
	if line == 0 {
		t.Error("Expected non-zero line number")
	}
}

func TestCaller_OutOfRange(t *testing.T) {
	file, line := Caller(1 << 20)
	if file != "" || line != 0 {
		t.Errorf("Caller(huge) = %q, %d; want empty", file, line)
	}
}
