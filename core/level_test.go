package core

import (
	"errors"
	"testing"
)

func TestLevel_String(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{TraceLevel, "trace"},
		{InfoLevel, "info"},
		{WarningLevel, "warn"},
		{ErrorLevel, "error"},
		{FatalLevel, "fatal"},
		{Level(9), "level(9)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.level.String(); got != tt.want {
				t.Errorf("Level.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLevel_Order(t *testing.T) {
	order := []Level{TraceLevel, InfoLevel, WarningLevel, ErrorLevel, FatalLevel}
	for i := 1; i < len(order); i++ {
		if !(order[i-1] < order[i]) {
			t.Errorf("expected %v < %v", order[i-1], order[i])
		}
	}
	if int(TraceLevel) != 0 || int(FatalLevel) != 4 {
		t.Errorf("unexpected level values: trace=%d fatal=%d", TraceLevel, FatalLevel)
	}
}

func TestLevel_Clamp(t *testing.T) {
	if got := Level(-3).Clamp(); got != TraceLevel {
		t.Errorf("Clamp(-3) = %v, want trace", got)
	}
	if got := Level(12).Clamp(); got != FatalLevel {
		t.Errorf("Clamp(12) = %v, want fatal", got)
	}
	if got := ErrorLevel.Clamp(); got != ErrorLevel {
		t.Errorf("Clamp(error) = %v, want error", got)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"trace", TraceLevel},
		{"DEBUG", TraceLevel},
		{"info", InfoLevel},
		{"Warning", WarningLevel},
		{"warn", WarningLevel},
		{" error ", ErrorLevel},
		{"fatal", FatalLevel},
		{"3", ErrorLevel},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if err != nil {
				t.Fatalf("ParseLevel(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}

	for _, bad := range []string{"", "verbose", "7", "-1"} {
		if _, err := ParseLevel(bad); !errors.Is(err, ErrUnknownLevel) {
			t.Errorf("ParseLevel(%q) error = %v, want ErrUnknownLevel", bad, err)
		}
	}
}
