package metricsink

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/philipp01105/bridgelog/core"
)

func TestMetrics_Counts(t *testing.T) {
	m := New("bridge")
	reg := prometheus.NewRegistry()
	reg.MustRegister(m.Collectors()...)

	fn := m.Func()
	fn(core.Record{Level: core.ErrorLevel, Source: core.NativeSource})
	fn(core.Record{Level: core.ErrorLevel, Source: core.NativeSource})
	fn(core.Record{Level: core.WarningLevel, Source: core.ScriptSource})

	if got := testutil.ToFloat64(m.Records.WithLabelValues("error", "native")); got != 2 {
		t.Errorf("error/native = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.Records.WithLabelValues("warn", "script")); got != 1 {
		t.Errorf("warn/script = %v, want 1", got)
	}
	if n := testutil.CollectAndCount(m.Records); n != 2 {
		t.Errorf("Expected 2 series, got %d", n)
	}
}
