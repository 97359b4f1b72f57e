package logpolicy_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/philipp01105/bridgelog/core"
	"github.com/philipp01105/bridgelog/logpolicy"
	"github.com/philipp01105/bridgelog/sink/metricsink"
	"github.com/philipp01105/bridgelog/sink/zapsink"
)

func TestMirrorIntoAppLogger(t *testing.T) {
	obsCore, logs := observer.New(zapcore.DebugLevel)
	metrics := metricsink.New("app")
	reg := prometheus.NewRegistry()
	reg.MustRegister(metrics.Collectors()...)

	p := logpolicy.NewBuilder().
		WithThreshold(core.InfoLevel).
		WithSink(zapsink.New(zap.New(obsCore))).
		Build()
	p.AddSink(metrics.Func())

	p.LogNative(core.TraceLevel, "a.go", 1, "filtered")
	p.LogNative(core.ErrorLevel, "a.go", 2, "native failure")
	p.LogScript(core.InfoLevel, "script hello")

	if logs.Len() != 2 {
		t.Fatalf("zap saw %d entries, want 2", logs.Len())
	}
	if got := logs.All()[0].Message; got != "native failure" {
		t.Errorf("first zap message = %q", got)
	}
	if got := testutil.ToFloat64(metrics.Records.WithLabelValues("error", "native")); got != 1 {
		t.Errorf("error/native counter = %v, want 1", got)
	}
	if got := testutil.ToFloat64(metrics.Records.WithLabelValues("info", "script")); got != 1 {
		t.Errorf("info/script counter = %v, want 1", got)
	}
	if got := testutil.ToFloat64(metrics.Records.WithLabelValues("trace", "native")); got != 0 {
		t.Errorf("trace/native counter = %v, want 0", got)
	}
}
