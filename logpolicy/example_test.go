package logpolicy_test

import (
	"fmt"
	"os"

	"github.com/philipp01105/bridgelog/core"
	"github.com/philipp01105/bridgelog/logpolicy"
	"github.com/philipp01105/bridgelog/sink/consolesink"
)

func ExampleNewBuilder() {
	console, w := consolesink.Func(consolesink.Config{Writer: os.Stdout}, nil)
	defer w.Close()

	p := logpolicy.NewBuilder().
		WithConfig(logpolicy.DefaultConfig().WithThreshold(core.InfoLevel)).
		WithSink(console).
		WithClock(nil).
		Build()

	p.LogNative(core.TraceLevel, "bridge.go", 12, "filtered")
	p.LogNative(core.InfoLevel, "bridge.go", 14, "loaded %d modules", 3)
	p.LogScript(core.WarningLevel, "slow frame")
	// Output:
	// [info][bridge.go:14] loaded 3 modules
	// [warn] slow frame
}

func ExamplePolicy_PerformWithPrefix() {
	p := logpolicy.NewBuilder().
		WithThreshold(core.InfoLevel).
		WithSink(func(rec core.Record) { fmt.Println(rec.Message) }).
		Build()

	_ = p.PerformWithPrefix("[bundle] ", func() error {
		p.LogScript(core.InfoLevel, "started")
		return p.PerformWithPrefix("[init] ", func() error {
			p.LogScript(core.InfoLevel, "done")
			return nil
		})
	})
	p.LogScript(core.InfoLevel, "idle")
	// Output:
	// [bundle] started
	// [bundle] [init] done
	// idle
}

func ExamplePolicy_AddSink() {
	p := logpolicy.NewBuilder().
		WithSink(func(rec core.Record) { fmt.Println("console:", rec.Message) }).
		WithClock(nil).
		Build()
	p.AddSink(func(rec core.Record) { fmt.Println("file:", p.Format(rec)) })

	p.LogNative(core.ErrorLevel, "", 0, "disk full")
	// Output:
	// console: disk full
	// file: [error] disk full
}
