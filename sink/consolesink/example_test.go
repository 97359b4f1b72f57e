package consolesink_test

import (
	"os"

	"github.com/philipp01105/bridgelog/core"
	"github.com/philipp01105/bridgelog/formatter"
	"github.com/philipp01105/bridgelog/sink/consolesink"
)

// Create a synchronous console sink writing to stdout.
func ExampleNew() {
	w := consolesink.New(consolesink.Config{Writer: os.Stdout})
	defer w.Close()

	w.Write(core.Record{Level: core.InfoLevel, File: "bridge.go", Line: 7, Message: "module loaded"})
	// Output:
	// [info][bridge.go:7] module loaded
}

// Create an async console sink with a JSON formatter.
func ExampleNew_async() {
	w := consolesink.New(consolesink.Config{
		Writer:     os.Stdout,
		Async:      true,
		BufferSize: 4096,
		Formatter:  formatter.NewJSONFormatter(formatter.Config{}),
	})

	w.Write(core.Record{Level: core.WarningLevel, Source: core.ScriptSource, Message: "slow bridge call"})
	w.Close()
	// Output:
	// {"level":"warn","source":"script","message":"slow bridge call"}
}
