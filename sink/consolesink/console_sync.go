package consolesink

import (
	"github.com/philipp01105/bridgelog/core"
)

// SyncWriter writes each record on the caller's goroutine.
type SyncWriter struct {
	consoleBase
}

func newSyncWriter(cfg Config) *SyncWriter {
	w := &SyncWriter{}
	w.init(cfg)
	return w
}

// Write formats and writes a record synchronously.
func (w *SyncWriter) Write(rec core.Record) error {
	return w.write(rec)
}

// Close marks the writer closed. The underlying io.Writer is not closed.
func (w *SyncWriter) Close() error {
	w.markClosed()
	return nil
}
