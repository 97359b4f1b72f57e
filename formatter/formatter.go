package formatter

import (
	"bytes"
	"io"
	"sync"

	"github.com/philipp01105/bridgelog/core"
)

// Formatter defines the interface for record formatters
type Formatter interface {
	// Format renders a record as a single line without a trailing newline
	Format(rec core.Record) ([]byte, error)
}

// WriterFormatter is an optional interface that formatters can implement
// to write a newline-terminated line directly to a writer without an
// intermediate byte slice allocation.
type WriterFormatter interface {
	// FormatTo formats a record and writes it directly to the writer
	FormatTo(rec core.Record, w io.Writer) error
}

// BufferFormatter is an optional interface that formatters can implement
// to format directly into a caller-provided buffer, avoiding internal
// buffer pool overhead.
type BufferFormatter interface {
	// FormatRecord appends the newline-terminated line to buf.
	FormatRecord(rec core.Record, buf *bytes.Buffer)
}

// DefaultTimestampFormat is the layout used when Config.TimestampFormat is empty.
const DefaultTimestampFormat = "2006-01-02 15:04:05.000"

// Config holds common formatter configuration
type Config struct {
	// TimestampFormat specifies the time layout (empty for DefaultTimestampFormat)
	TimestampFormat string
	// IncludeSource tags script-originated records in text output
	IncludeSource bool
}

var defaultText = NewTextFormatter(Config{})

// String renders rec with the default text formatter.
func String(rec core.Record) string {
	return defaultText.String(rec)
}

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}
