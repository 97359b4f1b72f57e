// Package formatter defines how log records are rendered.
//
// TextFormatter produces the canonical bridge line: timestamp, level,
// file and line, then the message, each omitted when the record does
// not carry it. Output is deterministic for a given record, so tests
// can assert on exact strings. JSONFormatter renders the same fields,
// plus the record source, as one JSON object per line.
//
// Both formatters implement Formatter, WriterFormatter and
// BufferFormatter. Sinks check for the optional interfaces at
// construction time and prefer them, avoiding an intermediate byte
// slice on the write path. Format returns the line without a trailing
// newline; FormatTo and FormatRecord terminate it.
//
// Buffers larger than 64 KiB are not returned to the pool to prevent
// a single large log line from permanently inflating memory usage.
package formatter
