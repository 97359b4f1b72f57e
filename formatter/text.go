package formatter

import (
	"bytes"
	"io"
	"path/filepath"
	"strconv"

	"github.com/philipp01105/bridgelog/core"
)

// TextFormatter renders records as the canonical human-readable line:
//
//	2026-01-15 12:00:00.000 [info][main.go:10] message
//
// Absent fields are left out together with their brackets.
type TextFormatter struct {
	Config
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter(cfg Config) *TextFormatter {
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = DefaultTimestampFormat
	}
	return &TextFormatter{Config: cfg}
}

// Format formats a record as text
func (f *TextFormatter) Format(rec core.Record) ([]byte, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	f.formatToBuffer(rec, buf)

	// Copy buffer content to return
	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result, nil
}

// String formats a record as text and returns it as a string
func (f *TextFormatter) String(rec core.Record) string {
	buf := getBuffer()
	f.formatToBuffer(rec, buf)
	s := buf.String()
	putBuffer(buf)
	return s
}

// FormatTo formats a record and writes it, newline-terminated, to the writer
func (f *TextFormatter) FormatTo(rec core.Record, w io.Writer) error {
	buf := getBuffer()

	f.formatToBuffer(rec, buf)
	buf.WriteByte('\n')

	_, err := w.Write(buf.Bytes())
	putBuffer(buf)
	return err
}

// FormatRecord formats a record into the given buffer (implements BufferFormatter).
func (f *TextFormatter) FormatRecord(rec core.Record, buf *bytes.Buffer) {
	f.formatToBuffer(rec, buf)
	buf.WriteByte('\n')
}

// pre-formatted level strings to avoid multiple WriteString calls
var levelBrackets = [...]string{
	core.TraceLevel:   "[trace]",
	core.InfoLevel:    "[info]",
	core.WarningLevel: "[warn]",
	core.ErrorLevel:   "[error]",
	core.FatalLevel:   "[fatal]",
}

// formatToBuffer writes the formatted record into the given buffer
func (f *TextFormatter) formatToBuffer(rec core.Record, buf *bytes.Buffer) {
	if rec.HasTime() {
		buf.Write(rec.Time.AppendFormat(buf.AvailableBuffer(), f.TimestampFormat))
		buf.WriteByte(' ')
	}

	if rec.Level.Valid() {
		buf.WriteString(levelBrackets[rec.Level])
	} else {
		buf.WriteByte('[')
		buf.WriteString(rec.Level.String())
		buf.WriteByte(']')
	}

	if f.IncludeSource && rec.Source == core.ScriptSource {
		buf.WriteString("[script]")
	}

	switch {
	case rec.HasFile() && rec.HasLine():
		buf.WriteByte('[')
		buf.WriteString(filepath.Base(rec.File))
		buf.WriteByte(':')
		buf.Write(strconv.AppendInt(buf.AvailableBuffer(), int64(rec.Line), 10))
		buf.WriteByte(']')
	case rec.HasFile():
		buf.WriteByte('[')
		buf.WriteString(filepath.Base(rec.File))
		buf.WriteByte(']')
	case rec.HasLine():
		buf.WriteString("[:")
		buf.Write(strconv.AppendInt(buf.AvailableBuffer(), int64(rec.Line), 10))
		buf.WriteByte(']')
	}

	if rec.Message != "" {
		buf.WriteByte(' ')
		buf.WriteString(rec.Message)
	}
}
