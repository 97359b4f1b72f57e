package sink

import (
	"go.uber.org/multierr"

	"github.com/philipp01105/bridgelog/core"
)

// MultiWriter sends records to multiple writers
type MultiWriter struct {
	writers []Writer
}

// Multi creates a writer that fans out to writers in order. Nil writers are skipped.
func Multi(writers ...Writer) *MultiWriter {
	m := &MultiWriter{writers: make([]Writer, 0, len(writers))}
	for _, w := range writers {
		if w != nil {
			m.writers = append(m.writers, w)
		}
	}
	return m
}

// Write sends rec to every writer, even after one fails, and combines the errors
func (m *MultiWriter) Write(rec core.Record) error {
	var err error
	for _, w := range m.writers {
		err = multierr.Append(err, w.Write(rec))
	}
	return err
}

// Close closes all writers
func (m *MultiWriter) Close() error {
	var err error
	for _, w := range m.writers {
		err = multierr.Append(err, w.Close())
	}
	return err
}
