package consolesink

import (
	"bytes"
	"io"
	"os"
	"sync"
	"time"

	"github.com/philipp01105/bridgelog/core"
	"github.com/philipp01105/bridgelog/formatter"
	"github.com/philipp01105/bridgelog/sink"
)

// lockedWriter wraps an io.Writer with a mutex, acquiring the lock only
// for Write calls. Formatters prepare data in their own pooled buffers
// and call Write once, so the lock is held only during the actual I/O.
type lockedWriter struct {
	mu *sync.Mutex // points to the writer's mu
	w  io.Writer
}

func (lw *lockedWriter) Write(p []byte) (n int, err error) {
	lw.mu.Lock()
	n, err = lw.w.Write(p)
	lw.mu.Unlock()
	return
}

// isConcurrentSafeWriter returns true if the writer is known to be safe for
// concurrent Write calls, allowing the sink to skip write-level locking.
func isConcurrentSafeWriter(w io.Writer) bool {
	if w == io.Discard {
		return true
	}
	_, ok := w.(*os.File)
	return ok
}

// consoleBase contains shared fields and methods for console writers.
type consoleBase struct {
	writer          io.Writer
	formatter       formatter.Formatter
	writerFormatter formatter.WriterFormatter
	bufferFormatter formatter.BufferFormatter
	concurrentSafe  bool
	stats           *sink.Stats
	mu              sync.Mutex // protects syncBuf and writer
	lw              lockedWriter
	syncBuf         bytes.Buffer
	parBufPool      sync.Pool
	closed          chan struct{}
	closeOnce       sync.Once
}

func (b *consoleBase) init(cfg Config) {
	b.writer = cfg.Writer
	b.formatter = cfg.Formatter
	b.concurrentSafe = cfg.ConcurrentWriter || isConcurrentSafeWriter(cfg.Writer)
	b.stats = sink.NewStats()
	b.closed = make(chan struct{})

	// Cache optional formatter interfaces for the zero-copy paths
	b.writerFormatter, _ = cfg.Formatter.(formatter.WriterFormatter)
	b.bufferFormatter, _ = cfg.Formatter.(formatter.BufferFormatter)

	b.lw = lockedWriter{mu: &b.mu, w: b.writer}

	if b.bufferFormatter != nil {
		b.syncBuf.Grow(256)
		b.parBufPool = sync.Pool{
			New: func() interface{} {
				buf := new(bytes.Buffer)
				buf.Grow(256)
				return buf
			},
		}
	}
}

// write formats and writes a record.
// Uses TryLock on mu to reuse the writer-owned buffer when uncontended.
// When contended and bufferFormatter is available, formats into a pooled
// buffer outside the lock, then writes under mu. Otherwise falls through
// to the writerFormatter or generic formatter paths.
func (b *consoleBase) write(rec core.Record) error {
	if b.bufferFormatter != nil {
		if b.mu.TryLock() {
			b.syncBuf.Reset()
			b.bufferFormatter.FormatRecord(rec, &b.syncBuf)
			_, err := b.writer.Write(b.syncBuf.Bytes())
			b.mu.Unlock()
			if err == nil {
				b.stats.IncrementProcessed()
			}
			return err
		}

		buf := b.parBufPool.Get().(*bytes.Buffer)
		buf.Reset()
		b.bufferFormatter.FormatRecord(rec, buf)
		var err error
		if b.concurrentSafe {
			_, err = b.writer.Write(buf.Bytes())
		} else {
			b.mu.Lock()
			_, err = b.writer.Write(buf.Bytes())
			b.mu.Unlock()
		}
		if err == nil {
			b.stats.IncrementProcessed()
		}
		if buf.Cap() <= 64*1024 {
			b.parBufPool.Put(buf)
		}
		return err
	}

	if b.writerFormatter != nil {
		var err error
		if b.concurrentSafe {
			err = b.writerFormatter.FormatTo(rec, b.writer)
		} else {
			err = b.writerFormatter.FormatTo(rec, &b.lw)
		}
		if err == nil {
			b.stats.IncrementProcessed()
		}
		return err
	}

	data, err := b.formatter.Format(rec)
	if err != nil {
		return err
	}
	data = append(data, '\n')

	if b.concurrentSafe {
		_, err = b.writer.Write(data)
	} else {
		_, err = b.lw.Write(data)
	}
	if err == nil {
		b.stats.IncrementProcessed()
	}
	return err
}

// markClosed closes the closed channel once and reports whether this call did it.
func (b *consoleBase) markClosed() bool {
	first := false
	b.closeOnce.Do(func() {
		close(b.closed)
		first = true
	})
	return first
}

// Stats returns a snapshot of the current statistics
func (b *consoleBase) Stats() sink.Snapshot {
	return b.stats.Snapshot()
}

// Config holds configuration for the console sink
type Config struct {
	// Writer to write to (default: os.Stderr)
	Writer io.Writer
	// Formatter to use (default: TextFormatter)
	Formatter formatter.Formatter
	// Async enables asynchronous writing (default: false)
	Async bool
	// BufferSize is the size of the async queue (default: 1000)
	BufferSize int
	// OverflowPolicy defines per-level overflow behavior (default: sink.DefaultLevelPolicy)
	OverflowPolicy map[core.Level]sink.OverflowPolicy
	// BlockTimeout is the timeout for the Block overflow policy (default: 100ms)
	BlockTimeout time.Duration
	// DrainTimeout is the timeout for draining the queue on Close (default: 5s)
	DrainTimeout time.Duration
	// ConcurrentWriter indicates the Writer supports concurrent Write calls.
	// Automatically detected for io.Discard and *os.File.
	ConcurrentWriter bool
	// OnError receives errors from writes done by the async background
	// goroutine, which has no caller to return them to. May be nil.
	OnError func(error)
}

// applyDefaults fills in zero-value fields with defaults.
func applyDefaults(cfg *Config) {
	if cfg.Writer == nil {
		cfg.Writer = os.Stderr
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewTextFormatter(formatter.Config{})
	}
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = 1000
	}
	if cfg.OverflowPolicy == nil {
		cfg.OverflowPolicy = sink.DefaultLevelPolicy()
	}
	if cfg.BlockTimeout == 0 {
		cfg.BlockTimeout = 100 * time.Millisecond
	}
	if cfg.DrainTimeout == 0 {
		cfg.DrainTimeout = 5 * time.Second
	}
}

// New creates a console sink writer.
// Returns a *SyncWriter when Async is false, or an *AsyncWriter
// when Async is true. Both implement sink.Writer and sink.StatsProvider.
func New(cfg Config) sink.Writer {
	applyDefaults(&cfg)
	if cfg.Async {
		return newAsyncWriter(cfg)
	}
	return newSyncWriter(cfg)
}

// Func returns a sink.Func over a new console writer together with the
// writer itself, so the caller can Close it on shutdown.
// Async write errors go to onErr as well unless cfg.OnError is set.
func Func(cfg Config, onErr func(error)) (sink.Func, sink.Writer) {
	if cfg.OnError == nil {
		cfg.OnError = onErr
	}
	w := New(cfg)
	return sink.FromWriter(w, onErr), w
}
