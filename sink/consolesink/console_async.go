package consolesink

import (
	"sync"
	"time"

	"github.com/philipp01105/bridgelog/core"
	"github.com/philipp01105/bridgelog/sink"
)

// AsyncWriter queues records and writes them from a background goroutine,
// applying the per-level overflow policy when the queue is full.
type AsyncWriter struct {
	consoleBase
	queue          chan core.Record
	wg             sync.WaitGroup
	overflowPolicy map[core.Level]sink.OverflowPolicy
	blockTimeout   time.Duration
	drainTimeout   time.Duration
	blockMu        sync.Mutex // guards blockTimer
	blockTimer     *time.Timer
	onErr          func(error)

	// sendMu is held shared by Write and exclusively by Close while it
	// marks the writer closed, so no send lands after the final drain.
	sendMu sync.RWMutex
}

func newAsyncWriter(cfg Config) *AsyncWriter {
	w := &AsyncWriter{
		overflowPolicy: cfg.OverflowPolicy,
		blockTimeout:   cfg.BlockTimeout,
		drainTimeout:   cfg.DrainTimeout,
		blockTimer:     sink.NewStoppedTimer(),
		onErr:          cfg.OnError,
	}
	w.init(cfg)

	w.queue = make(chan core.Record, cfg.BufferSize)
	w.wg.Add(1)
	go w.process()

	return w
}

// Write enqueues a record with overflow policy handling.
// After Close, records are written synchronously.
func (w *AsyncWriter) Write(rec core.Record) error {
	w.sendMu.RLock()
	defer w.sendMu.RUnlock()

	select {
	case <-w.closed:
		return w.write(rec)
	default:
	}

	policy, ok := w.overflowPolicy[rec.Level]
	if !ok {
		policy = sink.DropNewest
	}

	switch policy {
	case sink.Block:
		select {
		case w.queue <- rec:
			return nil
		default:
		}
		return w.blockingSend(rec)

	case sink.DropOldest:
		select {
		case w.queue <- rec:
			return nil
		default:
			// Queue full - try to drop oldest
			select {
			case old := <-w.queue:
				w.stats.IncrementDropped(old.Level)
			default:
			}
			select {
			case w.queue <- rec:
			default:
				// Still full, drop this one
				w.stats.IncrementDropped(rec.Level)
			}
			return nil
		}

	default:
		select {
		case w.queue <- rec:
		default:
			w.stats.IncrementDropped(rec.Level)
		}
		return nil
	}
}

// blockingSend waits up to blockTimeout for queue space and falls back
// to a synchronous write when the wait times out or the writer closes.
func (w *AsyncWriter) blockingSend(rec core.Record) error {
	w.blockMu.Lock()
	defer w.blockMu.Unlock()

	w.blockTimer.Reset(w.blockTimeout)
	defer stopTimer(w.blockTimer)

	select {
	case w.queue <- rec:
		return nil
	case <-w.blockTimer.C:
		w.stats.IncrementBlocked()
		return w.write(rec)
	case <-w.closed:
		return w.write(rec)
	}
}

func stopTimer(t *time.Timer) {
	if !t.Stop() {
		select {
		case <-t.C:
		default:
		}
	}
}

// process drains the queue until Close
func (w *AsyncWriter) process() {
	defer w.wg.Done()

	for {
		select {
		case rec := <-w.queue:
			w.report(w.write(rec))
		case <-w.closed:
			deadline := time.After(w.drainTimeout)
			for {
				select {
				case rec := <-w.queue:
					w.report(w.write(rec))
				case <-deadline:
					return
				default:
					return
				}
			}
		}
	}
}

func (w *AsyncWriter) report(err error) {
	if err != nil && w.onErr != nil {
		w.onErr(err)
	}
}

// Close stops the background goroutine after draining queued records
// (bounded by the drain timeout). A Write blocked on a full queue holds
// Close back for at most the block timeout.
func (w *AsyncWriter) Close() error {
	w.sendMu.Lock()
	first := w.markClosed()
	w.sendMu.Unlock()

	if first {
		w.wg.Wait()
	}
	return nil
}
