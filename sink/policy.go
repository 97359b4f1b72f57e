package sink

import (
	"sync/atomic"
	"time"

	"github.com/philipp01105/bridgelog/core"
)

// OverflowPolicy defines how to handle full async queues
type OverflowPolicy int

const (
	// DropNewest drops the newest record when queue is full
	DropNewest OverflowPolicy = iota
	// DropOldest drops the oldest record when queue is full
	DropOldest
	// Block blocks the caller until space is available (with timeout)
	Block
)

// String returns the string representation of the policy
func (p OverflowPolicy) String() string {
	switch p {
	case DropNewest:
		return "DropNewest"
	case DropOldest:
		return "DropOldest"
	case Block:
		return "Block"
	default:
		return "Unknown"
	}
}

// DefaultLevelPolicy returns the default level-based overflow policies
func DefaultLevelPolicy() map[core.Level]OverflowPolicy {
	return map[core.Level]OverflowPolicy{
		core.TraceLevel:   DropNewest,
		core.InfoLevel:    DropNewest,
		core.WarningLevel: DropNewest,
		core.ErrorLevel:   Block,
		core.FatalLevel:   Block,
	}
}

const numLevels = int(core.FatalLevel) + 1

// Stats tracks writer statistics
type Stats struct {
	dropped   [numLevels]atomic.Uint64
	blocked   atomic.Uint64
	processed atomic.Uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

// IncrementDropped atomically increments the dropped counter for a level
func (s *Stats) IncrementDropped(level core.Level) {
	s.dropped[level.Clamp()].Add(1)
}

// IncrementBlocked atomically increments the blocked counter
func (s *Stats) IncrementBlocked() {
	s.blocked.Add(1)
}

// IncrementProcessed atomically increments the processed counter
func (s *Stats) IncrementProcessed() {
	s.processed.Add(1)
}

// Dropped returns the dropped count for a level
func (s *Stats) Dropped(level core.Level) uint64 {
	if !level.Valid() {
		return 0
	}
	return s.dropped[level].Load()
}

// Blocked returns the blocked count
func (s *Stats) Blocked() uint64 {
	return s.blocked.Load()
}

// Processed returns the processed count
func (s *Stats) Processed() uint64 {
	return s.processed.Load()
}

// TotalDropped returns the total dropped across all levels
func (s *Stats) TotalDropped() uint64 {
	var n uint64
	for i := range s.dropped {
		n += s.dropped[i].Load()
	}
	return n
}

// Reset resets all counters to zero
func (s *Stats) Reset() {
	for i := range s.dropped {
		s.dropped[i].Store(0)
	}
	s.blocked.Store(0)
	s.processed.Store(0)
}

// Snapshot is a point-in-time copy of Stats
type Snapshot struct {
	DroppedTotal   map[core.Level]uint64
	BlockedTotal   uint64
	ProcessedTotal uint64
}

// Snapshot returns a snapshot of current statistics
func (s *Stats) Snapshot() Snapshot {
	snap := Snapshot{
		DroppedTotal:   make(map[core.Level]uint64, numLevels),
		BlockedTotal:   s.Blocked(),
		ProcessedTotal: s.Processed(),
	}
	for i := range s.dropped {
		snap.DroppedTotal[core.Level(i)] = s.dropped[i].Load()
	}
	return snap
}

// NewStoppedTimer returns a timer that has not fired and will not fire
// until Reset. Async writers reuse it for Block timeouts.
func NewStoppedTimer() *time.Timer {
	t := time.NewTimer(time.Hour)
	if !t.Stop() {
		<-t.C
	}
	return t
}
