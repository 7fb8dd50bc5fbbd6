package snowid

import (
	"sync/atomic"
	"time"
)

const (
	// epoch is the fixed reference instant all encoded timestamps are
	// measured from: 2020-05-03T00:00:00Z in Unix milliseconds.
	epoch int64 = 1588435200000

	workerIDBits  = 10
	timestampBits = 41
	sequenceBits  = 12

	// MaxWorkerID is the largest assignable worker id (1023).
	MaxWorkerID = 1<<workerIDBits - 1

	// workerIDShift positions the worker id above the packed
	// timestamp+sequence component.
	workerIDShift = timestampBits + sequenceBits

	// timestampAndSequenceMask extracts the low 53 bits of the counter:
	// 41-bit timestamp plus 12-bit sequence.
	timestampAndSequenceMask uint64 = 1<<(timestampBits+sequenceBits) - 1

	// backpressureDelay is how long NextID pauses once the 4096-value
	// sequence space of the current encoded millisecond is exhausted.
	backpressureDelay = 5 * time.Millisecond
)

// Generator produces unique, monotonically trending IDs. It is safe for
// concurrent use by any number of goroutines and holds no locks.
//
// The zero value is not usable; construct with NewGenerator or
// NewGeneratorWithWorkerID.
type Generator struct {
	// timestampAndSequence packs a 41-bit millisecond timestamp and a
	// 12-bit sequence into its low 53 bits. It is advanced exclusively by
	// atomic increment; a sequence overflow carries into the timestamp
	// bits through plain integer addition, so the packed value never
	// decreases. Kept first in the struct for 64-bit alignment on 32-bit
	// platforms.
	timestampAndSequence uint64

	// workerID is pre-shifted left 53 bits and OR-ed into every ID.
	// Immutable after construction.
	workerID uint64
}

// NewGenerator creates a Generator with an automatically derived worker id:
// two bytes of the hardware address of the first usable network interface,
// or a uniformly random id in [0, MaxWorkerID] when no such interface exists.
// It never fails.
//
// Auto-derivation carries a documented collision risk: two processes may
// independently arrive at the same worker id. Pin worker ids with
// NewGeneratorWithWorkerID when that risk is unacceptable.
func NewGenerator() *Generator {
	g, _ := NewGeneratorWithWorkerID(deriveWorkerID())
	return g
}

// NewGeneratorWithWorkerID creates a Generator pinned to the given worker id.
// It returns ErrInvalidWorkerID when workerID is outside [0, MaxWorkerID].
func NewGeneratorWithWorkerID(workerID int64) (*Generator, error) {
	if workerID < 0 || workerID > MaxWorkerID {
		return nil, ErrInvalidWorkerID
	}
	g := &Generator{workerID: uint64(workerID) << workerIDShift}
	atomic.StoreUint64(&g.timestampAndSequence, uint64(currentTimestamp())<<sequenceBits)
	return g, nil
}

// NextID returns the next unique ID. It never fails. The only way it blocks
// is a short pause when IDs are drawn faster than the sequence space refills
// (4096 per millisecond); see waitIfNecessary.
func (g *Generator) NextID() ID {
	g.waitIfNecessary()
	next := atomic.AddUint64(&g.timestampAndSequence, 1)
	return ID(g.workerID | (next & timestampAndSequenceMask))
}

// waitIfNecessary sleeps briefly when the timestamp component recorded in the
// counter has caught up with (or passed) the wall clock, which means prior
// calls already consumed the sequence space of the current or a future
// millisecond. The check is best-effort: it is not atomic with the following
// increment, two goroutines may both sleep for the same exhaustion, and the
// clock is never re-checked after waking. Uniqueness does not depend on it;
// the atomic increment alone guarantees distinct counter values.
func (g *Generator) waitIfNecessary() {
	current := atomic.LoadUint64(&g.timestampAndSequence) >> sequenceBits
	if current >= uint64(currentTimestamp()) {
		time.Sleep(backpressureDelay)
	}
}

// currentTimestamp returns the wall-clock time as milliseconds since epoch.
// Outside construction this is consulted only to decide whether to pause,
// never as a source for the value encoded into an ID.
func currentTimestamp() int64 {
	return time.Now().UnixMilli() - epoch
}

// defaultGenerator backs the package-level NextID.
var defaultGenerator = NewGenerator()

// NextID returns the next unique ID from the package-level generator, which
// is constructed once with an auto-derived worker id.
func NextID() ID {
	return defaultGenerator.NextID()
}
