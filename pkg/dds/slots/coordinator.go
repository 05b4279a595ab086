package slots

import (
	"context"
	"errors"
	"fmt"
	"math/bits"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"golang.org/x/sync/semaphore"
)

// MaxSlots is the widest pool a Coordinator can manage.
const MaxSlots = 32

var (
	// ErrExhausted reports that every slot is taken.
	ErrExhausted = errors.New("slots: all engine slots are in use")

	// ErrInvalidSize reports a pool size outside 1..MaxSlots.
	ErrInvalidSize = errors.New("slots: invalid pool size")
)

// WorkerID identifies a logical caller that keeps its slot between calls.
type WorkerID string

// NewWorkerID returns a fresh random identity.
func NewWorkerID() WorkerID {
	return WorkerID(uuid.NewString())
}

// Stats is a point-in-time view of the pool.
type Stats struct {
	Size    int
	InUse   int
	Claims  uint64 // successful bitmask claims since creation
	Retries uint64 // lost compare-and-swap rounds since creation
}

// Coordinator owns a fixed pool of slot indices. The zero value is not
// usable; create one with New.
type Coordinator struct {
	size   int
	full   uint32
	policy Policy

	occupied atomic.Uint32
	gate     atomic.Pointer[semaphore.Weighted]
	gen      atomic.Uint64 // bumped by Reset
	workers  sync.Map      // WorkerID -> binding

	claims  atomic.Uint64
	retries atomic.Uint64
}

type binding struct {
	slot int
	gen  uint64
}

// New returns a coordinator managing slots 0..size-1.
func New(size int, policy Policy) (*Coordinator, error) {
	if size < 1 || size > MaxSlots {
		return nil, fmt.Errorf("%w: %d (want 1..%d)", ErrInvalidSize, size, MaxSlots)
	}
	if policy != FailFast && policy != Block {
		return nil, fmt.Errorf("slots: unknown acquire policy %d", int(policy))
	}
	c := &Coordinator{
		size:   size,
		full:   uint32(uint64(1)<<size - 1),
		policy: policy,
	}
	c.gate.Store(semaphore.NewWeighted(int64(size)))
	return c, nil
}

// Size returns the number of slots in the pool.
func (c *Coordinator) Size() int { return c.size }

// Policy returns the exhaustion policy.
func (c *Coordinator) Policy() Policy { return c.policy }

// Acquire returns the slot bound to id, claiming a free one on first use.
// The binding lasts until Release(id) or Reset.
func (c *Coordinator) Acquire(ctx context.Context, id WorkerID) (int, error) {
	if v, ok := c.workers.Load(id); ok {
		return v.(binding).slot, nil
	}
	slot, gen, err := c.claim(ctx)
	if err != nil {
		return -1, err
	}
	if prev, loaded := c.workers.LoadOrStore(id, binding{slot, gen}); loaded {
		// another goroutine bound the same id first
		c.free(slot, gen)
		return prev.(binding).slot, nil
	}
	return slot, nil
}

// Slot returns the slot bound to id, if any.
func (c *Coordinator) Slot(id WorkerID) (int, bool) {
	v, ok := c.workers.Load(id)
	if !ok {
		return -1, false
	}
	return v.(binding).slot, true
}

// Release unbinds id and returns its slot to the pool. It reports whether
// id held a slot.
func (c *Coordinator) Release(id WorkerID) bool {
	v, ok := c.workers.LoadAndDelete(id)
	if !ok {
		return false
	}
	b := v.(binding)
	c.free(b.slot, b.gen)
	return true
}

// Lease claims a slot for a single use. Calling release more than once is
// harmless, and a release kept from before a Reset does nothing.
func (c *Coordinator) Lease(ctx context.Context) (slot int, release func(), err error) {
	slot, gen, err := c.claim(ctx)
	if err != nil {
		return -1, func() {}, err
	}
	return slot, sync.OnceFunc(func() { c.free(slot, gen) }), nil
}

// Reset forgets every binding and marks all slots free.
//
// Reset is not safe to call concurrently with any other method, nor while
// any slot is in use by a native call.
func (c *Coordinator) Reset() {
	c.gen.Add(1)
	c.workers.Clear()
	c.occupied.Store(0)
	c.gate.Store(semaphore.NewWeighted(int64(c.size)))
}

// Stats returns current pool counters.
func (c *Coordinator) Stats() Stats {
	return Stats{
		Size:    c.size,
		InUse:   bits.OnesCount32(c.occupied.Load()),
		Claims:  c.claims.Load(),
		Retries: c.retries.Load(),
	}
}

func (c *Coordinator) claim(ctx context.Context) (int, uint64, error) {
	if err := ctx.Err(); err != nil {
		return -1, 0, err
	}
	gen := c.gen.Load()
	gate := c.gate.Load()
	switch c.policy {
	case Block:
		if err := gate.Acquire(ctx, 1); err != nil {
			return -1, 0, err
		}
	default:
		if !gate.TryAcquire(1) {
			return -1, 0, ErrExhausted
		}
	}

	// Holding a gate unit guarantees at least one clear bit.
	for {
		cur := c.occupied.Load()
		avail := ^cur & c.full
		if avail == 0 {
			gate.Release(1)
			return -1, 0, ErrExhausted
		}
		slot := bits.TrailingZeros32(avail)
		if c.occupied.CompareAndSwap(cur, cur|1<<slot) {
			c.claims.Add(1)
			return slot, gen, nil
		}
		c.retries.Add(1)
	}
}

func (c *Coordinator) free(slot int, gen uint64) {
	if slot < 0 || slot >= c.size || gen != c.gen.Load() {
		// stale: the slot was handed out again after a Reset
		return
	}
	mask := uint32(1) << slot
	for {
		cur := c.occupied.Load()
		if cur&mask == 0 {
			// already free
			return
		}
		if c.occupied.CompareAndSwap(cur, cur&^mask) {
			break
		}
	}
	c.gate.Load().Release(1)
}
