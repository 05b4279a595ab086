package dds

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/ddsbridge/dds-go/internal/bindings"
	"github.com/ddsbridge/dds-go/pkg/dds/internal/backend"
	"github.com/ddsbridge/dds-go/pkg/dds/logging"
	"github.com/ddsbridge/dds-go/pkg/dds/slots"
)

// Stats is a point-in-time view of the slot pool.
type Stats = slots.Stats

// Solver represents an opened handle to the native engine together with its
// slot pool. A Solver is safe for concurrent use.
type Solver struct {
	cfg    Config
	engine Engine
	log    logging.Logger
	info   bindings.Info
	slots  *slots.Coordinator

	// Card-play calls hold gate shared; table calls hold it exclusively.
	gate   sync.RWMutex
	closed atomic.Bool
}

// Option customises Open.
type Option func(*options)

type options struct {
	engine Engine
	logger logging.Logger
}

// WithEngine replaces the native engine, typically with ddstest.Engine.
func WithEngine(e Engine) Option {
	return func(o *options) { o.engine = e }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l logging.Logger) Option {
	return func(o *options) { o.logger = l }
}

// Open prepares the engine and sizes the slot pool to
// min(engine threads, cfg.MaxThreads, 16, 32).
func Open(cfg Config, opts ...Option) (*Solver, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = logging.Nop()
	}
	if o.engine == nil {
		native, err := backend.NewNative()
		if err != nil {
			return nil, &Error{Op: "Open", Err: err}
		}
		o.engine = native
	}
	if err := cfg.Validate(); err != nil {
		return nil, &Error{Op: "Open", Err: err}
	}

	o.engine.SetMaxThreads(cfg.MaxThreads)
	info, err := o.engine.Info()
	if err != nil {
		return nil, &Error{Op: "Open", Err: err}
	}
	size := cfg.PoolSize(info.NoOfThreads)
	o.engine.SetResources(cfg.memoryMB(), size)

	coord, err := slots.New(size, cfg.AcquirePolicy)
	if err != nil {
		return nil, &Error{Op: "Open", Err: err}
	}

	s := &Solver{
		cfg:    cfg,
		engine: o.engine,
		log:    o.logger,
		info:   info,
		slots:  coord,
	}
	s.log.Info(context.Background(), "engine ready",
		"slots", size,
		"engine_threads", info.NoOfThreads,
		"max_memory_mb", cfg.memoryMB(),
		"policy", cfg.AcquirePolicy.String(),
		"version", info.VersionString,
	)
	return s, nil
}

// Close releases engine memory. It returns ErrClosed when called twice.
func (s *Solver) Close() error {
	if s == nil {
		return nil
	}
	if !s.closed.CompareAndSwap(false, true) {
		return ErrClosed
	}
	s.gate.Lock()
	defer s.gate.Unlock()
	s.engine.FreeMemory()
	return nil
}

// Reset makes the engine forget previous boards: it frees the engine's
// memory, reapplies resources and clears every slot binding.
//
// Reset must not run while any worker still expects its cached slot. It
// waits for in-flight engine calls to finish and does nothing once the
// Solver is closed.
func (s *Solver) Reset() {
	s.gate.Lock()
	defer s.gate.Unlock()
	if s.closed.Load() {
		return
	}
	s.engine.FreeMemory()
	s.engine.SetResources(s.cfg.memoryMB(), s.slots.Size())
	s.slots.Reset()
	s.log.Info(context.Background(), "engine reset", "slots", s.slots.Size())
}

// Stats returns slot pool counters.
func (s *Solver) Stats() Stats {
	return s.slots.Stats()
}

// Info returns what the engine reported about itself at Open.
func (s *Solver) Info() EngineInfo {
	return s.info
}

// ErrorMessage returns the engine's text for a status code.
func (s *Solver) ErrorMessage(code int) string {
	if msg := s.engine.ErrorMessage(code); msg != "" {
		return msg
	}
	return backend.Describe(code)
}

func (s *Solver) begin(ctx context.Context, op string) error {
	if err := s.checkOpen(op); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return &Error{Op: op, Err: err}
	}
	return nil
}

// checkOpen must be called again once the gate is held: Close may have run
// while the caller waited for a slot or for the gate.
func (s *Solver) checkOpen(op string) error {
	if s.closed.Load() {
		return &Error{Op: op, Err: ErrClosed}
	}
	return nil
}

func (s *Solver) engineError(ctx context.Context, op string, code int) error {
	e := &EngineError{Op: op, Code: code, Message: s.ErrorMessage(code)}
	if e.Fatal() {
		s.log.Error(ctx, "engine rejected thread index", "op", op, "code", code, "slots", s.slots.Size())
	} else {
		s.log.Warn(ctx, "engine fault", "op", op, "code", code, "message", e.Message)
	}
	return e
}

type workerKey struct{}

// WithWorker binds ctx to a worker identity. Calls made with the returned
// context reuse one engine slot, claimed on first use and kept until
// ReleaseWorker.
func WithWorker(ctx context.Context, id slots.WorkerID) context.Context {
	return context.WithValue(ctx, workerKey{}, id)
}

// WorkerFromContext returns the identity set by WithWorker.
func WorkerFromContext(ctx context.Context) (slots.WorkerID, bool) {
	id, ok := ctx.Value(workerKey{}).(slots.WorkerID)
	return id, ok
}

// ReleaseWorker returns the slot cached for ctx's worker identity, if any.
func (s *Solver) ReleaseWorker(ctx context.Context) bool {
	id, ok := WorkerFromContext(ctx)
	if !ok {
		return false
	}
	return s.slots.Release(id)
}

// slotFor returns the slot for a card-play call and the func that gives it
// back. Worker-bound slots are kept, so their release is a no-op.
func (s *Solver) slotFor(ctx context.Context) (int, func(), error) {
	id, ok := WorkerFromContext(ctx)
	if !ok {
		return s.slots.Lease(ctx)
	}
	if slot, ok := s.slots.Slot(id); ok {
		return slot, func() {}, nil
	}
	slot, err := s.slots.Acquire(ctx, id)
	if err != nil {
		return -1, func() {}, err
	}
	s.log.Debug(ctx, "slot claimed", "worker", string(id), "slot", slot)
	return slot, func() {}, nil
}

func wrapSlotError(op string, err error) error {
	if errors.Is(err, slots.ErrExhausted) {
		return &Error{Op: op, Err: err}
	}
	return &Error{Op: op, Err: fmt.Errorf("acquire slot: %w", err)}
}
