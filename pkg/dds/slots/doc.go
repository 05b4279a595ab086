// Package slots hands out engine thread slots to concurrent callers.
//
// The native solver keeps scratch memory per thread index and requires that
// no two callers use the same index at once. A Coordinator owns a fixed pool
// of N indices (N <= 32) and records which are taken in a single atomic
// bitmask updated with a compare-and-swap loop.
//
// There are two ways to hold a slot:
//
//   - Acquire(ctx, id) binds a slot to a caller-supplied WorkerID and keeps
//     it there. Repeat calls with the same id return the cached slot without
//     touching the shared bitmask. This suits long-lived worker goroutines.
//   - Lease(ctx) claims a slot for a single call; the returned release func
//     gives it back.
//
// When every slot is taken, the FailFast policy returns ErrExhausted at once
// and the Block policy waits (honouring ctx) until a slot is released.
//
// Reset clears every binding. It must only run while no caller holds or is
// acquiring a slot; the coordinator does not detect violations because the
// native calls it protects cannot be observed from here.
package slots
