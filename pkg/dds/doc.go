// Package dds is a Go front end for the double-dummy bridge solver library.
//
// A Solver owns the engine for the life of the process. It hands each
// concurrent card-play call its own engine thread slot, translates positions
// into the engine's fixed layout, and expands the engine's compact winner
// lists into one entry per playable card.
//
// # Opening a solver
//
//	s, err := dds.Open(dds.DefaultConfig())
//	if err != nil {
//	    // dds.ErrNotBuilt when the binary was built without the native engine
//	}
//	defer s.Close()
//
// # Card play
//
//	deal, _ := bridge.ParseDeal("N:954.QJT3.AJT.QJ6 KJT2.87.5.AK9875 AQ86.K652.86432. 73.A94.KQ97.T432")
//	cards, err := s.BestCards(ctx, dds.GameState{
//	    Remaining: deal,
//	    Trump:     bridge.Spades,
//	    Leader:    bridge.West,
//	})
//
// Calls without a worker identity lease a slot for their own duration.
// Long-lived goroutines that solve many positions should bind a slot once:
//
//	ctx = dds.WithWorker(ctx, slots.NewWorkerID())
//	defer s.ReleaseWorker(ctx)
//
// A worker identity must not be shared by goroutines that solve at the same
// time, because they would share one engine slot.
//
// # Double-dummy tables
//
// PossibleTricks and PossibleTricksBatch use the engine's own internal
// threading. They run exclusive of card-play calls made through the same
// Solver.
//
// # Errors
//
// Engine faults surface as *EngineError and match ErrEngine with errors.Is.
// Pool exhaustion under the fail-fast policy matches ErrResourceExhausted.
package dds
