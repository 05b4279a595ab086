// Package ddstest provides an in-memory engine for testing code built on
// package dds without the native library.
//
// The engine validates its inputs the way the native one does for the
// faults tests care about (duplicated cards, bad thread index, oversized
// batches), records every call, and counts two kinds of misuse:
//
//   - two SolveBoard calls running on the same thread index at once
//   - a table call running while any SolveBoard call is in flight
//
// # Usage
//
//	eng := ddstest.New(4)
//	eng.OnSolve(func(d bindings.Deal, target, solutions int) (bindings.FutureTricks, int) {
//	    return ddstest.Winners(ddstest.Entry{Card: sk, Tricks: 5, Equals: []bridge.Rank{bridge.Queen}}), 1
//	})
//	s, _ := dds.Open(dds.DefaultConfig(), dds.WithEngine(eng))
//
// Without OnSolve the engine answers with the highest card held by the seat
// to play in each suit, scored 0.
package ddstest
