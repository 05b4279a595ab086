// Package bindings contains all cgo code that talks to the native
// double-dummy engine (libdds).
//
// # Design Principles
//
//  1. Isolation: ALL cgo code lives in this package. No other package imports
//     "C".
//
//  2. Fixed layout: every engine record has a plain Go mirror in types.go
//     built from fixed-length arrays of primitive integers. Conversion to and
//     from the C structs happens only inside the cgo file.
//
//  3. Raw status codes: functions return the engine status unchanged. Mapping
//     codes to errors is the caller's job.
//
// # Build Tags
//
// The cgo implementation is compiled only with both cgo enabled and the dds
// build tag (go build -tags dds). Other builds get stubs that return
// StatusNotBuilt or ErrNotBuilt.
//
// # Threading
//
// SolveBoard may run concurrently on distinct thread indices. Two calls must
// never share a thread index; the table functions use every engine thread
// and must not overlap with SolveBoard calls.
package bindings
