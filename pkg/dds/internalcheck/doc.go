// Package internalcheck holds static checks over the module's own source.
//
// The tests load packages with golang.org/x/tools/go/packages and fail when
// a package crosses a boundary it should not: cgo outside internal/bindings,
// engine status codes written as bare numbers, or the bridge model reaching
// into the solver packages. It is not intended for external use.
package internalcheck
