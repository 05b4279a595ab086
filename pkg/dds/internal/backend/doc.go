// Package backend translates between the bridge model and the fixed-layout
// records of the native engine. It is the only place where the engine's
// seat, strain and rank codes are known.
package backend
