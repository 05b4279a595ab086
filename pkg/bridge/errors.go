package bridge

import (
	"errors"
	"fmt"
)

// ErrFormat is the sentinel wrapped by every notation error in this package.
var ErrFormat = errors.New("bridge: malformed notation")

// FormatError describes why a PBN deal string was rejected. Pos is the byte
// offset in Input where the problem was found.
type FormatError struct {
	Input  string
	Pos    int
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("bridge: malformed PBN deal at offset %d: %s", e.Pos, e.Reason)
}

func (e *FormatError) Unwrap() error { return ErrFormat }

func formatErrorf(input string, pos int, format string, args ...any) error {
	return &FormatError{Input: input, Pos: pos, Reason: fmt.Sprintf(format, args...)}
}
