package slots

import (
	"fmt"
	"strings"
)

// Policy selects what happens when every slot is taken.
type Policy int

const (
	// Block waits until a slot is released or the context ends. It is the
	// zero value.
	Block Policy = iota
	// FailFast returns ErrExhausted immediately.
	FailFast
)

func (p Policy) String() string {
	switch p {
	case FailFast:
		return "fail_fast"
	case Block:
		return "block"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// ParsePolicy accepts "fail_fast" or "block" (case and dashes ignored).
func ParsePolicy(s string) (Policy, error) {
	switch strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_") {
	case "fail_fast", "failfast":
		return FailFast, nil
	case "block", "":
		return Block, nil
	}
	return 0, fmt.Errorf("slots: unknown acquire policy %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (p Policy) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Policy) UnmarshalText(text []byte) error {
	parsed, err := ParsePolicy(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
