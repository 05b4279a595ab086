package bridge

import (
	"fmt"
	"strings"
)

// Suit is a card suit or, for NoTrump, a strain without trumps. Only the
// four real suits can be held; NoTrump is valid only as a trump selector.
type Suit uint8

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
	NoTrump
)

const (
	// NumSuits is the number of real card suits.
	NumSuits = 4
	// NumStrains counts the four suits plus NoTrump.
	NumStrains = 5
)

// PBNSuitOrder is the fixed order of suit groups inside a PBN hand.
var PBNSuitOrder = [NumSuits]Suit{Spades, Hearts, Diamonds, Clubs}

// Strains lists every denomination from Clubs up to NoTrump.
func Strains() [NumStrains]Suit {
	return [NumStrains]Suit{Clubs, Diamonds, Hearts, Spades, NoTrump}
}

// IsSuit reports whether s is one of the four holdable suits.
func (s Suit) IsSuit() bool { return s < NumSuits }

// Valid reports whether s is a suit or NoTrump.
func (s Suit) Valid() bool { return s < NumStrains }

// Letter returns the single-letter name: C, D, H, S or N for NoTrump.
func (s Suit) Letter() byte {
	switch s {
	case Clubs:
		return 'C'
	case Diamonds:
		return 'D'
	case Hearts:
		return 'H'
	case Spades:
		return 'S'
	case NoTrump:
		return 'N'
	default:
		return '?'
	}
}

func (s Suit) String() string {
	switch s {
	case Clubs:
		return "Clubs"
	case Diamonds:
		return "Diamonds"
	case Hearts:
		return "Hearts"
	case Spades:
		return "Spades"
	case NoTrump:
		return "NoTrump"
	default:
		return fmt.Sprintf("Suit(%d)", uint8(s))
	}
}

// ParseSuit accepts a suit letter (C, D, H, S, N), "NT", or a full name.
func ParseSuit(s string) (Suit, error) {
	if len(s) == 1 {
		switch upper(s[0]) {
		case 'C':
			return Clubs, nil
		case 'D':
			return Diamonds, nil
		case 'H':
			return Hearts, nil
		case 'S':
			return Spades, nil
		case 'N':
			return NoTrump, nil
		}
	}
	if strings.EqualFold(s, "NT") {
		return NoTrump, nil
	}
	for _, suit := range Strains() {
		if strings.EqualFold(s, suit.String()) {
			return suit, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown suit %q", ErrFormat, s)
}
