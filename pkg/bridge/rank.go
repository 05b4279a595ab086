package bridge

import "fmt"

// Rank is a card rank, ordered from Two (lowest) to Ace (highest).
type Rank uint8

const (
	Two Rank = iota
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// NumRanks is the number of ranks in each suit.
const NumRanks = 13

const rankChars = "23456789TJQKA"

// Valid reports whether r is Two through Ace.
func (r Rank) Valid() bool { return r < NumRanks }

// Char returns the PBN character for the rank.
func (r Rank) Char() byte {
	if !r.Valid() {
		return '?'
	}
	return rankChars[r]
}

func (r Rank) String() string {
	if !r.Valid() {
		return fmt.Sprintf("Rank(%d)", uint8(r))
	}
	return string(rankChars[r])
}

// RankFromChar maps a PBN rank character to a Rank. Letter case is ignored.
// Only K/k denotes the King.
func RankFromChar(c byte) (Rank, bool) {
	switch upper(c) {
	case 'A':
		return Ace, true
	case 'K':
		return King, true
	case 'Q':
		return Queen, true
	case 'J':
		return Jack, true
	case 'T':
		return Ten, true
	}
	if c >= '2' && c <= '9' {
		return Rank(c - '2'), true
	}
	return 0, false
}

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}
