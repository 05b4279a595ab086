package bridge

import "fmt"

// Card is a single playing card.
type Card struct {
	Suit Suit
	Rank Rank
}

// NewCard returns the card with the given suit and rank.
func NewCard(suit Suit, rank Rank) Card {
	return Card{Suit: suit, Rank: rank}
}

// Valid reports whether the card names a real suit and a real rank.
func (c Card) Valid() bool { return c.Suit.IsSuit() && c.Rank.Valid() }

// String renders the card as suit letter followed by rank, e.g. "SQ".
func (c Card) String() string {
	return string([]byte{c.Suit.Letter(), c.Rank.Char()})
}

// ParseCard parses the two-character form produced by Card.String.
func ParseCard(s string) (Card, error) {
	if len(s) != 2 {
		return Card{}, fmt.Errorf("%w: card %q must be suit letter and rank", ErrFormat, s)
	}
	suit, err := ParseSuit(s[:1])
	if err != nil || !suit.IsSuit() {
		return Card{}, fmt.Errorf("%w: card %q has no valid suit", ErrFormat, s)
	}
	rank, ok := RankFromChar(s[1])
	if !ok {
		return Card{}, fmt.Errorf("%w: card %q has no valid rank", ErrFormat, s)
	}
	return Card{Suit: suit, Rank: rank}, nil
}
