package bridge

import (
	"errors"
	"fmt"
	"math/bits"
)

// Deal records which seat holds each of the 52 cards.
//
// The layout is one word per rank; bit 4*seat+suit is set when that seat
// holds that rank in that suit. The zero Deal holds no cards. Deal does not
// enforce that each card has exactly one holder; use Validate when the input
// is untrusted.
type Deal struct {
	ranks [NumRanks]uint16
}

func bit(seat Seat, suit Suit) uint16 {
	return 1 << (4*uint(seat) + uint(suit))
}

// Set marks the card as held (present) or not held by seat. Out-of-range
// arguments are ignored.
func (d *Deal) Set(seat Seat, suit Suit, rank Rank, present bool) {
	if !seat.Valid() || !suit.IsSuit() || !rank.Valid() {
		return
	}
	if present {
		d.ranks[rank] |= bit(seat, suit)
	} else {
		d.ranks[rank] &^= bit(seat, suit)
	}
}

// Has reports whether seat holds the card.
func (d Deal) Has(seat Seat, suit Suit, rank Rank) bool {
	if !seat.Valid() || !suit.IsSuit() || !rank.Valid() {
		return false
	}
	return d.ranks[rank]&bit(seat, suit) != 0
}

// Holder returns the first seat (from North) holding the card.
func (d Deal) Holder(suit Suit, rank Rank) (Seat, bool) {
	for _, seat := range Seats() {
		if d.Has(seat, suit, rank) {
			return seat, true
		}
	}
	return 0, false
}

// Holding returns the ranks seat holds in suit as a 13-bit mask, bit r set
// for Rank r.
func (d Deal) Holding(seat Seat, suit Suit) uint16 {
	var m uint16
	if !seat.Valid() || !suit.IsSuit() {
		return 0
	}
	b := bit(seat, suit)
	for r := Two; r <= Ace; r++ {
		if d.ranks[r]&b != 0 {
			m |= 1 << r
		}
	}
	return m
}

// Count returns the number of cards seat holds.
func (d Deal) Count(seat Seat) int {
	if !seat.Valid() {
		return 0
	}
	n := 0
	mask := uint16(0xF) << (4 * uint(seat))
	for _, w := range d.ranks {
		n += bits.OnesCount16(w & mask)
	}
	return n
}

// Len returns the total number of cards in the deal.
func (d Deal) Len() int {
	n := 0
	for _, w := range d.ranks {
		n += bits.OnesCount16(w)
	}
	return n
}

// Hand lists the cards held by seat in PBN order: Spades, Hearts, Diamonds,
// Clubs, each from Ace down.
func (d Deal) Hand(seat Seat) []Card {
	cards := make([]Card, 0, d.Count(seat))
	for _, suit := range PBNSuitOrder {
		for r := int(Ace); r >= int(Two); r-- {
			if d.Has(seat, suit, Rank(r)) {
				cards = append(cards, Card{Suit: suit, Rank: Rank(r)})
			}
		}
	}
	return cards
}

// Without returns a copy of d with card removed from whichever seat holds it.
func (d Deal) Without(c Card) Deal {
	if c.Valid() {
		for _, seat := range Seats() {
			d.ranks[c.Rank] &^= bit(seat, c.Suit)
		}
	}
	return d
}

// Validate checks that no card is held by more than one seat and that all
// four hands have the same length. It does not require a full 52-card deal,
// so positions with tricks already played validate too.
func (d Deal) Validate() error {
	var errs []error
	for r := Two; r <= Ace; r++ {
		for _, suit := range PBNSuitOrder {
			holders := 0
			for _, seat := range Seats() {
				if d.ranks[r]&bit(seat, suit) != 0 {
					holders++
				}
			}
			if holders > 1 {
				errs = append(errs, fmt.Errorf("card %s held by %d seats", Card{Suit: suit, Rank: r}, holders))
			}
		}
	}
	n := d.Count(North)
	for _, seat := range [...]Seat{East, South, West} {
		if c := d.Count(seat); c != n {
			errs = append(errs, fmt.Errorf("%s holds %d cards, North holds %d", seat, c, n))
		}
	}
	return errors.Join(errs...)
}
