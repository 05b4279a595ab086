package backend

import (
	"errors"

	"github.com/ddsbridge/dds-go/pkg/bridge"
)

// Engine codes. Hands run North, East, South, West from 0; strains run
// Spades, Hearts, Diamonds, Clubs, NoTrump from 0; ranks are 2..14 with the
// Ace as 14.
const (
	HandNorth = 0
	HandEast  = 1
	HandSouth = 2
	HandWest  = 3

	StrainSpades   = 0
	StrainHearts   = 1
	StrainDiamonds = 2
	StrainClubs    = 3
	StrainNoTrump  = 4

	RankTwo = 2
	RankAce = 14
)

var (
	handOfSeat   = [bridge.NumSeats]int{HandNorth, HandEast, HandSouth, HandWest}
	seatOfHand   = [bridge.NumSeats]bridge.Seat{bridge.North, bridge.East, bridge.South, bridge.West}
	strainOfSuit = [bridge.NumStrains]int{
		bridge.Clubs:    StrainClubs,
		bridge.Diamonds: StrainDiamonds,
		bridge.Hearts:   StrainHearts,
		bridge.Spades:   StrainSpades,
		bridge.NoTrump:  StrainNoTrump,
	}
	suitOfStrain = [bridge.NumStrains]bridge.Suit{
		StrainSpades:   bridge.Spades,
		StrainHearts:   bridge.Hearts,
		StrainDiamonds: bridge.Diamonds,
		StrainClubs:    bridge.Clubs,
		StrainNoTrump:  bridge.NoTrump,
	}
)

// SeatToHand converts a Seat to the engine's hand code.
func SeatToHand(s bridge.Seat) (int, error) {
	if !s.Valid() {
		return 0, errors.New("unsupported seat")
	}
	return handOfSeat[s], nil
}

// HandToSeat converts an engine hand code to a Seat.
func HandToSeat(h int) (bridge.Seat, error) {
	if h < 0 || h >= bridge.NumSeats {
		return 0, errors.New("unsupported hand code")
	}
	return seatOfHand[h], nil
}

// SuitToStrain converts a Suit (including NoTrump) to the engine's strain
// code.
func SuitToStrain(s bridge.Suit) (int, error) {
	if !s.Valid() {
		return 0, errors.New("unsupported suit")
	}
	return strainOfSuit[s], nil
}

// StrainToSuit converts an engine strain code to a Suit.
func StrainToSuit(code int) (bridge.Suit, error) {
	if code < 0 || code >= bridge.NumStrains {
		return 0, errors.New("unsupported strain code")
	}
	return suitOfStrain[code], nil
}

// RankToCode converts a Rank to the engine's 2..14 rank code.
func RankToCode(r bridge.Rank) (int, error) {
	if !r.Valid() {
		return 0, errors.New("unsupported rank")
	}
	return int(r) + RankTwo, nil
}

// CodeToRank converts an engine rank code to a Rank.
func CodeToRank(code int) (bridge.Rank, error) {
	if code < RankTwo || code > RankAce {
		return 0, errors.New("unsupported rank code")
	}
	return bridge.Rank(code - RankTwo), nil
}
