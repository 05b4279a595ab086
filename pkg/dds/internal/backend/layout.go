package backend

import (
	"fmt"

	"github.com/ddsbridge/dds-go/internal/bindings"
	"github.com/ddsbridge/dds-go/pkg/bridge"
)

// RemainCards flattens a Deal into the engine's 16-entry mask array,
// indexed hand*4+strain, with bit r set for engine rank code r.
func RemainCards(d bridge.Deal) [bindings.Hands * 4]uint32 {
	var out [bindings.Hands * 4]uint32
	for seat := bridge.North; seat <= bridge.West; seat++ {
		base := 4 * handOfSeat[seat]
		for suit := bridge.Clubs; suit <= bridge.Spades; suit++ {
			// Holding has bit r for Rank r; engine codes start at 2.
			out[base+strainOfSuit[suit]] = uint32(d.Holding(seat, suit)) << RankTwo
		}
	}
	return out
}

// DealFromRemainCards is the inverse of RemainCards.
func DealFromRemainCards(cards [bindings.Hands * 4]uint32) bridge.Deal {
	var d bridge.Deal
	for seat := bridge.North; seat <= bridge.West; seat++ {
		base := 4 * handOfSeat[seat]
		for suit := bridge.Clubs; suit <= bridge.Spades; suit++ {
			mask := cards[base+strainOfSuit[suit]] >> RankTwo
			for r := bridge.Two; r <= bridge.Ace; r++ {
				if mask&(1<<r) != 0 {
					d.Set(seat, suit, r, true)
				}
			}
		}
	}
	return d
}

// ToDeal builds the SolveBoard input for a position. played lists the cards
// already on the table in the current trick, in play order; unused entries
// stay zero.
func ToDeal(remaining bridge.Deal, trump bridge.Suit, leader bridge.Seat, played []bridge.Card) (bindings.Deal, error) {
	var out bindings.Deal
	strain, err := SuitToStrain(trump)
	if err != nil {
		return out, fmt.Errorf("trump: %w", err)
	}
	hand, err := SeatToHand(leader)
	if err != nil {
		return out, fmt.Errorf("leader: %w", err)
	}
	if len(played) > len(out.CurrentTrickSuit) {
		return out, fmt.Errorf("%d cards played to the current trick, at most %d allowed", len(played), len(out.CurrentTrickSuit))
	}
	out.Trump = int32(strain)
	out.First = int32(hand)
	for i, c := range played {
		if !c.Valid() {
			return out, fmt.Errorf("played card %d is not a valid card", i+1)
		}
		out.CurrentTrickSuit[i] = int32(strainOfSuit[c.Suit])
		out.CurrentTrickRank[i] = int32(c.Rank) + RankTwo
	}
	out.RemainCards = RemainCards(remaining)
	return out, nil
}

// ToTableDeal builds the CalcDDtable input for a full deal.
func ToTableDeal(d bridge.Deal) bindings.TableDeal {
	return bindings.TableDeal{Cards: RemainCards(d)}
}

// Table is a double-dummy result table indexed [suit][seat] in bridge
// enumeration order.
type Table = [bridge.NumStrains][bridge.NumSeats]int

// FromTableResults reorders an engine result table into bridge order.
func FromTableResults(res bindings.TableResults) Table {
	var out Table
	for suit := bridge.Clubs; suit <= bridge.NoTrump; suit++ {
		strain := strainOfSuit[suit]
		for seat := bridge.North; seat <= bridge.West; seat++ {
			out[suit][seat] = int(res.ResTable[strain*bindings.Hands+handOfSeat[seat]])
		}
	}
	return out
}

// StrainFilter builds the CalcAllTables strain filter. Entries set to 1 are
// skipped by the engine. An empty list selects every strain.
func StrainFilter(strains []bridge.Suit) ([bindings.Strains]int32, error) {
	var filter [bindings.Strains]int32
	if len(strains) == 0 {
		return filter, nil
	}
	for i := range filter {
		filter[i] = 1
	}
	for _, s := range strains {
		code, err := SuitToStrain(s)
		if err != nil {
			return filter, err
		}
		filter[code] = 0
	}
	return filter, nil
}
