package dds

import (
	"fmt"
	"math/bits"

	"github.com/ddsbridge/dds-go/internal/bindings"
	"github.com/ddsbridge/dds-go/pkg/bridge"
	"github.com/ddsbridge/dds-go/pkg/dds/internal/backend"
)

// CardPotential is one playable card and the tricks the side to play takes
// after playing it.
type CardPotential struct {
	Card    bridge.Card
	Tricks  int
	Primary bool
}

func (c CardPotential) String() string {
	if c.Primary {
		return fmt.Sprintf("%s:%d*", c.Card, c.Tricks)
	}
	return fmt.Sprintf("%s:%d", c.Card, c.Tricks)
}

// Winner is one entry of the engine's compact answer: the highest card of a
// class of equivalent cards, its score, and the other members of the class.
//
// Equivalents uses descending rank bits: bit 0 is the Ace, bit 12 the Two.
// See EquivalenceBit.
type Winner struct {
	Card        bridge.Card
	Tricks      int
	Equivalents uint16
}

// EquivalenceBit returns the Winner.Equivalents bit for rank r.
func EquivalenceBit(r bridge.Rank) uint16 {
	if !r.Valid() {
		return 0
	}
	return 1 << (bridge.Ace - r)
}

func rankOfEquivalenceBit(b int) bridge.Rank {
	return bridge.Ace - bridge.Rank(b)
}

// Expand lists every card in the winners' equivalence classes.
//
// Each winner's own card comes first and is primary only when it has no
// equivalents. The equivalents follow, scanned from the lowest set bit up,
// so from the highest rank down; the first of them is primary. All cards
// of a class share the winner's score.
func Expand(winners []Winner) []CardPotential {
	n := 0
	for _, w := range winners {
		n += 1 + bits.OnesCount16(w.Equivalents&equivalenceMask)
	}
	out := make([]CardPotential, 0, n)
	for _, w := range winners {
		mask := w.Equivalents & equivalenceMask
		out = append(out, CardPotential{Card: w.Card, Tricks: w.Tricks, Primary: mask == 0})
		first := true
		for mask != 0 {
			b := bits.TrailingZeros16(mask)
			mask &= mask - 1
			out = append(out, CardPotential{
				Card:    bridge.NewCard(w.Card.Suit, rankOfEquivalenceBit(b)),
				Tricks:  w.Tricks,
				Primary: first,
			})
			first = false
		}
	}
	return out
}

const equivalenceMask = 1<<bridge.NumRanks - 1

// winnersFromEngine decodes a SolveBoard answer. The engine marks
// equivalent ranks with bit r for rank code r.
func winnersFromEngine(ft bindings.FutureTricks) ([]Winner, error) {
	n := int(ft.Cards)
	if n < 0 || n > len(ft.Suit) {
		return nil, fmt.Errorf("engine returned %d cards", n)
	}
	out := make([]Winner, 0, n)
	for i := 0; i < n; i++ {
		suit, err := backend.StrainToSuit(int(ft.Suit[i]))
		if err != nil || !suit.IsSuit() {
			return nil, fmt.Errorf("entry %d: engine suit %d", i, ft.Suit[i])
		}
		rank, err := backend.CodeToRank(int(ft.Rank[i]))
		if err != nil {
			return nil, fmt.Errorf("entry %d: engine rank %d", i, ft.Rank[i])
		}
		var eq uint16
		for code := backend.RankTwo; code <= backend.RankAce; code++ {
			if ft.Equals[i]&(1<<code) != 0 {
				r, _ := backend.CodeToRank(code)
				eq |= EquivalenceBit(r)
			}
		}
		out = append(out, Winner{
			Card:        bridge.NewCard(suit, rank),
			Tricks:      int(ft.Score[i]),
			Equivalents: eq,
		})
	}
	return out, nil
}
