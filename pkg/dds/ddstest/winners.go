package ddstest

import (
	"github.com/ddsbridge/dds-go/internal/bindings"
	"github.com/ddsbridge/dds-go/pkg/bridge"
	"github.com/ddsbridge/dds-go/pkg/dds/internal/backend"
)

// Entry is one scripted SolveBoard answer line.
type Entry struct {
	Card   bridge.Card
	Tricks int
	Equals []bridge.Rank
}

// Winners encodes entries the way the engine returns them.
func Winners(entries ...Entry) bindings.FutureTricks {
	var ft bindings.FutureTricks
	for i, en := range entries {
		if i >= len(ft.Suit) {
			break
		}
		strain, _ := backend.SuitToStrain(en.Card.Suit)
		rank, _ := backend.RankToCode(en.Card.Rank)
		var eq int32
		for _, r := range en.Equals {
			code, err := backend.RankToCode(r)
			if err == nil {
				eq |= 1 << code
			}
		}
		ft.Suit[i] = int32(strain)
		ft.Rank[i] = int32(rank)
		ft.Score[i] = int32(en.Tricks)
		ft.Equals[i] = eq
		ft.Cards++
	}
	return ft
}
