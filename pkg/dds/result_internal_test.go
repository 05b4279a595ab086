package dds

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ddsbridge/dds-go/internal/bindings"
	"github.com/ddsbridge/dds-go/pkg/bridge"
	"github.com/ddsbridge/dds-go/pkg/dds/ddstest"
)

func TestWinnersFromEngine(t *testing.T) {
	ft := ddstest.Winners(
		ddstest.Entry{Card: bridge.NewCard(bridge.Spades, bridge.King), Tricks: 5, Equals: []bridge.Rank{bridge.Queen, bridge.Jack}},
		ddstest.Entry{Card: bridge.NewCard(bridge.Clubs, bridge.Two), Tricks: 4},
	)

	got, err := winnersFromEngine(ft)
	if err != nil {
		t.Fatalf("winnersFromEngine() failed: %v", err)
	}
	want := []Winner{
		{Card: bridge.NewCard(bridge.Spades, bridge.King), Tricks: 5, Equivalents: 1<<2 | 1<<3},
		{Card: bridge.NewCard(bridge.Clubs, bridge.Two), Tricks: 4},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("winnersFromEngine() mismatch (-want +got):\n%s", diff)
	}
}

func TestWinnersFromEngineRejectsGarbage(t *testing.T) {
	tests := []struct {
		name string
		ft   bindings.FutureTricks
	}{
		{"negative count", bindings.FutureTricks{Cards: -1}},
		{"count too large", bindings.FutureTricks{Cards: 14}},
		{"notrump suit", bindings.FutureTricks{Cards: 1, Suit: [13]int32{4}, Rank: [13]int32{14}}},
		{"rank code too low", bindings.FutureTricks{Cards: 1, Rank: [13]int32{1}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := winnersFromEngine(tt.ft); err == nil {
				t.Error("winnersFromEngine() should fail")
			}
		})
	}
}

func TestBatchChunk(t *testing.T) {
	tests := []struct {
		filter [bindings.Strains]int32
		want   int
	}{
		{[bindings.Strains]int32{}, 40},
		{[bindings.Strains]int32{1, 1, 1, 1, 0}, 40},
		{[bindings.Strains]int32{1, 1, 1, 1, 1}, 40},
	}
	for _, tt := range tests {
		if got := batchChunk(tt.filter); got != tt.want {
			t.Errorf("batchChunk(%v) = %d, want %d", tt.filter, got, tt.want)
		}
	}
}
