package backend_test

import (
	"testing"

	"github.com/ddsbridge/dds-go/pkg/bridge"
	"github.com/ddsbridge/dds-go/pkg/dds/internal/backend"
)

// TestSeatToHand tests the SeatToHand mapping function.
func TestSeatToHand(t *testing.T) {
	tests := []struct {
		name     string
		seat     bridge.Seat
		wantHand int
		wantErr  bool
	}{
		{"North", bridge.North, 0, false},
		{"East", bridge.East, 1, false},
		{"South", bridge.South, 2, false},
		{"West", bridge.West, 3, false},
		{"Invalid", bridge.Seat(4), 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hand, err := backend.SeatToHand(tt.seat)
			if (err != nil) != tt.wantErr {
				t.Errorf("SeatToHand() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && hand != tt.wantHand {
				t.Errorf("SeatToHand() = %v, want %v", hand, tt.wantHand)
			}
		})
	}
}

// TestSuitToStrain tests the SuitToStrain mapping function.
func TestSuitToStrain(t *testing.T) {
	tests := []struct {
		name       string
		suit       bridge.Suit
		wantStrain int
		wantErr    bool
	}{
		{"Spades", bridge.Spades, 0, false},
		{"Hearts", bridge.Hearts, 1, false},
		{"Diamonds", bridge.Diamonds, 2, false},
		{"Clubs", bridge.Clubs, 3, false},
		{"NoTrump", bridge.NoTrump, 4, false},
		{"Invalid", bridge.Suit(5), 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			strain, err := backend.SuitToStrain(tt.suit)
			if (err != nil) != tt.wantErr {
				t.Errorf("SuitToStrain() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && strain != tt.wantStrain {
				t.Errorf("SuitToStrain() = %v, want %v", strain, tt.wantStrain)
			}
		})
	}
}

// TestRankToCode tests the RankToCode mapping function.
func TestRankToCode(t *testing.T) {
	tests := []struct {
		name     string
		rank     bridge.Rank
		wantCode int
		wantErr  bool
	}{
		{"Two", bridge.Two, 2, false},
		{"Ten", bridge.Ten, 10, false},
		{"King", bridge.King, 13, false},
		{"Ace", bridge.Ace, 14, false},
		{"Invalid", bridge.Rank(13), 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, err := backend.RankToCode(tt.rank)
			if (err != nil) != tt.wantErr {
				t.Errorf("RankToCode() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && code != tt.wantCode {
				t.Errorf("RankToCode() = %v, want %v", code, tt.wantCode)
			}
		})
	}
}

// TestMappingRoundTrip tests that every mapping inverts cleanly.
func TestMappingRoundTrip(t *testing.T) {
	for _, seat := range bridge.Seats() {
		hand, err := backend.SeatToHand(seat)
		if err != nil {
			t.Fatalf("SeatToHand(%v) failed: %v", seat, err)
		}
		got, err := backend.HandToSeat(hand)
		if err != nil || got != seat {
			t.Errorf("HandToSeat(%d) = %v, %v; want %v", hand, got, err, seat)
		}
	}
	for _, suit := range bridge.Strains() {
		code, err := backend.SuitToStrain(suit)
		if err != nil {
			t.Fatalf("SuitToStrain(%v) failed: %v", suit, err)
		}
		got, err := backend.StrainToSuit(code)
		if err != nil || got != suit {
			t.Errorf("StrainToSuit(%d) = %v, %v; want %v", code, got, err, suit)
		}
	}
	for r := bridge.Two; r <= bridge.Ace; r++ {
		code, err := backend.RankToCode(r)
		if err != nil {
			t.Fatalf("RankToCode(%v) failed: %v", r, err)
		}
		got, err := backend.CodeToRank(code)
		if err != nil || got != r {
			t.Errorf("CodeToRank(%d) = %v, %v; want %v", code, got, err, r)
		}
	}

	if _, err := backend.HandToSeat(4); err == nil {
		t.Error("HandToSeat(4) should fail")
	}
	if _, err := backend.StrainToSuit(-1); err == nil {
		t.Error("StrainToSuit(-1) should fail")
	}
	if _, err := backend.CodeToRank(1); err == nil {
		t.Error("CodeToRank(1) should fail")
	}
	if _, err := backend.CodeToRank(15); err == nil {
		t.Error("CodeToRank(15) should fail")
	}
}
