package bridge_test

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ddsbridge/dds-go/pkg/bridge"
)

func TestDealFootprint(t *testing.T) {
	var d bridge.Deal
	assert.Equal(t, uintptr(26), unsafe.Sizeof(d))
}

func TestDealSetAndHas(t *testing.T) {
	var d bridge.Deal
	for _, seat := range bridge.Seats() {
		for suit := bridge.Clubs; suit <= bridge.Spades; suit++ {
			for r := bridge.Two; r <= bridge.Ace; r++ {
				require.False(t, d.Has(seat, suit, r))
				d.Set(seat, suit, r, true)
				require.True(t, d.Has(seat, suit, r))

				// exactly one bit moved
				for _, other := range bridge.Seats() {
					if other != seat {
						require.False(t, d.Has(other, suit, r))
					}
				}
				d.Set(seat, suit, r, false)
				require.False(t, d.Has(seat, suit, r))
				require.Equal(t, bridge.Deal{}, d)
			}
		}
	}
}

func TestDealIgnoresOutOfRange(t *testing.T) {
	var d bridge.Deal
	d.Set(bridge.North, bridge.NoTrump, bridge.Ace, true)
	d.Set(bridge.Seat(4), bridge.Spades, bridge.Ace, true)
	d.Set(bridge.North, bridge.Spades, bridge.Rank(13), true)
	assert.Equal(t, bridge.Deal{}, d)
	assert.False(t, d.Has(bridge.North, bridge.NoTrump, bridge.Ace))
}

func TestDealHolderAndHand(t *testing.T) {
	d := bridge.MustParseDeal(canonicalDeal)

	seat, ok := d.Holder(bridge.Spades, bridge.Ace)
	require.True(t, ok)
	assert.Equal(t, bridge.South, seat)

	hand := d.Hand(bridge.East)
	require.Len(t, hand, 13)
	assert.Equal(t, "SK", hand[0].String())
	assert.Equal(t, "C5", hand[len(hand)-1].String())

	without := d.Without(bridge.NewCard(bridge.Spades, bridge.Ace))
	_, ok = without.Holder(bridge.Spades, bridge.Ace)
	assert.False(t, ok)
	assert.Equal(t, 12, without.Count(bridge.South))
	assert.Equal(t, 13, d.Count(bridge.South), "Without must not modify the receiver")
}

func TestDealValidate(t *testing.T) {
	d := bridge.MustParseDeal(canonicalDeal)
	require.NoError(t, d.Validate())

	dup := d
	dup.Set(bridge.North, bridge.Spades, bridge.Ace, true)
	err := dup.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SA held by 2 seats")
	assert.Contains(t, err.Error(), "North holds 14")

	var empty bridge.Deal
	assert.NoError(t, empty.Validate())
}

func TestParseCard(t *testing.T) {
	tests := []struct {
		in      string
		want    bridge.Card
		wantErr bool
	}{
		{"SQ", bridge.NewCard(bridge.Spades, bridge.Queen), false},
		{"c7", bridge.NewCard(bridge.Clubs, bridge.Seven), false},
		{"HT", bridge.NewCard(bridge.Hearts, bridge.Ten), false},
		{"DA", bridge.NewCard(bridge.Diamonds, bridge.Ace), false},
		{"NA", bridge.Card{}, true},
		{"S1", bridge.Card{}, true},
		{"S", bridge.Card{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := bridge.ParseCard(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, bridge.ErrFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSeatAndSuitHelpers(t *testing.T) {
	assert.Equal(t, bridge.East, bridge.North.Next())
	assert.Equal(t, bridge.North, bridge.West.Next())
	assert.Equal(t, bridge.South, bridge.North.Partner())

	for _, in := range []string{"w", "W", "west", "WEST"} {
		seat, err := bridge.ParseSeat(in)
		require.NoError(t, err, in)
		assert.Equal(t, bridge.West, seat)
	}
	_, err := bridge.ParseSeat("X")
	assert.ErrorIs(t, err, bridge.ErrFormat)

	for in, want := range map[string]bridge.Suit{"s": bridge.Spades, "NT": bridge.NoTrump, "n": bridge.NoTrump, "hearts": bridge.Hearts} {
		got, err := bridge.ParseSuit(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	assert.False(t, bridge.NoTrump.IsSuit())
	assert.True(t, bridge.NoTrump.Valid())
}
