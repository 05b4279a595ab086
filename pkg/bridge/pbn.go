package bridge

import "strings"

// ParseDeal reads a PBN deal string such as
//
//	N:954.QJT3.AJT.QJ6 KJT2.87.5.AK9875 AQ86.K652.86432. 73.A94.KQ97.T432
//
// The leading letter names the seat holding the first hand; the remaining
// hands follow clockwise. Within a hand the suit groups are always Spades,
// Hearts, Diamonds, Clubs. Ranks may appear in any order and any letter case.
// Hands are separated by exactly one space; leading, trailing or doubled
// spaces are rejected.
func ParseDeal(text string) (Deal, error) {
	var d Deal
	if len(text) < 2 {
		return d, formatErrorf(text, 0, "deal too short")
	}
	seat, ok := seatFromLetter(text[0])
	if !ok {
		return d, formatErrorf(text, 0, "first seat %q is not one of N, E, S, W", text[0])
	}
	if text[1] != ':' {
		return d, formatErrorf(text, 1, "expected ':' after first seat")
	}

	pos := 2
	hands := 0
	for _, hand := range strings.Split(text[2:], " ") {
		if hand == "" {
			// a hand always has its dots, so this is a stray space
			return d, formatErrorf(text, pos, "hands must be separated by a single space")
		}
		if hands == NumSeats {
			return d, formatErrorf(text, pos, "more than %d hands", NumSeats)
		}
		if err := parseHand(&d, seat, text, hand, pos); err != nil {
			return d, err
		}
		seat = seat.Next()
		hands++
		pos += len(hand) + 1
	}
	if hands != NumSeats {
		return d, formatErrorf(text, len(text), "found %d hands, want %d", hands, NumSeats)
	}
	return d, nil
}

func parseHand(d *Deal, seat Seat, text, hand string, pos int) error {
	groups := strings.Split(hand, ".")
	if len(groups) != NumSuits {
		return formatErrorf(text, pos, "hand %q has %d suit groups, want %d", hand, len(groups), NumSuits)
	}
	for i, group := range groups {
		suit := PBNSuitOrder[i]
		for j := 0; j < len(group); j++ {
			rank, ok := RankFromChar(group[j])
			if !ok {
				return formatErrorf(text, pos+j, "invalid rank %q", group[j])
			}
			d.Set(seat, suit, rank, true)
		}
		pos += len(group) + 1
	}
	return nil
}

// MustParseDeal is like ParseDeal but panics on malformed input. It is meant
// for fixtures and package-level variables.
func MustParseDeal(text string) Deal {
	d, err := ParseDeal(text)
	if err != nil {
		panic(err)
	}
	return d
}

// String returns the canonical PBN form of the deal: anchored at North,
// suits in PBN order, ranks from Ace down to Two.
func (d Deal) String() string {
	var b strings.Builder
	b.Grow(2 + 52 + 4*3 + 3)
	b.WriteByte(North.Letter())
	b.WriteByte(':')
	for i, seat := range Seats() {
		if i > 0 {
			b.WriteByte(' ')
		}
		for j, suit := range PBNSuitOrder {
			if j > 0 {
				b.WriteByte('.')
			}
			mask := bit(seat, suit)
			for r := int(Ace); r >= int(Two); r-- {
				if d.ranks[r]&mask != 0 {
					b.WriteByte(rankChars[r])
				}
			}
		}
	}
	return b.String()
}

// MarshalText implements encoding.TextMarshaler using the canonical PBN form.
func (d Deal) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Deal) UnmarshalText(text []byte) error {
	parsed, err := ParseDeal(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
