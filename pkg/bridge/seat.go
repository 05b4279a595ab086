package bridge

import (
	"fmt"
	"strings"
)

// Seat is one of the four players at the table.
type Seat uint8

const (
	North Seat = iota
	East
	South
	West
)

// NumSeats is the number of seats at a bridge table.
const NumSeats = 4

var seatLetters = [NumSeats]byte{'N', 'E', 'S', 'W'}

// Seats lists the seats in table order starting at North.
func Seats() [NumSeats]Seat {
	return [NumSeats]Seat{North, East, South, West}
}

// Next returns the seat that plays after s (clockwise).
func (s Seat) Next() Seat { return (s + 1) % NumSeats }

// Partner returns the seat opposite s.
func (s Seat) Partner() Seat { return (s + 2) % NumSeats }

// Valid reports whether s names one of the four seats.
func (s Seat) Valid() bool { return s < NumSeats }

// Letter returns the single-letter PBN name of the seat.
func (s Seat) Letter() byte {
	if !s.Valid() {
		return '?'
	}
	return seatLetters[s]
}

func (s Seat) String() string {
	switch s {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	default:
		return fmt.Sprintf("Seat(%d)", uint8(s))
	}
}

// ParseSeat accepts a seat letter or full seat name, in any letter case.
func ParseSeat(s string) (Seat, error) {
	switch len(s) {
	case 0:
		return 0, fmt.Errorf("%w: empty seat", ErrFormat)
	case 1:
		if seat, ok := seatFromLetter(s[0]); ok {
			return seat, nil
		}
	default:
		for _, seat := range Seats() {
			if strings.EqualFold(s, seat.String()) {
				return seat, nil
			}
		}
	}
	return 0, fmt.Errorf("%w: unknown seat %q", ErrFormat, s)
}

func seatFromLetter(c byte) (Seat, bool) {
	switch upper(c) {
	case 'N':
		return North, true
	case 'E':
		return East, true
	case 'S':
		return South, true
	case 'W':
		return West, true
	}
	return 0, false
}
