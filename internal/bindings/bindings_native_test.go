//go:build cgo && dds

package bindings

import "testing"

// North holds all spades, East all hearts, South all diamonds, West all
// clubs.
func solidDeal() TableDeal {
	const all = uint32(0x7FFC) // rank codes 2..14
	var d TableDeal
	d.Cards[0*4+0] = all
	d.Cards[1*4+1] = all
	d.Cards[2*4+2] = all
	d.Cards[3*4+3] = all
	return d
}

func TestNativeInfo(t *testing.T) {
	info, err := GetInfo()
	if err != nil {
		t.Fatalf("GetInfo() failed: %v", err)
	}
	if info.NoOfThreads < 1 {
		t.Errorf("NoOfThreads = %d", info.NoOfThreads)
	}
}

func TestNativeCalcDDTable(t *testing.T) {
	d := solidDeal()
	res, code := CalcDDTable(&d)
	if code != StatusOK {
		t.Fatalf("CalcDDTable() code = %d: %s", code, ErrorMessage(code))
	}
	// North declares spades: 13 tricks. Strain 0 is spades, hand 0 North.
	if got := res.ResTable[0*Hands+0]; got != 13 {
		t.Errorf("North in spades = %d, want 13", got)
	}
}

func TestNativeSolveBoard(t *testing.T) {
	td := solidDeal()
	d := Deal{Trump: 4, First: 0, RemainCards: td.Cards}
	fut, code := SolveBoard(&d, -1, 1, 1, 0)
	if code != StatusOK {
		t.Fatalf("SolveBoard() code = %d: %s", code, ErrorMessage(code))
	}
	if fut.Cards != 1 || fut.Score[0] != 13 {
		t.Errorf("SolveBoard() = %d cards, score %d; want 1 card, 13", fut.Cards, fut.Score[0])
	}
}
