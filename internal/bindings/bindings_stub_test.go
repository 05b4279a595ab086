//go:build !cgo || !dds

package bindings

import (
	"errors"
	"testing"
)

func TestStubReportsNotBuilt(t *testing.T) {
	if Available() {
		t.Fatal("Available() = true in a stub build")
	}
	if _, err := GetInfo(); !errors.Is(err, ErrNotBuilt) {
		t.Errorf("GetInfo() error = %v, want ErrNotBuilt", err)
	}
	if _, code := SolveBoard(&Deal{}, -1, 1, 1, 0); code != StatusNotBuilt {
		t.Errorf("SolveBoard() code = %d, want %d", code, StatusNotBuilt)
	}
	if _, code := CalcDDTable(&TableDeal{}); code != StatusNotBuilt {
		t.Errorf("CalcDDTable() code = %d, want %d", code, StatusNotBuilt)
	}
	if _, code := CalcDDTablePBN("N:..."); code != StatusNotBuilt {
		t.Errorf("CalcDDTablePBN() code = %d, want %d", code, StatusNotBuilt)
	}
	if res, code := CalcAllTables(nil, -1, [Strains]int32{}); res != nil || code != StatusNotBuilt {
		t.Errorf("CalcAllTables() = %v, %d", res, code)
	}
}
