//go:build !cgo || !dds

package bindings

// Stub implementations for builds without the native engine. They allow the
// module to compile and report StatusNotBuilt or ErrNotBuilt when called.

func Available() bool { return false }

func GetInfo() (Info, error) { return Info{}, ErrNotBuilt }

func SetMaxThreads(int) {}

func SetResources(int, int) {}

func FreeMemory() {}

func ErrorMessage(int) string { return ErrNotBuilt.Error() }

func SolveBoard(*Deal, int, int, int, int) (FutureTricks, int) {
	return FutureTricks{}, StatusNotBuilt
}

func CalcDDTable(*TableDeal) (TableResults, int) {
	return TableResults{}, StatusNotBuilt
}

func CalcDDTablePBN(string) (TableResults, int) {
	return TableResults{}, StatusNotBuilt
}

func CalcAllTables([]TableDeal, int, [Strains]int32) ([]TableResults, int) {
	return nil, StatusNotBuilt
}
