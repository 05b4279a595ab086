package backend

import "github.com/ddsbridge/dds-go/internal/bindings"

// Native forwards engine calls to the linked libdds.
type Native struct{}

// NewNative returns the native engine, or bindings.ErrNotBuilt when the
// binary was built without it.
func NewNative() (Native, error) {
	if !bindings.Available() {
		return Native{}, bindings.ErrNotBuilt
	}
	return Native{}, nil
}

func (Native) Info() (bindings.Info, error) { return bindings.GetInfo() }

func (Native) SetMaxThreads(n int) { bindings.SetMaxThreads(n) }

func (Native) SetResources(maxMemoryMB, maxThreads int) {
	bindings.SetResources(maxMemoryMB, maxThreads)
}

func (Native) FreeMemory() { bindings.FreeMemory() }

func (Native) ErrorMessage(code int) string { return bindings.ErrorMessage(code) }

func (Native) SolveBoard(d *bindings.Deal, target, solutions, mode, thread int) (bindings.FutureTricks, int) {
	return bindings.SolveBoard(d, target, solutions, mode, thread)
}

func (Native) CalcDDTable(d *bindings.TableDeal) (bindings.TableResults, int) {
	return bindings.CalcDDTable(d)
}

func (Native) CalcDDTablePBN(pbn string) (bindings.TableResults, int) {
	return bindings.CalcDDTablePBN(pbn)
}

func (Native) CalcAllTables(deals []bindings.TableDeal, mode int, filter [bindings.Strains]int32) ([]bindings.TableResults, int) {
	return bindings.CalcAllTables(deals, mode, filter)
}
