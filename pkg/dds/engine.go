package dds

import "github.com/ddsbridge/dds-go/internal/bindings"

// Engine is the native solver seen through its fixed-layout records. The
// default implementation calls libdds through cgo; tests substitute
// ddstest.Engine.
//
// Status codes follow the engine's convention: 1 is success, negative
// values are faults.
type Engine interface {
	Info() (bindings.Info, error)
	SetMaxThreads(n int)
	SetResources(maxMemoryMB, maxThreads int)
	FreeMemory()
	ErrorMessage(code int) string

	SolveBoard(d *bindings.Deal, target, solutions, mode, thread int) (bindings.FutureTricks, int)
	CalcDDTable(d *bindings.TableDeal) (bindings.TableResults, int)
	CalcDDTablePBN(pbn string) (bindings.TableResults, int)
	CalcAllTables(deals []bindings.TableDeal, mode int, filter [bindings.Strains]int32) ([]bindings.TableResults, int)
}

// EngineInfo is what the engine reports about its build and threading.
type EngineInfo = bindings.Info
