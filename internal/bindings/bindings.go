//go:build cgo && dds

package bindings

/*
#cgo CFLAGS: -I/usr/local/include/dds -I/usr/include/dds
#cgo LDFLAGS: -L/usr/local/lib -ldds -lstdc++
#cgo linux LDFLAGS: -lgomp
#cgo darwin CFLAGS: -I/opt/homebrew/include/dds
#cgo darwin LDFLAGS: -L/opt/homebrew/lib
#include <stdlib.h>
#include <string.h>
#include "dll.h"
*/
import "C"

import "unsafe"

// Available reports whether the native engine is linked in.
func Available() bool { return true }

// GetInfo queries the engine build and thread configuration.
func GetInfo() (Info, error) {
	var ci C.struct_DDSInfo
	C.GetDDSInfo(&ci)
	return Info{
		Major:         int(ci.major),
		Minor:         int(ci.minor),
		Patch:         int(ci.patch),
		VersionString: C.GoString(&ci.versionString[0]),
		System:        int(ci.system),
		NumBits:       int(ci.numBits),
		Compiler:      int(ci.compiler),
		Constructor:   int(ci.constructor),
		NumCores:      int(ci.numCores),
		Threading:     int(ci.threading),
		NoOfThreads:   int(ci.noOfThreads),
		ThreadSizes:   C.GoString(&ci.threadSizes[0]),
		SystemString:  C.GoString(&ci.systemString[0]),
	}, nil
}

// SetMaxThreads configures the engine's thread pool.
func SetMaxThreads(n int) { C.SetMaxThreads(C.int(n)) }

// SetResources sets the memory budget and thread count.
func SetResources(maxMemoryMB, maxThreads int) {
	C.SetResources(C.int(maxMemoryMB), C.int(maxThreads))
}

// FreeMemory releases the engine's transposition tables.
func FreeMemory() { C.FreeMemory() }

// ErrorMessage returns the engine's text for a status code.
func ErrorMessage(code int) string {
	var buf [PBNCapacity]C.char
	C.ErrorMessage(C.int(code), &buf[0])
	return C.GoString(&buf[0])
}

// SolveBoard runs the card-play search for one position on the given
// engine thread index. The caller must own thread exclusively.
func SolveBoard(d *Deal, target, solutions, mode, thread int) (FutureTricks, int) {
	var cd C.struct_deal
	cd.trump = C.int(d.Trump)
	cd.first = C.int(d.First)
	for i := 0; i < 3; i++ {
		cd.currentTrickSuit[i] = C.int(d.CurrentTrickSuit[i])
		cd.currentTrickRank[i] = C.int(d.CurrentTrickRank[i])
	}
	for h := 0; h < Hands; h++ {
		for s := 0; s < 4; s++ {
			cd.remainCards[h][s] = C.uint(d.RemainCards[h*4+s])
		}
	}

	var fut C.struct_futureTricks
	rc := C.SolveBoard(cd, C.int(target), C.int(solutions), C.int(mode), &fut, C.int(thread))

	var out FutureTricks
	out.Nodes = int32(fut.nodes)
	out.Cards = int32(fut.cards)
	for i := 0; i < 13; i++ {
		out.Suit[i] = int32(fut.suit[i])
		out.Rank[i] = int32(fut.rank[i])
		out.Equals[i] = int32(fut.equals[i])
		out.Score[i] = int32(fut.score[i])
	}
	return out, int(rc)
}

// CalcDDTable computes the double-dummy table of one full deal.
func CalcDDTable(d *TableDeal) (TableResults, int) {
	var cd C.struct_ddTableDeal
	for h := 0; h < Hands; h++ {
		for s := 0; s < 4; s++ {
			cd.cards[h][s] = C.uint(d.Cards[h*4+s])
		}
	}
	var res C.struct_ddTableResults
	rc := C.CalcDDtable(cd, &res)
	return tableFromC(&res), int(rc)
}

// CalcDDTablePBN is CalcDDTable with the deal given as PBN text. Text longer
// than the engine buffer is truncated; non-ASCII bytes become '?'.
func CalcDDTablePBN(pbn string) (TableResults, int) {
	var cd C.struct_ddTableDealPBN
	n := 0
	for ; n < len(pbn) && n < PBNCapacity-1; n++ {
		c := pbn[n]
		if c > 0x7F {
			c = '?'
		}
		cd.cards[n] = C.char(c)
	}
	cd.cards[n] = 0

	var res C.struct_ddTableResults
	rc := C.CalcDDtablePBN(cd, &res)
	return tableFromC(&res), int(rc)
}

// CalcAllTables computes tables for up to MaxTables deals. filter[s] == 1
// skips strain s. mode -1 skips par calculation.
func CalcAllTables(deals []TableDeal, mode int, filter [Strains]int32) ([]TableResults, int) {
	var cd C.struct_ddTableDeals
	cd.noOfTables = C.int(len(deals))
	for i := range deals {
		for h := 0; h < Hands; h++ {
			for s := 0; s < 4; s++ {
				cd.deals[i].cards[h][s] = C.uint(deals[i].Cards[h*4+s])
			}
		}
	}
	var cfilter [Strains]C.int
	for i, v := range filter {
		cfilter[i] = C.int(v)
	}

	res := (*C.struct_ddTablesRes)(C.calloc(1, C.size_t(unsafe.Sizeof(C.struct_ddTablesRes{}))))
	par := (*C.struct_allParResults)(C.calloc(1, C.size_t(unsafe.Sizeof(C.struct_allParResults{}))))
	defer C.free(unsafe.Pointer(res))
	defer C.free(unsafe.Pointer(par))

	rc := C.CalcAllTables(&cd, C.int(mode), &cfilter[0], res, par)
	if rc < 0 {
		return nil, int(rc)
	}
	out := make([]TableResults, len(deals))
	for i := range out {
		out[i] = tableFromC(&res.results[i])
	}
	return out, int(rc)
}

func tableFromC(res *C.struct_ddTableResults) TableResults {
	var out TableResults
	for strain := 0; strain < Strains; strain++ {
		for h := 0; h < Hands; h++ {
			out.ResTable[strain*Hands+h] = int32(res.resTable[strain][h])
		}
	}
	return out
}
