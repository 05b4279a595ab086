package bindings

import "errors"

// Limits fixed by the native engine build.
const (
	// MaxThreads is the largest thread count the wrapper hands to the engine.
	MaxThreads = 16
	// MaxBoards bounds tables*strains in a single CalcAllTables call.
	MaxBoards = 200
	// MaxTables bounds the number of deals in a single CalcAllTables call.
	MaxTables = 40
	// Strains is the number of denominations in a result table.
	Strains = 5
	// Hands is the number of seats in every engine array.
	Hands = 4
	// PBNCapacity is the size of the engine's PBN text buffer, NUL included.
	PBNCapacity = 80
)

// Status values returned by engine calls. Positive is success; negative
// values are documented faults.
const (
	StatusOK = 1

	// StatusNotBuilt is never returned by the engine itself; stubs use it
	// when the native library is not linked.
	StatusNotBuilt = -1000
)

var (
	// ErrNotBuilt reports that the native bindings were not linked into the
	// current binary. Build with cgo and the dds tag to enable them.
	ErrNotBuilt = errors.New("dds/internal/bindings: native bindings not built")
)

// Deal mirrors struct deal: a position with up to three cards already
// played to the current trick. RemainCards is indexed hand*4+suit and holds
// one bit per rank, bit r for rank r in 2..14.
type Deal struct {
	Trump            int32
	First            int32
	CurrentTrickSuit [3]int32
	CurrentTrickRank [3]int32
	RemainCards      [Hands * 4]uint32
}

// FutureTricks mirrors struct futureTricks, the SolveBoard output.
type FutureTricks struct {
	Nodes  int32
	Cards  int32
	Suit   [13]int32
	Rank   [13]int32
	Equals [13]int32
	Score  [13]int32
}

// TableDeal mirrors struct ddTableDeal; Cards is indexed hand*4+suit.
type TableDeal struct {
	Cards [Hands * 4]uint32
}

// TableResults mirrors struct ddTableResults; ResTable is indexed
// strain*4+hand.
type TableResults struct {
	ResTable [Strains * Hands]int32
}

// Info mirrors struct DDSInfo with the C strings converted.
type Info struct {
	Major, Minor, Patch int
	VersionString       string
	System              int
	NumBits             int
	Compiler            int
	Constructor         int
	NumCores            int
	Threading           int
	NoOfThreads         int
	ThreadSizes         string
	SystemString        string
}
