package ddstest

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/ddsbridge/dds-go/internal/bindings"
	"github.com/ddsbridge/dds-go/pkg/bridge"
	"github.com/ddsbridge/dds-go/pkg/dds/internal/backend"
)

// SolveFunc answers a SolveBoard call.
type SolveFunc func(d bindings.Deal, target, solutions int) (bindings.FutureTricks, int)

// TableFunc answers one table computation.
type TableFunc func(d bridge.Deal) bindings.TableResults

// Call records one engine call.
type Call struct {
	Op        string
	Thread    int
	Target    int
	Solutions int
	Deals     int
	Filter    [bindings.Strains]int32
}

// Engine is a scripted stand-in for the native engine. It is safe for
// concurrent use.
type Engine struct {
	threads int
	version string

	mu        sync.Mutex
	solve     SolveFunc
	table     TableFunc
	delay     time.Duration
	calls     []Call
	maxSet    int
	memoryMB  int
	resThread int
	freed     int

	busy         [32]atomic.Bool
	solving      atomic.Int64
	tabling      atomic.Bool
	collisions   atomic.Int64
	tableClashes atomic.Int64
}

// New returns an engine that reports threads worker threads.
func New(threads int) *Engine {
	return &Engine{threads: threads, version: "2.9.0-test"}
}

// OnSolve scripts SolveBoard answers.
func (e *Engine) OnSolve(fn SolveFunc) *Engine {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.solve = fn
	return e
}

// OnTable scripts table answers.
func (e *Engine) OnTable(fn TableFunc) *Engine {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.table = fn
	return e
}

// SetDelay makes every SolveBoard and table call sleep for d, widening race
// windows in concurrency tests.
func (e *Engine) SetDelay(d time.Duration) *Engine {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.delay = d
	return e
}

// Calls returns a copy of the call log.
func (e *Engine) Calls() []Call {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]Call(nil), e.calls...)
}

// Collisions counts SolveBoard calls that found their thread index in use.
func (e *Engine) Collisions() int64 { return e.collisions.Load() }

// TableOverlaps counts table calls that overlapped a SolveBoard call.
func (e *Engine) TableOverlaps() int64 { return e.tableClashes.Load() }

// Resources returns the last SetResources arguments.
func (e *Engine) Resources() (maxMemoryMB, maxThreads int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.memoryMB, e.resThread
}

// MaxThreadsSet returns the last SetMaxThreads argument.
func (e *Engine) MaxThreadsSet() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.maxSet
}

// FreeCount returns how often FreeMemory was called.
func (e *Engine) FreeCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.freed
}

func (e *Engine) record(c Call) (time.Duration, SolveFunc, TableFunc) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.calls = append(e.calls, c)
	return e.delay, e.solve, e.table
}

func (e *Engine) Info() (bindings.Info, error) {
	return bindings.Info{
		Major:         2,
		Minor:         9,
		VersionString: e.version,
		NumCores:      e.threads,
		NoOfThreads:   e.threads,
	}, nil
}

func (e *Engine) SetMaxThreads(n int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.maxSet = n
}

func (e *Engine) SetResources(maxMemoryMB, maxThreads int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.memoryMB, e.resThread = maxMemoryMB, maxThreads
}

func (e *Engine) FreeMemory() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.freed++
}

func (e *Engine) ErrorMessage(code int) string {
	return backend.Describe(code)
}

func (e *Engine) SolveBoard(d *bindings.Deal, target, solutions, mode, thread int) (bindings.FutureTricks, int) {
	delay, solve, _ := e.record(Call{Op: "SolveBoard", Thread: thread, Target: target, Solutions: solutions})
	if thread < 0 || thread >= e.threads || thread >= len(e.busy) {
		return bindings.FutureTricks{}, backend.CodeThreadIndex
	}
	if e.busy[thread].Swap(true) {
		e.collisions.Add(1)
	} else {
		defer e.busy[thread].Store(false)
	}
	e.solving.Add(1)
	defer e.solving.Add(-1)
	if e.tabling.Load() {
		e.tableClashes.Add(1)
	}
	time.Sleep(delay)

	switch {
	case target < -1:
		return bindings.FutureTricks{}, backend.CodeTargetWrongLo
	case target > 13:
		return bindings.FutureTricks{}, backend.CodeTargetWrongHi
	case solutions < 1:
		return bindings.FutureTricks{}, backend.CodeSolnsWrongLo
	case solutions > 3:
		return bindings.FutureTricks{}, backend.CodeSolnsWrongHi
	case mode < 0:
		return bindings.FutureTricks{}, backend.CodeModeWrongLo
	case mode > 2:
		return bindings.FutureTricks{}, backend.CodeModeWrongHi
	case d.Trump < 0 || d.Trump > 4:
		return bindings.FutureTricks{}, backend.CodeTrumpWrong
	case d.First < 0 || d.First > 3:
		return bindings.FutureTricks{}, backend.CodeFirstWrong
	}
	if code := checkCards(d.RemainCards); code != backend.CodeNoFault {
		return bindings.FutureTricks{}, code
	}
	if solve != nil {
		return solve(*d, target, solutions)
	}
	return highestCards(*d), backend.CodeNoFault
}

func (e *Engine) CalcDDTable(d *bindings.TableDeal) (bindings.TableResults, int) {
	delay, _, table := e.record(Call{Op: "CalcDDTable", Deals: 1})
	defer e.enterTable()()
	time.Sleep(delay)
	if code := checkCards(d.Cards); code != backend.CodeNoFault {
		return bindings.TableResults{}, code
	}
	return tableFor(table, backend.DealFromRemainCards(d.Cards)), backend.CodeNoFault
}

func (e *Engine) CalcDDTablePBN(pbn string) (bindings.TableResults, int) {
	delay, _, table := e.record(Call{Op: "CalcDDTablePBN", Deals: 1})
	defer e.enterTable()()
	time.Sleep(delay)
	deal, err := bridge.ParseDeal(pbn)
	if err != nil {
		return bindings.TableResults{}, backend.CodePBNFault
	}
	if code := checkCards(backend.RemainCards(deal)); code != backend.CodeNoFault {
		return bindings.TableResults{}, code
	}
	return tableFor(table, deal), backend.CodeNoFault
}

func (e *Engine) CalcAllTables(deals []bindings.TableDeal, mode int, filter [bindings.Strains]int32) ([]bindings.TableResults, int) {
	delay, _, table := e.record(Call{Op: "CalcAllTables", Deals: len(deals), Filter: filter})
	defer e.enterTable()()
	time.Sleep(delay)

	active := 0
	for _, skip := range filter {
		if skip == 0 {
			active++
		}
	}
	switch {
	case active == 0:
		return nil, backend.CodeNoSuit
	case len(deals) > bindings.MaxTables:
		return nil, backend.CodeTooManyTables
	case len(deals)*active > bindings.MaxBoards:
		return nil, backend.CodeTooManyBoards
	}

	out := make([]bindings.TableResults, len(deals))
	for i := range deals {
		if code := checkCards(deals[i].Cards); code != backend.CodeNoFault {
			return nil, code
		}
		res := tableFor(table, backend.DealFromRemainCards(deals[i].Cards))
		for strain, skip := range filter {
			if skip != 0 {
				for hand := range bindings.Hands {
					res.ResTable[strain*bindings.Hands+hand] = 0
				}
			}
		}
		out[i] = res
	}
	return out, backend.CodeNoFault
}

func (e *Engine) enterTable() func() {
	e.tabling.Store(true)
	if e.solving.Load() > 0 {
		e.tableClashes.Add(1)
	}
	return func() { e.tabling.Store(false) }
}

// checkCards reports duplicated cards and hands longer than 13.
func checkCards(cards [bindings.Hands * 4]uint32) int {
	var seen [4]uint32
	for hand := range bindings.Hands {
		n := 0
		for strain := range 4 {
			m := cards[hand*4+strain]
			if seen[strain]&m != 0 {
				return backend.CodeDuplicateCards
			}
			seen[strain] |= m
			for ; m != 0; m &= m - 1 {
				n++
			}
		}
		if n > bridge.NumRanks {
			return backend.CodeTooManyCards
		}
	}
	if seen == [4]uint32{} {
		return backend.CodeZeroCards
	}
	return backend.CodeNoFault
}

func tableFor(fn TableFunc, d bridge.Deal) bindings.TableResults {
	if fn != nil {
		return fn(d)
	}
	return SuitLengthTable(d)
}

// SuitLengthTable is the default table answer: each seat takes as many
// tricks as it holds cards in the strain, and its longest suit at NoTrump.
func SuitLengthTable(d bridge.Deal) bindings.TableResults {
	var res bindings.TableResults
	for _, seat := range bridge.Seats() {
		hand, _ := backend.SeatToHand(seat)
		longest := 0
		for suit := bridge.Clubs; suit <= bridge.Spades; suit++ {
			n := 0
			for m := d.Holding(seat, suit); m != 0; m &= m - 1 {
				n++
			}
			longest = max(longest, n)
			strain, _ := backend.SuitToStrain(suit)
			res.ResTable[strain*bindings.Hands+hand] = int32(n)
		}
		res.ResTable[backend.StrainNoTrump*bindings.Hands+hand] = int32(longest)
	}
	return res
}

// highestCards answers with the top card of each suit held by the seat to
// play.
func highestCards(d bindings.Deal) bindings.FutureTricks {
	played := 0
	for _, r := range d.CurrentTrickRank {
		if r != 0 {
			played++
		}
	}
	hand := (int(d.First) + played) % bindings.Hands
	var ft bindings.FutureTricks
	for strain := range 4 {
		m := d.RemainCards[hand*4+strain]
		if m == 0 {
			continue
		}
		top := 31
		for m&(1<<top) == 0 {
			top--
		}
		ft.Suit[ft.Cards] = int32(strain)
		ft.Rank[ft.Cards] = int32(top)
		ft.Cards++
	}
	return ft
}
