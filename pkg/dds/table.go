package dds

import (
	"context"
	"fmt"
	"strings"

	"github.com/ddsbridge/dds-go/internal/bindings"
	"github.com/ddsbridge/dds-go/pkg/bridge"
	"github.com/ddsbridge/dds-go/pkg/dds/internal/backend"
)

// TableResults holds the double-dummy trick count for every declarer and
// strain, indexed [strain][seat].
type TableResults [bridge.NumStrains][bridge.NumSeats]int

// Tricks returns the tricks seat takes as declarer in strain.
func (t TableResults) Tricks(seat bridge.Seat, strain bridge.Suit) int {
	if !seat.Valid() || !strain.Valid() {
		return 0
	}
	return t[strain][seat]
}

// String renders one row per seat and one column per strain, Clubs first:
//
//	    C  D  H  S NT
//	N   8  7  9  5  6
func (t TableResults) String() string {
	var b strings.Builder
	b.WriteString("  ")
	for _, strain := range bridge.Strains() {
		name := string(strain.Letter())
		if strain == bridge.NoTrump {
			name = "NT"
		}
		fmt.Fprintf(&b, " %2s", name)
	}
	for _, seat := range bridge.Seats() {
		fmt.Fprintf(&b, "\n%c ", seat.Letter())
		for _, strain := range bridge.Strains() {
			fmt.Fprintf(&b, " %2d", t[strain][seat])
		}
	}
	return b.String()
}

// allTablesMode asks CalcAllTables for trick counts only, no par scores.
const allTablesMode = -1

// PossibleTricks computes the double-dummy table for a full deal.
func (s *Solver) PossibleTricks(ctx context.Context, deal bridge.Deal) (TableResults, error) {
	const op = "PossibleTricks"
	if err := s.begin(ctx, op); err != nil {
		return TableResults{}, err
	}
	td := backend.ToTableDeal(deal)

	s.gate.Lock()
	defer s.gate.Unlock()
	if err := s.checkOpen(op); err != nil {
		return TableResults{}, err
	}
	res, code := s.engine.CalcDDTable(&td)
	if code != bindings.StatusOK {
		return TableResults{}, s.engineError(ctx, op, code)
	}
	return TableResults(backend.FromTableResults(res)), nil
}

// PossibleTricksPBN computes the double-dummy table for a deal given as PBN
// text. The text is handed to the engine's own parser; it must fit the
// engine's 80-byte buffer. Non-ASCII bytes are replaced with '?'.
func (s *Solver) PossibleTricksPBN(ctx context.Context, pbn string) (TableResults, error) {
	const op = "PossibleTricksPBN"
	if err := s.begin(ctx, op); err != nil {
		return TableResults{}, err
	}
	if len(pbn) >= bindings.PBNCapacity {
		return TableResults{}, invalidf(op, "PBN text is %d bytes, limit %d", len(pbn), bindings.PBNCapacity-1)
	}

	s.gate.Lock()
	defer s.gate.Unlock()
	if err := s.checkOpen(op); err != nil {
		return TableResults{}, err
	}
	res, code := s.engine.CalcDDTablePBN(pbn)
	if code != bindings.StatusOK {
		return TableResults{}, s.engineError(ctx, op, code)
	}
	return TableResults(backend.FromTableResults(res)), nil
}

// PossibleTricksBatch computes tables for many deals, limited to the given
// strains. Strains not asked for are left zero. An empty strains list
// selects all five.
//
// Deals are split into chunks that respect the engine's per-call limits
// (at most 40 deals, at most 200 deal-strain pairs).
func (s *Solver) PossibleTricksBatch(ctx context.Context, deals []bridge.Deal, strains []bridge.Suit) ([]TableResults, error) {
	const op = "PossibleTricksBatch"
	if err := s.begin(ctx, op); err != nil {
		return nil, err
	}
	filter, err := backend.StrainFilter(strains)
	if err != nil {
		return nil, invalidf(op, "strains: %v", err)
	}
	if len(deals) == 0 {
		return nil, nil
	}
	chunk := batchChunk(filter)

	s.gate.Lock()
	defer s.gate.Unlock()
	if err := s.checkOpen(op); err != nil {
		return nil, err
	}

	out := make([]TableResults, 0, len(deals))
	tds := make([]bindings.TableDeal, 0, chunk)
	for start := 0; start < len(deals); start += chunk {
		if err := ctx.Err(); err != nil {
			return nil, &Error{Op: op, Err: err}
		}
		end := min(start+chunk, len(deals))
		tds = tds[:0]
		for _, d := range deals[start:end] {
			tds = append(tds, backend.ToTableDeal(d))
		}
		res, code := s.engine.CalcAllTables(tds, allTablesMode, filter)
		if code != bindings.StatusOK {
			return nil, s.engineError(ctx, op, code)
		}
		if len(res) != len(tds) {
			return nil, &Error{Op: op, Err: ErrEngine}
		}
		for _, r := range res {
			out = append(out, TableResults(backend.FromTableResults(r)))
		}
	}
	return out, nil
}

// batchChunk returns how many deals fit into one CalcAllTables call.
func batchChunk(filter [bindings.Strains]int32) int {
	active := 0
	for _, skip := range filter {
		if skip == 0 {
			active++
		}
	}
	return min(bindings.MaxTables, bindings.MaxBoards/max(active, 1))
}
