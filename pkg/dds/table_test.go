package dds_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ddsbridge/dds-go/internal/bindings"
	"github.com/ddsbridge/dds-go/pkg/bridge"
	"github.com/ddsbridge/dds-go/pkg/dds"
	"github.com/ddsbridge/dds-go/pkg/dds/ddstest"
)

func TestPossibleTricks(t *testing.T) {
	eng := ddstest.New(4)
	s := openSolver(t, eng)
	deal := bridge.MustParseDeal(exampleDeal)

	table, err := s.PossibleTricks(context.Background(), deal)
	require.NoError(t, err)

	// The test engine scores suit length, longest suit at NoTrump.
	assert.Equal(t, 3, table.Tricks(bridge.North, bridge.Spades))
	assert.Equal(t, 4, table.Tricks(bridge.North, bridge.Hearts))
	assert.Equal(t, 4, table.Tricks(bridge.North, bridge.NoTrump))
	assert.Equal(t, 0, table.Tricks(bridge.South, bridge.Clubs))
	assert.Equal(t, 5, table.Tricks(bridge.South, bridge.Diamonds))
	assert.Equal(t, 6, table.Tricks(bridge.East, bridge.NoTrump))
	assert.Equal(t, 0, table.Tricks(bridge.Seat(7), bridge.Clubs))

	pbnTable, err := s.PossibleTricksPBN(context.Background(), exampleDeal)
	require.NoError(t, err)
	assert.Equal(t, table, pbnTable)
}

func TestPossibleTricksPBNErrors(t *testing.T) {
	s := openSolver(t, ddstest.New(4))
	ctx := context.Background()

	_, err := s.PossibleTricksPBN(ctx, exampleDeal+strings.Repeat(" ", 20))
	assert.ErrorIs(t, err, dds.ErrInvalidArgument)

	_, err = s.PossibleTricksPBN(ctx, "X:not a deal")
	var engErr *dds.EngineError
	require.ErrorAs(t, err, &engErr)
	assert.Equal(t, -99, engErr.Code)
}

func TestPossibleTricksBatchChunks(t *testing.T) {
	eng := ddstest.New(4)
	s := openSolver(t, eng)
	deal := bridge.MustParseDeal(exampleDeal)

	deals := make([]bridge.Deal, 100)
	for i := range deals {
		deals[i] = deal
	}
	tables, err := s.PossibleTricksBatch(context.Background(), deals, []bridge.Suit{bridge.Spades, bridge.NoTrump})
	require.NoError(t, err)
	require.Len(t, tables, len(deals))

	for _, table := range tables {
		assert.Equal(t, 3, table.Tricks(bridge.North, bridge.Spades))
		assert.Equal(t, 4, table.Tricks(bridge.North, bridge.NoTrump))
		assert.Equal(t, 0, table.Tricks(bridge.North, bridge.Hearts), "hearts were not requested")
	}

	var sizes []int
	for _, c := range eng.Calls() {
		require.Equal(t, "CalcAllTables", c.Op)
		assert.Equal(t, [bindings.Strains]int32{0, 1, 1, 1, 0}, c.Filter)
		assert.LessOrEqual(t, c.Deals, bindings.MaxTables)
		sizes = append(sizes, c.Deals)
	}
	assert.Equal(t, []int{40, 40, 20}, sizes)
}

func TestPossibleTricksBatchEdgeCases(t *testing.T) {
	s := openSolver(t, ddstest.New(4))
	ctx := context.Background()

	tables, err := s.PossibleTricksBatch(ctx, nil, nil)
	require.NoError(t, err)
	assert.Empty(t, tables)

	_, err = s.PossibleTricksBatch(ctx, []bridge.Deal{bridge.MustParseDeal(exampleDeal)}, []bridge.Suit{bridge.Suit(6)})
	assert.ErrorIs(t, err, dds.ErrInvalidArgument)

	var empty bridge.Deal
	_, err = s.PossibleTricksBatch(ctx, []bridge.Deal{empty}, nil)
	var engErr *dds.EngineError
	require.ErrorAs(t, err, &engErr)
	assert.Equal(t, -2, engErr.Code)
}

func TestTableResultsString(t *testing.T) {
	var table dds.TableResults
	table[bridge.NoTrump][bridge.West] = 13
	table[bridge.Clubs][bridge.North] = 7

	want := strings.Join([]string{
		"    C  D  H  S NT",
		"N   7  0  0  0  0",
		"E   0  0  0  0  0",
		"S   0  0  0  0  0",
		"W   0  0  0  0 13",
	}, "\n")
	assert.Equal(t, want, table.String())
}
