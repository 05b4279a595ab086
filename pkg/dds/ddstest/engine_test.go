package ddstest_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ddsbridge/dds-go/internal/bindings"
	"github.com/ddsbridge/dds-go/pkg/bridge"
	"github.com/ddsbridge/dds-go/pkg/dds/ddstest"
	"github.com/ddsbridge/dds-go/pkg/dds/internal/backend"
)

const exampleDeal = "N:954.QJT3.AJT.QJ6 KJT2.87.5.AK9875 AQ86.K652.86432. 73.A94.KQ97.T432"

func exampleBoard(t *testing.T) bindings.Deal {
	t.Helper()
	d, err := backend.ToDeal(bridge.MustParseDeal(exampleDeal), bridge.NoTrump, bridge.North, nil)
	require.NoError(t, err)
	return d
}

func TestEngineDetectsSlotCollision(t *testing.T) {
	eng := ddstest.New(2).SetDelay(20 * time.Millisecond)
	d := exampleBoard(t)

	var wg sync.WaitGroup
	for range 2 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, code := eng.SolveBoard(&d, -1, 1, 1, 0)
			assert.Equal(t, 1, code)
		}()
	}
	wg.Wait()
	assert.Equal(t, int64(1), eng.Collisions())
}

func TestEngineDetectsTableOverlap(t *testing.T) {
	eng := ddstest.New(2).SetDelay(20 * time.Millisecond)
	d := exampleBoard(t)
	td := bindings.TableDeal{Cards: d.RemainCards}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		eng.SolveBoard(&d, -1, 1, 1, 1)
	}()
	go func() {
		defer wg.Done()
		time.Sleep(5 * time.Millisecond)
		eng.CalcDDTable(&td)
	}()
	wg.Wait()
	assert.Positive(t, eng.TableOverlaps())
}

func TestEngineValidatesInput(t *testing.T) {
	eng := ddstest.New(2)
	d := exampleBoard(t)

	tests := []struct {
		name                      string
		target, solutions, thread int
		mutate                    func(*bindings.Deal)
		want                      int
	}{
		{"thread out of range", -1, 1, 2, nil, backend.CodeThreadIndex},
		{"target too high", 14, 1, 0, nil, backend.CodeTargetWrongHi},
		{"too many solutions", -1, 4, 0, nil, backend.CodeSolnsWrongHi},
		{"bad trump", -1, 1, 0, func(d *bindings.Deal) { d.Trump = 5 }, backend.CodeTrumpWrong},
		{"duplicate", -1, 1, 0, func(d *bindings.Deal) { d.RemainCards[0] |= 1 << 14 }, backend.CodeDuplicateCards},
		{"empty", -1, 1, 0, func(d *bindings.Deal) { d.RemainCards = [16]uint32{} }, backend.CodeZeroCards},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := d
			if tt.mutate != nil {
				tt.mutate(&board)
			}
			_, code := eng.SolveBoard(&board, tt.target, tt.solutions, 1, tt.thread)
			assert.Equal(t, tt.want, code)
		})
	}
}

func TestCalcAllTablesLimits(t *testing.T) {
	eng := ddstest.New(2)
	td := bindings.TableDeal{Cards: exampleBoard(t).RemainCards}

	_, code := eng.CalcAllTables([]bindings.TableDeal{td}, -1, [bindings.Strains]int32{1, 1, 1, 1, 1})
	assert.Equal(t, backend.CodeNoSuit, code)

	many := make([]bindings.TableDeal, bindings.MaxTables+1)
	for i := range many {
		many[i] = td
	}
	_, code = eng.CalcAllTables(many, -1, [bindings.Strains]int32{})
	assert.Equal(t, backend.CodeTooManyTables, code)

	res, code := eng.CalcAllTables(many[:2], -1, [bindings.Strains]int32{})
	assert.Equal(t, backend.CodeNoFault, code)
	assert.Len(t, res, 2)
}
