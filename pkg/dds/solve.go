package dds

import (
	"context"
	"fmt"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/ddsbridge/dds-go/internal/bindings"
	"github.com/ddsbridge/dds-go/pkg/bridge"
	"github.com/ddsbridge/dds-go/pkg/dds/internal/backend"
	"github.com/ddsbridge/dds-go/pkg/dds/slots"
)

// GameState is a position to solve: the cards still held, the trump strain,
// the seat that led to the current trick and the cards already played to
// it, in play order.
type GameState struct {
	Remaining bridge.Deal
	Trump     bridge.Suit
	Leader    bridge.Seat
	Played    []bridge.Card
}

// Mode selects which cards a solve reports.
type Mode int

const (
	// ModeBestCards lists every card that achieves the optimum.
	ModeBestCards Mode = iota
	// ModeBestCard reports a single optimal card.
	ModeBestCard
	// ModeAllCards scores every legal card.
	ModeAllCards
)

func (m Mode) String() string {
	switch m {
	case ModeBestCards:
		return "best_cards"
	case ModeBestCard:
		return "best_card"
	case ModeAllCards:
		return "all_cards"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// SolveBoard parameters per mode. The engine's own mode argument is always
// 1: search even when only one card is legal.
var modeParams = map[Mode]struct{ target, solutions int }{
	ModeBestCards: {-1, 2},
	ModeBestCard:  {-1, 1},
	ModeAllCards:  {0, 3},
}

const searchMode = 1

// BestCards returns every card that takes the maximum number of tricks,
// with their equivalents.
func (s *Solver) BestCards(ctx context.Context, state GameState) ([]CardPotential, error) {
	return s.Solve(ctx, state, ModeBestCards)
}

// BestCard returns one card that takes the maximum number of tricks.
func (s *Solver) BestCard(ctx context.Context, state GameState) (CardPotential, error) {
	cards, err := s.Solve(ctx, state, ModeBestCard)
	if err != nil {
		return CardPotential{}, err
	}
	if len(cards) == 0 {
		return CardPotential{}, &Error{Op: "BestCard", Err: fmt.Errorf("%w: no card returned", ErrEngine)}
	}
	return cards[0], nil
}

// AllCards returns every legal card with the tricks it takes.
func (s *Solver) AllCards(ctx context.Context, state GameState) ([]CardPotential, error) {
	return s.Solve(ctx, state, ModeAllCards)
}

// Solve runs one SolveBoard call in the given mode and expands the answer.
func (s *Solver) Solve(ctx context.Context, state GameState, mode Mode) ([]CardPotential, error) {
	const op = "Solve"
	params, ok := modeParams[mode]
	if !ok {
		return nil, invalidf(op, "mode %v", mode)
	}
	if err := s.begin(ctx, op); err != nil {
		return nil, err
	}
	deal, err := backend.ToDeal(state.Remaining, state.Trump, state.Leader, state.Played)
	if err != nil {
		return nil, invalidf(op, "%v", err)
	}

	// Claim the slot before the gate so a blocked claim never holds up
	// table calls.
	slot, release, err := s.slotFor(ctx)
	if err != nil {
		return nil, wrapSlotError(op, err)
	}
	defer release()

	s.gate.RLock()
	defer s.gate.RUnlock()
	if err := s.checkOpen(op); err != nil {
		return nil, err
	}

	ft, code := s.engine.SolveBoard(&deal, params.target, params.solutions, searchMode, slot)
	if code != bindings.StatusOK {
		return nil, s.engineError(ctx, op, code)
	}
	winners, err := winnersFromEngine(ft)
	if err != nil {
		return nil, &Error{Op: op, Err: fmt.Errorf("%w: %v", ErrEngine, err)}
	}
	return Expand(winners), nil
}

// SolveMany solves every state and returns the answers in input order.
//
// It runs up to one worker per slot, each bound to its own slot for the
// duration of the call. The first error cancels the remaining work and is
// returned.
func (s *Solver) SolveMany(ctx context.Context, states []GameState, mode Mode) ([][]CardPotential, error) {
	if err := s.begin(ctx, "SolveMany"); err != nil {
		return nil, err
	}
	out := make([][]CardPotential, len(states))
	if len(states) == 0 {
		return out, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	var next atomic.Int64
	workers := min(s.slots.Size(), len(states))
	for range workers {
		wctx := WithWorker(gctx, slots.NewWorkerID())
		g.Go(func() error {
			defer s.ReleaseWorker(wctx)
			for {
				i := int(next.Add(1) - 1)
				if i >= len(states) {
					return nil
				}
				cards, err := s.Solve(wctx, states[i], mode)
				if err != nil {
					return fmt.Errorf("state %d: %w", i, err)
				}
				out[i] = cards
			}
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
