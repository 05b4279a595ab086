package main

import (
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/ddsbridge/dds-go/pkg/bridge"
	"github.com/ddsbridge/dds-go/pkg/dds"
)

var (
	solveTrump  string
	solveLeader string
	solvePlayed []string
	solveAll    bool
)

var solveCmd = &cobra.Command{
	Use:   "solve <PBN deal>",
	Short: "List the best cards for the seat to play",
	Long: `List the cards the seat to play can choose and the tricks each takes.

By default only optimal cards are listed; --all scores every legal card.
Cards already played to the current trick go in --played, in play order.`,
	Args: cobra.ExactArgs(1),
	RunE: runSolve,
}

func init() {
	solveCmd.Flags().StringVar(&solveTrump, "trump", "NT", "trump strain: S, H, D, C or NT")
	solveCmd.Flags().StringVar(&solveLeader, "leader", "W", "seat that led to the current trick")
	solveCmd.Flags().StringSliceVar(&solvePlayed, "played", nil, "cards already played to the trick, e.g. C7,C2")
	solveCmd.Flags().BoolVar(&solveAll, "all", false, "score every legal card")
}

func runSolve(cmd *cobra.Command, args []string) error {
	state, err := parseState(args[0], solveTrump, solveLeader, solvePlayed)
	if err != nil {
		return err
	}
	s, _, done, err := openSolver()
	if err != nil {
		return err
	}
	defer done()

	mode := dds.ModeBestCards
	if solveAll {
		mode = dds.ModeAllCards
	}
	cards, err := s.Solve(cmd.Context(), state, mode)
	if err != nil {
		return err
	}
	return pterm.DefaultTable.WithHasHeader().WithData(cardData(cards)).Render()
}

func parseState(pbn, trump, leader string, played []string) (dds.GameState, error) {
	deal, err := bridge.ParseDeal(pbn)
	if err != nil {
		return dds.GameState{}, err
	}
	t, err := bridge.ParseSuit(trump)
	if err != nil {
		return dds.GameState{}, err
	}
	l, err := bridge.ParseSeat(leader)
	if err != nil {
		return dds.GameState{}, err
	}
	state := dds.GameState{Remaining: deal, Trump: t, Leader: l}
	for _, p := range played {
		c, err := bridge.ParseCard(p)
		if err != nil {
			return dds.GameState{}, err
		}
		state.Played = append(state.Played, c)
	}
	return state, nil
}

func cardData(cards []dds.CardPotential) pterm.TableData {
	data := pterm.TableData{{"Card", "Tricks", "Primary"}}
	for _, c := range cards {
		primary := ""
		if c.Primary {
			primary = pterm.LightGreen("yes")
		}
		data = append(data, []string{c.Card.String(), strconv.Itoa(c.Tricks), primary})
	}
	return data
}
