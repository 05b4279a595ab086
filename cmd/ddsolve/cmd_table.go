package main

import (
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/ddsbridge/dds-go/pkg/bridge"
	"github.com/ddsbridge/dds-go/pkg/dds"
)

var tableCmd = &cobra.Command{
	Use:   "table <PBN deal>",
	Short: "Print the double-dummy trick table for a deal",
	Long: `Print how many tricks each seat takes as declarer in every strain.

The deal is given in PBN form, quoted as one argument:

  ddsolve table "N:954.QJT3.AJT.QJ6 KJT2.87.5.AK9875 AQ86.K652.86432. 73.A94.KQ97.T432"`,
	Args: cobra.ExactArgs(1),
	RunE: runTable,
}

func runTable(cmd *cobra.Command, args []string) error {
	deal, err := bridge.ParseDeal(args[0])
	if err != nil {
		return err
	}
	s, _, done, err := openSolver()
	if err != nil {
		return err
	}
	defer done()

	table, err := s.PossibleTricks(cmd.Context(), deal)
	if err != nil {
		return err
	}
	pterm.DefaultSection.Println(deal.String())
	return pterm.DefaultTable.WithHasHeader().WithData(tableData(table)).Render()
}

func tableData(t dds.TableResults) pterm.TableData {
	header := []string{""}
	for _, strain := range bridge.Strains() {
		if strain == bridge.NoTrump {
			header = append(header, "NT")
			continue
		}
		header = append(header, string(strain.Letter()))
	}
	data := pterm.TableData{header}
	for _, seat := range bridge.Seats() {
		row := []string{seat.String()}
		for _, strain := range bridge.Strains() {
			row = append(row, strconv.Itoa(t.Tricks(seat, strain)))
		}
		data = append(data, row)
	}
	return data
}
