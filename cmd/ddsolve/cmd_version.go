package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ddsbridge/dds-go/pkg/dds"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print wrapper and engine versions",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "ddsolve %s\n", dds.WrapperVersion())
		fmt.Fprintf(cmd.OutOrStdout(), "dds engine %s\n", dds.UpstreamVersion())
	},
}
