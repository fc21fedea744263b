package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-dnnf/decdnnf/count"
)

func newModelCountingCmd(f *globalFlags) *cobra.Command {
	var assume []string
	cmd := &cobra.Command{
		Use:   "model-counting",
		Short: "Print the decimal model count.",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := f.logger()
			g, ix, err := loadGraph(f, log)
			if err != nil {
				return err
			}
			lits, err := parseLiterals(assume)
			if err != nil {
				return err
			}

			n, err := count.New(g, ix).Count(lits)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), n.String())

			return nil
		},
	}
	addCommonFlags(cmd, f)
	cmd.Flags().StringArrayVarP(&assume, "assume", "a", nil, "assumption literals, repeatable or comma-separated")

	return cmd
}
