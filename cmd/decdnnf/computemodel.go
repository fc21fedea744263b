package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-dnnf/decdnnf/enum"
	"github.com/go-dnnf/decdnnf/graph"
)

// noModelSentinel is printed when no model satisfies the assumptions,
// instead of a model.
const noModelSentinel = "NO MODEL"

func newComputeModelCmd(f *globalFlags) *cobra.Command {
	var assume []string
	cmd := &cobra.Command{
		Use:   "compute-model",
		Short: "Print one model if any, otherwise a sentinel.",
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

			var found enum.Model
			err = enum.EnumerateFull(g, ix, func(m enum.Model) error {
				if !satisfiesAssumptions([]graph.Literal(m), lits) {
					return nil
				}
				found = append(enum.Model{}, m...)

				return enum.ErrStop
			})
			if err != nil && !errors.Is(err, enum.ErrStop) {
				return err
			}

			out := cmd.OutOrStdout()
			if found == nil {
				fmt.Fprintln(out, noModelSentinel)

				return nil
			}
			fmt.Fprintln(out, formatModel(found))

			return nil
		},
	}
	addCommonFlags(cmd, f)
	cmd.Flags().StringArrayVarP(&assume, "assume", "a", nil, "assumption literals, repeatable or comma-separated")

	return cmd
}
