package main

import (
	"github.com/spf13/cobra"

	"github.com/go-dnnf/decdnnf/enum"
	"github.com/go-dnnf/decdnnf/graph"
)

// satisfiesAssumptions reports whether model contradicts none of the
// assumption literals. A model (full or partial) is silent about free/unmentioned
// variables, so silence is never a contradiction.
func satisfiesAssumptions(model []graph.Literal, assumptions []graph.Literal) bool {
	want := make(map[int]bool, len(assumptions))
	for _, a := range assumptions {
		want[a.Var()] = a.Positive()
	}
	for _, l := range model {
		if pos, ok := want[l.Var()]; ok && pos != l.Positive() {
			return false
		}
	}

	return true
}

func newModelEnumerationCmd(f *globalFlags) *cobra.Command {
	var assume []string
	var compact, decisionTree bool
	cmd := &cobra.Command{
		Use:   "model-enumeration",
		Short: "Stream models (full decision-tree or disjoint-partial).",
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

			out := cmd.OutOrStdout()
			visit := enum.Visitor(func(m enum.Model) error {
				if !satisfiesAssumptions([]graph.Literal(m), lits) {
					return nil
				}
				_, err := out.Write([]byte(formatModel(m) + "\n"))

				return err
			})

			// --decision-tree wins over --compact when both are given;
			// the default (neither flag) is the full decision-tree walk.
			if compact && !decisionTree {
				return enum.EnumerateDisjointPartial(g, ix, visit)
			}

			return enum.EnumerateFull(g, ix, visit)
		},
	}
	addCommonFlags(cmd, f)
	cmd.Flags().StringArrayVarP(&assume, "assume", "a", nil, "assumption literals, repeatable or comma-separated")
	cmd.Flags().BoolVar(&compact, "compact", false, "disjoint-partial enumeration")
	cmd.Flags().BoolVar(&decisionTree, "decision-tree", false, "full decision-tree enumeration (default)")

	return cmd
}
