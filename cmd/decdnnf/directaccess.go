package main

import (
	"fmt"
	"math/big"

	"github.com/spf13/cobra"

	"github.com/go-dnnf/decdnnf/access"
)

func newDirectAccessCmd(f *globalFlags) *cobra.Command {
	var assume []string
	var lexicographic bool
	var indexStr string
	cmd := &cobra.Command{
		Use:   "direct-access",
		Short: "Print the k-th model.",
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

			k, ok := new(big.Int).SetString(indexStr, 10)
			if !ok {
				return fmt.Errorf("--index %q is not a valid integer", indexStr)
			}

			opts := []access.Option{access.WithAssumptions(lits...)}
			if lexicographic {
				opts = append(opts, access.WithLexicographic())
			}

			m, err := access.Access(g, ix, k, opts...)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatModel(m))

			return nil
		},
	}
	addCommonFlags(cmd, f)
	cmd.Flags().StringArrayVarP(&assume, "assume", "a", nil, "assumption literals, repeatable or comma-separated")
	cmd.Flags().StringVar(&indexStr, "index", "", "the model index k")
	cmd.Flags().BoolVar(&lexicographic, "lexicographic-order", false, "use lexicographic rather than structural order")
	_ = cmd.MarkFlagRequired("index")

	return cmd
}
