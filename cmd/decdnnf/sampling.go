package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/go-dnnf/decdnnf/sample"
)

func newSamplingCmd(f *globalFlags) *cobra.Command {
	var assume []string
	var lexicographic bool
	var n int
	var seed int64
	cmd := &cobra.Command{
		Use:   "sampling",
		Short: "Print N uniform samples.",
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

			if !cmd.Flags().Changed("seed") {
				seed = time.Now().UnixNano()
			}
			opts := []sample.Option{
				sample.WithAssumptions(lits...),
				sample.WithRand(rand.New(rand.NewSource(seed))),
			}
			if lexicographic {
				opts = append(opts, sample.WithLexicographic())
			}

			models, err := sample.SampleN(g, ix, n, opts...)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, m := range models {
				fmt.Fprintln(out, formatModel(m))
			}

			return nil
		},
	}
	addCommonFlags(cmd, f)
	cmd.Flags().StringArrayVarP(&assume, "assume", "a", nil, "assumption literals, repeatable or comma-separated")
	cmd.Flags().IntVarP(&n, "count", "l", 1, "number of samples to draw")
	cmd.Flags().BoolVar(&lexicographic, "lexicographic-order", false, "decode draws through lexicographic rather than structural order")
	cmd.Flags().Int64Var(&seed, "seed", 0, "deterministic RNG seed (default: time-based)")

	return cmd
}
