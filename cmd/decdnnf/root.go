package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// globalFlags holds the common flags every subcommand accepts, registered on
// each subcommand by addCommonFlags (and --verbose on the root's
// PersistentFlags) rather than as package globals, so tests can construct
// independent command trees.
type globalFlags struct {
	input      string
	nVars      int
	doNotCheck bool
	verboseCnt int
}

func (f *globalFlags) logger() *slog.Logger {
	level := slog.LevelWarn
	switch {
	case f.verboseCnt >= 2:
		level = slog.LevelDebug
	case f.verboseCnt == 1:
		level = slog.LevelInfo
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func addCommonFlags(cmd *cobra.Command, f *globalFlags) {
	cmd.Flags().StringVarP(&f.input, "input", "i", "", "input file (d4 format), \"-\" for stdin")
	cmd.Flags().IntVar(&f.nVars, "n-vars", 0, "override the declared variable count")
	cmd.Flags().BoolVar(&f.doNotCheck, "do-not-check", false, "skip the structural checker")
	_ = cmd.MarkFlagRequired("input")
}

func newRootCmd() *cobra.Command {
	f := &globalFlags{}

	root := &cobra.Command{
		Use:           "decdnnf",
		Short:         "Manipulate Decision-DNNF graphs: translate, count, enumerate, access, sample.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().CountVarP(&f.verboseCnt, "verbose", "v", "increase logging verbosity (repeatable)")

	root.AddCommand(
		newTranslationCmd(f),
		newModelCountingCmd(f),
		newModelEnumerationCmd(f),
		newComputeModelCmd(f),
		newDirectAccessCmd(f),
		newSamplingCmd(f),
	)

	return root
}
