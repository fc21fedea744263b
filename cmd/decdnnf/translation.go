package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/go-dnnf/decdnnf/ioformat"
)

func newTranslationCmd(f *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "translation",
		Short: "Emit c2d on standard output.",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := f.logger()
			g, _, err := loadGraph(f, log)
			if err != nil {
				return err
			}

			return ioformat.WriteC2D(os.Stdout, g)
		},
	}
	addCommonFlags(cmd, f)

	return cmd
}
