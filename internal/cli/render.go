package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pipeloop/loop"
)

func newRenderCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "render [file]",
		Short: "Draw the loop with box characters and mark enclosed tiles with I",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.loadGrid(cmd, args)
			if err != nil {
				return err
			}
			start, err := loop.FindStart(g)
			if err != nil {
				return err
			}
			lp, err := loop.Trace(g, start, loop.WithContext(cmd.Context()), loop.WithLogger(a.logger))
			if err != nil {
				return err
			}
			inside, err := loop.EnclosedCells(g, lp)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), loop.Render(g, lp, inside))
			return err
		},
	}
}
