package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pipeloop/internal/config"
	"github.com/katalvlaran/pipeloop/loop"
)

// report is the printable form of loop.Report.
type report struct {
	Start      string `yaml:"start"`
	StartShape string `yaml:"start_shape"`
	LoopLength int    `yaml:"loop_length"`
	Farthest   int    `yaml:"farthest"`
	Enclosed   int    `yaml:"enclosed"`
}

func newAnalyzeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "analyze [file]",
		Short: "Report the farthest loop distance and the enclosed tile count",
		Long: `Reads a grid from file (or stdin when omitted or "-") and prints:

  farthest  steps from S to the farthest pipe along the loop
  enclosed  tiles strictly inside the loop`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.loadGrid(cmd, args)
			if err != nil {
				return err
			}
			rep, err := loop.Analyze(g, loop.WithContext(cmd.Context()), loop.WithLogger(a.logger))
			if err != nil {
				return err
			}
			return a.print(cmd, report{
				Start:      rep.Start.String(),
				StartShape: rep.StartShape.String(),
				LoopLength: rep.LoopLength,
				Farthest:   rep.Farthest,
				Enclosed:   rep.Enclosed,
			})
		},
	}
}

func (a *app) print(cmd *cobra.Command, r report) error {
	out := cmd.OutOrStdout()
	if a.cfg.Format == config.FormatYAML {
		enc := yaml.NewEncoder(out)
		if err := enc.Encode(r); err != nil {
			_ = enc.Close()
			return err
		}
		return enc.Close()
	}
	_, err := fmt.Fprintf(out, "farthest: %d\nenclosed: %d\n", r.Farthest, r.Enclosed)
	return err
}
