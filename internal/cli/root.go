// Package cli wires the pipeloop commands.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/pipeloop/internal/config"
	"github.com/katalvlaran/pipeloop/loop"
)

// Version is set at build time via ldflags.
var Version = "dev"

// app carries state shared by subcommands once flags are parsed.
type app struct {
	configPath string
	verbose    bool

	cfg    config.Config
	logger *zap.Logger
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}
	root := &cobra.Command{
		Use:   "pipeloop",
		Short: "Trace and measure the pipe loop in a character grid",
		Long: `pipeloop reads a grid of pipe symbols (| - L J 7 F . S), follows the
closed loop through the start cell S, and reports how far its farthest
pipe is from S and how many tiles the loop encloses.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) { _ = a.logger.Sync() },
	}
	root.Version = Version
	root.SetVersionTemplate("pipeloop version {{.Version}}\n")
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "path to a YAML config file")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newAnalyzeCmd(a), newRenderCmd(a))
	return root
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

// setup loads configuration and builds the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("%w: log_level %q", config.ErrInvalidConfig, cfg.LogLevel)
	}
	if a.verbose {
		level = zapcore.DebugLevel
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.Encoding = "console"
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zc.OutputPaths = []string{"stderr"}
	logger, err := zc.Build()
	if err != nil {
		return fmt.Errorf("cli: build logger: %w", err)
	}
	a.logger = logger.Named(cmd.Name())
	return nil
}

// loadGrid reads the grid from the named file, or from stdin when args is empty.
func (a *app) loadGrid(cmd *cobra.Command, args []string) (*loop.Grid, error) {
	var (
		data []byte
		err  error
		src  = "stdin"
	)
	if len(args) > 0 && args[0] != "-" {
		src = args[0]
		data, err = os.ReadFile(src)
	} else {
		data, err = io.ReadAll(cmd.InOrStdin())
	}
	if err != nil {
		return nil, fmt.Errorf("cli: read %s: %w", src, err)
	}

	alphabet, err := a.cfg.Alphabet()
	if err != nil {
		return nil, err
	}
	g, err := loop.ParseWith(string(data), alphabet)
	if err != nil {
		return nil, fmt.Errorf("cli: parse %s: %w", src, err)
	}
	a.logger.Debug("grid loaded",
		zap.String("source", src),
		zap.Int("rows", g.Height),
		zap.Int("cols", g.Width))
	return g, nil
}
