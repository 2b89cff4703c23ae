// Package cmd provides the root command and CLI setup for almanac.
package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/mouse-blink/almanac/internal/adapter"
	"github.com/mouse-blink/almanac/internal/controller"
	"github.com/mouse-blink/almanac/internal/domain"
	m "github.com/mouse-blink/almanac/internal/model"
)

var inputAdapter adapter.InputAdapter
var workflow domain.Workflow
var ui controller.UI
var logger *zap.Logger
var logLevel = zap.NewAtomicLevelAt(zap.WarnLevel)

func init() {
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	inputAdapter = adapter.NewLocalInputAdapter(os.Stdin)
	logger = newLogger(logLevel)
	workflow = domain.NewWorkflow(
		inputAdapter,
		ui,
		logger,
	)
}

var verboseFlag bool
var dayFlag int
var partFlag int
var parallelFlag int

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "almanac [input]",
		Short: "Holiday puzzle solver",
		Long: `Almanac solves holiday puzzles. Each day parses one input text and
computes two answers.

The input is read from the given file, or from stdin when the argument is
omitted or "-".

Day 5 pushes seeds through a chain of piecewise offset maps:
  - part 1 maps every seed value and reports the lowest location
  - part 2 reads seeds as (start, length) pairs and maps whole ranges`,
		Args: cobra.MaximumNArgs(1),
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if verboseFlag {
				logLevel.SetLevel(zap.DebugLevel)
			}
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			_ = logger.Sync()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Run(cmd.Context(), domain.RunArgs{
				Day:     dayFlag,
				Part:    partFlag,
				Input:   parseInput(args),
				Threads: parallelFlag,
			})
		},
	}
	cmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "log debug output to stderr")
	cmd.Flags().IntVarP(&dayFlag, "day", "d", 5, "puzzle day to solve")
	cmd.Flags().IntVarP(&partFlag, "part", "P", 0, "puzzle part to solve (0 solves both)")
	cmd.Flags().IntVarP(&parallelFlag, "parallel", "p", 1, "number of parallel workers per pipeline stage")

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := rootCmd.ExecuteContext(ctx)

	stop()

	if err != nil {
		os.Exit(1)
	}
}

// newLogger builds the stderr logger shared by every command. The level is
// atomic so --verbose can raise it after flags are parsed.
func newLogger(level zap.AtomicLevel) *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.Level = level
	cfg.Encoding = "console"
	cfg.DisableStacktrace = true
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	l, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}

	return l.Named("almanac")
}

func parseInput(args []string) m.Path {
	if len(args) == 0 || args[0] == "" {
		return m.StdinPath
	}

	return m.Path(args[0])
}
