// Package domain holds the puzzle logic and the workflow the CLI drives.
package domain

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/mouse-blink/almanac/internal/adapter"
	"github.com/mouse-blink/almanac/internal/controller"
	m "github.com/mouse-blink/almanac/internal/model"
)

// RunArgs selects what to solve.
type RunArgs struct {
	Day     int
	Part    int // 0 solves both parts
	Input   m.Path
	Threads int
}

// InspectArgs selects what to inspect.
type InspectArgs struct {
	Day     int
	Input   m.Path
	Threads int
}

// Workflow defines the operations exposed to the command line.
type Workflow interface {
	Run(ctx context.Context, args RunArgs) error
	Inspect(ctx context.Context, args InspectArgs) error
}

type workflow struct {
	input  adapter.InputAdapter
	ui     controller.UI
	logger *zap.Logger
}

// NewWorkflow creates a new Workflow instance with the provided adapters.
func NewWorkflow(input adapter.InputAdapter, ui controller.UI, logger *zap.Logger) Workflow {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &workflow{
		input:  input,
		ui:     ui,
		logger: logger,
	}
}

// Run solves the requested parts of one day and displays the answers.
func (w *workflow) Run(ctx context.Context, args RunArgs) error {
	puzzle, err := Lookup(args.Day)
	if err != nil {
		return err
	}

	parts, err := partsFor(args.Part)
	if err != nil {
		return err
	}

	text, err := w.input.Read(args.Input)
	if err != nil {
		return err
	}

	opts := SolveOptions{Workers: args.Threads, Logger: w.logger}
	answers := make([]m.Answer, 0, len(parts))

	for _, part := range parts {
		value, err := Solve(ctx, puzzle, part, string(text), opts)
		if err != nil {
			return fmt.Errorf("day %d part %d: %w", args.Day, part, err)
		}

		w.logger.Info("part solved",
			zap.Int("day", args.Day),
			zap.Int("part", part),
			zap.Int64("answer", value))

		answers = append(answers, m.Answer{Day: args.Day, Part: part, Value: value})
	}

	if err := w.ui.Start(controller.WithRunMode()); err != nil {
		return err
	}
	defer w.ui.Close()

	return w.ui.DisplayAnswers(answers)
}

// Inspect shows the parsed structure of one day's input.
func (w *workflow) Inspect(ctx context.Context, args InspectArgs) error {
	puzzle, err := Lookup(args.Day)
	if err != nil {
		return err
	}

	inspector, ok := puzzle.(Inspector)
	if !ok {
		return fmt.Errorf("%w: day %d", ErrNotInspectable, args.Day)
	}

	text, err := w.input.Read(args.Input)
	if err != nil {
		return err
	}

	inspection, err := inspector.Inspect(ctx, string(text), SolveOptions{Workers: args.Threads, Logger: w.logger})
	if err != nil {
		return fmt.Errorf("day %d: %w", args.Day, err)
	}

	if err := w.ui.Start(controller.WithInspectMode()); err != nil {
		return err
	}
	defer w.ui.Close()

	return w.ui.DisplayInspection(inspection)
}

func partsFor(part int) ([]int, error) {
	switch part {
	case 0:
		return []int{1, 2}, nil
	case 1, 2:
		return []int{part}, nil
	default:
		return nil, fmt.Errorf("%w: got %d", ErrUnknownPart, part)
	}
}
