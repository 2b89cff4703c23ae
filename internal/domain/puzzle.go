package domain

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"

	m "github.com/mouse-blink/almanac/internal/model"
)

// SolveOptions carries run-time knobs shared by all puzzles.
type SolveOptions struct {
	Workers int
	Logger  *zap.Logger
}

func (o SolveOptions) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}

	return o.Logger
}

// Puzzle solves both parts of one day.
type Puzzle interface {
	Day() int
	Title() string
	Part1(ctx context.Context, input string, opts SolveOptions) (int64, error)
	Part2(ctx context.Context, input string, opts SolveOptions) (int64, error)
}

// Inspector is implemented by puzzles that can describe their parsed input.
type Inspector interface {
	Inspect(ctx context.Context, input string, opts SolveOptions) (m.Inspection, error)
}

var (
	registryMu sync.RWMutex
	registry   = make(map[int]Puzzle)
)

// Register makes a puzzle available by its day. It panics if the day is
// already taken, since that can only be a programming error.
func Register(p Puzzle) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if _, dup := registry[p.Day()]; dup {
		panic(fmt.Sprintf("domain: Register called twice for day %d", p.Day()))
	}

	registry[p.Day()] = p
}

// Lookup returns the puzzle registered for day.
func Lookup(day int) (Puzzle, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	p, ok := registry[day]
	if !ok {
		return nil, fmt.Errorf("%w %d", ErrUnknownDay, day)
	}

	return p, nil
}

// Days lists the registered days in ascending order.
func Days() []int {
	registryMu.RLock()
	defer registryMu.RUnlock()

	days := make([]int, 0, len(registry))
	for day := range registry {
		days = append(days, day)
	}

	sort.Ints(days)

	return days
}

// Solve runs one part of p. Part must be 1 or 2.
func Solve(ctx context.Context, p Puzzle, part int, input string, opts SolveOptions) (int64, error) {
	switch part {
	case 1:
		return p.Part1(ctx, input, opts)
	case 2:
		return p.Part2(ctx, input, opts)
	default:
		return 0, fmt.Errorf("%w: got %d", ErrUnknownPart, part)
	}
}
