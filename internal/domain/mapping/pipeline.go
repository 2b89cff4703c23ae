package mapping

import (
	"context"
	"math"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	m "github.com/mouse-blink/almanac/internal/model"
)

// Pipeline applies an ordered list of mappers, first stage first.
type Pipeline struct {
	stages  []*Mapper
	workers int
	logger  *zap.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithWorkers spreads the ranges of each stage over n goroutines. Values
// below 2 keep evaluation sequential. Output is the same either way.
func WithWorkers(n int) Option {
	return func(p *Pipeline) {
		p.workers = n
	}
}

// WithLogger sets the logger used for per-stage debug output.
func WithLogger(logger *zap.Logger) Option {
	return func(p *Pipeline) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// NewPipeline creates a Pipeline over stages in the given order.
func NewPipeline(stages []*Mapper, opts ...Option) *Pipeline {
	p := &Pipeline{
		stages:  stages,
		workers: 1,
		logger:  zap.NewNop(),
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Stages returns the mappers in evaluation order.
func (p *Pipeline) Stages() []*Mapper {
	return p.stages
}

// MapValue pushes v through every stage.
func (p *Pipeline) MapValue(v int64) int64 {
	for _, stage := range p.stages {
		v = stage.Map(v)
	}

	return v
}

// MapValues pushes each value through every stage and returns the results
// in input order.
func (p *Pipeline) MapValues(values []int64) []int64 {
	out := make([]int64, len(values))
	for i, v := range values {
		out[i] = p.MapValue(v)
	}

	return out
}

// MapRanges pushes every range through every stage. Each stage replaces the
// working set with the concatenation of the per-range outputs, in input
// order.
func (p *Pipeline) MapRanges(ctx context.Context, ranges []m.Range) ([]m.Range, error) {
	out, _, err := p.run(ctx, ranges, false)

	return out, err
}

// Trace behaves like MapRanges and also reports what every stage did.
func (p *Pipeline) Trace(ctx context.Context, ranges []m.Range) ([]m.Range, []m.StageTrace, error) {
	return p.run(ctx, ranges, true)
}

// Flatten folds all stages into a single equivalent Mapper.
func (p *Pipeline) Flatten() (*Mapper, error) {
	flat := &Mapper{name: "identity"}
	if len(p.stages) > 0 {
		flat = p.stages[0]
	}

	for _, stage := range p.stages[min(1, len(p.stages)):] {
		var err error

		flat, err = Compose(flat, stage)
		if err != nil {
			return nil, err
		}
	}

	return flat, nil
}

func (p *Pipeline) run(ctx context.Context, ranges []m.Range, trace bool) ([]m.Range, []m.StageTrace, error) {
	var traces []m.StageTrace
	if trace {
		traces = make([]m.StageTrace, 0, len(p.stages))
	}

	working := ranges

	for _, stage := range p.stages {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}

		next, err := p.mapStage(ctx, stage, working)
		if err != nil {
			return nil, nil, err
		}

		p.logger.Debug("stage mapped",
			zap.String("stage", stage.Name()),
			zap.Int("ranges_in", len(working)),
			zap.Int("ranges_out", len(next)))

		if trace {
			traces = append(traces, m.StageTrace{
				Name:        stage.Name(),
				Breakpoints: stage.Len(),
				RangesIn:    len(working),
				RangesOut:   len(next),
				Lowest:      lowestStart(next),
			})
		}

		working = next
	}

	return working, traces, nil
}

func (p *Pipeline) mapStage(ctx context.Context, stage *Mapper, ranges []m.Range) ([]m.Range, error) {
	if p.workers < 2 || len(ranges) < 2 {
		var out []m.Range
		for _, r := range ranges {
			out = append(out, stage.MapRange(r)...)
		}

		return out, nil
	}

	parts := make([][]m.Range, len(ranges))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers)

	for i, r := range ranges {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			parts[i] = stage.MapRange(r)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var out []m.Range
	for _, part := range parts {
		out = append(out, part...)
	}

	return out, nil
}

// lowestStart returns the smallest Start in ranges, or 0 when there are none.
func lowestStart(ranges []m.Range) int64 {
	if len(ranges) == 0 {
		return 0
	}

	lowest := int64(math.MaxInt64)
	for _, r := range ranges {
		lowest = min(lowest, r.Start)
	}

	return lowest
}
