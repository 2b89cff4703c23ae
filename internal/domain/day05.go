package domain

import (
	"context"

	"go.uber.org/zap"

	"github.com/mouse-blink/almanac/internal/domain/mapping"
	m "github.com/mouse-blink/almanac/internal/model"
)

func init() {
	Register(seedAlmanac{})
}

// seedAlmanac is day 5: seeds pushed through the almanac's mapper chain.
type seedAlmanac struct{}

func (seedAlmanac) Day() int { return 5 }

func (seedAlmanac) Title() string { return "If You Give A Seed A Fertilizer" }

func (seedAlmanac) Part1(_ context.Context, input string, opts SolveOptions) (int64, error) {
	almanac, err := ParseAlmanac(input)
	if err != nil {
		return 0, err
	}

	opts.logger().Debug("almanac parsed",
		zap.Int("seeds", len(almanac.Seeds)),
		zap.Int("mappers", len(almanac.Mappers)))

	return almanac.LowestLocation()
}

func (seedAlmanac) Part2(ctx context.Context, input string, opts SolveOptions) (int64, error) {
	almanac, err := ParseAlmanac(input)
	if err != nil {
		return 0, err
	}

	return almanac.LowestLocationRanged(ctx,
		mapping.WithWorkers(opts.Workers),
		mapping.WithLogger(opts.logger()))
}

func (seedAlmanac) Inspect(ctx context.Context, input string, opts SolveOptions) (m.Inspection, error) {
	almanac, err := ParseAlmanac(input)
	if err != nil {
		return m.Inspection{}, err
	}

	ranges, err := almanac.SeedRanges()
	if err != nil {
		return m.Inspection{}, err
	}

	_, traces, err := almanac.Pipeline(
		mapping.WithWorkers(opts.Workers),
		mapping.WithLogger(opts.logger()),
	).Trace(ctx, ranges)
	if err != nil {
		return m.Inspection{}, err
	}

	return m.Inspection{
		Day:    5,
		Seeds:  len(almanac.Seeds),
		Tables: almanac.Tables(),
		Stages: traces,
	}, nil
}
