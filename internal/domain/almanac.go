package domain

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/mouse-blink/almanac/internal/domain/mapping"
	m "github.com/mouse-blink/almanac/internal/model"
)

const (
	seedsPrefix  = "seeds:"
	headerSuffix = " map:"
)

// Almanac is the parsed day 5 input: the seed list and the mapper
// pipeline in declared order.
type Almanac struct {
	Seeds   []int64
	Mappers []*mapping.Mapper
}

// ParseAlmanac parses
//
//	seeds: <u1> <u2> ...
//
//	<name> map:
//	<dest> <source> <length>
//	...
//
// Blocks are separated by blank lines. Any deviation is reported as
// ErrMalformedInput with the 1-based line number; overlapping source
// ranges inside one block are reported as mapping.ErrOverlappingRange.
func ParseAlmanac(text string) (*Almanac, error) {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " \t")
	}

	i := skipBlank(lines, 0)
	if i == len(lines) {
		return nil, fmt.Errorf("%w: missing %q line", ErrMalformedInput, seedsPrefix)
	}

	seeds, err := parseSeeds(lines[i], i+1)
	if err != nil {
		return nil, err
	}

	i++
	if i < len(lines) && lines[i] != "" {
		return nil, fmt.Errorf("%w: line %d: expected blank line after seeds", ErrMalformedInput, i+1)
	}

	almanac := &Almanac{Seeds: seeds}

	for i = skipBlank(lines, i); i < len(lines); i = skipBlank(lines, i) {
		var mp *mapping.Mapper

		mp, i, err = parseBlock(lines, i)
		if err != nil {
			return nil, err
		}

		almanac.Mappers = append(almanac.Mappers, mp)
	}

	return almanac, nil
}

func skipBlank(lines []string, i int) int {
	for i < len(lines) && lines[i] == "" {
		i++
	}

	return i
}

func parseSeeds(line string, lineNo int) ([]int64, error) {
	rest, ok := strings.CutPrefix(line, seedsPrefix)
	if !ok {
		return nil, fmt.Errorf("%w: line %d: expected %q", ErrMalformedInput, lineNo, seedsPrefix)
	}

	fields := strings.Fields(rest)
	seeds := make([]int64, 0, len(fields))

	for _, field := range fields {
		v, err := parseNumber(field, lineNo)
		if err != nil {
			return nil, err
		}

		seeds = append(seeds, v)
	}

	return seeds, nil
}

// parseBlock reads one header and its triples, returning the index of the
// first line after the block.
func parseBlock(lines []string, start int) (*mapping.Mapper, int, error) {
	name, ok := strings.CutSuffix(lines[start], headerSuffix)
	name = strings.TrimSpace(name)

	if !ok || name == "" {
		return nil, start, fmt.Errorf("%w: line %d: expected \"<name>%s\" header, got %q", ErrMalformedInput, start+1, headerSuffix, lines[start])
	}

	var triples []m.Triple

	i := start + 1
	for ; i < len(lines) && lines[i] != ""; i++ {
		t, err := parseTriple(lines[i], i+1)
		if err != nil {
			return nil, i, err
		}

		triples = append(triples, t)
	}

	mp, err := mapping.NewMapper(name, triples)

	switch {
	case errors.Is(err, mapping.ErrInvalidTriple):
		return nil, i, fmt.Errorf("%w: line %d: %w", ErrMalformedInput, start+1, err)
	case err != nil:
		return nil, i, fmt.Errorf("line %d: %w", start+1, err)
	}

	return mp, i, nil
}

func parseTriple(line string, lineNo int) (m.Triple, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return m.Triple{}, fmt.Errorf("%w: line %d: expected 3 fields, got %d", ErrMalformedInput, lineNo, len(fields))
	}

	var values [3]int64

	for i, field := range fields {
		v, err := parseNumber(field, lineNo)
		if err != nil {
			return m.Triple{}, err
		}

		values[i] = v
	}

	return m.Triple{DestStart: values[0], SourceStart: values[1], Length: values[2]}, nil
}

func parseNumber(field string, lineNo int) (int64, error) {
	v, err := strconv.ParseInt(field, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: line %d: %w", ErrMalformedInput, lineNo, err)
	}

	if v < 0 {
		return 0, fmt.Errorf("%w: line %d: negative value %d", ErrMalformedInput, lineNo, v)
	}

	return v, nil
}

// Pipeline returns the mappers as a pipeline in declared order.
func (a *Almanac) Pipeline(opts ...mapping.Option) *mapping.Pipeline {
	return mapping.NewPipeline(a.Mappers, opts...)
}

// SeedRanges reads the seed list as consecutive (start, length) pairs.
// Pairs of length zero hold no seeds and are dropped.
func (a *Almanac) SeedRanges() ([]m.Range, error) {
	if len(a.Seeds) == 0 {
		return nil, ErrEmptyInput
	}

	if len(a.Seeds)%2 != 0 {
		return nil, fmt.Errorf("%w: %d seed values do not form (start, length) pairs", ErrMalformedInput, len(a.Seeds))
	}

	ranges := make([]m.Range, 0, len(a.Seeds)/2)
	for i := 0; i < len(a.Seeds); i += 2 {
		if a.Seeds[i] > math.MaxInt64-a.Seeds[i+1] {
			return nil, fmt.Errorf("%w: seed range %d+%d overflows", ErrMalformedInput, a.Seeds[i], a.Seeds[i+1])
		}

		if a.Seeds[i+1] == 0 {
			continue
		}

		ranges = append(ranges, m.RangeOf(a.Seeds[i], a.Seeds[i+1]))
	}

	return ranges, nil
}

// LowestLocation maps every seed value through the pipeline and returns the
// smallest result.
func (a *Almanac) LowestLocation() (int64, error) {
	if len(a.Seeds) == 0 {
		return 0, ErrEmptyInput
	}

	locations := a.Pipeline().MapValues(a.Seeds)

	lowest := locations[0]
	for _, loc := range locations[1:] {
		lowest = min(lowest, loc)
	}

	return lowest, nil
}

// LowestLocationRanged maps the seed ranges through the pipeline and
// returns the smallest start among the resulting ranges.
func (a *Almanac) LowestLocationRanged(ctx context.Context, opts ...mapping.Option) (int64, error) {
	ranges, err := a.SeedRanges()
	if err != nil {
		return 0, err
	}

	out, err := a.Pipeline(opts...).MapRanges(ctx, ranges)
	if err != nil {
		return 0, err
	}

	if len(out) == 0 {
		return 0, ErrEmptyInput
	}

	lowest := out[0].Start
	for _, r := range out[1:] {
		lowest = min(lowest, r.Start)
	}

	return lowest, nil
}

// Tables returns the breakpoint view of every mapper.
func (a *Almanac) Tables() []m.MapperTable {
	tables := make([]m.MapperTable, 0, len(a.Mappers))
	for _, mp := range a.Mappers {
		tables = append(tables, mp.Table())
	}

	return tables
}
