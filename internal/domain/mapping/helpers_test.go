package mapping

import (
	"testing"

	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/almanac/internal/model"
)

// sampleBlocks is the seven-stage example almanac, seed to location.
var sampleBlocks = []struct {
	name    string
	triples []m.Triple
}{
	{"seed-to-soil", []m.Triple{{DestStart: 50, SourceStart: 98, Length: 2}, {DestStart: 52, SourceStart: 50, Length: 48}}},
	{"soil-to-fertilizer", []m.Triple{{DestStart: 0, SourceStart: 15, Length: 37}, {DestStart: 37, SourceStart: 52, Length: 2}, {DestStart: 39, SourceStart: 0, Length: 15}}},
	{"fertilizer-to-water", []m.Triple{{DestStart: 49, SourceStart: 53, Length: 8}, {DestStart: 0, SourceStart: 11, Length: 42}, {DestStart: 42, SourceStart: 0, Length: 7}, {DestStart: 57, SourceStart: 7, Length: 4}}},
	{"water-to-light", []m.Triple{{DestStart: 88, SourceStart: 18, Length: 7}, {DestStart: 18, SourceStart: 25, Length: 70}}},
	{"light-to-temperature", []m.Triple{{DestStart: 45, SourceStart: 77, Length: 23}, {DestStart: 81, SourceStart: 45, Length: 19}, {DestStart: 68, SourceStart: 64, Length: 13}}},
	{"temperature-to-humidity", []m.Triple{{DestStart: 0, SourceStart: 69, Length: 1}, {DestStart: 1, SourceStart: 0, Length: 69}}},
	{"humidity-to-location", []m.Triple{{DestStart: 60, SourceStart: 56, Length: 37}, {DestStart: 56, SourceStart: 93, Length: 4}}},
}

var (
	sampleSeeds  = []int64{79, 14, 55, 13}
	sampleRanges = []m.Range{m.RangeOf(79, 14), m.RangeOf(55, 13)}
)

func sampleStages(tb testing.TB) []*Mapper {
	tb.Helper()

	stages := make([]*Mapper, 0, len(sampleBlocks))
	for _, block := range sampleBlocks {
		mp, err := NewMapper(block.name, block.triples)
		require.NoError(tb, err)

		stages = append(stages, mp)
	}

	return stages
}

func lowest(values []int64) int64 {
	out := values[0]
	for _, v := range values[1:] {
		out = min(out, v)
	}

	return out
}
