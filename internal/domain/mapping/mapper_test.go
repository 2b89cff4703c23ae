package mapping

import (
	"errors"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/almanac/internal/model"
)

func TestNewMapper_Breakpoints(t *testing.T) {
	mp, err := NewMapper("seed-to-soil", []m.Triple{
		{DestStart: 50, SourceStart: 98, Length: 2},
		{DestStart: 52, SourceStart: 50, Length: 48},
	})
	require.NoError(t, err)

	want := []m.BreakpointRow{
		{Boundary: 50, Offset: 0, Closes: false},
		{Boundary: 98, Offset: 2, Closes: true},
		{Boundary: 100, Offset: -48, Closes: true},
	}
	if diff := cmp.Diff(want, mp.Breakpoints()); diff != "" {
		t.Fatalf("Breakpoints() mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, "seed-to-soil", mp.Name())
	assert.Equal(t, 3, mp.Len())
}

func TestMapper_Map(t *testing.T) {
	mp, err := NewMapper("seed-to-soil", []m.Triple{
		{DestStart: 50, SourceStart: 98, Length: 2},
		{DestStart: 52, SourceStart: 50, Length: 48},
	})
	require.NoError(t, err)

	cases := map[int64]int64{
		0:   0,
		49:  49,
		50:  52,
		79:  81,
		97:  99,
		98:  50,
		99:  51,
		100: 100,
		-7:  -7,
	}
	for in, want := range cases {
		assert.Equalf(t, want, mp.Map(in), "Map(%d)", in)
	}
}

func TestMapper_ZeroValueIsIdentity(t *testing.T) {
	var mp Mapper

	assert.Equal(t, int64(42), mp.Map(42))
	assert.Equal(t, []m.Range{{Start: 3, End: 9}}, mp.MapRange(m.Range{Start: 3, End: 9}))
}

func TestMapper_MapRange_Split(t *testing.T) {
	mp, err := NewMapper("split", []m.Triple{{DestStart: 50, SourceStart: 98, Length: 2}})
	require.NoError(t, err)

	got := mp.MapRange(m.Range{Start: 90, End: 100})
	want := []m.Range{{Start: 90, End: 98}, {Start: 50, End: 52}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("MapRange() mismatch (-want +got):\n%s", diff)
	}

	segs := mp.Segments(m.Range{Start: 90, End: 100})
	require.Len(t, segs, 2)
	assert.Equal(t, Offset(0), segs[0].Offset)
	assert.Equal(t, Offset(-48), segs[1].Offset)
}

func TestMapper_MapRange_Cases(t *testing.T) {
	mp, err := NewMapper("cases", []m.Triple{
		{DestStart: 110, SourceStart: 10, Length: 10}, // [10,20) +100
		{DestStart: 0, SourceStart: 20, Length: 5},    // [20,25) -20
		{DestStart: 40, SourceStart: 40, Length: 10},  // [40,50) +0
	})
	require.NoError(t, err)

	tests := []struct {
		name string
		in   m.Range
		want []m.Range
	}{
		{"empty", m.Range{Start: 5, End: 5}, nil},
		{"inverted", m.Range{Start: 9, End: 3}, nil},
		{"below everything", m.Range{Start: -10, End: 5}, []m.Range{{Start: -10, End: 5}}},
		{"inside one range", m.Range{Start: 12, End: 15}, []m.Range{{Start: 112, End: 115}}},
		{"exactly one range", m.Range{Start: 10, End: 20}, []m.Range{{Start: 110, End: 120}}},
		{"ends on boundary", m.Range{Start: 5, End: 10}, []m.Range{{Start: 5, End: 10}}},
		{"starts on boundary", m.Range{Start: 20, End: 22}, []m.Range{{Start: 0, End: 2}}},
		{"touching ranges", m.Range{Start: 15, End: 23}, []m.Range{{Start: 115, End: 120}, {Start: 0, End: 3}}},
		{
			"zero offset range merges with gaps",
			m.Range{Start: 25, End: 60},
			[]m.Range{{Start: 25, End: 60}},
		},
		{
			"across everything",
			m.Range{Start: 0, End: 100},
			[]m.Range{{Start: 0, End: 10}, {Start: 110, End: 120}, {Start: 0, End: 5}, {Start: 25, End: 100}},
		},
		{"above everything", m.Range{Start: 60, End: 70}, []m.Range{{Start: 60, End: 70}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, mp.MapRange(tt.in), cmpopts.EquateEmpty()); diff != "" {
				t.Fatalf("MapRange(%s) mismatch (-want +got):\n%s", tt.in, diff)
			}
		})
	}
}

func TestMapper_SegmentsMergeEqualOffsets(t *testing.T) {
	mp, err := NewMapper("same", []m.Triple{
		{DestStart: 3, SourceStart: 0, Length: 5},
		{DestStart: 8, SourceStart: 5, Length: 5},
	})
	require.NoError(t, err)

	segs := mp.Segments(m.Range{Start: 0, End: 10})
	assert.Equal(t, []Segment{{Source: m.Range{Start: 0, End: 10}, Offset: 3}}, segs)
}

func TestNewMapper_TouchingRangesAccepted(t *testing.T) {
	orders := [][]m.Triple{
		{{DestStart: 100, SourceStart: 0, Length: 5}, {DestStart: 200, SourceStart: 5, Length: 5}},
		{{DestStart: 200, SourceStart: 5, Length: 5}, {DestStart: 100, SourceStart: 0, Length: 5}},
	}

	for _, triples := range orders {
		mp, err := NewMapper("touching", triples)
		require.NoError(t, err)
		assert.Equal(t, int64(104), mp.Map(4))
		assert.Equal(t, int64(200), mp.Map(5))
		assert.Equal(t, int64(10), mp.Map(10))
	}
}

func TestNewMapper_OverlapRejected(t *testing.T) {
	tests := []struct {
		name    string
		triples []m.Triple
	}{
		{"partial overlap", []m.Triple{{DestStart: 100, SourceStart: 0, Length: 10}, {DestStart: 200, SourceStart: 5, Length: 10}}},
		{"partial overlap reversed", []m.Triple{{DestStart: 200, SourceStart: 5, Length: 10}, {DestStart: 100, SourceStart: 0, Length: 10}}},
		{"nested", []m.Triple{{DestStart: 100, SourceStart: 0, Length: 10}, {DestStart: 200, SourceStart: 2, Length: 2}}},
		{"enclosing", []m.Triple{{DestStart: 200, SourceStart: 2, Length: 2}, {DestStart: 100, SourceStart: 0, Length: 10}}},
		{"shared start", []m.Triple{{DestStart: 100, SourceStart: 0, Length: 10}, {DestStart: 200, SourceStart: 0, Length: 5}}},
		{"shared end", []m.Triple{{DestStart: 100, SourceStart: 0, Length: 10}, {DestStart: 200, SourceStart: 5, Length: 5}}},
		{"identical", []m.Triple{{DestStart: 100, SourceStart: 0, Length: 10}, {DestStart: 100, SourceStart: 0, Length: 10}}},
		{"zero offsets sharing end", []m.Triple{{DestStart: 0, SourceStart: 0, Length: 10}, {DestStart: 5, SourceStart: 5, Length: 5}}},
		{"zero offset inside", []m.Triple{{DestStart: 0, SourceStart: 0, Length: 10}, {DestStart: 3, SourceStart: 3, Length: 2}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mp, err := NewMapper("overlap", tt.triples)
			require.Error(t, err)
			assert.Nil(t, mp)
			assert.ErrorIs(t, err, ErrOverlappingRange)

			var overlap *OverlapError
			require.True(t, errors.As(err, &overlap))
			assert.Equal(t, "overlap", overlap.Mapper)
			assert.Contains(t, err.Error(), "overlaps a declared range")
		})
	}
}

func TestNewMapper_InvalidTriples(t *testing.T) {
	_, err := NewMapper("neg", []m.Triple{{DestStart: 1, SourceStart: 1, Length: -1}})
	assert.ErrorIs(t, err, ErrInvalidTriple)

	_, err = NewMapper("overflow", []m.Triple{{DestStart: 1, SourceStart: math.MaxInt64 - 1, Length: 5}})
	assert.ErrorIs(t, err, ErrInvalidTriple)

	_, err = NewMapper("offset", []m.Triple{{DestStart: math.MaxInt64 - 2, SourceStart: -5, Length: 1}})
	assert.ErrorIs(t, err, ErrInvalidTriple)

	_, err = NewMapper("dest-end", []m.Triple{{DestStart: math.MaxInt64, SourceStart: 0, Length: 10}})
	assert.ErrorIs(t, err, ErrInvalidTriple)
	assert.Contains(t, err.Error(), "destination 9223372036854775807 + length 10 overflows")

	mp, err := NewMapper("destination edge", []m.Triple{{DestStart: math.MaxInt64 - 10, SourceStart: 0, Length: 10}})
	require.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt64-1), mp.Map(9))
}

func TestNewMapper_ZeroLengthIgnored(t *testing.T) {
	mp, err := NewMapper("zero", []m.Triple{
		{DestStart: 100, SourceStart: 0, Length: 10},
		{DestStart: 500, SourceStart: 5, Length: 0},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(105), mp.Map(5))
}

// randomMapper builds a mapper from disjoint ranges laid out left to right
// with random gaps, then shuffles the triples so insertion order varies.
func randomMapper(t *testing.T, rng *rand.Rand, name string) (*Mapper, []m.Range) {
	t.Helper()

	var (
		triples []m.Triple
		sources []m.Range
	)

	cursor := rng.Int64N(10)
	for range 1 + rng.IntN(6) {
		cursor += rng.Int64N(4) // gap, possibly zero
		length := 1 + rng.Int64N(12)
		dest := rng.Int64N(150)

		triples = append(triples, m.Triple{DestStart: dest, SourceStart: cursor, Length: length})
		sources = append(sources, m.RangeOf(cursor, length))
		cursor += length
	}

	rng.Shuffle(len(triples), func(i, j int) { triples[i], triples[j] = triples[j], triples[i] })

	mp, err := NewMapper(name, triples)
	require.NoError(t, err)

	return mp, sources
}

func TestMapper_PointAndRangeAgree(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 2023))

	for range 200 {
		mp, _ := randomMapper(t, rng, "random")

		start := rng.Int64N(80) - 10
		in := m.RangeOf(start, rng.Int64N(60))

		segs := mp.Segments(in)
		out := mp.MapRange(in)
		require.Len(t, out, len(segs))

		var total int64

		next := in.Start
		for i, s := range segs {
			require.Equal(t, next, s.Source.Start, "segments must be contiguous and ascending")
			require.False(t, s.Source.Empty())

			if i > 0 {
				require.NotEqual(t, segs[i-1].Offset, s.Offset, "segments must be maximal")
			}

			for v := s.Source.Start; v < s.Source.End; v++ {
				require.Equal(t, mp.Map(v), v+int64(s.Offset))
				require.True(t, out[i].Contains(mp.Map(v)))
			}

			total += out[i].Len()
			next = s.Source.End
		}

		if !in.Empty() {
			require.Equal(t, in.End, next)
		}

		require.Equal(t, in.Len(), total)
	}
}

func TestMapper_IdentityOutsideDeclaredRanges(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))

	for range 100 {
		mp, sources := randomMapper(t, rng, "random")

		for v := int64(-20); v < 120; v++ {
			inside := false
			for _, src := range sources {
				if src.Contains(v) {
					inside = true
					break
				}
			}

			if !inside {
				require.Equalf(t, v, mp.Map(v), "Map(%d) outside declared ranges", v)
			}
		}
	}
}
