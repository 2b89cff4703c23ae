package mapping

import (
	"fmt"
	"math"
	"sort"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/utils"

	m "github.com/mouse-blink/almanac/internal/model"
)

// Offset is the signed delta added to every value of one source range.
type Offset int64

// Segment is a span of source values together with the offset governing it.
type Segment struct {
	Source m.Range
	Offset Offset
}

// Mapped returns the destination range of the segment.
func (s Segment) Mapped() m.Range {
	return s.Source.Shift(int64(s.Offset))
}

// breakpoint is the value stored under a boundary while a mapper is built.
// closes is false for the placeholder written at a range start; such an
// entry may later be overwritten by a range that ends on the same boundary.
type breakpoint struct {
	offset Offset
	closes bool
}

// Mapper is an immutable piecewise offset function. The zero value is the
// identity mapper.
type Mapper struct {
	name    string
	bounds  []int64 // strictly increasing
	offsets []Offset
	closes  []bool
}

// NewMapper builds a Mapper from triples given in any order. Zero-length
// triples declare no values and are ignored. Triples whose source ranges
// intersect yield an *OverlapError; ranges that only touch are accepted.
func NewMapper(name string, triples []m.Triple) (*Mapper, error) {
	b := newBuilder(name)

	for _, t := range triples {
		if err := b.add(t); err != nil {
			return nil, err
		}
	}

	return b.freeze(), nil
}

// builder accumulates breakpoints in an ordered tree so every triple can be
// validated against the ranges declared before it.
type builder struct {
	name string
	tree *treemap.Map
}

func newBuilder(name string) *builder {
	return &builder{
		name: name,
		tree: treemap.NewWith(utils.Int64Comparator),
	}
}

func (b *builder) add(t m.Triple) error {
	if t.Length < 0 {
		return fmt.Errorf("%w: %s: negative length %d", ErrInvalidTriple, b.name, t.Length)
	}

	if t.Length == 0 {
		return nil
	}

	if t.SourceStart > math.MaxInt64-t.Length {
		return fmt.Errorf("%w: %s: source %d + length %d overflows", ErrInvalidTriple, b.name, t.SourceStart, t.Length)
	}

	if t.DestStart > math.MaxInt64-t.Length {
		return fmt.Errorf("%w: %s: destination %d + length %d overflows", ErrInvalidTriple, b.name, t.DestStart, t.Length)
	}

	offset, ok := sub(t.DestStart, t.SourceStart)
	if !ok {
		return fmt.Errorf("%w: %s: offset %d - %d overflows", ErrInvalidTriple, b.name, t.DestStart, t.SourceStart)
	}

	source := m.RangeOf(t.SourceStart, t.Length)

	// The first boundary above source.Start governs source.Start. A boundary
	// inside the range means another range starts or ends there; a closing
	// boundary at or past the end means source.Start already sits inside a
	// declared range.
	if key, value := b.tree.Ceiling(source.Start + 1); key != nil {
		succ := key.(int64)
		if succ < source.End || value.(breakpoint).closes {
			return &OverlapError{Mapper: b.name, Boundary: succ, Range: source}
		}
	}

	b.tree.Put(source.End, breakpoint{offset: Offset(offset), closes: true})

	if _, found := b.tree.Get(source.Start); !found {
		b.tree.Put(source.Start, breakpoint{})
	}

	return nil
}

func (b *builder) freeze() *Mapper {
	size := b.tree.Size()
	mp := &Mapper{
		name:    b.name,
		bounds:  make([]int64, 0, size),
		offsets: make([]Offset, 0, size),
		closes:  make([]bool, 0, size),
	}

	it := b.tree.Iterator()
	for it.Next() {
		bp := it.Value().(breakpoint)
		mp.bounds = append(mp.bounds, it.Key().(int64))
		mp.offsets = append(mp.offsets, bp.offset)
		mp.closes = append(mp.closes, bp.closes)
	}

	return mp
}

// Name returns the diagnostic name given at construction.
func (mp *Mapper) Name() string {
	return mp.name
}

// Len returns the number of stored boundaries.
func (mp *Mapper) Len() int {
	return len(mp.bounds)
}

// above returns the index of the first boundary strictly greater than v.
func (mp *Mapper) above(v int64) int {
	return sort.Search(len(mp.bounds), func(i int) bool { return mp.bounds[i] > v })
}

func (mp *Mapper) offsetAt(i int) Offset {
	if i >= len(mp.offsets) {
		return 0
	}

	return mp.offsets[i]
}

// OffsetAt returns the offset in effect for v.
func (mp *Mapper) OffsetAt(v int64) Offset {
	return mp.offsetAt(mp.above(v))
}

// Map evaluates the mapper at v.
func (mp *Mapper) Map(v int64) int64 {
	return v + int64(mp.OffsetAt(v))
}

// Segments splits r at every boundary inside it and pairs each piece with
// its offset. Neighbouring pieces with equal offsets are merged, so the
// result is ordered, disjoint, maximal and covers r exactly. An empty r
// yields nil.
func (mp *Mapper) Segments(r m.Range) []Segment {
	if r.Empty() {
		return nil
	}

	var segs []Segment

	push := func(src m.Range, off Offset) {
		if n := len(segs); n > 0 && segs[n-1].Offset == off {
			segs[n-1].Source.End = src.End
			return
		}

		segs = append(segs, Segment{Source: src, Offset: off})
	}

	cur := r.Start
	i := mp.above(r.Start)

	// Values in [cur, bounds[i]) take the offset stored at bounds[i].
	for ; i < len(mp.bounds) && mp.bounds[i] < r.End; i++ {
		push(m.Range{Start: cur, End: mp.bounds[i]}, mp.offsets[i])
		cur = mp.bounds[i]
	}

	// bounds[i] is now the first boundary at or above r.End.
	push(m.Range{Start: cur, End: r.End}, mp.offsetAt(i))

	return segs
}

// MapRange pushes r through the mapper and returns the destination ranges
// in ascending source order. Their total length equals r.Len().
func (mp *Mapper) MapRange(r m.Range) []m.Range {
	segs := mp.Segments(r)

	out := make([]m.Range, 0, len(segs))
	for _, s := range segs {
		out = append(out, s.Mapped())
	}

	return out
}

// Breakpoints returns the stored boundaries in ascending order.
func (mp *Mapper) Breakpoints() []m.BreakpointRow {
	rows := make([]m.BreakpointRow, 0, len(mp.bounds))
	for i, bound := range mp.bounds {
		rows = append(rows, m.BreakpointRow{
			Boundary: bound,
			Offset:   int64(mp.offsets[i]),
			Closes:   mp.closes[i],
		})
	}

	return rows
}

// Table returns the diagnostic view of the mapper.
func (mp *Mapper) Table() m.MapperTable {
	return m.MapperTable{Name: mp.name, Rows: mp.Breakpoints()}
}

func add(a, b int64) (int64, bool) {
	s := a + b
	if (b > 0 && s < a) || (b < 0 && s > a) {
		return 0, false
	}

	return s, true
}

func sub(a, b int64) (int64, bool) {
	d := a - b
	if (b > 0 && d > a) || (b < 0 && d < a) {
		return 0, false
	}

	return d, true
}
