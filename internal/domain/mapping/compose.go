package mapping

import (
	"fmt"

	m "github.com/mouse-blink/almanac/internal/model"
)

// Compose returns a Mapper equivalent to applying first and then second:
// Compose(a, b).Map(v) == b.Map(a.Map(v)) for every v.
func Compose(first, second *Mapper) (*Mapper, error) {
	name := first.name + "+" + second.name

	span, ok := coveredSpan(first, second)
	if !ok {
		return &Mapper{name: name}, nil
	}

	// Outside span both mappers are the identity, so only the segments of
	// first inside span need to be pushed through second.
	var composed []Segment

	for _, outer := range first.Segments(span) {
		for _, inner := range second.Segments(outer.Mapped()) {
			src := inner.Source.Shift(-int64(outer.Offset))

			sum, ok := add(int64(outer.Offset), int64(inner.Offset))
			if !ok {
				return nil, fmt.Errorf("%w: %s: offset %d + %d overflows", ErrInvalidTriple, name, outer.Offset, inner.Offset)
			}

			off := Offset(sum)

			if n := len(composed); n > 0 && composed[n-1].Offset == off && composed[n-1].Source.End == src.Start {
				composed[n-1].Source.End = src.End
				continue
			}

			composed = append(composed, Segment{Source: src, Offset: off})
		}
	}

	triples := make([]m.Triple, 0, len(composed))
	for _, s := range composed {
		if s.Offset == 0 {
			continue
		}

		triples = append(triples, m.Triple{
			DestStart:   s.Source.Start + int64(s.Offset),
			SourceStart: s.Source.Start,
			Length:      s.Source.Len(),
		})
	}

	return NewMapper(name, triples)
}

// coveredSpan returns the smallest range holding every boundary of a and b.
func coveredSpan(a, b *Mapper) (m.Range, bool) {
	var span m.Range

	found := false

	for _, mp := range []*Mapper{a, b} {
		if len(mp.bounds) == 0 {
			continue
		}

		lo, hi := mp.bounds[0], mp.bounds[len(mp.bounds)-1]
		if !found {
			span = m.Range{Start: lo, End: hi}
			found = true

			continue
		}

		span.Start = min(span.Start, lo)
		span.End = max(span.End, hi)
	}

	return span, found && !span.Empty()
}
