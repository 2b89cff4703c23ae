package model

import "fmt"

// Range is the half-open interval [Start, End).
type Range struct {
	Start int64
	End   int64
}

// RangeOf builds the range that starts at start and holds length values.
func RangeOf(start, length int64) Range {
	return Range{Start: start, End: start + length}
}

// Len returns the number of values in r, or 0 for an empty range.
func (r Range) Len() int64 {
	if r.End <= r.Start {
		return 0
	}

	return r.End - r.Start
}

// Empty reports whether r holds no values.
func (r Range) Empty() bool {
	return r.End <= r.Start
}

// Contains reports whether x lies in r.
func (r Range) Contains(x int64) bool {
	return r.Start <= x && x < r.End
}

// Shift translates both bounds by delta.
func (r Range) Shift(delta int64) Range {
	return Range{Start: r.Start + delta, End: r.End + delta}
}

func (r Range) String() string {
	return fmt.Sprintf("[%d,%d)", r.Start, r.End)
}

// Triple is one line of a mapper block: values in
// [SourceStart, SourceStart+Length) move to DestStart onwards.
type Triple struct {
	DestStart   int64
	SourceStart int64
	Length      int64
}
