package mapping

import (
	"errors"
	"fmt"

	m "github.com/mouse-blink/almanac/internal/model"
)

var (
	// ErrInvalidTriple indicates a triple with a negative length or bounds that overflow int64.
	ErrInvalidTriple = errors.New("mapping: invalid triple")
	// ErrOverlappingRange indicates two declared source ranges of one mapper intersect.
	ErrOverlappingRange = errors.New("mapping: overlapping source ranges")
)

// OverlapError reports the boundary at which a new source range collided
// with a previously declared one.
type OverlapError struct {
	Mapper   string  // name of the mapper being built
	Boundary int64   // existing breakpoint found inside or closing over Range
	Range    m.Range // source range that could not be added
}

func (e *OverlapError) Error() string {
	return fmt.Sprintf("mapping: %s: source range %s overlaps a declared range at %d", e.Mapper, e.Range, e.Boundary)
}

// Unwrap lets errors.Is match ErrOverlappingRange.
func (e *OverlapError) Unwrap() error {
	return ErrOverlappingRange
}
