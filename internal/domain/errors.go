package domain

import "errors"

var (
	// ErrMalformedInput indicates the puzzle text does not follow the almanac grammar.
	ErrMalformedInput = errors.New("almanac: malformed input")
	// ErrEmptyInput indicates there are no seeds, so no minimum exists.
	ErrEmptyInput = errors.New("almanac: no seeds to map")
	// ErrUnknownDay indicates no puzzle is registered for the requested day.
	ErrUnknownDay = errors.New("almanac: no puzzle registered for day")
	// ErrUnknownPart indicates a part other than 0 (both), 1 or 2.
	ErrUnknownPart = errors.New("almanac: part must be 0, 1 or 2")
	// ErrNotInspectable indicates the puzzle has no diagnostic view.
	ErrNotInspectable = errors.New("almanac: puzzle does not support inspection")
)
