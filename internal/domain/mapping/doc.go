// Package mapping implements piecewise offset mappers: functions over int64
// of the form f(x) = x + offset(x) where offset is constant on each declared
// half-open source range and zero everywhere else.
//
// What:
//
//   - NewMapper builds an immutable Mapper from (dest, source, length) triples,
//     rejecting triples whose source ranges overlap.
//   - Mapper.Map evaluates one value; Mapper.MapRange pushes a whole range
//     through the mapper and returns the maximal shifted sub-ranges.
//   - Pipeline applies mappers in declared order to values or ranges.
//   - Compose and Pipeline.Flatten fold several mappers into one.
//
// Representation:
//
// A Mapper stores breakpoints: sorted boundaries, each carrying the offset
// that applies to values below it and at or above the previous boundary.
// Values at or beyond the last boundary, and below the first, have offset 0.
//
// Complexity:
//
//   - NewMapper: O(N log N) for N triples.
//   - Map:       O(log N).
//   - MapRange:  O(log N + K), K = boundaries inside the queried range,
//     independent of the numeric width of the range.
//
// Errors:
//
//   - ErrInvalidTriple: negative length or int64 overflow in a triple.
//   - ErrOverlappingRange: two source ranges of one mapper intersect;
//     returned as *OverlapError carrying the conflicting boundary.
package mapping
