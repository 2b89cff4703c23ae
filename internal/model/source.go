// Package model defines the data structures shared by the almanac solver.
package model

// Path represents a file system path. The value "-" stands for stdin.
type Path string

// StdinPath selects standard input as the puzzle source.
const StdinPath Path = "-"

// IsStdin reports whether p refers to standard input.
func (p Path) IsStdin() bool {
	return p == "" || p == StdinPath
}
