package model

// Answer is the result of one part of one puzzle day.
type Answer struct {
	Day   int
	Part  int
	Value int64
}

// StageTrace summarises one pipeline stage of a ranged run.
type StageTrace struct {
	Name        string
	Breakpoints int // number of boundaries in the stage's mapper
	RangesIn    int
	RangesOut   int
	Lowest      int64 // smallest output start after this stage; 0 when RangesOut is 0
}

// BreakpointRow is one boundary of a mapper as shown by the inspect command.
type BreakpointRow struct {
	Boundary int64
	Offset   int64
	Closes   bool // true when a declared range ends at Boundary
}

// MapperTable is the diagnostic view of one named mapper.
type MapperTable struct {
	Name string
	Rows []BreakpointRow
}

// Inspection is the diagnostic view of one parsed puzzle input.
type Inspection struct {
	Day    int
	Seeds  int
	Tables []MapperTable
	Stages []StageTrace
}
