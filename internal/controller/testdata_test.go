package controller

import m "github.com/mouse-blink/almanac/internal/model"

func sampleInspection() m.Inspection {
	return m.Inspection{
		Day:   5,
		Seeds: 4,
		Tables: []m.MapperTable{
			{Name: "seed-to-soil", Rows: []m.BreakpointRow{
				{Boundary: 50, Offset: 0},
				{Boundary: 98, Offset: 2, Closes: true},
				{Boundary: 100, Offset: -48, Closes: true},
			}},
		},
		Stages: []m.StageTrace{
			{Name: "seed-to-soil", Breakpoints: 3, RangesIn: 2, RangesOut: 2, Lowest: 57},
			{Name: "humidity-to-location", Breakpoints: 4, RangesIn: 9, RangesOut: 11, Lowest: 46},
		},
	}
}
