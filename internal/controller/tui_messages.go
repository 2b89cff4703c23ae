package controller

import (
	m "github.com/mouse-blink/almanac/internal/model"
)

// inspectionMsg delivers a finished inspection to the Bubble Tea model.
type inspectionMsg struct {
	inspection m.Inspection
}

// stageItem is one pipeline stage shown in the inspection list, together
// with the breakpoint table of the mapper that ran in it.
type stageItem struct {
	trace m.StageTrace
	table m.MapperTable
}

func (i stageItem) FilterValue() string { return i.trace.Name }
