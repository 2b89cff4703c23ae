// Package controller provides output adapters for displaying puzzle answers
// and almanac diagnostics.
package controller

import (
	"strconv"

	m "github.com/mouse-blink/almanac/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeRun StartMode = iota
	ModeInspect
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode StartMode
}

// WithRunMode sets the UI to answer mode.
func WithRunMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeRun
	}
}

// WithInspectMode sets the UI to diagnostic mode.
func WithInspectMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeInspect
	}
}

func newStartConfig(options []StartOption) StartConfig {
	var cfg StartConfig
	for _, opt := range options {
		opt(&cfg)
	}

	return cfg
}

// UI defines the interface for presenting results.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(options ...StartOption) error
	Close()
	DisplayAnswers(answers []m.Answer) error
	DisplayInspection(inspection m.Inspection) error
}

// noValue is shown where a stage produced no ranges to take a minimum of.
const noValue = "-"

func lowestCell(st m.StageTrace) string {
	if st.RangesOut == 0 {
		return noValue
	}

	return strconv.FormatInt(st.Lowest, 10)
}
