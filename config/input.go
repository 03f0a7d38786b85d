package config

import "time"

// ActionID represents a logical menu action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMenuUp
	ActionMenuDown
	ActionMenuLeft
	ActionMenuRight
	ActionMenuSelect
	ActionMenuBack
	ActionMenuToggle
	ActionCount // Must be last - used for array sizing
)

// InputConfig holds input tuning shared by every device.
// Device bindings live with the poller in the systems package.
type InputConfig struct {
	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64
	// Delays between auto-repeated directional events while a key is held.
	// Each repeat advances to the next (shorter) delay until the last one.
	RepeatDelays []time.Duration
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		AnalogDeadzone: 0.5,
		RepeatDelays: []time.Duration{
			240 * time.Millisecond,
			120 * time.Millisecond,
			75 * time.Millisecond,
			40 * time.Millisecond,
			20 * time.Millisecond,
			10 * time.Millisecond,
		},
	}
}
