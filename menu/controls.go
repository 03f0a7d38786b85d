package menu

import "time"

// Control is a logical menu input
type Control int

const (
	ControlUp Control = iota
	ControlDown
	ControlLeft
	ControlRight
	ControlAccept
	ControlBack
	ControlToggle
	ControlCount // Must be last - used for array sizing
)

var controlNames = [ControlCount]string{"up", "down", "left", "right", "accept", "back", "toggle"}

func (c Control) String() string {
	if c < 0 || c >= ControlCount {
		return "unknown"
	}
	return controlNames[c]
}

// Repeats reports whether holding the control auto-repeats.
// Accept, back and toggle fire once per press.
func (c Control) Repeats() bool {
	return c <= ControlRight
}

type keyState struct {
	held     bool
	latched  bool // ignored until released
	lastFire time.Time
	tier     int
}

// Controls turns raw held states into edge events.
// Directional controls repeat while held, speeding up through the delay table.
type Controls struct {
	input  Input
	now    func() time.Time
	delays []time.Duration
	keys   [ControlCount]keyState
	fired  [ControlCount]bool
}

// NewControls creates a debouncer over input. delays is the repeat delay table,
// slowest first. A nil now uses time.Now.
func NewControls(input Input, delays []time.Duration, now func() time.Time) *Controls {
	if now == nil {
		now = time.Now
	}
	return &Controls{
		input:  input,
		now:    now,
		delays: delays,
	}
}

// Update polls the input once and computes this poll's events
func (c *Controls) Update() {
	t := c.now()
	for ctl := Control(0); ctl < ControlCount; ctl++ {
		c.fired[ctl] = false
		k := &c.keys[ctl]

		if c.input == nil || !c.input.Pressed(ctl) {
			*k = keyState{}
			continue
		}
		if k.latched {
			continue
		}

		if !k.held {
			k.held = true
			k.lastFire = t
			k.tier = 0
			c.fired[ctl] = true
			continue
		}

		if !ctl.Repeats() || len(c.delays) == 0 {
			continue
		}
		if t.Sub(k.lastFire) >= c.delays[k.tier] {
			c.fired[ctl] = true
			k.lastFire = t
			if k.tier < len(c.delays)-1 {
				k.tier++
			}
		}
	}
}

// Fired reports whether ctl produced an edge or repeat event on the last Update
func (c *Controls) Fired(ctl Control) bool {
	if ctl < 0 || ctl >= ControlCount {
		return false
	}
	return c.fired[ctl]
}

// Tier returns the current repeat tier of ctl (0 is the slowest)
func (c *Controls) Tier(ctl Control) int {
	if ctl < 0 || ctl >= ControlCount {
		return 0
	}
	return c.keys[ctl].tier
}

// Reset drops all repeat progress and pending events. Directional controls
// still held fire again as a fresh press; single-shot controls still held stay
// silent until released.
func (c *Controls) Reset() {
	for ctl := Control(0); ctl < ControlCount; ctl++ {
		held := c.keys[ctl].held || c.keys[ctl].latched
		c.keys[ctl] = keyState{}
		if !ctl.Repeats() && held {
			c.keys[ctl].latched = true
		}
		c.fired[ctl] = false
	}
}
