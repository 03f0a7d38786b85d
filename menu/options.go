package menu

import (
	"math"
	"strconv"
)

// PlusOptions configures an OptionPlus row
type PlusOptions struct {
	Title       string // Pane title, "Info" when empty
	OnLeft      func() // Called on a left edge while selected
	OnRight     func() // Called on a right edge while selected
	Highlighted *bool  // Set to whether the row is selected
}

// declare registers an option for this frame and returns its index and whether
// it is selected. The index is -1 while the menu is closed. Rows are laid out in
// EndMenu once the selection has been clamped to the final option count.
func (m *Menu) declare(text, submenu string, details []string) (idx int, highlighted bool) {
	if !m.state.isOpen() {
		return -1, false
	}
	idx = m.options.declare(optionEntry{text: text, submenu: submenu, details: details})
	return idx, idx == m.state.selection
}

// Option is a plain row. It returns true on accept.
func (m *Menu) Option(text string, details ...string) bool {
	_, highlighted := m.declare(text, "", details)
	return highlighted && m.acceptPress
}

// MenuOption is a row that enters submenu on accept. It returns true on accept;
// the submenu is shown from the next frame.
func (m *Menu) MenuOption(text, submenu string, details ...string) bool {
	idx, highlighted := m.declare(text, submenu, details)
	m.options.decorate(idx, func(y float64, highlighted bool) {
		m.drawIcon(m.style.SubmenuArrow, ">>", y, highlighted)
	})
	return highlighted && m.acceptPress
}

// OptionPlus is a row that shows an extra pane to the right while selected.
// Lines starting with ImagePrefix are drawn as images. It returns true on accept.
func (m *Menu) OptionPlus(text string, extra []string, plus PlusOptions, details ...string) bool {
	_, highlighted := m.declare(text, "", details)
	if plus.Highlighted != nil {
		*plus.Highlighted = highlighted
	}
	if !highlighted {
		return false
	}

	if m.takeLeft() && plus.OnLeft != nil {
		plus.OnLeft()
	}
	if m.takeRight() && plus.OnRight != nil {
		plus.OnRight()
	}

	title := plus.Title
	if title == "" {
		title = "Info"
	}
	m.drawInfoBox(title, extra)
	return m.acceptPress
}

// IntOption steps *v through [lo, hi]. It returns true on accept, left and right.
func (m *Menu) IntOption(text string, v *int, lo, hi, step int, details ...string) bool {
	return NumberOption(m, text, v, lo, hi, step, strconv.Itoa, details...)
}

// FloatOption steps *v through [lo, hi]. It returns true on accept, left and right.
func (m *Menu) FloatOption(text string, v *float64, lo, hi, step float64, details ...string) bool {
	prec := decimals(step)
	format := func(f float64) string {
		return strconv.FormatFloat(f, 'f', prec, 64)
	}
	return NumberOption(m, text, v, lo, hi, step, format, details...)
}

// BoolOption toggles *v on accept and shows it as a checkbox. It returns true on accept.
func (m *Menu) BoolOption(text string, v *bool, details ...string) bool {
	idx, highlighted := m.declare(text, "", details)
	accepted := highlighted && m.acceptPress
	if accepted {
		n := 0
		if *v {
			n = 1
		}
		Step(&n, 0, 1, 1, false, true)
		*v = n == 1
	}
	on := *v
	m.options.decorate(idx, func(y float64, highlighted bool) {
		sprite, fallback := m.style.CheckboxOff, "[ ]"
		if on {
			sprite, fallback = m.style.CheckboxOn, "[X]"
		}
		m.drawIcon(sprite, fallback, y, highlighted)
	})
	return accepted
}

// BoolSpriteOption shows on with caller-chosen sprites. It returns true on accept
// and leaves toggling to the caller.
func (m *Menu) BoolSpriteOption(text string, on bool, spriteOn, spriteOff Sprite, details ...string) bool {
	idx, highlighted := m.declare(text, "", details)
	m.options.decorate(idx, func(y float64, highlighted bool) {
		sprite, fallback := spriteOff, "[ ]"
		if on {
			sprite, fallback = spriteOn, "[X]"
		}
		m.drawIcon(sprite, fallback, y, highlighted)
	})
	return highlighted && m.acceptPress
}

// IntArray scrolls *idx through values. It returns true on accept, left and right.
func (m *Menu) IntArray(text string, values []int, idx *int, details ...string) bool {
	return ArrayOption(m, text, values, idx, strconv.Itoa, details...)
}

// FloatArray scrolls *idx through values. It returns true on accept, left and right.
func (m *Menu) FloatArray(text string, values []float64, idx *int, details ...string) bool {
	format := func(f float64) string {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return ArrayOption(m, text, values, idx, format, details...)
}

// StringArray scrolls *idx through values. It returns true on accept, left and right.
func (m *Menu) StringArray(text string, values []string, idx *int, details ...string) bool {
	return ArrayOption(m, text, values, idx, func(s string) string { return s }, details...)
}

// NumberOption is the generic form of IntOption and FloatOption. *v is snapped
// into [lo, hi] every frame; left and right step it while the row is selected.
func NumberOption[T Number](m *Menu, text string, v *T, lo, hi, step T, format func(T) string, details ...string) bool {
	idx, highlighted := m.declare(text, "", details)
	if idx < 0 {
		return false
	}

	left := highlighted && m.takeLeft()
	right := highlighted && m.takeRight()
	changed := Step(v, lo, hi, step, left, right)

	value := format(*v)
	m.options.decorate(idx, func(y float64, highlighted bool) {
		m.drawValue(value, y, highlighted)
	})
	return changed || (highlighted && m.acceptPress)
}

// ArrayOption is the generic form of the list options: *idx indexes values and
// is stepped with wraparound. An empty list disables the row.
func ArrayOption[T any](m *Menu, text string, values []T, idx *int, format func(T) string, details ...string) bool {
	row, highlighted := m.declare(text, "", details)
	if row < 0 {
		return false
	}

	if len(values) == 0 {
		m.options.decorate(row, func(y float64, _ bool) {
			m.drawValue("-", y, false)
		})
		return false
	}

	left := highlighted && m.takeLeft()
	right := highlighted && m.takeRight()
	changed := Step(idx, 0, len(values)-1, 1, left, right)

	value := format(values[*idx])
	m.options.decorate(row, func(y float64, highlighted bool) {
		m.drawValue(value, y, highlighted)
	})
	return changed || (highlighted && m.acceptPress)
}

// decimals returns how many fractional digits are needed to show multiples of step
func decimals(step float64) int {
	step = math.Abs(step)
	for d := 0; d < 6; d++ {
		scaled := step * math.Pow10(d)
		if math.Abs(scaled-math.Round(scaled)) < 1e-9 {
			return d
		}
	}
	return 6
}
