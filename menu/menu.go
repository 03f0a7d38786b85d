package menu

import (
	"image/color"
	"log"
	"time"

	cfg "github.com/automoto/nativemenu/config"
)

// Beep identifies a UI sound the host may play
type Beep int

const (
	BeepNavigate Beep = iota
	BeepSelect
	BeepBack
)

type footerKind int

const (
	footerDefault footerKind = iota
	footerColor
	footerSprite
)

type footerSpec struct {
	kind   footerKind
	color  color.RGBA
	sprite Sprite
}

// Setup configures a Menu. Zero fields take the package defaults.
type Setup struct {
	Style        cfg.MenuConfig
	Settings     SettingsSource
	RepeatDelays []time.Duration
	Now          func() time.Time
}

// Menu is an immediate-mode menu. See the package documentation for the
// per-frame call sequence. A Menu is not safe for concurrent use.
type Menu struct {
	style    cfg.MenuConfig
	pending  *cfg.MenuConfig
	settings SettingsSource

	renderer Renderer
	controls *Controls

	state   menuState
	options registry
	layers  drawLayers

	onOpen  func()
	onClose func()
	onBeep  func(Beep)

	// Edges for the current frame
	acceptPress bool
	backPress   bool
	upPress     bool
	downPress   bool
	leftPress   bool
	rightPress  bool

	// Layout for the current frame
	headerHeight float64
	footer       footerSpec
	footerSet    bool
}

// New creates a closed menu drawing through renderer and reading input.
func New(renderer Renderer, input Input, setup Setup) *Menu {
	style := setup.Style
	if style.Width == 0 {
		style = cfg.Menu
	}
	delays := setup.RepeatDelays
	if delays == nil {
		delays = cfg.Input.RepeatDelays
	}

	return &Menu{
		style:    style,
		settings: setup.Settings,
		renderer: renderer,
		controls: NewControls(input, delays, setup.Now),
		state:    newMenuState(),
	}
}

// RegisterOnOpen sets a function called whenever the menu opens
func (m *Menu) RegisterOnOpen(fn func()) {
	m.onOpen = fn
}

// RegisterOnClose sets a function called whenever the menu closes
func (m *Menu) RegisterOnClose(fn func()) {
	m.onClose = fn
}

// RegisterOnBeep sets a function called for navigation sounds
func (m *Menu) RegisterOnBeep(fn func(Beep)) {
	m.onBeep = fn
}

// ReadSettings reloads the style from the settings source. The new style takes
// effect at the next CheckKeys so a frame is never drawn with mixed styles.
func (m *Menu) ReadSettings() {
	if m.settings == nil {
		return
	}
	style, err := m.settings()
	if err != nil {
		log.Printf("Warning: Could not read menu settings: %v", err)
		return
	}
	m.pending = &style
}

// Style returns the style in effect for the current frame
func (m *Menu) Style() cfg.MenuConfig {
	return m.style
}

// Controls returns the input debouncer
func (m *Menu) Controls() *Controls {
	return m.controls
}

// IsOpen reports whether the menu is showing
func (m *Menu) IsOpen() bool {
	return m.state.isOpen()
}

// Path returns a copy of the submenu path, root first. It is empty when closed.
func (m *Menu) Path() []string {
	return append([]string(nil), m.state.path...)
}

// Selection returns the index of the selected option
func (m *Menu) Selection() int {
	return m.state.selection
}

// OptionCount returns how many options have been declared this frame
func (m *Menu) OptionCount() int {
	return m.options.count()
}

// Pending returns the draw commands queued so far this frame, in flush order
func (m *Menu) Pending() []DrawCommand {
	return m.layers.Commands()
}

// CurrentMenu reports whether name is the submenu being shown
func (m *Menu) CurrentMenu(name string) bool {
	return m.state.isOpen() && m.state.current() == name
}

// Open shows the root menu. It does nothing if the menu is already open.
func (m *Menu) Open() {
	if m.state.isOpen() {
		return
	}
	m.state.open(MainMenu)
	m.resetFrame()
	if m.onOpen != nil {
		m.onOpen()
	}
}

// CloseMenu hides the menu, dropping everything queued for the current frame.
func (m *Menu) CloseMenu() {
	if !m.state.isOpen() {
		return
	}
	m.state.close()
	m.resetFrame()
	m.layers.discard()
	m.controls.Reset()
	if m.onClose != nil {
		m.onClose()
	}
}

// CheckKeys starts a frame: it polls input and records this frame's edges.
// While closed only the toggle control is honored.
func (m *Menu) CheckKeys() {
	if m.pending != nil {
		m.style = *m.pending
		m.pending = nil
	}

	m.controls.Update()
	m.resetFrame()
	m.layers.discard()

	if !m.state.isOpen() {
		if m.controls.Fired(ControlToggle) {
			m.Open()
			m.beep(BeepSelect)
		}
		return
	}

	if m.controls.Fired(ControlToggle) {
		m.beep(BeepBack)
		m.CloseMenu()
		return
	}

	m.upPress = m.controls.Fired(ControlUp)
	m.downPress = m.controls.Fired(ControlDown)
	m.leftPress = m.controls.Fired(ControlLeft)
	m.rightPress = m.controls.Fired(ControlRight)
	m.acceptPress = m.controls.Fired(ControlAccept)
	m.backPress = m.controls.Fired(ControlBack)

	switch {
	case m.backPress:
		m.beep(BeepBack)
	case m.acceptPress:
		m.beep(BeepSelect)
	case m.upPress, m.downPress, m.leftPress, m.rightPress:
		m.beep(BeepNavigate)
	}
}

// EndMenu finishes a frame: it clamps the selection, lays out the visible rows,
// draws the backgrounds, footer and details that depend on the final option
// count, flushes every layer and applies menu
// navigation. Navigation takes effect on the next frame.
func (m *Menu) EndMenu() {
	if !m.state.isOpen() {
		m.layers.discard()
		return
	}

	count := m.options.count()
	m.state.clamp(count)

	if m.backPress && len(m.state.path) == 1 {
		m.CloseMenu()
		return
	}

	m.drawRows(count)
	m.drawChrome(count)
	m.layers.flush(m.renderer)
	m.navigate(count)
}

func (m *Menu) navigate(count int) {
	switch {
	case m.backPress:
		m.state.back()
	case m.acceptPress:
		if e, ok := m.options.entry(m.state.selection); ok && e.submenu != "" {
			if !m.state.enter(e.submenu) {
				log.Printf("Warning: Menu depth limit reached, not entering %q", e.submenu)
			}
		}
	case m.upPress && !m.downPress:
		m.state.move(-1, count)
	case m.downPress && !m.upPress:
		m.state.move(1, count)
	}
}

func (m *Menu) resetFrame() {
	m.options.reset()
	m.acceptPress = false
	m.backPress = false
	m.upPress = false
	m.downPress = false
	m.leftPress = false
	m.rightPress = false
	m.headerHeight = 0
	m.footer = footerSpec{}
	m.footerSet = false
}

func (m *Menu) beep(b Beep) {
	if m.onBeep != nil {
		m.onBeep(b)
	}
}

// takeLeft consumes this frame's left edge
func (m *Menu) takeLeft() bool {
	pressed := m.leftPress
	m.leftPress = false
	return pressed
}

// takeRight consumes this frame's right edge
func (m *Menu) takeRight() bool {
	pressed := m.rightPress
	m.rightPress = false
	return pressed
}
