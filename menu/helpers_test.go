package menu

import (
	"image/color"
	"testing"
	"time"
	"unicode/utf8"

	cfg "github.com/automoto/nativemenu/config"
)

// charWidth is the width of one character at scale 1 for the fake renderer
const charWidth = 0.01

// recorder is a Renderer that records every primitive it receives
type recorder struct {
	calls []DrawCommand
}

func (r *recorder) MeasureText(text string, scale float64, font int) float64 {
	return float64(utf8.RuneCountInString(text)) * charWidth * scale
}

func (r *recorder) DrawText(text string, font int, x, y, scale float64, c color.RGBA, justify Justify) {
	r.calls = append(r.calls, textCommand(text, font, x, y, scale, c, justify))
}

func (r *recorder) DrawRect(x, y, w, h float64, c color.RGBA) {
	r.calls = append(r.calls, rectCommand(x, y, w, h, c))
}

func (r *recorder) DrawSprite(sprite Sprite, x, y, w, h, rotation float64, c color.RGBA) {
	cmd := spriteCommand(sprite, x, y, w, h, c)
	cmd.Rotation = rotation
	r.calls = append(r.calls, cmd)
}

func (r *recorder) texts() []string {
	var out []string
	for _, c := range r.calls {
		if c.Kind == CommandText {
			out = append(out, c.Text)
		}
	}
	return out
}

func (r *recorder) reset() {
	r.calls = r.calls[:0]
}

// heldInput reports the controls currently held down
type heldInput map[Control]bool

func (h heldInput) Pressed(c Control) bool {
	return h[c]
}

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time {
	return c.t
}

func (c *fakeClock) advance(d time.Duration) {
	c.t = c.t.Add(d)
}

const frameTime = 16 * time.Millisecond

// harness drives a Menu frame by frame with a fake clock and input
type harness struct {
	t     *testing.T
	menu  *Menu
	input heldInput
	clock *fakeClock
	out   *recorder
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{
		t:     t,
		input: heldInput{},
		clock: &fakeClock{t: time.Unix(1000, 0)},
		out:   &recorder{},
	}
	h.menu = New(h.out, h.input, Setup{
		Style:        cfg.Menu,
		RepeatDelays: cfg.Input.RepeatDelays,
		Now:          h.clock.now,
	})
	return h
}

// frame runs one full CheckKeys / declare / EndMenu cycle
func (h *harness) frame(declare func(m *Menu)) {
	h.out.reset()
	h.menu.CheckKeys()
	if declare != nil {
		declare(h.menu)
	}
	h.menu.EndMenu()
	h.clock.advance(frameTime)
}

// tap presses ctl for one frame, then runs a frame with it released
func (h *harness) tap(ctl Control, declare func(m *Menu)) {
	h.input[ctl] = true
	h.frame(declare)
	delete(h.input, ctl)
	h.frame(declare)
}

// press holds ctl for a single frame. The next frame sees it released, so
// recorder output still holds the frame in which ctl fired.
func (h *harness) press(ctl Control, declare func(m *Menu)) {
	h.input[ctl] = true
	h.frame(declare)
	delete(h.input, ctl)
}

// open taps the toggle control
func (h *harness) open(declare func(m *Menu)) {
	h.tap(ControlToggle, declare)
}

// options declares n plain options on the root menu
func options(n int) func(m *Menu) {
	return func(m *Menu) {
		if !m.CurrentMenu(MainMenu) {
			return
		}
		m.Title("Main")
		for i := 0; i < n; i++ {
			m.Option("option")
		}
	}
}
