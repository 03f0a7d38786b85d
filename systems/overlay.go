package systems

import (
	"fmt"
	"math"
	"strings"

	"github.com/automoto/nativemenu/components"
	cfg "github.com/automoto/nativemenu/config"
	"github.com/automoto/nativemenu/fonts"
	"github.com/automoto/nativemenu/menu"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// fadeDuration is how long the overlay takes to fade in, in seconds
const fadeDuration = 0.15

// Submenu names
const (
	menuSettings = "settings"
	menuControls = "controls"
	menuShowcase = "showcase"
)

// controlRows lists the actions shown on the controls screen
var controlRows = []struct {
	label  string
	action cfg.ActionID
}{
	{"Up", cfg.ActionMenuUp},
	{"Down", cfg.ActionMenuDown},
	{"Left", cfg.ActionMenuLeft},
	{"Right", cfg.ActionMenuRight},
	{"Select", cfg.ActionMenuSelect},
	{"Back", cfg.ActionMenuBack},
	{"Open / Close", cfg.ActionMenuToggle},
}

var gamepadButtonNames = map[ebiten.StandardGamepadButton]string{
	ebiten.StandardGamepadButtonLeftTop:     "D-Pad Up",
	ebiten.StandardGamepadButtonLeftBottom:  "D-Pad Down",
	ebiten.StandardGamepadButtonLeftLeft:    "D-Pad Left",
	ebiten.StandardGamepadButtonLeftRight:   "D-Pad Right",
	ebiten.StandardGamepadButtonRightBottom: "A / Cross",
	ebiten.StandardGamepadButtonRightRight:  "B / Circle",
	ebiten.StandardGamepadButtonCenterLeft:  "Back / Share",
}

// NewUpdateOverlay creates the system that declares the overlay menu each frame
func NewUpdateOverlay(renderer *ScreenRenderer) ecs.System {
	return func(e *ecs.ECS) {
		o := GetOrCreateOverlay(e, renderer)
		renderer.Begin()

		o.Menu.CheckKeys()
		declareOverlay(e, o)
		o.Menu.EndMenu()

		if o.Dirty {
			SaveCurrentSettings(o)
			o.Dirty = false
		}

		tps := ebiten.TPS()
		if tps <= 0 {
			tps = ebiten.DefaultTPS
		}
		dt := 1 / float32(tps)
		if o.Fade != nil {
			alpha, done := o.Fade.Update(dt)
			o.Alpha = alpha
			if done {
				o.Fade = nil
			}
		}
		o.Phase = math.Mod(o.Phase+o.Speed*float64(dt)*2*math.Pi, 2*math.Pi)
	}
}

// declareOverlay declares every submenu. Only the current one draws.
func declareOverlay(e *ecs.ECS, o *components.OverlayData) {
	m := o.Menu

	if m.CurrentMenu(menu.MainMenu) {
		m.Title(cfg.C.Title)
		m.Subtitle("main menu", true)
		m.MenuOption("Settings", menuSettings, "Audio, display and input options.")
		m.MenuOption("Showcase", menuShowcase, "Every kind of option the menu supports.")
		m.OptionPlus("About", aboutLines(o), menu.PlusOptions{
			Title:   "About " + cfg.C.Title,
			OnLeft:  func() { menu.Step(&o.PreviewPage, 0, len(cfg.Demo.AboutPages)-1, 1, true, false) },
			OnRight: func() { menu.Step(&o.PreviewPage, 0, len(cfg.Demo.AboutPages)-1, 1, false, true) },
		}, "Left and right turn the page.")
		if m.Option("Reload style", "Reads "+cfg.Demo.SettingsPath+" again. The new style shows from the next frame.") {
			m.ReadSettings()
		}
		if m.Option("Close") {
			m.CloseMenu()
		}
	}

	if m.CurrentMenu(menuSettings) {
		declareSettings(e, o)
	}
	if m.CurrentMenu(menuControls) {
		declareControls(e, o)
	}
	if m.CurrentMenu(menuShowcase) {
		declareShowcase(o)
	}
}

func declareSettings(e *ecs.ECS, o *components.OverlayData) {
	m := o.Menu
	m.Title("Settings")

	if m.FloatArray("SFX Volume", cfg.Demo.VolumeSteps, &o.VolumeIndex) {
		applyVolume(e, o)
		o.Dirty = true
	}
	if m.BoolOption("Mute", &o.Muted) {
		applyVolume(e, o)
		o.Dirty = true
	}
	if m.BoolOption("Fullscreen", &o.Fullscreen) {
		applyDisplay(o)
		o.Dirty = true
	}
	// Window size only matters outside fullscreen
	if !o.Fullscreen {
		if m.StringArray("Resolution", resolutionLabels(), &o.ResolutionIndex) {
			applyDisplay(o)
			o.Dirty = true
		}
	}
	if m.StringArray("Input", cfg.Demo.InputModes, &o.InputMode, "Which prompts the controls screen shows.") {
		o.Dirty = true
	}
	m.MenuOption("Controls", menuControls)
}

func declareControls(e *ecs.ECS, o *components.OverlayData) {
	m := o.Menu
	m.TitleScaled("Controls", 0.9)

	gamepad := o.InputMode == 1 || getOrCreateInput(e).LastInputMethod != components.InputKeyboard
	for _, row := range controlRows {
		m.Option(row.label, bindingHint(row.action, gamepad))
	}
}

func declareShowcase(o *components.OverlayData) {
	m := o.Menu
	m.TitleSprite("Showcase", cfg.Sprite{Dict: "commonmenu", Name: "gradient_nav"})
	m.Subtitle(fmt.Sprintf("depth %d", len(m.Path())-1), true)

	if m.IntOption("Count", &o.Count, 0, 10, 2, "Steps by two and wraps around at either end.") {
		o.Dirty = true
	}
	if m.FloatOption("Speed", &o.Speed, 0, 1, 0.05, "How fast the backdrop spins.") {
		o.Dirty = true
	}
	if m.IntArray("Difficulty", cfg.Demo.DifficultyLevels, &o.Difficulty) {
		o.Dirty = true
	}
	if m.BoolSpriteOption("Grid", o.ShowGrid, cfg.Menu.CheckboxOn, cfg.Menu.CheckboxOff, "Draws a grid behind the menu.") {
		o.ShowGrid = !o.ShowGrid
		o.Dirty = true
	}
	var none int
	m.StringArray("Empty list", nil, &none, "A list without values is shown but cannot change.")
	m.MenuOption("Nested", menuShowcase, "Opens this menu again, one level deeper.")
	m.Footer(cfg.DarkBlue)
}

// aboutLines builds the About pane for the current page
func aboutLines(o *components.OverlayData) []string {
	pages := cfg.Demo.AboutPages
	if len(pages) == 0 {
		return nil
	}
	page := min(max(o.PreviewPage, 0), len(pages)-1)
	return []string{
		menu.ImagePrefix + "commonmenu/previewW256H128",
		pages[page],
		"",
		fmt.Sprintf("Page %d / %d", page+1, len(pages)),
	}
}

func resolutionLabels() []string {
	labels := make([]string, len(cfg.Demo.Resolutions))
	for i, r := range cfg.Demo.Resolutions {
		labels[i] = r.Label
	}
	return labels
}

// bindingHint describes the inputs bound to an action
func bindingHint(action cfg.ActionID, gamepad bool) string {
	binding := Bindings[action]
	var names []string
	if gamepad {
		for _, btn := range binding.StandardGamepadButtons {
			if name, ok := gamepadButtonNames[btn]; ok {
				names = append(names, name)
			}
		}
	} else {
		for _, key := range binding.Keys {
			names = append(names, key.String())
		}
	}
	if len(names) == 0 {
		return "Unbound"
	}
	return strings.Join(names, ", ")
}

// overlayHint returns the prompt shown while the menu is closed
func overlayHint(method components.InputMethod) string {
	switch method {
	case components.InputPlayStation:
		return "Share: Open menu"
	case components.InputXbox:
		return "Back: Open menu"
	}
	return "F4: Open menu"
}

// NewDrawOverlay creates the renderer that presents the menu recorded during Update
func NewDrawOverlay(renderer *ScreenRenderer) func(*ecs.ECS, *ebiten.Image) {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		o := GetOrCreateOverlay(e, renderer)
		if o.Menu.IsOpen() {
			renderer.Present(screen, o.Alpha)
			return
		}

		hint := overlayHint(getOrCreateInput(e).LastInputMethod)
		height := screen.Bounds().Dy()
		text.Draw(screen, hint, fonts.Small.Get(), 12, height-12, cfg.White)
	}
}

// DrawBackdrop renders the scene the overlay is drawn on top of
func DrawBackdrop(e *ecs.ECS, screen *ebiten.Image) {
	width := float32(screen.Bounds().Dx())
	height := float32(screen.Bounds().Dy())
	vector.FillRect(screen, 0, 0, width, height, cfg.Grey, false)

	o, ok := components.Overlay.First(e.World)
	if !ok {
		return
	}
	overlay := components.Overlay.Get(o)

	if overlay.ShowGrid {
		const cell = 40
		for x := float32(0); x < width; x += cell {
			vector.StrokeLine(screen, x, 0, x, height, 1, cfg.DarkBlue, false)
		}
		for y := float32(0); y < height; y += cell {
			vector.StrokeLine(screen, 0, y, width, y, 1, cfg.DarkBlue, false)
		}
	}

	// Count squares orbit the center of the screen
	cx, cy := float64(width)*0.6, float64(height)/2
	radius := float64(height) / 4
	size := float32(8 * (overlay.Difficulty + 2))
	for i := 0; i < overlay.Count; i++ {
		angle := overlay.Phase + 2*math.Pi*float64(i)/float64(overlay.Count)
		x := float32(cx+radius*math.Cos(angle)) - size/2
		y := float32(cy+radius*math.Sin(angle)) - size/2
		vector.FillRect(screen, x, y, size, size, cfg.LightBlue, true)
	}
}

// GetOrCreateOverlay returns the singleton Overlay component, creating the menu on first use
func GetOrCreateOverlay(e *ecs.ECS, renderer *ScreenRenderer) *components.OverlayData {
	if entry, ok := components.Overlay.First(e.World); ok {
		return components.Overlay.Get(entry)
	}

	entry := e.World.Entry(e.World.Create(components.Overlay))
	components.Overlay.SetValue(entry, components.OverlayData{
		Alpha:           1,
		VolumeIndex:     cfg.Demo.DefaultVolumeIndex,
		ResolutionIndex: cfg.Demo.DefaultResolutionIndex,
		Speed:           cfg.Demo.DefaultSpeed,
	})
	o := components.Overlay.Get(entry)

	m := menu.New(renderer, menuInput{ecs: e}, menu.Setup{
		Settings: menu.FileSettings(cfg.Demo.SettingsPath),
	})
	m.RegisterOnOpen(func() {
		o.Alpha = 0
		o.Fade = gween.New(0, 1, fadeDuration, ease.OutQuad)
	})
	m.RegisterOnClose(func() {
		o.Fade = nil
		o.Alpha = 1
	})
	m.RegisterOnBeep(func(b menu.Beep) {
		PlayBeep(e, b)
	})
	o.Menu = m

	saved, err := LoadSettings()
	if err == nil && saved != nil {
		ApplySavedSettings(e, o, saved)
	} else {
		applyVolume(e, o)
	}

	// Pick up the style file before the first frame is drawn
	m.ReadSettings()
	return o
}
