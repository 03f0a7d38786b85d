// Package menu implements an immediate-mode menu overlay.
//
// Callers rebuild the whole menu every frame:
//
//	m.CheckKeys()
//	if m.CurrentMenu(menu.MainMenu) {
//		m.Title("Trainer")
//		m.BoolOption("God mode", &god)
//		m.MenuOption("Vehicles", "vehicles")
//	}
//	if m.CurrentMenu("vehicles") {
//		m.Title("Vehicles")
//		m.IntOption("Count", &count, 0, 10, 1)
//	}
//	m.EndMenu()
//
// The menu keeps navigation state between frames while the option list itself
// is transient. Drawing goes through a Renderer supplied by the host.
package menu

import (
	"image/color"

	cfg "github.com/automoto/nativemenu/config"
)

// Sprite names a texture inside a texture dictionary
type Sprite = cfg.Sprite

// Justify controls which point of the text the x coordinate anchors
type Justify int

const (
	JustifyLeft Justify = iota
	JustifyCenter
	JustifyRight
)

// Measurer measures text width in normalized screen units
type Measurer interface {
	MeasureText(text string, scale float64, font int) float64
}

// Renderer is the host drawing API. All coordinates are normalized (0.0 - 1.0)
// with the origin in the top-left corner. Rects and sprites are positioned by
// their top-left corner; sprites rotate around their center.
type Renderer interface {
	Measurer
	DrawText(text string, font int, x, y, scale float64, c color.RGBA, justify Justify)
	DrawRect(x, y, w, h float64, c color.RGBA)
	DrawSprite(sprite Sprite, x, y, w, h, rotation float64, c color.RGBA)
}

// Input reports whether the physical input behind a control is held this frame
type Input interface {
	Pressed(c Control) bool
}

// SettingsSource supplies a menu style, typically read from a settings file
type SettingsSource func() (cfg.MenuConfig, error)

// FileSettings returns a SettingsSource backed by a yaml settings file
func FileSettings(path string) SettingsSource {
	return func() (cfg.MenuConfig, error) {
		return cfg.LoadMenuSettings(path)
	}
}

// aspectRatio returns the host's width/height ratio when the renderer exposes one
func aspectRatio(r Renderer) float64 {
	if a, ok := r.(interface{ AspectRatio() float64 }); ok {
		if v := a.AspectRatio(); v > 0 {
			return v
		}
	}
	return 16.0 / 9.0
}
