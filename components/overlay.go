package components

import (
	"github.com/automoto/nativemenu/menu"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// OverlayData stores the overlay menu and the values its options are bound to
type OverlayData struct {
	Menu  *menu.Menu
	Fade  *gween.Tween // Runs while the overlay fades in
	Alpha float32      // Current overlay opacity
	Phase float64      // Backdrop animation phase, advanced by Speed

	// Settings submenu
	VolumeIndex     int
	Muted           bool
	Fullscreen      bool
	ResolutionIndex int
	InputMode       int // 0 = Keyboard, 1 = Controller

	// Showcase submenu
	Count       int
	Speed       float64
	Difficulty  int
	ShowGrid    bool
	PreviewPage int

	Dirty bool // Settings changed since the last save
}

// Overlay is the component type for the overlay menu state
var Overlay = donburi.NewComponentType[OverlayData]()
