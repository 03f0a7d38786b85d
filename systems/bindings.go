package systems

import (
	cfg "github.com/automoto/nativemenu/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// InputBinding represents the keys and buttons bound to an action
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// Bindings maps every menu action to its physical inputs
var Bindings map[cfg.ActionID]InputBinding

func init() {
	Bindings = map[cfg.ActionID]InputBinding{
		cfg.ActionMenuUp: {
			Keys: []ebiten.Key{ebiten.KeyUp, ebiten.KeyNumpad8},
			// D-pad Up (analog stick handled separately)
			StandardGamepadButtons: []ebiten.StandardGamepadButton{
				ebiten.StandardGamepadButtonLeftTop,
			},
		},
		cfg.ActionMenuDown: {
			Keys: []ebiten.Key{ebiten.KeyDown, ebiten.KeyNumpad2},
			StandardGamepadButtons: []ebiten.StandardGamepadButton{
				ebiten.StandardGamepadButtonLeftBottom,
			},
		},
		cfg.ActionMenuLeft: {
			Keys: []ebiten.Key{ebiten.KeyLeft, ebiten.KeyNumpad4},
			StandardGamepadButtons: []ebiten.StandardGamepadButton{
				ebiten.StandardGamepadButtonLeftLeft,
			},
		},
		cfg.ActionMenuRight: {
			Keys: []ebiten.Key{ebiten.KeyRight, ebiten.KeyNumpad6},
			StandardGamepadButtons: []ebiten.StandardGamepadButton{
				ebiten.StandardGamepadButtonLeftRight,
			},
		},
		cfg.ActionMenuSelect: {
			Keys: []ebiten.Key{ebiten.KeyEnter, ebiten.KeyNumpad5},
			// A / Cross button
			StandardGamepadButtons: []ebiten.StandardGamepadButton{
				ebiten.StandardGamepadButtonRightBottom,
			},
		},
		cfg.ActionMenuBack: {
			Keys: []ebiten.Key{ebiten.KeyBackspace, ebiten.KeyNumpad0},
			// B / Circle button
			StandardGamepadButtons: []ebiten.StandardGamepadButton{
				ebiten.StandardGamepadButtonRightRight,
			},
		},
		cfg.ActionMenuToggle: {
			Keys: []ebiten.Key{ebiten.KeyF4},
			// Back / Share button
			StandardGamepadButtons: []ebiten.StandardGamepadButton{
				ebiten.StandardGamepadButtonCenterLeft,
			},
		},
	}
}
