package components

import (
	cfg "github.com/automoto/nativemenu/config"
	"github.com/yohamta/donburi"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputXbox
	InputPlayStation
)

// InputData stores this frame's pressed state for all actions.
// Every device is merged into one state; the menu derives its own edges.
type InputData struct {
	Current         [cfg.ActionCount]bool // Current frame's Pressed state
	LastInputMethod InputMethod           // Most recently used input method
}

var Input = donburi.NewComponentType[InputData]()
