package systems

import (
	"strings"

	"github.com/automoto/nativemenu/components"
	cfg "github.com/automoto/nativemenu/config"
	"github.com/automoto/nativemenu/menu"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// Cache controller types to avoid string allocation every frame
var controllerTypeCache = make(map[ebiten.GamepadID]components.InputMethod)

// controlActions maps menu controls to the actions that drive them
var controlActions = [menu.ControlCount]cfg.ActionID{
	menu.ControlUp:     cfg.ActionMenuUp,
	menu.ControlDown:   cfg.ActionMenuDown,
	menu.ControlLeft:   cfg.ActionMenuLeft,
	menu.ControlRight:  cfg.ActionMenuRight,
	menu.ControlAccept: cfg.ActionMenuSelect,
	menu.ControlBack:   cfg.ActionMenuBack,
	menu.ControlToggle: cfg.ActionMenuToggle,
}

// UpdateInput polls raw input and updates the Input component.
// Must run BEFORE UpdateOverlay in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	input.Current = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	// Read analog stick state (with deadzone)
	analogLeft, analogRight, analogUp, analogDown, analogGpID := getAnalogStickState(gamepadIDs)

	// Track which input method was used this frame
	var keyboardUsed, gamepadUsed bool
	var activeGamepadID ebiten.GamepadID

	for actionID, binding := range Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
				keyboardUsed = true
			}
		}

		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
					gamepadUsed = true
					activeGamepadID = gpID
				}
			}
		}
	}

	// Merge analog stick into directional actions
	for _, dir := range []struct {
		active bool
		action cfg.ActionID
	}{
		{analogLeft, cfg.ActionMenuLeft},
		{analogRight, cfg.ActionMenuRight},
		{analogUp, cfg.ActionMenuUp},
		{analogDown, cfg.ActionMenuDown},
	} {
		if dir.active {
			input.Current[dir.action] = true
			gamepadUsed = true
			activeGamepadID = analogGpID
		}
	}

	// Gamepad takes priority if both were used
	if gamepadUsed {
		input.LastInputMethod = getControllerType(activeGamepadID)
	} else if keyboardUsed {
		input.LastInputMethod = components.InputKeyboard
	}
}

// getControllerType returns cached controller type, detecting on first access
func getControllerType(gpID ebiten.GamepadID) components.InputMethod {
	if method, ok := controllerTypeCache[gpID]; ok {
		return method
	}

	name := strings.ToLower(ebiten.GamepadName(gpID))
	var method components.InputMethod
	if strings.Contains(name, "ps4") || strings.Contains(name, "ps5") ||
		strings.Contains(name, "playstation") || strings.Contains(name, "dualshock") ||
		strings.Contains(name, "dualsense") {
		method = components.InputPlayStation
	} else {
		// Default gamepad to Xbox-style
		method = components.InputXbox
	}

	controllerTypeCache[gpID] = method
	return method
}

// getAnalogStickState reads the left analog stick from all gamepads.
// Returns directional states based on deadzone threshold and the active gamepad ID
func getAnalogStickState(gamepads []ebiten.GamepadID) (left, right, up, down bool, activeGpID ebiten.GamepadID) {
	deadzone := cfg.Input.AnalogDeadzone

	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}

		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		vertical := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)

		if horizontal < -deadzone {
			left = true
			activeGpID = gpID
		}
		if horizontal > deadzone {
			right = true
			activeGpID = gpID
		}
		if vertical < -deadzone {
			up = true
			activeGpID = gpID
		}
		if vertical > deadzone {
			down = true
			activeGpID = gpID
		}
	}

	return
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
	}
	return components.Input.Get(entry)
}

// IsActionPressed reports whether any device holds the action this frame
func IsActionPressed(input *components.InputData, id cfg.ActionID) bool {
	if id < 0 || id >= cfg.ActionCount {
		return false
	}
	return input.Current[id]
}

// menuInput exposes the polled actions to the menu's debouncer
type menuInput struct {
	ecs *ecs.ECS
}

func (m menuInput) Pressed(c menu.Control) bool {
	if c < 0 || c >= menu.ControlCount {
		return false
	}
	return IsActionPressed(getOrCreateInput(m.ecs), controlActions[c])
}
