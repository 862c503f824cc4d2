package scenes

import (
	"github.com/automoto/escape-the-maze/core"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionAttack
	ActionInteract
	ActionRetry
	ActionToggleOverlay
	ActionCheatKeys
	ActionCheatHeal
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents a single key or button binding for an action
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// Bindings maps every action to its keys and gamepad buttons.
var Bindings = map[ActionID]InputBinding{
	ActionMoveLeft: {
		Keys:                   []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftLeft},
	},
	ActionMoveRight: {
		Keys:                   []ebiten.Key{ebiten.KeyRight, ebiten.KeyD},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftRight},
	},
	ActionMoveUp: {
		Keys:                   []ebiten.Key{ebiten.KeyUp, ebiten.KeyW},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftTop},
	},
	ActionMoveDown: {
		Keys:                   []ebiten.Key{ebiten.KeyDown, ebiten.KeyS},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftBottom},
	},
	ActionAttack: {
		Keys: []ebiten.Key{ebiten.KeyJ, ebiten.KeySpace},
		// X / Square button
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightLeft},
	},
	ActionInteract: {
		Keys: []ebiten.Key{ebiten.KeyE, ebiten.KeyEnter},
		// A / Cross button
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom},
	},
	ActionRetry: {
		Keys:                   []ebiten.Key{ebiten.KeyR},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterRight},
	},
	ActionToggleOverlay: {Keys: []ebiten.Key{ebiten.KeyF1}},
	ActionCheatKeys:     {Keys: []ebiten.Key{ebiten.KeyK}},
	ActionCheatHeal:     {Keys: []ebiten.Key{ebiten.KeyH}},
}

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

func pressed(action ActionID) bool {
	binding := Bindings[action]
	for _, key := range binding.Keys {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	for _, id := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		for _, btn := range binding.StandardGamepadButtons {
			if ebiten.IsStandardGamepadButtonPressed(id, btn) {
				return true
			}
		}
	}
	return false
}

func justPressed(action ActionID) bool {
	binding := Bindings[action]
	for _, key := range binding.Keys {
		if inpututil.IsKeyJustPressed(key) {
			return true
		}
	}
	for _, id := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		for _, btn := range binding.StandardGamepadButtons {
			if inpututil.IsStandardGamepadButtonJustPressed(id, btn) {
				return true
			}
		}
	}
	return false
}

// pollInput reads this frame's keyboard and gamepad state. Attack and
// interact fire on the press, movement while held.
func pollInput() core.InputAction {
	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	var in core.InputAction
	if pressed(ActionMoveLeft) {
		in.MoveX--
	}
	if pressed(ActionMoveRight) {
		in.MoveX++
	}
	if pressed(ActionMoveUp) {
		in.MoveY--
	}
	if pressed(ActionMoveDown) {
		in.MoveY++
	}
	in.Attack = justPressed(ActionAttack)
	in.Interact = justPressed(ActionInteract)
	return in
}
