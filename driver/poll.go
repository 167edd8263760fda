package driver

import (
	"github.com/automoto/roomrunner/components"
	"github.com/automoto/roomrunner/input"
	"github.com/hajimehoshi/ebiten/v2"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// Poll starts a new frame on snap and records what is held right now. The
// cursor is converted to world coordinates through camera.
func Poll(snap *input.Snapshot, b Bindings, camera *components.CameraData) {
	snap.Advance()

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for action, binding := range b.Actions {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				snap.Hold(action)
			}
		}
		for _, btn := range binding.MouseButtons {
			if ebiten.IsMouseButtonPressed(btn) {
				snap.Hold(action)
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					snap.Hold(action)
				}
			}
		}
	}

	// Merge the left stick into the move actions
	for _, gpID := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if horizontal < -b.AnalogDeadzone {
			snap.Hold(input.ActionMoveLeft)
		}
		if horizontal > b.AnalogDeadzone {
			snap.Hold(input.ActionMoveRight)
		}
	}

	mx, my := ebiten.CursorPosition()
	snap.CursorX = float64(mx)
	snap.CursorY = float64(my)
	if camera != nil {
		snap.CursorX += camera.Position.X
		snap.CursorY += camera.Position.Y
	}
}
