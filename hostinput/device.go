package hostinput

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Device is the slice of ebiten's input API the Bridge polls.
type Device interface {
	AppendJustPressedKeys(keys []ebiten.Key) []ebiten.Key
	AppendJustReleasedKeys(keys []ebiten.Key) []ebiten.Key
	IsMouseButtonPressed(b ebiten.MouseButton) bool
	Wheel() (float64, float64)
	AppendGamepadIDs(ids []ebiten.GamepadID) []ebiten.GamepadID
	GamepadName(id ebiten.GamepadID) string
	IsStandardGamepadLayoutAvailable(id ebiten.GamepadID) bool
	IsStandardGamepadButtonPressed(id ebiten.GamepadID, b ebiten.StandardGamepadButton) bool
	StandardGamepadButtonValue(id ebiten.GamepadID, b ebiten.StandardGamepadButton) float64
	StandardGamepadAxisValue(id ebiten.GamepadID, a ebiten.StandardGamepadAxis) float64
}

// Ebiten reads the live ebiten input state. Only use it from the game's
// Update.
type Ebiten struct{}

func (Ebiten) AppendJustPressedKeys(keys []ebiten.Key) []ebiten.Key {
	return inpututil.AppendJustPressedKeys(keys)
}

func (Ebiten) AppendJustReleasedKeys(keys []ebiten.Key) []ebiten.Key {
	return inpututil.AppendJustReleasedKeys(keys)
}

func (Ebiten) IsMouseButtonPressed(b ebiten.MouseButton) bool { return ebiten.IsMouseButtonPressed(b) }

func (Ebiten) Wheel() (float64, float64) { return ebiten.Wheel() }

func (Ebiten) AppendGamepadIDs(ids []ebiten.GamepadID) []ebiten.GamepadID {
	return ebiten.AppendGamepadIDs(ids)
}

func (Ebiten) GamepadName(id ebiten.GamepadID) string { return ebiten.GamepadName(id) }

func (Ebiten) IsStandardGamepadLayoutAvailable(id ebiten.GamepadID) bool {
	return ebiten.IsStandardGamepadLayoutAvailable(id)
}

func (Ebiten) IsStandardGamepadButtonPressed(id ebiten.GamepadID, b ebiten.StandardGamepadButton) bool {
	return ebiten.IsStandardGamepadButtonPressed(id, b)
}

func (Ebiten) StandardGamepadButtonValue(id ebiten.GamepadID, b ebiten.StandardGamepadButton) float64 {
	return ebiten.StandardGamepadButtonValue(id, b)
}

func (Ebiten) StandardGamepadAxisValue(id ebiten.GamepadID, a ebiten.StandardGamepadAxis) float64 {
	return ebiten.StandardGamepadAxisValue(id, a)
}
