package hostinput

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/zeninput/input"
)

var keyTable = map[ebiten.Key]input.Key{
	ebiten.KeyA: input.KeyA,
	ebiten.KeyB: input.KeyB,
	ebiten.KeyC: input.KeyC,
	ebiten.KeyD: input.KeyD,
	ebiten.KeyE: input.KeyE,
	ebiten.KeyF: input.KeyF,
	ebiten.KeyG: input.KeyG,
	ebiten.KeyH: input.KeyH,
	ebiten.KeyI: input.KeyI,
	ebiten.KeyJ: input.KeyJ,
	ebiten.KeyK: input.KeyK,
	ebiten.KeyL: input.KeyL,
	ebiten.KeyM: input.KeyM,
	ebiten.KeyN: input.KeyN,
	ebiten.KeyO: input.KeyO,
	ebiten.KeyP: input.KeyP,
	ebiten.KeyQ: input.KeyQ,
	ebiten.KeyR: input.KeyR,
	ebiten.KeyS: input.KeyS,
	ebiten.KeyT: input.KeyT,
	ebiten.KeyU: input.KeyU,
	ebiten.KeyV: input.KeyV,
	ebiten.KeyW: input.KeyW,
	ebiten.KeyX: input.KeyX,
	ebiten.KeyY: input.KeyY,
	ebiten.KeyZ: input.KeyZ,

	ebiten.KeyDigit0: input.Key0,
	ebiten.KeyDigit1: input.Key1,
	ebiten.KeyDigit2: input.Key2,
	ebiten.KeyDigit3: input.Key3,
	ebiten.KeyDigit4: input.Key4,
	ebiten.KeyDigit5: input.Key5,
	ebiten.KeyDigit6: input.Key6,
	ebiten.KeyDigit7: input.Key7,
	ebiten.KeyDigit8: input.Key8,
	ebiten.KeyDigit9: input.Key9,

	ebiten.KeySpace:     input.KeySpace,
	ebiten.KeyEnter:     input.KeyEnter,
	ebiten.KeyEscape:    input.KeyEscape,
	ebiten.KeyBackspace: input.KeyBackspace,
	ebiten.KeyTab:       input.KeyTab,
	ebiten.KeyDelete:    input.KeyDelete,
	ebiten.KeyInsert:    input.KeyInsert,
	ebiten.KeyHome:      input.KeyHome,
	ebiten.KeyEnd:       input.KeyEnd,
	ebiten.KeyPageUp:    input.KeyPageUp,
	ebiten.KeyPageDown:  input.KeyPageDown,

	ebiten.KeyArrowLeft:  input.KeyLeft,
	ebiten.KeyArrowRight: input.KeyRight,
	ebiten.KeyArrowUp:    input.KeyUp,
	ebiten.KeyArrowDown:  input.KeyDown,

	ebiten.KeyShiftLeft:    input.KeyShiftLeft,
	ebiten.KeyShiftRight:   input.KeyShiftRight,
	ebiten.KeyControlLeft:  input.KeyControlLeft,
	ebiten.KeyControlRight: input.KeyControlRight,
	ebiten.KeyAltLeft:      input.KeyAltLeft,
	ebiten.KeyAltRight:     input.KeyAltRight,
	ebiten.KeyMetaLeft:     input.KeyMetaLeft,
	ebiten.KeyMetaRight:    input.KeyMetaRight,

	ebiten.KeyCapsLock:    input.KeyCapsLock,
	ebiten.KeyScrollLock:  input.KeyScrollLock,
	ebiten.KeyNumLock:     input.KeyNumLock,
	ebiten.KeyPrintScreen: input.KeyPrintScreen,
	ebiten.KeyPause:       input.KeyPause,
	ebiten.KeyContextMenu: input.KeyMenu,

	ebiten.KeyQuote:        input.KeyApostrophe,
	ebiten.KeyBackslash:    input.KeyBackslash,
	ebiten.KeyComma:        input.KeyComma,
	ebiten.KeyEqual:        input.KeyEqual,
	ebiten.KeyBackquote:    input.KeyBackquote,
	ebiten.KeyBracketLeft:  input.KeyBracketLeft,
	ebiten.KeyBracketRight: input.KeyBracketRight,
	ebiten.KeyMinus:        input.KeyMinus,
	ebiten.KeyPeriod:       input.KeyPeriod,
	ebiten.KeySemicolon:    input.KeySemicolon,
	ebiten.KeySlash:        input.KeySlash,

	ebiten.KeyF1:  input.KeyF1,
	ebiten.KeyF2:  input.KeyF2,
	ebiten.KeyF3:  input.KeyF3,
	ebiten.KeyF4:  input.KeyF4,
	ebiten.KeyF5:  input.KeyF5,
	ebiten.KeyF6:  input.KeyF6,
	ebiten.KeyF7:  input.KeyF7,
	ebiten.KeyF8:  input.KeyF8,
	ebiten.KeyF9:  input.KeyF9,
	ebiten.KeyF10: input.KeyF10,
	ebiten.KeyF11: input.KeyF11,
	ebiten.KeyF12: input.KeyF12,
	ebiten.KeyF13: input.KeyF13,
	ebiten.KeyF14: input.KeyF14,
	ebiten.KeyF15: input.KeyF15,
	ebiten.KeyF16: input.KeyF16,
	ebiten.KeyF17: input.KeyF17,
	ebiten.KeyF18: input.KeyF18,
	ebiten.KeyF19: input.KeyF19,
	ebiten.KeyF20: input.KeyF20,
	ebiten.KeyF21: input.KeyF21,
	ebiten.KeyF22: input.KeyF22,
	ebiten.KeyF23: input.KeyF23,
	ebiten.KeyF24: input.KeyF24,

	ebiten.KeyNumpad0:        input.KeyNumpad0,
	ebiten.KeyNumpad1:        input.KeyNumpad1,
	ebiten.KeyNumpad2:        input.KeyNumpad2,
	ebiten.KeyNumpad3:        input.KeyNumpad3,
	ebiten.KeyNumpad4:        input.KeyNumpad4,
	ebiten.KeyNumpad5:        input.KeyNumpad5,
	ebiten.KeyNumpad6:        input.KeyNumpad6,
	ebiten.KeyNumpad7:        input.KeyNumpad7,
	ebiten.KeyNumpad8:        input.KeyNumpad8,
	ebiten.KeyNumpad9:        input.KeyNumpad9,
	ebiten.KeyNumpadAdd:      input.KeyNumpadAdd,
	ebiten.KeyNumpadSubtract: input.KeyNumpadSubtract,
	ebiten.KeyNumpadMultiply: input.KeyNumpadMultiply,
	ebiten.KeyNumpadDivide:   input.KeyNumpadDivide,
	ebiten.KeyNumpadDecimal:  input.KeyNumpadDecimal,
	ebiten.KeyNumpadEnter:    input.KeyNumpadEnter,
	ebiten.KeyNumpadEqual:    input.KeyNumpadEqual,
}

var mouseTable = [...]struct {
	host ebiten.MouseButton
	code input.MouseButton
}{
	{ebiten.MouseButtonLeft, input.MouseButtonLeft},
	{ebiten.MouseButtonRight, input.MouseButtonRight},
	{ebiten.MouseButtonMiddle, input.MouseButtonMiddle},
	{ebiten.MouseButton3, input.MouseButtonBack},
	{ebiten.MouseButton4, input.MouseButtonForward},
}

var buttonTable = [...]struct {
	host ebiten.StandardGamepadButton
	code input.Button
}{
	{ebiten.StandardGamepadButtonRightBottom, input.ButtonA},
	{ebiten.StandardGamepadButtonRightRight, input.ButtonB},
	{ebiten.StandardGamepadButtonRightLeft, input.ButtonX},
	{ebiten.StandardGamepadButtonRightTop, input.ButtonY},
	{ebiten.StandardGamepadButtonCenterLeft, input.ButtonBack},
	{ebiten.StandardGamepadButtonCenterCenter, input.ButtonSelect},
	{ebiten.StandardGamepadButtonCenterRight, input.ButtonStart},
	{ebiten.StandardGamepadButtonLeftStick, input.ButtonLeftStick},
	{ebiten.StandardGamepadButtonRightStick, input.ButtonRightStick},
	{ebiten.StandardGamepadButtonFrontTopLeft, input.ButtonLeftShoulder},
	{ebiten.StandardGamepadButtonFrontTopRight, input.ButtonRightShoulder},
	{ebiten.StandardGamepadButtonLeftTop, input.ButtonUp},
	{ebiten.StandardGamepadButtonLeftBottom, input.ButtonDown},
	{ebiten.StandardGamepadButtonLeftLeft, input.ButtonLeft},
	{ebiten.StandardGamepadButtonLeftRight, input.ButtonRight},
}

var axisTable = [...]struct {
	host ebiten.StandardGamepadAxis
	code input.Axis
}{
	{ebiten.StandardGamepadAxisLeftStickHorizontal, input.AxisLeftX},
	{ebiten.StandardGamepadAxisLeftStickVertical, input.AxisLeftY},
	{ebiten.StandardGamepadAxisRightStickHorizontal, input.AxisRightX},
	{ebiten.StandardGamepadAxisRightStickVertical, input.AxisRightY},
}

// Analog triggers are buttons in the standard layout; their value is read as
// an axis.
var triggerTable = [...]struct {
	host ebiten.StandardGamepadButton
	code input.Axis
}{
	{ebiten.StandardGamepadButtonFrontBottomLeft, input.AxisLeftTrigger},
	{ebiten.StandardGamepadButtonFrontBottomRight, input.AxisRightTrigger},
}

// TranslateKey maps an ebiten key to its input code. Unmapped keys return
// false.
func TranslateKey(k ebiten.Key) (input.Key, bool) {
	code, ok := keyTable[k]
	return code, ok
}
