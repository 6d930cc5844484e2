package input

import (
	"fmt"
	"strings"
)

var keyNames = [keyCount]string{
	KeyUnknown:        "unknown",
	KeyA:              "a",
	KeyB:              "b",
	KeyC:              "c",
	KeyD:              "d",
	KeyE:              "e",
	KeyF:              "f",
	KeyG:              "g",
	KeyH:              "h",
	KeyI:              "i",
	KeyJ:              "j",
	KeyK:              "k",
	KeyL:              "l",
	KeyM:              "m",
	KeyN:              "n",
	KeyO:              "o",
	KeyP:              "p",
	KeyQ:              "q",
	KeyR:              "r",
	KeyS:              "s",
	KeyT:              "t",
	KeyU:              "u",
	KeyV:              "v",
	KeyW:              "w",
	KeyX:              "x",
	KeyY:              "y",
	KeyZ:              "z",
	Key0:              "0",
	Key1:              "1",
	Key2:              "2",
	Key3:              "3",
	Key4:              "4",
	Key5:              "5",
	Key6:              "6",
	Key7:              "7",
	Key8:              "8",
	Key9:              "9",
	KeySpace:          "space",
	KeyEnter:          "enter",
	KeyEscape:         "escape",
	KeyBackspace:      "backspace",
	KeyTab:            "tab",
	KeyDelete:         "delete",
	KeyInsert:         "insert",
	KeyHome:           "home",
	KeyEnd:            "end",
	KeyPageUp:         "page_up",
	KeyPageDown:       "page_down",
	KeyLeft:           "left",
	KeyRight:          "right",
	KeyUp:             "up",
	KeyDown:           "down",
	KeyShiftLeft:      "shift_left",
	KeyShiftRight:     "shift_right",
	KeyControlLeft:    "control_left",
	KeyControlRight:   "control_right",
	KeyAltLeft:        "alt_left",
	KeyAltRight:       "alt_right",
	KeyMetaLeft:       "meta_left",
	KeyMetaRight:      "meta_right",
	KeyCapsLock:       "caps_lock",
	KeyScrollLock:     "scroll_lock",
	KeyNumLock:        "num_lock",
	KeyPrintScreen:    "print_screen",
	KeyPause:          "pause",
	KeyMenu:           "menu",
	KeyApostrophe:     "apostrophe",
	KeyBackslash:      "backslash",
	KeyComma:          "comma",
	KeyEqual:          "equal",
	KeyBackquote:      "backquote",
	KeyBracketLeft:    "bracket_left",
	KeyBracketRight:   "bracket_right",
	KeyMinus:          "minus",
	KeyPeriod:         "period",
	KeySemicolon:      "semicolon",
	KeySlash:          "slash",
	KeyF1:             "f1",
	KeyF2:             "f2",
	KeyF3:             "f3",
	KeyF4:             "f4",
	KeyF5:             "f5",
	KeyF6:             "f6",
	KeyF7:             "f7",
	KeyF8:             "f8",
	KeyF9:             "f9",
	KeyF10:            "f10",
	KeyF11:            "f11",
	KeyF12:            "f12",
	KeyF13:            "f13",
	KeyF14:            "f14",
	KeyF15:            "f15",
	KeyF16:            "f16",
	KeyF17:            "f17",
	KeyF18:            "f18",
	KeyF19:            "f19",
	KeyF20:            "f20",
	KeyF21:            "f21",
	KeyF22:            "f22",
	KeyF23:            "f23",
	KeyF24:            "f24",
	KeyNumpad0:        "numpad_0",
	KeyNumpad1:        "numpad_1",
	KeyNumpad2:        "numpad_2",
	KeyNumpad3:        "numpad_3",
	KeyNumpad4:        "numpad_4",
	KeyNumpad5:        "numpad_5",
	KeyNumpad6:        "numpad_6",
	KeyNumpad7:        "numpad_7",
	KeyNumpad8:        "numpad_8",
	KeyNumpad9:        "numpad_9",
	KeyNumpadAdd:      "numpad_add",
	KeyNumpadSubtract: "numpad_subtract",
	KeyNumpadMultiply: "numpad_multiply",
	KeyNumpadDivide:   "numpad_divide",
	KeyNumpadDecimal:  "numpad_decimal",
	KeyNumpadEnter:    "numpad_enter",
	KeyNumpadEqual:    "numpad_equal",
}

var mouseButtonNames = []string{
	MouseButtonLeft:    "left",
	MouseButtonRight:   "right",
	MouseButtonMiddle:  "middle",
	MouseButtonBack:    "back",
	MouseButtonForward: "forward",
}

var buttonNames = []string{
	ButtonA:             "a",
	ButtonB:             "b",
	ButtonX:             "x",
	ButtonY:             "y",
	ButtonBack:          "back",
	ButtonSelect:        "select",
	ButtonStart:         "start",
	ButtonLeftStick:     "left_stick",
	ButtonRightStick:    "right_stick",
	ButtonLeftShoulder:  "left_shoulder",
	ButtonRightShoulder: "right_shoulder",
	ButtonUp:            "up",
	ButtonDown:          "down",
	ButtonLeft:          "left",
	ButtonRight:         "right",
}

var axisNames = []string{
	AxisLeftX:        "left_x",
	AxisLeftY:        "left_y",
	AxisRightX:       "right_x",
	AxisRightY:       "right_y",
	AxisLeftTrigger:  "left_trigger",
	AxisRightTrigger: "right_trigger",
}

// KeyCount is the number of named keys. Every Key below it has a name.
const KeyCount = int(keyCount)

func (k Key) String() string {
	if k >= 0 && k < keyCount {
		return keyNames[k]
	}
	return fmt.Sprintf("key(%d)", int(k))
}

func (b MouseButton) String() string {
	return nameOf(mouseButtonNames, int(b), "mouse_button")
}

func (b Button) String() string {
	return nameOf(buttonNames, int(b), "button")
}

func (a Axis) String() string {
	return nameOf(axisNames, int(a), "axis")
}

func nameOf(names []string, i int, kind string) string {
	if i >= 0 && i < len(names) {
		return names[i]
	}
	if i == -1 {
		return "none"
	}
	return fmt.Sprintf("%s(%d)", kind, i)
}

// ParseKey resolves a snake_case key name such as "space" or "shift_left".
func ParseKey(name string) (Key, error) {
	i, ok := indexOf(keyNames[:], name)
	if !ok {
		return KeyUnknown, fmt.Errorf("input: unknown key %q", name)
	}
	return Key(i), nil
}

func ParseMouseButton(name string) (MouseButton, error) {
	i, ok := indexOf(mouseButtonNames, name)
	if !ok {
		return MouseButtonNone, fmt.Errorf("input: unknown mouse button %q", name)
	}
	return MouseButton(i), nil
}

func ParseButton(name string) (Button, error) {
	i, ok := indexOf(buttonNames, name)
	if !ok {
		return ButtonNone, fmt.Errorf("input: unknown button %q", name)
	}
	return Button(i), nil
}

func ParseAxis(name string) (Axis, error) {
	i, ok := indexOf(axisNames, name)
	if !ok {
		return AxisNone, fmt.Errorf("input: unknown axis %q", name)
	}
	return Axis(i), nil
}

func indexOf(names []string, name string) (int, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return 0, false
	}
	for i, n := range names {
		if n == name {
			return i, true
		}
	}
	return 0, false
}
