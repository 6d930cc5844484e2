package input

// Capacities of the dense state arrays. Codes at or above these limits are
// treated as out of range everywhere.
const (
	MaxKeyboardKeys      = 255
	MaxMouseButtons      = 16
	MaxControllerButtons = 64
	MaxControllerAxes    = 16
	MaxControllers       = 8
)

// Key is a keyboard key already translated out of the host's key space.
type Key int

const (
	KeyUnknown Key = iota
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	KeySpace
	KeyEnter
	KeyEscape
	KeyBackspace
	KeyTab
	KeyDelete
	KeyInsert
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyShiftLeft
	KeyShiftRight
	KeyControlLeft
	KeyControlRight
	KeyAltLeft
	KeyAltRight
	KeyMetaLeft
	KeyMetaRight
	KeyCapsLock
	KeyScrollLock
	KeyNumLock
	KeyPrintScreen
	KeyPause
	KeyMenu
	KeyApostrophe
	KeyBackslash
	KeyComma
	KeyEqual
	KeyBackquote
	KeyBracketLeft
	KeyBracketRight
	KeyMinus
	KeyPeriod
	KeySemicolon
	KeySlash
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyF13
	KeyF14
	KeyF15
	KeyF16
	KeyF17
	KeyF18
	KeyF19
	KeyF20
	KeyF21
	KeyF22
	KeyF23
	KeyF24
	KeyNumpad0
	KeyNumpad1
	KeyNumpad2
	KeyNumpad3
	KeyNumpad4
	KeyNumpad5
	KeyNumpad6
	KeyNumpad7
	KeyNumpad8
	KeyNumpad9
	KeyNumpadAdd
	KeyNumpadSubtract
	KeyNumpadMultiply
	KeyNumpadDivide
	KeyNumpadDecimal
	KeyNumpadEnter
	KeyNumpadEqual

	keyCount
)

// MouseButton is a mouse button code.
type MouseButton int

const (
	MouseButtonNone MouseButton = iota - 1
	MouseButtonLeft
	MouseButtonRight
	MouseButtonMiddle
	MouseButtonBack
	MouseButtonForward
)

// Button is a controller button in the standard layout.
type Button int

const (
	ButtonNone Button = iota - 1
	ButtonA
	ButtonB
	ButtonX
	ButtonY
	ButtonBack
	ButtonSelect
	ButtonStart
	ButtonLeftStick
	ButtonRightStick
	ButtonLeftShoulder
	ButtonRightShoulder
	ButtonUp
	ButtonDown
	ButtonLeft
	ButtonRight
)

// Axis is a controller analog axis. Triggers report 0..1, sticks -1..1.
type Axis int

const (
	AxisNone Axis = iota - 1
	AxisLeftX
	AxisLeftY
	AxisRightX
	AxisRightY
	AxisLeftTrigger
	AxisRightTrigger
)

func (k Key) valid() bool         { return k >= 0 && k < MaxKeyboardKeys }
func (b MouseButton) valid() bool { return b >= 0 && b < MaxMouseButtons }
func (b Button) valid() bool      { return b >= 0 && b < MaxControllerButtons }
func (a Axis) valid() bool        { return a >= 0 && a < MaxControllerAxes }

func validSlot(slot int) bool { return slot >= 0 && slot < MaxControllers }
