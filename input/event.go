package input

import "time"

// Event is a raw device event already translated into this package's codes.
// The set of event types is closed.
type Event interface {
	isEvent()
}

type KeyEvent struct {
	Key  Key
	Down bool
	Time time.Duration
}

type MouseButtonEvent struct {
	Button MouseButton
	Down   bool
	Time   time.Duration
}

type MouseScrollEvent struct {
	DX, DY int
}

type ControllerConnectEvent struct {
	ID   string
	Name string
}

type ControllerDisconnectEvent struct {
	ID string
}

type ControllerButtonEvent struct {
	ID     string
	Button Button
	Down   bool
	Time   time.Duration
}

type ControllerAxisEvent struct {
	ID    string
	Axis  Axis
	Value float64
	Time  time.Duration
}

func (KeyEvent) isEvent()                  {}
func (MouseButtonEvent) isEvent()          {}
func (MouseScrollEvent) isEvent()          {}
func (ControllerConnectEvent) isEvent()    {}
func (ControllerDisconnectEvent) isEvent() {}
func (ControllerButtonEvent) isEvent()     {}
func (ControllerAxisEvent) isEvent()       {}
