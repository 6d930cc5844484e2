package input

import (
	"time"

	"github.com/milk9111/zeninput/common"
)

// DisconnectedName is the display name of an empty controller slot.
const DisconnectedName = "disconnected"

// KeyboardState is the keyboard snapshot at one tick. Timestamp holds the
// time each key last went down.
type KeyboardState struct {
	Pressed   [MaxKeyboardKeys]bool
	Down      [MaxKeyboardKeys]bool
	Released  [MaxKeyboardKeys]bool
	Timestamp [MaxKeyboardKeys]time.Duration
}

type MouseState struct {
	Pressed   [MaxMouseButtons]bool
	Down      [MaxMouseButtons]bool
	Released  [MaxMouseButtons]bool
	Timestamp [MaxMouseButtons]time.Duration

	// Wheel is the last scroll delta seen this tick, reset every tick.
	Wheel common.Point
}

// ControllerState is the snapshot of one logical controller slot. ID is the
// stable identity the host reported on connect.
type ControllerState struct {
	ID        string
	Name      string
	Connected bool

	Pressed  [MaxControllerButtons]bool
	Down     [MaxControllerButtons]bool
	Released [MaxControllerButtons]bool
	Axis     [MaxControllerAxes]float64

	ButtonTimestamp [MaxControllerButtons]time.Duration
	AxisTimestamp   [MaxControllerAxes]time.Duration
}

func emptyControllerState() ControllerState {
	return ControllerState{Name: DisconnectedName}
}

func (c *ControllerState) clear() {
	*c = emptyControllerState()
}

// State aggregates every device snapshot for one tick.
type State struct {
	Keyboard    KeyboardState
	Mouse       MouseState
	Controllers [MaxControllers]ControllerState
}

func newState() State {
	var s State
	for i := range s.Controllers {
		s.Controllers[i].clear()
	}
	return s
}

// clearTransient drops the per-tick edges while keeping held buttons, axis
// values and connection state.
func (s *State) clearTransient() {
	s.Keyboard.Pressed = [MaxKeyboardKeys]bool{}
	s.Keyboard.Released = [MaxKeyboardKeys]bool{}

	s.Mouse.Pressed = [MaxMouseButtons]bool{}
	s.Mouse.Released = [MaxMouseButtons]bool{}
	s.Mouse.Wheel = common.Point{}

	for i := range s.Controllers {
		c := &s.Controllers[i]
		if !c.Connected {
			c.Name = DisconnectedName
		}
		c.Pressed = [MaxControllerButtons]bool{}
		c.Released = [MaxControllerButtons]bool{}
	}
}
