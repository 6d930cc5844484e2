package input

import (
	"log"
	"time"

	"github.com/milk9111/zeninput/common"
)

// Current is the snapshot for this tick. Treat it as read-only.
func (s *System) Current() *State { return &s.curr }

// Last is the snapshot for the previous tick. Treat it as read-only.
func (s *System) Last() *State { return &s.last }

func (s *System) KeyPressed(k Key) bool  { return k.valid() && s.curr.Keyboard.Pressed[k] }
func (s *System) KeyDown(k Key) bool     { return k.valid() && s.curr.Keyboard.Down[k] }
func (s *System) KeyReleased(k Key) bool { return k.valid() && s.curr.Keyboard.Released[k] }

// KeyTimestamp is when k last went down, or 0 if it never has.
func (s *System) KeyTimestamp(k Key) time.Duration {
	if !k.valid() {
		return 0
	}
	return s.curr.Keyboard.Timestamp[k]
}

func (s *System) MousePressed(b MouseButton) bool  { return b.valid() && s.curr.Mouse.Pressed[b] }
func (s *System) MouseDown(b MouseButton) bool     { return b.valid() && s.curr.Mouse.Down[b] }
func (s *System) MouseReleased(b MouseButton) bool { return b.valid() && s.curr.Mouse.Released[b] }

func (s *System) MouseWheel() common.Point { return s.curr.Mouse.Wheel }

func (s *System) ButtonPressed(slot int, b Button) bool {
	return validSlot(slot) && b.valid() && s.curr.Controllers[slot].Pressed[b]
}

func (s *System) ButtonDown(slot int, b Button) bool {
	return validSlot(slot) && b.valid() && s.curr.Controllers[slot].Down[b]
}

func (s *System) ButtonReleased(slot int, b Button) bool {
	return validSlot(slot) && b.valid() && s.curr.Controllers[slot].Released[b]
}

func (s *System) AxisValue(slot int, a Axis) float64 {
	if !validSlot(slot) || !a.valid() {
		return 0
	}
	return s.curr.Controllers[slot].Axis[a]
}

func (s *System) LastAxisValue(slot int, a Axis) float64 {
	if !validSlot(slot) || !a.valid() {
		return 0
	}
	return s.last.Controllers[slot].Axis[a]
}

// Controller returns a copy of the slot's current state. Out of range or
// disconnected slots yield an empty disconnected state.
func (s *System) Controller(slot int) ControllerState {
	if !validSlot(slot) {
		log.Printf("Input: controller slot %d out of range", slot)
		return emptyControllerState()
	}
	if !s.curr.Controllers[slot].Connected {
		return emptyControllerState()
	}
	return s.curr.Controllers[slot]
}

// AxisCheck reads a virtual axis from two keys. A key pressed this tick wins
// over one that is only held; fallback is returned when both are held.
func (s *System) AxisCheck(fallback int, negative, positive Key) int {
	return axisCheck(fallback,
		s.KeyPressed(negative), s.KeyPressed(positive),
		s.KeyDown(negative), s.KeyDown(positive))
}

// ButtonAxisCheck is AxisCheck over two buttons of one controller slot.
func (s *System) ButtonAxisCheck(fallback, slot int, negative, positive Button) int {
	return axisCheck(fallback,
		s.ButtonPressed(slot, negative), s.ButtonPressed(slot, positive),
		s.ButtonDown(slot, negative), s.ButtonDown(slot, positive))
}

func axisCheck(fallback int, negPressed, posPressed, negDown, posDown bool) int {
	switch {
	case posPressed && !negPressed:
		return 1
	case negPressed && !posPressed:
		return -1
	case posDown && negDown:
		return fallback
	case posDown:
		return 1
	case negDown:
		return -1
	default:
		return 0
	}
}
