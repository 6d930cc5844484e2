package input

import "time"

// System owns the triple-buffered device state. Platform code writes raw
// events into the next buffer at any point during a tick; Advance promotes
// the buffers once per tick; gameplay code reads the current buffer through
// the query methods.
//
// System does no locking. The host must deliver events from one goroutine and
// finish a tick's events before calling Advance.
type System struct {
	clock Clock

	last State
	curr State
	next State
}

func NewSystem(clock Clock) *System {
	if clock == nil {
		clock = NewManualClock()
	}
	return &System{
		clock: clock,
		last:  newState(),
		curr:  newState(),
		next:  newState(),
	}
}

func (s *System) Clock() Clock { return s.clock }

// Advance promotes next into current and current into last, then clears the
// per-tick edges of next. Call exactly once per tick after all of the tick's
// events have been pushed.
func (s *System) Advance() {
	s.last = s.curr
	s.curr = s.next
	s.next.clearTransient()
}

// Push records ev into the next buffer.
func (s *System) Push(ev Event) {
	switch ev := ev.(type) {
	case KeyEvent:
		s.key(ev)
	case MouseButtonEvent:
		s.mouseButton(ev)
	case MouseScrollEvent:
		s.next.Mouse.Wheel.X = ev.DX
		s.next.Mouse.Wheel.Y = ev.DY
	case ControllerConnectEvent:
		s.connect(ev)
	case ControllerDisconnectEvent:
		if slot := s.findSlot(ev.ID); slot >= 0 {
			s.next.Controllers[slot].clear()
		}
	case ControllerButtonEvent:
		s.controllerButton(ev)
	case ControllerAxisEvent:
		s.controllerAxis(ev)
	}
}

func (s *System) OnKeyDown(k Key) { s.Push(KeyEvent{Key: k, Down: true, Time: s.clock.Now()}) }
func (s *System) OnKeyUp(k Key)   { s.Push(KeyEvent{Key: k}) }

func (s *System) OnMouseDown(b MouseButton) {
	s.Push(MouseButtonEvent{Button: b, Down: true, Time: s.clock.Now()})
}

func (s *System) OnMouseUp(b MouseButton) { s.Push(MouseButtonEvent{Button: b}) }

func (s *System) OnMouseScroll(dx, dy int) { s.Push(MouseScrollEvent{DX: dx, DY: dy}) }

func (s *System) OnControllerConnected(id, name string) {
	s.Push(ControllerConnectEvent{ID: id, Name: name})
}

func (s *System) OnControllerDisconnected(id string) {
	s.Push(ControllerDisconnectEvent{ID: id})
}

func (s *System) OnControllerButtonDown(id string, b Button) {
	s.Push(ControllerButtonEvent{ID: id, Button: b, Down: true, Time: s.clock.Now()})
}

func (s *System) OnControllerButtonUp(id string, b Button) {
	s.Push(ControllerButtonEvent{ID: id, Button: b})
}

func (s *System) OnControllerAxisMoved(id string, a Axis, value float64) {
	s.Push(ControllerAxisEvent{ID: id, Axis: a, Value: value, Time: s.clock.Now()})
}

func (s *System) key(ev KeyEvent) {
	if !ev.Key.valid() {
		return
	}
	kb := &s.next.Keyboard
	if ev.Down {
		kb.Down[ev.Key] = true
		kb.Pressed[ev.Key] = true
		kb.Timestamp[ev.Key] = ev.Time
	} else {
		kb.Down[ev.Key] = false
		kb.Released[ev.Key] = true
	}
}

func (s *System) mouseButton(ev MouseButtonEvent) {
	if !ev.Button.valid() {
		return
	}
	m := &s.next.Mouse
	if ev.Down {
		m.Down[ev.Button] = true
		m.Pressed[ev.Button] = true
		m.Timestamp[ev.Button] = ev.Time
	} else {
		m.Down[ev.Button] = false
		m.Released[ev.Button] = true
	}
}

func (s *System) connect(ev ControllerConnectEvent) {
	if ev.ID == "" {
		return
	}
	slot := s.findSlot(ev.ID)
	if slot < 0 {
		slot = s.freeSlot()
	}
	if slot < 0 {
		return
	}
	c := &s.next.Controllers[slot]
	c.Connected = true
	c.ID = ev.ID
	c.Name = ev.Name
}

func (s *System) controllerButton(ev ControllerButtonEvent) {
	c := s.connectedSlot(ev.ID)
	if c == nil || !ev.Button.valid() {
		return
	}
	if ev.Down {
		c.Down[ev.Button] = true
		c.Pressed[ev.Button] = true
		c.ButtonTimestamp[ev.Button] = ev.Time
	} else {
		c.Down[ev.Button] = false
		c.Released[ev.Button] = true
	}
}

func (s *System) controllerAxis(ev ControllerAxisEvent) {
	c := s.connectedSlot(ev.ID)
	if c == nil || !ev.Axis.valid() {
		return
	}
	c.Axis[ev.Axis] = ev.Value
	c.AxisTimestamp[ev.Axis] = ev.Time
}

// connectedSlot resolves id to its slot in the next buffer, or nil when the
// identity is unknown or the slot is not connected.
func (s *System) connectedSlot(id string) *ControllerState {
	slot := s.findSlot(id)
	if slot < 0 || !s.next.Controllers[slot].Connected {
		return nil
	}
	return &s.next.Controllers[slot]
}

func (s *System) findSlot(id string) int {
	if id == "" {
		return -1
	}
	for i := range s.next.Controllers {
		if s.next.Controllers[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *System) freeSlot() int {
	for i := range s.next.Controllers {
		if !s.next.Controllers[i].Connected {
			return i
		}
	}
	return -1
}

// SlotOf returns the slot the controller with the given identity occupies in
// the current tick, or -1.
func (s *System) SlotOf(id string) int {
	if id == "" {
		return -1
	}
	for i := range s.curr.Controllers {
		if s.curr.Controllers[i].Connected && s.curr.Controllers[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *System) now() time.Duration { return s.clock.Now() }
