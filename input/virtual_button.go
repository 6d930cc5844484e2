package input

import (
	"log"
	"time"
)

// MaxVirtualNodes is the number of sources of each kind a virtual control
// accepts.
const MaxVirtualNodes = 32

type sourceKind uint8

const (
	sourceKey sourceKind = iota
	sourceButton
	sourceAxis
)

func (k sourceKind) String() string {
	switch k {
	case sourceKey:
		return "keys"
	case sourceButton:
		return "buttons"
	case sourceAxis:
		return "axes"
	}
	return "sources"
}

// buttonNode is one physical source of a VirtualButton. kind selects which of
// the fields are meaningful.
type buttonNode struct {
	kind sourceKind

	key Key

	slot   int
	button Button

	axis        Axis
	threshold   float64
	greaterThan bool
}

func (n *buttonNode) state(s *System) (pressed, down, released bool) {
	switch n.kind {
	case sourceKey:
		return s.KeyPressed(n.key), s.KeyDown(n.key), s.KeyReleased(n.key)
	case sourceButton:
		return s.ButtonPressed(n.slot, n.button), s.ButtonDown(n.slot, n.button), s.ButtonReleased(n.slot, n.button)
	case sourceAxis:
		curr := s.AxisValue(n.slot, n.axis)
		prev := s.LastAxisValue(n.slot, n.axis)
		var was bool
		if n.greaterThan {
			down, was = curr >= n.threshold, prev >= n.threshold
		} else {
			down, was = curr <= n.threshold, prev <= n.threshold
		}
		return down && !was, down, !down && was
	}
	return false, false, false
}

// VirtualButton merges keys, controller buttons and thresholded axes into a
// single logical button with press/release buffering and key repeat.
//
// Configure it once with the Add and timing methods, then call Update once
// per tick after System.Advance. A nil *VirtualButton reads as never held.
type VirtualButton struct {
	sys    *System
	nodes  []buttonNode
	counts [3]int

	timing

	down     bool
	pressed  bool
	released bool
}

func NewVirtualButton(sys *System) *VirtualButton {
	return &VirtualButton{sys: sys}
}

func (b *VirtualButton) add(n buttonNode) *VirtualButton {
	if b.counts[n.kind] >= MaxVirtualNodes {
		log.Printf("VirtualButton: no more %s available", n.kind)
		return b
	}
	b.counts[n.kind]++
	b.nodes = append(b.nodes, n)
	return b
}

func (b *VirtualButton) AddKey(k Key) *VirtualButton {
	return b.add(buttonNode{kind: sourceKey, key: k})
}

func (b *VirtualButton) AddButton(slot int, button Button) *VirtualButton {
	return b.add(buttonNode{kind: sourceButton, slot: slot, button: button})
}

// AddAxis treats an axis as a button that is down while the value is at or
// beyond threshold: above it when greaterThan, below it otherwise.
func (b *VirtualButton) AddAxis(slot int, axis Axis, threshold float64, greaterThan bool) *VirtualButton {
	return b.add(buttonNode{kind: sourceAxis, slot: slot, axis: axis, threshold: threshold, greaterThan: greaterThan})
}

// Repeat emits a synthetic press every interval while held, starting delay
// after the real press. A zero interval disables repeating.
func (b *VirtualButton) Repeat(delay, interval time.Duration) *VirtualButton {
	b.repeatDelay = delay
	b.repeatInterval = interval
	return b
}

func (b *VirtualButton) PressBuffer(d time.Duration) *VirtualButton {
	b.pressBuffer = d
	return b
}

func (b *VirtualButton) ReleaseBuffer(d time.Duration) *VirtualButton {
	b.releaseBuffer = d
	return b
}

// Update re-derives the button from the current snapshot.
func (b *VirtualButton) Update() {
	if b == nil {
		return
	}
	b.pressed, b.down, b.released = false, false, false
	if b.sys == nil {
		return
	}

	for i := range b.nodes {
		p, d, r := b.nodes[i].state(b.sys)
		b.pressed = b.pressed || p
		b.down = b.down || d
		b.released = b.released || r
	}

	now := b.sys.now()
	switch {
	case b.pressed:
		b.press(now)
	case b.inPressBuffer(now):
		b.pressed = true
	case b.down:
		b.pressed = b.repeatPulse(now, previousNow(b.sys.clock))
	}

	if b.released {
		b.release(now)
	} else {
		b.released = b.inReleaseBuffer(now)
	}
}

func (b *VirtualButton) Down() bool     { return b != nil && b.down }
func (b *VirtualButton) Pressed() bool  { return b != nil && b.pressed }
func (b *VirtualButton) Released() bool { return b != nil && b.released }

// ClearPressBuffer consumes a buffered press so it is not reported again.
func (b *VirtualButton) ClearPressBuffer() {
	if b == nil {
		return
	}
	b.clearPress()
	b.pressed = false
}

func (b *VirtualButton) ClearReleaseBuffer() {
	if b == nil {
		return
	}
	b.clearRelease()
	b.released = false
}

// Inherit carries prev's held state, buffered edges and repeat anchor over to
// b, so a rebuilt button continues where prev left off. Sources and durations
// stay b's own.
func (b *VirtualButton) Inherit(prev *VirtualButton) {
	if b == nil || prev == nil {
		return
	}
	b.timing.inherit(&prev.timing)
	b.down = prev.down
}

// Len is the number of configured sources.
func (b *VirtualButton) Len() int {
	if b == nil {
		return 0
	}
	return len(b.nodes)
}
