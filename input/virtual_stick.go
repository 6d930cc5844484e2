package input

import (
	"log"
	"time"

	"github.com/milk9111/zeninput/common"
)

// stickNode is one 2D source of a VirtualStick. Key and button quads keep
// their last integer value so a tie (both directions held) resolves to the
// direction already in effect.
type stickNode struct {
	kind sourceKind
	slot int

	keys    [4]Key
	buttons [4]Button

	horizontal Axis
	vertical   Axis
	deadzone   float64

	held  common.Point
	value common.Vec2
}

const (
	quadLeft = iota
	quadRight
	quadUp
	quadDown
)

func (n *stickNode) update(s *System) {
	switch n.kind {
	case sourceKey:
		n.held.X = s.AxisCheck(n.held.X, n.keys[quadLeft], n.keys[quadRight])
		n.held.Y = s.AxisCheck(n.held.Y, n.keys[quadDown], n.keys[quadUp])
		n.value = common.Vec2{X: float64(n.held.X), Y: float64(n.held.Y)}
	case sourceButton:
		n.held.X = s.ButtonAxisCheck(n.held.X, n.slot, n.buttons[quadLeft], n.buttons[quadRight])
		n.held.Y = s.ButtonAxisCheck(n.held.Y, n.slot, n.buttons[quadDown], n.buttons[quadUp])
		n.value = common.Vec2{X: float64(n.held.X), Y: float64(n.held.Y)}
	case sourceAxis:
		n.value = common.Vec2{X: s.AxisValue(n.slot, n.horizontal), Y: s.AxisValue(n.slot, n.vertical)}
		if n.value.Len() < n.deadzone {
			n.value = common.Vec2{}
		}
	}
}

// VirtualStick merges key quads, button quads and analog axis pairs into one
// logical direction. Sources are tried in that order and the first non-zero
// one wins the tick.
//
// Pressed fires when the quantized direction changes to a new non-zero value
// and repeats while it is held; Released fires when a non-zero direction is
// left. A nil *VirtualStick reads as centred.
type VirtualStick struct {
	sys      *System
	nodes    []stickNode
	counts   [3]int
	deadzone float64

	timing

	value        common.Vec2
	lastValue    common.Vec2
	valueInt     common.Point
	lastValueInt common.Point

	pressed  bool
	released bool
}

// NewVirtualStick builds a stick whose quantized value ignores components
// within deadzone of zero.
func NewVirtualStick(sys *System, deadzone float64) *VirtualStick {
	return &VirtualStick{sys: sys, deadzone: deadzone}
}

func (v *VirtualStick) add(n stickNode) *VirtualStick {
	if v.counts[n.kind] >= MaxVirtualNodes {
		log.Printf("VirtualStick: no more %s available", n.kind)
		return v
	}
	v.counts[n.kind]++
	v.nodes = append(v.nodes, n)
	return v
}

func (v *VirtualStick) AddKeys(left, right, up, down Key) *VirtualStick {
	return v.add(stickNode{kind: sourceKey, keys: [4]Key{left, right, up, down}})
}

func (v *VirtualStick) AddButtons(slot int, left, right, up, down Button) *VirtualStick {
	return v.add(stickNode{kind: sourceButton, slot: slot, buttons: [4]Button{left, right, up, down}})
}

// AddAxes adds an analog pair. Positions closer to the centre than deadzone
// read as zero.
func (v *VirtualStick) AddAxes(slot int, horizontal, vertical Axis, deadzone float64) *VirtualStick {
	return v.add(stickNode{kind: sourceAxis, slot: slot, horizontal: horizontal, vertical: vertical, deadzone: deadzone})
}

func (v *VirtualStick) Repeat(delay, interval time.Duration) *VirtualStick {
	v.repeatDelay = delay
	v.repeatInterval = interval
	return v
}

func (v *VirtualStick) PressBuffer(d time.Duration) *VirtualStick {
	v.pressBuffer = d
	return v
}

func (v *VirtualStick) ReleaseBuffer(d time.Duration) *VirtualStick {
	v.releaseBuffer = d
	return v
}

func (v *VirtualStick) Update() {
	if v == nil {
		return
	}
	v.lastValue = v.value
	v.value = common.Vec2{}
	v.lastValueInt = v.valueInt
	v.pressed = false
	v.released = false
	if v.sys == nil {
		v.valueInt = common.Point{}
		return
	}

	// All kinds share one list; walk it once per kind in priority order.
	for _, kind := range [...]sourceKind{sourceKey, sourceButton, sourceAxis} {
		for i := range v.nodes {
			n := &v.nodes[i]
			if n.kind != kind {
				continue
			}
			n.update(v.sys)
			if v.value.IsZero() {
				v.value = n.value
			}
		}
	}

	v.valueInt = common.Point{
		X: common.Sign(v.value.X, v.deadzone),
		Y: common.Sign(v.value.Y, v.deadzone),
	}

	now := v.sys.now()
	if !v.valueInt.IsZero() {
		if v.valueInt != v.lastValueInt {
			v.pressed = true
			v.press(now)
		} else if v.inPressBuffer(now) {
			v.pressed = true
		} else {
			v.pressed = v.repeatPulse(now, previousNow(v.sys.clock))
		}
	}

	if !v.lastValueInt.IsZero() && v.valueInt != v.lastValueInt {
		v.released = true
		v.release(now)
	} else {
		v.released = v.inReleaseBuffer(now)
	}
}

func (v *VirtualStick) Value() common.Vec2 {
	if v == nil {
		return common.Vec2{}
	}
	return v.value
}

func (v *VirtualStick) LastValue() common.Vec2 {
	if v == nil {
		return common.Vec2{}
	}
	return v.lastValue
}

func (v *VirtualStick) ValueInt() common.Point {
	if v == nil {
		return common.Point{}
	}
	return v.valueInt
}

func (v *VirtualStick) LastValueInt() common.Point {
	if v == nil {
		return common.Point{}
	}
	return v.lastValueInt
}

func (v *VirtualStick) Pressed() bool  { return v != nil && v.pressed }
func (v *VirtualStick) Released() bool { return v != nil && v.released }

func (v *VirtualStick) ClearPressBuffer() {
	if v == nil {
		return
	}
	v.clearPress()
	v.pressed = false
}

func (v *VirtualStick) ClearReleaseBuffer() {
	if v == nil {
		return
	}
	v.clearRelease()
	v.released = false
}

// Inherit carries prev's direction and timing history over to v, so holding a
// direction through a rebuild does not read as a new press.
func (v *VirtualStick) Inherit(prev *VirtualStick) {
	if v == nil || prev == nil {
		return
	}
	v.timing.inherit(&prev.timing)
	v.value, v.valueInt = prev.value, prev.valueInt
	v.lastValue, v.lastValueInt = prev.lastValue, prev.lastValueInt
}

func (v *VirtualStick) Len() int {
	if v == nil {
		return 0
	}
	return len(v.nodes)
}
