package hostinput

import (
	"fmt"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/zeninput/input"
)

// NewClock returns a frame clock stepping at ebiten's tick rate.
func NewClock() *input.FrameClock {
	return input.NewFrameClockTPS(ebiten.TPS())
}

type pad struct {
	id       string
	standard bool
	held     [len(buttonTable)]bool
	axes     [len(axisTable) + len(triggerTable)]float64
}

// Bridge turns ebiten's polled input into events for an input.System. Call
// Update once at the top of each ebiten Update.
type Bridge struct {
	sys    *input.System
	clock  *input.FrameClock
	device Device

	keys  []ebiten.Key
	ids   []ebiten.GamepadID
	mouse [len(mouseTable)]bool
	pads  map[ebiten.GamepadID]*pad
	seen  map[ebiten.GamepadID]bool
}

// NewBridge wires device into sys. clock must be the clock sys was built
// with; it is ticked by Update.
func NewBridge(sys *input.System, clock *input.FrameClock, device Device) *Bridge {
	if device == nil {
		device = Ebiten{}
	}
	return &Bridge{
		sys:    sys,
		clock:  clock,
		device: device,
		pads:   map[ebiten.GamepadID]*pad{},
		seen:   map[ebiten.GamepadID]bool{},
	}
}

// Update ticks the clock, pushes everything that changed since the last call
// and advances the system.
func (b *Bridge) Update() {
	if b.clock != nil {
		b.clock.Tick()
	}
	b.pollKeys()
	b.pollMouse()
	b.pollGamepads()
	b.sys.Advance()
}

func (b *Bridge) pollKeys() {
	b.keys = b.device.AppendJustPressedKeys(b.keys[:0])
	for _, k := range b.keys {
		if code, ok := TranslateKey(k); ok {
			b.sys.OnKeyDown(code)
		}
	}
	b.keys = b.device.AppendJustReleasedKeys(b.keys[:0])
	for _, k := range b.keys {
		if code, ok := TranslateKey(k); ok {
			b.sys.OnKeyUp(code)
		}
	}
}

func (b *Bridge) pollMouse() {
	for i, m := range mouseTable {
		down := b.device.IsMouseButtonPressed(m.host)
		if down == b.mouse[i] {
			continue
		}
		b.mouse[i] = down
		if down {
			b.sys.OnMouseDown(m.code)
		} else {
			b.sys.OnMouseUp(m.code)
		}
	}

	dx, dy := b.device.Wheel()
	if dx != 0 || dy != 0 {
		b.sys.OnMouseScroll(wheelStep(dx), wheelStep(dy))
	}
}

// wheelStep rounds a wheel offset to whole notches, keeping small trackpad
// movements as one notch in their direction.
func wheelStep(v float64) int {
	n := int(math.Round(v))
	switch {
	case n == 0 && v > 0:
		return 1
	case n == 0 && v < 0:
		return -1
	}
	return n
}

func (b *Bridge) pollGamepads() {
	clear(b.seen)
	b.ids = b.device.AppendGamepadIDs(b.ids[:0])
	for _, id := range b.ids {
		b.seen[id] = true
	}

	// Disconnect first so a pad waiting for a slot can take a freed one.
	for id, p := range b.pads {
		if b.seen[id] {
			continue
		}
		b.sys.OnControllerDisconnected(p.id)
		delete(b.pads, id)
	}

	for _, id := range b.ids {
		p, ok := b.pads[id]
		switch {
		case !ok:
			p = &pad{
				id:       padIdentity(id),
				standard: b.device.IsStandardGamepadLayoutAvailable(id),
			}
			b.pads[id] = p
			if !p.standard {
				log.Printf("HostInput: gamepad %d (%s) has no standard layout, buttons and axes are ignored", id, b.device.GamepadName(id))
			}
			b.sys.OnControllerConnected(p.id, b.device.GamepadName(id))
		case b.sys.SlotOf(p.id) < 0:
			// All slots were taken when it was plugged in. Retry, and resend
			// whatever it holds once it lands.
			p.held = [len(buttonTable)]bool{}
			p.axes = [len(axisTable) + len(triggerTable)]float64{}
			b.sys.OnControllerConnected(p.id, b.device.GamepadName(id))
		}
		if p.standard {
			b.pollPad(id, p)
		}
	}
}

func (b *Bridge) pollPad(id ebiten.GamepadID, p *pad) {
	for i, m := range buttonTable {
		down := b.device.IsStandardGamepadButtonPressed(id, m.host)
		if down == p.held[i] {
			continue
		}
		p.held[i] = down
		if down {
			b.sys.OnControllerButtonDown(p.id, m.code)
		} else {
			b.sys.OnControllerButtonUp(p.id, m.code)
		}
	}

	for i, m := range axisTable {
		b.moveAxis(p, i, m.code, b.device.StandardGamepadAxisValue(id, m.host))
	}
	for i, m := range triggerTable {
		b.moveAxis(p, len(axisTable)+i, m.code, b.device.StandardGamepadButtonValue(id, m.host))
	}
}

func (b *Bridge) moveAxis(p *pad, i int, code input.Axis, v float64) {
	if v == p.axes[i] {
		return
	}
	p.axes[i] = v
	b.sys.OnControllerAxisMoved(p.id, code, v)
}

func padIdentity(id ebiten.GamepadID) string {
	return fmt.Sprintf("gamepad-%d", id)
}
