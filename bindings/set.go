package bindings

import (
	"sort"

	"github.com/milk9111/zeninput/input"
)

// Set is a built bindings file: named buttons, sticks and triggers that are
// updated together once per tick.
type Set struct {
	sys *input.System

	buttons  map[string]*input.VirtualButton
	sticks   map[string]*input.VirtualStick
	triggers map[string]*Trigger

	buttonOrder  []string
	stickOrder   []string
	triggerOrder []string
}

func newSet(sys *input.System) *Set {
	return &Set{
		sys:      sys,
		buttons:  map[string]*input.VirtualButton{},
		sticks:   map[string]*input.VirtualStick{},
		triggers: map[string]*Trigger{},
	}
}

// Update refreshes every control from the current input snapshot. Triggers
// run last so their scripts see this tick's buttons and sticks.
func (s *Set) Update() {
	if s == nil {
		return
	}
	for _, name := range s.buttonOrder {
		s.buttons[name].Update()
	}
	for _, name := range s.stickOrder {
		s.sticks[name].Update()
	}
	for _, name := range s.triggerOrder {
		s.triggers[name].Update()
	}
}

// inherit carries the runtime state of same-named controls in prev over to s.
func (s *Set) inherit(prev *Set) {
	if s == nil || prev == nil {
		return
	}
	for name, b := range s.buttons {
		b.Inherit(prev.buttons[name])
	}
	for name, st := range s.sticks {
		st.Inherit(prev.sticks[name])
	}
	for name, t := range s.triggers {
		t.inherit(prev.triggers[name])
	}
}

// Button returns nil for an unknown name. The nil button reports inactive.
func (s *Set) Button(name string) *input.VirtualButton {
	if s == nil {
		return nil
	}
	return s.buttons[name]
}

func (s *Set) Stick(name string) *input.VirtualStick {
	if s == nil {
		return nil
	}
	return s.sticks[name]
}

func (s *Set) Trigger(name string) *Trigger {
	if s == nil {
		return nil
	}
	return s.triggers[name]
}

// Names lists every action in the set, sorted.
func (s *Set) Names() []string {
	if s == nil {
		return nil
	}
	names := make([]string, 0, len(s.buttonOrder)+len(s.stickOrder)+len(s.triggerOrder))
	names = append(names, s.buttonOrder...)
	names = append(names, s.stickOrder...)
	names = append(names, s.triggerOrder...)
	sort.Strings(names)
	return names
}

func (s *Set) ButtonNames() []string {
	if s == nil {
		return nil
	}
	return s.buttonOrder
}

func (s *Set) StickNames() []string {
	if s == nil {
		return nil
	}
	return s.stickOrder
}

func (s *Set) TriggerNames() []string {
	if s == nil {
		return nil
	}
	return s.triggerOrder
}
