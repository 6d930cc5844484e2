package bindings

import (
	"fmt"
	"sort"

	"github.com/milk9111/zeninput/input"
)

// Build turns spec into live virtual controls reading from sys. Any unknown
// key, button or axis name fails the whole build.
func Build(sys *input.System, spec *Spec) (*Set, error) {
	if sys == nil {
		return nil, fmt.Errorf("bindings: build: nil input system")
	}
	if spec == nil {
		spec = &Spec{}
	}

	set := newSet(sys)

	for _, name := range sortedKeys(spec.Buttons) {
		b, err := buildButton(sys, spec.Buttons[name])
		if err != nil {
			return nil, fmt.Errorf("bindings: button %s: %w", name, err)
		}
		set.buttons[name] = b
		set.buttonOrder = append(set.buttonOrder, name)
	}

	for _, name := range sortedKeys(spec.Sticks) {
		s, err := buildStick(sys, spec.Sticks[name])
		if err != nil {
			return nil, fmt.Errorf("bindings: stick %s: %w", name, err)
		}
		set.sticks[name] = s
		set.stickOrder = append(set.stickOrder, name)
	}

	for _, name := range sortedKeys(spec.Triggers) {
		t, err := newTrigger(set, name, spec.Triggers[name].Script)
		if err != nil {
			return nil, fmt.Errorf("bindings: trigger %s: %w", name, err)
		}
		set.triggers[name] = t
		set.triggerOrder = append(set.triggerOrder, name)
	}

	return set, nil
}

func buildButton(sys *input.System, spec ButtonSpec) (*input.VirtualButton, error) {
	b := input.NewVirtualButton(sys)
	for _, name := range spec.Keys {
		k, err := input.ParseKey(name)
		if err != nil {
			return nil, err
		}
		b.AddKey(k)
	}
	for _, src := range spec.Buttons {
		if err := checkSlot(src.Slot); err != nil {
			return nil, err
		}
		btn, err := input.ParseButton(src.Button)
		if err != nil {
			return nil, err
		}
		b.AddButton(src.Slot, btn)
	}
	for _, src := range spec.Axes {
		if err := checkSlot(src.Slot); err != nil {
			return nil, err
		}
		axis, err := input.ParseAxis(src.Axis)
		if err != nil {
			return nil, err
		}
		b.AddAxis(src.Slot, axis, src.Threshold, src.GreaterThan)
	}

	b.PressBuffer(spec.PressBuffer.Std()).ReleaseBuffer(spec.ReleaseBuffer.Std())
	if spec.Repeat != nil {
		b.Repeat(spec.Repeat.Delay.Std(), spec.Repeat.Interval.Std())
	}
	return b, nil
}

func buildStick(sys *input.System, spec StickSpec) (*input.VirtualStick, error) {
	if spec.Deadzone < 0 || spec.Deadzone >= 1 {
		return nil, fmt.Errorf("deadzone %v out of range [0, 1)", spec.Deadzone)
	}

	s := input.NewVirtualStick(sys, spec.Deadzone)
	for _, q := range spec.Keys {
		var keys [4]input.Key
		for i, name := range [4]string{q.Left, q.Right, q.Up, q.Down} {
			k, err := input.ParseKey(name)
			if err != nil {
				return nil, err
			}
			keys[i] = k
		}
		s.AddKeys(keys[0], keys[1], keys[2], keys[3])
	}
	for _, q := range spec.Buttons {
		if err := checkSlot(q.Slot); err != nil {
			return nil, err
		}
		var buttons [4]input.Button
		for i, name := range [4]string{q.Left, q.Right, q.Up, q.Down} {
			b, err := input.ParseButton(name)
			if err != nil {
				return nil, err
			}
			buttons[i] = b
		}
		s.AddButtons(q.Slot, buttons[0], buttons[1], buttons[2], buttons[3])
	}
	for _, p := range spec.Axes {
		if err := checkSlot(p.Slot); err != nil {
			return nil, err
		}
		h, err := input.ParseAxis(p.Horizontal)
		if err != nil {
			return nil, err
		}
		v, err := input.ParseAxis(p.Vertical)
		if err != nil {
			return nil, err
		}
		s.AddAxes(p.Slot, h, v, p.Deadzone)
	}

	s.PressBuffer(spec.PressBuffer.Std()).ReleaseBuffer(spec.ReleaseBuffer.Std())
	if spec.Repeat != nil {
		s.Repeat(spec.Repeat.Delay.Std(), spec.Repeat.Interval.Std())
	}
	return s, nil
}

func checkSlot(slot int) error {
	if slot < 0 || slot >= input.MaxControllers {
		return fmt.Errorf("controller slot %d out of range", slot)
	}
	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
