package bindings

import (
	"fmt"
	"log"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/zeninput/input"
)

// Trigger is a scripted action. Its tengo script reads the owning Set through
// the global `input` map and sets the global `active` each tick:
//
//	active = input.down("dash") && input.pressed("attack")
type Trigger struct {
	name     string
	script   string
	compiled *tengo.Compiled

	active bool
	was    bool
}

func newTrigger(set *Set, name, script string) (*Trigger, error) {
	if strings.TrimSpace(script) == "" {
		return nil, fmt.Errorf("missing script")
	}
	src, err := LoadScript(script)
	if err != nil {
		return nil, err
	}
	return compileTrigger(set, name, script, src)
}

func compileTrigger(set *Set, name, script string, src []byte) (*Trigger, error) {
	s := tengo.NewScript(src)
	_ = s.Add("input", buildScriptInput(set))
	_ = s.Add("active", false)

	s.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := s.Compile()
	if err != nil {
		return nil, fmt.Errorf("compile %s: %w", script, err)
	}
	return &Trigger{name: name, script: script, compiled: compiled}, nil
}

// Update runs the script once. A failing script logs and reads as inactive.
func (t *Trigger) Update() {
	if t == nil || t.compiled == nil {
		return
	}
	t.was = t.active
	t.active = false

	if err := t.compiled.Set("active", false); err != nil {
		log.Printf("Trigger: %s reset error: %v", t.name, err)
		return
	}
	if err := t.compiled.Run(); err != nil {
		log.Printf("Trigger: %s script error: %v", t.name, err)
		return
	}
	t.active = t.compiled.Get("active").Bool()
}

func (t *Trigger) inherit(prev *Trigger) {
	if t == nil || prev == nil {
		return
	}
	t.active, t.was = prev.active, prev.was
}

func (t *Trigger) Active() bool   { return t != nil && t.active }
func (t *Trigger) Pressed() bool  { return t != nil && t.active && !t.was }
func (t *Trigger) Released() bool { return t != nil && !t.active && t.was }

func (t *Trigger) Name() string {
	if t == nil {
		return ""
	}
	return t.name
}

func (t *Trigger) Script() string {
	if t == nil {
		return ""
	}
	return t.script
}

func buildScriptInput(set *Set) *tengo.ImmutableMap {
	values := map[string]tengo.Object{}

	values["pressed"] = boolFunc("pressed", func(name string) bool { return set.Button(name).Pressed() })
	values["down"] = boolFunc("down", func(name string) bool { return set.Button(name).Down() })
	values["released"] = boolFunc("released", func(name string) bool { return set.Button(name).Released() })
	values["stick_pressed"] = boolFunc("stick_pressed", func(name string) bool { return set.Stick(name).Pressed() })
	values["stick_released"] = boolFunc("stick_released", func(name string) bool { return set.Stick(name).Released() })

	values["key_down"] = boolFunc("key_down", func(name string) bool {
		k, err := input.ParseKey(name)
		if err != nil {
			return false
		}
		return set.sys.KeyDown(k)
	})

	values["stick"] = &tengo.UserFunction{Name: "stick", Value: func(args ...tengo.Object) (tengo.Object, error) {
		var x, y int
		if len(args) > 0 {
			if s := set.Stick(strings.TrimSpace(objectAsString(args[0]))); s != nil {
				v := s.ValueInt()
				x, y = v.X, v.Y
			}
		}
		return &tengo.ImmutableArray{Value: []tengo.Object{
			&tengo.Int{Value: int64(x)},
			&tengo.Int{Value: int64(y)},
		}}, nil
	}}

	values["stick_value"] = &tengo.UserFunction{Name: "stick_value", Value: func(args ...tengo.Object) (tengo.Object, error) {
		var x, y float64
		if len(args) > 0 {
			if s := set.Stick(strings.TrimSpace(objectAsString(args[0]))); s != nil {
				v := s.Value()
				x, y = v.X, v.Y
			}
		}
		return &tengo.ImmutableArray{Value: []tengo.Object{
			&tengo.Float{Value: x},
			&tengo.Float{Value: y},
		}}, nil
	}}

	return &tengo.ImmutableMap{Value: values}
}

func boolFunc(name string, fn func(string) bool) *tengo.UserFunction {
	return &tengo.UserFunction{Name: name, Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 1 {
			return tengo.FalseValue, nil
		}
		arg := strings.TrimSpace(objectAsString(args[0]))
		if arg == "" || !fn(arg) {
			return tengo.FalseValue, nil
		}
		return tengo.TrueValue, nil
	}}
}

func objectAsString(obj tengo.Object) string {
	if obj == nil {
		return ""
	}
	switch v := obj.(type) {
	case *tengo.String:
		return v.Value
	default:
		return strings.Trim(v.String(), "\"")
	}
}
