package bindings

import (
	"testing"
	"time"

	"github.com/milk9111/zeninput/input"
)

func TestTriggerScript(t *testing.T) {
	h := newHarness()
	set, err := Build(h.sys, mustParse(t, `
buttons:
  dash:
    keys: [k]
  attack:
    keys: [j]
sticks:
  move:
    keys: [{left: a, right: d, up: w, down: s}]
`))
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	trig, err := compileTrigger(set, "dash_attack", "inline", []byte(`
dir := input.stick("move")
active = input.down("dash") && input.pressed("attack") && (dir[0] != 0 || dir[1] != 0)
`))
	if err != nil {
		t.Fatalf("compile: %v", err)
	}

	steps := []struct {
		events   []input.Event
		active   bool
		pressed  bool
		released bool
	}{
		{[]input.Event{input.KeyEvent{Key: input.KeyK, Down: true}}, false, false, false},
		{[]input.Event{input.KeyEvent{Key: input.KeyJ, Down: true}}, false, false, false},
		{[]input.Event{input.KeyEvent{Key: input.KeyJ}, input.KeyEvent{Key: input.KeyD, Down: true}}, false, false, false},
		{[]input.Event{input.KeyEvent{Key: input.KeyJ, Down: true}}, true, true, false},
		{nil, false, false, true},
	}

	for i, st := range steps {
		h.tick(16*time.Millisecond, st.events...)
		set.Update()
		trig.Update()
		if trig.Active() != st.active || trig.Pressed() != st.pressed || trig.Released() != st.released {
			t.Fatalf("step %d: got active=%v pressed=%v released=%v", i, trig.Active(), trig.Pressed(), trig.Released())
		}
	}
}

func TestTriggerKeyDownAndStickHelpers(t *testing.T) {
	h := newHarness()
	set, err := Build(h.sys, mustParse(t, `
sticks:
  move:
    keys: [{left: a, right: d, up: w, down: s}]
`))
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	trig, err := compileTrigger(set, "helpers", "inline", []byte(`
v := input.stick_value("move")
active = input.key_down("space") && input.stick_pressed("move") && v[1] > 0 && !input.key_down("not_a_key")
`))
	if err != nil {
		t.Fatalf("compile: %v", err)
	}

	h.tick(16*time.Millisecond, input.KeyEvent{Key: input.KeySpace, Down: true}, input.KeyEvent{Key: input.KeyW, Down: true})
	set.Update()
	trig.Update()
	if !trig.Active() {
		t.Fatalf("expected helpers to see space held and the stick pushed up")
	}
}

func TestTriggerErrors(t *testing.T) {
	set := newSet(newHarness().sys)

	if _, err := compileTrigger(set, "bad", "inline", []byte(`active = (`)); err == nil {
		t.Fatalf("expected a compile error")
	}

	trig, err := compileTrigger(set, "boom", "inline", []byte(`active = input.nope()`))
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	trig.Update()
	if trig.Active() {
		t.Fatalf("a failing script reads inactive")
	}

	var nilTrigger *Trigger
	nilTrigger.Update()
	if nilTrigger.Active() || nilTrigger.Pressed() {
		t.Fatalf("nil trigger should be inactive")
	}
}
