package bindings

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/milk9111/zeninput/common"
	"github.com/milk9111/zeninput/input"
)

type harness struct {
	clock *input.ManualClock
	sys   *input.System
}

func newHarness() *harness {
	clock := input.NewManualClock()
	return &harness{clock: clock, sys: input.NewSystem(clock)}
}

func (h *harness) tick(d time.Duration, events ...input.Event) {
	h.clock.Advance(d)
	for _, ev := range events {
		h.sys.Push(ev)
	}
	h.sys.Advance()
}

func mustParse(t *testing.T, src string) *Spec {
	t.Helper()
	spec, err := Parse([]byte(src))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return spec
}

func TestDefaultBindingsBuild(t *testing.T) {
	data, err := DefaultsFS.ReadFile(DefaultFile)
	if err != nil {
		t.Fatalf("read embedded defaults: %v", err)
	}
	spec, err := Parse(data)
	if err != nil {
		t.Fatalf("parse defaults: %v", err)
	}

	set, err := Build(newHarness().sys, spec)
	if err != nil {
		t.Fatalf("build defaults: %v", err)
	}

	for _, name := range []string{"jump", "attack", "pause"} {
		if set.Button(name) == nil {
			t.Fatalf("missing button %s", name)
		}
	}
	if set.Stick("move") == nil || set.Trigger("dash_attack") == nil {
		t.Fatalf("missing move stick or dash_attack trigger")
	}
	if got := spec.Buttons["jump"].PressBuffer.Std(); got != 150*time.Millisecond {
		t.Fatalf("expected 150ms jump buffer, got %v", got)
	}
}

func TestParseDurations(t *testing.T) {
	cases := []struct {
		name    string
		value   string
		want    time.Duration
		wantErr bool
	}{
		{"millis", "150ms", 150 * time.Millisecond, false},
		{"seconds", "1.5s", 1500 * time.Millisecond, false},
		{"empty", `""`, 0, false},
		{"negative", "-5ms", 0, true},
		{"garbage", "soon", 0, true},
		{"number", "[1]", 0, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			spec, err := Parse([]byte("buttons:\n  b:\n    press_buffer: " + c.value + "\n"))
			if c.wantErr {
				if err == nil {
					t.Fatalf("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			if got := spec.Buttons["b"].PressBuffer.Std(); got != c.want {
				t.Fatalf("expected %v, got %v", c.want, got)
			}
		})
	}
}

func TestBuildRejectsUnknownNames(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{"key", "buttons:\n  b:\n    keys: [hyper]\n", "unknown key"},
		{"button", "buttons:\n  b:\n    buttons: [{slot: 0, button: z}]\n", "unknown button"},
		{"axis", "buttons:\n  b:\n    axes: [{slot: 0, axis: twist}]\n", "unknown axis"},
		{"slot", "buttons:\n  b:\n    buttons: [{slot: 9, button: a}]\n", "slot 9"},
		{"quad_key", "sticks:\n  s:\n    keys: [{left: a, right: d, up: w}]\n", "unknown key"},
		{"stick_axis", "sticks:\n  s:\n    axes: [{slot: 0, horizontal: left_x, vertical: up_down}]\n", "unknown axis"},
		{"deadzone", "sticks:\n  s:\n    deadzone: 1.5\n", "deadzone"},
		{"script", "triggers:\n  t: {script: \"\"}\n", "missing script"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Build(newHarness().sys, mustParse(t, c.src))
			if err == nil || !strings.Contains(err.Error(), c.want) {
				t.Fatalf("expected error containing %q, got %v", c.want, err)
			}
		})
	}
}

func TestSetDrivesControls(t *testing.T) {
	h := newHarness()
	set, err := Build(h.sys, mustParse(t, `
buttons:
  jump:
    keys: [space]
    buttons: [{slot: 0, button: a}]
sticks:
  move:
    deadzone: 0.25
    keys: [{left: a, right: d, up: w, down: s}]
    axes: [{slot: 0, horizontal: left_x, vertical: left_y}]
`))
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	h.tick(0, input.ControllerConnectEvent{ID: "pad", Name: "Pad"})
	set.Update()

	h.tick(16*time.Millisecond,
		input.ControllerButtonEvent{ID: "pad", Button: input.ButtonA, Down: true},
		input.ControllerAxisEvent{ID: "pad", Axis: input.AxisLeftX, Value: -0.8},
	)
	set.Update()

	if !set.Button("jump").Pressed() {
		t.Fatalf("expected jump pressed from the controller")
	}
	if got := set.Stick("move").ValueInt(); got != (common.Point{X: -1}) {
		t.Fatalf("expected move left, got %+v", got)
	}
	if set.Button("missing").Pressed() || set.Stick("missing").Pressed() {
		t.Fatalf("unknown names should read inactive")
	}

	want := []string{"jump", "move"}
	got := set.Names()
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("expected names %v, got %v", want, got)
	}
}

func TestReloaderKeepsPreviousOnFailure(t *testing.T) {
	h := newHarness()
	src := "buttons:\n  jump:\n    keys: [space]\n"
	source := func() (*Spec, error) { return Parse([]byte(src)) }

	r, err := NewReloader(h.sys, source)
	if err != nil {
		t.Fatalf("new reloader: %v", err)
	}
	first := r.Set()

	events := make(chan string, 4)
	r.Watch(events)

	src = "buttons:\n  jump:\n    keys: [nope]\n"
	events <- "bindings/default.yaml"
	if r.Poll() {
		t.Fatalf("a broken file must not replace the set")
	}
	if r.Set() != first {
		t.Fatalf("expected the previous set to stay active")
	}

	src = "buttons:\n  jump:\n    keys: [enter]\n  dash:\n    keys: [k]\n"
	events <- "bindings/default.yaml"
	if !r.Poll() {
		t.Fatalf("expected a reload")
	}
	if r.Set().Button("dash") == nil {
		t.Fatalf("expected the new set to be active")
	}

	if r.Poll() {
		t.Fatalf("no pending events, nothing to reload")
	}

	close(events)
	r.Poll()
}

func TestReloadCarriesHeldState(t *testing.T) {
	h := newHarness()
	src := `
buttons:
  jump:
    keys: [space]
sticks:
  move:
    keys: [{left: a, right: d, up: w, down: s}]
    repeat: {delay: 500ms, interval: 100ms}
`
	r, err := NewReloader(h.sys, func() (*Spec, error) { return Parse([]byte(src)) })
	if err != nil {
		t.Fatalf("new reloader: %v", err)
	}

	h.tick(0, input.KeyEvent{Key: input.KeyD, Down: true}, input.KeyEvent{Key: input.KeySpace, Down: true})
	r.Set().Update()
	if !r.Set().Stick("move").Pressed() || !r.Set().Button("jump").Pressed() {
		t.Fatalf("expected the initial presses")
	}

	h.tick(100 * time.Millisecond)
	r.Set().Update()

	// same controls, new tuning, plus an action the old set did not have
	src += "  aim:\n    keys: [{left: j, right: l, up: i, down: k}]\n"
	if err := r.Reload(); err != nil {
		t.Fatalf("reload: %v", err)
	}

	h.tick(16 * time.Millisecond)
	r.Set().Update()
	move := r.Set().Stick("move")
	if move.Pressed() || move.Released() {
		t.Fatalf("a held stick must not press again after a reload")
	}
	if got := move.ValueInt(); got != (common.Point{X: 1}) {
		t.Fatalf("expected move right, got %+v", got)
	}
	if jump := r.Set().Button("jump"); jump.Pressed() || !jump.Down() {
		t.Fatalf("expected jump held without a new press")
	}

	// the repeat is still anchored to the press at 0
	h.tick(404 * time.Millisecond)
	r.Set().Update()
	if !move.Pressed() {
		t.Fatalf("expected a repeat pulse at 520ms")
	}
}

type memoryItems map[string][]byte

func (m memoryItems) LoadItem(key string) ([]byte, error) { return m[key], nil }

func (m memoryItems) SaveItem(key string, data []byte) error {
	m[key] = data
	return nil
}

type brokenItems struct{}

func (brokenItems) LoadItem(string) ([]byte, error) { return nil, errors.New("disk on fire") }
func (brokenItems) SaveItem(string, []byte) error   { return errors.New("disk on fire") }

func TestStore(t *testing.T) {
	s := &Store{items: memoryItems{}}

	spec, err := s.Load()
	if err != nil || spec != nil {
		t.Fatalf("expected nothing saved, got %v, %v", spec, err)
	}

	saved := &Spec{Buttons: map[string]ButtonSpec{
		"jump": {
			Keys:        []string{"space"},
			PressBuffer: Duration(120 * time.Millisecond),
			Repeat:      &RepeatSpec{Delay: Duration(time.Second), Interval: Duration(50 * time.Millisecond)},
		},
	}}
	if err := s.Save(saved); err != nil {
		t.Fatalf("save: %v", err)
	}

	spec, err = s.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	jump := spec.Buttons["jump"]
	if jump.PressBuffer.Std() != 120*time.Millisecond || jump.Repeat == nil || jump.Repeat.Interval.Std() != 50*time.Millisecond {
		t.Fatalf("unexpected saved spec %+v", jump)
	}

	fallback := func() (*Spec, error) { return &Spec{}, nil }
	if got, _ := s.Source(fallback)(); got.Buttons["jump"].Keys[0] != "space" {
		t.Fatalf("expected the saved spec to win")
	}

	broken := &Store{items: brokenItems{}}
	if err := broken.Save(saved); err == nil {
		t.Fatalf("expected a save error")
	}
	if got, err := broken.Source(fallback)(); err != nil || got == nil || len(got.Buttons) != 0 {
		t.Fatalf("expected the fallback spec, got %+v, %v", got, err)
	}
}
