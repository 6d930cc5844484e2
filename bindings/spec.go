package bindings

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultFile is the bindings file loaded when no name is given.
const DefaultFile = "default.yaml"

type Spec struct {
	Buttons  map[string]ButtonSpec  `yaml:"buttons"`
	Sticks   map[string]StickSpec   `yaml:"sticks"`
	Triggers map[string]TriggerSpec `yaml:"triggers"`
}

type ButtonSpec struct {
	Keys          []string           `yaml:"keys,omitempty"`
	Buttons       []ButtonSourceSpec `yaml:"buttons,omitempty"`
	Axes          []AxisSourceSpec   `yaml:"axes,omitempty"`
	PressBuffer   Duration           `yaml:"press_buffer,omitempty"`
	ReleaseBuffer Duration           `yaml:"release_buffer,omitempty"`
	Repeat        *RepeatSpec        `yaml:"repeat,omitempty"`
}

type ButtonSourceSpec struct {
	Slot   int    `yaml:"slot"`
	Button string `yaml:"button"`
}

type AxisSourceSpec struct {
	Slot        int     `yaml:"slot"`
	Axis        string  `yaml:"axis"`
	Threshold   float64 `yaml:"threshold"`
	GreaterThan bool    `yaml:"greater_than"`
}

type RepeatSpec struct {
	Delay    Duration `yaml:"delay"`
	Interval Duration `yaml:"interval"`
}

type StickSpec struct {
	Deadzone      float64        `yaml:"deadzone"`
	Keys          []QuadSpec     `yaml:"keys,omitempty"`
	Buttons       []QuadSpec     `yaml:"buttons,omitempty"`
	Axes          []AxisPairSpec `yaml:"axes,omitempty"`
	PressBuffer   Duration       `yaml:"press_buffer,omitempty"`
	ReleaseBuffer Duration       `yaml:"release_buffer,omitempty"`
	Repeat        *RepeatSpec    `yaml:"repeat,omitempty"`
}

// QuadSpec names four directions. Slot only applies to controller buttons.
type QuadSpec struct {
	Slot  int    `yaml:"slot,omitempty"`
	Left  string `yaml:"left"`
	Right string `yaml:"right"`
	Up    string `yaml:"up"`
	Down  string `yaml:"down"`
}

type AxisPairSpec struct {
	Slot       int     `yaml:"slot"`
	Horizontal string  `yaml:"horizontal"`
	Vertical   string  `yaml:"vertical"`
	Deadzone   float64 `yaml:"deadzone"`
}

type TriggerSpec struct {
	Script string `yaml:"script"`
}

// Duration reads and writes Go duration strings such as "150ms".
type Duration time.Duration

func (d Duration) Std() time.Duration { return time.Duration(d) }

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return fmt.Errorf("bindings: line %d: duration must be a string: %w", node.Line, err)
	}
	if s == "" {
		*d = 0
		return nil
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("bindings: line %d: %w", node.Line, err)
	}
	if v < 0 {
		return fmt.Errorf("bindings: line %d: negative duration %s", node.Line, s)
	}
	*d = Duration(v)
	return nil
}

func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

func (d Duration) IsZero() bool { return d == 0 }

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("bindings: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("bindings: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

func Parse(data []byte) (*Spec, error) {
	var spec Spec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("bindings: unmarshal: %w", err)
	}
	return &spec, nil
}

func Encode(spec *Spec) ([]byte, error) {
	data, err := yaml.Marshal(spec)
	if err != nil {
		return nil, fmt.Errorf("bindings: marshal: %w", err)
	}
	return data, nil
}

// LoadDefault loads DefaultFile, preferring the on-disk copy.
func LoadDefault() (*Spec, error) {
	spec, err := LoadSpec[Spec](DefaultFile)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}
