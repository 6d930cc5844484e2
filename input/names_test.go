package input

import "testing"

func TestKeyNames(t *testing.T) {
	for k := KeyUnknown; k < keyCount; k++ {
		name := k.String()
		got, err := ParseKey(name)
		if err != nil {
			t.Fatalf("%d: %v", k, err)
		}
		if got != k {
			t.Fatalf("%q parsed as %d, expected %d", name, got, k)
		}
	}

	if got, _ := ParseKey("  Shift_Left "); got != KeyShiftLeft {
		t.Fatalf("expected lenient parsing, got %v", got)
	}
	if _, err := ParseKey("hyper"); err == nil {
		t.Fatalf("expected an error for an unknown key")
	}
	if got := Key(-3).String(); got != "key(-3)" {
		t.Fatalf("unexpected name %q", got)
	}
}

func TestControllerNames(t *testing.T) {
	cases := []struct {
		name  string
		parse func(string) (int, error)
		valid []string
	}{
		{
			name: "button",
			parse: func(s string) (int, error) {
				b, err := ParseButton(s)
				return int(b), err
			},
			valid: []string{"a", "start", "left_shoulder", "right"},
		},
		{
			name: "axis",
			parse: func(s string) (int, error) {
				a, err := ParseAxis(s)
				return int(a), err
			},
			valid: []string{"left_x", "right_trigger"},
		},
		{
			name: "mouse",
			parse: func(s string) (int, error) {
				b, err := ParseMouseButton(s)
				return int(b), err
			},
			valid: []string{"left", "forward"},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			for _, v := range c.valid {
				if _, err := c.parse(v); err != nil {
					t.Fatalf("%q: %v", v, err)
				}
			}
			if _, err := c.parse(""); err == nil {
				t.Fatalf("expected an error for an empty name")
			}
			if _, err := c.parse("bogus"); err == nil {
				t.Fatalf("expected an error for an unknown name")
			}
		})
	}

	if ButtonNone.String() != "none" || AxisRightTrigger.String() != "right_trigger" {
		t.Fatalf("unexpected names %q %q", ButtonNone, AxisRightTrigger)
	}
}
