package bindings

import "testing"

func TestCleanPaths(t *testing.T) {
	cases := []struct {
		in, spec, script string
	}{
		{"default.yaml", "default.yaml", "scripts/default.yaml"},
		{"bindings/default.yaml", "default.yaml", "scripts/default.yaml"},
		{"combo.tengo", "combo.tengo", "scripts/combo.tengo"},
		{"scripts/combo.tengo", "scripts/combo.tengo", "scripts/combo.tengo"},
		{"bindings/scripts/combo.tengo", "scripts/combo.tengo", "scripts/combo.tengo"},
		{"", "", ""},
	}
	for _, c := range cases {
		if got := cleanSpecPath(c.in); got != c.spec {
			t.Fatalf("cleanSpecPath(%q) = %q, expected %q", c.in, got, c.spec)
		}
		if got := cleanScriptPath(c.in); got != c.script {
			t.Fatalf("cleanScriptPath(%q) = %q, expected %q", c.in, got, c.script)
		}
	}
}

func TestEmbeddedScriptLoads(t *testing.T) {
	if _, err := LoadScript("dash_attack.tengo"); err != nil {
		t.Fatalf("load embedded script: %v", err)
	}
	if _, err := Load("missing.yaml"); err == nil {
		t.Fatalf("expected an error for a missing file")
	}
}
