package engine

import (
	"testing"

	"propfolio/internal/models"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   any
		def  string
		want string
	}{
		{"string passes through", "Active", "", "Active"},
		{"label object yields name", models.Label{Name: "Active", Color: "emerald"}, "", "Active"},
		{"label pointer yields name", &models.Label{Name: "Passed"}, "", "Passed"},
		{"map shape yields name", map[string]any{"name": "Failed", "color": "red"}, "", "Failed"},
		{"nil falls back", nil, "Active", "Active"},
		{"empty string falls back", "", "fallback", "fallback"},
		{"empty label falls back", models.Label{Color: "red"}, "fallback", "fallback"},
		{"nil label pointer falls back", (*models.Label)(nil), "fallback", "fallback"},
		{"unexpected shape falls back", 42, "fallback", "fallback"},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in, tt.def); got != tt.want {
			t.Fatalf("%s: Normalize(%#v, %q) = %q, want %q", tt.name, tt.in, tt.def, got, tt.want)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	for _, in := range []any{"Active", models.Label{Name: "Active", Color: "x"}, "", nil} {
		once := Normalize(in, "")
		if twice := Normalize(once, ""); twice != once {
			t.Fatalf("Normalize not idempotent: %q -> %q", once, twice)
		}
	}
}

func TestNormalizeStringAndObjectEqual(t *testing.T) {
	if Normalize("Active", "") != Normalize(models.Label{Name: "Active", Color: "x"}, "") {
		t.Fatalf("string and object labels must normalize equal")
	}
}
