package theme

import (
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		want Theme
	}{
		{"default", Default},
		{"dark", Dark},
		{"NEON", Neon},
		{"matrix", Matrix},
		{"paper", Paper},
		{"", Default},
		{"nope", Default},
	}
	for _, tt := range tests {
		if got := Parse(tt.name); got != tt.want {
			t.Errorf("Parse(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestStringRoundTrip(t *testing.T) {
	for _, th := range []Theme{Default, Dark, Neon, Matrix, Paper} {
		if got := Parse(th.String()); got != th {
			t.Errorf("Parse(%q) = %v, want %v", th.String(), got, th)
		}
	}
}

func TestPaletteColorless(t *testing.T) {
	pal := PaletteFor(Neon, false)
	if pal != (Palette{}) {
		t.Errorf("colorless palette not empty: %+v", pal)
	}
}

func TestPaletteHasColors(t *testing.T) {
	for _, th := range []Theme{Default, Dark, Neon, Matrix, Paper} {
		pal := PaletteFor(th, true)
		if pal.Prompt == "" || pal.Err == "" || pal.OK == "" {
			t.Errorf("theme %v palette missing core colors", th)
		}
	}
}

func TestPromptText(t *testing.T) {
	if got := PromptText(false, Palette{}, false); got != "gust> " {
		t.Errorf("clean prompt = %q", got)
	}
	if got := PromptText(true, Palette{}, false); got != "*gust> " {
		t.Errorf("dirty prompt = %q", got)
	}

	pal := PaletteFor(Default, true)
	colored := PromptText(true, pal, true)
	if !strings.Contains(colored, "*") || !strings.Contains(colored, "\x1b[") {
		t.Errorf("colored dirty prompt = %q", colored)
	}
	if !strings.HasSuffix(colored, " ") {
		t.Error("prompt missing trailing space")
	}
}

func TestGradient(t *testing.T) {
	pal := PaletteFor(Matrix, true)
	if got := Gradient("hi", pal, false); got != "hi" {
		t.Errorf("colorless gradient = %q", got)
	}
	got := Gradient("hi", pal, true)
	if !strings.HasSuffix(got, Reset) {
		t.Errorf("gradient %q missing reset", got)
	}
	if !strings.Contains(got, "h") || !strings.Contains(got, "i") {
		t.Errorf("gradient %q dropped characters", got)
	}
}
