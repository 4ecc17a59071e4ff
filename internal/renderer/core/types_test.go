package core

import (
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

func TestRuneWidth(t *testing.T) {
	tests := []struct {
		r    rune
		want int
	}{
		{'a', 1},
		{'é', 1},
		{'中', 2},
		{'\t', 0},
	}
	for _, tt := range tests {
		if got := RuneWidth(tt.r); got != tt.want {
			t.Errorf("RuneWidth(%q) = %d, want %d", tt.r, got, tt.want)
		}
	}
}

func TestColorFromColorful(t *testing.T) {
	c := ColorFromColorful(colorful.Color{R: 1, G: 0.5, B: 0})
	if c.R != 255 || c.B != 0 || c.Default {
		t.Errorf("got %+v", c)
	}
}

func TestStyleReverse(t *testing.T) {
	s := DefaultStyle().Reverse()
	if !s.Attributes.Has(AttrReverse) {
		t.Error("reverse attribute not set")
	}
	if DefaultStyle().Attributes.Has(AttrReverse) {
		t.Error("Reverse mutated the receiver")
	}
}

func TestRectFromSize(t *testing.T) {
	r := RectFromSize(1, 2, 3, 4)
	if r != (ScreenRect{Top: 1, Left: 2, Bottom: 4, Right: 6}) {
		t.Errorf("got %+v", r)
	}
}
