package wavetile

import (
	"testing"

	"github.com/wavetile/wavetile/surface"
)

func TestOrientationString(t *testing.T) {
	tests := []struct {
		o    Orientation
		want string
	}{
		{Horizontal, "horizontal"},
		{Vertical, "vertical"},
	}

	for _, tt := range tests {
		if got := tt.o.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", int(tt.o), got, tt.want)
		}
	}
}

func TestOrientationTransform(t *testing.T) {
	if m := Horizontal.transform(); !m.IsIdentity() {
		t.Errorf("Horizontal transform = %+v, want identity", m)
	}

	m := Vertical.transform()
	if m != surface.Swap() {
		t.Errorf("Vertical transform = %+v, want axis swap", m)
	}
	got := m.TransformPoint(surface.Pt(3, 7))
	if got != surface.Pt(7, 3) {
		t.Errorf("swap of (3, 7) = %+v, want (7, 3)", got)
	}
}
