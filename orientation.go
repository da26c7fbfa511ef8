package wavetile

import "github.com/wavetile/wavetile/surface"

// Orientation selects the axis the waveform runs along. Drawing math is
// always written for the horizontal case; vertical rendering reuses it
// unchanged by applying an axis-swap transform to each surface, so the
// two orientations cannot drift apart.
type Orientation int

const (
	// Horizontal renders the waveform left to right.
	Horizontal Orientation = iota
	// Vertical renders the waveform top to bottom.
	Vertical
)

// String returns the orientation name.
func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// transform returns the surface transform for this orientation: the
// reflection across y = x for vertical, identity otherwise.
func (o Orientation) transform() surface.Matrix {
	if o == Vertical {
		return surface.Swap()
	}
	return surface.Identity()
}
