package wavetile

import "github.com/wavetile/wavetile/surface"

// FillSpec describes how a waveform is painted: a single color or an
// ordered list of colors forming a vertical gradient. It mirrors the
// two-branch color argument of canvas-style waveform renderers.
//
// FillSpec is a sealed interface; construct values with [SolidFill],
// [GradientFill], or [FillHex].
type FillSpec interface {
	isFillSpec()
}

type solidFill struct {
	color surface.RGBA
}

func (solidFill) isFillSpec() {}

type gradientFill struct {
	colors []surface.RGBA
}

func (gradientFill) isFillSpec() {}

// SolidFill paints with a single color.
func SolidFill(c surface.RGBA) FillSpec {
	return solidFill{color: c}
}

// GradientFill paints with a vertical linear gradient through the given
// colors, evenly spaced from the top of the surface.
func GradientFill(colors ...surface.RGBA) FillSpec {
	cs := make([]surface.RGBA, len(colors))
	copy(cs, colors)
	return gradientFill{colors: cs}
}

// FillHex builds a FillSpec from hex color strings: one string yields a
// solid fill, several a gradient. No strings yields nil (no fill change).
func FillHex(hexes ...string) FillSpec {
	switch len(hexes) {
	case 0:
		return nil
	case 1:
		return SolidFill(surface.Hex(hexes[0]))
	}
	colors := make([]surface.RGBA, len(hexes))
	for i, h := range hexes {
		colors[i] = surface.Hex(h)
	}
	return gradientFill{colors: colors}
}

// resolveFillStyle maps a fill specification to a concrete brush. A
// gradient of k colors places stop i at offset i/k, NOT i/(k-1): the last
// color never reaches offset 1.0 exactly. This matches the stop spacing
// of the canvas waveform renderers this package mirrors.
//
// A nil spec or an empty gradient resolves to nil, meaning "keep whatever
// brush is currently set".
func resolveFillStyle(spec FillSpec, height float64) surface.Brush {
	switch f := spec.(type) {
	case solidFill:
		return surface.Solid(f.color)
	case gradientFill:
		k := len(f.colors)
		if k == 0 {
			return nil
		}
		g := surface.NewLinearGradient(0, 0, 0, height)
		for i, c := range f.colors {
			g.AddColorStop(float64(i)/float64(k), c)
		}
		return g
	}
	return nil
}
