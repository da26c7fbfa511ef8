package wavetile

import (
	"fmt"
	"math"

	"github.com/wavetile/wavetile/surface"
)

// Tile renders one fractional span of a waveform into a drawing surface
// pair: a primary "wave" surface and an optional "progress" surface that
// receives identical geometry with its own fill style. Splitting a long
// waveform across tiles keeps each backing buffer under the maximum
// surface width while the tiles jointly draw one continuous shape.
//
// A Tile trusts the span it is assigned. Span bookkeeping across tiles
// (ordering, contiguity, covering [0,1]) is the coordinator's job; the
// shipped [Renderer] maintains those invariants by construction.
//
// The zero-value-ish lifecycle is explicit: a tile starts without
// surfaces, draws are silent no-ops until [Tile.AttachWave] runs, and
// [Tile.Close] is safe at any point.
type Tile struct {
	start, end float64
	width      int // along-waveform buffer px
	height     int // band buffer px

	// halfPixel aligns sample columns to pixel centers for crisp fills.
	// Fixed at construction from the device pixel ratio.
	halfPixel float64

	orientation Orientation
	wave        surface.Surface
	progress    surface.Surface
}

// NewTile creates an empty tile for the given device pixel ratio.
// Non-positive ratios fall back to 1.
func NewTile(pixelRatio float64) *Tile {
	if pixelRatio <= 0 {
		pixelRatio = 1
	}
	return &Tile{halfPixel: 0.5 / pixelRatio}
}

// AttachWave attaches the primary drawing surface.
func (t *Tile) AttachWave(s surface.Surface) { t.wave = s }

// AttachProgress attaches the secondary surface. It shares the wave
// surface's dimensions and span but is filled independently.
func (t *Tile) AttachProgress(s surface.Surface) { t.progress = s }

// Span returns the fraction of the overall waveform this tile draws,
// as a half-open interval [start, end) in 0..1.
func (t *Tile) Span() (start, end float64) { return t.start, t.end }

// Width returns the along-waveform buffer width in pixels.
func (t *Tile) Width() int { return t.width }

// Height returns the band buffer height in pixels.
func (t *Tile) Height() int { return t.height }

// recomputeSpan derives a tile's fractional span from current layout
// geometry. Pure: the span is always re-derived from actual positions
// rather than trusting previously assigned values, so it stays correct
// across resizes. Zero total width yields the empty span (0, 0).
func recomputeSpan(leftPx, elementWidthPx, totalWidthPx float64) (start, end float64) {
	if totalWidthPx <= 0 {
		return 0, 0
	}
	start = leftPx / totalWidthPx
	end = start + elementWidthPx/totalWidthPx
	return start, end
}

// UpdateDimensions recomputes the tile's span from layout geometry and
// resizes its surfaces. leftPx, elementWidthPx and totalWidthPx are
// displayed (layout) pixels; width and height are buffer pixels, which
// differ from displayed size under device-pixel-ratio scaling. The tile
// cannot query layout itself, so the caller passes its left offset
// explicitly.
//
// Vertical tiles allocate swapped buffers (height x width) so the
// axis-swapped geometry lands fully inside the surface.
func (t *Tile) UpdateDimensions(leftPx, elementWidthPx, totalWidthPx float64, width, height int) error {
	t.start, t.end = recomputeSpan(leftPx, elementWidthPx, totalWidthPx)
	t.width = width
	t.height = height

	devW, devH := width, height
	if t.orientation == Vertical {
		devW, devH = height, width
	}
	if t.wave != nil {
		if err := t.wave.Resize(devW, devH); err != nil {
			return fmt.Errorf("wavetile: resize wave surface: %w", err)
		}
		t.wave.SetDisplayWidth(elementWidthPx)
	}
	if t.progress != nil {
		if err := t.progress.Resize(devW, devH); err != nil {
			return fmt.Errorf("wavetile: resize progress surface: %w", err)
		}
		t.progress.SetDisplayWidth(elementWidthPx)
	}
	return nil
}

// Clear erases both surfaces to their background. Every render pass
// starts with a full clear; there is no dirty-region tracking.
func (t *Tile) Clear() {
	if t.wave != nil {
		t.wave.ClearRect(0, 0, float64(t.wave.Width()), float64(t.wave.Height()))
	}
	if t.progress != nil {
		t.progress.ClearRect(0, 0, float64(t.progress.Width()), float64(t.progress.Height()))
	}
}

// ApplyOrientation sets the per-pass drawing transform on both surfaces:
// the axis swap for vertical, identity for horizontal. The transform
// replaces any previous one, so reapplying each pass never accumulates.
func (t *Tile) ApplyOrientation(o Orientation) {
	t.orientation = o
	m := o.transform()
	if t.wave != nil {
		t.wave.SetTransform(m)
	}
	if t.progress != nil {
		t.progress.SetTransform(m)
	}
}

// SetFillStyles resolves the wave and progress fill specifications
// against the current band height and applies them as each surface's
// fill style. Gradient extents depend on height, so this must run again
// after any resize; the Renderer does so every pass. A nil spec (or an
// empty gradient) leaves the surface's current brush in place.
func (t *Tile) SetFillStyles(wave, progress FillSpec) {
	h := float64(t.height)
	if t.wave != nil {
		if b := t.orientedBrush(resolveFillStyle(wave, h)); b != nil {
			t.wave.SetFill(b)
		}
	}
	if t.progress != nil {
		if b := t.orientedBrush(resolveFillStyle(progress, h)); b != nil {
			t.progress.SetFill(b)
		}
	}
}

// orientedBrush maps gradient endpoints into device space. Brushes are
// evaluated in device coordinates at rasterization time while gradient
// extents are specified in drawing coordinates, so vertical orientation
// swaps the endpoint axes exactly as the surface transform swaps drawn
// geometry. Solid brushes pass through untouched.
func (t *Tile) orientedBrush(b surface.Brush) surface.Brush {
	lg, ok := b.(*surface.LinearGradientBrush)
	if !ok || t.orientation != Vertical {
		return b
	}
	lg.Start = surface.Pt(lg.Start.Y, lg.Start.X)
	lg.End = surface.Pt(lg.End.Y, lg.End.X)
	return lg
}

// DrawWaveform rasterizes this tile's slice of the series as one closed
// hull: the upper (max) envelope walked forward, the lower (min) envelope
// walked back, filled in a single operation with no stroke. A closed
// top+bottom hull renders asymmetric max/min data correctly and needs no
// overlapping fills.
//
// absMax is the largest-magnitude sample across the entire series,
// computed once globally so every tile shares one vertical scale; it is
// always an explicit parameter, never cached here. halfHeight is the
// zero line's offset within the band and offsetY the band's offset from
// the surface top, which stacks multiple channels in one surface.
//
// The drawn window extends one sample past the tile's nominal end so
// adjacent tiles' edges coincide exactly; on the final tile that extra
// index reads past the series and contributes amplitude 0.
func (t *Tile) DrawWaveform(series AmplitudeSeries, absMax, halfHeight, offsetY float64) {
	if t.wave == nil && t.progress == nil {
		return
	}
	n := series.Pairs()
	first := int(math.Round(float64(n) * t.start))
	last := int(math.Round(float64(n)*t.end)) + 1
	span := last - first - 1
	if span <= 0 {
		return
	}
	scale := float64(t.width) / float64(span)
	verticalUnit := absMax / halfHeight

	// A non-positive vertical unit (silent series or degenerate band)
	// flattens every sample onto the zero line.
	amp := func(v float64) float64 {
		if verticalUnit <= 0 {
			return 0
		}
		return math.Round(v / verticalUnit)
	}

	zero := halfHeight + offsetY
	p := surface.NewPath()
	p.MoveTo(0, zero)
	p.LineTo(0, zero-amp(series.MaxAt(first)))
	for i := first; i < last; i++ {
		p.LineTo(math.Round(float64(i-first)*scale)+t.halfPixel, zero-amp(series.MaxAt(i)))
	}
	for j := last - 1; j >= first; j-- {
		p.LineTo(math.Round(float64(j-first)*scale)+t.halfPixel, zero-amp(series.MinAt(j)))
	}
	p.LineTo(0, zero-amp(series.MinAt(first)))
	p.Close()

	t.fillPath(p)
}

// DrawBar fills one rectangle on both surfaces, with quarter-circle
// corners when radius is positive. Zero height draws nothing at all;
// negative height flips the bar upward from y, so bars may extend either
// way from a baseline.
func (t *Tile) DrawBar(x, y, width, height, radius float64) {
	if height == 0 {
		return
	}
	if height < 0 {
		height = -height
		y -= height
	}
	if radius > 0 {
		p := surface.NewPath()
		p.RoundedRectangle(x, y, width, height, radius)
		t.fillPath(p)
		return
	}
	if t.wave != nil {
		t.wave.FillRect(x, y, width, height)
	}
	if t.progress != nil {
		t.progress.FillRect(x, y, width, height)
	}
}

func (t *Tile) fillPath(p *surface.Path) {
	if t.wave != nil {
		t.wave.FillPath(p)
	}
	if t.progress != nil {
		t.progress.FillPath(p)
	}
}

// Close releases both surface handles. Idempotent, and safe on a tile
// whose surfaces were never attached.
func (t *Tile) Close() error {
	var err error
	if t.wave != nil {
		err = t.wave.Close()
		t.wave = nil
	}
	if t.progress != nil {
		if cerr := t.progress.Close(); err == nil {
			err = cerr
		}
		t.progress = nil
	}
	return err
}
