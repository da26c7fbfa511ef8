// Copyright 2026 The wavetile Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/vector"
)

// ErrClosed is returned when encoding is attempted on a closed surface.
var ErrClosed = errors.New("surface: closed")

// Raster is a CPU-backed Surface rendering into an RGBA pixel buffer.
// Path fills are rasterized anti-aliased by golang.org/x/image/vector and
// composited source-over. Solid fills take the rasterizer's uniform-source
// fast path; gradient fills render a coverage mask first and composite the
// brush through it.
type Raster struct {
	width        int
	height       int
	displayWidth float64
	opts         Options

	rgba      *image.RGBA
	ras       *vector.Rasterizer
	transform Matrix
	fill      Brush
	closed    bool
}

var _ Surface = (*Raster)(nil)

// New creates a Raster surface with the given pixel buffer dimensions.
func New(width, height int, opts Options) (Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid dimensions: width=%d, height=%d (both must be > 0)", width, height)
	}

	s := &Raster{
		width:        width,
		height:       height,
		displayWidth: float64(width),
		opts:         opts,
		rgba:         image.NewRGBA(image.Rect(0, 0, width, height)),
		ras:          vector.NewRasterizer(width, height),
		transform:    Identity(),
		fill:         Solid(Black),
	}
	s.ClearRect(0, 0, float64(width), float64(height))
	return s, nil
}

// Width returns the pixel buffer width.
func (s *Raster) Width() int { return s.width }

// Height returns the pixel buffer height.
func (s *Raster) Height() int { return s.height }

// Resize reallocates the pixel buffer. Contents are discarded; the
// transform and fill brush are preserved. No-op if dimensions are
// unchanged.
func (s *Raster) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid dimensions: width=%d, height=%d (both must be > 0)", width, height)
	}
	if s.closed {
		return ErrClosed
	}
	if s.width == width && s.height == height {
		return nil
	}

	s.width = width
	s.height = height
	s.rgba = image.NewRGBA(image.Rect(0, 0, width, height))
	s.ras = vector.NewRasterizer(width, height)
	s.ClearRect(0, 0, float64(width), float64(height))
	return nil
}

// SetDisplayWidth records the displayed (layout) width.
func (s *Raster) SetDisplayWidth(px float64) { s.displayWidth = px }

// DisplayWidth returns the displayed (layout) width.
func (s *Raster) DisplayWidth() float64 { return s.displayWidth }

// SetTransform replaces the current transform.
func (s *Raster) SetTransform(m Matrix) { s.transform = m }

// SetFill replaces the current fill brush.
func (s *Raster) SetFill(b Brush) {
	if b != nil {
		s.fill = b
	}
}

// ClearRect erases a pixel rectangle to the background color. The rect is
// addressed in raw buffer pixels; the transform does not apply.
func (s *Raster) ClearRect(x, y, w, h float64) {
	if s.closed {
		return
	}

	x0 := clampInt(int(math.Floor(x)), 0, s.width)
	y0 := clampInt(int(math.Floor(y)), 0, s.height)
	x1 := clampInt(int(math.Ceil(x+w)), 0, s.width)
	y1 := clampInt(int(math.Ceil(y+h)), 0, s.height)
	if x0 >= x1 || y0 >= y1 {
		return
	}

	// image.RGBA stores premultiplied components.
	bg := color.RGBAModel.Convert(s.opts.Background.Color()).(color.RGBA)
	for yy := y0; yy < y1; yy++ {
		i := s.rgba.PixOffset(x0, yy)
		for xx := x0; xx < x1; xx++ {
			s.rgba.Pix[i+0] = bg.R
			s.rgba.Pix[i+1] = bg.G
			s.rgba.Pix[i+2] = bg.B
			s.rgba.Pix[i+3] = bg.A
			i += 4
		}
	}
}

// FillRect fills a rectangle with the current brush, through the current
// transform.
func (s *Raster) FillRect(x, y, w, h float64) {
	if w <= 0 || h <= 0 {
		return
	}
	p := NewPath()
	p.Rectangle(x, y, w, h)
	s.FillPath(p)
}

// FillPath fills a path with the current brush, through the current
// transform.
func (s *Raster) FillPath(p *Path) {
	if s.closed || p == nil || len(p.Elements()) == 0 {
		return
	}

	tp := p
	if !s.transform.IsIdentity() {
		tp = p.Transform(s.transform)
	}

	s.ras.Reset(s.width, s.height)
	for _, elem := range tp.Elements() {
		switch e := elem.(type) {
		case MoveTo:
			s.ras.MoveTo(float32(e.Point.X), float32(e.Point.Y))
		case LineTo:
			s.ras.LineTo(float32(e.Point.X), float32(e.Point.Y))
		case CubicTo:
			s.ras.CubeTo(
				float32(e.Control1.X), float32(e.Control1.Y),
				float32(e.Control2.X), float32(e.Control2.Y),
				float32(e.Point.X), float32(e.Point.Y),
			)
		case Close:
			s.ras.ClosePath()
		}
	}

	bounds := s.rgba.Bounds()
	if solid, ok := s.fill.(SolidBrush); ok {
		s.ras.Draw(s.rgba, bounds, image.NewUniform(solid.Color.Color()), image.Point{})
		return
	}

	// Gradient source: rasterize coverage into an alpha mask, then
	// composite the brush through it.
	mask := image.NewAlpha(bounds)
	s.ras.Draw(mask, bounds, image.Opaque, image.Point{})
	draw.DrawMask(s.rgba, bounds, &brushImage{brush: s.fill, bounds: bounds},
		image.Point{}, mask, image.Point{}, draw.Over)
}

// Snapshot returns a copy of the current pixels.
func (s *Raster) Snapshot() *image.RGBA {
	if s.closed || s.rgba == nil {
		return image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	}
	out := image.NewRGBA(s.rgba.Bounds())
	copy(out.Pix, s.rgba.Pix)
	return out
}

// EncodePNG writes the current pixels as PNG.
func (s *Raster) EncodePNG(w io.Writer) error {
	if s.closed {
		return ErrClosed
	}
	return png.Encode(w, s.rgba)
}

// EncodeJPEG writes the current pixels as JPEG with the given quality
// (1-100). Non-positive quality selects a default of 92.
func (s *Raster) EncodeJPEG(w io.Writer, quality int) error {
	if s.closed {
		return ErrClosed
	}
	return jpeg.Encode(w, s.rgba, &jpeg.Options{Quality: normalizeQuality(quality)})
}

func normalizeQuality(quality int) int {
	switch {
	case quality <= 0:
		return 92
	case quality > 100:
		return 100
	}
	return quality
}

// Close releases the pixel buffer. Idempotent.
func (s *Raster) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.rgba = nil
	s.ras = nil
	return nil
}

// brushImage adapts a Brush to image.Image so the standard draw package
// can source gradient pixels through a coverage mask.
type brushImage struct {
	brush  Brush
	bounds image.Rectangle
}

func (b *brushImage) ColorModel() color.Model { return color.NRGBAModel }

func (b *brushImage) Bounds() image.Rectangle { return b.bounds }

// At samples the brush at the pixel center.
func (b *brushImage) At(x, y int) color.Color {
	return b.brush.ColorAt(float64(x)+0.5, float64(y)+0.5).Color()
}

// clampInt restricts v to [lo, hi].
func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
