// Copyright 2026 The wavetile Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"
	"io"
)

// Surface is the drawing target a waveform tile renders into.
//
// A Surface is a 2D canvas with a current fill brush and a current affine
// transform. Implementations may rasterize on the CPU, record commands, or
// delegate elsewhere; the shipped implementation is Raster.
//
// Surfaces are NOT thread-safe. Each surface should be used from a single
// goroutine, or external synchronization must be used.
//
// Example usage:
//
//	s, _ := surface.New(800, 128, surface.Options{})
//	defer s.Close()
//
//	s.SetFill(surface.SolidHex("#999"))
//	s.FillRect(10, 10, 100, 50)
//	img := s.Snapshot()
type Surface interface {
	// Width returns the pixel buffer width.
	Width() int

	// Height returns the pixel buffer height.
	Height() int

	// Resize changes the pixel buffer dimensions. Existing content is
	// discarded. Returns an error if width or height is <= 0.
	Resize(width, height int) error

	// SetDisplayWidth records the displayed (layout) width in logical
	// pixels. The buffer and displayed widths differ under device-pixel
	// scaling; geometry always operates in buffer pixels.
	SetDisplayWidth(px float64)

	// DisplayWidth returns the displayed (layout) width.
	DisplayWidth() float64

	// SetTransform replaces the current transform. It is never
	// accumulated; passing Identity() restores untransformed drawing.
	SetTransform(m Matrix)

	// SetFill replaces the current fill brush.
	SetFill(b Brush)

	// ClearRect erases a pixel rectangle to the background color,
	// bypassing the transform and the current brush.
	ClearRect(x, y, w, h float64)

	// FillRect fills a rectangle with the current brush, through the
	// current transform.
	FillRect(x, y, w, h float64)

	// FillPath fills a closed path with the current brush, through the
	// current transform. The path is not modified or consumed.
	FillPath(p *Path)

	// Snapshot returns a copy of the current pixels. Modifications to
	// the returned image do not affect the surface.
	Snapshot() *image.RGBA

	// EncodePNG writes the current pixels as PNG.
	EncodePNG(w io.Writer) error

	// EncodeJPEG writes the current pixels as JPEG with the given
	// quality (1-100).
	EncodeJPEG(w io.Writer, quality int) error

	// Close releases the surface. Drawing against a closed surface is a
	// safe no-op; encoding returns an error. Close is idempotent.
	Close() error
}

// Options carries opaque configuration applied at surface creation,
// fixed for the surface's lifetime.
type Options struct {
	// Background is the color ClearRect erases to. The zero value is
	// transparent black.
	Background RGBA
}

// Factory creates surfaces on behalf of a tile coordinator. It decouples
// tile management from the concrete surface implementation.
type Factory func(width, height int, opts Options) (Surface, error)
