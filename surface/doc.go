// Copyright 2026 The wavetile Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package surface provides the 2D drawing target used by the waveform
// renderer.
//
// Surface is the rendering target abstraction that decouples waveform
// geometry from rasterization. A tile draws through the Surface interface
// only; the shipped Raster implementation renders on the CPU into an
// *image.RGBA using golang.org/x/image/vector for anti-aliased path fills.
//
// # Drawing model
//
// The drawing model is a small immediate-mode canvas: a surface holds a
// current fill brush and a current affine transform, and paints filled
// rectangles and filled paths with them. There is no stroking; waveforms
// are closed filled hulls.
//
//	s, _ := surface.New(800, 128, surface.Options{})
//	defer s.Close()
//
//	s.SetFill(surface.Solid(surface.Hex("#4353ff")))
//	p := surface.NewPath()
//	p.MoveTo(0, 64)
//	p.LineTo(400, 10)
//	p.LineTo(800, 64)
//	p.Close()
//	s.FillPath(p)
//
//	var buf bytes.Buffer
//	_ = s.EncodePNG(&buf)
//
// # Brushes
//
// Two brush kinds exist: Solid (a single RGBA color) and
// LinearGradientBrush (multi-stop linear gradient, interpolated in linear
// sRGB). The Brush interface is sealed; both kinds can be evaluated at a
// point via ColorAt, which the rasterizer uses for per-pixel gradient
// sourcing.
//
// # Transforms
//
// SetTransform replaces the surface's transform; it is never accumulated.
// The transform applies to FillRect and FillPath geometry. ClearRect
// always addresses raw buffer pixels, because a full clear must reach the
// whole buffer regardless of orientation.
package surface
