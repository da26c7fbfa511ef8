// Copyright 2026 The wavetile Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package waveterm presents rendered waveforms in a terminal.
//
// It bridges a wavetile.Renderer to any ANSI-capable terminal by
// converting stitched frames into truecolor half-block cells. The data
// flow is:
//
//	Renderer (tiles) -> Image (CPU pixels) -> ANSI frame -> io.Writer
//
// # Architecture
//
// View wraps a Renderer and owns a FrameScheduler so bursts of updates
// coalesce to one repaint per frame interval:
//
//   - Invalidate() marks the view dirty; any number of calls within one
//     interval produce a single repaint
//   - Present() writes one frame synchronously
//   - WriteFrame() is the stateless converter behind both
//
// # Usage
//
//	view, err := waveterm.New(r, os.Stdout)
//	if err != nil {
//		...
//	}
//	defer view.Close()
//
//	// Re-render on updates; repaints coalesce per frame interval.
//	_ = r.Render(series)
//	view.Invalidate()
//
// # Thread Safety
//
// Invalidate is safe from any goroutine. Present and Close serialize
// frame writes internally, so scheduled repaints and direct Present
// calls never interleave output.
package waveterm
