// Package wavetile renders audio waveforms into pixel tiles.
//
// # Overview
//
// wavetile is a Pure Go waveform rendering core. It turns amplitude data
// (interleaved max/min envelope pairs) into filled waveform images, drawn
// either as a continuous mirrored envelope or as discrete bars. Long
// waveforms are split across fixed-width tiles so that arbitrarily wide
// renderings never exceed a single buffer's size limits.
//
// # Quick Start
//
//	import "github.com/wavetile/wavetile"
//
//	series := wavetile.SeriesFromPairs(maxima, minima)
//
//	r, err := wavetile.NewRenderer(
//		wavetile.WithHeight(128),
//		wavetile.WithWaveFill(wavetile.FillHex("#4353FF")),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer r.Close()
//
//	if err := r.Layout(1200); err != nil {
//		log.Fatal(err)
//	}
//	if err := r.Render(series); err != nil {
//		log.Fatal(err)
//	}
//
//	f, _ := os.Create("waveform.png")
//	defer f.Close()
//	r.WriteImage(f, wavetile.FormatPNG, 0)
//
// # Architecture
//
// The library is organized into:
//   - Public API: Renderer, Tile, AmplitudeSeries, FillSpec
//   - surface: CPU rasterization (paths, brushes, transforms)
//   - peaks: envelope extraction from PCM samples and audio files
//   - integration/waveterm: ANSI terminal frame presentation
//
// A Renderer owns a strip of tiles and drives the per-tile drawing
// operations. A Tile can also be used directly for custom layouts.
//
// # Coordinate System
//
// Uses standard raster coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// In vertical orientation the same drawing code runs unchanged; a swap
// transform on each surface exchanges the axes at rasterization time.
//
// # Concurrency
//
// A Renderer and its tiles are confined to one goroutine. Rendering
// across tiles can opt into internal parallelism via WithParallelism.
// Exports of tile contents are safe to consume from other goroutines
// because they snapshot pixels before encoding.
package wavetile

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
