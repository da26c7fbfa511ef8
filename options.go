package wavetile

import (
	"log/slog"

	"github.com/wavetile/wavetile/surface"
)

// Option configures a Renderer during creation.
// Use functional options to customize Renderer behavior.
//
// Example:
//
//	// Default horizontal waveform, 128px tall
//	r, err := wavetile.NewRenderer()
//
//	// Vertical gradient waveform with a progress overlay
//	r, err := wavetile.NewRenderer(
//	    wavetile.WithOrientation(wavetile.Vertical),
//	    wavetile.WithWaveFill(wavetile.FillHex("#a2c8f0", "#3b6ea5")),
//	    wavetile.WithProgressFill(wavetile.FillHex("#f0c0a2")),
//	)
type Option func(*rendererOptions)

// rendererOptions holds optional configuration for Renderer creation.
type rendererOptions struct {
	height         int
	pixelRatio     float64
	maxTileWidth   int
	orientation    Orientation
	waveFill       FillSpec
	progressFill   FillSpec
	bars           *BarStyle
	amplitudeScale float64
	normalize      bool
	parallelism    int
	factory        surface.Factory
	surfaceOpts    surface.Options
	logger         *slog.Logger
}

// defaultRendererOptions returns the default renderer options.
func defaultRendererOptions() rendererOptions {
	return rendererOptions{
		height:         128,
		pixelRatio:     1,
		maxTileWidth:   4000,
		orientation:    Horizontal,
		waveFill:       FillHex("#999"),
		amplitudeScale: 1,
		parallelism:    1,
		factory:        surface.New,
	}
}

// BarStyle configures discrete-bar rendering. All measurements are
// buffer pixels.
type BarStyle struct {
	// Width is the bar width. It must be positive for bars to draw.
	Width float64
	// Gap is the space between bars. Zero derives a gap from the bar
	// width, never narrower than one device pixel.
	Gap float64
	// Radius rounds bar corners. Zero draws plain rectangles.
	Radius float64
	// MinHeight raises every bar to at least this height, keeping
	// near-silent stretches visible.
	MinHeight float64
}

// WithHeight sets the rendered band height in buffer pixels per channel.
// The default is 128.
func WithHeight(px int) Option {
	return func(o *rendererOptions) {
		o.height = px
	}
}

// WithPixelRatio sets the device pixel ratio: the scale between layout
// pixels and buffer pixels. The default is 1.
func WithPixelRatio(r float64) Option {
	return func(o *rendererOptions) {
		o.pixelRatio = r
	}
}

// WithMaxTileWidth caps a single tile's buffer width in pixels; wider
// renderings split across more tiles. The default is 4000.
func WithMaxTileWidth(px int) Option {
	return func(o *rendererOptions) {
		o.maxTileWidth = px
	}
}

// WithOrientation sets the waveform's axis. The default is Horizontal.
func WithOrientation(o Orientation) Option {
	return func(opts *rendererOptions) {
		opts.orientation = o
	}
}

// WithWaveFill sets the primary fill. The default is solid #999.
func WithWaveFill(spec FillSpec) Option {
	return func(o *rendererOptions) {
		o.waveFill = spec
	}
}

// WithProgressFill sets the progress overlay fill and enables the
// progress surface on every tile. Without it no progress surfaces are
// created.
func WithProgressFill(spec FillSpec) Option {
	return func(o *rendererOptions) {
		o.progressFill = spec
	}
}

// WithBars renders discrete bars instead of the continuous envelope.
func WithBars(style BarStyle) Option {
	return func(o *rendererOptions) {
		s := style
		o.bars = &s
	}
}

// WithAmplitudeScale multiplies vertical amplitude. Ignored when
// normalization is enabled. The default is 1.
func WithAmplitudeScale(s float64) Option {
	return func(o *rendererOptions) {
		o.amplitudeScale = s
	}
}

// WithNormalize scales each pass to the series' own maximum, so the
// loudest sample always reaches full band height.
func WithNormalize() Option {
	return func(o *rendererOptions) {
		o.normalize = true
	}
}

// WithParallelism renders up to n tiles concurrently. Values below 2
// keep rendering sequential. Tiles share only the read-only series, so
// no locking is involved either way.
func WithParallelism(n int) Option {
	return func(o *rendererOptions) {
		o.parallelism = n
	}
}

// WithSurfaceFactory sets the factory used to create tile surfaces.
// Use this for dependency injection of custom surface implementations.
// The default is surface.New.
func WithSurfaceFactory(f surface.Factory) Option {
	return func(o *rendererOptions) {
		o.factory = f
	}
}

// WithSurfaceOptions passes surface configuration (such as the clear
// background) through to every surface the factory creates.
func WithSurfaceOptions(opts surface.Options) Option {
	return func(o *rendererOptions) {
		o.surfaceOpts = opts
	}
}

// WithLogger sets the logger for this renderer. The default is the
// package logger (see [SetLogger]).
func WithLogger(l *slog.Logger) Option {
	return func(o *rendererOptions) {
		o.logger = l
	}
}
