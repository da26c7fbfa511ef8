package wavetile

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"io"
	"log/slog"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/wavetile/wavetile/surface"
)

// Renderer coordinates a tile set: it decides how many tiles exist and
// their spans (Layout), drives the per-pass drawing sequence across them
// (Render), and stitches or exports the results. It holds no reference
// to series data between passes.
//
// A Renderer is confined to one goroutine; only its internal per-tile
// fan-out runs concurrently.
type Renderer struct {
	opts       rendererOptions
	tiles      []*Tile
	totalWidth int // buffer px, 0 until Layout
	channels   int // stacked channels in each surface
	closed     bool
}

// NewRenderer creates a renderer. With no options it renders a 128px
// tall horizontal waveform in solid #999 at pixel ratio 1.
func NewRenderer(opts ...Option) (*Renderer, error) {
	o := defaultRendererOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.height <= 0 {
		return nil, fmt.Errorf("wavetile: invalid height: %d (must be > 0)", o.height)
	}
	if o.pixelRatio <= 0 {
		return nil, fmt.Errorf("wavetile: invalid pixel ratio: %g (must be > 0)", o.pixelRatio)
	}
	if o.maxTileWidth <= 0 {
		return nil, fmt.Errorf("wavetile: invalid max tile width: %d (must be > 0)", o.maxTileWidth)
	}
	if o.factory == nil {
		o.factory = surface.New
	}
	if o.parallelism < 1 {
		o.parallelism = 1
	}
	if o.amplitudeScale <= 0 {
		o.amplitudeScale = 1
	}
	return &Renderer{opts: o, channels: 1}, nil
}

// logger returns the renderer's logger, falling back to the package
// logger so SetLogger keeps working for renderers created earlier.
func (r *Renderer) logger() *slog.Logger {
	if r.opts.logger != nil {
		return r.opts.logger
	}
	return Logger()
}

// TileCount returns the number of tiles in the current layout.
func (r *Renderer) TileCount() int { return len(r.tiles) }

// Tile returns tile i of the current layout, or nil when out of range.
// Useful for per-tile exports; treat the tile as read-only while the
// renderer owns it.
func (r *Renderer) Tile(i int) *Tile {
	if i < 0 || i >= len(r.tiles) {
		return nil
	}
	return r.tiles[i]
}

// Render redraws every tile from scratch: clear, orientation, fill
// styles, then the waveform hull (or bars) per channel. Extra channels
// stack below the first, each in its own band of the same surfaces;
// passing a different channel count than the previous pass re-runs
// layout with the new band height.
//
// Rendering is a full redraw each time, never incremental. Wrap bursts
// of calls in a [FrameScheduler] to coalesce them.
func (r *Renderer) Render(series AmplitudeSeries, channels ...AmplitudeSeries) error {
	if r.closed {
		return ErrRendererClosed
	}
	chans := make([]AmplitudeSeries, 0, 1+len(channels))
	chans = append(chans, series)
	chans = append(chans, channels...)

	if len(chans) != r.channels {
		r.channels = len(chans)
		if r.totalWidth > 0 {
			if err := r.relayout(); err != nil {
				return err
			}
		}
	}
	if len(r.tiles) == 0 {
		r.logger().Debug("render skipped: no layout")
		return nil
	}

	// One global vertical scale for all tiles and channels: either the
	// fixed amplitude scale or, when normalizing, the loudest sample of
	// this pass.
	absMax := 1 / r.opts.amplitudeScale
	if r.opts.normalize {
		absMax = 0
		for _, c := range chans {
			if m := c.AbsMax(); m > absMax {
				absMax = m
			}
		}
	}

	if r.opts.parallelism > 1 {
		g := new(errgroup.Group)
		g.SetLimit(r.opts.parallelism)
		for i, t := range r.tiles {
			i, t := i, t // per-iteration copies; go.mod predates Go 1.22 loopvar semantics
			g.Go(func() error {
				r.renderTile(t, i, chans, absMax)
				return nil
			})
		}
		return g.Wait()
	}
	for i, t := range r.tiles {
		r.renderTile(t, i, chans, absMax)
	}
	return nil
}

// renderTile draws one full pass on a single tile. Tiles share only the
// read-only series and the scalar absMax, so passes on different tiles
// are independent.
func (r *Renderer) renderTile(t *Tile, index int, chans []AmplitudeSeries, absMax float64) {
	t.Clear()
	t.ApplyOrientation(r.opts.orientation)
	t.SetFillStyles(r.opts.waveFill, r.opts.progressFill)

	left := float64(index * r.opts.maxTileWidth)
	halfHeight := float64(r.opts.height) / 2
	for c, series := range chans {
		offsetY := float64(c * r.opts.height)
		if r.opts.bars != nil {
			r.drawTileBars(t, left, series, absMax, halfHeight, offsetY)
			continue
		}
		t.DrawWaveform(series, absMax, halfHeight, offsetY)
		// Median tick: a hairline across the zero line keeps silence
		// visible.
		fillTileRect(t, left, 0, halfHeight+offsetY-t.halfPixel, float64(r.totalWidth), 2*t.halfPixel, 0)
	}
}

// drawTileBars draws the bars overlapping one tile. Bars are positioned
// in global buffer coordinates and intersected with the tile's range, so
// a bar crossing a tile boundary is drawn by both tiles, each clipped to
// its own half.
func (r *Renderer) drawTileBars(t *Tile, left float64, series AmplitudeSeries, absMax, halfHeight, offsetY float64) {
	style := r.opts.bars
	bar := style.Width
	if bar <= 0 {
		return
	}
	gap := style.Gap
	if gap <= 0 {
		gap = math.Max(r.opts.pixelRatio, math.Floor(bar/2))
	} else {
		gap = math.Max(r.opts.pixelRatio, gap)
	}
	step := bar + gap

	total := float64(r.totalWidth)
	scale := float64(series.Pairs()) / total
	for x := 0.0; x < total; x += step {
		if x+t.halfPixel >= left+float64(t.width) {
			break
		}
		// Highest magnitude across the samples this bar covers.
		lo := int(math.Floor(x * scale))
		hi := int(math.Floor((x + step) * scale))
		if hi <= lo {
			hi = lo + 1
		}
		peak := 0.0
		for i := lo; i < hi; i++ {
			if a := math.Abs(series.MaxAt(i)); a > peak {
				peak = a
			}
			if a := math.Abs(series.MinAt(i)); a > peak {
				peak = a
			}
		}
		h := 0.0
		if absMax > 0 {
			h = math.Round(peak / absMax * halfHeight)
		}
		if style.MinHeight > 0 {
			h = math.Max(h, style.MinHeight)
		}
		fillTileRect(t, left, x+t.halfPixel, halfHeight-h+offsetY, bar+t.halfPixel, h*2, style.Radius)
	}
}

// fillTileRect intersects a rectangle given in global buffer x with one
// tile's range and draws the overlapping part in tile-local coordinates.
func fillTileRect(t *Tile, left, x, y, w, h, radius float64) {
	x1 := math.Max(x, left)
	x2 := math.Min(x+w, left+float64(t.width))
	if x1 < x2 {
		t.DrawBar(x1-left, y, x2-x1, h, radius)
	}
}

// Image stitches every tile's wave surface into one image: side by side
// for horizontal orientation, stacked top to bottom for vertical.
func (r *Renderer) Image() (*image.RGBA, error) {
	if r.closed {
		return nil, ErrRendererClosed
	}
	if len(r.tiles) == 0 {
		return nil, errors.New("wavetile: no layout")
	}

	if r.opts.orientation == Vertical {
		w, h := 0, 0
		for _, t := range r.tiles {
			if t.height > w {
				w = t.height
			}
			h += t.width
		}
		out := image.NewRGBA(image.Rect(0, 0, w, h))
		top := 0
		for _, t := range r.tiles {
			if t.wave != nil {
				draw.Draw(out, image.Rect(0, top, t.height, top+t.width), t.wave.Snapshot(), image.Point{}, draw.Src)
			}
			top += t.width
		}
		return out, nil
	}

	w, h := 0, 0
	for _, t := range r.tiles {
		w += t.width
		if t.height > h {
			h = t.height
		}
	}
	out := image.NewRGBA(image.Rect(0, 0, w, h))
	left := 0
	for _, t := range r.tiles {
		if t.wave != nil {
			draw.Draw(out, image.Rect(left, 0, left+t.width, t.height), t.wave.Snapshot(), image.Point{}, draw.Src)
		}
		left += t.width
	}
	return out, nil
}

// WriteImage stitches the tiles and encodes the result to w.
func (r *Renderer) WriteImage(w io.Writer, format Format, quality int) error {
	img, err := r.Image()
	if err != nil {
		return err
	}
	return encodeImage(w, img, format, quality)
}

// ExportImages returns one data URL per tile, left to right.
func (r *Renderer) ExportImages(format Format, quality int) ([]string, error) {
	if r.closed {
		return nil, ErrRendererClosed
	}
	urls := make([]string, 0, len(r.tiles))
	for i, t := range r.tiles {
		u, err := t.ExportDataURL(format, quality)
		if err != nil {
			return nil, fmt.Errorf("wavetile: export tile %d: %w", i, err)
		}
		urls = append(urls, u)
	}
	return urls, nil
}

// Close releases every tile. Idempotent; subsequent renderer calls
// return ErrRendererClosed.
func (r *Renderer) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	var err error
	for _, t := range r.tiles {
		if cerr := t.Close(); err == nil {
			err = cerr
		}
	}
	r.tiles = nil
	return err
}
