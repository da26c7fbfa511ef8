package wavetile

import (
	"fmt"
	"math"
)

// Layout sizes the tile set for a waveform totalWidthPx buffer pixels
// wide. Tiles are created or closed as the required count changes, each
// capped at the configured maximum tile width with the final tile taking
// the remainder. The resulting spans are ordered, exactly contiguous,
// and cover [0,1]; seam continuity between tiles comes from the draw
// algorithm's one-sample overlap, not from span padding.
//
// Layout must run before the first Render and again whenever zoom or
// available width changes the total width.
func (r *Renderer) Layout(totalWidthPx int) error {
	if r.closed {
		return ErrRendererClosed
	}
	if totalWidthPx <= 0 {
		return fmt.Errorf("wavetile: invalid total width: %d (must be > 0)", totalWidthPx)
	}
	r.totalWidth = totalWidthPx
	return r.relayout()
}

// relayout recomputes tile count, dimensions and spans from the stored
// total width and channel count. Render reruns it when the stacked
// channel count changes.
func (r *Renderer) relayout() error {
	ratio := r.opts.pixelRatio
	totalEW := int(math.Round(float64(r.totalWidth) / ratio))
	maxEW := int(math.Round(float64(r.opts.maxTileWidth) / ratio))
	if maxEW < 1 {
		maxEW = 1
	}
	required := (totalEW + maxEW - 1) / maxEW
	if required < 1 {
		required = 1
	}

	for len(r.tiles) > required {
		last := len(r.tiles) - 1
		if err := r.tiles[last].Close(); err != nil {
			r.logger().Warn("close surplus tile", "tile", last, "error", err)
		}
		r.tiles = r.tiles[:last]
	}

	bandHeight := r.opts.height * r.channels
	for i := 0; i < required; i++ {
		leftEW := i * maxEW
		elementWidth := maxEW
		width := r.opts.maxTileWidth
		if i == required-1 {
			elementWidth = totalEW - leftEW
			width = r.totalWidth - i*r.opts.maxTileWidth
			if width < 1 {
				// Element rounding under fractional pixel ratios can
				// leave the remainder empty; keep the buffer valid.
				width = 1
			}
		}
		if i == len(r.tiles) {
			t, err := r.newTile(width, bandHeight)
			if err != nil {
				return fmt.Errorf("wavetile: layout tile %d: %w", i, err)
			}
			r.tiles = append(r.tiles, t)
		}
		if err := r.tiles[i].UpdateDimensions(float64(leftEW), float64(elementWidth), float64(totalEW), width, bandHeight); err != nil {
			return fmt.Errorf("wavetile: layout tile %d: %w", i, err)
		}
	}

	r.logger().Debug("layout",
		"total_width", r.totalWidth,
		"tiles", len(r.tiles),
		"channels", r.channels,
		"orientation", r.opts.orientation)
	return nil
}

// newTile creates a tile with surfaces from the factory: the wave
// surface always, the progress surface only when a progress fill is
// configured. Vertical orientation allocates swapped buffer dimensions.
func (r *Renderer) newTile(width, height int) (*Tile, error) {
	t := NewTile(r.opts.pixelRatio)
	t.orientation = r.opts.orientation

	devW, devH := width, height
	if r.opts.orientation == Vertical {
		devW, devH = height, width
	}
	wave, err := r.opts.factory(devW, devH, r.opts.surfaceOpts)
	if err != nil {
		return nil, fmt.Errorf("create wave surface: %w", err)
	}
	t.AttachWave(wave)

	if r.opts.progressFill != nil {
		progress, err := r.opts.factory(devW, devH, r.opts.surfaceOpts)
		if err != nil {
			wave.Close()
			return nil, fmt.Errorf("create progress surface: %w", err)
		}
		t.AttachProgress(progress)
	}
	return t, nil
}
