package wavetile

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
)

// Format selects an image encoding for exports. The zero value is PNG.
type Format int

const (
	// FormatPNG encodes lossless PNG. Quality parameters are ignored.
	FormatPNG Format = iota
	// FormatJPEG encodes JPEG with quality 1-100; non-positive quality
	// selects a default of 92.
	FormatJPEG
)

// String returns the short format name.
func (f Format) String() string {
	if f == FormatJPEG {
		return "jpeg"
	}
	return "png"
}

// MIME returns the format's MIME type.
func (f Format) MIME() string {
	if f == FormatJPEG {
		return "image/jpeg"
	}
	return "image/png"
}

// ExportDataURL synchronously encodes the wave surface and returns it as
// a data:<mime>;base64 URL. Only the primary wave surface is exportable;
// a tile without one returns ErrNoWaveSurface.
func (t *Tile) ExportDataURL(format Format, quality int) (string, error) {
	if t.wave == nil {
		return "", ErrNoWaveSurface
	}
	var buf bytes.Buffer
	var err error
	if format == FormatJPEG {
		err = t.wave.EncodeJPEG(&buf, quality)
	} else {
		err = t.wave.EncodePNG(&buf)
	}
	if err != nil {
		return "", fmt.Errorf("wavetile: encode %v: %w", format, err)
	}
	return "data:" + format.MIME() + ";base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// BlobExport is the future returned by [Tile.ExportBlob]. It resolves
// exactly once, to encoded bytes or to an error.
type BlobExport struct {
	done chan struct{}
	data []byte
	err  error
}

// Done returns a channel closed when the export has resolved.
func (b *BlobExport) Done() <-chan struct{} { return b.done }

// Wait blocks until the export resolves or ctx is canceled. Cancellation
// abandons the wait, not the encode; a later Wait on the same export
// still works.
func (b *BlobExport) Wait(ctx context.Context) ([]byte, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-b.done:
		return b.data, b.err
	}
}

func failedBlobExport(err error) *BlobExport {
	b := &BlobExport{done: make(chan struct{}), err: err}
	close(b.done)
	return b
}

// ExportBlob asynchronously encodes the wave surface. The pixels are
// snapshotted at call time, so later clears or redraws do not leak into
// the result; encoding completes on a background goroutine at an
// unspecified later time. Callers must not assume ordering between the
// export's resolution and subsequent render passes.
func (t *Tile) ExportBlob(format Format, quality int) *BlobExport {
	if t.wave == nil {
		return failedBlobExport(ErrNoWaveSurface)
	}
	snap := t.wave.Snapshot()
	b := &BlobExport{done: make(chan struct{})}
	go func() {
		var buf bytes.Buffer
		b.err = encodeImage(&buf, snap, format, quality)
		if b.err == nil {
			b.data = buf.Bytes()
		}
		close(b.done)
	}()
	return b
}

// encodeImage writes img in the given format. JPEG quality handling
// matches surface.Raster.EncodeJPEG.
func encodeImage(w io.Writer, img *image.RGBA, format Format, quality int) error {
	if format == FormatJPEG {
		switch {
		case quality <= 0:
			quality = 92
		case quality > 100:
			quality = 100
		}
		return jpeg.Encode(w, img, &jpeg.Options{Quality: quality})
	}
	return png.Encode(w, img)
}
