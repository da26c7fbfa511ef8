// Copyright 2026 The wavetile Authors
// SPDX-License-Identifier: BSD-3-Clause

package peaks

import (
	"errors"

	"github.com/go-audio/audio"

	"github.com/wavetile/wavetile"
)

// Sentinel errors reported by the package. Test with [errors.Is].
var (
	// ErrUnsupportedFormat is returned by FromFile for extensions it
	// does not recognize.
	ErrUnsupportedFormat = errors.New("peaks: unsupported audio format")

	// ErrInvalidAudio is returned when a reader does not contain a
	// parseable file of the expected format.
	ErrInvalidAudio = errors.New("peaks: invalid audio file")
)

// FromSamples buckets mono samples into the requested number of max/min
// pairs. Each pair covers an equal share of the input and carries the
// bucket's maximum and minimum sample value; a bucket with no samples
// (more pairs than samples) yields the pair (0, 0).
//
// pairs <= 0 or an empty input produces an empty series.
func FromSamples(samples []float64, pairs int) wavetile.AmplitudeSeries {
	if pairs <= 0 || len(samples) == 0 {
		return wavetile.AmplitudeSeries{}
	}
	out := make(wavetile.AmplitudeSeries, 0, 2*pairs)
	for i := 0; i < pairs; i++ {
		lo := i * len(samples) / pairs
		hi := (i + 1) * len(samples) / pairs
		if hi <= lo {
			out = append(out, 0, 0)
			continue
		}
		mx, mn := samples[lo], samples[lo]
		for _, v := range samples[lo+1 : hi] {
			if v > mx {
				mx = v
			}
			if v < mn {
				mn = v
			}
		}
		out = append(out, mx, mn)
	}
	return out
}

// Mixdown converts interleaved integer PCM to mono float64 samples in
// [-1, 1]. Channels are averaged per frame; sample values are scaled by
// the buffer's SourceBitDepth (16-bit when unset). A trailing partial
// frame is dropped.
func Mixdown(buf *audio.IntBuffer) []float64 {
	if buf == nil || len(buf.Data) == 0 {
		return nil
	}
	channels := 1
	if buf.Format != nil && buf.Format.NumChannels > 0 {
		channels = buf.Format.NumChannels
	}
	scale := fullScale(buf.SourceBitDepth)
	frames := len(buf.Data) / channels
	out := make([]float64, frames)
	for f := 0; f < frames; f++ {
		var sum float64
		for c := 0; c < channels; c++ {
			sum += float64(buf.Data[f*channels+c])
		}
		out[f] = sum / float64(channels) / scale
	}
	return out
}

// fullScale returns the magnitude of a full-scale sample at the given
// bit depth. Unknown depths fall back to 16-bit.
func fullScale(bitDepth int) float64 {
	switch bitDepth {
	case 8:
		return 128
	case 24:
		return 8388608
	case 32:
		return 2147483648
	default:
		return 32768
	}
}
