// Copyright 2026 The wavetile Authors
// SPDX-License-Identifier: BSD-3-Clause

package peaks

import (
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	"github.com/go-audio/audio"

	"github.com/wavetile/wavetile"
)

// FromAIFF decodes AIFF PCM from r, mixes it down to mono and buckets
// it into the requested number of max/min pairs.
func FromAIFF(r io.ReadSeeker, pairs int) (wavetile.AmplitudeSeries, error) {
	dec := aiff.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, fmt.Errorf("%w: not an aiff stream", ErrInvalidAudio)
	}
	dec.ReadInfo()

	buf := &audio.IntBuffer{Data: make([]int, pcmChunkSize), Format: dec.Format()}
	var samples []float64
	for {
		n, err := dec.PCMBuffer(buf)
		if n > 0 {
			view := audio.IntBuffer{
				Data:           buf.Data[:n],
				Format:         buf.Format,
				SourceBitDepth: int(dec.BitDepth),
			}
			samples = append(samples, Mixdown(&view)...)
		}
		if err != nil {
			return nil, fmt.Errorf("peaks: decode aiff: %w", err)
		}
		if n == 0 {
			break
		}
	}
	return FromSamples(samples, pairs), nil
}
