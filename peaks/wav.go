// Copyright 2026 The wavetile Authors
// SPDX-License-Identifier: BSD-3-Clause

package peaks

import (
	"fmt"
	"io"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/wavetile/wavetile"
)

// pcmChunkSize is the decode buffer length in samples shared by the
// file readers.
const pcmChunkSize = 4096

// FromWAV decodes WAV PCM from r, mixes it down to mono and buckets it
// into the requested number of max/min pairs.
func FromWAV(r io.ReadSeeker, pairs int) (wavetile.AmplitudeSeries, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, fmt.Errorf("%w: not a wav stream", ErrInvalidAudio)
	}
	if err := dec.FwdToPCM(); err != nil {
		return nil, fmt.Errorf("peaks: decode wav: %w", err)
	}

	buf := &audio.IntBuffer{Data: make([]int, pcmChunkSize), Format: dec.Format()}
	var samples []float64
	for {
		n, err := dec.PCMBuffer(buf)
		if n > 0 {
			chunk := buf.Data[:n]
			if dec.BitDepth == 8 {
				// 8-bit WAV stores unsigned samples; recenter to signed.
				for i, v := range chunk {
					chunk[i] = v - 128
				}
			}
			view := audio.IntBuffer{
				Data:           chunk,
				Format:         buf.Format,
				SourceBitDepth: int(dec.BitDepth),
			}
			samples = append(samples, Mixdown(&view)...)
		}
		if err != nil {
			return nil, fmt.Errorf("peaks: decode wav: %w", err)
		}
		if n == 0 {
			break
		}
	}
	return FromSamples(samples, pairs), nil
}
