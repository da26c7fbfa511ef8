// Copyright 2026 The wavetile Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package peaks extracts waveform peak data from PCM audio.
//
// The renderer consumes a [wavetile.AmplitudeSeries] of interleaved
// max/min pairs; this package produces one from raw sample slices or
// directly from WAV and AIFF files via the go-audio decoders.
//
//	series, err := peaks.FromFile("clip.wav", 800)
//	if err != nil {
//		...
//	}
//	r, _ := wavetile.NewRenderer()
//	_ = r.Layout(800)
//	_ = r.Render(series)
//
// Multi-channel audio is mixed down to mono (channel average) before
// bucketing. Each of the requested pairs covers an equal share of the
// input; a bucket's pair is its maximum and minimum sample value.
package peaks
