// Copyright 2026 The wavetile Authors
// SPDX-License-Identifier: BSD-3-Clause

package peaks

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/aiff"
	"github.com/go-audio/audio"

	"github.com/wavetile/wavetile"
)

// writeAIFF encodes data as PCM into a fresh AIFF file at path.
func writeAIFF(t *testing.T, path string, data []int, channels, bitDepth int) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create aiff: %v", err)
	}
	enc := aiff.NewEncoder(f, 44100, bitDepth, channels)
	buf := &audio.IntBuffer{
		Data:           data,
		Format:         &audio.Format{NumChannels: channels, SampleRate: 44100},
		SourceBitDepth: bitDepth,
	}
	if err := enc.Write(buf); err != nil {
		t.Fatalf("write aiff: %v", err)
	}
	if err := enc.Close(); err != nil {
		t.Fatalf("close encoder: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("close file: %v", err)
	}
}

func TestFromAIFF(t *testing.T) {
	tests := []struct {
		name     string
		data     []int
		channels int
		pairs    int
		want     wavetile.AmplitudeSeries
	}{
		{
			name:     "mono 16-bit",
			data:     []int{16384, -16384, 8192, -8192},
			channels: 1,
			pairs:    2,
			want:     wavetile.AmplitudeSeries{0.5, -0.5, 0.25, -0.25},
		},
		{
			name:     "stereo mixdown",
			data:     []int{8192, 24576, -8192, -24576},
			channels: 2,
			pairs:    2,
			want:     wavetile.AmplitudeSeries{0.5, 0.5, -0.5, -0.5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "in.aiff")
			writeAIFF(t, path, tt.data, tt.channels, 16)

			f, err := os.Open(path)
			if err != nil {
				t.Fatalf("open aiff: %v", err)
			}
			defer f.Close()

			got, err := FromAIFF(f, tt.pairs)
			if err != nil {
				t.Fatalf("FromAIFF: %v", err)
			}
			equalSeries(t, got, tt.want)
		})
	}
}

func TestFromAIFFInvalidStream(t *testing.T) {
	r := bytes.NewReader([]byte("definitely not a form chunk"))
	if _, err := FromAIFF(r, 8); !errors.Is(err, ErrInvalidAudio) {
		t.Fatalf("FromAIFF error = %v, want ErrInvalidAudio", err)
	}
}
