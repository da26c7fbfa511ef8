// Copyright 2026 The wavetile Authors
// SPDX-License-Identifier: BSD-3-Clause

package peaks

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/wavetile/wavetile"
)

// FromFile opens path and extracts pairs max/min pairs from its audio.
// The format is chosen by extension: .wav and .wave decode as WAV, .aif
// and .aiff as AIFF. Anything else reports [ErrUnsupportedFormat].
func FromFile(path string, pairs int) (wavetile.AmplitudeSeries, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("peaks: open audio: %w", err)
	}
	defer f.Close()

	var series wavetile.AmplitudeSeries
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav", ".wave":
		series, err = FromWAV(f, pairs)
	case ".aif", ".aiff":
		series, err = FromAIFF(f, pairs)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
	if err != nil {
		return nil, err
	}
	wavetile.Logger().Debug("extracted peaks", "path", path, "pairs", series.Pairs())
	return series, nil
}
