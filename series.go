package wavetile

import "math"

// AmplitudeSeries holds waveform amplitude data as interleaved max/min
// sample pairs: even indices carry local maxima, odd indices local minima,
// each value a signed float typically in [-1, 1]. A series of N pairs has
// length 2N. The series is shared read-only across every tile of one
// waveform; callers must not mutate it while a render pass runs.
type AmplitudeSeries []float64

// SeriesFromPairs interleaves separate max and min envelope slices into a
// series. When the slices differ in length the shorter one bounds the
// result. A nil minima slice mirrors the maxima negated, which matches
// symmetric single-envelope peak data.
func SeriesFromPairs(maxima, minima []float64) AmplitudeSeries {
	n := len(maxima)
	if minima != nil && len(minima) < n {
		n = len(minima)
	}
	out := make(AmplitudeSeries, 0, 2*n)
	for i := 0; i < n; i++ {
		if minima == nil {
			out = append(out, maxima[i], -maxima[i])
		} else {
			out = append(out, maxima[i], minima[i])
		}
	}
	return out
}

// Pairs returns the number of max/min sample pairs.
func (s AmplitudeSeries) Pairs() int { return len(s) / 2 }

// MaxAt returns the maximum value of pair i, or 0 when i is out of range.
// Reads past the end are a normal consequence of the one-sample overlap at
// tile boundaries, so no index is ever a fault.
func (s AmplitudeSeries) MaxAt(i int) float64 {
	if i < 0 || 2*i >= len(s) {
		return 0
	}
	return s[2*i]
}

// MinAt returns the minimum value of pair i, or 0 when i is out of range.
func (s AmplitudeSeries) MinAt(i int) float64 {
	if i < 0 || 2*i+1 >= len(s) {
		return 0
	}
	return s[2*i+1]
}

// AbsMax returns the largest absolute value across both envelopes, or 0
// for an empty series. Renderers use it to normalize all tiles to one
// shared vertical scale.
func (s AmplitudeSeries) AbsMax() float64 {
	var m float64
	for _, v := range s {
		if a := math.Abs(v); a > m {
			m = a
		}
	}
	return m
}
