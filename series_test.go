package wavetile

import "testing"

func TestSeriesFromPairs(t *testing.T) {
	tests := []struct {
		name   string
		maxima []float64
		minima []float64
		want   AmplitudeSeries
	}{
		{
			name:   "explicit minima",
			maxima: []float64{0.5, 0.25},
			minima: []float64{-0.4, -0.2},
			want:   AmplitudeSeries{0.5, -0.4, 0.25, -0.2},
		},
		{
			name:   "nil minima mirrors maxima",
			maxima: []float64{0.5, 0.25},
			want:   AmplitudeSeries{0.5, -0.5, 0.25, -0.25},
		},
		{
			name:   "shorter slice bounds the result",
			maxima: []float64{0.5, 0.25, 0.75},
			minima: []float64{-0.4},
			want:   AmplitudeSeries{0.5, -0.4},
		},
		{
			name: "empty",
			want: AmplitudeSeries{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SeriesFromPairs(tt.maxima, tt.minima)
			if len(got) != len(tt.want) {
				t.Fatalf("len = %d, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("got[%d] = %g, want %g", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestSeriesPairs(t *testing.T) {
	tests := []struct {
		name   string
		series AmplitudeSeries
		want   int
	}{
		{"nil", nil, 0},
		{"empty", AmplitudeSeries{}, 0},
		{"two pairs", AmplitudeSeries{1, -1, 0.5, -0.5}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.series.Pairs(); got != tt.want {
				t.Errorf("Pairs() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSeriesSampleAccess(t *testing.T) {
	s := AmplitudeSeries{0.8, -0.6, 0.4, -0.2}

	tests := []struct {
		name    string
		index   int
		wantMax float64
		wantMin float64
	}{
		{"first pair", 0, 0.8, -0.6},
		{"second pair", 1, 0.4, -0.2},
		{"negative index reads zero", -1, 0, 0},
		{"index at pair count reads zero", 2, 0, 0},
		{"index far past the end reads zero", 100, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.MaxAt(tt.index); got != tt.wantMax {
				t.Errorf("MaxAt(%d) = %g, want %g", tt.index, got, tt.wantMax)
			}
			if got := s.MinAt(tt.index); got != tt.wantMin {
				t.Errorf("MinAt(%d) = %g, want %g", tt.index, got, tt.wantMin)
			}
		})
	}
}

func TestSeriesAbsMax(t *testing.T) {
	tests := []struct {
		name   string
		series AmplitudeSeries
		want   float64
	}{
		{"empty", nil, 0},
		{"all zero", AmplitudeSeries{0, 0, 0, 0}, 0},
		{"largest magnitude in minima", AmplitudeSeries{0.3, -0.9, 0.5, -0.1}, 0.9},
		{"largest magnitude in maxima", AmplitudeSeries{0.7, -0.2}, 0.7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.series.AbsMax(); got != tt.want {
				t.Errorf("AbsMax() = %g, want %g", got, tt.want)
			}
		})
	}
}
