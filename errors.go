package wavetile

import "errors"

// Sentinel errors reported by the package. Test with [errors.Is]; most
// failure paths wrap these with call-site context.
var (
	// ErrNoWaveSurface is returned by exports on a tile whose wave
	// surface was never attached (or has been closed).
	ErrNoWaveSurface = errors.New("wavetile: no wave surface attached")

	// ErrRendererClosed is returned by renderer operations after Close.
	ErrRendererClosed = errors.New("wavetile: renderer closed")
)
