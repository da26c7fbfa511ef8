// Copyright 2026 The wavetile Authors
// SPDX-License-Identifier: BSD-3-Clause

package waveterm

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"golang.org/x/term"

	"github.com/wavetile/wavetile"
)

// Common errors returned by View operations.
var (
	// ErrViewClosed is returned when operations are attempted on a
	// closed view.
	ErrViewClosed = errors.New("waveterm: view is closed")

	// ErrNilRenderer is returned when a nil Renderer is passed to New.
	ErrNilRenderer = errors.New("waveterm: nil renderer")

	// ErrNilWriter is returned when a nil output writer is passed to New.
	ErrNilWriter = errors.New("waveterm: nil writer")
)

// Option configures a View.
type Option func(*View)

// WithSize fixes the character grid instead of probing the terminal.
// Useful for tests and for writers that are not terminals.
func WithSize(cols, rows int) Option {
	return func(v *View) {
		v.cols, v.rows = cols, rows
	}
}

// WithFrameInterval sets the repaint coalescing interval. Non-positive
// values keep the default display refresh interval.
func WithFrameInterval(d time.Duration) Option {
	return func(v *View) {
		v.interval = d
	}
}

// View presents a Renderer's stitched image as ANSI truecolor frames.
//
// A View owns a frame scheduler: Invalidate requests a repaint and any
// number of requests within one frame interval coalesce into a single
// write. Present paints synchronously. Frame writes are serialized, so
// scheduled repaints never interleave with direct Present calls.
type View struct {
	r        *wavetile.Renderer
	out      io.Writer
	sched    *wavetile.FrameScheduler
	interval time.Duration

	mu     sync.Mutex
	cols   int
	rows   int
	closed bool
}

// New creates a View presenting r's frames on out. The character grid
// is probed from the terminal on every frame unless fixed via WithSize.
func New(r *wavetile.Renderer, out io.Writer, opts ...Option) (*View, error) {
	if r == nil {
		return nil, ErrNilRenderer
	}
	if out == nil {
		return nil, ErrNilWriter
	}
	v := &View{r: r, out: out}
	for _, opt := range opts {
		opt(v)
	}
	v.sched = wavetile.NewFrameScheduler(v.interval, v.repaint)
	return v, nil
}

// Invalidate schedules a repaint on the next frame. It never blocks and
// is safe from any goroutine; after Close it is a no-op.
func (v *View) Invalidate() {
	v.sched.Request()
}

// Present writes one frame synchronously: home the cursor, then the
// stitched image as half-block cells stretched to the grid.
func (v *View) Present() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		return ErrViewClosed
	}
	img, err := v.r.Image()
	if err != nil {
		return fmt.Errorf("waveterm: stitch frame: %w", err)
	}
	cols, rows := v.grid()
	if _, err := io.WriteString(v.out, "\x1b[H"); err != nil {
		return fmt.Errorf("waveterm: write frame: %w", err)
	}
	if err := WriteFrame(v.out, img, cols, rows); err != nil {
		return fmt.Errorf("waveterm: write frame: %w", err)
	}
	return nil
}

// repaint runs on the scheduler goroutine. Failed frames are dropped;
// the next Invalidate retries.
func (v *View) repaint() {
	if err := v.Present(); err != nil {
		wavetile.Logger().Warn("waveterm: dropped frame", "error", err)
	}
}

// grid returns the active character grid. Callers hold v.mu.
func (v *View) grid() (cols, rows int) {
	if v.cols > 0 && v.rows > 0 {
		return v.cols, v.rows
	}
	cols, rows, err := term.GetSize(0)
	if err != nil {
		// Not a terminal; fall back to a typical size.
		return 80, 23
	}
	return cols, rows - 1
}

// Close stops the repaint scheduler and waits for any in-flight frame.
// Idempotent. The renderer is not closed; the caller owns it.
func (v *View) Close() error {
	v.sched.Stop()
	v.mu.Lock()
	defer v.mu.Unlock()
	v.closed = true
	return nil
}
