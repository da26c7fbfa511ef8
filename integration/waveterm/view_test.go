// Copyright 2026 The wavetile Authors
// SPDX-License-Identifier: BSD-3-Clause

package waveterm

import (
	"bytes"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/wavetile/wavetile"
)

// newTestRenderer returns a small laid-out, rendered renderer.
func newTestRenderer(t *testing.T) *wavetile.Renderer {
	t.Helper()
	r, err := wavetile.NewRenderer(
		wavetile.WithHeight(8),
		wavetile.WithWaveFill(wavetile.FillHex("#f00")),
	)
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	t.Cleanup(func() { r.Close() })
	if err := r.Layout(16); err != nil {
		t.Fatalf("Layout: %v", err)
	}
	if err := r.Render(wavetile.AmplitudeSeries{1, -1, 0.5, -0.5}); err != nil {
		t.Fatalf("Render: %v", err)
	}
	return r
}

// signalWriter counts writes and signals on the first one.
type signalWriter struct {
	mu     sync.Mutex
	writes int
	fired  chan struct{}
}

func newSignalWriter() *signalWriter {
	return &signalWriter{fired: make(chan struct{}, 1)}
}

func (w *signalWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	w.writes++
	w.mu.Unlock()
	select {
	case w.fired <- struct{}{}:
	default:
	}
	return len(p), nil
}

func (w *signalWriter) count() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.writes
}

func TestNewValidation(t *testing.T) {
	r := newTestRenderer(t)

	if _, err := New(nil, &bytes.Buffer{}); !errors.Is(err, ErrNilRenderer) {
		t.Errorf("New(nil, w) error = %v, want ErrNilRenderer", err)
	}
	if _, err := New(r, nil); !errors.Is(err, ErrNilWriter) {
		t.Errorf("New(r, nil) error = %v, want ErrNilWriter", err)
	}
}

func TestViewPresent(t *testing.T) {
	r := newTestRenderer(t)
	var buf bytes.Buffer
	v, err := New(r, &buf, WithSize(8, 4))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer v.Close()

	if err := v.Present(); err != nil {
		t.Fatalf("Present: %v", err)
	}

	out := buf.String()
	if !strings.HasPrefix(out, "\x1b[H") {
		t.Errorf("frame does not home the cursor: %q", out[:8])
	}
	if got := strings.Count(out, "▀"); got != 8*4 {
		t.Errorf("frame has %d cells, want %d", got, 8*4)
	}
	if got := strings.Count(out, "\x1b[0m\n"); got != 4 {
		t.Errorf("frame has %d line resets, want 4", got)
	}
}

func TestViewPresentWithoutLayout(t *testing.T) {
	r, err := wavetile.NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	defer r.Close()

	v, err := New(r, &bytes.Buffer{}, WithSize(4, 2))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer v.Close()

	if err := v.Present(); err == nil || !strings.Contains(err.Error(), "stitch frame") {
		t.Errorf("Present error = %v, want stitch frame failure", err)
	}
}

func TestViewInvalidateCoalesces(t *testing.T) {
	r := newTestRenderer(t)
	w := newSignalWriter()
	v, err := New(r, w, WithSize(4, 2), WithFrameInterval(20*time.Millisecond))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer v.Close()

	for i := 0; i < 30; i++ {
		v.Invalidate()
	}

	select {
	case <-w.fired:
	case <-time.After(2 * time.Second):
		t.Fatal("no frame written")
	}
	time.Sleep(100 * time.Millisecond)

	// Present issues two writes per frame: cursor home, then the cells.
	if frames := w.count() / 2; frames != 1 {
		t.Errorf("rendered %d frames for one burst, want 1", frames)
	}
}

func TestViewPresentAfterClose(t *testing.T) {
	r := newTestRenderer(t)
	v, err := New(r, &bytes.Buffer{}, WithSize(4, 2))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if err := v.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := v.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
	if err := v.Present(); !errors.Is(err, ErrViewClosed) {
		t.Errorf("Present after close error = %v, want ErrViewClosed", err)
	}
}

func TestViewCloseStopsRepaints(t *testing.T) {
	r := newTestRenderer(t)
	w := newSignalWriter()
	v, err := New(r, w, WithSize(4, 2), WithFrameInterval(5*time.Millisecond))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if err := v.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	before := w.count()
	v.Invalidate()
	time.Sleep(50 * time.Millisecond)
	if after := w.count(); after != before {
		t.Errorf("writes after Close: %d -> %d, want unchanged", before, after)
	}
}
