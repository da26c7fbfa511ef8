package wavetile

import (
	"sync"
	"time"
)

// DefaultFrameInterval approximates a 60Hz display refresh.
const DefaultFrameInterval = time.Second / 60

// FrameScheduler coalesces bursts of render requests into at most one
// callback per frame interval, the "run on next frame" primitive for
// callers that re-render on scroll, zoom or resize. Request marks the
// scheduler dirty and never blocks; a ticker-driven loop invokes the
// callback once per interval while dirty.
//
// The callback runs on the scheduler's own goroutine. Confining all
// rendering to that goroutine preserves the renderer's single-threaded
// model without locks.
type FrameScheduler struct {
	fn     func()
	dirty  chan struct{}
	stop   chan struct{}
	done   chan struct{}
	stopFn sync.Once
}

// NewFrameScheduler starts a scheduler invoking fn at most once per
// interval. Non-positive intervals fall back to DefaultFrameInterval.
func NewFrameScheduler(interval time.Duration, fn func()) *FrameScheduler {
	if interval <= 0 {
		interval = DefaultFrameInterval
	}
	fs := &FrameScheduler{
		fn:    fn,
		dirty: make(chan struct{}, 1),
		stop:  make(chan struct{}),
		done:  make(chan struct{}),
	}
	go fs.loop(interval)
	return fs
}

func (fs *FrameScheduler) loop(interval time.Duration) {
	defer close(fs.done)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	pending := false
	for {
		select {
		case <-fs.stop:
			return
		case <-fs.dirty:
			pending = true
		case <-ticker.C:
			if pending {
				pending = false
				fs.fn()
			}
		}
	}
}

// Request schedules one callback on the next frame. Any number of
// requests within one interval coalesce into a single callback. Request
// never blocks and is safe from any goroutine; after Stop it is a no-op.
func (fs *FrameScheduler) Request() {
	select {
	case fs.dirty <- struct{}{}:
	default:
	}
}

// Stop halts the loop and waits for it to exit, so no callback runs
// after Stop returns. Idempotent. Must not be called from inside the
// callback, which would wait on itself.
func (fs *FrameScheduler) Stop() {
	fs.stopFn.Do(func() { close(fs.stop) })
	<-fs.done
}
