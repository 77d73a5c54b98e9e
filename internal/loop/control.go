// Package loop implements the frame loop and concurrency core: the
// inline/threaded scheduling model, fast-forward metering, FPS/CPU
// accounting, and the debug HUD overlay. Grounded in
// the teacher's standalone/emuthread.go (EmuControl, SharedFramebuffer,
// SharedInput) and standalone/gameplay.go's pacing loop, generalized from
// Ebiten's fixed 60Hz Update/Draw split into the module's own driver that
// owns both the worker goroutine and the presentation call.
package loop

import (
	"sync"
	"time"
)

// Mode selects how the emulator's Run is driven.
type Mode int

const (
	// Inline runs input->emulator->scaler->present on a single goroutine.
	Inline Mode = iota
	// Threaded runs the emulator on a worker goroutine; the caller's
	// goroutine owns input and present.
	Threaded
)

// Control coordinates pause/resume/stop between the presenting goroutine
// and the worker goroutine in Threaded mode, renamed from the teacher's
// EmuControl to match the should_run_core terminology of the original
// emulator loop but kept byte-for-byte equivalent in behavior:
// RequestPause blocks until the
// worker acknowledges, CheckPause spins at 10ms between checks while
// paused so it never busy-loops the CPU.
type Control struct {
	mu            sync.Mutex
	shouldRunCore bool
	pauseReq      bool
	paused        bool
	stopReq       bool
	ackCh         chan struct{}
}

// NewControl returns a Control with the core running and unpaused.
func NewControl() *Control {
	return &Control{
		shouldRunCore: true,
		ackCh:         make(chan struct{}, 1),
	}
}

// RequestPause asks the worker to pause and blocks until it acknowledges.
// Used on menu entry: the worker is paused via should_run_core = 0 under
// the mutex.
func (c *Control) RequestPause() {
	c.mu.Lock()
	if c.paused || c.pauseReq {
		c.mu.Unlock()
		return
	}
	c.pauseReq = true
	c.shouldRunCore = false
	c.mu.Unlock()

	<-c.ackCh
}

// RequestResume clears the pause request; the worker resumes on its next
// CheckPause poll.
func (c *Control) RequestResume() {
	c.mu.Lock()
	c.pauseReq = false
	c.paused = false
	c.shouldRunCore = true
	c.mu.Unlock()
}

// CheckPause is called by the worker between frames. It returns false
// when the worker should exit (stopped), true otherwise -- blocking for
// the duration of any pause.
func (c *Control) CheckPause() bool {
	c.mu.Lock()
	if c.stopReq {
		c.mu.Unlock()
		return false
	}
	if !c.pauseReq {
		c.mu.Unlock()
		return true
	}

	c.paused = true
	c.mu.Unlock()

	select {
	case c.ackCh <- struct{}{}:
	default:
	}

	for {
		c.mu.Lock()
		if c.stopReq {
			c.mu.Unlock()
			return false
		}
		if !c.pauseReq {
			c.paused = false
			c.mu.Unlock()
			return true
		}
		c.mu.Unlock()
		time.Sleep(10 * time.Millisecond)
	}
}

// Stop signals the worker to exit; it also clears any pending pause so a
// blocked RequestPause caller (there should be none at shutdown) cannot
// deadlock.
func (c *Control) Stop() {
	c.mu.Lock()
	c.stopReq = true
	c.pauseReq = false
	c.shouldRunCore = false
	c.mu.Unlock()
}

// ShouldRun reports whether the worker loop should keep iterating.
func (c *Control) ShouldRun() bool {
	c.mu.Lock()
	r := !c.stopReq
	c.mu.Unlock()
	return r
}

// IsPaused reports whether the worker is currently parked in CheckPause.
func (c *Control) IsPaused() bool {
	c.mu.Lock()
	p := c.paused
	c.mu.Unlock()
	return p
}
