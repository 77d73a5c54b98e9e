package loop

import (
	"sync"
	"time"

	"github.com/user-none/minarch/internal/core"
	"github.com/user-none/minarch/internal/render"
)

// Loop drives one emulator Module: inline or threaded scheduling, the
// mode-toggle protocol, fast-forward metering, and FPS/CPU accounting.
// It owns the worker goroutine in Threaded mode but
// never the presenting goroutine -- the caller's own loop (an Ebiten
// Update/Draw pair, a bare for-loop, a test) calls Step once per
// iteration and reads back the pixels to present.
type Loop struct {
	Module     core.Module
	Descriptor *render.Descriptor
	Device     render.Device

	// ScaleMode, Sharpness, CoreAspect and FitToDevice feed render.Select
	// on every geometry change; the owning frontend sets these directly
	// (cmd/minarch syncs them from its Options) and calls
	// Descriptor.Invalidate to force a reselect.
	ScaleMode   render.ScaleMode
	Sharpness   render.Sharpness
	CoreAspect  float64
	FitToDevice bool

	Input      *SharedInput
	Control    *Control
	Backbuffer *Backbuffer
	Pacer      *Pacer
	Stats      *Stats
	HUD        *HUD

	// PollInput is called once per iteration before the emulator runs,
	// filling Input from the platform's raw device state.
	PollInput func()

	mu           sync.Mutex
	mode         Mode
	toggleThread bool
	ffSpeed      int

	dst        []byte
	workerDone chan struct{}
	stopCh     chan struct{}

	rawFrame         []byte
	rawW, rawH, rawP int
}

// NewLoop wires module to a fresh Loop in Inline mode. deviceBufCap
// bounds the destination (post-scale) pixel buffer and the Backbuffer's
// capacity; the caller sizes it for the device's worst-case scaled
// framebuffer.
func NewLoop(module core.Module, desc *render.Descriptor, device render.Device, deviceBufCap int) *Loop {
	l := &Loop{
		Module:     module,
		Descriptor: desc,
		Device:     device,
		Input:      &SharedInput{},
		Control:    NewControl(),
		Backbuffer: NewBackbuffer(deviceBufCap),
		Pacer:      &Pacer{CoreFPS: 60},
		Stats:      NewStats(),
		HUD:        &HUD{},
		mode:       Inline,
		dst:        make([]byte, deviceBufCap),
	}
	module.SetInputPoll(func() {})
	module.SetInputState(func(port int, device, index, id uint) int16 {
		mask := l.Input.Read()
		if port < 0 || port >= MaxPorts {
			return 0
		}
		if mask[port]&(1<<id) != 0 {
			return 1
		}
		return 0
	})
	return l
}

// SetMode requests a mode change, taking effect at the top of the next
// Step via the toggleThread flag.
func (l *Loop) SetMode(m Mode) {
	l.mu.Lock()
	if l.mode != m {
		l.mode = m
		l.toggleThread = true
	}
	l.mu.Unlock()
}

// SetFastForward sets the fast-forward speed multiplier (0 = off). A
// nonzero speed forces Inline mode.
func (l *Loop) SetFastForward(speed int) {
	l.mu.Lock()
	l.ffSpeed = speed
	l.Pacer.MaxFFSpeed = speed
	if speed > 0 && l.mode != Inline {
		l.mode = Inline
		l.toggleThread = true
	}
	l.mu.Unlock()
}

// videoRefresh is wired to the module as its VideoRefreshCallback. In
// Inline mode it scales directly into l.dst; in Threaded mode it copies
// into the Backbuffer for the presenting goroutine to pick up.
func (l *Loop) videoRefresh(data []byte, width, height, pitch int) {
	l.mu.Lock()
	mode := l.mode
	l.mu.Unlock()

	if l.Descriptor.NeedsReselect(width, height) {
		l.reselect(width, height, pitch)
	}
	if l.HUD.Enabled {
		l.HUD.Draw(data, width, height, pitch, l.Descriptor.Format, l.Stats)
	}

	l.storeRawFrame(data, width, height, pitch)

	switch mode {
	case Threaded:
		scaled := l.scale(data, width, height, pitch)
		l.Backbuffer.Push(scaled, l.Descriptor.DstW, l.Descriptor.DstH, l.Descriptor.DstP)
	default:
		l.scaleInto(data, width, height, pitch, l.dst)
	}
}

func (l *Loop) reselect(width, height, pitch int) {
	render.Select(l.Descriptor, render.Params{
		SrcW:        width,
		SrcH:        height,
		SrcP:        pitch,
		TrueW:       width,
		TrueH:       height,
		Format:      l.Descriptor.Format,
		Device:      l.Device,
		Mode:        l.ScaleMode,
		Sharpness:   l.Sharpness,
		CoreAspect:  l.CoreAspect,
		FitToDevice: l.FitToDevice,
	})
}

// storeRawFrame retains a copy of the unscaled frame the module just
// pushed, for LastRawFrame -- a save-state preview is a snapshot of the
// pre-scaled, pre-cropped source surface, not the device-scaled buffer
// Step returns. Locked because Threaded mode pushes
// this from the worker goroutine while the presenting goroutine may call
// LastRawFrame concurrently.
func (l *Loop) storeRawFrame(data []byte, width, height, pitch int) {
	n := pitch * height
	if n > len(data) {
		n = len(data)
	}
	l.mu.Lock()
	if cap(l.rawFrame) < n {
		l.rawFrame = make([]byte, n)
	}
	l.rawFrame = l.rawFrame[:n]
	copy(l.rawFrame, data[:n])
	l.rawW, l.rawH, l.rawP = width, height, pitch
	l.mu.Unlock()
}

// LastRawFrame returns a copy-safe snapshot of the most recent frame the
// module pushed, before scaling, for a save-state preview. ok is false
// until the module has pushed at least one frame.
func (l *Loop) LastRawFrame() (data []byte, width, height, pitch int, ok bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.rawFrame == nil {
		return nil, 0, 0, 0, false
	}
	out := make([]byte, len(l.rawFrame))
	copy(out, l.rawFrame)
	return out, l.rawW, l.rawH, l.rawP, true
}

func (l *Loop) scale(data []byte, width, height, pitch int) []byte {
	out := make([]byte, len(l.dst))
	l.scaleInto(data, width, height, pitch, out)
	return out
}

func (l *Loop) scaleInto(data []byte, width, height, pitch int, dst []byte) {
	if l.Descriptor.Blit == nil {
		return
	}
	l.Descriptor.Blit(data, dst, width, height, pitch, l.Descriptor.DstW, l.Descriptor.DstH, l.Descriptor.DstP)
}

// Start wires callbacks onto Module and, if mode is Threaded, launches
// the worker goroutine. Call once after construction, after Module has
// already had LoadGame called on it.
func (l *Loop) Start(mode Mode) {
	l.Module.SetVideoRefresh(l.videoRefresh)
	l.mu.Lock()
	l.mode = mode
	l.mu.Unlock()
	if mode == Threaded {
		l.startWorker()
	}
}

// startWorker launches the worker goroutine. Its lifetime is governed
// solely by stopCh, independent of Control's pause state, so a mode
// toggle back to Threaded after a prior toggle-out can always start a
// fresh worker -- Control.Stop() is reserved for final shutdown (Quit),
// never called by a mode toggle.
func (l *Loop) startWorker() {
	l.stopCh = make(chan struct{})
	l.workerDone = make(chan struct{})
	go func() {
		defer close(l.workerDone)
		for {
			select {
			case <-l.stopCh:
				return
			default:
			}
			if !l.Control.CheckPause() {
				return
			}
			l.Module.Run()
		}
	}()
}

// stopWorker closes stopCh and joins the worker, without touching
// Control's stop state -- see startWorker.
func (l *Loop) stopWorker() {
	if l.stopCh == nil {
		return
	}
	close(l.stopCh)
	<-l.workerDone
	l.stopCh, l.workerDone = nil, nil
}

// Step runs one loop iteration. It returns the pixels to present (device
// geometry, l.Descriptor.Format) and whether a new frame is available to
// show. In Threaded mode Step blocks until the worker pushes a frame and
// reports false only if the worker is stopped first; in Inline mode it
// reports false when Control.CheckPause reports the loop stopped.
func (l *Loop) Step(sleep func(time.Duration)) (pixels []byte, width, height, pitch int, presented bool) {
	l.mu.Lock()
	if l.toggleThread {
		l.toggleThread = false
		mode := l.mode
		l.mu.Unlock()
		l.applyModeToggle(mode)
	} else {
		l.mu.Unlock()
	}

	if l.PollInput != nil {
		l.PollInput()
	}

	l.mu.Lock()
	mode := l.mode
	l.mu.Unlock()

	l.Pacer.Begin()

	switch mode {
	case Threaded:
		if l.Backbuffer.Wait(l.stopCh) {
			pixels, width, height, pitch = l.Backbuffer.Snapshot()
			presented = true
		}
	default:
		if l.Control.CheckPause() {
			l.Module.Run()
			pixels, width, height, pitch = l.dst, l.Descriptor.DstW, l.Descriptor.DstH, l.Descriptor.DstP
			presented = true
		}
	}

	if presented {
		l.Stats.Tick()
	}
	l.Pacer.Throttle(sleep)
	return
}

// applyModeToggle stops/starts the worker and resyncs pacing, a
// "clear-and-flip" mode switch.
func (l *Loop) applyModeToggle(newMode Mode) {
	l.stopWorker()
	l.Backbuffer.Drain()
	l.Pacer.Reset()
	l.Descriptor.Invalidate()
	if newMode == Threaded {
		l.startWorker()
	}
}

// Quit stops the worker (if any) and should be called once, at shutdown.
func (l *Loop) Quit() {
	l.stopWorker()
	l.Control.Stop()
}
