package main

import (
	"time"

	"github.com/user-none/minarch/internal/config"
	"github.com/user-none/minarch/internal/core"
	"github.com/user-none/minarch/internal/inputmap"
	"github.com/user-none/minarch/internal/logging"
	"github.com/user-none/minarch/internal/loop"
	"github.com/user-none/minarch/internal/menu"
	"github.com/user-none/minarch/internal/platform"
	"github.com/user-none/minarch/internal/render"
	"github.com/user-none/minarch/internal/savestate"
)

// loopAdapter satisfies loopScaleSink against a live *loop.Loop, whose
// ScaleMode/Sharpness are plain fields rather than setter methods.
type loopAdapter struct{ l *loop.Loop }

func (a loopAdapter) SetScaleMode(m render.ScaleMode) { a.l.ScaleMode = m }
func (a loopAdapter) SetSharpness(s render.Sharpness) { a.l.Sharpness = s }

// wiring holds every piece of session state the presentation step
// function touches: the loaded module, the frame loop, the menu, and
// the bindings derived from them. It exists so Display.Run's step
// closure has somewhere to keep state across ticks without package-level
// globals, mirroring the teacher's directRunner struct.
type wiring struct {
	opts   options
	module core.Module
	env    *core.Environment
	cfg    *config.Layered

	cfgPaths config.Paths

	buttons                        []inputmap.Button
	shortcuts                      []inputmap.Shortcut
	buttonMapping, shortcutMapping inputmap.Mapping

	loop    *loop.Loop
	menu    *menu.Menu
	display *platform.EbitenDisplay
	saves   *savestate.Manager
	audio   *platform.AudioSink

	currentSlot      int
	prevShortcutBits uint32
	ffToggled        bool

	lastPixels []byte
	quit       bool
}

// pollInput fills the loop's per-frame shared input from the display's
// raw keyboard/gamepad state, wired as loop.Loop.PollInput. menuHeld
// gates which half of each modifier-flagged binding contributes, per
// inputmap.Poll's doc comment.
func (w *wiring) pollInput() {
	held := w.display.MenuHeld()
	w.loop.Input.Set(0, w.display.Buttons(w.buttonMapping, held))
}

// step implements platform.StepFunc.
func (w *wiring) step() ([]byte, *render.Descriptor, bool) {
	if w.quit {
		return w.lastPixels, w.loop.Descriptor, false
	}

	if w.menu.IsOpen() {
		w.pumpMenu()
		return w.lastPixels, w.loop.Descriptor, true
	}

	if w.display.MenuPressed() {
		w.menu.Enter()
		return w.lastPixels, w.loop.Descriptor, true
	}

	w.dispatchShortcuts()
	syncScaling(loopAdapter{w.loop}, w.env.Options)

	pixels, _, _, _, presented := w.loop.Step(time.Sleep)
	if presented {
		w.lastPixels = pixels
	}
	return w.lastPixels, w.loop.Descriptor, true
}

// pumpMenu advances the menu state machine by at most one input event a
// tick, the same "one action per frame" granularity MenuAction reports
// edges at.
func (w *wiring) pumpMenu() {
	if w.menu.AwaitingInput() {
		if label, isGamepad, ok := w.display.CaptureInput(); ok {
			w.menu.CaptureBinding(isGamepad, label)
			w.rebuildMappings()
		}
		return
	}

	if action, ok := w.display.MenuAction(); ok {
		switch w.menu.Handle(action) {
		case menu.ResultQuit:
			w.saveAndQuit()
		case menu.ResultRestoreDefaults:
			w.restoreDefaults()
		case menu.ResultClosed:
			syncScaling(loopAdapter{w.loop}, w.env.Options)
		}
	}

	if slot, saveMode, ok := w.menu.SelectedSlot(); ok {
		if saveMode {
			w.saveState(slot)
		} else if w.saves.Exists(slot) {
			w.loadState(slot)
		}
		w.currentSlot = slot
		if err := w.saves.WriteLastSlot(slot); err != nil {
			logging.Errorf("write last slot: %v", err)
		}
		w.menu.ConfirmSlot()
	}
}

// rebuildMappings recomputes the live keyboard/gamepad Mapping from the
// persisted config plus any binding captured but not yet saved, and
// refreshes the menu's display-facing Binding views to match -- called
// after every CaptureBinding per menu.Exit's documented "take effect
// immediately" contract.
func (w *wiring) rebuildMappings() {
	w.buttonMapping, w.shortcutMapping = buildMappings(w.buttons, w.shortcuts, w.cfg.Merged, w.menu.PendingBindings())
	w.menu.Buttons = buttonBindings(w.buttons, w.buttonMapping)
	w.menu.Shortcuts = shortcutBindings(w.shortcuts, w.shortcutMapping)
}

func (w *wiring) saveState(slot int) {
	if err := w.saves.Save(w.module, slot); err != nil {
		logging.Errorf("save state: %v", err)
		return
	}
	w.writePreview(slot)
}

func (w *wiring) loadState(slot int) {
	if err := w.saves.Load(w.module, slot); err != nil {
		logging.Errorf("load state: %v", err)
		return
	}
	if w.audio != nil {
		w.audio.Clear()
	}
}

// writePreview snapshots the loop's last unscaled frame into the slot's
// thumbnail. A state saved before the core has ever pushed a frame (not
// reachable in practice, since LoadGame already ran Run at least once by
// the time a menu can open) simply gets no thumbnail.
func (w *wiring) writePreview(slot int) {
	pixels, width, height, pitch, ok := w.loop.LastRawFrame()
	if !ok {
		return
	}
	if err := savestate.WritePreview(w.saves.PreviewPath(slot), pixels, width, height, pitch, w.loop.Descriptor.Format); err != nil {
		logging.Errorf("save preview: %v", err)
	}
}

// saveAndQuit flushes the auto-resume state before signaling the step
// loop to stop -- EbitenDisplay.Update calls os.Exit(0) on the next
// tick's ok=false, skipping any deferred cleanup, so whatever needs to
// survive the process exit has to be written here first.
func (w *wiring) saveAndQuit() {
	if err := w.saves.SaveResume(w.module); err != nil {
		logging.Errorf("save and quit: %v", err)
	}
	w.quit = true
}

// restoreDefaults deletes the resolved user config layer, reloads the
// system+pak-default baseline, and resyncs both the frontend Options and
// the live input Mappings to match -- the caller-side half of
// menu.ResultRestoreDefaults, since config.Layered's file I/O and
// inputmap's rebuild both live outside internal/menu.
func (w *wiring) restoreDefaults() {
	cfg, err := w.cfg.RestoreDefaults(w.cfgPaths)
	if err != nil {
		logging.Errorf("restore defaults: %v", err)
		return
	}
	w.cfg = cfg
	w.menu.Config = cfg
	applyConfigToOptions(w.env.Options, cfg.Merged)
	w.rebuildMappings()
	syncScaling(loopAdapter{w.loop}, w.env.Options)
}

// dispatchShortcuts resolves this frame's hotkey edges and performs the
// main-only side effects menu.Handle deliberately never does itself:
// serialize/unserialize I/O, process exit, and fast-forward speed.
func (w *wiring) dispatchShortcuts() {
	held := w.display.MenuHeld()
	cur := w.display.Shortcuts(w.shortcutMapping, held)
	pressed, heldActions := actionEdges(w.shortcuts, w.prevShortcutBits, cur)
	w.prevShortcutBits = cur

	if pressed[inputmap.ActionSaveState] {
		w.saveState(w.currentSlot)
	}
	if pressed[inputmap.ActionLoadState] {
		if w.saves.Exists(w.currentSlot) {
			w.loadState(w.currentSlot)
		}
	}
	if pressed[inputmap.ActionReset] {
		w.module.Reset()
	}
	if pressed[inputmap.ActionSaveAndQuit] {
		w.saveAndQuit()
	}
	if pressed[inputmap.ActionCycleScaling] {
		w.env.Options.CycleValue(optionKeyScreenScaling, 1)
		w.loop.Descriptor.Invalidate()
	}
	if pressed[inputmap.ActionCycleEffect] {
		w.env.Options.CycleValue(optionKeyScreenSharpness, 1)
		w.loop.Descriptor.Invalidate()
	}
	if pressed[inputmap.ActionToggleFastForward] {
		w.ffToggled = !w.ffToggled
	}

	speed := 0
	if w.ffToggled || heldActions[inputmap.ActionHoldFastForward] {
		speed = w.opts.fastForward
	}
	w.loop.SetFastForward(speed)
}
