package menu

import (
	"github.com/user-none/minarch/internal/config"
	"github.com/user-none/minarch/internal/core"
	"github.com/user-none/minarch/internal/render"
	"github.com/user-none/minarch/internal/savestate"
)

// Action is a navigation input the owning frontend translates from
// keyboard/gamepad state (internal/platform's MenuAction, which reads
// fixed keys and gamepad buttons) before handing it to the menu. Whether MENU was held while a binding
// was captured is not a navigation Action: the caller folds that into
// the label string ("MENU+SOUTH") it passes to CaptureBinding directly.
type Action int

const (
	ActionUp Action = iota
	ActionDown
	ActionLeft
	ActionRight
	ActionConfirm
	ActionCancel
	ActionClear
)

// Result reports a side effect Handle wants the caller to perform -- the
// menu itself never touches the core's Run loop, disc control, or
// process exit directly; those stay main-only.
type Result int

const (
	ResultNone Result = iota
	ResultClosed
	ResultQuit
	ResultRestoreDefaults
)

// Menu is the top-level in-game menu state machine. It owns a stack of
// Screens (top list plus any pushed submenus) and the save/config/disc
// state the top list and its submenus read and write.
type Menu struct {
	stack []*Screen

	Options     *core.OptionList
	Config      *config.Layered
	SaveManager *savestate.Manager
	Discs       *savestate.DiscSet
	Descriptor  *render.Descriptor

	// Buttons/Shortcuts back the MENU_INPUT binding screen. Binding is
	// a local, minimal view over internal/inputmap's Button/Shortcut
	// records (display name plus current keyboard/gamepad labels) --
	// menu doesn't import inputmap itself, so the caller converts.
	Buttons   []Binding
	Shortcuts []Binding

	// Disc replaces a disc when the top list's Continue row is cycled
	// and confirmed. Left nil for single-disc games (Discs is also nil
	// in that case, so buildTopScreen never shows the row).
	Disc *core.DiscControlInterface

	// stagedDisc holds the Continue row's cycled-but-not-yet-confirmed
	// disc index, reset to Discs.Current each time the top list is
	// (re)built so cycling discs while browsing doesn't swap the disc
	// until Continue is confirmed.
	stagedDisc int

	// pendingBindings accumulates `bind`/`pad` edits made in the
	// MENU_INPUT screen. They are written to disk only when the options
	// screen's "Save Changes" row runs flushChanges; Exit does not
	// persist them.
	pendingBindings *config.Set

	// OnEnter/OnExit let the caller pause/resume whatever is producing
	// frames while the menu is open. internal/menu deliberately doesn't
	// import internal/loop, keeping its dependency set to
	// render/core/config/savestate: in Threaded mode
	// the caller wires these to Control.RequestPause/RequestResume; in
	// Inline mode there is no separate worker to pause -- the caller
	// simply stops calling Loop.Step while IsOpen is true, so OnEnter/
	// OnExit can be left nil.
	OnEnter func()
	OnExit  func()

	awaitingInput bool
	inputTarget   *Item
	slotPending   bool
	scaleDirty    bool
}

// Scaling-related options are ordinary frontend Options (grounded in
// the original's "minarch_screen_scaling"/"minarch_screen_sharpness"
// keys), not fields of their own -- the caller reads their current
// value out of Options the same way it reads any other Option when
// building the next frame's render.Params. Handle only needs to know
// which two keys require re-running the scaler-selector on exit.
const (
	optionKeyScreenScaling   = "minarch_screen_scaling"
	optionKeyScreenSharpness = "minarch_screen_sharpness"
)

// New returns a Menu wired to the given subsystems. The menu starts
// closed (empty stack); call Enter to open it.
func New(options *core.OptionList, cfg *config.Layered, sm *savestate.Manager, discs *savestate.DiscSet, desc *render.Descriptor) *Menu {
	return &Menu{
		Options:     options,
		Config:      cfg,
		SaveManager: sm,
		Discs:       discs,
		Descriptor:  desc,
	}
}

// IsOpen reports whether the menu is currently showing a screen.
func (m *Menu) IsOpen() bool {
	return len(m.stack) > 0
}

// Enter opens the menu at the top-level list, pausing the worker (via
// should_run_core = 0 under the mutex). Calling Enter while already open
// is a no-op.
func (m *Menu) Enter() {
	if m.IsOpen() {
		return
	}
	if m.OnEnter != nil {
		m.OnEnter()
	}
	m.stack = []*Screen{m.buildTopScreen()}
}

// Exit closes the menu and resumes the worker, applying the scaling-
// changed state-preservation rule: if the user changed scale mode or
// sharpness while in the menu, the render descriptor's DstP is zeroed
// (the "renderer.dst_p == 0" sentinel) so the next frame forces a full
// reselect. Binding edits made via MENU_INPUT
// take effect immediately (the caller rebuilds its live keyboard/
// gamepad mapping from Options/pendingBindings the same frame), but
// per the original's behavior are only written to disk when the user
// explicitly confirms the options screen's "Save Changes" row --
// simply backing out of the menu does not persist them.
func (m *Menu) Exit() {
	m.stack = nil
	m.awaitingInput = false
	m.inputTarget = nil
	m.slotPending = false
	if m.scaleDirty && m.Descriptor != nil {
		m.Descriptor.Invalidate()
		m.scaleDirty = false
	}
	if m.OnExit != nil {
		m.OnExit()
	}
}

// current returns the screen on top of the stack, or nil if closed.
func (m *Menu) current() *Screen {
	if len(m.stack) == 0 {
		return nil
	}
	return m.stack[len(m.stack)-1]
}

func (m *Menu) push(s *Screen) {
	m.stack = append(m.stack, s)
}

// pop removes the top screen. Popping the last screen closes the menu
// the same way Exit does.
func (m *Menu) pop() {
	if len(m.stack) == 0 {
		return
	}
	m.stack = m.stack[:len(m.stack)-1]
	if len(m.stack) == 0 {
		m.Exit()
	}
}

// CurrentScreen exposes the active screen for rendering.
func (m *Menu) CurrentScreen() *Screen {
	return m.current()
}
