package menu

import "github.com/user-none/minarch/internal/config"

// Binding is the view over one remappable row (a core button or a
// frontend shortcut) the MENU_INPUT screen needs: a display name and
// the current keyboard/gamepad labels it resolves to ("SOUTH",
// "MENU+SOUTH", or "NONE"). The caller (which does import
// internal/inputmap) fills this in from its Button/Shortcut slices.
type Binding struct {
	DisplayName string
	KeyLabel    string
	PadLabel    string
}

const (
	optionsRowFrontend    = "options_frontend"
	optionsRowControls    = "options_controls"
	optionsRowSaveChanges = "options_save_changes"
	saveChangesRowSave    = "save_changes_save"
	saveChangesRowRestore = "save_changes_restore"
)

// buildOptionsScreen is the top list's "Options" row: a MENU_LIST
// drilling into the frontend-variables screen, the controls screen, or
// the save-changes screen, grounded in the original's options_menu
// (Frontend/Emulator/Controls/Shortcuts/Save Changes -- Emulator and
// Shortcuts are folded into Frontend and Controls respectively, since
// this port has no separate core-exposed-options namespace).
func (m *Menu) buildOptionsScreen() *Screen {
	items := []Item{
		{Label: "Frontend Options"},
		{Label: "Controls"},
		{Label: "Save Changes", Value: m.saveChangesDesc()},
	}
	return &Screen{
		Kind:        KindList,
		Title:       "Options",
		Items:       items,
		VisibleRows: 7,
		OnConfirm:   []string{optionsRowFrontend, optionsRowControls, optionsRowSaveChanges},
	}
}

// saveChangesDesc mirrors the original's getSaveDesc: which
// configuration layer, if any, is presently in effect for this game.
func (m *Menu) saveChangesDesc() string {
	if m.Config == nil {
		return "Using defaults."
	}
	if m.Config.IsPerGame() {
		return "Using game config."
	}
	return "Using console config."
}

// buildSaveChangesScreen is the original's OptionSaveChanges_menu,
// narrowed to the two operations config.Layered actually exposes:
// persist the in-memory option/binding edits to whichever user layer
// Load resolved (global or, when a per-game file was already present,
// that per-game file), or discard them back to system+pak-default.
func (m *Menu) buildSaveChangesScreen() *Screen {
	return &Screen{
		Kind:        KindList,
		Title:       "Save Changes",
		Items:       []Item{{Label: "Save Changes"}, {Label: "Restore Defaults"}},
		VisibleRows: 2,
		OnConfirm:   []string{saveChangesRowSave, saveChangesRowRestore},
	}
}

// buildVarScreen lists every non-hidden option as a MENU_VAR row.
// Options with fewer than two values are rendered the same but behave
// as MENU_FIXED rows: left/right do nothing and A opens an info
// pop-up instead of cycling, per the original's per-row
// "item->values && item->values != button_labels" cycle guard.
func (m *Menu) buildVarScreen() *Screen {
	s := &Screen{Kind: KindVar, Title: "Frontend Options", VisibleRows: 7}
	if m.Options == nil {
		return s
	}
	for _, opt := range m.Options.All() {
		if opt.Hidden {
			continue
		}
		item := Item{
			Label:      opt.DisplayName,
			LongDesc:   opt.LongDesc,
			Values:     opt.Labels,
			ValueIndex: opt.CurrentIndex,
			OptionKey:  opt.Key,
			Locked:     len(opt.Values) < 2,
		}
		if opt.CurrentIndex >= 0 && opt.CurrentIndex < len(opt.Labels) {
			item.Value = opt.Labels[opt.CurrentIndex]
		}
		s.Items = append(s.Items, item)
	}
	return s
}

// buildInfoScreen is the MENU_FIXED info pop-up: a single read-only
// row showing the option's long description.
func buildInfoScreen(item Item) *Screen {
	return &Screen{
		Kind:        KindFixed,
		Title:       item.Label,
		Items:       []Item{{Label: item.Label, Value: item.Value, LongDesc: item.LongDesc}},
		VisibleRows: 1,
	}
}

// buildControlsScreen lists every button then shortcut binding as a
// MENU_INPUT row.
func (m *Menu) buildControlsScreen() *Screen {
	s := &Screen{Kind: KindInput, Title: "Controls", VisibleRows: 7}
	for _, b := range m.Buttons {
		s.Items = append(s.Items, bindingItem(b))
	}
	for _, sc := range m.Shortcuts {
		s.Items = append(s.Items, bindingItem(sc))
	}
	return s
}

func bindingItem(b Binding) Item {
	label := b.KeyLabel
	if label == "" {
		label = "NONE"
	}
	return Item{Label: b.DisplayName, Value: label, BindingName: b.DisplayName}
}

// Handle advances the menu state machine by one input action and
// reports a side effect for the caller to perform, if any. The menu
// never touches the frame loop, disc control, or process exit itself --
// those stay main-only -- so ResultQuit/ResultRestoreDefaults are
// requests, not actions taken here.
func (m *Menu) Handle(action Action) Result {
	s := m.current()
	if s == nil {
		return ResultNone
	}

	switch action {
	case ActionUp:
		s.Cursor--
		s.ClampCursor()
		s.EnsureVisible()
		return ResultNone
	case ActionDown:
		s.Cursor++
		s.ClampCursor()
		s.EnsureVisible()
		return ResultNone
	case ActionLeft:
		m.handleCycle(s, -1)
		return ResultNone
	case ActionRight:
		m.handleCycle(s, 1)
		return ResultNone
	case ActionClear:
		m.handleClear(s)
		return ResultNone
	case ActionCancel:
		m.pop()
		return ResultNone
	case ActionConfirm:
		return m.handleConfirm(s)
	}
	return ResultNone
}

func (m *Menu) handleCycle(s *Screen, delta int) {
	switch s.Kind {
	case KindTopList:
		m.handleDiscCycle(s, delta)
	case KindSlotSelector:
		n := len(s.Items)
		if n == 0 {
			return
		}
		s.Cursor = ((s.Cursor+delta)%n + n) % n
		s.EnsureVisible()
	case KindVar:
		m.handleValueCycle(s, delta)
	}
}

// handleDiscCycle cycles the Continue row's staged disc selection
// without touching the core's disc-control interface -- the swap only
// happens when Continue is confirmed.
func (m *Menu) handleDiscCycle(s *Screen, delta int) {
	if m.Discs == nil || len(m.Discs.Paths) <= 1 || s.Cursor != itemContinue {
		return
	}
	if delta > 0 {
		m.stagedDisc = m.Discs.NextDisc(m.stagedDisc)
	} else {
		m.stagedDisc = m.Discs.PreviousDisc(m.stagedDisc)
	}
	s.Items[itemContinue].Value = discLabel(m.stagedDisc, len(m.Discs.Paths))
}

func (m *Menu) handleValueCycle(s *Screen, delta int) {
	if s.Cursor < 0 || s.Cursor >= len(s.Items) {
		return
	}
	item := &s.Items[s.Cursor]
	if item.Locked || item.OptionKey == "" || m.Options == nil {
		return
	}
	m.Options.CycleValue(item.OptionKey, delta)
	if opt := m.Options.Get(item.OptionKey); opt != nil {
		item.ValueIndex = opt.CurrentIndex
		if opt.CurrentIndex >= 0 && opt.CurrentIndex < len(opt.Labels) {
			item.Value = opt.Labels[opt.CurrentIndex]
		}
	}
	if item.OptionKey == optionKeyScreenScaling || item.OptionKey == optionKeyScreenSharpness {
		m.scaleDirty = true
	}
}

func (m *Menu) handleClear(s *Screen) {
	if s.Kind != KindInput || s.Cursor < 0 || s.Cursor >= len(s.Items) {
		return
	}
	item := &s.Items[s.Cursor]
	item.Value = "NONE"
	m.recordBinding(item.BindingName, "NONE")
}

func (m *Menu) recordBinding(displayName, label string) {
	if m.pendingBindings == nil {
		m.pendingBindings = config.NewSet()
	}
	m.pendingBindings.SetBinding(displayName, label)
}

// CaptureBinding records the button the caller observed while
// awaitingInput was true, then advances the cursor to the next row --
// matching the original's await_input confirm-then-advance behavior.
// isGamepad selects which namespace (bind vs pad) the label is
// written to.
func (m *Menu) CaptureBinding(isGamepad bool, label string) {
	s := m.current()
	if s == nil || s.Kind != KindInput || !m.awaitingInput || m.inputTarget == nil {
		return
	}
	m.inputTarget.Value = label
	if m.pendingBindings == nil {
		m.pendingBindings = config.NewSet()
	}
	if isGamepad {
		m.pendingBindings.SetGamepadBinding(m.inputTarget.BindingName, label)
	} else {
		m.pendingBindings.SetBinding(m.inputTarget.BindingName, label)
	}
	m.awaitingInput = false
	m.inputTarget = nil
	s.Cursor++
	s.ClampCursor()
	s.EnsureVisible()
}

// AwaitingInput reports whether MENU_INPUT is currently blocked
// waiting for the next mapped button.
func (m *Menu) AwaitingInput() bool {
	return m.awaitingInput
}

// PendingBindings exposes in-memory binding edits not yet written to
// disk, so the caller can rebuild its live inputmap.Mapping the same
// frame a binding changes, without waiting for "Save Changes". Returns
// nil if nothing has been rebound this session.
func (m *Menu) PendingBindings() *config.Set {
	return m.pendingBindings
}

func (m *Menu) handleConfirm(s *Screen) Result {
	switch s.Kind {
	case KindTopList:
		return m.confirmTopList(s)
	case KindSlotSelector:
		return m.confirmSlot(s)
	case KindList:
		return m.confirmList(s)
	case KindVar:
		if s.Cursor >= 0 && s.Cursor < len(s.Items) {
			item := s.Items[s.Cursor]
			if item.Locked {
				m.push(buildInfoScreen(item))
			}
		}
		return ResultNone
	case KindFixed:
		m.pop()
		return ResultNone
	case KindInput:
		if s.Cursor >= 0 && s.Cursor < len(s.Items) {
			m.awaitingInput = true
			m.inputTarget = &s.Items[s.Cursor]
		}
		return ResultNone
	}
	return ResultNone
}

func (m *Menu) confirmTopList(s *Screen) Result {
	switch s.Cursor {
	case itemContinue:
		if m.Discs != nil && m.stagedDisc != m.Discs.Current {
			// Errors are the caller's concern via the same logging path
			// a failed save would use; menu has no logger of its own.
			_ = m.Discs.ChangeDisc(m.Disc, m.stagedDisc)
		}
		m.Exit()
		return ResultClosed
	case itemSave:
		slot := m.buildSlotScreen("Save")
		slot.SaveMode = true
		m.push(slot)
	case itemLoad:
		m.push(m.buildSlotScreen("Load"))
	case itemOptions:
		m.push(m.buildOptionsScreen())
	case itemQuit:
		return ResultQuit
	}
	return ResultNone
}

// confirmSlot intentionally performs no I/O: it only flags the
// selection as pending. The caller reads it via SelectedSlot,
// performs the actual savestate.Manager.Save/Load against the running
// core.Module, then calls ConfirmSlot to close the selector. Keeping
// Serialize/Unserialize calls out of this package is what lets menu
// avoid depending on a live core.Module reference at all.
func (m *Menu) confirmSlot(s *Screen) Result {
	m.slotPending = true
	return ResultNone
}

func (m *Menu) confirmList(s *Screen) Result {
	if s.Cursor < 0 || s.Cursor >= len(s.OnConfirm) {
		m.pop()
		return ResultNone
	}
	switch s.OnConfirm[s.Cursor] {
	case optionsRowFrontend:
		m.push(m.buildVarScreen())
	case optionsRowControls:
		m.push(m.buildControlsScreen())
	case optionsRowSaveChanges:
		m.push(m.buildSaveChangesScreen())
	case saveChangesRowSave:
		_ = m.flushChanges()
		m.pop()
	case saveChangesRowRestore:
		m.pop()
		return ResultRestoreDefaults
	}
	return ResultNone
}

// flushChanges persists every option whose value differs from its
// default, plus any pending binding edits, to the resolved user
// layer -- the only path that persists pendingBindings (Exit does not),
// grounded in the original's OptionSaveChanges_onConfirm case 0
// (Config_write(CONFIG_WRITE_ALL)).
func (m *Menu) flushChanges() error {
	if m.Config == nil {
		return nil
	}
	set := config.NewSet()
	if m.Options != nil {
		for _, opt := range m.Options.All() {
			if opt.CurrentIndex == opt.DefaultIndex {
				continue
			}
			if opt.CurrentIndex < 0 || opt.CurrentIndex >= len(opt.Values) {
				continue
			}
			set.Set(opt.Key, opt.Values[opt.CurrentIndex])
		}
	}
	if m.pendingBindings != nil {
		for _, k := range m.pendingBindings.Keys() {
			v, _ := m.pendingBindings.Get(k)
			set.Set(k, v)
		}
	}
	if err := m.Config.SaveChanges(set); err != nil {
		return err
	}
	m.pendingBindings = nil
	if m.Options != nil {
		m.Options.Changed = false
	}
	return nil
}

// SelectedSlot returns the highlighted slot index and whether the
// current screen is in save (vs load) mode, but only once Handle has
// registered a confirm on the slot selector (ok is false while the
// user is merely browsing slots). The caller performs the actual
// savestate.Manager.Save/Load I/O, then calls ConfirmSlot to close the
// selector.
func (m *Menu) SelectedSlot() (slot int, saveMode bool, ok bool) {
	s := m.current()
	if s == nil || s.Kind != KindSlotSelector || !m.slotPending {
		return 0, false, false
	}
	return s.Cursor, s.SaveMode, true
}

// ConfirmSlot closes the slot selector after the caller has performed
// (or failed) the save/load I/O SelectedSlot described, returning to
// the top list. The menu itself never touches
// core.Module.Serialize/Unserialize -- that I/O stays main-only.
func (m *Menu) ConfirmSlot() {
	m.slotPending = false
	m.pop()
}
