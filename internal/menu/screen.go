// Package menu implements the in-game menu state machine: entry on
// menu-button press with the worker paused, a five-item top-level list,
// an 8-slot save/load selector with three-state preview resolution, and
// the four MENU_LIST/MENU_VAR/MENU_FIXED/MENU_INPUT submenu kinds with
// paging. Grounded in the teacher's
// standalone/pausemenu.go visible/selectedIndex/handleSelect
// architecture, generalized from its fixed 3-item enum into a stack of
// Screen values so submenus compose by push/pop instead of being
// hard-coded siblings.
package menu

// Kind identifies which of the four submenu behaviors (plus the two
// menu-specific screens this package adds: the top list and the slot
// selector) a Screen implements.
type Kind int

const (
	KindTopList Kind = iota
	KindSlotSelector
	KindList
	KindVar
	KindFixed
	KindInput
)

// Item is one row in a Screen. Which fields are meaningful depends on
// the owning Screen's Kind: KindVar/KindFixed use Value/Values/
// ValueIndex, KindInput uses Label/BindingName, KindSlotSelector uses
// Label/Preview/Value (Value holds the preview BMP path).
type Item struct {
	Label       string
	LongDesc    string
	Value       string
	Values      []string
	ValueIndex  int
	Locked      bool
	OptionKey   string       // KindVar/KindFixed: the underlying core.Option key
	BindingName string       // KindInput: the Button/Shortcut display name this row binds
	Preview     PreviewState // KindSlotSelector: Value holds the BMP path when Preview == PreviewAvailable
}

// Screen is one level of the menu stack: a title, a list of rows, the
// currently highlighted row, and a scroll offset for paging when the
// list exceeds the visible viewport.
type Screen struct {
	Kind        Kind
	Title       string
	Items       []Item
	Cursor      int
	ScrollTop   int
	VisibleRows int

	// SaveMode distinguishes a KindSlotSelector's two uses: true when
	// confirming a slot writes a new save, false when it loads one.
	SaveMode bool

	// OnConfirm names the action a KindList row performs when
	// confirmed (e.g. "options_frontend", "options_controls",
	// "save_changes_save"), read by
	// Menu.Handle. Unused by other Kinds.
	OnConfirm []string
}

// ClampCursor wraps Cursor within [0, len(Items)) -- paging wraps at
// ends.
func (s *Screen) ClampCursor() {
	n := len(s.Items)
	if n == 0 {
		s.Cursor = 0
		return
	}
	s.Cursor = ((s.Cursor % n) + n) % n
}

// EnsureVisible slides ScrollTop so Cursor stays within the visible
// viewport, and reports whether scroll indicators should be drawn above
// or below.
func (s *Screen) EnsureVisible() (showUp, showDown bool) {
	if s.VisibleRows <= 0 || len(s.Items) <= s.VisibleRows {
		s.ScrollTop = 0
		return false, false
	}
	if s.Cursor < s.ScrollTop {
		s.ScrollTop = s.Cursor
	}
	if s.Cursor >= s.ScrollTop+s.VisibleRows {
		s.ScrollTop = s.Cursor - s.VisibleRows + 1
	}
	showUp = s.ScrollTop > 0
	showDown = s.ScrollTop+s.VisibleRows < len(s.Items)
	return showUp, showDown
}
