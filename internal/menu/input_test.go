package menu

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/user-none/minarch/internal/config"
	"github.com/user-none/minarch/internal/core"
	"github.com/user-none/minarch/internal/savestate"
)

func newTestOptions() *core.OptionList {
	l := core.NewOptionList()
	l.LoadLegacy([]core.LegacyVariable{
		{Key: "gb_palette", Value: "Palette; Default|Grayscale|Autumn"},
	})
	l.LoadDefinitions([]core.OptionDefinition{
		{Key: "minarch_screen_scaling", Desc: "Screen Scaling", Values: []core.OptionValue{
			{Value: "native", Label: "Native"}, {Value: "aspect", Label: "Aspect"},
		}, Default: "native"},
	})
	return l
}

func TestBuildVarScreenLocksSingleValueOptions(t *testing.T) {
	opts := core.NewOptionList()
	opts.LoadLegacy([]core.LegacyVariable{
		{Key: "fixed_thing", Value: "Only Choice; solo"},
		{Key: "real_choice", Value: "Palette; a|b|c"},
	})
	m := &Menu{Options: opts}
	s := m.buildVarScreen()

	if len(s.Items) != 2 {
		t.Fatalf("items = %d want 2", len(s.Items))
	}
	if !s.Items[0].Locked {
		t.Fatal("expected single-value option to be Locked")
	}
	if s.Items[1].Locked {
		t.Fatal("expected multi-value option to be unlocked")
	}
}

func TestBuildVarScreenSkipsHidden(t *testing.T) {
	opts := core.NewOptionList()
	opts.LoadDefinitions([]core.OptionDefinition{
		{Key: "visible", Desc: "Visible", Values: []core.OptionValue{{Value: "a", Label: "A"}, {Value: "b", Label: "B"}}, Default: "a"},
		{Key: "hidden", Desc: "Hidden", Values: []core.OptionValue{{Value: "x", Label: "X"}, {Value: "y", Label: "Y"}}, Default: "x"},
	})
	opts.Get("hidden").Hidden = true

	m := &Menu{Options: opts}
	s := m.buildVarScreen()
	if len(s.Items) != 1 {
		t.Fatalf("items = %d want 1", len(s.Items))
	}
	if s.Items[0].OptionKey != "visible" {
		t.Fatalf("remaining item key = %q want visible", s.Items[0].OptionKey)
	}
}

func TestHandleUpDownWrapsCursor(t *testing.T) {
	s := &Screen{Kind: KindList, Items: make([]Item, 3)}
	m := &Menu{stack: []*Screen{s}}

	m.Handle(ActionUp)
	if s.Cursor != 2 {
		t.Fatalf("cursor = %d want 2 (wrapped up from 0)", s.Cursor)
	}
	m.Handle(ActionDown)
	if s.Cursor != 0 {
		t.Fatalf("cursor = %d want 0 (wrapped down from 2)", s.Cursor)
	}
}

func TestHandleValueCycleUpdatesItemAndFlagsScaleDirty(t *testing.T) {
	opts := newTestOptions()
	m := &Menu{Options: opts}
	m.Enter()
	m.CurrentScreen().Cursor = itemOptions
	m.Handle(ActionConfirm) // Options
	m.Handle(ActionConfirm) // Frontend Options (cursor 0 == optionsRowFrontend)

	s := m.CurrentScreen()
	if s.Kind != KindVar {
		t.Fatalf("screen kind = %v want KindVar", s.Kind)
	}
	// Find the scaling row.
	row := -1
	for i, it := range s.Items {
		if it.OptionKey == optionKeyScreenScaling {
			row = i
		}
	}
	if row < 0 {
		t.Fatal("expected a row for minarch_screen_scaling")
	}
	s.Cursor = row

	m.Handle(ActionRight)
	if !m.scaleDirty {
		t.Fatal("expected scaleDirty after cycling the scaling option")
	}
	if opts.Get("minarch_screen_scaling").CurrentIndex != 1 {
		t.Fatalf("current index = %d want 1", opts.Get("minarch_screen_scaling").CurrentIndex)
	}
}

func TestHandleValueCycleSkipsLockedRow(t *testing.T) {
	opts := core.NewOptionList()
	opts.LoadLegacy([]core.LegacyVariable{{Key: "solo", Value: "Only; a"}})
	m := &Menu{Options: opts}
	s := m.buildVarScreen()
	m.stack = []*Screen{s}

	m.Handle(ActionRight)
	if opts.Get("solo").CurrentIndex != 0 {
		t.Fatal("expected locked row to ignore cycle")
	}
}

func TestVarScreenConfirmOnLockedRowOpensInfoPopup(t *testing.T) {
	opts := core.NewOptionList()
	opts.LoadLegacy([]core.LegacyVariable{{Key: "solo", Value: "Only Setting; a"}})
	m := &Menu{Options: opts}
	m.stack = []*Screen{m.buildVarScreen()}

	m.Handle(ActionConfirm)
	if len(m.stack) != 2 {
		t.Fatalf("stack depth = %d want 2 after opening info popup", len(m.stack))
	}
	if m.CurrentScreen().Kind != KindFixed {
		t.Fatalf("pushed screen kind = %v want KindFixed", m.CurrentScreen().Kind)
	}
}

func TestDiscCycleOnlyAffectsContinueRow(t *testing.T) {
	discs := &savestate.DiscSet{Paths: []string{"a", "b", "c"}, Current: 0}
	m := &Menu{Discs: discs}
	m.Enter()

	s := m.CurrentScreen()
	s.Cursor = itemSave
	m.Handle(ActionRight)
	if m.stagedDisc != 0 {
		t.Fatalf("stagedDisc = %d want unchanged 0 (cursor was not on Continue)", m.stagedDisc)
	}

	s.Cursor = itemContinue
	m.Handle(ActionRight)
	if m.stagedDisc != 1 {
		t.Fatalf("stagedDisc = %d want 1", m.stagedDisc)
	}
	if s.Items[itemContinue].Value != "Disc 2/3" {
		t.Fatalf("continue label = %q want %q", s.Items[itemContinue].Value, "Disc 2/3")
	}
}

func TestConfirmContinueAppliesStagedDiscChangeAndCloses(t *testing.T) {
	var replaced string
	disc := &core.DiscControlInterface{
		ReplaceImageIndex: func(index uint, path string) bool {
			replaced = path
			return true
		},
	}
	discs := &savestate.DiscSet{Paths: []string{"a.bin", "b.bin"}, Current: 0}
	m := &Menu{Discs: discs, Disc: disc}
	m.Enter()
	m.CurrentScreen().Cursor = itemContinue
	m.Handle(ActionRight) // stage disc 1

	result := m.Handle(ActionConfirm)
	if result != ResultClosed {
		t.Fatalf("result = %v want ResultClosed", result)
	}
	if replaced != "b.bin" {
		t.Fatalf("replaced image = %q want b.bin", replaced)
	}
	if discs.Current != 1 {
		t.Fatalf("discs.Current = %d want 1", discs.Current)
	}
	if m.IsOpen() {
		t.Fatal("expected menu closed after confirming Continue")
	}
}

func TestConfirmQuitReturnsResultQuitDirectly(t *testing.T) {
	m := &Menu{}
	m.Enter()
	m.CurrentScreen().Cursor = itemQuit
	if got := m.Handle(ActionConfirm); got != ResultQuit {
		t.Fatalf("result = %v want ResultQuit", got)
	}
}

func TestSelectedSlotOnlyTrueAfterConfirm(t *testing.T) {
	m := &Menu{}
	m.Enter()
	m.CurrentScreen().Cursor = itemLoad
	m.Handle(ActionConfirm) // pushes slot selector

	if _, _, ok := m.SelectedSlot(); ok {
		t.Fatal("expected SelectedSlot to be false while merely browsing")
	}

	m.CurrentScreen().Cursor = 3
	m.Handle(ActionConfirm)
	slot, saveMode, ok := m.SelectedSlot()
	if !ok {
		t.Fatal("expected SelectedSlot true after confirming a slot")
	}
	if slot != 3 {
		t.Fatalf("slot = %d want 3", slot)
	}
	if saveMode {
		t.Fatal("expected saveMode false for the Load path")
	}

	m.ConfirmSlot()
	if _, _, ok := m.SelectedSlot(); ok {
		t.Fatal("expected SelectedSlot false after ConfirmSlot closes the selector")
	}
	if !m.IsOpen() || m.CurrentScreen().Kind != KindTopList {
		t.Fatal("expected ConfirmSlot to pop back to the top list, not close the menu")
	}
}

func TestSaveSlotScreenMarksSaveMode(t *testing.T) {
	m := &Menu{}
	m.Enter()
	m.CurrentScreen().Cursor = itemSave
	m.Handle(ActionConfirm)
	if !m.CurrentScreen().SaveMode {
		t.Fatal("expected SaveMode true on the Save path's slot selector")
	}
}

func TestCaptureBindingRecordsAndAdvancesCursor(t *testing.T) {
	m := &Menu{Buttons: []Binding{{DisplayName: "A"}, {DisplayName: "B"}}}
	m.stack = []*Screen{m.buildControlsScreen()}

	m.Handle(ActionConfirm) // enters await-input for row 0 ("A")
	if !m.AwaitingInput() {
		t.Fatal("expected AwaitingInput true after confirming a binding row")
	}

	m.CaptureBinding(false, "SOUTH")
	if m.AwaitingInput() {
		t.Fatal("expected AwaitingInput false after capture")
	}
	if m.CurrentScreen().Cursor != 1 {
		t.Fatalf("cursor = %d want 1 (advanced)", m.CurrentScreen().Cursor)
	}
	if m.CurrentScreen().Items[0].Value != "SOUTH" {
		t.Fatalf("item value = %q want SOUTH", m.CurrentScreen().Items[0].Value)
	}

	pending := m.PendingBindings()
	if pending == nil {
		t.Fatal("expected PendingBindings to be non-nil after a capture")
	}
	v, ok := pending.Get("bind A")
	if !ok || v != "SOUTH" {
		t.Fatalf("pending bind A = %q ok=%v want SOUTH", v, ok)
	}
}

func TestClearBindingSetsNoneAndRecordsPending(t *testing.T) {
	m := &Menu{Buttons: []Binding{{DisplayName: "A", KeyLabel: "SOUTH"}}}
	m.stack = []*Screen{m.buildControlsScreen()}

	m.Handle(ActionClear)
	if m.CurrentScreen().Items[0].Value != "NONE" {
		t.Fatalf("value = %q want NONE", m.CurrentScreen().Items[0].Value)
	}
	v, ok := m.PendingBindings().Get("bind A")
	if !ok || v != "NONE" {
		t.Fatalf("pending bind A = %q ok=%v want NONE", v, ok)
	}
}

func TestExitDoesNotAutoPersistPendingBindings(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "minarch.cfg")
	cfg, err := config.Load(config.Paths{GlobalUserPath: cfgPath})
	if err != nil {
		t.Fatal(err)
	}

	m := &Menu{Config: cfg, Buttons: []Binding{{DisplayName: "A"}}}
	m.Enter()
	m.CurrentScreen().Cursor = itemOptions
	m.Handle(ActionConfirm) // Options
	m.CurrentScreen().Cursor = 1
	m.Handle(ActionConfirm) // Controls
	m.Handle(ActionClear)   // clears binding "A", recorded in pendingBindings

	m.Exit()

	if _, err := os.Stat(cfgPath); err == nil {
		t.Fatal("expected Exit to leave unsaved binding edits off disk")
	}
}

func TestFlushChangesPersistsNonDefaultOptionsAndBindings(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "minarch.cfg")
	cfg, err := config.Load(config.Paths{GlobalUserPath: cfgPath})
	if err != nil {
		t.Fatal(err)
	}
	opts := core.NewOptionList()
	opts.LoadDefinitions([]core.OptionDefinition{
		{Key: "k", Desc: "K", Values: []core.OptionValue{{Value: "a", Label: "A"}, {Value: "b", Label: "B"}}, Default: "a"},
	})
	opts.CycleValue("k", 1)

	m := &Menu{Config: cfg, Options: opts}
	m.recordBinding("Jump", "SOUTH")

	if err := m.flushChanges(); err != nil {
		t.Fatal(err)
	}
	if m.PendingBindings() != nil {
		t.Fatal("expected pendingBindings cleared after a successful flush")
	}
	if opts.Changed {
		t.Fatal("expected Options.Changed cleared after a successful flush")
	}

	reloaded, err := config.Load(config.Paths{GlobalUserPath: cfgPath})
	if err != nil {
		t.Fatal(err)
	}
	if v, ok := reloaded.Merged.Get("k"); !ok || v != "b" {
		t.Fatalf("persisted k = %q ok=%v want b", v, ok)
	}
	if v, ok := reloaded.Merged.Get("bind Jump"); !ok || v != "SOUTH" {
		t.Fatalf("persisted bind Jump = %q ok=%v want SOUTH", v, ok)
	}
}

func TestSaveChangesRowDispatchesFlushAndPop(t *testing.T) {
	dir := t.TempDir()
	cfg, err := config.Load(config.Paths{GlobalUserPath: filepath.Join(dir, "minarch.cfg")})
	if err != nil {
		t.Fatal(err)
	}
	m := &Menu{Config: cfg, Options: core.NewOptionList()}
	m.stack = []*Screen{m.buildOptionsScreen(), m.buildSaveChangesScreen()}

	m.CurrentScreen().Cursor = 0 // "Save Changes"
	m.Handle(ActionConfirm)
	if m.CurrentScreen().Kind != KindList || m.CurrentScreen().Title != "Options" {
		t.Fatal("expected pop back to the options list after saving")
	}
}

func TestRestoreDefaultsRowPopsAndReportsResult(t *testing.T) {
	m := &Menu{Options: core.NewOptionList()}
	m.stack = []*Screen{m.buildOptionsScreen(), m.buildSaveChangesScreen()}
	m.CurrentScreen().Cursor = 1 // "Restore Defaults"

	result := m.Handle(ActionConfirm)
	if result != ResultRestoreDefaults {
		t.Fatalf("result = %v want ResultRestoreDefaults", result)
	}
	if m.CurrentScreen().Title != "Options" {
		t.Fatal("expected pop back to the options list")
	}
}
