package menu

import (
	"os"
	"strconv"
)

// SlotCount is the number of visible save slots; slot 8 (AutoResumeSlot
// in internal/savestate) exists on disk but is never shown in the
// selector -- slots 0-7 are visible, with slot 8 reserved for auto-resume.
const SlotCount = 8

// PreviewState is the three-state preview shown for a slot: a BMP if the
// slot has one, "No Preview" if the state exists without a BMP, or
// "Empty Slot" if the slot has no state at all.
type PreviewState int

const (
	PreviewEmpty PreviewState = iota
	PreviewMissing
	PreviewAvailable
)

const (
	itemContinue = iota
	itemSave
	itemLoad
	itemOptions
	itemQuit
)

// buildTopScreen constructs the five-item top-level list, adding a
// disc-change row on Continue when the loaded game is part of a
// multi-disc M3U set with more than one disc.
func (m *Menu) buildTopScreen() *Screen {
	items := []Item{
		{Label: "Continue"},
		{Label: "Save"},
		{Label: "Load"},
		{Label: "Options"},
		{Label: "Quit"},
	}
	if m.Discs != nil && len(m.Discs.Paths) > 1 {
		m.stagedDisc = m.Discs.Current
		items[itemContinue].Value = discLabel(m.stagedDisc, len(m.Discs.Paths))
	}
	return &Screen{Kind: KindTopList, Title: "Menu", Items: items, VisibleRows: 5}
}

func discLabel(current, total int) string {
	if current < 0 {
		current = 0
	}
	n := current + 1
	return "Disc " + strconv.Itoa(n) + "/" + strconv.Itoa(total)
}

// buildSlotScreen constructs the 8-slot save/load selector, resolving
// each slot's three-state preview from the filesystem so the renderer
// can draw the BMP / "No Preview" / "Empty Slot" panel straight off
// each Item.
func (m *Menu) buildSlotScreen(title string) *Screen {
	s := &Screen{Kind: KindSlotSelector, Title: title, VisibleRows: SlotCount}
	for i := 0; i < SlotCount; i++ {
		item := Item{Label: "Slot " + strconv.Itoa(i), Preview: PreviewEmpty}
		if m.SaveManager != nil && m.SaveManager.Exists(i) {
			item.Preview = PreviewMissing
			if _, err := os.Stat(m.SaveManager.PreviewPath(i)); err == nil {
				item.Preview = PreviewAvailable
				item.Value = m.SaveManager.PreviewPath(i)
			}
		}
		s.Items = append(s.Items, item)
	}
	return s
}
