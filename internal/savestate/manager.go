// Package savestate implements the save-state and disc-change interface:
// numbered slot files alongside the ROM, a resume marker for auto-resume
// on next launch, BMP slot previews, and M3U-based disc sets. Grounded in
// the teacher's standalone/savestate.go SaveStateManager, with the
// slot-file naming and resume-marker protocol taken from
// original_source's State_getPath/State_autosave/State_resume (the
// SaveStateManager in the retrieved Go corpus names its files
// differently; the original C's "<rom>.st<slot>" naming is kept here).
package savestate

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/user-none/minarch/internal/core"
)

// AutoResumeSlot is the slot written just before sleep/shutdown and read
// back on next launch.
const AutoResumeSlot = 8

// Manager owns one ROM's save-state slots and resume marker. RomPath is
// the loaded ROM's path with its extension still attached; slot and
// preview paths are derived by trimming the extension.
type Manager struct {
	RomPath          string
	ResumeMarkerPath string
}

// NewManager returns a Manager for the given loaded ROM. resumeMarkerPath
// is a single shared file (not per-ROM) naming whichever ROM most
// recently auto-saved, matching the original's single RESUME_SLOT_PATH.
func NewManager(romPath, resumeMarkerPath string) *Manager {
	return &Manager{RomPath: romPath, ResumeMarkerPath: resumeMarkerPath}
}

func stem(path string) string {
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == '.' {
			return path[:i]
		}
		if path[i] == '/' {
			break
		}
	}
	return path
}

// SlotPath returns the file a given slot's state is read from or written
// to: "<rom-sans-ext>.st<slot>".
func (m *Manager) SlotPath(slot int) string {
	return fmt.Sprintf("%s.st%d", stem(m.RomPath), slot)
}

// PreviewPath returns the BMP thumbnail path for a given slot.
func (m *Manager) PreviewPath(slot int) string {
	return fmt.Sprintf("%s.st%d.bmp", stem(m.RomPath), slot)
}

// Exists reports whether slot has a saved state.
func (m *Manager) Exists(slot int) bool {
	_, err := os.Stat(m.SlotPath(slot))
	return err == nil
}

// Save serializes mod's current state and writes it to slot.
func (m *Manager) Save(mod core.Module, slot int) error {
	size := mod.SerializeSize()
	if size == 0 {
		return fmt.Errorf("savestate: core reports zero serialize size")
	}
	buf := make([]byte, size)
	if !mod.Serialize(buf) {
		return fmt.Errorf("savestate: serialize failed")
	}
	return os.WriteFile(m.SlotPath(slot), buf, 0o644)
}

// Load reads slot's state and restores it into mod. The allocation is
// sized from the core's *current* SerializeSize() report, but the file
// may hold fewer bytes than that if the core under-reported its size at
// save time; this is tolerated as long as the actual file is no larger
// than the allocation (actual_read <= allocated). A larger file than the
// allocation is an error -- the core would be getting a truncated,
// truncation-silent state.
func (m *Manager) Load(mod core.Module, slot int) error {
	size := mod.SerializeSize()
	if size == 0 {
		return fmt.Errorf("savestate: core reports zero serialize size")
	}
	data, err := os.ReadFile(m.SlotPath(slot))
	if err != nil {
		return err
	}
	if uint(len(data)) > size {
		return fmt.Errorf("savestate: state file %d bytes exceeds allocation %d", len(data), size)
	}
	buf := make([]byte, size)
	copy(buf, data)
	if !mod.Unserialize(buf) {
		return fmt.Errorf("savestate: unserialize failed")
	}
	return nil
}

// SaveResume writes the auto-resume slot and records RomPath in the
// shared resume marker file so the next launch knows which ROM to
// resume.
func (m *Manager) SaveResume(mod core.Module) error {
	if err := m.Save(mod, AutoResumeSlot); err != nil {
		return err
	}
	if m.ResumeMarkerPath == "" {
		return nil
	}
	return os.WriteFile(m.ResumeMarkerPath, []byte(m.RomPath), 0o644)
}

// ConsumeResumeMarker reads and deletes the resume marker file, returning
// the ROM path it named and whether a marker was present. Deleting on
// read (rather than on successful resume) matches the original's
// unlink-then-read ordering in State_resume, so a crash mid-resume never
// leaves a stale marker pointing at a ROM the frontend already attempted.
func ConsumeResumeMarker(path string) (romPath string, ok bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", false
	}
	os.Remove(path)
	return string(data), true
}

// HasResumeState reports whether AutoResumeSlot has a saved state for
// this ROM, independent of whether the resume marker currently points
// here.
func (m *Manager) HasResumeState() bool {
	return m.Exists(AutoResumeSlot)
}

// LastSlotPath returns the file remembering which slot the menu was last
// browsing for this ROM, grounded in the original's menu.slot_path
// ("<rom>.txt", read with getInt/putInt). The hotkey Save/Load State
// shortcuts (which have no slot selector of their own) target this slot.
func (m *Manager) LastSlotPath() string {
	return stem(m.RomPath) + ".txt"
}

// ReadLastSlot reads the remembered slot, defaulting to 0 if absent, not
// a number, or equal to AutoResumeSlot (the original's "slot==8 -> 0"
// guard against a hotkey ever landing on the resume slot).
func (m *Manager) ReadLastSlot() int {
	data, err := os.ReadFile(m.LastSlotPath())
	if err != nil {
		return 0
	}
	slot, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || slot == AutoResumeSlot {
		return 0
	}
	return slot
}

// WriteLastSlot records slot as the menu's last-browsed slot.
func (m *Manager) WriteLastSlot(slot int) error {
	return os.WriteFile(m.LastSlotPath(), []byte(strconv.Itoa(slot)), 0o644)
}
