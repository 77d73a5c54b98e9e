package inputmap

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// LabelNone is the BUTTON_LABEL written when a binding has been cleared
// via MENU_INPUT's X-clears-to-NONE action.
const LabelNone = "NONE"

// Button is one emulated button's mapping record: its display name, the
// retro_id the core reports it under, which local bit it occupies in the
// per-core button bitmask, and whether it requires the MENU modifier.
type Button struct {
	DisplayName    string
	RetroID        uint
	LocalButtonID  int
	Modifier       bool
	DefaultLocalID int
	Ignored        bool
}

// Action enumerates the frontend-level hotkey actions a Shortcut can
// bind to.
type Action int

const (
	ActionSaveState Action = iota
	ActionLoadState
	ActionReset
	ActionSaveAndQuit
	ActionCycleScaling
	ActionCycleEffect
	ActionToggleFastForward
	ActionHoldFastForward
)

// Shortcut is a hotkey mapping record, the same shape as Button, bound
// to a frontend Action instead of a core button.
type Shortcut struct {
	DisplayName    string
	Action         Action
	LocalButtonID  int
	Modifier       bool
	DefaultLocalID int
	Ignored        bool
}

// DefaultShortcuts returns the eight built-in hotkeys with LocalButtonID
// -1: BuildShortcuts keys them by slice index instead, and their labels
// come from the label tables it is given (DefaultShortcutKeyLabels plus
// any config override).
func DefaultShortcuts() []Shortcut {
	return []Shortcut{
		{DisplayName: "Save State", Action: ActionSaveState, LocalButtonID: -1, DefaultLocalID: -1},
		{DisplayName: "Load State", Action: ActionLoadState, LocalButtonID: -1, DefaultLocalID: -1},
		{DisplayName: "Reset", Action: ActionReset, LocalButtonID: -1, DefaultLocalID: -1},
		{DisplayName: "Save And Quit", Action: ActionSaveAndQuit, LocalButtonID: -1, DefaultLocalID: -1},
		{DisplayName: "Cycle Screen Scaling", Action: ActionCycleScaling, LocalButtonID: -1, DefaultLocalID: -1},
		{DisplayName: "Cycle Effect", Action: ActionCycleEffect, LocalButtonID: -1, DefaultLocalID: -1},
		{DisplayName: "Toggle Fast Forward", Action: ActionToggleFastForward, LocalButtonID: -1, DefaultLocalID: -1},
		{DisplayName: "Hold Fast Forward", Action: ActionHoldFastForward, LocalButtonID: -1, DefaultLocalID: -1},
	}
}

// ParseLabel splits a BUTTON_LABEL ("SOUTH" or "MENU+SOUTH") into its
// bare button name and whether the MENU modifier is required.
func ParseLabel(label string) (name string, modifier bool) {
	if after, ok := strings.CutPrefix(label, "MENU+"); ok {
		return after, true
	}
	return label, false
}

// FormatLabel is ParseLabel's inverse.
func FormatLabel(name string, modifier bool) string {
	if modifier {
		return "MENU+" + name
	}
	return name
}

// Mapping is the resolved keyboard/gamepad binding table Poll reads
// from. Keyed by LocalButtonID, mirroring the teacher's bit-ID-keyed
// InputMapping.
type Mapping struct {
	Keys        map[int]ebiten.Key
	KeyModifier map[int]bool
	Gamepad     map[int]ebiten.StandardGamepadButton
	PadModifier map[int]bool
}

// Build resolves a Mapping for buttons from config overrides (display
// name -> BUTTON_LABEL), falling back to each Button's default binding
// when no override or an invalid/reserved one is present. Grounded in
// the teacher's BuildMappingFromConfig, generalized from a fixed D-pad-
// plus-adaptor-buttons scheme to an arbitrary Button slice.
func Build(buttons []Button, defaults map[string]string, kbLabels, padLabels map[string]string) Mapping {
	m := Mapping{
		Keys:        make(map[int]ebiten.Key),
		KeyModifier: make(map[int]bool),
		Gamepad:     make(map[int]ebiten.StandardGamepadButton),
		PadModifier: make(map[int]bool),
	}
	for _, b := range buttons {
		if b.Ignored || b.LocalButtonID < 0 {
			continue
		}
		resolveKey(&m, b.LocalButtonID, labelOrDefault(kbLabels, defaults, b.DisplayName))
		resolvePad(&m, b.LocalButtonID, labelOrDefault(padLabels, defaults, b.DisplayName))
	}
	return m
}

// BuildShortcuts is Build's counterpart for Shortcut records. Hotkeys
// have no core bitmask position to key on, so the resulting Mapping is
// keyed by each shortcut's index in the slice rather than its
// LocalButtonID field.
func BuildShortcuts(shortcuts []Shortcut, defaults map[string]string, kbLabels, padLabels map[string]string) Mapping {
	m := Mapping{
		Keys:        make(map[int]ebiten.Key),
		KeyModifier: make(map[int]bool),
		Gamepad:     make(map[int]ebiten.StandardGamepadButton),
		PadModifier: make(map[int]bool),
	}
	for i, s := range shortcuts {
		if s.Ignored {
			continue
		}
		resolveKey(&m, i, labelOrDefault(kbLabels, defaults, s.DisplayName))
		resolvePad(&m, i, labelOrDefault(padLabels, defaults, s.DisplayName))
	}
	return m
}

func labelOrDefault(overrides, defaults map[string]string, displayName string) string {
	if v, ok := overrides[displayName]; ok {
		return v
	}
	if v, ok := defaults[displayName]; ok {
		return v
	}
	return ""
}

func resolveKey(m *Mapping, localID int, label string) {
	if label == "" || label == LabelNone {
		return
	}
	name, modifier := ParseLabel(label)
	k, ok := ParseKey(name)
	if !ok || IsReservedKey(k) {
		return
	}
	m.Keys[localID] = k
	m.KeyModifier[localID] = modifier
}

func resolvePad(m *Mapping, localID int, label string) {
	if label == "" || label == LabelNone {
		return
	}
	name, modifier := ParseLabel(label)
	b, ok := ParsePad(name)
	if !ok {
		return
	}
	m.Gamepad[localID] = b
	m.PadModifier[localID] = modifier
}

// Poll reads the current keyboard and, if hasGamepad, controller state
// into a button bitmask. menuHeld gates modifier-flagged bindings: a
// modifier binding only contributes its bit while menuHeld is true, and
// a non-modifier binding only contributes while menuHeld is false, so
// the same physical button can serve two purposes depending on whether
// the menu modifier is held.
func Poll(m Mapping, gamepadID ebiten.GamepadID, hasGamepad, menuHeld bool) uint32 {
	var buttons uint32
	for localID, key := range m.Keys {
		if m.KeyModifier[localID] != menuHeld {
			continue
		}
		if ebiten.IsKeyPressed(key) {
			buttons |= 1 << uint(localID)
		}
	}
	if hasGamepad {
		for localID, btn := range m.Gamepad {
			if m.PadModifier[localID] != menuHeld {
				continue
			}
			if ebiten.IsStandardGamepadButtonPressed(gamepadID, btn) {
				buttons |= 1 << uint(localID)
			}
		}
	}
	return buttons
}
