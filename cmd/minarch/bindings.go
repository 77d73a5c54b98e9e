package main

import (
	"github.com/user-none/minarch/internal/config"
	"github.com/user-none/minarch/internal/core"
	"github.com/user-none/minarch/internal/inputmap"
	"github.com/user-none/minarch/internal/menu"
)

// buildButtons cross-references the pak-default button list against the
// descriptors the loaded game reported via SET_INPUT_DESCRIPTORS (port 0
// only -- this frontend drives a single local player), flagging any
// default button the game never declared as Ignored so it
// neither polls nor shows up in the controls screen. A game that never
// calls SET_INPUT_DESCRIPTORS (descriptors is empty) gets the full
// default set unfiltered, matching the original's "used if pak.cfg
// doesn't exist or doesn't have bindings" fallback.
func buildButtons(defaults []inputmap.Button, descriptors []core.InputDescriptor) []inputmap.Button {
	if len(descriptors) == 0 {
		return defaults
	}
	supported := make(map[uint]bool, len(descriptors))
	for _, d := range descriptors {
		if d.Port == 0 {
			supported[d.ID] = true
		}
	}
	out := make([]inputmap.Button, len(defaults))
	copy(out, defaults)
	for i := range out {
		if !supported[out[i].RetroID] {
			out[i].Ignored = true
		}
	}
	return out
}

// mergeLabels layers override on top of builtin, override winning on key
// collision -- the shape Build/BuildShortcuts' kbLabels/padLabels
// arguments need once the built-in defaults and config-file overrides are
// combined into a single fully-resolved fallback table (mapping.go's
// `defaults` parameter can't serve two different keyboard/gamepad
// namespaces at once, so the merge happens here instead).
func mergeLabels(builtin, override map[string]string) map[string]string {
	out := make(map[string]string, len(builtin)+len(override))
	for k, v := range builtin {
		out[k] = v
	}
	for k, v := range override {
		out[k] = v
	}
	return out
}

func keyLabel(m inputmap.Mapping, localID int) string {
	k, ok := m.Keys[localID]
	if !ok {
		return inputmap.LabelNone
	}
	name, ok := inputmap.KeyToName(k)
	if !ok {
		return inputmap.LabelNone
	}
	return inputmap.FormatLabel(name, m.KeyModifier[localID])
}

func padLabel(m inputmap.Mapping, localID int) string {
	b, ok := m.Gamepad[localID]
	if !ok {
		return inputmap.LabelNone
	}
	name, ok := inputmap.PadToName(b)
	if !ok {
		return inputmap.LabelNone
	}
	return inputmap.FormatLabel(name, m.PadModifier[localID])
}

// buttonBindings converts buttons into the minimal view the controls
// screen renders, per menu.Binding's doc: "menu doesn't import inputmap
// itself, so the caller converts."
func buttonBindings(buttons []inputmap.Button, m inputmap.Mapping) []menu.Binding {
	out := make([]menu.Binding, 0, len(buttons))
	for _, b := range buttons {
		if b.Ignored || b.LocalButtonID < 0 {
			continue
		}
		out = append(out, menu.Binding{
			DisplayName: b.DisplayName,
			KeyLabel:    keyLabel(m, b.LocalButtonID),
			PadLabel:    padLabel(m, b.LocalButtonID),
		})
	}
	return out
}

// shortcutBindings is buttonBindings' counterpart for hotkeys.
// BuildShortcuts keys its Mapping by each shortcut's position in the
// slice it was given, so that same index must be used here to look the
// binding back up.
func shortcutBindings(shortcuts []inputmap.Shortcut, m inputmap.Mapping) []menu.Binding {
	out := make([]menu.Binding, 0, len(shortcuts))
	for i, s := range shortcuts {
		if s.Ignored {
			continue
		}
		out = append(out, menu.Binding{
			DisplayName: s.DisplayName,
			KeyLabel:    keyLabel(m, i),
			PadLabel:    padLabel(m, i),
		})
	}
	return out
}

// buildMappings resolves both the button and shortcut Mappings from the
// persisted config layer plus whatever rebindings are pending in the
// menu's MENU_INPUT screen but not yet saved -- called once at startup
// (pending nil) and again every time a binding is captured or Restore
// Defaults fires.
func buildMappings(buttons []inputmap.Button, shortcuts []inputmap.Shortcut, merged, pending *config.Set) (buttonMapping, shortcutMapping inputmap.Mapping) {
	if pending == nil {
		pending = config.NewSet()
	}
	kbOverride := mergeLabels(merged.Bindings(), pending.Bindings())
	padOverride := mergeLabels(merged.GamepadBindings(), pending.GamepadBindings())

	kbLabels := mergeLabels(inputmap.DefaultButtonKeyLabels(), kbOverride)
	padLabels := mergeLabels(inputmap.DefaultButtonPadLabels(), padOverride)
	buttonMapping = inputmap.Build(buttons, nil, kbLabels, padLabels)

	// DefaultShortcuts has no built-in gamepad labels -- every hotkey is
	// keyboard-bound out of the box, so padOverride needs no defaults
	// layer underneath it here.
	scKbLabels := mergeLabels(inputmap.DefaultShortcutKeyLabels(), kbOverride)
	shortcutMapping = inputmap.BuildShortcuts(shortcuts, nil, scKbLabels, padOverride)
	return buttonMapping, shortcutMapping
}

// actionEdges resolves, from one frame's resolved shortcut bitmask and
// the previous frame's, which Actions are newly pressed this frame
// (edge-triggered: save state, load state, reset, save-and-quit, cycle
// scaling, cycle effect, toggle fast-forward) and which are currently
// held (level-triggered: hold fast-forward).
func actionEdges(shortcuts []inputmap.Shortcut, prev, cur uint32) (pressed, held map[inputmap.Action]bool) {
	pressed = make(map[inputmap.Action]bool)
	held = make(map[inputmap.Action]bool)
	newlyPressed := cur &^ prev
	for i, s := range shortcuts {
		bit := uint32(1) << uint(i)
		if cur&bit != 0 {
			held[s.Action] = true
		}
		if newlyPressed&bit != 0 {
			pressed[s.Action] = true
		}
	}
	return pressed, held
}
