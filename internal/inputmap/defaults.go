package inputmap

// DefaultButtons returns the sixteen-button RetroPad-style set a pak
// default config declares when the loaded module ships none of its own,
// grounded in original_source's default_button_mapping (minarch.c):
// D-pad, four face buttons, Start/Select, and six shoulder/stick
// buttons, in the same declaration order. RetroID values follow the
// conventional RETRO_DEVICE_ID_JOYPAD_* numbering libretro cores expect.
func DefaultButtons() []Button {
	return []Button{
		{DisplayName: "Up", RetroID: 4, LocalButtonID: 0, DefaultLocalID: 0},
		{DisplayName: "Down", RetroID: 5, LocalButtonID: 1, DefaultLocalID: 1},
		{DisplayName: "Left", RetroID: 6, LocalButtonID: 2, DefaultLocalID: 2},
		{DisplayName: "Right", RetroID: 7, LocalButtonID: 3, DefaultLocalID: 3},
		{DisplayName: "A Button", RetroID: 8, LocalButtonID: 4, DefaultLocalID: 4},
		{DisplayName: "B Button", RetroID: 0, LocalButtonID: 5, DefaultLocalID: 5},
		{DisplayName: "X Button", RetroID: 9, LocalButtonID: 6, DefaultLocalID: 6},
		{DisplayName: "Y Button", RetroID: 1, LocalButtonID: 7, DefaultLocalID: 7},
		{DisplayName: "Start", RetroID: 3, LocalButtonID: 8, DefaultLocalID: 8},
		{DisplayName: "Select", RetroID: 2, LocalButtonID: 9, DefaultLocalID: 9},
		{DisplayName: "L1 Button", RetroID: 10, LocalButtonID: 10, DefaultLocalID: 10},
		{DisplayName: "R1 Button", RetroID: 11, LocalButtonID: 11, DefaultLocalID: 11},
		{DisplayName: "L2 Button", RetroID: 12, LocalButtonID: 12, DefaultLocalID: 12},
		{DisplayName: "R2 Button", RetroID: 13, LocalButtonID: 13, DefaultLocalID: 13},
		{DisplayName: "L3 Button", RetroID: 14, LocalButtonID: 14, DefaultLocalID: 14},
		{DisplayName: "R3 Button", RetroID: 15, LocalButtonID: 15, DefaultLocalID: 15},
	}
}

// DefaultButtonKeyLabels is the built-in keyboard fallback for every
// DefaultButtons row, WASD for the D-pad matching the teacher's
// BuildDefaultMapping dpadButtons table, the rest spread across unused
// letter/number keys so no two rows collide.
func DefaultButtonKeyLabels() map[string]string {
	return map[string]string{
		"Up": "W", "Down": "S", "Left": "A", "Right": "D",
		"A Button": "K", "B Button": "J", "X Button": "I", "Y Button": "U",
		"Start": "Enter", "Select": "Backspace",
		"L1 Button": "Q", "R1 Button": "E",
		"L2 Button": "1", "R2 Button": "3",
		"L3 Button": "7", "R3 Button": "9",
	}
}

// DefaultButtonPadLabels is the built-in gamepad fallback, one-to-one
// with names.go's padNameMap so every row binds to the like-named
// physical button on a standard gamepad.
func DefaultButtonPadLabels() map[string]string {
	return map[string]string{
		"Up": "DpadUp", "Down": "DpadDown", "Left": "DpadLeft", "Right": "DpadRight",
		"A Button": "A", "B Button": "B", "X Button": "X", "Y Button": "Y",
		"Start": "Start", "Select": "Select",
		"L1 Button": "L1", "R1 Button": "R1",
		"L2 Button": "L2", "R2 Button": "R2",
		"L3 Button": "L3", "R3 Button": "R3",
	}
}

// DefaultShortcutKeyLabels is the built-in keyboard fallback for
// DefaultShortcuts, spread across the F-row the way the teacher
// reserves F1-F12 for its own hotkeys -- this port has no competing
// standalone UI, so the whole row is free to assign.
func DefaultShortcutKeyLabels() map[string]string {
	return map[string]string{
		"Save State": "F1", "Load State": "F3",
		"Reset": "F4", "Save And Quit": "F10",
		"Cycle Screen Scaling": "F2", "Cycle Effect": "F6",
		"Toggle Fast Forward": "F8", "Hold Fast Forward": "Tab",
	}
}
