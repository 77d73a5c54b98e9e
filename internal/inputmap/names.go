// Package inputmap builds the button/hotkey mapping tables (Button
// mapping, Shortcut mapping) from configuration overrides, and polls
// keyboard/gamepad state into the per-core button bitmask the frame
// loop's input-state callback reads. Grounded in the teacher's
// standalone/inputmap.go name tables and BuildMappingFromConfig/
// PollButtons/PollGamepadButtons pattern, generalized from a fixed
// 2-player D-pad-plus-adaptor-buttons scheme into a uniform Button/
// Shortcut record shape (display_name/local_button_id/modifier/default/
// ignored).
package inputmap

import "github.com/hajimehoshi/ebiten/v2"

var keyNameMap = map[string]ebiten.Key{
	"A": ebiten.KeyA, "B": ebiten.KeyB, "C": ebiten.KeyC, "D": ebiten.KeyD,
	"E": ebiten.KeyE, "F": ebiten.KeyF, "G": ebiten.KeyG, "H": ebiten.KeyH,
	"I": ebiten.KeyI, "J": ebiten.KeyJ, "K": ebiten.KeyK, "L": ebiten.KeyL,
	"M": ebiten.KeyM, "N": ebiten.KeyN, "O": ebiten.KeyO, "P": ebiten.KeyP,
	"Q": ebiten.KeyQ, "R": ebiten.KeyR, "S": ebiten.KeyS, "T": ebiten.KeyT,
	"U": ebiten.KeyU, "V": ebiten.KeyV, "W": ebiten.KeyW, "X": ebiten.KeyX,
	"Y": ebiten.KeyY, "Z": ebiten.KeyZ,
	"0": ebiten.Key0, "1": ebiten.Key1, "2": ebiten.Key2, "3": ebiten.Key3,
	"4": ebiten.Key4, "5": ebiten.Key5, "6": ebiten.Key6, "7": ebiten.Key7,
	"8": ebiten.Key8, "9": ebiten.Key9,
	"Enter": ebiten.KeyEnter, "Backspace": ebiten.KeyBackspace,
	"Space": ebiten.KeySpace, "Tab": ebiten.KeyTab, "Escape": ebiten.KeyEscape,
	"Shift": ebiten.KeyShift, "Control": ebiten.KeyControl, "Alt": ebiten.KeyAlt,
	"ArrowUp": ebiten.KeyArrowUp, "ArrowDown": ebiten.KeyArrowDown,
	"ArrowLeft": ebiten.KeyArrowLeft, "ArrowRight": ebiten.KeyArrowRight,
	"F1": ebiten.KeyF1, "F2": ebiten.KeyF2, "F3": ebiten.KeyF3, "F4": ebiten.KeyF4,
	"F5": ebiten.KeyF5, "F6": ebiten.KeyF6, "F7": ebiten.KeyF7, "F8": ebiten.KeyF8,
	"F9": ebiten.KeyF9, "F10": ebiten.KeyF10, "F11": ebiten.KeyF11, "F12": ebiten.KeyF12,
}

var padNameMap = map[string]ebiten.StandardGamepadButton{
	"A": ebiten.StandardGamepadButtonRightBottom, "B": ebiten.StandardGamepadButtonRightRight,
	"X": ebiten.StandardGamepadButtonRightLeft, "Y": ebiten.StandardGamepadButtonRightTop,
	"L1": ebiten.StandardGamepadButtonFrontTopLeft, "R1": ebiten.StandardGamepadButtonFrontTopRight,
	"L2": ebiten.StandardGamepadButtonFrontBottomLeft, "R2": ebiten.StandardGamepadButtonFrontBottomRight,
	"Start": ebiten.StandardGamepadButtonCenterRight, "Select": ebiten.StandardGamepadButtonCenterLeft,
	"DpadUp": ebiten.StandardGamepadButtonLeftTop, "DpadDown": ebiten.StandardGamepadButtonLeftBottom,
	"DpadLeft": ebiten.StandardGamepadButtonLeftLeft, "DpadRight": ebiten.StandardGamepadButtonLeftRight,
	"L3": ebiten.StandardGamepadButtonLeftStick, "R3": ebiten.StandardGamepadButtonRightStick,
}

// reservedKeys cannot be assigned as a binding since minarch itself uses
// them to open the menu regardless of user remapping.
var reservedKeys = map[ebiten.Key]bool{
	ebiten.KeyEscape: true,
}

var keyToName map[ebiten.Key]string
var padToName map[ebiten.StandardGamepadButton]string

func init() {
	keyToName = make(map[ebiten.Key]string, len(keyNameMap))
	for name, key := range keyNameMap {
		keyToName[key] = name
	}
	padToName = make(map[ebiten.StandardGamepadButton]string, len(padNameMap))
	for name, btn := range padNameMap {
		padToName[btn] = name
	}
}

// ParseKey converts a key name string to an ebiten.Key.
func ParseKey(name string) (ebiten.Key, bool) {
	k, ok := keyNameMap[name]
	return k, ok
}

// ParsePad converts a gamepad button name string to an
// ebiten.StandardGamepadButton.
func ParsePad(name string) (ebiten.StandardGamepadButton, bool) {
	b, ok := padNameMap[name]
	return b, ok
}

// KeyToName converts an ebiten.Key back to its name string.
func KeyToName(k ebiten.Key) (string, bool) {
	name, ok := keyToName[k]
	return name, ok
}

// PadToName converts an ebiten.StandardGamepadButton back to its name
// string.
func PadToName(b ebiten.StandardGamepadButton) (string, bool) {
	name, ok := padToName[b]
	return name, ok
}

// IsReservedKey reports whether k is reserved for minarch's own use and
// cannot be bound to an emulated button or shortcut.
func IsReservedKey(k ebiten.Key) bool {
	return reservedKeys[k]
}
