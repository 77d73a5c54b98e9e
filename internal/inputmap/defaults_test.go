package inputmap

import "testing"

func TestDefaultButtonsHaveUniqueLocalIDs(t *testing.T) {
	seen := make(map[int]bool)
	for _, b := range DefaultButtons() {
		if seen[b.LocalButtonID] {
			t.Fatalf("duplicate LocalButtonID %d", b.LocalButtonID)
		}
		seen[b.LocalButtonID] = true
	}
}

func TestDefaultButtonKeyLabelsParseAndDontCollide(t *testing.T) {
	labels := DefaultButtonKeyLabels()
	buttons := DefaultButtons()
	if len(labels) != len(buttons) {
		t.Fatalf("expected a keyboard default for every button, got %d for %d buttons", len(labels), len(buttons))
	}
	seenKeys := make(map[string]bool)
	for _, b := range buttons {
		label, ok := labels[b.DisplayName]
		if !ok {
			t.Fatalf("no default keyboard label for %q", b.DisplayName)
		}
		if _, ok := ParseKey(label); !ok {
			t.Fatalf("default keyboard label %q for %q is not a known key name", label, b.DisplayName)
		}
		if seenKeys[label] {
			t.Fatalf("default keyboard label %q assigned to more than one button", label)
		}
		seenKeys[label] = true
	}
}

func TestDefaultButtonPadLabelsParse(t *testing.T) {
	labels := DefaultButtonPadLabels()
	for _, b := range DefaultButtons() {
		label, ok := labels[b.DisplayName]
		if !ok {
			t.Fatalf("no default gamepad label for %q", b.DisplayName)
		}
		if _, ok := ParsePad(label); !ok {
			t.Fatalf("default gamepad label %q for %q is not a known pad button name", label, b.DisplayName)
		}
	}
}

func TestDefaultShortcutKeyLabelsMatchDefaultShortcuts(t *testing.T) {
	labels := DefaultShortcutKeyLabels()
	for _, s := range DefaultShortcuts() {
		label, ok := labels[s.DisplayName]
		if !ok {
			t.Fatalf("no default keyboard label for shortcut %q", s.DisplayName)
		}
		if _, ok := ParseKey(label); !ok {
			t.Fatalf("default shortcut label %q for %q is not a known key name", label, s.DisplayName)
		}
		k, _ := ParseKey(label)
		if IsReservedKey(k) {
			t.Fatalf("default shortcut %q binds to reserved key %q", s.DisplayName, label)
		}
	}
}
