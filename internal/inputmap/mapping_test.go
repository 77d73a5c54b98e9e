package inputmap

import "testing"

func TestParseLabelModifier(t *testing.T) {
	name, mod := ParseLabel("MENU+SOUTH")
	if name != "SOUTH" || !mod {
		t.Fatalf("got %q, %v", name, mod)
	}
	name, mod = ParseLabel("SOUTH")
	if name != "SOUTH" || mod {
		t.Fatalf("got %q, %v", name, mod)
	}
}

func TestFormatLabelRoundTrip(t *testing.T) {
	if got := FormatLabel("SOUTH", true); got != "MENU+SOUTH" {
		t.Fatalf("got %q", got)
	}
	if got := FormatLabel("SOUTH", false); got != "SOUTH" {
		t.Fatalf("got %q", got)
	}
}

func TestBuildResolvesOverrideThenDefault(t *testing.T) {
	buttons := []Button{
		{DisplayName: "South", LocalButtonID: 0, DefaultLocalID: 0},
		{DisplayName: "North", LocalButtonID: 1, DefaultLocalID: 1},
	}
	defaults := map[string]string{"South": "A", "North": "Y"}
	kbOverrides := map[string]string{"South": "B"}

	m := Build(buttons, defaults, kbOverrides, nil)

	if m.Keys[0].String() != "B" {
		t.Fatalf("expected override B for South, got %v", m.Keys[0])
	}
	if m.Keys[1].String() != "Y" {
		t.Fatalf("expected default Y for North, got %v", m.Keys[1])
	}
}

func TestBuildSkipsIgnoredAndUnassigned(t *testing.T) {
	buttons := []Button{
		{DisplayName: "Ignored", LocalButtonID: 0, Ignored: true},
		{DisplayName: "Unassigned", LocalButtonID: -1},
	}
	m := Build(buttons, map[string]string{"Ignored": "A", "Unassigned": "B"}, nil, nil)
	if len(m.Keys) != 0 {
		t.Fatalf("expected no resolved keys, got %v", m.Keys)
	}
}

func TestBuildSkipsNoneAndReservedLabels(t *testing.T) {
	buttons := []Button{{DisplayName: "Cleared", LocalButtonID: 0}, {DisplayName: "Menu", LocalButtonID: 1}}
	overrides := map[string]string{"Cleared": LabelNone, "Menu": "Escape"}
	m := Build(buttons, nil, overrides, nil)
	if len(m.Keys) != 0 {
		t.Fatalf("expected NONE and reserved-key labels to resolve to nothing, got %v", m.Keys)
	}
}

func TestBuildModifierFlagRecorded(t *testing.T) {
	buttons := []Button{{DisplayName: "Turbo", LocalButtonID: 0}}
	m := Build(buttons, nil, map[string]string{"Turbo": "MENU+A"}, nil)
	if !m.KeyModifier[0] {
		t.Fatal("expected modifier flag recorded for MENU+A")
	}
}

func TestBuildShortcutsKeyedByIndex(t *testing.T) {
	shortcuts := DefaultShortcuts()
	overrides := map[string]string{"Save State": "F1"}
	m := BuildShortcuts(shortcuts, nil, overrides, nil)
	if m.Keys[0].String() != "F1" {
		t.Fatalf("expected Save State (index 0) bound to F1, got %v", m.Keys[0])
	}
}
