package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseBasic(t *testing.T) {
	s, err := Parse(strings.NewReader("volume = 80\n# comment\n\nbind A = SOUTH\n"))
	if err != nil {
		t.Fatal(err)
	}
	if v, ok := s.Get("volume"); !ok || v != "80" {
		t.Fatalf("volume = %q, %v", v, ok)
	}
	if binds := s.Bindings(); binds["A"] != "SOUTH" {
		t.Fatalf("bindings = %v", binds)
	}
}

func TestParseLockedKey(t *testing.T) {
	s, err := Parse(strings.NewReader("-thread_mode = inline\n"))
	if err != nil {
		t.Fatal(err)
	}
	if !s.IsLocked("thread_mode") {
		t.Fatal("expected thread_mode to be locked")
	}
	v, _ := s.Get("thread_mode")
	if v != "inline" {
		t.Fatalf("value = %q", v)
	}
}

func TestParseMissingEqualsSkipsLine(t *testing.T) {
	s, err := Parse(strings.NewReader("not a valid line"))
	if err != nil {
		t.Fatalf("expected malformed line to be skipped, got error %v", err)
	}
	if len(s.Keys()) != 0 {
		t.Fatalf("expected malformed line to add no key, got %v", s.Keys())
	}
}

func TestMergeHonorsLock(t *testing.T) {
	system := NewSet()
	system.values["thread_mode"] = Entry{Value: "inline", Locked: true}
	system.keys = append(system.keys, "thread_mode")

	user := NewSet()
	user.Set("thread_mode", "threaded")

	merged := system.Merge(user)
	v, _ := merged.Get("thread_mode")
	if v != "inline" {
		t.Fatalf("locked key was overridden: got %q", v)
	}
}

func TestMergeUnlockedOverrides(t *testing.T) {
	system := NewSet()
	system.Set("volume", "50")
	user := NewSet()
	user.Set("volume", "80")

	merged := system.Merge(user)
	v, _ := merged.Get("volume")
	if v != "80" {
		t.Fatalf("expected higher layer to win, got %q", v)
	}
}

func TestWriteRoundTrip(t *testing.T) {
	s := NewSet()
	s.Set("volume", "80")
	s.SetBinding("A", "MENU+SOUTH")

	var buf bytes.Buffer
	if err := s.Write(&buf); err != nil {
		t.Fatal(err)
	}
	reparsed, err := Parse(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if v, _ := reparsed.Get("volume"); v != "80" {
		t.Fatalf("volume round trip = %q", v)
	}
	if reparsed.Bindings()["A"] != "MENU+SOUTH" {
		t.Fatalf("binding round trip = %v", reparsed.Bindings())
	}
}

func TestLoadMissingFilesYieldEmptyLayers(t *testing.T) {
	dir := t.TempDir()
	l, err := Load(Paths{
		SystemPath:     filepath.Join(dir, "system.cfg"),
		PakDefaultPath: filepath.Join(dir, "pak.cfg"),
		GlobalUserPath: filepath.Join(dir, "minarch.cfg"),
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(l.Merged.Keys()) != 0 {
		t.Fatalf("expected empty merged set, got %v", l.Merged.Keys())
	}
}

func TestLoadPrefersPerGameFileWhenPresent(t *testing.T) {
	dir := t.TempDir()
	romPath := filepath.Join(dir, "game.zip")
	global := filepath.Join(dir, "minarch.cfg")
	perGame := filepath.Join(dir, "game.cfg")

	os.WriteFile(global, []byte("volume = 50\n"), 0o644)
	os.WriteFile(perGame, []byte("volume = 90\n"), 0o644)

	l, err := Load(Paths{GlobalUserPath: global, RomPath: romPath})
	if err != nil {
		t.Fatal(err)
	}
	if !l.IsPerGame() {
		t.Fatal("expected per-game layer to be selected")
	}
	if v, _ := l.Merged.Get("volume"); v != "90" {
		t.Fatalf("volume = %q, expected per-game value", v)
	}
}

func TestSaveChangesWritesUserLayer(t *testing.T) {
	dir := t.TempDir()
	global := filepath.Join(dir, "minarch.cfg")
	l, err := Load(Paths{GlobalUserPath: global})
	if err != nil {
		t.Fatal(err)
	}
	changes := NewSet()
	changes.Set("volume", "70")
	if err := l.SaveChanges(changes); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(global)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "volume = 70") {
		t.Fatalf("unexpected contents: %s", data)
	}
}

func TestRestoreDefaultsDeletesUserFile(t *testing.T) {
	dir := t.TempDir()
	global := filepath.Join(dir, "minarch.cfg")
	os.WriteFile(global, []byte("volume = 70\n"), 0o644)

	l, err := Load(Paths{GlobalUserPath: global})
	if err != nil {
		t.Fatal(err)
	}
	restored, err := l.RestoreDefaults(Paths{GlobalUserPath: global})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(global); !os.IsNotExist(err) {
		t.Fatal("expected user file to be deleted")
	}
	if len(restored.Merged.Keys()) != 0 {
		t.Fatalf("expected empty merged set after restore, got %v", restored.Merged.Keys())
	}
}
