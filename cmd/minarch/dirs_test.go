package main

import (
	"path/filepath"
	"runtime"
	"testing"
)

func TestBaseDirHonorsXDGDataHome(t *testing.T) {
	if runtime.GOOS == "darwin" || runtime.GOOS == "windows" {
		t.Skip("XDG_DATA_HOME only applies on the default branch")
	}
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg-data")
	dir, err := baseDir("minarch")
	if err != nil {
		t.Fatal(err)
	}
	want := filepath.Join("/tmp/xdg-data", "minarch")
	if dir != want {
		t.Fatalf("baseDir() = %q, want %q", dir, want)
	}
}

func TestDefaultDirsAreDistinctSubdirectories(t *testing.T) {
	if runtime.GOOS == "darwin" || runtime.GOOS == "windows" {
		t.Skip("XDG_DATA_HOME only applies on the default branch")
	}
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg-data")

	cfg, err := defaultConfigDir()
	if err != nil {
		t.Fatal(err)
	}
	saves, err := defaultSaveDir()
	if err != nil {
		t.Fatal(err)
	}
	sys, err := defaultSystemDir()
	if err != nil {
		t.Fatal(err)
	}
	if cfg == saves {
		t.Fatal("expected config and save directories to differ")
	}
	if sys != cfg {
		t.Fatalf("expected default system directory to match config directory, got %q vs %q", sys, cfg)
	}
}
