package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// appDataDirName names the per-user directory minarch's config and saves
// live under when a flag doesn't override the default, grounded in the
// teacher's storage.Init(dataDirName) convention.
const appDataDirName = "minarch"

// baseDir returns the platform app-data directory for appName, adapted
// from the teacher's storage.GetBaseDir(): macOS under Library/Application
// Support, Windows under %APPDATA%, everything else under XDG_DATA_HOME
// or ~/.local/share.
func baseDir(appName string) (string, error) {
	switch runtime.GOOS {
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("minarch: home directory: %w", err)
		}
		return filepath.Join(home, "Library", "Application Support", appName), nil
	case "windows":
		appData := os.Getenv("APPDATA")
		if appData == "" {
			return "", fmt.Errorf("minarch: APPDATA is not set")
		}
		return filepath.Join(appData, appName), nil
	default:
		if dataHome := os.Getenv("XDG_DATA_HOME"); dataHome != "" {
			return filepath.Join(dataHome, appName), nil
		}
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("minarch: home directory: %w", err)
		}
		return filepath.Join(home, ".local", "share", appName), nil
	}
}

// defaultConfigDir and defaultSaveDir fall back to subdirectories of
// baseDir when the corresponding flag is left empty. defaultSystemDir
// (BIOS files a core's GET_SYSTEM_DIRECTORY expects) defaults to the
// same config directory, since minarch has no separate notion of a
// shared system-wide BIOS store the way a multi-frontend MinUI install
// does.
func defaultConfigDir() (string, error) {
	dir, err := baseDir(appDataDirName)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config"), nil
}

func defaultSaveDir() (string, error) {
	dir, err := baseDir(appDataDirName)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "saves"), nil
}

func defaultSystemDir() (string, error) {
	return defaultConfigDir()
}
