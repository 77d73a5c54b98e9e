package config

import (
	"os"
	"path/filepath"
	"strings"
)

// Layered holds the three merged configuration layers plus the identity
// of the writable user layer, so SaveChanges/RestoreDefaults know which
// file to touch without re-deriving paths.
type Layered struct {
	Merged *Set

	systemPath     string
	pakDefaultPath string
	userPath       string
	perGame        bool
}

// Paths resolves every file a Layered config may read or write.
// SystemPath is device-wide and fixed; PakDefaultPath sits beside the
// loaded core module; the user layer is GlobalUserPath (minarch.cfg)
// unless a per-game <rom>.cfg exists beside RomPath, which then takes
// precedence.
type Paths struct {
	SystemPath     string
	PakDefaultPath string
	GlobalUserPath string
	RomPath        string
}

func perGamePath(romPath string) string {
	ext := filepath.Ext(romPath)
	return strings.TrimSuffix(romPath, ext) + ".cfg"
}

// Load reads and merges all three layers. Missing files are treated as
// empty layers, not errors; a present file with malformed lines skips
// those lines rather than failing the whole load.
func Load(p Paths) (*Layered, error) {
	system, err := loadOrEmpty(p.SystemPath)
	if err != nil {
		return nil, err
	}
	pakDefault, err := loadOrEmpty(p.PakDefaultPath)
	if err != nil {
		return nil, err
	}

	userPath := p.GlobalUserPath
	perGame := false
	if p.RomPath != "" {
		candidate := perGamePath(p.RomPath)
		if _, statErr := os.Stat(candidate); statErr == nil {
			userPath = candidate
			perGame = true
		}
	}
	user, err := loadOrEmpty(userPath)
	if err != nil {
		return nil, err
	}

	merged := system.Merge(pakDefault).Merge(user)

	return &Layered{
		Merged:         merged,
		systemPath:     p.SystemPath,
		pakDefaultPath: p.PakDefaultPath,
		userPath:       userPath,
		perGame:        perGame,
	}, nil
}

func loadOrEmpty(path string) (*Set, error) {
	if path == "" {
		return NewSet(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewSet(), nil
		}
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

// SaveChanges writes userOnly as given (the caller decides which values
// differ from the system+pak-default baseline) to the user layer file
// (global or per-game, whichever Load resolved), creating parent directories as
// needed. Writes atomically via a temp file + rename, the same pattern
// the teacher's storage.AtomicWriteJSON uses for config.json.
func (l *Layered) SaveChanges(userOnly *Set) error {
	if err := os.MkdirAll(filepath.Dir(l.userPath), 0o755); err != nil {
		return err
	}
	tmp := l.userPath + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}
	if err := userOnly.Write(f); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, l.userPath); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}

// RestoreDefaults deletes the resolved user layer file and reloads with
// per-game detection off: system, pak-default and the global user layer.
// When the deleted file was a per-game one, an existing global
// minarch.cfg still applies on top of the defaults.
func (l *Layered) RestoreDefaults(p Paths) (*Layered, error) {
	if err := os.Remove(l.userPath); err != nil && !os.IsNotExist(err) {
		return nil, err
	}
	p.RomPath = "" // force back to the global user layer
	return Load(Paths{SystemPath: p.SystemPath, PakDefaultPath: p.PakDefaultPath, GlobalUserPath: p.GlobalUserPath})
}

// IsPerGame reports whether the resolved user layer is a per-game file.
func (l *Layered) IsPerGame() bool { return l.perGame }

// UserPath returns the resolved user-layer file path.
func (l *Layered) UserPath() string { return l.userPath }
