package savestate

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/user-none/minarch/internal/core"
)

// DiscSet is a multi-disc game detected by an M3U playlist: the playlist
// file is found by directory name matching the file stem. Grounded in
// original_source's menu.disc_paths/menu.total_discs scan of game.m3u_path.
type DiscSet struct {
	M3UPath string
	Paths   []string
	Current int
}

// DetectM3U looks for "<rom_dir>/<rom_dir_name>.m3u" next to romPath and,
// if present, parses it into a DiscSet with Current pointing at whichever
// listed path matches romPath. Returns ok=false (no error) when no M3U
// file names this ROM's directory -- a DiscSet is optional, not a
// load failure.
func DetectM3U(romPath string) (*DiscSet, bool, error) {
	dir := filepath.Dir(romPath)
	m3uPath := filepath.Join(dir, filepath.Base(dir)+".m3u")
	f, err := os.Open(m3uPath)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	defer f.Close()

	set := &DiscSet{M3UPath: m3uPath, Current: -1}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		discPath := line
		if !filepath.IsAbs(discPath) {
			discPath = filepath.Join(dir, discPath)
		}
		if _, err := os.Stat(discPath); err != nil {
			continue
		}
		if discPath == romPath {
			set.Current = len(set.Paths)
		}
		set.Paths = append(set.Paths, discPath)
	}
	if err := scanner.Err(); err != nil {
		return nil, false, err
	}
	return set, true, nil
}

// ChangeDisc moves the set to index by calling the disc-control
// interface's replace_image_index(0, ...) with the new path. The caller
// is responsible for
// unloading/reloading the core's game state around this call; ChangeDisc
// only updates the DiscSet's cursor and drives the disc-control vtable.
func (d *DiscSet) ChangeDisc(disc *core.DiscControlInterface, index int) error {
	if index < 0 || index >= len(d.Paths) {
		return fmt.Errorf("savestate: disc index %d out of range (%d discs)", index, len(d.Paths))
	}
	if disc == nil || disc.ReplaceImageIndex == nil {
		return fmt.Errorf("savestate: core has no disc-control interface")
	}
	if !disc.ReplaceImageIndex(0, d.Paths[index]) {
		return fmt.Errorf("savestate: replace_image_index failed for %s", d.Paths[index])
	}
	d.Current = index
	return nil
}

// NextDisc and PreviousDisc wrap-cycle the in-menu disc selector cursor
// without touching the core; the menu only calls ChangeDisc once the
// user confirms a selection.
func (d *DiscSet) NextDisc(cursor int) int {
	if len(d.Paths) == 0 {
		return cursor
	}
	return (cursor + 1) % len(d.Paths)
}

func (d *DiscSet) PreviousDisc(cursor int) int {
	if len(d.Paths) == 0 {
		return cursor
	}
	cursor--
	if cursor < 0 {
		cursor += len(d.Paths)
	}
	return cursor
}
