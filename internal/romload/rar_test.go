package romload

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExtractFromRARFileNotFound(t *testing.T) {
	if _, _, err := extractFromRAR("/nonexistent/path/test.rar", testExtensions); err == nil {
		t.Error("expected error for nonexistent file")
	}
}

func TestExtractFromRARCorruptedArchive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corrupt.rar")
	content := append(append([]byte(nil), magicRAR...), make([]byte, 100)...)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := extractFromRAR(path, testExtensions); err == nil {
		t.Error("expected error for corrupted rar file")
	}
}

func TestDetectFormatRAR(t *testing.T) {
	if got := detectFormat(magicRAR, "file.dat", testExtensions); got != formatRAR {
		t.Errorf("magic detection failed, got format %d", got)
	}
	if got := detectFormat([]byte{}, "file.rar", testExtensions); got != formatRAR {
		t.Errorf("extension detection failed, got format %d", got)
	}
}
