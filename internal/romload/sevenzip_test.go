package romload

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExtractFrom7zFileNotFound(t *testing.T) {
	if _, _, err := extractFrom7z("/nonexistent/path/test.7z", testExtensions); err == nil {
		t.Error("expected error for nonexistent file")
	}
}

func TestExtractFrom7zCorruptedArchive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corrupt.7z")
	content := append(append([]byte(nil), magic7z...), make([]byte, 100)...)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := extractFrom7z(path, testExtensions); err == nil {
		t.Error("expected error for corrupted 7z file")
	}
}

func TestDetectFormat7z(t *testing.T) {
	if got := detectFormat(magic7z, "file.dat", testExtensions); got != format7z {
		t.Errorf("magic detection failed, got format %d", got)
	}
	if got := detectFormat([]byte{}, "file.7z", testExtensions); got != format7z {
		t.Errorf("extension detection failed, got format %d", got)
	}
}

func TestLoad7zInvalidArchiveFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.7z")
	content := append(append([]byte(nil), magic7z...), []byte("invalid")...)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := Load(path, testExtensions); err == nil {
		t.Error("expected error loading invalid 7z file")
	}
}
