package romload

import (
	"archive/zip"
	"fmt"
	"path/filepath"
)

const (
	zipFlagEncrypted      = 1 << 0
	zipFlagDataDescriptor = 1 << 3
)

// extractFromZIP extracts the first ROM entry from a ZIP archive,
// restricted to store (method 0) and deflate (method 8), rejecting
// encrypted entries (flag bit 0) and entries using a trailing data
// descriptor (flag bit 3) rather than silently mis-reading them.
func extractFromZIP(path string, extensions []string) ([]byte, string, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, "", fmt.Errorf("romload: open zip: %w", err)
	}
	defer r.Close()

	for _, f := range r.File {
		if f.FileInfo().IsDir() {
			continue
		}
		if !isROMFile(f.Name, extensions) {
			continue
		}
		if f.Flags&zipFlagEncrypted != 0 {
			return nil, "", fmt.Errorf("%w: %s", ErrEncryptedEntry, f.Name)
		}
		if f.Flags&zipFlagDataDescriptor != 0 {
			return nil, "", fmt.Errorf("%w: %s", ErrDataDescriptor, f.Name)
		}
		if f.Method != zip.Store && f.Method != zip.Deflate {
			return nil, "", fmt.Errorf("romload: unsupported zip compression method %d for %s", f.Method, f.Name)
		}

		rc, err := f.Open()
		if err != nil {
			return nil, "", fmt.Errorf("romload: open %s in archive: %w", f.Name, err)
		}
		defer rc.Close()

		data, err := limitedRead(rc)
		if err != nil {
			return nil, "", fmt.Errorf("romload: read %s: %w", f.Name, err)
		}
		return data, filepath.Base(f.Name), nil
	}

	return nil, "", ErrNoROMFile
}
