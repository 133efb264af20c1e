package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
)

// compressedExt marks zstd-compressed export archives
const compressedExt = ".zst"

// WriteExportFile writes an export document to path. Paths ending in
// .zst are zstd-compressed, anything else is written as plain JSON.
func WriteExportFile(path, doc string) error {
	data := []byte(doc)
	if strings.HasSuffix(path, compressedExt) {
		enc, err := zstd.NewWriter(nil)
		if err != nil {
			return fmt.Errorf("failed to create compressor: %w", err)
		}
		data = enc.EncodeAll(data, nil)
		enc.Close()
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create export directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write export file: %w", err)
	}
	return nil
}

// ReadExportFile reads an export document from path, decompressing
// .zst archives transparently.
func ReadExportFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read export file: %w", err)
	}
	if strings.HasSuffix(path, compressedExt) {
		dec, err := zstd.NewReader(nil)
		if err != nil {
			return "", fmt.Errorf("failed to create decompressor: %w", err)
		}
		defer dec.Close()
		data, err = dec.DecodeAll(data, nil)
		if err != nil {
			return "", fmt.Errorf("failed to decompress export file: %w", err)
		}
	}
	return string(data), nil
}
