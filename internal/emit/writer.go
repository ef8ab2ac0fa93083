package emit

import (
	"fmt"
	"os"
	"path/filepath"

	"docstub-generator/internal/docnode"
)

// On-disk conventions for generated stub packages.
const (
	// StubSuffix is the extension of generated stub files.
	StubSuffix = ".pyi"
	// MarkerName is the zero-byte sentinel marking a typed stub package.
	MarkerName = "py.typed"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Writer renders module trees and writes them to stub files.
type Writer struct{}

// NewWriter creates a stub file writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Write serializes the module tree to the destination path. The parent
// directory must already exist.
func (w *Writer) Write(m *docnode.Module, path string) error {
	if err := os.WriteFile(path, Render(m), filePerm); err != nil {
		return fmt.Errorf("writing stub %s: %w", path, err)
	}

	return nil
}

// EnsureDir creates the directory and any missing parents.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return fmt.Errorf("creating output directory %s: %w", dir, err)
	}

	return nil
}

// WriteMarker writes the zero-byte typed-stub marker into dir. Rewriting an
// existing marker is safe; the operation is idempotent.
func WriteMarker(dir string) error {
	path := filepath.Join(dir, MarkerName)

	if err := os.WriteFile(path, nil, filePerm); err != nil {
		return fmt.Errorf("writing marker %s: %w", path, err)
	}

	return nil
}
