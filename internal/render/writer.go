package render

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Writer materializes output files under one root directory.
type Writer struct {
	root string
}

// NewWriter creates a writer rooted at the given output directory.
func NewWriter(root string) *Writer {
	return &Writer{root: root}
}

// Root returns the output root path.
func (w *Writer) Root() string {
	return w.root
}

// WriteFile writes data to the given slash-relative path, creating parent
// directories as needed.
func (w *Writer) WriteFile(rel string, data []byte) error {
	full := filepath.Join(w.root, filepath.FromSlash(rel))

	err := os.MkdirAll(filepath.Dir(full), dirPerm)
	if err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	err = os.WriteFile(full, data, filePerm)
	if err != nil {
		return fmt.Errorf("writing file %s: %w", rel, err)
	}

	return nil
}

// CopyFile copies the source file to the given slash-relative path.
func (w *Writer) CopyFile(rel, srcPath string) error {
	src, err := os.Open(srcPath)
	if err != nil {
		return fmt.Errorf("opening asset %s: %w", srcPath, err)
	}
	defer src.Close()

	full := filepath.Join(w.root, filepath.FromSlash(rel))

	err = os.MkdirAll(filepath.Dir(full), dirPerm)
	if err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	dst, err := os.OpenFile(full, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, filePerm)
	if err != nil {
		return fmt.Errorf("creating asset %s: %w", rel, err)
	}

	_, err = io.Copy(dst, src)
	if err != nil {
		dst.Close()

		return fmt.Errorf("copying asset %s: %w", rel, err)
	}

	return dst.Close()
}

// Touch creates an empty file at the given slash-relative path.
func (w *Writer) Touch(rel string) error {
	return w.WriteFile(rel, nil)
}

// Clean removes the output root and recreates it empty.
func (w *Writer) Clean() error {
	err := os.RemoveAll(w.root)
	if err != nil {
		return fmt.Errorf("cleaning output directory: %w", err)
	}

	err = os.MkdirAll(w.root, dirPerm)
	if err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	return nil
}
