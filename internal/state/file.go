// Package state reads and atomically replaces the on-disk state files
// used by tt.
package state

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// File is a single state file replaced wholesale on every write.
type File struct {
	path string
}

// NewFile returns a File for the given path.
func NewFile(path string) *File {
	return &File{path: path}
}

// Path returns the location of the file.
func (f *File) Path() string {
	return f.path
}

// Read returns the file contents. A missing file reads as nil.
func (f *File) Read() ([]byte, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read state file: %w", err)
	}
	return data, nil
}

// Write replaces the file with data via a temp file in the same directory.
// It reports whether the file changed; identical content is left untouched.
func (f *File) Write(data []byte) (bool, error) {
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return false, fmt.Errorf("create state dir: %w", err)
	}

	if existing, err := os.ReadFile(f.path); err == nil {
		if bytes.Equal(existing, data) {
			return false, nil
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return false, fmt.Errorf("read state file: %w", err)
	}

	tmpFile, err := os.CreateTemp(dir, filepath.Base(f.path)+".tmp")
	if err != nil {
		return false, fmt.Errorf("create temp state file: %w", err)
	}
	name := tmpFile.Name()
	_, err = tmpFile.Write(data)
	if err1 := tmpFile.Close(); err1 != nil && err == nil {
		err = err1
	}
	if err != nil {
		os.Remove(name)
		return false, fmt.Errorf("write temp state file: %w", err)
	}

	if err := os.Rename(name, f.path); err != nil {
		os.Remove(name)
		return false, fmt.Errorf("rename state file: %w", err)
	}

	return true, nil
}
