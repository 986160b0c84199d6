// Package fileutil provides shared file operation helpers.
package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
)

// AtomicFile writes to a temporary file next to its destination and renames it
// into place on Commit. Readers never observe a partially written output.
type AtomicFile struct {
	*os.File

	path    string
	tmpName string
}

// CreateAtomic creates a temporary file in the directory of path.
// Caller must defer CleanupOnError.
func CreateAtomic(path string) (*AtomicFile, error) {
	tmpFile, err := os.CreateTemp(filepath.Dir(path), ".tmp-*")
	if err != nil {
		return nil, fmt.Errorf("creating temporary file: %w", err)
	}

	return &AtomicFile{File: tmpFile, path: path, tmpName: tmpFile.Name()}, nil
}

// Commit sets perm on the temporary file, closes it and renames it to the destination.
func (a *AtomicFile) Commit(perm os.FileMode) error {
	if err := os.Chmod(a.tmpName, perm); err != nil {
		return fmt.Errorf("setting file permissions: %w", err)
	}

	if err := a.Close(); err != nil {
		return fmt.Errorf("closing temporary file: %w", err)
	}

	if err := os.Rename(a.tmpName, a.path); err != nil {
		return fmt.Errorf("renaming output file: %w", err)
	}

	return nil
}

// CleanupOnError closes the temp file and removes it if the write failed.
func (a *AtomicFile) CleanupOnError(errp *error) {
	a.Close() //nolint:errcheck,gosec // best-effort cleanup

	if *errp != nil {
		os.Remove(a.tmpName) //nolint:errcheck,gosec // best-effort cleanup
	}
}

// Size returns the size of the committed destination file.
func (a *AtomicFile) Size() (int64, error) {
	info, err := os.Stat(a.path)
	if err != nil {
		return 0, fmt.Errorf("stat output %q: %w", a.path, err)
	}

	return info.Size(), nil
}
