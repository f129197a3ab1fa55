// Package safefile provides hardened file operations.
package safefile

import (
	"errors"
	"os"
	"path/filepath"
)

// ErrNotRegularFile is returned when attempting to open a file that is not a
// regular file. This includes symlinks, FIFOs, devices, sockets, and
// directories.
var ErrNotRegularFile = errors.New("not a regular file")

// OpenRegular opens a file and verifies it is a regular file.
// This mitigates TOCTOU (time-of-check-time-of-use) race conditions where a
// file could be replaced with a symlink or special file between stat and
// open operations.
//
// Returns:
//   - (*os.File, os.FileInfo, nil) on success
//   - (nil, nil, error) on failure (file closed automatically)
//
// The caller must close the returned file when done.
func OpenRegular(path string) (*os.File, os.FileInfo, error) {
	// Lstat first to detect symlinks without following them.
	linkInfo, err := os.Lstat(path)
	if err != nil {
		return nil, nil, err
	}
	if !linkInfo.Mode().IsRegular() {
		return nil, nil, ErrNotRegularFile
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}

	// Stat the descriptor to catch the file being replaced between Lstat
	// and Open.
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	if !info.Mode().IsRegular() {
		f.Close()
		return nil, nil, ErrNotRegularFile
	}

	return f, info, nil
}

// WriteAtomic writes data to path via a temporary file in the same directory
// followed by a rename, so concurrent readers never observe a partial write.
func WriteAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	cleanup := func() {
		tmp.Close()
		os.Remove(tmpName)
	}

	if _, err := tmp.Write(data); err != nil {
		cleanup()
		return err
	}
	if err := tmp.Chmod(perm); err != nil {
		cleanup()
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}
