package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// FileSystem is the narrow set of file operations a Store needs.
type FileSystem interface {
	// Resolve maps a filename to an absolute path under the base directory.
	Resolve(filename string) (string, error)
	// Exists reports whether a regular file is present at path.
	Exists(path string) (bool, error)
	// ReadFile returns the full content at path.
	ReadFile(path string) ([]byte, error)
	// WriteFile replaces the content at path, creating it if needed.
	WriteFile(path string, data []byte) error
	// Remove deletes path; a missing file is not an error.
	Remove(path string) error
}

// DefaultFileMode is the permission OSFileSystem gives written files.
const DefaultFileMode os.FileMode = 0o600

// OSFileSystem is the FileSystem backed by the local disk.
type OSFileSystem struct {
	// BaseDir anchors relative filenames. Empty means the executable's directory.
	BaseDir string
	// Mode is applied to every written file. Zero means DefaultFileMode.
	Mode os.FileMode
}

func (f OSFileSystem) mode() os.FileMode {
	if f.Mode == 0 {
		return DefaultFileMode
	}
	return f.Mode.Perm()
}

// Resolve joins filename onto the base directory. Absolute filenames are
// returned cleaned and unchanged.
func (f OSFileSystem) Resolve(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		return filepath.Clean(filename), nil
	}
	base := f.BaseDir
	if base == "" {
		exe, err := os.Executable()
		if err != nil {
			return "", err
		}
		base = filepath.Dir(exe)
	}
	return filepath.Abs(filepath.Join(base, filename))
}

// Exists reports whether a regular file is present at path.
func (OSFileSystem) Exists(path string) (bool, error) {
	info, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if info.IsDir() {
		return false, fmt.Errorf("%s is a directory", path)
	}
	return true, nil
}

// ReadFile reads the whole file at path.
func (OSFileSystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// WriteFile stages data in a sibling temp file, flushes it and renames it
// over path, so readers see either the old content or the new, never a mix.
func (f OSFileSystem) WriteFile(path string, data []byte) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return err
	}
	if err = tmp.Chmod(f.mode()); err != nil {
		return err
	}
	if err = tmp.Sync(); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// Remove deletes path, ignoring a missing file.
func (OSFileSystem) Remove(path string) error {
	err := os.Remove(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

var _ FileSystem = OSFileSystem{}
