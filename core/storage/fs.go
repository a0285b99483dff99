package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// FileAccessError reports a failed read or write on an input or output path.
type FileAccessError struct {
	Op   string
	Path string
	Err  error
}

func (e *FileAccessError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileAccessError) Unwrap() error {
	return e.Err
}

// IsNotExist reports whether err is a FileAccessError caused by a missing file.
func IsNotExist(err error) bool {
	var fae *FileAccessError
	return errors.As(err, &fae) && errors.Is(fae.Err, fs.ErrNotExist)
}

// NewFS creates the filesystem used for reading captures and writing reports.
func NewFS(cfg Config) (afero.Fs, error) {
	if cfg.Root == "" {
		return afero.NewOsFs(), nil
	}

	root, err := filepath.Abs(cfg.Root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve storage root: %w", err)
	}
	info, err := os.Stat(root)
	if err != nil {
		return nil, &FileAccessError{Op: "stat", Path: root, Err: err}
	}
	if !info.IsDir() {
		return nil, &FileAccessError{Op: "stat", Path: root, Err: fmt.Errorf("not a directory")}
	}

	return afero.NewBasePathFs(afero.NewOsFs(), root), nil
}

// ReadFile reads the whole file at path.
func ReadFile(fsys afero.Fs, path string) ([]byte, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, &FileAccessError{Op: "read", Path: path, Err: err}
	}
	return data, nil
}

// ReportPerm is the mode of files written by WriteFile.
const ReportPerm fs.FileMode = 0o644

// WriteFile replaces the file at path with data.
// The data is written to a temporary sibling first and renamed into place,
// so a failed write never leaves a truncated report behind.
func WriteFile(fsys afero.Fs, path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := afero.TempFile(fsys, dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return &FileAccessError{Op: "write", Path: path, Err: err}
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = fsys.Remove(tmpName)
		return &FileAccessError{Op: "write", Path: path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		_ = fsys.Remove(tmpName)
		return &FileAccessError{Op: "write", Path: path, Err: err}
	}
	// TempFile creates 0600 files
	if err := fsys.Chmod(tmpName, ReportPerm); err != nil {
		_ = fsys.Remove(tmpName)
		return &FileAccessError{Op: "write", Path: path, Err: err}
	}
	if err := fsys.Rename(tmpName, path); err != nil {
		_ = fsys.Remove(tmpName)
		return &FileAccessError{Op: "write", Path: path, Err: err}
	}
	return nil
}
