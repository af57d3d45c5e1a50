package filesystem

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// NewMemory returns an empty in-memory filesystem
func NewMemory() afero.Fs {
	return afero.NewMemMapFs()
}

// ReadFile reads name, refusing directories explicitly since MemMapFs
// happily returns an empty read for them.
func ReadFile(fsys afero.Fs, name string) ([]byte, error) {
	info, err := fsys.Stat(name)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, &fs.PathError{Op: "read", Path: name, Err: fs.ErrInvalid}
	}
	return afero.ReadFile(fsys, name)
}

// CopyFile copies src to dst with the given mode, creating parent
// directories as needed.
func CopyFile(fsys afero.Fs, src, dst string, mode fs.FileMode) error {
	in, err := fsys.Open(src)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	if err := fsys.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return err
	}

	out, err := fsys.OpenFile(dst, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, mode.Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}

// ResetDir deletes path with all its contents and creates it again empty
func ResetDir(fsys afero.Fs, path string) error {
	if err := fsys.RemoveAll(path); err != nil {
		return err
	}
	return fsys.MkdirAll(path, 0755)
}

// IsDir reports whether path exists and is a directory
func IsDir(fsys afero.Fs, path string) bool {
	ok, err := afero.IsDir(fsys, path)
	return err == nil && ok
}
