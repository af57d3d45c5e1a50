package filesystem

import (
	"github.com/spf13/afero"
)

// NewOS returns the host filesystem
func NewOS() afero.Fs {
	return afero.NewOsFs()
}

// IsOS reports whether fsys is the host filesystem. Build hooks run real
// processes and can only see files that exist on disk.
func IsOS(fsys afero.Fs) bool {
	_, ok := fsys.(*afero.OsFs)
	return ok
}
