package hashutil

import (
	"crypto/sha256"
	"fmt"
	"io"

	"github.com/spf13/afero"
)

// Prefix tags checksums with their algorithm
const Prefix = "sha256:"

// FileChecksum calculates the SHA256 checksum of a file
func FileChecksum(fsys afero.Fs, path string) (string, error) {
	file, err := fsys.Open(path)
	if err != nil {
		return "", err
	}
	defer func() {
		_ = file.Close()
	}()

	hash := sha256.New()
	if _, err := io.Copy(hash, file); err != nil {
		return "", err
	}

	return fmt.Sprintf("%s%x", Prefix, hash.Sum(nil)), nil
}
