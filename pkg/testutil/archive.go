package testutil

import (
	"bytes"
	"io"
	"testing"

	"github.com/klauspost/compress/zip"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// ArchiveEntry is one file read back from a produced artifact
type ArchiveEntry struct {
	Name string
	Data []byte
}

// ReadArchive opens the zip at path and returns its entries in archive order
func ReadArchive(t *testing.T, fsys afero.Fs, path string) []ArchiveEntry {
	t.Helper()

	raw, err := afero.ReadFile(fsys, path)
	require.NoError(t, err)

	zr, err := zip.NewReader(bytes.NewReader(raw), int64(len(raw)))
	require.NoError(t, err)

	entries := make([]ArchiveEntry, 0, len(zr.File))
	for _, f := range zr.File {
		rc, err := f.Open()
		require.NoError(t, err)
		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		require.NoError(t, rc.Close())
		entries = append(entries, ArchiveEntry{Name: f.Name, Data: data})
	}
	return entries
}

// EntryNames returns the names of entries in order
func EntryNames(entries []ArchiveEntry) []string {
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names
}
