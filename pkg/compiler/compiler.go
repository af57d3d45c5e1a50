// Package compiler turns a staged pack directory into a distributable
// archive with a generated content listing.
package compiler

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/arthur-debert/mcpack/pkg/errors"
	"github.com/arthur-debert/mcpack/pkg/filesystem"
	"github.com/arthur-debert/mcpack/pkg/ignore"
	"github.com/arthur-debert/mcpack/pkg/internal/hashutil"
	"github.com/arthur-debert/mcpack/pkg/jsonc"
	"github.com/arthur-debert/mcpack/pkg/logging"
	"github.com/arthur-debert/mcpack/pkg/packs"
	"github.com/klauspost/compress/zip"
	"github.com/spf13/afero"
)

// ListingFile is the name of the generated listing, always the last entry
const ListingFile = "contents.json"

// Epoch is the modification time stamped on every archive entry
var Epoch = time.Date(1980, time.January, 1, 0, 0, 0, 0, time.UTC)

// ContentEntry names one file in the listing
type ContentEntry struct {
	Path string `json:"path"`
}

// Listing is the body of contents.json
type Listing struct {
	Content []ContentEntry `json:"content"`
}

// Result describes a written artifact
type Result struct {
	Path     string
	Entries  []ContentEntry
	Bytes    int64
	Checksum string
	Duration time.Duration
}

// Compile archives every file of pack (found under root) into artifactPath.
//
// Files are added in lexical path order. Each one is checked against rules
// by its path relative to root, the same path staging and discovery match;
// a match is left out. Data files are rewritten in compact form when they parse and copied
// verbatim otherwise. The listing is appended last. An existing artifact is
// overwritten.
func Compile(fsys afero.Fs, rules *ignore.Ruleset, root string, pack packs.Pack, artifactPath string) (Result, error) {
	logger := logging.GetLogger("compiler").With().Str("pack", pack.Dir).Logger()
	start := time.Now()

	packDir := filepath.Join(root, pack.Dir)
	result := Result{Path: artifactPath, Entries: []ContentEntry{}}

	if err := fsys.MkdirAll(filepath.Dir(artifactPath), 0755); err != nil {
		return result, errors.Wrap(err, errors.ErrDirCreate, "cannot create artifact directory").
			WithDetail("path", filepath.Dir(artifactPath))
	}

	out, err := fsys.OpenFile(artifactPath, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return result, archiveError(err, artifactPath, "cannot create artifact")
	}
	zw := zip.NewWriter(out)

	walkErr := afero.Walk(fsys, packDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(packDir, path)
		if err != nil {
			return err
		}
		if rules.Matches(filepath.Join(pack.Dir, rel)) {
			logger.Trace().Str("file", rel).Msg("Excluded from archive")
			return nil
		}

		data, err := filesystem.ReadFile(fsys, path)
		if err != nil {
			return err
		}
		if jsonc.IsDataFile(path) {
			if compact, err := jsonc.Minimize(data); err == nil {
				data = compact
			} else {
				logger.Trace().Str("file", rel).Msg("Not valid JSON, archiving verbatim")
			}
		}

		name := filepath.ToSlash(rel)
		if err := writeEntry(zw, name, data); err != nil {
			return err
		}
		result.Entries = append(result.Entries, ContentEntry{Path: name})
		return nil
	})
	if walkErr != nil {
		_ = zw.Close()
		_ = out.Close()
		return result, archiveError(walkErr, artifactPath, "cannot write archive entry")
	}

	listing, err := json.Marshal(Listing{Content: result.Entries})
	if err != nil {
		_ = zw.Close()
		_ = out.Close()
		return result, errors.Wrap(err, errors.ErrInternal, "cannot encode content listing")
	}
	if err := writeEntry(zw, ListingFile, listing); err != nil {
		_ = zw.Close()
		_ = out.Close()
		return result, archiveError(err, artifactPath, "cannot write content listing")
	}

	if err := zw.Close(); err != nil {
		_ = out.Close()
		return result, archiveError(err, artifactPath, "cannot finalize archive")
	}
	if err := out.Close(); err != nil {
		return result, archiveError(err, artifactPath, "cannot close artifact")
	}

	if info, err := fsys.Stat(artifactPath); err == nil {
		result.Bytes = info.Size()
	}
	if result.Checksum, err = hashutil.FileChecksum(fsys, artifactPath); err != nil {
		return result, errors.Wrap(err, errors.ErrFileAccess, "cannot checksum artifact").
			WithDetail("artifact", artifactPath)
	}
	result.Duration = time.Since(start)

	logger.Info().
		Str("artifact", artifactPath).
		Int("files", len(result.Entries)).
		Int64("bytes", result.Bytes).
		Str("checksum", result.Checksum).
		Dur("duration", result.Duration).
		Msg("Compiled pack")

	return result, nil
}

func writeEntry(zw *zip.Writer, name string, data []byte) error {
	w, err := zw.CreateHeader(&zip.FileHeader{
		Name:     name,
		Method:   zip.Deflate,
		Modified: Epoch,
	})
	if err != nil {
		return err
	}
	_, err = io.Copy(w, bytes.NewReader(data))
	return err
}

func archiveError(err error, path, msg string) error {
	return errors.Wrap(err, errors.ErrArchiveWrite, msg).WithDetail("artifact", path)
}
