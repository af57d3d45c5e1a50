// Package staging materializes the filtered working copy of a project that
// every later stage of the pipeline operates on.
package staging

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/mcpack/pkg/errors"
	"github.com/arthur-debert/mcpack/pkg/filesystem"
	"github.com/arthur-debert/mcpack/pkg/ignore"
	"github.com/arthur-debert/mcpack/pkg/logging"
	"github.com/spf13/afero"
)

// Stats summarizes a staging copy
type Stats struct {
	Files   int
	Dirs    int
	Skipped int
}

// Stage copies the tree rooted at inputDir into stagingDir, leaving out
// every entry matched by rules. An ignored directory is skipped together
// with its subtree. Paths listed in exclude (typically the output root when
// it lives inside the input tree) are skipped as well.
//
// stagingDir must not exist or be empty. Any filesystem error aborts the
// copy; whatever was written so far is left in place.
func Stage(fsys afero.Fs, rules *ignore.Ruleset, inputDir, stagingDir string, exclude ...string) (Stats, error) {
	logger := logging.GetLogger("staging")
	done := logging.LogOperationStart(logger, "stage")
	defer done()

	var stats Stats
	excluded := make(map[string]bool, len(exclude)+1)
	excluded[absPath(stagingDir)] = true
	for _, p := range exclude {
		excluded[absPath(p)] = true
	}

	err := afero.Walk(fsys, inputDir, func(path string, info os.FileInfo, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}

		rel, err := filepath.Rel(inputDir, path)
		if err != nil {
			return err
		}

		if rel == "." {
			return fsys.MkdirAll(stagingDir, 0755)
		}

		if info.IsDir() && excluded[absPath(path)] {
			logger.Debug().Str("path", rel).Msg("Skipping output directory")
			return filepath.SkipDir
		}

		if rules.Matches(rel) {
			stats.Skipped++
			logger.Trace().Str("path", rel).Msg("Ignored")
			if info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		dst := filepath.Join(stagingDir, rel)

		if info.Mode()&os.ModeSymlink != 0 {
			target, err := fsys.Stat(path)
			if err != nil {
				return err
			}
			if target.IsDir() {
				stats.Skipped++
				logger.Warn().Str("path", rel).Msg("Symlinked directory is not followed")
				return nil
			}
			info = target
		}

		if info.IsDir() {
			stats.Dirs++
			return fsys.MkdirAll(dst, 0755)
		}

		stats.Files++
		return filesystem.CopyFile(fsys, path, dst, info.Mode())
	})
	if err != nil {
		return stats, errors.Wrap(err, errors.ErrStageCopy, "failed to stage input tree").
			WithDetail("input", inputDir).
			WithDetail("staging", stagingDir)
	}

	logger.Info().
		Int("files", stats.Files).
		Int("dirs", stats.Dirs).
		Int("skipped", stats.Skipped).
		Str("staging", stagingDir).
		Msg("Staged input tree")

	return stats, nil
}

func absPath(p string) string {
	abs, err := filepath.Abs(p)
	if err != nil {
		return filepath.Clean(p)
	}
	return abs
}
