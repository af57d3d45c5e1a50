package packs

import (
	"path/filepath"
	"sort"

	"github.com/arthur-debert/mcpack/pkg/errors"
	"github.com/arthur-debert/mcpack/pkg/filesystem"
	"github.com/arthur-debert/mcpack/pkg/ignore"
	"github.com/arthur-debert/mcpack/pkg/logging"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/afero"
)

// Walk finds every manifest under root, skipping paths matched by rules,
// and calls fn for each pack whose manifest parses. Packs are visited in
// lexical order of their directory. A manifest that fails to parse is
// logged as a warning and skipped. Walk stops at the first error returned
// by fn.
func Walk(fsys afero.Fs, rules *ignore.Ruleset, root string, fn func(Pack) error) error {
	logger := logging.GetLogger("packs.discovery")
	logger.Trace().Str("root", root).Msg("Searching for pack manifests")

	if !filesystem.IsDir(fsys, root) {
		return errors.New(errors.ErrFileAccess, "pack root is not a directory").
			WithDetail("path", root)
	}

	rootFS := afero.NewIOFS(afero.NewBasePathFs(fsys, root))
	matches, err := doublestar.Glob(rootFS, "**/"+ManifestFile,
		doublestar.WithFilesOnly(),
		doublestar.WithFailOnIOErrors())
	if err != nil {
		return errors.Wrap(err, errors.ErrFileAccess, "cannot search for pack manifests").
			WithDetail("path", root)
	}
	sort.Strings(matches)

	for _, match := range matches {
		if rules.Matches(match) {
			logger.Trace().Str("manifest", match).Msg("Skipping ignored manifest")
			continue
		}

		rel := filepath.FromSlash(match)
		packDir := filepath.Dir(rel)

		data, err := filesystem.ReadFile(fsys, filepath.Join(root, rel))
		if err != nil {
			logger.Warn().Err(err).Str("pack", packDir).Msg("Failed to read pack manifest, skipping")
			continue
		}

		manifest, err := ParseManifest(data)
		if err != nil {
			logger.Warn().Err(err).Str("pack", packDir).Msg("Failed to load pack manifest, skipping")
			continue
		}

		logger.Info().
			Str("pack", packDir).
			Str("name", manifest.Name).
			Str("version", manifest.Version).
			Str("type", manifest.Type.String()).
			Msg("Found pack")

		if err := fn(Pack{Dir: packDir, Manifest: manifest}); err != nil {
			return err
		}
	}

	return nil
}

// Discover collects every pack Walk finds
func Discover(fsys afero.Fs, rules *ignore.Ruleset, root string) ([]Pack, error) {
	var found []Pack
	err := Walk(fsys, rules, root, func(p Pack) error {
		found = append(found, p)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}
