package ignore

import (
	"bufio"
	"bytes"
	"os"
	"strings"

	"github.com/arthur-debert/mcpack/pkg/errors"
	"github.com/arthur-debert/mcpack/pkg/logging"
	"github.com/spf13/afero"
)

// DefaultFile is the ignore file read from the input root
const DefaultFile = ".gitignore"

// Load reads a .gitignore-format file and returns its patterns in order,
// as written. A missing file yields no patterns and no error.
func Load(fsys afero.Fs, path string) ([]string, error) {
	logger := logging.GetLogger("ignore.loader")

	f, err := fsys.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Debug().Str("path", path).Msg("No ignore file")
			return nil, nil
		}
		return nil, errors.Wrap(err, errors.ErrFileAccess, "cannot open ignore file").
			WithDetail("path", path)
	}
	defer func() { _ = f.Close() }()

	patterns, err := readPatterns(f)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrFileAccess, "cannot read ignore file").
			WithDetail("path", path)
	}

	logger.Debug().Str("path", path).Int("count", len(patterns)).Msg("Loaded ignore file")
	return patterns, nil
}

// readPatterns keeps lines verbatim apart from surrounding whitespace; a
// leading slash must survive to anchor the pattern.
func readPatterns(f afero.File) ([]string, error) {
	var patterns []string
	scanner := bufio.NewScanner(f)
	first := true
	for scanner.Scan() {
		line := scanner.Bytes()
		if first {
			line = bytes.TrimPrefix(line, []byte{0xEF, 0xBB, 0xBF})
			first = false
		}
		p := strings.TrimSpace(string(line))
		if p == "" || strings.HasPrefix(p, "#") {
			continue
		}
		patterns = append(patterns, p)
	}
	return patterns, scanner.Err()
}

// Build assembles the run's Ruleset: patterns from ignoreFile (if any), then
// the built-in exclusions, then extra.
func Build(fsys afero.Fs, ignoreFile string, extra []string) (*Ruleset, error) {
	var patterns []string
	if ignoreFile != "" {
		loaded, err := Load(fsys, ignoreFile)
		if err != nil {
			return nil, err
		}
		patterns = append(patterns, loaded...)
	}
	patterns = append(patterns, Builtin()...)
	patterns = append(patterns, extra...)
	return New(patterns...)
}
