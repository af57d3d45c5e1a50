package ignore

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/mcpack/pkg/errors"
	"github.com/moby/patternmatcher"
)

// Builtin returns the exclusions for derived files: build scripts, platform
// executables, interpreter caches and the generated content listing.
func Builtin() []string {
	return []string{"*.py", "*.bat", "__pycache__/", "contents.json"}
}

// Ruleset is an immutable, ordered set of ignore patterns
type Ruleset struct {
	patterns []string
	matcher  *patternmatcher.PatternMatcher
}

// New compiles patterns into a Ruleset. Blank lines and comments are
// skipped; an invalid glob is reported as ErrIgnorePattern.
func New(patterns ...string) (*Ruleset, error) {
	kept := make([]string, 0, len(patterns))
	normalized := make([]string, 0, len(patterns))
	for _, p := range patterns {
		p = strings.TrimSpace(p)
		if p == "" || strings.HasPrefix(p, "#") {
			continue
		}
		n, ok := normalize(p)
		if !ok {
			return nil, errors.Newf(errors.ErrIgnorePattern, "invalid ignore pattern %q", p)
		}
		kept = append(kept, p)
		normalized = append(normalized, n)
	}

	matcher, err := patternmatcher.New(normalized)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrIgnorePattern, "invalid ignore pattern").
			WithDetail("patterns", kept)
	}

	return &Ruleset{patterns: kept, matcher: matcher}, nil
}

// Empty returns a Ruleset that matches nothing
func Empty() *Ruleset {
	r, _ := New()
	return r
}

// normalize rewrites a gitignore-style pattern into patternmatcher syntax
func normalize(p string) (string, bool) {
	negate := strings.HasPrefix(p, "!")
	if negate {
		p = strings.TrimSpace(p[1:])
	}
	p = filepath.ToSlash(p)

	anchored := strings.HasPrefix(p, "/")
	p = strings.Trim(p, "/")
	if p == "" {
		return "", false
	}
	if !anchored && !strings.Contains(p, "/") && !strings.HasPrefix(p, "**") {
		p = "**/" + p
	}

	if negate {
		p = "!" + p
	}
	return p, true
}

// Matches reports whether the relative path, or one of its parent
// directories, is excluded.
func (r *Ruleset) Matches(path string) bool {
	if r == nil || r.matcher == nil {
		return false
	}
	path = filepath.ToSlash(filepath.Clean(path))
	path = strings.TrimPrefix(path, "./")
	path = strings.TrimPrefix(path, "/")
	if path == "." || path == "" {
		return false
	}

	matched, err := r.matcher.MatchesOrParentMatches(filepath.FromSlash(path))
	if err != nil {
		return false
	}
	return matched
}

// Patterns returns a copy of the patterns in evaluation order, as written
func (r *Ruleset) Patterns() []string {
	if r == nil {
		return nil
	}
	out := make([]string, len(r.patterns))
	copy(out, r.patterns)
	return out
}
