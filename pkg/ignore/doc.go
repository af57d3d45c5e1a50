// Package ignore provides the path predicate that decides which files of a
// project never reach a staged tree or an archive.
//
// A Ruleset is built once per run from the project's .gitignore, a fixed set
// of generated-artifact exclusions and any extra patterns from
// configuration. It is never mutated afterwards and is handed explicitly to
// every stage that filters paths, so staging, discovery and compilation all
// agree on what is excluded.
//
// Patterns follow .gitignore conventions on top of the moby/patternmatcher
// engine:
//
//   - a pattern without an inner slash matches at any depth ("*.py")
//   - a leading slash anchors a pattern to the root ("/dist")
//   - a trailing slash is accepted and dropped ("__pycache__/")
//   - "!" re-includes a path excluded by an earlier pattern
//   - a path matches when it or any of its parent directories matches
package ignore
