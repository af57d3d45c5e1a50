// Package filesystem provides the filesystem handles used by mcpack.
//
// Every pipeline stage works against an afero.Fs so the staging, discovery
// and compilation code can run on the real disk or on an in-memory tree in
// tests. This package holds the constructors and the few helpers that are
// shared between stages.
package filesystem
