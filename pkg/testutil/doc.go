// Package testutil provides utilities for testing mcpack components.
//
// Key components:
//   - NewTestFS / WriteTree: in-memory project trees on afero
//   - Manifest: manifest.json bodies in the comment-tolerant dialect
//   - CaptureLogs: swaps the global zerolog logger for a buffer
//   - ReadArchive: opens a produced artifact and returns its entries in order
//
// Usage guidelines:
//   - prefer the in-memory filesystem; only hook and CLI tests need disk
//   - all test data is defined inline, not in external files
package testutil
