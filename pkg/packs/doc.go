// Package packs provides discovery, manifest parsing and artifact naming for
// content packs.
//
// A pack is a directory holding a manifest.json that declares the pack's
// identity (uuid, name, version) and the modules it contains. This package
// handles:
//
//   - Manifest parsing in the comment-tolerant JSON dialect
//   - Pack type classification from the declared modules
//   - Discovery of every manifest inside a staged tree
//   - Rendering artifact file names from a template
//
// The package implements the read-only side of the pipeline; turning a
// discovered pack into an archive is the job of the compiler package.
package packs
