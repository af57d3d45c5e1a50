// Package jsonc handles the comment-tolerant JSON dialect used by pack
// manifests and data files: standard JSON plus // and /* */ comments and
// trailing commas.
package jsonc

import (
	"path/filepath"

	"github.com/tailscale/hujson"
)

// DataExtensions lists the file extensions treated as structured data
var DataExtensions = []string{".json", ".jsonc", ".json5"}

// Standardize strips comments and trailing commas so the result can be fed
// to encoding/json. Byte offsets are preserved.
func Standardize(data []byte) ([]byte, error) {
	return hujson.Standardize(data)
}

// Minimize returns the canonical compact form of data: no comments, no
// trailing commas, no insignificant whitespace. Member order and literal
// spelling are kept as written. On error the input is returned unchanged
// together with the error.
func Minimize(data []byte) ([]byte, error) {
	return hujson.Minimize(data)
}

// IsDataFile reports whether name carries one of DataExtensions
func IsDataFile(name string) bool {
	ext := filepath.Ext(name)
	for _, candidate := range DataExtensions {
		if ext == candidate {
			return true
		}
	}
	return false
}
