package packs

import (
	"encoding/json"
	"path/filepath"
)

// ManifestFile is the file name that marks a pack directory
const ManifestFile = "manifest.json"

// Type classifies a pack by the content modules it declares
type Type int

const (
	// TypeUnknown is a valid classification: the manifest declared no
	// recognized content module.
	TypeUnknown Type = iota
	TypeBehavior
	TypeResource
	TypeSkin
)

// Module kinds recognized in manifest module declarations
const (
	ModuleData      = "data"
	ModuleResources = "resources"
	ModuleSkinPack  = "skin_pack"
)

// TypeFromModule maps a manifest module kind to a pack type
func TypeFromModule(kind string) (Type, bool) {
	switch kind {
	case ModuleData:
		return TypeBehavior, true
	case ModuleResources:
		return TypeResource, true
	case ModuleSkinPack:
		return TypeSkin, true
	default:
		return TypeUnknown, false
	}
}

// String returns the name used in templates and reports
func (t Type) String() string {
	switch t {
	case TypeBehavior:
		return "behavior"
	case TypeResource:
		return "resource"
	case TypeSkin:
		return "skin"
	default:
		return "unknown"
	}
}

// Known reports whether t is anything but TypeUnknown
func (t Type) Known() bool {
	return t != TypeUnknown
}

// Abbreviation returns the two-letter code for t
func (t Type) Abbreviation() Abbreviation {
	switch t {
	case TypeBehavior:
		return AbbrBehavior
	case TypeResource:
		return AbbrResource
	case TypeSkin:
		return AbbrSkin
	default:
		return AbbrUnknown
	}
}

// MarshalJSON encodes unknown as null
func (t Type) MarshalJSON() ([]byte, error) {
	if !t.Known() {
		return []byte("null"), nil
	}
	return json.Marshal(t.String())
}

// MarshalYAML encodes unknown as null
func (t Type) MarshalYAML() (interface{}, error) {
	if !t.Known() {
		return nil, nil
	}
	return t.String(), nil
}

// Abbreviation is the short pack type code used in artifact names
type Abbreviation string

const (
	AbbrUnknown  Abbreviation = ""
	AbbrBehavior Abbreviation = "BP"
	AbbrResource Abbreviation = "RP"
	AbbrSkin     Abbreviation = "SP"
)

// MarshalJSON encodes unknown as null
func (a Abbreviation) MarshalJSON() ([]byte, error) {
	if a == AbbrUnknown {
		return []byte("null"), nil
	}
	return json.Marshal(string(a))
}

// MarshalYAML encodes unknown as null
func (a Abbreviation) MarshalYAML() (interface{}, error) {
	if a == AbbrUnknown {
		return nil, nil
	}
	return string(a), nil
}

// Manifest is the metadata extracted from one manifest file
type Manifest struct {
	UUID    string       `json:"uuid" yaml:"uuid"`
	Name    string       `json:"name" yaml:"name"`
	Version string       `json:"version" yaml:"version"`
	Type    Type         `json:"type" yaml:"type"`
	Abbr    Abbreviation `json:"abbr" yaml:"abbr"`
}

// Pack is a discovered pack: its directory relative to the staging root and
// its manifest. Dir is "." for a manifest at the root.
type Pack struct {
	Dir      string
	Manifest Manifest
}

// DirName returns the base name of the pack directory, empty for the root
func (p Pack) DirName() string {
	if p.Dir == "" || p.Dir == "." {
		return ""
	}
	return filepath.Base(p.Dir)
}
