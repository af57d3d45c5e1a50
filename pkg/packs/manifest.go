package packs

import (
	"encoding/json"
	stderrors "errors"
	"strconv"
	"strings"

	"github.com/arthur-debert/mcpack/pkg/errors"
	"github.com/arthur-debert/mcpack/pkg/jsonc"
)

type rawManifest struct {
	Header *struct {
		UUID    *string `json:"uuid"`
		Name    *string `json:"name"`
		Version *[]int  `json:"version"`
	} `json:"header"`
	Modules *[]*struct {
		Type *string `json:"type"`
	} `json:"modules"`
}

// ParseManifest extracts pack metadata from a manifest body. It fails with
// ErrManifestParse when the body is not valid JSON-with-comments and with
// ErrManifestInvalid when a required key is missing or has the wrong type.
// No partial Manifest is ever returned.
func ParseManifest(data []byte) (Manifest, error) {
	std, err := jsonc.Standardize(data)
	if err != nil {
		return Manifest{}, errors.Wrap(err, errors.ErrManifestParse, "manifest is not valid JSON")
	}

	var raw rawManifest
	if err := json.Unmarshal(std, &raw); err != nil {
		var typeErr *json.UnmarshalTypeError
		if stderrors.As(err, &typeErr) {
			return Manifest{}, errors.Wrapf(err, errors.ErrManifestInvalid, "manifest key %s has the wrong type", typeErr.Field).
				WithDetail("key", typeErr.Field)
		}
		return Manifest{}, errors.Wrap(err, errors.ErrManifestParse, "manifest is not valid JSON")
	}

	if raw.Header == nil {
		return Manifest{}, missing("header")
	}
	if raw.Header.UUID == nil {
		return Manifest{}, missing("header.uuid")
	}
	if raw.Header.Name == nil {
		return Manifest{}, missing("header.name")
	}
	if raw.Header.Version == nil {
		return Manifest{}, missing("header.version")
	}
	if raw.Modules == nil {
		return Manifest{}, missing("modules")
	}

	version, err := joinVersion(*raw.Header.Version)
	if err != nil {
		return Manifest{}, err
	}

	kinds := make([]string, 0, len(*raw.Modules))
	for i, module := range *raw.Modules {
		if module == nil || module.Type == nil {
			return Manifest{}, missing("modules[" + strconv.Itoa(i) + "].type")
		}
		kinds = append(kinds, *module.Type)
	}

	packType := Classify(kinds)
	return Manifest{
		UUID:    *raw.Header.UUID,
		Name:    *raw.Header.Name,
		Version: version,
		Type:    packType,
		Abbr:    packType.Abbreviation(),
	}, nil
}

// Classify reduces an ordered list of module kinds to a pack type: the last
// recognized kind wins, and a list without any yields TypeUnknown.
func Classify(kinds []string) Type {
	result := TypeUnknown
	for _, kind := range kinds {
		if t, ok := TypeFromModule(kind); ok {
			result = t
		}
	}
	return result
}

func joinVersion(parts []int) (string, error) {
	strs := make([]string, len(parts))
	for i, p := range parts {
		if p < 0 {
			return "", errors.Newf(errors.ErrManifestInvalid, "header.version[%d] is negative", i).
				WithDetail("key", "header.version")
		}
		strs[i] = strconv.Itoa(p)
	}
	return strings.Join(strs, "."), nil
}

func missing(key string) error {
	return errors.Newf(errors.ErrManifestInvalid, "manifest is missing %s", key).
		WithDetail("key", key)
}
