package compiler

import (
	"encoding/json"
	"io"

	"github.com/arthur-debert/mcpack/pkg/errors"
	"github.com/klauspost/compress/zip"
)

// ReadListing returns the content listing stored in an archive
func ReadListing(r io.ReaderAt, size int64) (Listing, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return Listing{}, errors.Wrap(err, errors.ErrFileAccess, "not a pack archive")
	}

	for _, f := range zr.File {
		if f.Name != ListingFile {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return Listing{}, errors.Wrap(err, errors.ErrFileAccess, "cannot open content listing")
		}
		defer func() { _ = rc.Close() }()

		var listing Listing
		if err := json.NewDecoder(rc).Decode(&listing); err != nil {
			return Listing{}, errors.Wrap(err, errors.ErrManifestParse, "content listing is not valid JSON")
		}
		return listing, nil
	}

	return Listing{}, errors.New(errors.ErrFileAccess, "archive has no content listing").
		WithDetail("entry", ListingFile)
}

// Paths returns the listed paths in order
func (l Listing) Paths() []string {
	paths := make([]string, len(l.Content))
	for i, e := range l.Content {
		paths[i] = e.Path
	}
	return paths
}
