package packs

import (
	"path/filepath"
	"strings"
)

// LibsDir is the output subdirectory that receives artifacts
const LibsDir = "libs"

// DefaultTemplate is the artifact name template used when none is configured
const DefaultTemplate = "DIRNAME-VERSION.mcpack"

// RenderName substitutes the template tokens DIRNAME, UUID, VERSION, TYPE,
// NAME and ABBR with the pack's values. Tokens are upper-case literals and
// every occurrence is replaced in a single pass, so substituted values are
// never scanned again. TYPE and ABBR stay verbatim when the pack type is
// unknown; any other text is left untouched.
func RenderName(template string, pack Pack) string {
	m := pack.Manifest
	pairs := []string{
		"DIRNAME", pack.DirName(),
		"UUID", m.UUID,
		"VERSION", m.Version,
	}
	if m.Type.Known() {
		pairs = append(pairs, "TYPE", m.Type.String())
	}
	pairs = append(pairs, "NAME", m.Name)
	if m.Abbr != AbbrUnknown {
		pairs = append(pairs, "ABBR", string(m.Abbr))
	}
	return strings.NewReplacer(pairs...).Replace(template)
}

// ArtifactPath returns where the artifact for pack is written:
// <outputRoot>/libs/<rendered template>.
func ArtifactPath(outputRoot, template string, pack Pack) string {
	return filepath.Join(outputRoot, LibsDir, RenderName(template, pack))
}
