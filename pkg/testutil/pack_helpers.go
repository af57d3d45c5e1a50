package testutil

import (
	"fmt"
	"strings"
)

// Manifest returns a manifest.json body with comments and trailing commas,
// declaring one module per entry of moduleTypes.
func Manifest(uuid, name, version string, moduleTypes ...string) string {
	var modules []string
	for i, mt := range moduleTypes {
		modules = append(modules, fmt.Sprintf(`		{
			"type": %q,
			"uuid": "00000000-0000-0000-0000-%012d",
			"version": [1, 0, 0],
		},`, mt, i))
	}

	return fmt.Sprintf(`{
	// generated by testutil
	"format_version": 2,
	"header": {
		"name": %q,
		"uuid": %q,
		/* version is a list of integers */
		"version": [%s],
		"min_engine_version": [1, 20, 0],
	},
	"modules": [
%s
	],
}
`, name, uuid, version, strings.Join(modules, "\n"))
}
