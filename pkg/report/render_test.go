package report

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/arthur-debert/mcpack/pkg/errors"
	"github.com/arthur-debert/mcpack/pkg/packs"
	"github.com/arthur-debert/mcpack/pkg/pipeline"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleResult() *pipeline.Result {
	return &pipeline.Result{
		Packs: []packs.Manifest{
			{UUID: "u1", Name: "Demo BP", Version: "1.0.0", Type: packs.TypeBehavior, Abbr: packs.AbbrBehavior},
			{UUID: "u2", Name: "World", Version: "0.1"},
		},
		Artifacts: []string{"build/libs/bp-1.0.0.mcpack", "build/libs/world-0.1.mcpack"},
		Checksums: []string{"sha256:aa", "sha256:bb"},
	}
}

func TestRenderText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, FormatText, termenv.Ascii, sampleResult()))

	out := buf.String()
	assert.Contains(t, out, "Compiled 2 packs")
	assert.Contains(t, out, "Demo BP 1.0.0 behavior (BP) build/libs/bp-1.0.0.mcpack")
	assert.Contains(t, out, "World 0.1 unknown build/libs/world-0.1.mcpack")
	assert.NotContains(t, out, "\x1b[")
}

func TestRenderTextWithoutPacks(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, FormatText, termenv.Ascii, &pipeline.Result{}))
	assert.Equal(t, "No packs found\n", buf.String())
}

func TestRenderJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, FormatJSON, termenv.Ascii, sampleResult()))

	var decoded map[string][]map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded["packs"], 2)
	assert.Equal(t, "BP", decoded["packs"][0]["abbr"])
	assert.Equal(t, "build/libs/bp-1.0.0.mcpack", decoded["packs"][0]["artifact"])
	assert.Equal(t, "sha256:aa", decoded["packs"][0]["checksum"])
	assert.Nil(t, decoded["packs"][1]["type"])
}

func TestRenderYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, FormatYAML, termenv.Ascii, sampleResult()))

	var decoded map[string][]map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded["packs"], 2)
	assert.Equal(t, "behavior", decoded["packs"][0]["type"])
	assert.Equal(t, "u2", decoded["packs"][1]["uuid"])
	assert.Nil(t, decoded["packs"][1]["abbr"])
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input string
		want  Format
	}{
		{"", FormatText},
		{"text", FormatText},
		{"JSON", FormatJSON},
		{"yml", FormatYAML},
		{"yaml", FormatYAML},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.input)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	_, err := ParseFormat("xml")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}
