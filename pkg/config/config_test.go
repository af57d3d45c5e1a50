package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerbosity(t *testing.T) {
	assert.Equal(t, 0, (&Config{}).Verbosity())
	assert.Equal(t, 1, (&Config{Log: Log{Debug: true}}).Verbosity())
	assert.Equal(t, 3, (&Config{Log: Log{Debug: true, Verbosity: 3}}).Verbosity())
}

func TestTOML(t *testing.T) {
	cfg := &Config{
		Input:  "src",
		Output: Output{Dir: "dist", Pattern: "NAME.zip"},
		Build:  Build{Script: "none"},
		Report: Report{Format: "text", GithubOutputEnv: "GITHUB_OUTPUT"},
	}
	data, err := cfg.TOML()
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, "[output]")
	assert.Contains(t, out, "src")
	assert.Contains(t, out, "NAME.zip")
	assert.Contains(t, out, "github_output_env")
}

func TestDefaultsContent(t *testing.T) {
	assert.Contains(t, DefaultsContent(), `pattern = "DIRNAME-VERSION.mcpack"`)
}
