package report

import (
	"testing"

	"github.com/arthur-debert/mcpack/pkg/errors"
	"github.com/arthur-debert/mcpack/pkg/packs"
	"github.com/arthur-debert/mcpack/pkg/testutil"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGitHubOutputAppends(t *testing.T) {
	fs := testutil.NewTestFS()
	require.NoError(t, afero.WriteFile(fs, "/gh/output", []byte("existing=1\n"), 0644))

	sink := GitHubOutput(fs, "/gh/output")
	require.NoError(t, sink.Emit("packs", []packs.Manifest{
		{UUID: "u", Name: "Demo", Version: "1.0.0", Type: packs.TypeBehavior, Abbr: packs.AbbrBehavior},
		{UUID: "w", Name: "World", Version: "2"},
	}))

	data, err := afero.ReadFile(fs, "/gh/output")
	require.NoError(t, err)
	assert.Equal(t,
		"existing=1\n"+
			`packs=[{"uuid":"u","name":"Demo","version":"1.0.0","type":"behavior","abbr":"BP"},{"uuid":"w","name":"World","version":"2","type":null,"abbr":null}]`+"\n",
		string(data))
}

func TestGitHubOutputKeepsMarkupCharacters(t *testing.T) {
	fs := testutil.NewTestFS()

	sink := GitHubOutput(fs, "/gh/output")
	require.NoError(t, sink.Emit("packs", []packs.Manifest{
		{UUID: "u", Name: "Tom & Jerry <BP>", Version: "1"},
	}))

	data, err := afero.ReadFile(fs, "/gh/output")
	require.NoError(t, err)
	assert.Equal(t,
		`packs=[{"uuid":"u","name":"Tom & Jerry <BP>","version":"1","type":null,"abbr":null}]`+"\n",
		string(data))
}

func TestGitHubOutputWriteFailure(t *testing.T) {
	fs := afero.NewReadOnlyFs(testutil.NewTestFS())
	err := GitHubOutput(fs, "/gh/output").Emit("packs", []string{})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrReportWrite))
}

func TestFromEnv(t *testing.T) {
	fs := testutil.NewTestFS()

	t.Setenv("MCPACK_TEST_OUTPUT", "")
	assert.Equal(t, Nop(), FromEnv(fs, "MCPACK_TEST_OUTPUT"))

	t.Setenv("MCPACK_TEST_OUTPUT", "/ci/out")
	sink := FromEnv(fs, "MCPACK_TEST_OUTPUT")
	require.IsType(t, &FileSink{}, sink)
	require.NoError(t, sink.Emit("count", 2))

	data, err := afero.ReadFile(fs, "/ci/out")
	require.NoError(t, err)
	assert.Equal(t, "count=2\n", string(data))
}

func TestPublishOrdersKeys(t *testing.T) {
	fs := testutil.NewTestFS()
	sink := GitHubOutput(fs, "/out")

	require.NoError(t, Publish(sink, map[string]any{"b": "x", "a": []int{1}}))

	data, err := afero.ReadFile(fs, "/out")
	require.NoError(t, err)
	assert.Equal(t, "a=[1]\nb=\"x\"\n", string(data))
}
