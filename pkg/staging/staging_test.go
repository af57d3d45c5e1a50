package staging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/mcpack/pkg/errors"
	"github.com/arthur-debert/mcpack/pkg/ignore"
	"github.com/arthur-debert/mcpack/pkg/testutil"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultRules(t *testing.T, extra ...string) *ignore.Ruleset {
	t.Helper()
	rules, err := ignore.New(append(ignore.Builtin(), extra...)...)
	require.NoError(t, err)
	return rules
}

func TestStageCopiesFilteredTree(t *testing.T) {
	fsys := testutil.NewTestFS()
	testutil.WriteTree(t, fsys, "project", map[string]string{
		"build.py":                "print('hi')",
		"BP/manifest.json":        "{}",
		"BP/scripts/main.js":      "export {}",
		"BP/contents.json":        "{\"content\": []}",
		"RP/textures/stone.png":   "png",
		"RP/__pycache__/tool.pyc": "bytecode",
		"tools/__pycache__/x.pyc": "bytecode",
		"tools/release.bat":       "@echo off",
		"notes/todo.txt":          "ship it",
		"art/source.psd":          "psd",
	})

	stats, err := Stage(fsys, defaultRules(t, "*.psd"), "project", "build/tmp")
	require.NoError(t, err)

	assert.Equal(t, []string{
		"BP/manifest.json",
		"BP/scripts/main.js",
		"RP/textures/stone.png",
		"notes/todo.txt",
	}, testutil.ListFiles(t, fsys, "build/tmp"))
	assert.Equal(t, 4, stats.Files)
	assert.Positive(t, stats.Skipped)
}

func TestStageBuildScriptNeverStaged(t *testing.T) {
	fsys := testutil.NewTestFS()
	testutil.WriteTree(t, fsys, "in", map[string]string{
		"build.py":    "x",
		"BP/build.py": "x",
	})

	_, err := Stage(fsys, defaultRules(t), "in", "out")
	require.NoError(t, err)

	exists, err := afero.Exists(fsys, "out/build.py")
	require.NoError(t, err)
	assert.False(t, exists)
	exists, err = afero.Exists(fsys, "out/BP/build.py")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestStageSkipsOutputInsideInput(t *testing.T) {
	fsys := testutil.NewTestFS()
	testutil.WriteTree(t, fsys, "proj", map[string]string{
		"BP/manifest.json":        "{}",
		"build/libs/old.mcpack":   "zip",
		"build/tmp/BP/stale.json": "{}",
	})

	out := filepath.Join("proj", "build")
	_, err := Stage(fsys, defaultRules(t), "proj", filepath.Join(out, "tmp2"), out)
	require.NoError(t, err)

	assert.Equal(t, []string{"BP/manifest.json"}, testutil.ListFiles(t, fsys, filepath.Join(out, "tmp2")))
}

func TestStageCreatesEmptyDirectories(t *testing.T) {
	fsys := testutil.NewTestFS()
	require.NoError(t, fsys.MkdirAll("in/RP/empty", 0755))

	stats, err := Stage(fsys, ignore.Empty(), "in", "out")
	require.NoError(t, err)

	assert.True(t, isDir(t, fsys, "out/RP/empty"))
	assert.Equal(t, 2, stats.Dirs)
}

func TestStageMissingInputFails(t *testing.T) {
	_, err := Stage(testutil.NewTestFS(), ignore.Empty(), "missing", "out")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrStageCopy))
}

func isDir(t *testing.T, fsys afero.Fs, path string) bool {
	t.Helper()
	ok, err := afero.IsDir(fsys, path)
	require.NoError(t, err)
	return ok
}

func TestStageSymlinks(t *testing.T) {
	logs := testutil.CaptureLogs(t)

	root := t.TempDir()
	input := filepath.Join(root, "in")
	stage := filepath.Join(root, "stage")
	osFs := afero.NewOsFs()
	testutil.WriteTree(t, osFs, input, map[string]string{
		"shared/a.json": `{"a": 1}`,
		"rp/real.txt":   "real",
	})
	require.NoError(t, os.Symlink(filepath.Join(input, "rp", "real.txt"), filepath.Join(input, "rp", "link.txt")))
	require.NoError(t, os.Symlink(filepath.Join(input, "shared"), filepath.Join(input, "rp", "shared")))

	stats, err := Stage(osFs, ignore.Empty(), input, stage)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(stage, "rp", "link.txt"))
	require.NoError(t, err)
	assert.Equal(t, "real", string(data))

	_, err = os.Lstat(filepath.Join(stage, "rp", "shared"))
	assert.True(t, os.IsNotExist(err))
	assert.Equal(t, 1, stats.Skipped)
	assert.Equal(t, 1, logs.Count(zerolog.WarnLevel))
}
