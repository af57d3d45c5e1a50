// TEST TYPE: Integration Test
// DEPENDENCIES: Real filesystem (t.TempDir), embedded shell interpreter
// PURPOSE: Test hook execution, argument forwarding and working directory handling

package hooks

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/mcpack/pkg/errors"
	"github.com/arthur-debert/mcpack/pkg/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeHook(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "build.sh")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func runHook(t *testing.T, body string, args ...string) (string, *bytes.Buffer, error) {
	t.Helper()
	stage := t.TempDir()
	var stdout bytes.Buffer
	err := NewShell(writeHook(t, body)).Run(context.Background(), Env{
		Dir:    stage,
		Args:   args,
		Logger: zerolog.Nop(),
		Stdout: &stdout,
		Stderr: &stdout,
	})
	return stage, &stdout, err
}

func TestShellRunsBuildFunction(t *testing.T) {
	stage, _, err := runHook(t, `
build() {
	mkdir -p generated
	echo "done" > generated/out.txt
}
`)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(stage, "generated", "out.txt"))
	require.NoError(t, err)
	assert.Equal(t, "done\n", string(data))
}

func TestShellForwardsArguments(t *testing.T) {
	stage, _, err := runHook(t, `
FIRST="$1"
COUNT="$#"
build() {
	echo "$FIRST $COUNT" > args.txt
}
`, "-v", "release")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(stage, "args.txt"))
	require.NoError(t, err)
	assert.Equal(t, "-v 2\n", string(data))
}

func TestShellExportsStagingDir(t *testing.T) {
	stage, stdout, err := runHook(t, `build() { echo "$MCPACK_STAGING_DIR"; }`)
	require.NoError(t, err)
	assert.Equal(t, stage+"\n", stdout.String())
}

func TestShellWithoutBuildFunctionWarns(t *testing.T) {
	var buf bytes.Buffer
	stage := t.TempDir()

	err := NewShell(writeHook(t, `echo top > top.txt`)).Run(context.Background(), Env{
		Dir:    stage,
		Logger: zerolog.New(&buf),
	})
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(stage, "top.txt"))
	assert.Contains(t, buf.String(), `"level":"warn"`)
	assert.Contains(t, buf.String(), "no build function")
}

func TestShellFailure(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"build exits non-zero", "build() { exit 3; }"},
		{"top level exits non-zero", "exit 2"},
		{"command fails", "build() { false; }"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := runHook(t, tt.body)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrHookFailed))
		})
	}
}

func TestShellParseError(t *testing.T) {
	_, _, err := runHook(t, "build() {")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrHookParse))
}

func TestShellMissingScript(t *testing.T) {
	err := NewShell(filepath.Join(t.TempDir(), "missing.sh")).Run(context.Background(), Env{Dir: t.TempDir()})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrHookFailed))
}

func TestShellRestoresWorkingDirectory(t *testing.T) {
	before, err := os.Getwd()
	require.NoError(t, err)

	_, _, err = runHook(t, "build() { exit 1; }")
	require.Error(t, err)

	after, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestChdirRestores(t *testing.T) {
	stage := t.TempDir()
	var seen string
	step := StepFunc(func(ctx context.Context, env Env) error {
		restore, err := chdir(env.Dir)
		if err != nil {
			return err
		}
		defer restore()
		seen, err = os.Getwd()
		return err
	})
	before, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, step.Run(context.Background(), Env{Dir: stage}))
	after, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, before, after)

	want, err := filepath.EvalSymlinks(stage)
	require.NoError(t, err)
	got, err := filepath.EvalSymlinks(seen)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestShellLogBuiltin(t *testing.T) {
	logs := testutil.CaptureLogs(t)

	_, _, err := runHook(t, `
build() {
	log warn "textures" missing
	log info generated
	log ERROR "copy failed"
}
`)
	require.NoError(t, err)
	assert.Equal(t, []string{"textures missing"}, logs.Messages(zerolog.WarnLevel))
	assert.Equal(t, []string{"generated"}, logs.Messages(zerolog.InfoLevel))
	assert.Equal(t, []string{"copy failed"}, logs.Messages(zerolog.ErrorLevel))
}

func TestShellLogBuiltinWithoutLevel(t *testing.T) {
	logs := testutil.CaptureLogs(t)

	_, _, err := runHook(t, `
build() {
	log hello world
	log "textures generated"
	log shout loudly
	log 3 files copied
}
`)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"hello world",
		"textures generated",
		"shout loudly",
		"3 files copied",
	}, logs.Messages(zerolog.InfoLevel))
	assert.Empty(t, logs.Messages(zerolog.ErrorLevel))
}

func TestShellHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewShell(writeHook(t, "build() { true; }")).Run(ctx, Env{Dir: t.TempDir()})
	assert.Error(t, err)
}
