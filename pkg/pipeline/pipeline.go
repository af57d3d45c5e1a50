// Package pipeline sequences a packaging run: reset the output root, stage
// the input tree, run the build hook, discover packs and compile each one.
package pipeline

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/mcpack/pkg/compiler"
	"github.com/arthur-debert/mcpack/pkg/errors"
	"github.com/arthur-debert/mcpack/pkg/filesystem"
	"github.com/arthur-debert/mcpack/pkg/hooks"
	"github.com/arthur-debert/mcpack/pkg/ignore"
	"github.com/arthur-debert/mcpack/pkg/logging"
	"github.com/arthur-debert/mcpack/pkg/packs"
	"github.com/arthur-debert/mcpack/pkg/staging"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// StagingDirName is the output subdirectory holding the staged tree
const StagingDirName = "tmp"

// Options configures one run
type Options struct {
	Input  string
	Output string

	// Hook is a script path or hooks.Disabled. Step, when set, takes
	// precedence over Hook.
	Hook     string
	Step     hooks.Step
	HookArgs []string

	Template    string
	IgnoreFile  string
	ExtraIgnore []string
}

// Result is what a run produced. Packs, Artifacts and Checksums are
// parallel slices in discovery order.
type Result struct {
	Packs      []packs.Manifest
	Artifacts  []string
	Checksums  []string
	StagingDir string
}

// Outputs returns the values published to CI
func (r *Result) Outputs() map[string]any {
	manifests := r.Packs
	if manifests == nil {
		manifests = []packs.Manifest{}
	}
	return map[string]any{"packs": manifests}
}

// Run executes the pipeline. Every stage failure is fatal except manifest
// problems, which drop the affected pack with a warning. Finding no packs
// at all is not an error.
func Run(ctx context.Context, fsys afero.Fs, opts Options) (*Result, error) {
	logger := logging.GetLogger("pipeline")
	done := logging.LogOperationStart(logger, "run")
	defer done()

	if err := validate(fsys, &opts); err != nil {
		return nil, err
	}

	stagingDir := filepath.Join(opts.Output, StagingDirName)
	libsDir := filepath.Join(opts.Output, packs.LibsDir)
	result := &Result{
		Packs:      []packs.Manifest{},
		Artifacts:  []string{},
		Checksums:  []string{},
		StagingDir: stagingDir,
	}

	if err := filesystem.ResetDir(fsys, opts.Output); err != nil {
		return nil, errors.Wrap(err, errors.ErrDirCreate, "cannot reset output directory").
			WithDetail("path", opts.Output)
	}
	if err := fsys.MkdirAll(libsDir, 0755); err != nil {
		return nil, errors.Wrap(err, errors.ErrDirCreate, "cannot create artifact directory").
			WithDetail("path", libsDir)
	}

	ignoreFile := opts.IgnoreFile
	if ignoreFile == "" {
		ignoreFile = filepath.Join(opts.Input, ignore.DefaultFile)
	}
	rules, err := ignore.Build(fsys, ignoreFile, opts.ExtraIgnore)
	if err != nil {
		return nil, err
	}
	logger.Debug().Strs("patterns", rules.Patterns()).Msg("Ignore rules ready")

	if _, err := staging.Stage(fsys, rules, opts.Input, stagingDir, opts.Output); err != nil {
		return nil, err
	}

	if err := runHook(ctx, fsys, opts, stagingDir, logger); err != nil {
		return nil, err
	}

	found, err := packs.Discover(fsys, rules, stagingDir)
	if err != nil {
		return nil, err
	}
	if len(found) == 0 {
		logger.Warn().Str("staging", stagingDir).Msg("No packs found")
		return result, nil
	}

	for _, pack := range found {
		if err := ctx.Err(); err != nil {
			return nil, errors.Wrap(err, errors.ErrInternal, "run cancelled")
		}

		artifact := packs.ArtifactPath(opts.Output, opts.Template, pack)
		compiled, err := compiler.Compile(fsys, rules, stagingDir, pack, artifact)
		if err != nil {
			return nil, err
		}
		result.Packs = append(result.Packs, pack.Manifest)
		result.Artifacts = append(result.Artifacts, artifact)
		result.Checksums = append(result.Checksums, compiled.Checksum)
	}

	logger.Info().Int("packs", len(result.Packs)).Str("output", libsDir).Msg("Packaging complete")
	return result, nil
}

func validate(fsys afero.Fs, opts *Options) error {
	if opts.Input == "" {
		opts.Input = "."
	}
	if !filesystem.IsDir(fsys, opts.Input) {
		return errors.New(errors.ErrInvalidInput, "input is not a directory").
			WithDetail("input", opts.Input)
	}
	if strings.TrimSpace(opts.Output) == "" {
		return errors.New(errors.ErrInvalidInput, "output directory is required")
	}
	if strings.TrimSpace(opts.Template) == "" {
		return errors.New(errors.ErrInvalidInput, "output pattern is required")
	}

	in, out := absPath(opts.Input), absPath(opts.Output)
	if in == out || isWithin(in, out) {
		return errors.New(errors.ErrInvalidInput, "output directory would remove the input tree").
			WithDetail("input", opts.Input).
			WithDetail("output", opts.Output)
	}
	return nil
}

func runHook(ctx context.Context, fsys afero.Fs, opts Options, stagingDir string, logger zerolog.Logger) error {
	step := opts.Step
	if step == nil {
		var ok bool
		step, ok = hooks.Resolve(opts.Hook)
		if !ok {
			logger.Debug().Msg("No build hook")
			return nil
		}
	}

	if _, isShell := step.(*hooks.Shell); isShell && !filesystem.IsOS(fsys) {
		logger.Warn().Msg("Build hook runs on the host filesystem, not the configured one")
	}

	done := logging.LogOperationStart(logger, "hook")
	defer done()
	return step.Run(ctx, hooks.Env{
		Dir:    stagingDir,
		Args:   opts.HookArgs,
		Logger: logging.GetLogger("hooks"),
	})
}

func absPath(p string) string {
	abs, err := filepath.Abs(p)
	if err != nil {
		return filepath.Clean(p)
	}
	return abs
}

// isWithin reports whether path lies strictly inside dir
func isWithin(path, dir string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel != "." && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
