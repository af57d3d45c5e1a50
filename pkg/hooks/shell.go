package hooks

import (
	"bytes"
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/mcpack/pkg/errors"
	"github.com/arthur-debert/mcpack/pkg/logging"
	"github.com/rs/zerolog"
	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"
)

// BuildFunc is the function a script defines to perform its build
const BuildFunc = "build"

// LogBuiltin is the command scripts use to write to the pipeline log
const LogBuiltin = "log"

// Environment variables exported to scripts
const (
	EnvStagingDir = "MCPACK_STAGING_DIR"
	EnvHook       = "MCPACK_HOOK"
)

// Shell runs a shell script with the embedded interpreter
type Shell struct {
	Path string
}

// NewShell returns a Step for the script at path
func NewShell(path string) *Shell {
	return &Shell{Path: path}
}

// Run parses the script, runs its top level and then its build function
// with the process working directory set to env.Dir. The previous working
// directory is restored whatever the outcome.
func (s *Shell) Run(ctx context.Context, env Env) error {
	logger := env.Logger.With().Str("hook", s.Path).Logger()

	scriptPath, err := filepath.Abs(s.Path)
	if err != nil {
		return errors.Wrap(err, errors.ErrHookFailed, "cannot resolve hook path").
			WithDetail("hook", s.Path)
	}

	source, err := os.ReadFile(scriptPath)
	if err != nil {
		return errors.Wrap(err, errors.ErrHookFailed, "cannot read hook").
			WithDetail("hook", s.Path)
	}

	prog, err := syntax.NewParser().Parse(bytes.NewReader(source), scriptPath)
	if err != nil {
		return errors.Wrap(err, errors.ErrHookParse, "failed to parse hook").
			WithDetail("hook", s.Path)
	}

	dir, err := filepath.Abs(env.Dir)
	if err != nil {
		return errors.Wrap(err, errors.ErrHookFailed, "cannot resolve staging directory").
			WithDetail("dir", env.Dir)
	}
	env.Dir = dir

	restore, err := chdir(env.Dir)
	if err != nil {
		return errors.Wrap(err, errors.ErrHookFailed, "cannot enter staging directory").
			WithDetail("dir", env.Dir)
	}
	defer restore()

	runner, err := s.runner(env, scriptPath)
	if err != nil {
		return errors.Wrap(err, errors.ErrHookFailed, "failed to create interpreter").
			WithDetail("hook", s.Path)
	}

	logger.Debug().Str("dir", env.Dir).Strs("args", env.Args).Msg("Running hook")

	if err := runner.Run(ctx, prog); err != nil {
		return hookError(err, s.Path, "top level")
	}

	if _, ok := runner.Funcs[BuildFunc]; !ok {
		logger.Warn().Msg("Hook defines no build function")
		return nil
	}

	call := &syntax.CallExpr{Args: []*syntax.Word{{
		Parts: []syntax.WordPart{&syntax.Lit{Value: BuildFunc}},
	}}}
	if err := runner.Run(ctx, call); err != nil {
		return hookError(err, s.Path, BuildFunc)
	}

	logger.Debug().Msg("Hook finished")
	return nil
}

func (s *Shell) runner(env Env, scriptPath string) (*interp.Runner, error) {
	stdout, stderr := env.Stdout, env.Stderr
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	environ := append(os.Environ(),
		EnvStagingDir+"="+env.Dir,
		EnvHook+"="+scriptPath,
	)

	opts := []interp.RunnerOption{
		interp.Dir(env.Dir),
		interp.Env(expand.ListEnviron(environ...)),
		interp.StdIO(nil, stdout, stderr),
		interp.ExecHandlers(logHandler(logging.GetLogger(filepath.Base(scriptPath)))),
	}

	// "--" keeps arguments like "-v" from being read as shell options
	if len(env.Args) > 0 {
		opts = append(opts, interp.Params(append([]string{"--"}, env.Args...)...))
	}

	return interp.New(opts...)
}

// logHandler serves the log builtin: log [level] <message...>. When the
// first word is not a zerolog level name the whole line is logged at info.
func logHandler(logger zerolog.Logger) func(next interp.ExecHandlerFunc) interp.ExecHandlerFunc {
	return func(next interp.ExecHandlerFunc) interp.ExecHandlerFunc {
		return func(ctx context.Context, args []string) error {
			if len(args) == 0 || args[0] != LogBuiltin {
				return next(ctx, args)
			}

			level := zerolog.InfoLevel
			words := args[1:]
			if len(words) > 0 {
				if parsed, ok := levelName(words[0]); ok {
					level = parsed
					words = words[1:]
				}
			}

			logger.WithLevel(level).Msg(strings.Join(words, " "))
			return nil
		}
	}
}

// levelName accepts named levels only; zerolog.ParseLevel also takes
// numbers, which would swallow a message starting with one.
func levelName(word string) (zerolog.Level, bool) {
	name := strings.ToLower(word)
	parsed, err := zerolog.ParseLevel(name)
	if err != nil || parsed < zerolog.TraceLevel || parsed > zerolog.PanicLevel {
		return zerolog.NoLevel, false
	}
	return parsed, parsed.String() == name
}

func chdir(dir string) (func(), error) {
	prev, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	if err := os.Chdir(dir); err != nil {
		return nil, err
	}
	return func() {
		if err := os.Chdir(prev); err != nil {
			logger := logging.GetLogger("hooks")
			logger.Error().Err(err).Str("dir", prev).Msg("Failed to restore working directory")
		}
	}, nil
}

func hookError(err error, hook, phase string) error {
	var status interp.ExitStatus
	if stderrors.As(err, &status) {
		return errors.Wrap(err, errors.ErrHookFailed, fmt.Sprintf("hook %s exited with status %d", phase, status)).
			WithDetail("hook", hook).
			WithDetail("status", int(status))
	}
	return errors.Wrapf(err, errors.ErrHookFailed, "hook %s failed", phase).
		WithDetail("hook", hook)
}
