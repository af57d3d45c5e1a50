package hooks

import (
	"context"
	"io"
	"strings"

	"github.com/rs/zerolog"
)

// Disabled is the hook value that turns the build step off
const Disabled = "none"

// Env is what a Step gets to work with
type Env struct {
	// Dir is the staging root the step operates on
	Dir string
	// Args are forwarded verbatim from the command line
	Args   []string
	Logger zerolog.Logger
	Stdout io.Writer
	Stderr io.Writer
}

// Step is a build step run against the staging tree before discovery
type Step interface {
	Run(ctx context.Context, env Env) error
}

// StepFunc adapts a function to Step
type StepFunc func(ctx context.Context, env Env) error

// Run calls f
func (f StepFunc) Run(ctx context.Context, env Env) error {
	return f(ctx, env)
}

// Resolve maps a configured hook value to a Step. Empty values and the
// Disabled sentinel (in any case) yield no step.
func Resolve(value string) (Step, bool) {
	value = strings.TrimSpace(value)
	if value == "" || strings.EqualFold(value, Disabled) {
		return nil, false
	}
	return NewShell(value), true
}
