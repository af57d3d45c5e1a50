package config

import (
	"strings"

	"github.com/arthur-debert/mcpack/pkg/errors"
	toml "github.com/pelletier/go-toml/v2"
)

// Config is the effective configuration of a run
type Config struct {
	Input  string `koanf:"input" toml:"input"`
	Output Output `koanf:"output" toml:"output"`
	Build  Build  `koanf:"build" toml:"build"`
	Ignore Ignore `koanf:"ignore" toml:"ignore"`
	Log    Log    `koanf:"log" toml:"log"`
	Report Report `koanf:"report" toml:"report"`
}

type Output struct {
	Dir     string `koanf:"dir" toml:"dir"`
	Pattern string `koanf:"pattern" toml:"pattern"`
}

type Build struct {
	Script string   `koanf:"script" toml:"script"`
	Args   []string `koanf:"args" toml:"args"`
}

type Ignore struct {
	File  string   `koanf:"file" toml:"file"`
	Extra []string `koanf:"extra" toml:"extra"`
}

type Log struct {
	Debug     bool `koanf:"debug" toml:"debug"`
	Verbosity int  `koanf:"verbosity" toml:"verbosity"`
}

type Report struct {
	Format          string `koanf:"format" toml:"format"`
	GithubOutputEnv string `koanf:"github_output_env" toml:"github_output_env"`
}

// Validate checks values no later stage can recover from
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Input) == "" {
		return errors.New(errors.ErrConfigParse, "input must not be empty").WithDetail("key", "input")
	}
	if strings.TrimSpace(c.Output.Dir) == "" {
		return errors.New(errors.ErrConfigParse, "output directory must not be empty").WithDetail("key", "output.dir")
	}
	if strings.TrimSpace(c.Output.Pattern) == "" {
		return errors.New(errors.ErrConfigParse, "output pattern must not be empty").WithDetail("key", "output.pattern")
	}
	if c.Log.Verbosity < 0 {
		return errors.New(errors.ErrConfigParse, "verbosity must not be negative").WithDetail("key", "log.verbosity")
	}
	return nil
}

// Verbosity returns the effective log verbosity; debug implies at least 1
func (c *Config) Verbosity() int {
	if c.Log.Debug && c.Log.Verbosity < 1 {
		return 1
	}
	return c.Log.Verbosity
}

// TOML renders the configuration as a TOML document
func (c *Config) TOML() ([]byte, error) {
	data, err := toml.Marshal(c)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "cannot encode configuration")
	}
	return data, nil
}
