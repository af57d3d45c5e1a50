// Package config handles configuration management for mcpack.
// It layers the embedded defaults, a project TOML file, MCPACK_*
// environment variables and command-line flags.
package config
