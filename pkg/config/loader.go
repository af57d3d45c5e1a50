package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/mcpack/pkg/errors"
	"github.com/arthur-debert/mcpack/pkg/logging"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// ProjectFile is the config file looked up in the input directory
const ProjectFile = ".mcpack.toml"

// EnvPrefix prefixes every environment override
const EnvPrefix = "MCPACK_"

// Sources carries the layers that come from the command line
type Sources struct {
	// File is an explicit config file; it must exist
	File string
	// Flags holds explicitly set flags keyed by config key
	Flags map[string]interface{}
}

// Load builds the effective configuration. Layers, lowest first: embedded
// defaults, the config file, MCPACK_* environment variables, flags.
func Load(src Sources) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to load defaults")
	}

	// 2. Config file. Its location may depend on input, which env and
	// flags can set, so those are consulted first.
	path, explicit := src.File, src.File != ""
	if !explicit {
		path = filepath.Join(inputHint(k, src), ProjectFile)
	}
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load config file").
				WithDetail("path", path)
		}
		logger.Debug().Str("path", path).Msg("Loaded config file")
	} else if explicit {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "config file not found").
			WithDetail("path", path)
	}

	// 3. Environment
	if err := k.Load(envProvider(), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment")
	}

	// 4. Flags
	if len(src.Flags) > 0 {
		if err := k.Load(confmap.Provider(src.Flags, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load flags")
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// envProvider maps MCPACK_SECTION_KEY to section.key. Only the first
// underscore separates, so MCPACK_REPORT_GITHUB_OUTPUT_ENV becomes
// report.github_output_env.
func envProvider() *env.Env {
	return env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.Replace(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".", 1)
	})
}

func inputHint(defaults *koanf.Koanf, src Sources) string {
	if v, ok := src.Flags["input"].(string); ok && v != "" {
		return v
	}
	if v := os.Getenv(EnvPrefix + "INPUT"); v != "" {
		return v
	}
	return defaults.String("input")
}
