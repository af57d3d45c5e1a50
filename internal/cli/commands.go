package cli

import (
	"fmt"
	"os"

	"github.com/arthur-debert/mcpack/internal/version"
	"github.com/arthur-debert/mcpack/pkg/config"
	"github.com/arthur-debert/mcpack/pkg/filesystem"
	"github.com/arthur-debert/mcpack/pkg/logging"
	"github.com/arthur-debert/mcpack/pkg/pipeline"
	"github.com/arthur-debert/mcpack/pkg/report"
	"github.com/muesli/termenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// flagKeys maps root flags to the config keys they override
var flagKeys = map[string]string{
	"input":          "input",
	"output":         "output.dir",
	"build-script":   "build.script",
	"output-pattern": "output.pattern",
	"debug":          "log.debug",
	"verbose":        "log.verbosity",
	"ignore-file":    "ignore.file",
	"exclude":        "ignore.extra",
	"format":         "report.format",
}

type options struct {
	configFile    string
	input         string
	output        string
	buildScript   string
	outputPattern string
	debug         bool
	verbosity     int
	ignoreFile    string
	exclude       []string
	format        string
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var (
		opts options
		cfg  *config.Config
	)

	rootCmd := &cobra.Command{
		Use:   "mcpack [flags] [-- hook-args...]",
		Short: MsgRootShort,
		Long:  MsgRootLong,
		Args:  cobra.ArbitraryArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load(config.Sources{
				File:  opts.configFile,
				Flags: changedFlags(cmd),
			})
			if err != nil {
				return err
			}
			cfg = loaded

			logging.SetupLogger(cfg.Verbosity())
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd, cfg, args)
		},
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	flags := rootCmd.Flags()
	flags.StringVarP(&opts.input, "input", "i", ".", MsgFlagInput)
	flags.StringVarP(&opts.output, "output", "o", "build", MsgFlagOutput)
	flags.StringVarP(&opts.buildScript, "build-script", "s", "none", MsgFlagBuildScript)
	flags.StringVarP(&opts.outputPattern, "output-pattern", "p", "DIRNAME-VERSION.mcpack", MsgFlagOutputPattern)
	flags.StringVar(&opts.ignoreFile, "ignore-file", "", MsgFlagIgnoreFile)
	flags.StringArrayVar(&opts.exclude, "exclude", nil, MsgFlagExclude)

	persistent := rootCmd.PersistentFlags()
	persistent.StringVar(&opts.configFile, "config", "", MsgFlagConfig)
	persistent.BoolVarP(&opts.debug, "debug", "d", false, MsgFlagDebug)
	persistent.CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	persistent.StringVar(&opts.format, "format", "text", MsgFlagFormat)

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newConfigCmd(func() *config.Config { return cfg }))
	rootCmd.AddCommand(newInspectCmd(func() *config.Config { return cfg }))

	return rootCmd
}

// changedFlags returns the explicitly set flags keyed by config key
func changedFlags(cmd *cobra.Command) map[string]interface{} {
	out := make(map[string]interface{})
	for name, key := range flagKeys {
		f := cmd.Flags().Lookup(name)
		if f == nil || !f.Changed {
			continue
		}
		var value interface{}
		var err error
		switch f.Value.Type() {
		case "stringArray":
			value, err = cmd.Flags().GetStringArray(name)
		case "bool":
			value, err = cmd.Flags().GetBool(name)
		case "count":
			value, err = cmd.Flags().GetCount(name)
		default:
			value = f.Value.String()
		}
		if err == nil {
			out[key] = value
		}
	}
	return out
}

func runBuild(cmd *cobra.Command, cfg *config.Config, args []string) error {
	format, err := report.ParseFormat(cfg.Report.Format)
	if err != nil {
		return err
	}

	hookArgs := args
	if len(hookArgs) == 0 {
		hookArgs = cfg.Build.Args
	}

	fs := filesystem.NewOS()
	result, err := pipeline.Run(cmd.Context(), fs, pipeline.Options{
		Input:       cfg.Input,
		Output:      cfg.Output.Dir,
		Hook:        cfg.Build.Script,
		HookArgs:    hookArgs,
		Template:    cfg.Output.Pattern,
		IgnoreFile:  cfg.Ignore.File,
		ExtraIgnore: cfg.Ignore.Extra,
	})
	if err != nil {
		return err
	}

	if err := report.Publish(report.FromEnv(fs, cfg.Report.GithubOutputEnv), result.Outputs()); err != nil {
		return err
	}
	return report.Render(cmd.OutOrStdout(), format, profileFor(cmd), result)
}

// profileFor styles output only when it goes straight to a terminal
func profileFor(cmd *cobra.Command) termenv.Profile {
	if f, ok := cmd.OutOrStdout().(*os.File); ok {
		return report.ColorProfile(f)
	}
	return termenv.Ascii
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Long:  `Print detailed version information including commit hash and build date`,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "mcpack version %s\n", version.Version)
			if version.Commit != "" {
				_, _ = fmt.Fprintf(out, "Commit: %s\n", version.Commit)
			}
			if version.Date != "" {
				_, _ = fmt.Fprintf(out, "Built:  %s\n", version.Date)
			}
		},
	}
}
