package cli

// Command descriptions
const (
	MsgRootShort = "Package content packs into distributable archives"
	MsgRootLong  = `mcpack stages a project tree, optionally runs a build hook against the
staged copy, discovers every pack declared by a manifest.json and compiles
each one into a versioned archive with a generated contents.json listing.

Arguments after the flags (or after --) are passed to the build hook.
Flags meant for the hook must follow --, since unknown flags are rejected:

  mcpack -s build.sh -- --release`
	MsgVersionShort = "Print version information"
	MsgConfigShort  = "Print the effective configuration"
	MsgConfigLong   = "Print the configuration after layering defaults, the config file, MCPACK_* environment variables and flags, as TOML."
	MsgInspectShort = "List the contents of a pack archive"
	MsgInspectLong  = "Read the contents.json listing stored in a pack archive and print the paths it names."
)

// Flag descriptions
const (
	MsgFlagInput         = "Project directory to package"
	MsgFlagOutput        = "Output directory, recreated on every run"
	MsgFlagBuildScript   = `Build hook script, or "none"`
	MsgFlagOutputPattern = "Artifact name template (tokens: DIRNAME, UUID, NAME, VERSION, TYPE, ABBR)"
	MsgFlagIgnoreFile    = "Ignore file to read instead of <input>/.gitignore"
	MsgFlagExclude       = "Additional ignore pattern (repeatable)"
	MsgFlagConfig        = "Config file (default <input>/.mcpack.toml)"
	MsgFlagDebug         = "Enable debug logging"
	MsgFlagVerbose       = "Increase verbosity (-v DEBUG, -vv TRACE)"
	MsgFlagFormat        = "Summary format: text, json or yaml"
)
