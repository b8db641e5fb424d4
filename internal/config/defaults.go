package config

const (
	defaultOutputDir         = "~/dumps"
	defaultStateDir          = "~/.local/share/discparams"
	defaultLogDir            = "~/.local/share/discparams/logs"
	defaultDICBinary         = "DiscImageCreator"
	defaultRedumperBinary    = "redumper"
	defaultTool              = "dic"
	defaultRunTimeout        = 4 * 60 * 60
	defaultDriveDevice       = "/dev/sr0"
	defaultDriveLetter       = "D:"
	defaultDriveSpeed        = 16
	defaultLogFormat         = "console"
	defaultLogLevel          = "info"
	defaultLogRetentionDays  = 30
	defaultRereadCount       = 20
	defaultDVDRereadCount    = 10
	defaultBDRereadCount     = 10
	defaultRedumperRetries   = 20
	defaultLeadinRetryCount  = 4
	maxDriveSpeed            = 72
	presetDatabaseFilename   = "presets.db"
	envDICBinary             = "DISCPARAMS_DIC_BINARY"
	envRedumperBinary        = "DISCPARAMS_REDUMPER_BINARY"
	defaultConfigPathLiteral = "~/.config/discparams/config.toml"
	projectConfigFilename    = "discparams.toml"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			OutputDir: defaultOutputDir,
			StateDir:  defaultStateDir,
			LogDir:    defaultLogDir,
		},
		Tools: Tools{
			DICBinary:      defaultDICBinary,
			RedumperBinary: defaultRedumperBinary,
			DefaultTool:    defaultTool,
			RunTimeout:     defaultRunTimeout,
		},
		Drive: Drive{
			Device: defaultDriveDevice,
			Letter: defaultDriveLetter,
			Speed:  defaultDriveSpeed,
		},
		DIC: DIC{
			RereadCount:    defaultRereadCount,
			DVDRereadCount: defaultDVDRereadCount,
			BDRereadCount:  defaultBDRereadCount,
		},
		Redumper: Redumper{
			EnableVerbose:    true,
			RereadCount:      defaultRedumperRetries,
			LeadinRetryCount: defaultLeadinRetryCount,
		},
		Logging: Logging{
			Format:        defaultLogFormat,
			Level:         defaultLogLevel,
			RetentionDays: defaultLogRetentionDays,
		},
	}
}
