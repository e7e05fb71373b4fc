package config

const (
	defaultConfigPath             = "~/.config/cassandra-launcher/config.toml"
	defaultExecutableName         = "java"
	defaultMainClass              = "org.apache.cassandra.service.CassandraDaemon"
	defaultVersionClass           = "org.apache.cassandra.tools.GetVersion"
	defaultLoggingConfigFile      = "logback.xml"
	defaultToolsLoggingConfigFile = "logback-tools.xml"
	defaultEnvFile                = "cassandra-env.env"
	defaultProbeTimeoutSeconds    = 5
	defaultAffinityUtility        = "numactl"
	defaultPIDFileMode            = 0o644
	defaultLogFormat              = "console"
	defaultLogLevel               = "warn"

	// DefaultConflictSignature is the text the JVM management agent prints
	// when its JMX port is already bound by another process.
	DefaultConflictSignature = "Error: Exception thrown by the agent : java.lang.NullPointerException"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Runtime: Runtime{
			ExecutableName:         defaultExecutableName,
			MainClass:              defaultMainClass,
			VersionClass:           defaultVersionClass,
			LoggingConfigFile:      defaultLoggingConfigFile,
			ToolsLoggingConfigFile: defaultToolsLoggingConfigFile,
			EnvFile:                defaultEnvFile,
		},
		Probe: Probe{
			TimeoutSeconds:    defaultProbeTimeoutSeconds,
			ConflictSignature: DefaultConflictSignature,
			AffinityEnabled:   true,
			AffinityUtility:   defaultAffinityUtility,
		},
		PIDFile: PIDFile{
			Mode: "0644",
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
