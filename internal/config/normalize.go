package config

import "strings"

func (c *Config) normalize() {
	c.Runtime.ExecutableName = strings.TrimSpace(c.Runtime.ExecutableName)
	if c.Runtime.ExecutableName == "" {
		c.Runtime.ExecutableName = defaultExecutableName
	}
	c.Runtime.MainClass = strings.TrimSpace(c.Runtime.MainClass)
	c.Runtime.VersionClass = strings.TrimSpace(c.Runtime.VersionClass)
	c.Runtime.LoggingConfigFile = strings.TrimSpace(c.Runtime.LoggingConfigFile)
	c.Runtime.ToolsLoggingConfigFile = strings.TrimSpace(c.Runtime.ToolsLoggingConfigFile)
	c.Runtime.EnvFile = strings.TrimSpace(c.Runtime.EnvFile)

	// The signature is matched verbatim; only surrounding whitespace is dropped.
	c.Probe.ConflictSignature = strings.TrimSpace(c.Probe.ConflictSignature)
	c.Probe.AffinityUtility = strings.TrimSpace(c.Probe.AffinityUtility)
	if c.Probe.AffinityUtility == "" {
		c.Probe.AffinityUtility = defaultAffinityUtility
	}

	c.PIDFile.Mode = strings.TrimSpace(c.PIDFile.Mode)
	if c.PIDFile.Mode == "" {
		c.PIDFile.Mode = "0644"
	}

	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
