package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateRuntime(); err != nil {
		return err
	}
	if err := c.validateProbe(); err != nil {
		return err
	}
	if _, err := parseMode(c.PIDFile.Mode); err != nil {
		return fmt.Errorf("pidfile.mode: %w", err)
	}
	return c.validateLogging()
}

func (c *Config) validateRuntime() error {
	if c.Runtime.MainClass == "" {
		return errors.New("runtime.main_class must be set")
	}
	if c.Runtime.VersionClass == "" {
		return errors.New("runtime.version_class must be set")
	}
	return nil
}

func (c *Config) validateProbe() error {
	if c.Probe.TimeoutSeconds <= 0 {
		return errors.New("probe.timeout_seconds must be positive")
	}
	if c.Probe.ConflictSignature == "" {
		return errors.New("probe.conflict_signature must be set")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
