package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// PathEnv names the environment variable that points at an explicit config file.
const PathEnv = "CASSANDRA_LAUNCHER_CONFIG"

// Runtime describes the managed runtime invocation.
type Runtime struct {
	ExecutableName         string `toml:"executable_name"`
	MainClass              string `toml:"main_class"`
	VersionClass           string `toml:"version_class"`
	LoggingConfigFile      string `toml:"logging_config_file"`
	ToolsLoggingConfigFile string `toml:"tools_logging_config_file"`
	EnvFile                string `toml:"env_file"`
}

// Probe contains settings for the pre-flight helper invocations.
type Probe struct {
	TimeoutSeconds    int    `toml:"timeout_seconds"`
	ConflictSignature string `toml:"conflict_signature"`
	AffinityEnabled   bool   `toml:"affinity_enabled"`
	AffinityUtility   string `toml:"affinity_utility"`
}

// PIDFile contains settings for the background pid file.
type PIDFile struct {
	Mode string `toml:"mode"`
}

// Logging contains configuration for launcher log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates the launcher's own tunables.
//
// Configuration sections:
//   - Runtime: executable name, entry point classes, logging config property values
//   - Probe: conflict and affinity probe behaviour
//   - PIDFile: permissions of the written pid file
//   - Logging: launcher log format and level
//
// The classpath, configuration directory and JVM options are never read from
// here; they arrive through the process environment.
type Config struct {
	Runtime Runtime `toml:"runtime"`
	Probe   Probe   `toml:"probe"`
	PIDFile PIDFile `toml:"pidfile"`
	Logging Logging `toml:"logging"`
}

// Load locates, parses, and validates a configuration file. A missing file
// is not an error: defaults are returned and the exists flag is false.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config %s: %w", resolvedPath, err)
		}
	}

	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if strings.TrimSpace(path) == "" {
		path = strings.TrimSpace(os.Getenv(PathEnv))
	}
	if path == "" {
		path = defaultConfigPath
	}
	expanded, err := expandPath(path)
	if err != nil {
		return "", false, err
	}
	info, err := os.Stat(expanded)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return expanded, false, nil
		}
		return "", false, fmt.Errorf("stat config: %w", err)
	}
	if info.IsDir() {
		return "", false, fmt.Errorf("config path %s is a directory", expanded)
	}
	return expanded, true, nil
}

// ProbeTimeout returns the deadline applied to each helper invocation.
func (c *Config) ProbeTimeout() time.Duration {
	return time.Duration(c.Probe.TimeoutSeconds) * time.Second
}

// PIDFileMode returns the permission bits used when writing the pid file.
func (c *Config) PIDFileMode() os.FileMode {
	mode, err := parseMode(c.PIDFile.Mode)
	if err != nil {
		return defaultPIDFileMode
	}
	return mode
}

func parseMode(value string) (os.FileMode, error) {
	parsed, err := strconv.ParseUint(strings.TrimPrefix(strings.TrimSpace(value), "0o"), 8, 32)
	if err != nil {
		return 0, fmt.Errorf("parse file mode %q: %w", value, err)
	}
	if parsed > 0o777 {
		return 0, fmt.Errorf("file mode %q out of range", value)
	}
	return os.FileMode(parsed), nil
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	absolute, err := filepath.Abs(filepath.Clean(pathValue))
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", pathValue, err)
	}
	return absolute, nil
}
