package runtimeenv

import (
	"errors"
	"strings"
)

// Environment variable names read by FromLookup.
const (
	EnvRuntimeHome    = "JAVA_HOME"
	EnvClasspath      = "CLASSPATH"
	EnvConfDir        = "CASSANDRA_CONF"
	EnvRuntimeOptions = "JVM_OPTS"
	EnvExtraOptions   = "JVM_EXTRA_OPTS"
	EnvPlatform       = "OSTYPE"
)

var (
	// ErrMissingExecutable indicates no runtime executable could be found.
	ErrMissingExecutable = errors.New("unable to find java executable; check JAVA_HOME and PATH environment variables")
	// ErrMissingConfiguration indicates a required environment input is unset.
	ErrMissingConfiguration = errors.New("missing required configuration")
)

// EnvironmentConfig carries the process-wide inputs the resolver consumes.
// It is built once from the environment and passed explicitly.
type EnvironmentConfig struct {
	RuntimeHome    string
	Classpath      string
	ConfDir        string
	RuntimeOptions string
	Platform       string
}

// FromLookup builds an EnvironmentConfig using lookup (normally os.LookupEnv).
// When OSTYPE is unset the platform is detected from the running kernel; it
// stays empty where that needs uname, which the resolver then runs.
func FromLookup(lookup func(string) (string, bool)) EnvironmentConfig {
	get := func(key string) string {
		value, _ := lookup(key)
		return strings.TrimSpace(value)
	}
	cfg := EnvironmentConfig{
		RuntimeHome:    get(EnvRuntimeHome),
		Classpath:      get(EnvClasspath),
		ConfDir:        get(EnvConfDir),
		RuntimeOptions: joinOptions(get(EnvRuntimeOptions), get(EnvExtraOptions)),
		Platform:       get(EnvPlatform),
	}
	if cfg.Platform == "" {
		cfg.Platform = DetectPlatform()
	}
	return cfg
}

// Environment is the resolved runtime invocation context.
type Environment struct {
	Executable  string
	Classpath   string
	RuntimeArgs []string
	// AffinityWrapper is filled in by the affinity planner; empty means no wrapper.
	AffinityWrapper []string
}

func joinOptions(parts ...string) string {
	nonEmpty := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			nonEmpty = append(nonEmpty, part)
		}
	}
	return strings.Join(nonEmpty, " ")
}
