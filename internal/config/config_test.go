package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pelletier/go-toml/v2"

	"cassandra-launcher/internal/config"
)

func TestLoadWithoutFileReturnsDefaults(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Setenv(config.PathEnv, "")

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}
	want := filepath.Join(tempHome, ".config", "cassandra-launcher", "config.toml")
	if resolved != want {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, want)
	}
	if cfg.Runtime.MainClass != "org.apache.cassandra.service.CassandraDaemon" {
		t.Fatalf("unexpected main class %q", cfg.Runtime.MainClass)
	}
	if cfg.Probe.ConflictSignature != config.DefaultConflictSignature {
		t.Fatalf("unexpected conflict signature %q", cfg.Probe.ConflictSignature)
	}
	if !cfg.Probe.AffinityEnabled || cfg.Probe.AffinityUtility != "numactl" {
		t.Fatalf("expected numactl affinity enabled by default, got %+v", cfg.Probe)
	}
	if cfg.ProbeTimeout() != 5*time.Second {
		t.Fatalf("unexpected probe timeout %s", cfg.ProbeTimeout())
	}
	if cfg.PIDFileMode() != 0o644 {
		t.Fatalf("unexpected pid file mode %o", cfg.PIDFileMode())
	}
}

func TestLoadCustomPath(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "launcher.toml")

	type payload struct {
		Runtime struct {
			MainClass string `toml:"main_class"`
		} `toml:"runtime"`
		Probe struct {
			TimeoutSeconds  int    `toml:"timeout_seconds"`
			AffinityEnabled bool   `toml:"affinity_enabled"`
			AffinityUtility string `toml:"affinity_utility"`
		} `toml:"probe"`
		PIDFile struct {
			Mode string `toml:"mode"`
		} `toml:"pidfile"`
		Logging struct {
			Format string `toml:"format"`
		} `toml:"logging"`
	}
	custom := payload{}
	custom.Runtime.MainClass = "com.example.Daemon"
	custom.Probe.TimeoutSeconds = 2
	custom.Probe.AffinityEnabled = false
	custom.Probe.AffinityUtility = " "
	custom.PIDFile.Mode = "0600"
	custom.Logging.Format = "JSON"
	data, err := toml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal custom config: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatalf("write custom config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != configPath {
		t.Fatalf("expected %q to be loaded, got %q (exists=%v)", configPath, resolved, exists)
	}
	if cfg.Runtime.MainClass != "com.example.Daemon" {
		t.Fatalf("expected main class override, got %q", cfg.Runtime.MainClass)
	}
	if cfg.Runtime.VersionClass == "" {
		t.Fatal("expected untouched keys to keep defaults")
	}
	if cfg.ProbeTimeout() != 2*time.Second {
		t.Fatalf("unexpected probe timeout %s", cfg.ProbeTimeout())
	}
	if cfg.Probe.AffinityEnabled {
		t.Fatal("expected affinity disabled")
	}
	if cfg.Probe.AffinityUtility != "numactl" {
		t.Fatalf("expected blank utility to fall back to numactl, got %q", cfg.Probe.AffinityUtility)
	}
	if cfg.PIDFileMode() != 0o600 {
		t.Fatalf("unexpected pid file mode %o", cfg.PIDFileMode())
	}
	if cfg.Logging.Format != "json" {
		t.Fatalf("expected normalized json format, got %q", cfg.Logging.Format)
	}
}

func TestLoadHonoursPathEnv(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "env.toml")
	if err := os.WriteFile(configPath, []byte("[logging]\nlevel = \"debug\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(config.PathEnv, configPath)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != configPath {
		t.Fatalf("expected env path to be used, got %q", resolved)
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("expected debug level, got %q", cfg.Logging.Level)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(configPath, []byte("[runtime]\nclasspath = \"/x\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, _, err := config.Load(configPath); err == nil {
		t.Fatal("expected unknown key to be rejected")
	}
}

func TestValidateDetectsInvalidValues(t *testing.T) {
	cfg := config.Default()
	cfg.Probe.TimeoutSeconds = 0
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for non-positive timeout")
	}

	cfg = config.Default()
	cfg.Runtime.MainClass = ""
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for missing main class")
	}

	cfg = config.Default()
	cfg.Probe.ConflictSignature = ""
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for empty conflict signature")
	}

	cfg = config.Default()
	cfg.PIDFile.Mode = "rw-r--r--"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for malformed pid file mode")
	}

	cfg = config.Default()
	cfg.Logging.Format = "xml"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unsupported log format")
	}

	cfg = config.Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected defaults to validate, got %v", err)
	}
}
