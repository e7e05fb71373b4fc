package runtimeenv

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/joho/godotenv"

	"cassandra-launcher/internal/deps"
	"cassandra-launcher/internal/logging"
)

// Resolver locates the runtime executable and validates the required inputs.
type Resolver struct {
	Config EnvironmentConfig
	// ExecutableName is the bare runtime binary name, "java" when empty.
	ExecutableName string
	// EnvFile is the optional override file name inside the config directory.
	EnvFile string
	// Translator rewrites path-valued inputs; selected from Config.Platform when nil.
	Translator PathTranslator
	Runner     deps.Runner
	Logger     *slog.Logger
}

// Resolve produces the Environment for one invocation.
func (r Resolver) Resolve(ctx context.Context) (Environment, error) {
	logger := logging.NewComponentLogger(r.Logger, "runtimeenv")
	cfg := r.Config

	if cfg.ConfDir == "" {
		return Environment{}, fmt.Errorf("%w: %s is not set", ErrMissingConfiguration, EnvConfDir)
	}
	if cfg.Platform == "" {
		cfg.Platform = r.unamePlatform(ctx, logger)
	}
	translator := r.Translator
	if translator == nil {
		translator = SelectTranslator(cfg.Platform, r.Runner)
	}
	confDir, err := translator.TranslatePath(ctx, cfg.ConfDir)
	if err != nil {
		return Environment{}, fmt.Errorf("translate config directory: %w", err)
	}
	cfg.ConfDir = confDir

	overlaid, err := r.applyEnvFile(cfg, logger)
	if err != nil {
		return Environment{}, err
	}
	cfg = overlaid
	if cfg.Classpath == "" {
		return Environment{}, fmt.Errorf("%w: %s is not set", ErrMissingConfiguration, EnvClasspath)
	}
	classpath, err := translator.TranslateList(ctx, cfg.Classpath)
	if err != nil {
		return Environment{}, fmt.Errorf("translate classpath: %w", err)
	}

	executable, err := resolveExecutable(cfg.RuntimeHome, r.executableName())
	if err != nil {
		return Environment{}, err
	}

	runtimeArgs, err := SplitOptions(cfg.RuntimeOptions)
	if err != nil {
		return Environment{}, fmt.Errorf("%w: %s: %v", ErrMissingConfiguration, EnvRuntimeOptions, err)
	}

	logger.Debug("runtime environment resolved",
		logging.String(logging.FieldEventType, "environment_resolved"),
		logging.String("executable", executable),
		logging.String("conf_dir", confDir),
		logging.Int("runtime_arg_count", len(runtimeArgs)),
		logging.String("platform", cfg.Platform),
	)
	return Environment{
		Executable:  executable,
		Classpath:   classpath,
		RuntimeArgs: runtimeArgs,
	}, nil
}

// unamePlatform asks uname -s for the kernel name. Native Windows builds
// cannot tell a Cygwin host apart without it. Failure falls back to GOOS.
func (r Resolver) unamePlatform(ctx context.Context, logger *slog.Logger) string {
	runner := r.Runner
	if runner == nil {
		runner = deps.ExecRunner{}
	}
	out, err := runner.CombinedOutput(ctx, "uname", "-s")
	platform := strings.TrimSpace(string(out))
	if err != nil || platform == "" {
		logger.Debug("platform detection fell back to GOOS",
			logging.String(logging.FieldEventType, "platform_fallback"),
			logging.String("goos", runtime.GOOS),
			logging.Error(err),
		)
		return runtime.GOOS
	}
	return platform
}

func (r Resolver) executableName() string {
	if name := strings.TrimSpace(r.ExecutableName); name != "" {
		return name
	}
	return "java"
}

// applyEnvFile overlays the optional KEY=VALUE override file from the config
// directory. Option keys append; path keys only fill values that are unset.
func (r Resolver) applyEnvFile(cfg EnvironmentConfig, logger *slog.Logger) (EnvironmentConfig, error) {
	name := strings.TrimSpace(r.EnvFile)
	if name == "" {
		return cfg, nil
	}
	path := name
	if !filepath.IsAbs(path) {
		path = filepath.Join(cfg.ConfDir, name)
	}
	values, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("%w: read %s: %v", ErrMissingConfiguration, path, err)
	}

	cfg.RuntimeOptions = joinOptions(cfg.RuntimeOptions, values[EnvRuntimeOptions], values[EnvExtraOptions])
	if cfg.RuntimeHome == "" {
		cfg.RuntimeHome = strings.TrimSpace(values[EnvRuntimeHome])
	}
	if cfg.Classpath == "" {
		cfg.Classpath = strings.TrimSpace(values[EnvClasspath])
	}
	logger.Debug("environment override file applied",
		logging.String(logging.FieldEventType, "env_file_applied"),
		logging.String("path", path),
		logging.Int("keys", len(values)),
	)
	return cfg, nil
}

// resolveExecutable prefers <home>/bin/amd64/<name>, then <home>/bin/<name>.
// Only when home is unset is PATH searched.
func resolveExecutable(home, name string) (string, error) {
	if home == "" {
		resolved, err := exec.LookPath(name)
		if err != nil {
			return "", fmt.Errorf("%w: %q not found on PATH", ErrMissingExecutable, name)
		}
		return resolved, nil
	}
	candidates := []string{
		filepath.Join(home, "bin", "amd64", executableFile(name)),
		filepath.Join(home, "bin", executableFile(name)),
	}
	for _, candidate := range candidates {
		if deps.IsExecutable(candidate) {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrMissingExecutable, strings.Join(candidates, ", "))
}

func executableFile(name string) string {
	if os.PathSeparator == '\\' && filepath.Ext(name) == "" {
		return name + ".exe"
	}
	return name
}
