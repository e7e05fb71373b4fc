package bootstrap

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"cassandra-launcher/internal/affinity"
	"cassandra-launcher/internal/config"
	"cassandra-launcher/internal/conflict"
	"cassandra-launcher/internal/deps"
	"cassandra-launcher/internal/launchargs"
	"cassandra-launcher/internal/launcher"
	"cassandra-launcher/internal/logging"
	"cassandra-launcher/internal/runtimeenv"
)

// Options carries everything one invocation needs. Zero-valued collaborators
// fall back to the production implementations.
type Options struct {
	Request     launchargs.Request
	Environment runtimeenv.EnvironmentConfig
	Config      *config.Config
	Logger      *slog.Logger
	// Runner executes the probe, affinity trial, path translation and
	// version invocations.
	Runner deps.Runner
	// Stdout receives the version output.
	Stdout io.Writer
	// Select picks the launch variant; launcher.Select when nil.
	Select   func(launchargs.Request) launcher.Launcher
	Detector conflict.Detector
	// Observer sees every launch state transition.
	Observer func(from, to launcher.State)
}

func (o Options) config() *config.Config {
	if o.Config != nil {
		return o.Config
	}
	cfg := config.Default()
	return &cfg
}

func (o Options) runner() deps.Runner {
	if o.Runner != nil {
		return o.Runner
	}
	return deps.ExecRunner{}
}

func (o Options) resolver(cfg *config.Config) runtimeenv.Resolver {
	return runtimeenv.Resolver{
		Config:         o.Environment,
		ExecutableName: cfg.Runtime.ExecutableName,
		EnvFile:        cfg.Runtime.EnvFile,
		Runner:         o.runner(),
		Logger:         o.Logger,
	}
}

// Run performs a launch. It returns the handle of a detached daemon, or nil
// after a foreground launch whose exec returned control.
func Run(ctx context.Context, opts Options) (*launcher.Handle, error) {
	cfg := opts.config()
	logger := logging.NewComponentLogger(opts.Logger, "bootstrap")
	machine := &launcher.Machine{Observer: func(from, to launcher.State) {
		logger.Debug("launch state changed",
			logging.String(logging.FieldEventType, "launch_state"),
			logging.String("from", string(from)),
			logging.String("to", string(to)),
		)
		if opts.Observer != nil {
			opts.Observer(from, to)
		}
	}}
	fail := func(err error) (*launcher.Handle, error) {
		_ = machine.Transition(launcher.StateTerminal)
		return nil, err
	}

	env, err := opts.resolver(cfg).Resolve(ctx)
	if err != nil {
		return fail(err)
	}

	detector := opts.Detector
	if detector == nil {
		detector = conflict.SignatureDetector{Signature: cfg.Probe.ConflictSignature}
	}
	probe := conflict.Probe{
		Runner:   opts.runner(),
		Detector: detector,
		Timeout:  cfg.ProbeTimeout(),
		Logger:   opts.Logger,
	}
	if err := probe.Check(ctx, env); err != nil {
		return fail(err)
	}

	if cfg.Probe.AffinityEnabled {
		planner := affinity.Planner{
			Utility: cfg.Probe.AffinityUtility,
			Runner:  opts.runner(),
			Timeout: cfg.ProbeTimeout(),
			Logger:  opts.Logger,
		}
		env.AffinityWrapper = planner.Plan(ctx)
	}

	if err := machine.Transition(launcher.StateReadyToLaunch); err != nil {
		return fail(err)
	}
	cmd := launcher.Compose(env, opts.Request, launcher.ComposeOptions{
		MainClass:         cfg.Runtime.MainClass,
		LoggingConfigFile: cfg.Runtime.LoggingConfigFile,
	})
	logger.Debug("launch command composed",
		logging.String(logging.FieldEventType, "launch_command"),
		logging.String("command", cmd.String()),
	)

	next := launcher.StateBackgrounded
	if opts.Request.Foreground {
		next = launcher.StateForeground
		if opts.Request.PIDFile != "" {
			logger.Debug("pid file ignored in foreground mode",
				logging.String("pid_file", opts.Request.PIDFile),
			)
		}
	}
	if err := machine.Transition(next); err != nil {
		return fail(err)
	}

	selectFn := opts.Select
	if selectFn == nil {
		selectFn = func(req launchargs.Request) launcher.Launcher {
			return launcher.Select(req, launcher.SelectOptions{
				PIDFileMode: cfg.PIDFileMode(),
				Logger:      opts.Logger,
			})
		}
	}
	handle, err := selectFn(opts.Request).Launch(ctx, cmd)
	_ = machine.Transition(launcher.StateTerminal)
	return handle, err
}

// Version runs the runtime's version tool and copies its output to Stdout.
func Version(ctx context.Context, opts Options) error {
	cfg := opts.config()
	env, err := opts.resolver(cfg).Resolve(ctx)
	if err != nil {
		return err
	}

	args := []string{"-cp", env.Classpath}
	if file := strings.TrimSpace(cfg.Runtime.ToolsLoggingConfigFile); file != "" {
		args = append(args, "-Dlogback.configurationFile="+file)
	}
	args = append(args, cfg.Runtime.VersionClass)

	versionCtx, cancel := context.WithTimeout(ctx, cfg.ProbeTimeout())
	defer cancel()
	out, err := opts.runner().CombinedOutput(versionCtx, env.Executable, args...)
	if err != nil {
		return fmt.Errorf("query version: %w: %s", err, strings.TrimSpace(string(out)))
	}

	stdout := opts.Stdout
	if stdout == nil {
		stdout = io.Discard
	}
	_, err = stdout.Write(out)
	return err
}
