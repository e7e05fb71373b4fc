package launcher

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"

	"cassandra-launcher/internal/launchargs"
)

// ErrLaunchFailed wraps every failure of the final exec, spawn or pidfile step.
var ErrLaunchFailed = errors.New("launch failed")

// ExitStatusError reports a daemon that ran attached to the launcher and
// exited unsuccessfully. Code becomes the launcher's exit status.
type ExitStatusError struct {
	Code int
}

func (e *ExitStatusError) Error() string {
	return fmt.Sprintf("daemon exited with status %d", e.Code)
}

// Handle describes a detached daemon.
type Handle struct {
	PID     int
	PIDFile string
}

// Launcher starts a composed command. Implementations that replace the
// current process do not return on success.
type Launcher interface {
	Launch(ctx context.Context, cmd Command) (*Handle, error)
}

// SelectOptions configures the launcher returned by Select.
type SelectOptions struct {
	PIDFileMode os.FileMode
	Logger      *slog.Logger
}

// Select returns ReplaceCurrentProcess for foreground requests and
// SpawnDetached otherwise. A pidfile on a foreground request is ignored.
func Select(req launchargs.Request, opts SelectOptions) Launcher {
	if req.Foreground {
		return ReplaceCurrentProcess{Logger: opts.Logger}
	}
	return SpawnDetached{
		PIDFile:     req.PIDFile,
		PIDFileMode: opts.PIDFileMode,
		Logger:      opts.Logger,
	}
}

func resolveArgv0(cmd Command) (string, error) {
	if len(cmd.Argv) == 0 || cmd.Argv[0] == "" {
		return "", fmt.Errorf("%w: empty command", ErrLaunchFailed)
	}
	path, err := exec.LookPath(cmd.Argv[0])
	if err != nil {
		return "", fmt.Errorf("%w: resolve %s: %w", ErrLaunchFailed, cmd.Argv[0], err)
	}
	return path, nil
}
