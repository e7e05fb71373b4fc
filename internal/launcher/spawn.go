package launcher

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strconv"

	"github.com/gofrs/flock"

	"cassandra-launcher/internal/logging"
)

const defaultPIDFileMode os.FileMode = 0o644

// SpawnDetached starts the daemon in a new session and does not wait for it.
type SpawnDetached struct {
	// PIDFile receives the child's pid when set.
	PIDFile     string
	PIDFileMode os.FileMode
	Logger      *slog.Logger
}

// Launch spawns the daemon with standard input on the null device and
// inherited standard output and error, then records the pid.
func (s SpawnDetached) Launch(ctx context.Context, cmd Command) (*Handle, error) {
	logger := logging.NewComponentLogger(s.Logger, "launcher")
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLaunchFailed, err)
	}
	argv0, err := resolveArgv0(cmd)
	if err != nil {
		return nil, err
	}

	var lock *flock.Flock
	if s.PIDFile != "" {
		lock = flock.New(s.PIDFile + ".lock")
		ok, err := lock.TryLock()
		if err != nil {
			return nil, fmt.Errorf("%w: lock pid file: %w", ErrLaunchFailed, err)
		}
		if !ok {
			return nil, fmt.Errorf("%w: pid file %s is held by another launcher", ErrLaunchFailed, s.PIDFile)
		}
		defer releasePIDLock(lock, logger)
	}

	proc := exec.Command(argv0) //nolint:gosec
	proc.Args = cmd.Argv
	proc.Stdout = os.Stdout
	proc.Stderr = os.Stderr
	proc.SysProcAttr = detachedAttr()
	if err := proc.Start(); err != nil {
		return nil, fmt.Errorf("%w: spawn %s: %w", ErrLaunchFailed, argv0, err)
	}

	handle := &Handle{PID: proc.Process.Pid}
	if s.PIDFile != "" {
		mode := s.PIDFileMode
		if mode == 0 {
			mode = defaultPIDFileMode
		}
		if err := writePIDFile(s.PIDFile, handle.PID, mode); err != nil {
			_ = proc.Process.Release()
			return handle, fmt.Errorf("%w: write pid file: %w", ErrLaunchFailed, err)
		}
		handle.PIDFile = s.PIDFile
	}
	if err := proc.Process.Release(); err != nil {
		logger.Warn("release daemon process handle",
			logging.Error(err),
			logging.String(logging.FieldImpact, "daemon keeps running"),
		)
	}

	logger.Info("daemon started in background",
		logging.String(logging.FieldEventType, "launch_background"),
		logging.Int("pid", handle.PID),
		logging.String("pid_file", handle.PIDFile),
	)
	return handle, nil
}

// writePIDFile stores pid in decimal without a trailing newline, replacing
// any previous content.
func writePIDFile(path string, pid int, mode os.FileMode) error {
	return os.WriteFile(path, []byte(strconv.Itoa(pid)), mode)
}

// releasePIDLock unlocks but keeps the lock file, so every launcher for the
// same pid file locks the same inode.
func releasePIDLock(lock *flock.Flock, logger *slog.Logger) {
	if err := lock.Unlock(); err != nil {
		logger.Warn("release pid file lock", logging.Error(err))
	}
}
