package launcher

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"cassandra-launcher/internal/logging"
)

// ReplaceCurrentProcess hands the current process over to the daemon.
type ReplaceCurrentProcess struct {
	// Exec performs the replacement. It defaults to execve on unix and to an
	// attached child elsewhere.
	Exec   func(argv0 string, argv []string, envv []string) error
	Logger *slog.Logger
}

// Launch only returns on failure, or when Exec is not a true replacement. An
// attached daemon's unsuccessful exit comes back as *ExitStatusError.
func (r ReplaceCurrentProcess) Launch(ctx context.Context, cmd Command) (*Handle, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLaunchFailed, err)
	}
	argv0, err := resolveArgv0(cmd)
	if err != nil {
		return nil, err
	}
	execFn := r.Exec
	if execFn == nil {
		execFn = replaceProcess
	}

	logging.NewComponentLogger(r.Logger, "launcher").Info("starting daemon in foreground",
		logging.String(logging.FieldEventType, "launch_foreground"),
		logging.String("executable", argv0),
		logging.Strings("argv", cmd.Argv),
	)
	if err := execFn(argv0, cmd.Argv, os.Environ()); err != nil {
		var status *ExitStatusError
		if errors.As(err, &status) {
			return nil, status
		}
		return nil, fmt.Errorf("%w: exec %s: %w", ErrLaunchFailed, argv0, err)
	}
	return nil, nil
}
