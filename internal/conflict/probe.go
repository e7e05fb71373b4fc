package conflict

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"cassandra-launcher/internal/deps"
	"cassandra-launcher/internal/logging"
	"cassandra-launcher/internal/runtimeenv"
)

// ErrAlreadyRunning indicates the management port is bound by another instance.
var ErrAlreadyRunning = errors.New("unable to bind JMX, is Cassandra already running?")

const defaultTimeout = 5 * time.Second

// Detector classifies the captured output of the probe invocation.
type Detector interface {
	Conflict(output []byte) bool
}

// SignatureDetector reports a conflict when Signature occurs verbatim in the output.
type SignatureDetector struct {
	Signature string
}

func (d SignatureDetector) Conflict(output []byte) bool {
	if d.Signature == "" {
		return false
	}
	return strings.Contains(string(output), d.Signature)
}

// Probe runs the runtime with the launch options but no entry point and
// inspects what it prints.
type Probe struct {
	Runner   deps.Runner
	Detector Detector
	Timeout  time.Duration
	Logger   *slog.Logger
}

// Check returns ErrAlreadyRunning when the detector matches the probe output.
// The probe's own exit status is ignored: without an entry point the runtime
// always exits non-zero.
func (p Probe) Check(ctx context.Context, env runtimeenv.Environment) error {
	logger := logging.NewComponentLogger(p.Logger, "conflict")
	runner := p.Runner
	if runner == nil {
		runner = deps.ExecRunner{}
	}
	detector := p.Detector
	if detector == nil {
		return errors.New("conflict probe: detector is required")
	}
	timeout := p.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	probeCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	args := make([]string, 0, len(env.RuntimeArgs)+2)
	args = append(args, env.RuntimeArgs...)
	args = append(args, "-classpath", env.Classpath)
	out, err := runner.CombinedOutput(probeCtx, env.Executable, args...)

	if detector.Conflict(out) {
		logger.Error("management port already bound",
			logging.String(logging.FieldEventType, "jmx_conflict"),
			logging.String(logging.FieldImpact, "launch aborted"),
		)
		return ErrAlreadyRunning
	}
	if probeCtx.Err() != nil {
		logger.Warn("conflict probe timed out",
			logging.String(logging.FieldEventType, "conflict_probe_timeout"),
			logging.Duration("timeout", timeout),
			logging.String(logging.FieldImpact, "launch continues without conflict check"),
		)
		return nil
	}
	logger.Debug("no conflict detected",
		logging.String(logging.FieldEventType, "conflict_probe_passed"),
		logging.Bool("probe_exit_error", err != nil),
	)
	return nil
}
