package affinity

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"cassandra-launcher/internal/deps"
	"cassandra-launcher/internal/logging"
)

// InterleaveAll is the argument that spreads memory allocation over every NUMA node.
const InterleaveAll = "--interleave=all"

// trialTarget is the harmless command run under the utility during the probe.
const trialTarget = "true"

const defaultTimeout = 5 * time.Second

// Planner decides whether the launch command gets a NUMA interleave prefix.
type Planner struct {
	// Utility is the affinity control binary, "numactl" when empty.
	Utility string
	Runner  deps.Runner
	Timeout time.Duration
	Logger  *slog.Logger
}

// Plan returns the command prefix to prepend, or nil when interleaving is
// unavailable. It never fails: any problem degrades to no prefix.
func (p Planner) Plan(ctx context.Context) []string {
	logger := logging.NewComponentLogger(p.Logger, "affinity")
	utility := strings.TrimSpace(p.Utility)
	if utility == "" {
		utility = "numactl"
	}

	status := deps.CheckBinaries([]deps.Requirement{{
		Name:        "NUMA interleave",
		Command:     utility,
		Description: "Interleaves daemon memory across NUMA nodes",
		Optional:    true,
	}})[0]
	if !status.Available {
		logger.Debug("affinity wrapper disabled",
			logging.String(logging.FieldEventType, "affinity_unavailable"),
			logging.String("reason", status.Detail),
		)
		return nil
	}

	runner := p.Runner
	if runner == nil {
		runner = deps.ExecRunner{}
	}
	timeout := p.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	probeCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	out, err := runner.CombinedOutput(probeCtx, status.Path, InterleaveAll, trialTarget)
	if err != nil || len(strings.TrimSpace(string(out))) > 0 {
		attrs := []logging.Attr{
			logging.String(logging.FieldEventType, "affinity_trial_failed"),
			logging.String("utility", status.Path),
			logging.String("output", strings.TrimSpace(string(out))),
		}
		if err != nil {
			attrs = append(attrs, logging.Error(err))
		}
		logger.Debug("affinity wrapper disabled", logging.Args(attrs...)...)
		return nil
	}

	logger.Debug("affinity wrapper enabled",
		logging.String(logging.FieldEventType, "affinity_enabled"),
		logging.String("utility", status.Path),
	)
	return []string{utility, InterleaveAll}
}
