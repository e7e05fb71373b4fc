package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"cassandra-launcher/internal/launchargs"
	"cassandra-launcher/internal/launcher"
)

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		os.Exit(reportError(os.Stderr, cmd.Name(), err))
	}
}

// reportError prints err for the user and returns the process exit status.
func reportError(w io.Writer, program string, err error) int {
	if errors.Is(err, context.Canceled) {
		return 1
	}
	var status *launcher.ExitStatusError
	if errors.As(err, &status) && status.Code > 0 {
		return status.Code
	}

	message := err.Error()
	if shouldColorize(w) {
		message = ansiRed + message + ansiReset
	}
	fmt.Fprintln(w, message)

	var usageErr *launchargs.UsageError
	if errors.As(err, &usageErr) {
		fmt.Fprint(w, launchargs.Usage(program))
	}
	return 1
}
