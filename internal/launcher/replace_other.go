//go:build !unix

package launcher

import (
	"errors"
	"os"
	"os/exec"
)

// replaceProcess runs the daemon attached and waits for it. An unsuccessful
// exit is returned as *ExitStatusError carrying the daemon's status.
func replaceProcess(argv0 string, argv []string, envv []string) error {
	cmd := exec.Command(argv0)
	cmd.Args = argv
	cmd.Env = envv
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	err := cmd.Run()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() > 0 {
		return &ExitStatusError{Code: exitErr.ExitCode()}
	}
	return err
}
