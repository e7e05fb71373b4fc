//go:build unix

package launcher

import "golang.org/x/sys/unix"

func replaceProcess(argv0 string, argv []string, envv []string) error {
	return unix.Exec(argv0, argv, envv)
}
