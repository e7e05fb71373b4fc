//go:build unix

package deps

import (
	"os"

	"golang.org/x/sys/unix"
)

func canExecute(path string, info os.FileInfo) bool {
	if info.Mode().Perm()&0o111 == 0 {
		return false
	}
	return unix.Access(path, unix.X_OK) == nil
}
