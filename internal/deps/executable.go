package deps

import (
	"os"
	"strings"
)

// IsExecutable reports whether path names a regular file the current user may execute.
func IsExecutable(path string) bool {
	if strings.TrimSpace(path) == "" {
		return false
	}
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}
	return canExecute(path, info)
}
