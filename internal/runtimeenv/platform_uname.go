//go:build linux || darwin || freebsd

package runtimeenv

import (
	"runtime"

	"golang.org/x/sys/unix"
)

// DetectPlatform returns the kernel name as uname -s would print it.
func DetectPlatform() string {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return runtime.GOOS
	}
	return unix.ByteSliceToString(uts.Sysname[:])
}
