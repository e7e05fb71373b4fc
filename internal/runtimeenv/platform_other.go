//go:build !linux && !darwin && !freebsd

package runtimeenv

// DetectPlatform returns an empty string: without a uname syscall the kernel
// name (a Cygwin host, for instance) is only known by running uname -s.
func DetectPlatform() string {
	return ""
}
