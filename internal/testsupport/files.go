package testsupport

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// RequireShell skips tests that rely on /bin/sh stub scripts.
func RequireShell(t testing.TB) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell stubs require a unix shell")
	}
}

// WriteExecutable writes a /bin/sh stub named name under dir with mode 0755
// and returns its path. body is appended after the shebang line.
func WriteExecutable(t testing.TB, dir, name, body string) string {
	t.Helper()
	RequireShell(t)

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if !strings.HasSuffix(body, "\n") {
		body += "\n"
	}
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0o755); err != nil {
		t.Fatalf("write stub %s: %v", path, err)
	}
	return path
}

// FakeRuntimeHome creates a runtime home directory containing bin/java and
// returns the home directory and the stub path.
func FakeRuntimeHome(t testing.TB, body string) (string, string) {
	t.Helper()
	home := filepath.Join(t.TempDir(), "jdk")
	java := WriteExecutable(t, filepath.Join(home, "bin"), "java", body)
	return home, java
}

// ConfDir creates an empty configuration directory.
func ConfDir(t testing.TB) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "conf")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir conf dir: %v", err)
	}
	return dir
}

// PrependPath puts dir at the front of PATH for the duration of the test.
func PrependPath(t testing.TB, dir string) {
	t.Helper()
	current := os.Getenv("PATH")
	if current == "" {
		t.Setenv("PATH", dir)
		return
	}
	t.Setenv("PATH", dir+string(os.PathListSeparator)+current)
}
