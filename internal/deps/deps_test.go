package deps

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestCheckBinaries(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell stubs require a unix shell")
	}
	binDir := t.TempDir()
	present := filepath.Join(binDir, "present")
	script := []byte("#!/bin/sh\nexit 0\n")
	if err := os.WriteFile(present, script, 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
	reqs := []Requirement{
		{Name: "Present", Command: present},
		{Name: "Missing", Command: "clearly-not-present-binary"},
		{Name: "Blank", Command: "  "},
	}

	results := CheckBinaries(reqs)
	if len(results) != len(reqs) {
		t.Fatalf("expected %d results, got %d", len(reqs), len(results))
	}
	if !results[0].Available {
		t.Fatalf("expected first requirement to be available, got %#v", results[0])
	}
	if results[0].Path != present {
		t.Fatalf("expected resolved path %q, got %q", present, results[0].Path)
	}
	if results[0].Detail != "" {
		t.Fatalf("unexpected detail for available dependency: %s", results[0].Detail)
	}
	if results[1].Available {
		t.Fatal("expected missing binary to be unavailable")
	}
	if results[1].Command != "clearly-not-present-binary" {
		t.Fatalf("unexpected command recorded: %s", results[1].Command)
	}
	if results[1].Detail == "" {
		t.Fatal("expected detail message for missing binary")
	}
	if results[2].Available || results[2].Detail != "command not configured" {
		t.Fatalf("expected blank command to be reported as unconfigured, got %#v", results[2])
	}
}

func TestCheckBinariesSearchesPath(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell stubs require a unix shell")
	}
	binDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(binDir, "numactl"), []byte("#!/bin/sh\nexit 0\n"), 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
	t.Setenv("PATH", binDir)

	status := CheckBinaries([]Requirement{{Name: "numactl", Command: "numactl", Optional: true}})[0]
	if !status.Available {
		t.Fatalf("expected numactl on PATH, got %#v", status)
	}
	if status.Path != filepath.Join(binDir, "numactl") {
		t.Fatalf("unexpected resolved path %q", status.Path)
	}
}

func TestIsExecutable(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits are not meaningful on windows")
	}
	dir := t.TempDir()
	exe := filepath.Join(dir, "exe")
	plain := filepath.Join(dir, "plain")
	if err := os.WriteFile(exe, []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(plain, []byte("data"), 0o644); err != nil {
		t.Fatal(err)
	}

	if !IsExecutable(exe) {
		t.Fatal("expected 0755 file to be executable")
	}
	if IsExecutable(plain) {
		t.Fatal("expected 0644 file to be rejected")
	}
	if IsExecutable(dir) {
		t.Fatal("expected directory to be rejected")
	}
	if IsExecutable(filepath.Join(dir, "missing")) {
		t.Fatal("expected missing file to be rejected")
	}
	if IsExecutable("") {
		t.Fatal("expected empty path to be rejected")
	}
}

func TestExecRunnerCombinedOutput(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell stubs require a unix shell")
	}
	stub := filepath.Join(t.TempDir(), "noisy")
	script := "#!/bin/sh\necho out\necho err >&2\nexit 3\n"
	if err := os.WriteFile(stub, []byte(script), 0o755); err != nil {
		t.Fatal(err)
	}

	out, err := ExecRunner{}.CombinedOutput(context.Background(), stub)
	if err == nil {
		t.Fatal("expected non-zero exit to surface as an error")
	}
	if !strings.Contains(string(out), "out") || !strings.Contains(string(out), "err") {
		t.Fatalf("expected stdout and stderr in combined output, got %q", out)
	}
}
