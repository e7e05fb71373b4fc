package runtimeenv

import (
	"context"
	"fmt"
	"strings"

	"cassandra-launcher/internal/deps"
)

// PathTranslator rewrites path-valued inputs for the platform the runtime
// will see.
type PathTranslator interface {
	TranslatePath(ctx context.Context, path string) (string, error)
	TranslateList(ctx context.Context, list string) (string, error)
}

// NoopTranslator returns inputs unchanged.
type NoopTranslator struct{}

func (NoopTranslator) TranslatePath(_ context.Context, path string) (string, error) {
	return path, nil
}

func (NoopTranslator) TranslateList(_ context.Context, list string) (string, error) {
	return list, nil
}

// CygpathTranslator converts POSIX paths to Windows form with cygpath so a
// native Windows runtime can read them.
type CygpathTranslator struct {
	Runner deps.Runner
}

func (t CygpathTranslator) TranslatePath(ctx context.Context, path string) (string, error) {
	return t.run(ctx, "-w", path)
}

func (t CygpathTranslator) TranslateList(ctx context.Context, list string) (string, error) {
	return t.run(ctx, "-p", "-w", list)
}

func (t CygpathTranslator) run(ctx context.Context, args ...string) (string, error) {
	runner := t.Runner
	if runner == nil {
		runner = deps.ExecRunner{}
	}
	out, err := runner.CombinedOutput(ctx, "cygpath", args...)
	if err != nil {
		return "", fmt.Errorf("cygpath %s: %w", strings.Join(args, " "), err)
	}
	return strings.TrimSpace(string(out)), nil
}

// SelectTranslator picks the translator for a platform identity as reported
// by uname -s or OSTYPE.
func SelectTranslator(platform string, runner deps.Runner) PathTranslator {
	if strings.HasPrefix(strings.ToLower(strings.TrimSpace(platform)), "cygwin") {
		return CygpathTranslator{Runner: runner}
	}
	return NoopTranslator{}
}
