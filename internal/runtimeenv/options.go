package runtimeenv

import (
	"fmt"

	"github.com/mattn/go-shellwords"
)

// SplitOptions splits a JVM_OPTS style string into arguments using shell
// word rules for whitespace, quotes and backslash escapes. Variables and
// command substitutions are not expanded, and shell operators are rejected.
func SplitOptions(value string) ([]string, error) {
	parser := shellwords.NewParser()
	parser.ParseEnv = false
	parser.ParseBacktick = false

	args, err := parser.Parse(value)
	if err != nil {
		return nil, err
	}
	if parser.Position >= 0 {
		return nil, fmt.Errorf("unexpected shell operator at offset %d", parser.Position)
	}
	if len(args) == 0 {
		return nil, nil
	}
	return args, nil
}
