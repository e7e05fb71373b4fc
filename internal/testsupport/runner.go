package testsupport

import (
	"context"
	"strings"
	"sync"
)

// Call records one invocation seen by Runner.
type Call struct {
	Name string
	Args []string
}

// Line renders the call as a single space separated string.
func (c Call) Line() string {
	return strings.TrimSpace(c.Name + " " + strings.Join(c.Args, " "))
}

// Runner is a scripted command runner. Respond decides the output of every
// call; when nil, calls succeed with no output.
type Runner struct {
	Respond func(name string, args []string) ([]byte, error)

	mu    sync.Mutex
	calls []Call
}

// CombinedOutput records the call and returns the scripted response.
func (r *Runner) CombinedOutput(ctx context.Context, name string, args ...string) ([]byte, error) {
	r.mu.Lock()
	r.calls = append(r.calls, Call{Name: name, Args: append([]string(nil), args...)})
	r.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.Respond == nil {
		return nil, nil
	}
	return r.Respond(name, args)
}

// Calls returns a copy of the recorded invocations.
func (r *Runner) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Call(nil), r.calls...)
}
