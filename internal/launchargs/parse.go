package launchargs

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/pflag"
)

// UsageError reports malformed command-line input.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string {
	return e.Err.Error()
}

func (e *UsageError) Unwrap() error {
	return e.Err
}

// Parse interprets args (without the program name) into a Request.
func Parse(args []string) (Request, error) {
	var req Request
	fs := newFlagSet("cassandra", &req)
	if err := fs.Parse(args); err != nil {
		return Request{}, &UsageError{Err: err}
	}
	if rest := fs.Args(); len(rest) > 0 {
		return Request{}, &UsageError{Err: fmt.Errorf("unexpected argument %q", rest[0])}
	}
	return req, nil
}

// Usage renders the usage text for program name.
func Usage(name string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Usage: %s [-f] [-h] [-v] [-p pidfile] [-l logdir] [-D key=value]... [-H dumpfile] [-E errorfile]\n\n", name)
	b.WriteString(newFlagSet(name, &Request{}).FlagUsages())
	return b.String()
}

func newFlagSet(name string, req *Request) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.SortFlags = false

	fs.BoolVarP(&req.Foreground, "foreground", "f", false, "Run the daemon in the foreground, attached to this terminal")
	fs.BoolVarP(&req.HelpRequested, "help", "h", false, "Print this help and exit")
	fs.BoolVarP(&req.VersionRequested, "version", "v", false, "Print the daemon version and exit")
	fs.VarP(&propertyValue{
		req:    req,
		target: &req.PIDFile,
		render: func(v string) string { return "-D" + PIDFileProperty + "=" + v },
	}, "pidfile", "p", "Write the daemon `pid` file (background mode only)")
	fs.VarP(&propertyValue{
		req:    req,
		target: &req.LogDir,
		render: func(v string) string { return "-D" + LogDirProperty + "=" + v },
	}, "logdir", "l", "Daemon log `directory`")
	fs.VarP(&propertyValue{
		req:      req,
		raw:      &req.ExtraProperties,
		render:   func(v string) string { return "-D" + v },
		validate: validateDefine,
	}, "define", "D", "Set a daemon system property as `key=value` (repeatable)")
	fs.VarP(&propertyValue{
		req:    req,
		target: &req.HeapDumpFile,
		render: func(v string) string { return "-XX:HeapDumpPath=" + v },
	}, "heap-dump", "H", "Heap dump output `file`")
	fs.VarP(&propertyValue{
		req:    req,
		target: &req.ErrorFile,
		render: func(v string) string { return "-XX:ErrorFile=" + v },
	}, "error-file", "E", "Fatal error log output `file`")
	return fs
}

func validateDefine(value string) error {
	if strings.HasPrefix(value, "=") {
		return errors.New("property name must not be empty")
	}
	return nil
}

// propertyValue is a pflag.Value that records the operand and appends the
// matching runtime flag to the request's shared property list, so that
// RuntimeProperties follows command-line order across different flags.
type propertyValue struct {
	req      *Request
	target   *string
	raw      *[]string
	render   func(string) string
	validate func(string) error
}

func (v *propertyValue) String() string {
	if v.target != nil {
		return *v.target
	}
	if v.raw != nil {
		return strings.Join(*v.raw, ",")
	}
	return ""
}

func (v *propertyValue) Set(value string) error {
	if strings.TrimSpace(value) == "" {
		return errors.New("value must not be empty")
	}
	if v.validate != nil {
		if err := v.validate(value); err != nil {
			return err
		}
	}
	if v.target != nil {
		*v.target = value
	}
	if v.raw != nil {
		*v.raw = append(*v.raw, value)
	}
	v.req.RuntimeProperties = append(v.req.RuntimeProperties, v.render(value))
	return nil
}

func (v *propertyValue) Type() string {
	return "string"
}
