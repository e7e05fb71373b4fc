package launcher

import (
	"strings"

	"cassandra-launcher/internal/launchargs"
	"cassandra-launcher/internal/runtimeenv"
)

// ForegroundProperty tells the daemon to keep its standard streams open.
const ForegroundProperty = "-Dcassandra-foreground=yes"

// Command is a fully composed launch command line.
type Command struct {
	Argv []string
}

// String renders the command for logs.
func (c Command) String() string {
	return strings.Join(c.Argv, " ")
}

// ComposeOptions carries the values Compose takes from configuration.
type ComposeOptions struct {
	MainClass         string
	LoggingConfigFile string
}

// Compose builds the launch command:
//
//	[wrapper...] java [runtime args...] [managed properties...] [request properties...] -classpath CP MainClass
//
// Every property flag precedes -classpath. Request properties keep command-line order.
func Compose(env runtimeenv.Environment, req launchargs.Request, opts ComposeOptions) Command {
	argv := make([]string, 0, len(env.AffinityWrapper)+len(env.RuntimeArgs)+len(req.RuntimeProperties)+6)
	argv = append(argv, env.AffinityWrapper...)
	argv = append(argv, env.Executable)
	argv = append(argv, env.RuntimeArgs...)
	if file := strings.TrimSpace(opts.LoggingConfigFile); file != "" {
		argv = append(argv, "-Dlogback.configurationFile="+file)
	}
	argv = append(argv, req.RuntimeProperties...)
	if req.Foreground {
		argv = append(argv, ForegroundProperty)
	}
	argv = append(argv, "-classpath", env.Classpath, opts.MainClass)
	return Command{Argv: argv}
}
