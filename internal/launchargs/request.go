package launchargs

// Runtime property names injected for path-valued flags.
const (
	PIDFileProperty = "cassandra-pidfile"
	LogDirProperty  = "cassandra.logdir"
)

// Request is the parsed form of one launcher invocation. It is built once by
// Parse and treated as read-only afterwards.
type Request struct {
	// PIDFile is only honoured for background launches; foreground launches
	// still forward it to the daemon as a property but never write it.
	PIDFile      string
	LogDir       string
	HeapDumpFile string
	ErrorFile    string
	Foreground   bool

	// ExtraProperties holds the raw key=value operands of every -D, in
	// command-line order, duplicates included.
	ExtraProperties []string

	// RuntimeProperties holds the runtime flags derived from -p, -l, -D, -H
	// and -E in the order they were given.
	RuntimeProperties []string

	HelpRequested    bool
	VersionRequested bool
}
