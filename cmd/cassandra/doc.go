// Package main hosts the cassandra launcher entrypoint.
//
// The root command accepts the classic short flags (-f, -h, -v, -p, -l, -D,
// -H, -E), loads the launcher's own TOML configuration, and hands the parsed
// request to the bootstrap package. Cobra's flag parsing is disabled so the
// launcher's parser sees the argument vector exactly as typed.
package main
