// Package runtimeenv resolves the runtime executable and validates the
// environment inputs a launch needs.
//
// Inputs arrive as an explicit EnvironmentConfig (normally built from the
// process environment by FromLookup) so resolution is deterministic under
// test. The optional override file in the config directory uses KEY=VALUE
// lines and is read with godotenv; it is the Go-side replacement for a
// sourced shell script and never executes anything.
//
// On Cygwin hosts, classpath and config directory are passed through cygpath
// so a native Windows runtime can read them.
package runtimeenv
