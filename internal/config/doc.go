// Package config loads, normalizes, and validates the launcher's own settings.
//
// Settings live in an optional TOML file (CASSANDRA_LAUNCHER_CONFIG, falling
// back to ~/.config/cassandra-launcher/config.toml). A missing file yields
// repository defaults, so a bare install needs no configuration at all. The
// runtime's classpath and configuration directory are deliberately absent:
// those are supplied by the process environment and resolved by runtimeenv.
package config
