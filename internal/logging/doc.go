// Package logging assembles the structured slog loggers used by the launcher.
//
// It owns the console and JSON handlers plus the small set of typed attribute
// helpers the rest of the tree uses, so every component tags its records the
// same way. All output goes to stderr unless a writer is supplied; stdout is
// reserved for the daemon and for help/version text.
package logging
