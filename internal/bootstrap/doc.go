// Package bootstrap wires one launcher invocation together: environment
// resolution, the conflict probe, affinity planning, command composition and
// the final launch. It also runs the version side invocation.
package bootstrap
