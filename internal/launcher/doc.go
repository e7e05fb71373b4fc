// Package launcher composes the daemon command line and starts it.
//
// Two launch variants exist. ReplaceCurrentProcess turns the launcher into
// the daemon through execve, so nothing after a successful launch runs and
// the daemon's exit status becomes the launcher's. SpawnDetached starts the
// daemon in its own session, records its pid, and lets the launcher exit.
//
// Machine tracks the Idle, ReadyToLaunch, Foreground, Backgrounded and
// Terminal states of one invocation.
package launcher
