// Package launchargs turns the launcher's short-flag command line into a
// Request.
//
// Path-valued flags (-p, -l, -H, -E) and -D definitions are also rendered as
// runtime flags, in command-line order, so the launcher can splice them into
// the daemon command verbatim. -h and -v only mark the request; the caller
// stops before touching the environment when either is set.
package launchargs
