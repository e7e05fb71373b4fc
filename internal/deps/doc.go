// Package deps locates the external binaries the launcher shells out to and
// runs short probe invocations against them.
//
// Everything here is side-effect free apart from the probe commands
// themselves; callers decide whether a missing binary is fatal.
package deps
