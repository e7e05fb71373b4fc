// Package conflict detects an already-running daemon before a real launch.
//
// The probe runs the runtime with the launch's JVM options and classpath but
// no entry point. When the management agent cannot bind its JMX port it
// prints a recognisable failure, and the probe reports ErrAlreadyRunning.
//
// This is a text heuristic and is kept bit-for-bit compatible on purpose:
// an unrelated failure that happens to print the same text is reported as a
// conflict, and a bind failure worded differently passes unnoticed. The
// Detector interface exists so a real port check can replace it without
// touching callers.
package conflict
