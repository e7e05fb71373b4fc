// Package affinity probes for numactl and, when a trial run succeeds,
// produces the "numactl --interleave=all" prefix for the daemon command.
//
// Interleaving is a performance hint only, so every failure mode quietly
// yields an empty prefix.
package affinity
