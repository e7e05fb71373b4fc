// Package testsupport holds fixtures shared by the launcher's package tests:
// shell stub executables, fake runtime homes, and a scripted command runner.
package testsupport
