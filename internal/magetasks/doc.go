// Package magetasks provides the build, test, and lint tasks behind the
// Magefile. Each task shells out to the Go toolchain and prints a short
// status line; optional linters degrade to a warning when not installed.
package magetasks
