//go:build mage

package main

import (
	"fmt"
	"os"

	"github.com/magefile/mage/mg"

	"github.com/mikemackintosh/zush/internal/magetasks"
)

// Default target - build the binary.
var Default = Build

func init() {
	if err := magetasks.Initialize(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal: %v\n", err)
		os.Exit(1)
	}
}

// Build builds the zush binary with the version stamped in.
func Build() error {
	return magetasks.Build()
}

// Install installs zush to GOPATH/bin.
func Install() error {
	return magetasks.Install()
}

// Clean removes build artifacts.
func Clean() error {
	return magetasks.Clean()
}

// Lint runs gofmt, go vet, and the optional linters.
func Lint() error {
	return magetasks.Lint()
}

// QA runs the full gate: lint, tests, race detector, build.
func QA() error {
	mg.SerialDeps(Test.All, Test.Race, Lint, Build)
	magetasks.PrintSuccess("QA complete")
	return nil
}

// Test namespace for testing commands.
type Test mg.Namespace

// All runs the test suite.
func (Test) All() error {
	return magetasks.Test()
}

// Coverage runs tests with a coverage profile.
func (Test) Coverage() error {
	return magetasks.Coverage()
}

// Race runs tests under the race detector.
func (Test) Race() error {
	return magetasks.Race()
}
