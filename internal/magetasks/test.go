package magetasks

import (
	"fmt"
	"os"
	"os/exec"
)

// Test runs the full test suite.
func Test() error {
	PrintH2Header("Tests")

	cmd := exec.Command("go", "test", "./...")
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		PrintError("Tests failed")
		return err
	}

	PrintSuccess("All tests passed")
	return nil
}

// Race runs the test suite under the race detector.
func Race() error {
	PrintH2Header("Race Detector")

	cmd := exec.Command("go", "test", "-race", "./...")
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		PrintError("Race detector found problems")
		return err
	}

	PrintSuccess("No races detected")
	return nil
}

// Coverage runs the tests with a coverage profile and prints the
// per-function summary.
func Coverage() error {
	PrintH2Header("Test Coverage")

	cmd := exec.Command("go", "test", "-coverprofile=coverage.out", "./...")
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		PrintError("Tests failed")
		return err
	}

	cmd = exec.Command("go", "tool", "cover", "-func=coverage.out")
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("coverage report: %w", err)
	}

	PrintSuccess("Coverage written to coverage.out")
	return nil
}
