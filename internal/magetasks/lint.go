package magetasks

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Lint runs every linter. gofmt and go vet must pass; golangci-lint and
// staticcheck are skipped with a warning when not installed.
func Lint() error {
	PrintH2Header("Lint")

	var errs []error

	if err := lintFormat(); err != nil {
		errs = append(errs, err)
	}
	if err := lintVet(); err != nil {
		errs = append(errs, err)
	}

	if err := runOptionalLinter("staticcheck", "staticcheck", "./..."); err != nil {
		errs = append(errs, err)
	}
	if err := runOptionalLinter("golangci-lint", "golangci-lint", "run", "--timeout=5m", "./..."); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		PrintError("Lint failed")
		return errors.Join(errs...)
	}

	PrintSuccess("All linters passed")
	return nil
}

func lintFormat() error {
	out, err := exec.Command("gofmt", "-l", ".").Output()
	if err != nil {
		return fmt.Errorf("gofmt: %w", err)
	}

	files := strings.TrimSpace(string(out))
	if files != "" {
		return fmt.Errorf("gofmt: files need formatting:\n%s", files)
	}
	return nil
}

func lintVet() error {
	cmd := exec.Command("go", "vet", "./...")
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("go vet: %w", err)
	}
	return nil
}

func runOptionalLinter(name string, bin string, args ...string) error {
	cmd := exec.Command(bin, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		if IsCommandNotFound(err) {
			PrintWarning(fmt.Sprintf("%s not installed, skipping", name))
			return nil
		}
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}
