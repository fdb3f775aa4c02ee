package magetasks

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"
)

// Build compiles the zush binary into BinPath with the version stamped
// in via ldflags.
func Build() error {
	PrintH2Header("Build")

	fmt.Println("Building zush...")
	cmd := exec.Command("go", "build", "-ldflags", versionLDFlags(), "-o", BinPath, "./cmd/zush")
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		PrintError("Build failed")
		return err
	}

	PrintSuccess(fmt.Sprintf("Built: %s", BinPath))
	return nil
}

// Install puts the stamped binary on GOPATH/bin.
func Install() error {
	PrintH2Header("Install")

	cmd := exec.Command("go", "install", "-ldflags", versionLDFlags(), "./cmd/zush")
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		PrintError("Install failed")
		return err
	}

	PrintSuccess("Installed zush")
	return nil
}

// Clean removes build artifacts.
func Clean() error {
	PrintH2Header("Clean")

	if err := os.RemoveAll("./bin"); err != nil {
		return err
	}

	PrintSuccess("Cleaned build artifacts")
	return nil
}

func versionLDFlags() string {
	version := gitOutput("describe", "--tags", "--always", "--dirty", "--match=v*")
	if version == "" {
		version = "dev"
	}
	commit := gitOutput("rev-parse", "--short", "HEAD")
	if commit == "" {
		commit = "unknown"
	}
	date := time.Now().UTC().Format(time.RFC3339)

	return fmt.Sprintf("-s -w -X '%s/internal/version.Version=%s' -X '%s/internal/version.CommitHash=%s' -X '%s/internal/version.BuildDate=%s'",
		ModulePath, version, ModulePath, commit, ModulePath, date)
}

func gitOutput(args ...string) string {
	out, err := exec.Command("git", args...).Output()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(out))
}
