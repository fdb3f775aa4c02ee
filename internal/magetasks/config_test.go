package magetasks

import (
	"os"
	"path/filepath"
	"testing"
)

func TestInitialize(t *testing.T) {
	originalDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	defer os.Chdir(originalDir)

	tmpDir := t.TempDir()
	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("Failed to change to temp directory: %v", err)
	}

	if err := Initialize(); err != nil {
		t.Errorf("Initialize() returned error: %v", err)
	}

	binDir := filepath.Join(tmpDir, "bin")
	if _, err := os.Stat(binDir); os.IsNotExist(err) {
		t.Error("Initialize() should create the bin directory")
	}

	// EvalSymlinks: macOS tempdirs live behind /private symlinks.
	expectedRoot, _ := filepath.EvalSymlinks(tmpDir)
	actualRoot, _ := filepath.EvalSymlinks(ProjectRoot)
	if actualRoot != expectedRoot {
		t.Errorf("ProjectRoot = %s, want %s", actualRoot, expectedRoot)
	}
}

func TestModulePath(t *testing.T) {
	if ModulePath != "github.com/mikemackintosh/zush" {
		t.Errorf("ModulePath = %s, want github.com/mikemackintosh/zush", ModulePath)
	}
}

func TestBinPath(t *testing.T) {
	if BinPath != "./bin/zush" {
		t.Errorf("BinPath = %s, want ./bin/zush", BinPath)
	}
}
