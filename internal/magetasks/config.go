package magetasks

import (
	"os"
	"path/filepath"
)

var (
	// ModulePath is the Go module path, used to address the version
	// package in ldflags.
	ModulePath = "github.com/mikemackintosh/zush"

	// BinPath is where the built binary lands.
	BinPath = "./bin/zush"

	// ProjectRoot is the directory the Magefile runs from.
	ProjectRoot string
)

// Initialize resolves the project root and creates the bin directory.
// Call it from the Magefile's init.
func Initialize() error {
	var err error
	ProjectRoot, err = os.Getwd()
	if err != nil {
		return err
	}

	return os.MkdirAll(filepath.Join(ProjectRoot, "bin"), 0o750)
}
