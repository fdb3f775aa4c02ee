package modules

import (
	"path/filepath"
	"strings"
)

// PythonModule shows the active virtualenv or a Python project marker.
type PythonModule struct {
	Symbol      string
	ShowVersion bool
}

// NewPythonModule returns the python detector with default settings.
func NewPythonModule() *PythonModule {
	return &PythonModule{Symbol: "🐍"}
}

// ID implements Module.
func (m *PythonModule) ID() string { return "python" }

// ShouldDisplay reports an active virtualenv or a Python project.
func (m *PythonModule) ShouldDisplay(ctx *Context) bool {
	return ctx.HasEnv("VIRTUAL_ENV") || m.isProject(ctx)
}

func (m *PythonModule) isProject(ctx *Context) bool {
	return ctx.FS.HasFile("pyproject.toml") ||
		ctx.FS.HasFile("requirements.txt") ||
		ctx.FS.HasFile("setup.py") ||
		ctx.FS.HasFile("Pipfile") ||
		ctx.FS.HasFile(".python-version") ||
		ctx.FS.HasFile("poetry.lock") ||
		ctx.FS.HasDir(".venv") ||
		ctx.FS.HasDir("venv")
}

// Render emits the symbol plus the virtualenv name, or "python" when no
// virtualenv is active.
func (m *PythonModule) Render(ctx *Context) (string, error) {
	parts := []string{m.Symbol}
	if venv := ctx.Getenv("VIRTUAL_ENV"); venv != "" {
		parts = append(parts, filepath.Base(venv))
	} else {
		parts = append(parts, "python")
	}
	if m.ShowVersion {
		if version := probe(parsePythonVersion, "python", "--version"); version != "" {
			parts = append(parts, "v"+version)
		}
	}
	return strings.Join(parts, " "), nil
}

// Metadata implements Module.
func (m *PythonModule) Metadata() Metadata {
	return newMetadata(m.ID(), "Python virtual environment and project detection")
}

// EnabledByDefault implements Module.
func (m *PythonModule) EnabledByDefault() bool { return true }

// parsePythonVersion extracts "3.11.5" from "Python 3.11.5".
func parsePythonVersion(output string) string {
	fields := strings.Fields(output)
	if len(fields) < 2 {
		return ""
	}
	return fields[1]
}
