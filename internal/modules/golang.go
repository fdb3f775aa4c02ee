package modules

import (
	"path/filepath"
	"strings"
)

// GoModule shows Go projects with the module name from go.mod.
type GoModule struct {
	Symbol      string
	ShowVersion bool
}

// NewGoModule returns the go detector with default settings.
func NewGoModule() *GoModule {
	return &GoModule{Symbol: "", ShowVersion: true}
}

// ID implements Module.
func (m *GoModule) ID() string { return "go" }

// ShouldDisplay reports a Go project or a directory under a GOPATH src
// tree.
func (m *GoModule) ShouldDisplay(ctx *Context) bool {
	if ctx.FS.HasFile("go.mod") || ctx.FS.HasFile("go.sum") || ctx.FS.HasFile(".go-version") {
		return true
	}
	return m.inGopath(ctx)
}

// inGopath reports whether pwd sits under any GOPATH src directory.
func (m *GoModule) inGopath(ctx *Context) bool {
	gopath := ctx.Getenv("GOPATH")
	if gopath == "" {
		return false
	}
	for _, root := range filepath.SplitList(gopath) {
		src := filepath.Join(root, "src")
		if ctx.Pwd == src || strings.HasPrefix(ctx.Pwd, src+string(filepath.Separator)) {
			return true
		}
	}
	return false
}

// Render emits the symbol plus the module name, or "go" when go.mod is
// absent or unreadable.
func (m *GoModule) Render(ctx *Context) (string, error) {
	parts := []string{m.Symbol}
	if name := m.moduleName(ctx); name != "" {
		parts = append(parts, name)
	} else {
		parts = append(parts, "go")
	}
	if m.ShowVersion {
		if version := probe(parseGoVersion, "go", "version"); version != "" {
			parts = append(parts, "v"+version)
		}
	}
	return strings.Join(parts, " "), nil
}

// moduleName extracts the last element of the module path in go.mod.
func (m *GoModule) moduleName(ctx *Context) string {
	contents, err := ctx.FS.ReadFile(filepath.Join(ctx.Pwd, "go.mod"))
	if err != nil {
		return ""
	}
	for _, line := range strings.Split(contents, "\n") {
		path, ok := strings.CutPrefix(strings.TrimSpace(line), "module ")
		if !ok {
			continue
		}
		path = strings.TrimSpace(path)
		if i := strings.LastIndex(path, "/"); i >= 0 {
			return path[i+1:]
		}
		return path
	}
	return ""
}

// Metadata implements Module.
func (m *GoModule) Metadata() Metadata {
	return newMetadata(m.ID(), "Go project and module detection")
}

// EnabledByDefault implements Module.
func (m *GoModule) EnabledByDefault() bool { return true }

// parseGoVersion extracts "1.21.5" from "go version go1.21.5 linux/amd64".
func parseGoVersion(output string) string {
	fields := strings.Fields(output)
	if len(fields) < 3 {
		return ""
	}
	version, ok := strings.CutPrefix(fields[2], "go")
	if !ok {
		return ""
	}
	return version
}
