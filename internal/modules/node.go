package modules

import (
	"path/filepath"
	"strings"

	"github.com/tidwall/gjson"
)

// NodeModule shows Node.js projects with the package name when present.
type NodeModule struct {
	Symbol      string
	ShowVersion bool
}

// NewNodeModule returns the node detector with default settings.
func NewNodeModule() *NodeModule {
	return &NodeModule{Symbol: "⬢"}
}

// ID implements Module.
func (m *NodeModule) ID() string { return "node" }

// ShouldDisplay reports a Node.js project.
func (m *NodeModule) ShouldDisplay(ctx *Context) bool {
	return ctx.FS.HasFile("package.json") ||
		ctx.FS.HasFile(".nvmrc") ||
		ctx.FS.HasFile(".node-version") ||
		ctx.FS.HasDir("node_modules")
}

// Render emits the symbol plus the package name, or "node" when the
// manifest is absent or unreadable.
func (m *NodeModule) Render(ctx *Context) (string, error) {
	parts := []string{m.Symbol}
	if name := m.packageName(ctx); name != "" {
		parts = append(parts, name)
	} else {
		parts = append(parts, "node")
	}
	if m.ShowVersion {
		if version := probe(parseNodeVersion, "node", "--version"); version != "" {
			parts = append(parts, "v"+version)
		}
	}
	return strings.Join(parts, " "), nil
}

// packageName reads the name field from package.json.
func (m *NodeModule) packageName(ctx *Context) string {
	contents, err := ctx.FS.ReadFile(filepath.Join(ctx.Pwd, "package.json"))
	if err != nil {
		return ""
	}
	return gjson.Get(contents, "name").String()
}

// Metadata implements Module.
func (m *NodeModule) Metadata() Metadata {
	return newMetadata(m.ID(), "Node.js project detection")
}

// EnabledByDefault implements Module.
func (m *NodeModule) EnabledByDefault() bool { return true }

// parseNodeVersion extracts "18.17.0" from "v18.17.0".
func parseNodeVersion(output string) string {
	version, found := strings.CutPrefix(strings.TrimSpace(output), "v")
	if !found {
		return ""
	}
	return version
}
