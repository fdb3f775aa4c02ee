package modules

import (
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// RustModule shows Cargo projects with the crate name when present.
type RustModule struct {
	Symbol      string
	ShowVersion bool
}

// NewRustModule returns the rust detector with default settings.
func NewRustModule() *RustModule {
	return &RustModule{Symbol: "🦀"}
}

// ID implements Module.
func (m *RustModule) ID() string { return "rust" }

// ShouldDisplay reports a Rust project.
func (m *RustModule) ShouldDisplay(ctx *Context) bool {
	return ctx.FS.HasFile("Cargo.toml") ||
		ctx.FS.HasFile("Cargo.lock") ||
		ctx.FS.HasFile("rust-toolchain") ||
		ctx.FS.HasFile("rust-toolchain.toml")
}

// Render emits the symbol plus the crate name, or "rust" when the
// manifest is absent or unreadable.
func (m *RustModule) Render(ctx *Context) (string, error) {
	parts := []string{m.Symbol}
	if name := m.crateName(ctx); name != "" {
		parts = append(parts, name)
	} else {
		parts = append(parts, "rust")
	}
	if m.ShowVersion {
		if version := probe(parseRustVersion, "rustc", "--version"); version != "" {
			parts = append(parts, "v"+version)
		}
	}
	return strings.Join(parts, " "), nil
}

// crateName reads package.name from Cargo.toml.
func (m *RustModule) crateName(ctx *Context) string {
	contents, err := ctx.FS.ReadFile(filepath.Join(ctx.Pwd, "Cargo.toml"))
	if err != nil {
		return ""
	}
	var manifest struct {
		Package struct {
			Name string `toml:"name"`
		} `toml:"package"`
	}
	if err := toml.Unmarshal([]byte(contents), &manifest); err != nil {
		return ""
	}
	return manifest.Package.Name
}

// Metadata implements Module.
func (m *RustModule) Metadata() Metadata {
	return newMetadata(m.ID(), "Rust and Cargo project detection")
}

// EnabledByDefault implements Module.
func (m *RustModule) EnabledByDefault() bool { return true }

// parseRustVersion extracts "1.73.0" from "rustc 1.73.0 (cc66ad46 2023-10-03)".
func parseRustVersion(output string) string {
	fields := strings.Fields(output)
	if len(fields) < 2 {
		return ""
	}
	return fields[1]
}
