package modules

import (
	"path/filepath"
	"strings"
)

// RubyModule shows Ruby projects, using the directory name for gems.
type RubyModule struct {
	Symbol      string
	ShowVersion bool
}

// NewRubyModule returns the ruby detector with default settings.
func NewRubyModule() *RubyModule {
	return &RubyModule{Symbol: "💎", ShowVersion: true}
}

// ID implements Module.
func (m *RubyModule) ID() string { return "ruby" }

// ShouldDisplay reports a Ruby project.
func (m *RubyModule) ShouldDisplay(ctx *Context) bool {
	return ctx.FS.HasFile("Gemfile") ||
		ctx.FS.HasFile("Rakefile") ||
		ctx.FS.HasFile(".ruby-version") ||
		ctx.FS.HasFile(".ruby-gemset") ||
		ctx.FS.HasFile("config.ru") ||
		ctx.FS.HasFile("Gemfile.lock")
}

// Render emits the symbol plus the gem name, or "ruby" when the project
// is not a gem.
func (m *RubyModule) Render(ctx *Context) (string, error) {
	parts := []string{m.Symbol}
	if name := m.gemName(ctx); name != "" {
		parts = append(parts, name)
	} else {
		parts = append(parts, "ruby")
	}
	if m.ShowVersion {
		if version := probe(parseRubyVersion, "ruby", "--version"); version != "" {
			parts = append(parts, "v"+version)
		}
	}
	return strings.Join(parts, " "), nil
}

// gemName returns the directory name when the Gemfile defers to a gemspec.
func (m *RubyModule) gemName(ctx *Context) string {
	contents, err := ctx.FS.ReadFile(filepath.Join(ctx.Pwd, "Gemfile"))
	if err != nil {
		return ""
	}
	for _, line := range strings.Split(contents, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "gemspec") {
			return filepath.Base(ctx.Pwd)
		}
	}
	return ""
}

// Metadata implements Module.
func (m *RubyModule) Metadata() Metadata {
	return newMetadata(m.ID(), "Ruby project and gem detection")
}

// EnabledByDefault implements Module.
func (m *RubyModule) EnabledByDefault() bool { return true }

// parseRubyVersion extracts "3.2.2" from
// "ruby 3.2.2p20 (2023-03-30 revision e51014f9c0) [x86_64-linux]".
func parseRubyVersion(output string) string {
	fields := strings.Fields(output)
	if len(fields) < 2 {
		return ""
	}
	version, _, _ := strings.Cut(fields[1], "p")
	return version
}
