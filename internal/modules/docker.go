package modules

import "strings"

// DockerModule shows Docker projects and which Docker markers are present.
type DockerModule struct {
	Symbol      string
	ShowContext bool
}

// NewDockerModule returns the docker detector with default settings.
func NewDockerModule() *DockerModule {
	return &DockerModule{Symbol: "🐳"}
}

// ID implements Module.
func (m *DockerModule) ID() string { return "docker" }

// ShouldDisplay reports a Docker project.
func (m *DockerModule) ShouldDisplay(ctx *Context) bool {
	return ctx.FS.HasFile("Dockerfile") ||
		ctx.FS.HasFile("docker-compose.yml") ||
		ctx.FS.HasFile("docker-compose.yaml") ||
		ctx.FS.HasFile(".dockerignore") ||
		ctx.FS.HasDir(".devcontainer")
}

// Render emits the symbol plus the detected markers joined with "+",
// or "docker" when only .dockerignore is present.
func (m *DockerModule) Render(ctx *Context) (string, error) {
	parts := []string{m.Symbol}
	if files := m.detectFiles(ctx); len(files) > 0 {
		parts = append(parts, strings.Join(files, "+"))
	} else {
		parts = append(parts, "docker")
	}
	if m.ShowContext {
		if name := probe(parseDockerContext, "docker", "context", "show"); name != "" {
			parts = append(parts, "("+name+")")
		}
	}
	return strings.Join(parts, " "), nil
}

// detectFiles lists the Docker markers present in the directory.
func (m *DockerModule) detectFiles(ctx *Context) []string {
	var files []string
	if ctx.FS.HasFile("Dockerfile") {
		files = append(files, "Dockerfile")
	}
	if ctx.FS.HasFile("docker-compose.yml") || ctx.FS.HasFile("docker-compose.yaml") {
		files = append(files, "compose")
	}
	if ctx.FS.HasDir(".devcontainer") {
		files = append(files, "devcontainer")
	}
	return files
}

// Metadata implements Module.
func (m *DockerModule) Metadata() Metadata {
	return newMetadata(m.ID(), "Docker project and context detection")
}

// EnabledByDefault implements Module.
func (m *DockerModule) EnabledByDefault() bool { return true }

// parseDockerContext hides the default context name.
func parseDockerContext(output string) string {
	name := strings.TrimSpace(output)
	if name == "default" {
		return ""
	}
	return name
}
