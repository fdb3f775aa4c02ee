package modules

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Module is implemented by every environment detector the prompt can show.
type Module interface {
	// ID returns the unique module identifier.
	ID() string

	// ShouldDisplay reports whether the module applies to the context.
	ShouldDisplay(ctx *Context) bool

	// Render produces the module content.
	Render(ctx *Context) (string, error)

	// Metadata describes the module.
	Metadata() Metadata

	// EnabledByDefault reports whether the module starts enabled.
	EnabledByDefault() bool
}

// Metadata describes a module for listings and debug output.
type Metadata struct {
	Name        string
	Description string
}

// newMetadata derives the display name from the module id.
func newMetadata(id, description string) Metadata {
	return Metadata{
		Name:        cases.Title(language.English).String(id),
		Description: description,
	}
}

// Context carries the sandboxed view of the environment handed to modules.
type Context struct {
	// Pwd is the working directory the prompt renders for.
	Pwd string

	// Home is the user home directory.
	Home string

	// Env is a read-only snapshot of the process environment.
	Env map[string]string

	// FS restricts module filesystem access to Pwd and Home.
	FS *SandboxedFS
}

// NewContext builds a context for the current process: working directory,
// home directory and a snapshot of the environment.
func NewContext() (*Context, error) {
	pwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		home = "/"
	}
	env := make(map[string]string)
	for _, kv := range os.Environ() {
		if key, value, ok := strings.Cut(kv, "="); ok {
			env[key] = value
		}
	}
	return &Context{Pwd: pwd, Home: home, Env: env, FS: NewSandboxedFS(pwd, home)}, nil
}

// Getenv returns the value of key in the snapshot, or "".
func (c *Context) Getenv(key string) string {
	return c.Env[key]
}

// HasEnv reports whether key is present in the snapshot.
func (c *Context) HasEnv(key string) bool {
	_, ok := c.Env[key]
	return ok
}

// commandOutput runs an external probe command. Replaced in tests.
var commandOutput = func(name string, args ...string) (string, error) {
	out, err := exec.Command(name, args...).Output()
	return string(out), err
}

// probe runs a command and extracts a value from its output with parse.
// Any failure yields "".
func probe(parse func(string) string, name string, args ...string) string {
	out, err := commandOutput(name, args...)
	if err != nil {
		return ""
	}
	return parse(out)
}
