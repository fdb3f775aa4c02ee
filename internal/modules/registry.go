package modules

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Output is one rendered module.
type Output struct {
	ID      string
	Content string
}

// Registry holds the available modules and renders the enabled ones.
type Registry struct {
	order   []string
	index   map[string]Module
	enabled map[string]bool

	// Stderr receives module render errors. Defaults to os.Stderr.
	Stderr io.Writer
}

// NewRegistry builds a registry with the built-in modules registered
// and enabled.
func NewRegistry() *Registry {
	r := &Registry{
		index:   make(map[string]Module),
		enabled: make(map[string]bool),
		Stderr:  os.Stderr,
	}
	r.Register(NewPythonModule())
	r.Register(NewNodeModule())
	r.Register(NewGoModule())
	r.Register(NewRustModule())
	r.Register(NewRubyModule())
	r.Register(NewDockerModule())
	return r
}

// Register adds a module. Modules render in registration order.
func (r *Registry) Register(m Module) {
	id := m.ID()
	if _, exists := r.index[id]; !exists {
		r.order = append(r.order, id)
	}
	r.index[id] = m
	if m.EnabledByDefault() {
		r.enabled[id] = true
	}
}

// Enable turns a registered module on. Unknown ids are ignored.
func (r *Registry) Enable(id string) {
	if _, ok := r.index[id]; ok {
		r.enabled[id] = true
	}
}

// Disable turns a module off.
func (r *Registry) Disable(id string) {
	delete(r.enabled, id)
}

// Get returns a module by id.
func (r *Registry) Get(id string) (Module, bool) {
	m, ok := r.index[id]
	return m, ok
}

// Available lists all registered module ids in registration order.
func (r *Registry) Available() []string {
	return append([]string(nil), r.order...)
}

// Enabled lists the enabled module ids in registration order.
func (r *Registry) Enabled() []string {
	ids := make([]string, 0, len(r.enabled))
	for _, id := range r.order {
		if r.enabled[id] {
			ids = append(ids, id)
		}
	}
	return ids
}

// RenderAll renders every enabled module that wants to display, in
// registration order. Render failures are written to Stderr and the
// module is skipped.
func (r *Registry) RenderAll(ctx *Context) []Output {
	if envTruthy(ctx.Getenv("ZUSH_DISABLE_MODULES")) {
		return nil
	}
	var outputs []Output
	for _, id := range r.order {
		if !r.enabled[id] {
			continue
		}
		if envTruthy(ctx.Getenv("ZUSH_DISABLE_" + strings.ToUpper(id))) {
			continue
		}
		m := r.index[id]
		if !m.ShouldDisplay(ctx) {
			continue
		}
		content, err := m.Render(ctx)
		if err != nil {
			fmt.Fprintf(r.Stderr, "Module '%s' error: %v\n", id, err)
			continue
		}
		outputs = append(outputs, Output{ID: id, Content: content})
	}
	return outputs
}

// ContextValues converts outputs into the shape templates consume.
func ContextValues(outputs []Output) []map[string]any {
	values := make([]map[string]any, 0, len(outputs))
	for _, out := range outputs {
		values = append(values, map[string]any{"id": out.ID, "content": out.Content})
	}
	return values
}

func envTruthy(value string) bool {
	return value == "1" || strings.EqualFold(value, "true")
}
