// Package template evaluates prompt templates. A template is markup
// (segments, @symbols, style tags) layered over Go text/template
// expressions; registration runs the markup preprocessor and parses the
// result, so every registration error carries the offending token and
// rendering is a plain execute over the context map.
package template

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/mikemackintosh/zush/internal/preprocess"
)

// Engine holds compiled templates and the context they render against.
// It is not safe for concurrent use; a prompt render is single-threaded.
type Engine struct {
	templates map[string]*template.Template
	sources   map[string]string
	colors    map[string]string
	symbols   map[string]string
	segments  map[string]preprocess.Segment
	data      map[string]any
}

// New returns an empty engine with all helpers registered.
func New() *Engine {
	return &Engine{
		templates: make(map[string]*template.Template),
		sources:   make(map[string]string),
		colors:    make(map[string]string),
		symbols:   make(map[string]string),
		segments:  make(map[string]preprocess.Segment),
		data:      make(map[string]any),
	}
}

// SetColors installs the theme color table consulted during
// preprocessing. It affects templates registered afterwards only.
func (e *Engine) SetColors(colors map[string]string) {
	e.colors = colors
}

// SetSymbols installs the theme symbol table used for @name shortcuts.
func (e *Engine) SetSymbols(symbols map[string]string) {
	e.symbols = symbols
}

// AddSegments merges theme-supplied segment definitions into the table
// consulted when a template references {{segment:name}}.
func (e *Engine) AddSegments(defs map[string]preprocess.Segment) {
	for name, def := range defs {
		e.segments[name] = def
	}
}

// SetContext replaces the render context.
func (e *Engine) SetContext(data map[string]any) {
	e.data = data
}

// SetValue adds or overwrites one context key.
func (e *Engine) SetValue(key string, value any) {
	e.data[key] = value
}

// Register preprocesses and compiles a template under name. A markup
// error (unterminated block, unknown symbol, unclosed tag) or a
// text/template parse error fails the registration; previously
// registered templates are unaffected.
func (e *Engine) Register(name, source string) error {
	processed, err := e.preprocess(source)
	if err != nil {
		return fmt.Errorf("register template %q: %w", name, err)
	}
	tmpl, err := template.New(name).Option("missingkey=zero").Funcs(helpers).Parse(processed)
	if err != nil {
		return fmt.Errorf("parse template %q: %w", name, err)
	}
	e.templates[name] = tmpl
	e.sources[name] = source
	return nil
}

// Render executes a registered template against the current context.
func (e *Engine) Render(name string) (string, error) {
	tmpl, ok := e.templates[name]
	if !ok {
		return "", fmt.Errorf("template %q is not registered", name)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, e.data); err != nil {
		return "", fmt.Errorf("render template %q: %w", name, err)
	}
	return scrub(buf.String()), nil
}

// RenderString preprocesses, compiles and executes source in one step,
// without registering it.
func (e *Engine) RenderString(source string) (string, error) {
	processed, err := e.preprocess(source)
	if err != nil {
		return "", err
	}
	tmpl, err := template.New("inline").Option("missingkey=zero").Funcs(helpers).Parse(processed)
	if err != nil {
		return "", fmt.Errorf("parse template: %w", err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, e.data); err != nil {
		return "", fmt.Errorf("render template: %w", err)
	}
	return scrub(buf.String()), nil
}

// Has reports whether a template was registered under name.
func (e *Engine) Has(name string) bool {
	_, ok := e.templates[name]
	return ok
}

// Source returns the raw, unprocessed source a template was registered
// with, for diagnostics.
func (e *Engine) Source(name string) (string, bool) {
	src, ok := e.sources[name]
	return src, ok
}

func (e *Engine) preprocess(source string) (string, error) {
	pre := preprocess.New(e.colors, e.symbols)
	pre.AddSegments(e.segments)
	return pre.Process(source)
}

// scrub removes the text/template placeholder printed for nil context
// values. Missing keys render empty, never an error and never literal
// "<no value>" noise in the prompt.
func scrub(s string) string {
	return strings.ReplaceAll(s, "<no value>", "")
}
