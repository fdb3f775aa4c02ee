// Package prompt renders a complete shell prompt. One render resolves
// the theme and config sources, registers their templates, assembles
// the context from the environment and the collaborating subsystems
// (git, environment modules), composes the first line from the left and
// right sub-templates, renders the requested template, and formats the
// result for the shell that asked.
//
// A render never fails outright. Templates that cannot be registered
// fall back to the built-in set; a template that cannot be rendered
// falls back to a hard-coded prompt built straight from the
// environment. Both tiers leave a diagnostic on stderr, the first
// suppressible with the quiet flag so a transient re-render does not
// repeat it.
package prompt

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/mikemackintosh/zush/internal/config"
	"github.com/mikemackintosh/zush/internal/gitinfo"
	"github.com/mikemackintosh/zush/internal/modules"
	"github.com/mikemackintosh/zush/internal/template"
	"github.com/mikemackintosh/zush/pkg/buffer"
	"github.com/mikemackintosh/zush/pkg/render"
)

// Options carries one render request.
type Options struct {
	// Template names the template to render; empty means "main", the
	// only template that gets a composed first_line.
	Template string
	// Format selects the output formatter: zsh, raw or debug.
	Format string
	// ConfigPath overrides the config file lookup when non-empty.
	ConfigPath string
	// Theme is the --theme flag value: a theme name, or a path when it
	// contains a slash or dot.
	Theme string
	// Quiet suppresses the template-loading diagnostic.
	Quiet bool
	// ContextJSON is a JSON object of context values supplied by the
	// shell hook. Invalid JSON is ignored.
	ContextJSON string
	// ExitCode is the previous command's exit status.
	ExitCode int
	// ExecutionTime is the previous command's runtime in seconds.
	ExecutionTime float64
}

// Renderer renders prompts. Collaborators are fields so tests can
// substitute them; New wires the production set.
type Renderer struct {
	Git     gitinfo.Collector
	Modules *modules.Registry
	Stderr  io.Writer
	// Width queries the live terminal size. Reporting not-ok falls back
	// to the context's terminal_width, then 80.
	Width func() (width int, ok bool)
}

// New returns a renderer wired to the real terminal, git, and module
// detection.
func New() *Renderer {
	return &Renderer{
		Git:     gitinfo.NewPorcelain(),
		Modules: modules.NewRegistry(),
		Stderr:  os.Stderr,
		Width:   stdoutWidth,
	}
}

func stdoutWidth() (int, bool) {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 0, false
	}
	return width, true
}

// Render produces the formatted prompt text for opts.
func (r *Renderer) Render(opts Options) string {
	if opts.Template == "" {
		opts.Template = "main"
	}

	configText, configOK := config.LoadFile(config.ConfigPath(opts.ConfigPath))
	var cfg *config.Source
	if configOK {
		cfg, _ = config.Parse(configText)
	}

	themeText, _, themeOK := config.ResolveTheme(opts.Theme, cfg)

	// The theme supplies colors, symbols, segments and templates when it
	// loads; otherwise the main config file plays that role directly.
	activeText := ""
	switch {
	case themeOK:
		activeText = themeText
	case configOK:
		activeText = configText
	}
	var active *config.Source
	if activeText != "" {
		active, _ = config.Parse(activeText)
	}

	engine := template.New()
	engine.SetColors(active.Colors())
	engine.SetSymbols(active.Symbols())
	engine.AddSegments(active.Segments())

	if activeText != "" {
		if err := registerConfigured(engine, activeText); err != nil {
			r.reportLoadError(err, opts.Quiet)
			registerDefaults(engine)
		}
	} else {
		registerDefaults(engine)
	}

	ctx := r.buildContext(opts)
	ctx["colors"], ctx["symbols"] = paletteValues(active, cfg, themeOK && configOK)

	width := r.terminalWidth(ctx)
	ctx["terminal_width"] = width

	engine.SetContext(ctx)
	first := ""
	if opts.Template == "main" {
		first = composeFirstLine(engine, width)
	}
	engine.SetValue("first_line", first)

	output, err := engine.Render(opts.Template)
	if err != nil {
		r.reportRenderError(err)
		output = fallbackPrompt()
	}

	return render.ForFormat(opts.Format, opts.Template).Format(output)
}

// registerConfigured registers every template the theme or config text
// declares. The text is re-parsed here so a malformed document surfaces
// as a loading error even though the tolerant extractors already ran.
func registerConfigured(engine *template.Engine, text string) error {
	src, err := config.Parse(text)
	if err != nil {
		return err
	}
	templates, err := src.Templates()
	if err != nil {
		return err
	}
	for name, source := range templates {
		if err := engine.Register(name, source); err != nil {
			return err
		}
	}
	return nil
}

// registerDefaults installs the built-in template set. The built-ins
// are valid markup; if registration ever failed anyway, the render step
// would catch the missing template and fall back harder.
func registerDefaults(engine *template.Engine) {
	for name, source := range config.DefaultTemplates() {
		_ = engine.Register(name, source)
	}
}

// paletteValues returns the colors and symbols context maps: the active
// source's tables, config [overrides] on top when a theme and a config
// are both present, and the built-in defaults when a table ends up
// empty.
func paletteValues(active, cfg *config.Source, applyOverrides bool) (map[string]string, map[string]string) {
	colors := active.Colors()
	symbols := active.Symbols()
	if applyOverrides {
		cfg.ApplyOverrides(colors, symbols)
	}
	if len(colors) == 0 {
		colors = config.DefaultColors()
	}
	if len(symbols) == 0 {
		symbols = config.DefaultSymbols()
	}
	return colors, symbols
}

func (r *Renderer) terminalWidth(ctx map[string]any) int {
	if r.Width != nil {
		if width, ok := r.Width(); ok {
			return width
		}
	}
	return contextInt(ctx, "terminal_width", 80)
}

// composeFirstLine pre-renders the left and right sub-templates and
// joins them on one line: padded apart to the terminal width when they
// fit, plainly concatenated when they do not. A failed right render or
// a blank right side yields the left text alone; a failed left render
// yields an empty line.
func composeFirstLine(engine *template.Engine, width int) string {
	left, leftErr := engine.Render("left")
	right, rightErr := engine.Render("right")

	switch {
	case leftErr == nil && rightErr == nil && strings.TrimSpace(right) != "":
		total := buffer.VisibleWidth(left) + buffer.VisibleWidth(right)
		if total >= width {
			return left + right
		}
		return left + strings.Repeat(" ", width-total) + right
	case leftErr == nil:
		return left
	default:
		return ""
	}
}

func (r *Renderer) reportLoadError(err error, quiet bool) {
	if quiet {
		return
	}
	fmt.Fprintf(r.Stderr, "\n\x1b[38;2;243;139;168m\x1b[1m✖ Template Loading Error\x1b[22m\x1b[39m\n")
	fmt.Fprintf(r.Stderr, "\x1b[38;2;249;226;175m%v\x1b[39m\n\n", err)
}

// reportRenderError is never quiet-gated: it explains why the fallback
// prompt replaced the configured one.
func (r *Renderer) reportRenderError(err error) {
	fmt.Fprintf(r.Stderr, "\n\x1b[38;2;243;139;168m\x1b[1m✖ Template Rendering Error\x1b[22m\x1b[39m\n")
	fmt.Fprintf(r.Stderr, "\x1b[38;2;249;226;175m%v\x1b[39m\n\n", err)
}

// fallbackPrompt builds a prompt straight from the environment,
// bypassing the template system entirely.
func fallbackPrompt() string {
	user, ok := os.LookupEnv("USER")
	if !ok {
		user = "user"
	}
	pwdShort := "~"
	if pwd, ok := os.LookupEnv("PWD"); ok {
		pwdShort = pwd
		if home, set := os.LookupEnv("HOME"); set && home != "" {
			pwdShort = strings.ReplaceAll(pwd, home, "~")
		}
	}
	return "\x1b[38;2;137;180;250m" + user + "\x1b[39m in \x1b[38;2;189;147;249m" + pwdShort +
		"\x1b[39m\n\x1b[38;2;243;139;168m❯\x1b[39m "
}
