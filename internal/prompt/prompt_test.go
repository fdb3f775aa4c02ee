package prompt

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikemackintosh/zush/internal/gitinfo"
)

type stubCollector struct {
	status *gitinfo.Status
	ok     bool
}

func (s stubCollector) Status(string) (*gitinfo.Status, bool) { return s.status, s.ok }

// isolateEnv pins every environment variable the renderer consults so
// the host machine's config cannot leak into assertions.
func isolateEnv(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	t.Setenv("USER", "zed")
	t.Setenv("PWD", filepath.Join(home, "work"))
	for _, name := range []string{"ZUSH_THEME", "SSH_CONNECTION", "SSH_TTY", "HOST", "HOSTNAME"} {
		t.Setenv(name, "")
		os.Unsetenv(name)
	}
	return home
}

func testRenderer(stderr io.Writer, width int) *Renderer {
	return &Renderer{
		Git:    stubCollector{},
		Stderr: stderr,
		Width:  func() (int, bool) { return width, true },
	}
}

func writeTheme(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "theme.toml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestRenderer_UsesBuiltinTemplates_When_NothingConfigured(t *testing.T) {
	isolateEnv(t)
	var stderr bytes.Buffer
	r := testRenderer(&stderr, 80)

	out := r.Render(Options{Format: "raw"})

	assert.Contains(t, out, "zed")
	assert.Contains(t, out, "~/work")
	assert.Contains(t, out, "❯")
	assert.Empty(t, stderr.String())
}

func TestRenderer_ComposesFirstLine_When_MainTemplate(t *testing.T) {
	isolateEnv(t)
	theme := writeTheme(t, `[templates]
main = "{{.first_line}}|"
left = "L"
right = "R"
`)
	r := testRenderer(io.Discard, 10)

	out := r.Render(Options{Template: "main", Format: "raw", Theme: theme})

	assert.Equal(t, "L        R|", out)
}

func TestRenderer_ConcatenatesSides_When_LineOverflows(t *testing.T) {
	isolateEnv(t)
	theme := writeTheme(t, `[templates]
main = "{{.first_line}}|"
left = "LL"
right = "RR"
`)
	r := testRenderer(io.Discard, 3)

	out := r.Render(Options{Template: "main", Format: "raw", Theme: theme})

	assert.Equal(t, "LLRR|", out)
}

func TestRenderer_UsesLeftAlone_When_RightBlank(t *testing.T) {
	isolateEnv(t)
	theme := writeTheme(t, `[templates]
main = "{{.first_line}}|"
left = "L"
right = "   "
`)
	r := testRenderer(io.Discard, 10)

	out := r.Render(Options{Template: "main", Format: "raw", Theme: theme})

	assert.Equal(t, "L|", out)
}

func TestRenderer_LeavesFirstLineEmpty_When_NotMainTemplate(t *testing.T) {
	isolateEnv(t)
	theme := writeTheme(t, `[templates]
main = "{{.first_line}}|"
left = "L"
right = "R"
transient = "[{{.first_line}}]"
`)
	r := testRenderer(io.Discard, 10)

	out := r.Render(Options{Template: "transient", Format: "raw", Theme: theme})

	assert.Equal(t, "[]", out)
}

func TestRenderer_FallsBackToBuiltins_When_MarkupBroken(t *testing.T) {
	isolateEnv(t)
	theme := writeTheme(t, `[templates]
main = "(bold)never closed"
`)
	var stderr bytes.Buffer
	r := testRenderer(&stderr, 80)

	out := r.Render(Options{Format: "raw", Theme: theme})

	assert.Contains(t, stderr.String(), "Template Loading Error")
	assert.Contains(t, out, "zed")
	assert.Contains(t, out, "❯")
}

func TestRenderer_SuppressesLoadDiagnostic_When_Quiet(t *testing.T) {
	isolateEnv(t)
	theme := writeTheme(t, `[templates]
main = "(bold)never closed"
`)
	var stderr bytes.Buffer
	r := testRenderer(&stderr, 80)

	out := r.Render(Options{Format: "raw", Theme: theme, Quiet: true})

	assert.Empty(t, stderr.String())
	assert.Contains(t, out, "❯")
}

func TestRenderer_FallsBackToBuiltins_When_ThemeTOMLMalformed(t *testing.T) {
	isolateEnv(t)
	theme := writeTheme(t, "this is not toml [")
	var stderr bytes.Buffer
	r := testRenderer(&stderr, 80)

	out := r.Render(Options{Format: "raw", Theme: theme})

	assert.Contains(t, stderr.String(), "Template Loading Error")
	assert.Contains(t, out, "❯")
}

func TestRenderer_EmitsHardcodedPrompt_When_TemplateMissing(t *testing.T) {
	isolateEnv(t)
	// Valid TOML, no [templates]: registration succeeds with nothing
	// registered and the render step falls through to the last resort.
	theme := writeTheme(t, `[colors]
blue = "#7aa2f7"
`)
	var stderr bytes.Buffer
	r := testRenderer(&stderr, 80)

	out := r.Render(Options{Format: "raw", Theme: theme})

	assert.Contains(t, stderr.String(), "Template Rendering Error")
	assert.Equal(t,
		"\x1b[38;2;137;180;250mzed\x1b[39m in \x1b[38;2;189;147;249m~/work\x1b[39m\n"+
			"\x1b[38;2;243;139;168m❯\x1b[39m ",
		out)
}

func TestRenderer_AlwaysReportsRenderFailure_When_Quiet(t *testing.T) {
	isolateEnv(t)
	theme := writeTheme(t, `[colors]
blue = "#7aa2f7"
`)
	var stderr bytes.Buffer
	r := testRenderer(&stderr, 80)

	r.Render(Options{Format: "raw", Theme: theme, Quiet: true})

	assert.Contains(t, stderr.String(), "Template Rendering Error")
}

func TestRenderer_WrapsEscapes_When_ZshFormat(t *testing.T) {
	isolateEnv(t)
	theme := writeTheme(t, `[templates]
main = "(fg #ff0000)x(/fg)"
`)
	r := testRenderer(io.Discard, 80)

	out := r.Render(Options{Format: "zsh", Theme: theme})

	assert.Equal(t, "%{\x1b[38;2;255;0;0m%}x%{\x1b[39m%}", out)
}

func TestRenderer_DumpsDiagnostics_When_DebugFormat(t *testing.T) {
	isolateEnv(t)
	theme := writeTheme(t, `[templates]
main = "hi"
`)
	r := testRenderer(io.Discard, 80)

	out := r.Render(Options{Template: "main", Format: "debug", Theme: theme})

	assert.Equal(t, "Template: main\nOutput: \"hi\"\nVisible width: 2\n", out)
}

func TestRenderer_AppliesConfigOverrides_When_ThemeAndConfigPresent(t *testing.T) {
	home := isolateEnv(t)
	configDir := filepath.Join(home, ".config", "zush")
	require.NoError(t, os.MkdirAll(configDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.toml"), []byte(`[overrides]
"colors.accent" = "#112233"
`), 0o644))
	theme := writeTheme(t, `[colors]
accent = "#ffffff"

[templates]
main = "{{.colors.accent}}"
`)
	r := testRenderer(io.Discard, 80)

	out := r.Render(Options{Format: "raw", Theme: theme})

	assert.Equal(t, "#112233", out)
}
