package prompt

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mikemackintosh/zush/internal/gitinfo"
)

func TestRenderer_MergesContextJSON_When_Provided(t *testing.T) {
	isolateEnv(t)
	theme := writeTheme(t, `[templates]
main = "{{.custom}}:{{.jobs}}"
`)
	r := testRenderer(io.Discard, 80)

	out := r.Render(Options{
		Format:      "raw",
		Theme:       theme,
		ContextJSON: `{"custom": "x", "jobs": 3}`,
	})

	assert.Equal(t, "x:3", out)
}

func TestRenderer_IgnoresContextJSON_When_Invalid(t *testing.T) {
	isolateEnv(t)
	theme := writeTheme(t, `[templates]
main = "{{.jobs}}"
`)
	r := testRenderer(io.Discard, 80)

	out := r.Render(Options{Format: "raw", Theme: theme, ContextJSON: "{broken"})

	assert.Equal(t, "0", out)
}

func TestRenderer_ExposesCommandStatus_When_Rendering(t *testing.T) {
	isolateEnv(t)
	theme := writeTheme(t, `[templates]
main = "{{.exit_code}} {{.execution_time_ms}} {{.execution_time_s}}"
`)
	r := testRenderer(io.Discard, 80)

	out := r.Render(Options{
		Format:        "raw",
		Theme:         theme,
		ExitCode:      2,
		ExecutionTime: 1.5,
	})

	assert.Equal(t, "2 1500 1.5", out)
}

func TestRenderer_OverwritesGitKeys_When_InsideRepository(t *testing.T) {
	isolateEnv(t)
	theme := writeTheme(t, `[templates]
main = "{{.git_branch}}+{{.git_modified}}"
`)
	r := &Renderer{
		Git: stubCollector{
			status: &gitinfo.Status{Branch: "main", Modified: 2},
			ok:     true,
		},
		Stderr: io.Discard,
		Width:  func() (int, bool) { return 80, true },
	}

	out := r.Render(Options{
		Format:      "raw",
		Theme:       theme,
		ContextJSON: `{"git_branch": "stale", "git_modified": 9}`,
	})

	assert.Equal(t, "main+2", out)
}

func TestRenderer_DefaultsGitKeys_When_OutsideRepository(t *testing.T) {
	isolateEnv(t)
	theme := writeTheme(t, `[templates]
main = "[{{.git_branch}}]{{.git_staged}}{{.git_conflicted}}"
`)
	r := testRenderer(io.Discard, 80)

	out := r.Render(Options{Format: "raw", Theme: theme})

	assert.Equal(t, "[]00", out)
}

func TestRenderer_DetectsSSH_When_EnvSet(t *testing.T) {
	isolateEnv(t)
	t.Setenv("SSH_CONNECTION", "10.0.0.1 22")
	theme := writeTheme(t, `[templates]
main = "{{.is_ssh}}"
`)
	r := testRenderer(io.Discard, 80)

	assert.Equal(t, "true", r.Render(Options{Format: "raw", Theme: theme}))
}

func TestRenderer_PrefersHostEnv_When_Set(t *testing.T) {
	isolateEnv(t)
	t.Setenv("HOST", "workbox")
	theme := writeTheme(t, `[templates]
main = "{{.host}}"
`)
	r := testRenderer(io.Discard, 80)

	assert.Equal(t, "workbox", r.Render(Options{Format: "raw", Theme: theme}))
}

func TestRenderer_UsesLiveWidth_When_Available(t *testing.T) {
	isolateEnv(t)
	theme := writeTheme(t, `[templates]
main = "{{.terminal_width}}"
`)
	r := testRenderer(io.Discard, 120)

	out := r.Render(Options{
		Format:      "raw",
		Theme:       theme,
		ContextJSON: `{"terminal_width": 33}`,
	})

	assert.Equal(t, "120", out)
}

func TestRenderer_FallsBackToContextWidth_When_QueryFails(t *testing.T) {
	isolateEnv(t)
	theme := writeTheme(t, `[templates]
main = "{{.terminal_width}}"
`)
	r := testRenderer(io.Discard, 0)
	r.Width = func() (int, bool) { return 0, false }

	out := r.Render(Options{
		Format:      "raw",
		Theme:       theme,
		ContextJSON: `{"terminal_width": 33}`,
	})
	assert.Equal(t, "33", out)

	out = r.Render(Options{Format: "raw", Theme: theme})
	assert.Equal(t, "80", out)
}

func TestRenderer_ShortensPwd_When_UnderHome(t *testing.T) {
	isolateEnv(t)
	theme := writeTheme(t, `[templates]
main = "{{.pwd_short}}"
`)
	r := testRenderer(io.Discard, 80)

	assert.Equal(t, "~/work", r.Render(Options{Format: "raw", Theme: theme}))
}

func TestRenderer_DerivesPwdShort_When_OnlyPwdInContext(t *testing.T) {
	isolateEnv(t)
	theme := writeTheme(t, `[templates]
main = "{{.pwd_short}}"
`)
	r := testRenderer(io.Discard, 80)

	out := r.Render(Options{
		Format:      "raw",
		Theme:       theme,
		ContextJSON: `{"pwd": "/srv/deploy"}`,
	})

	assert.Equal(t, "/srv/deploy", out)
}

func TestShortenPath_KeepsTilde_When_AlreadyShortened(t *testing.T) {
	t.Setenv("HOME", "/home/alex")

	assert.Equal(t, "~/dev", shortenPath("~/dev"))
	assert.Equal(t, "~/dev/api", shortenPath("/home/alex/dev/api"))
	assert.Equal(t, "/etc", shortenPath("/etc"))
}

func TestContextInt_CoercesNumericShapes_When_Read(t *testing.T) {
	t.Parallel()

	ctx := map[string]any{
		"a": 7,
		"b": int64(8),
		"c": float64(9),
		"d": "not a number",
	}
	assert.Equal(t, 7, contextInt(ctx, "a", 80))
	assert.Equal(t, 8, contextInt(ctx, "b", 80))
	assert.Equal(t, 9, contextInt(ctx, "c", 80))
	assert.Equal(t, 80, contextInt(ctx, "d", 80))
	assert.Equal(t, 80, contextInt(ctx, "missing", 80))
}
