package template

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikemackintosh/zush/internal/preprocess"
)

func TestEngine_RendersMarkupAndExpressions(t *testing.T) {
	t.Parallel()

	e := New()
	e.SetContext(map[string]any{"user": "world"})
	require.NoError(t, e.Register("main", "(bold)hi(/bold) {{.user}}"))

	got, err := e.Render("main")

	require.NoError(t, err)
	assert.Equal(t, "\x1b[1mhi\x1b[22m world", got)
}

func TestEngine_KeepsHelperCallsIntact_ThroughPreprocessing(t *testing.T) {
	t.Parallel()

	e := New()
	e.SetContext(map[string]any{"user": "world"})
	require.NoError(t, e.Register("main", `{{color "#ff0000" .user}}`))

	got, err := e.Render("main")

	require.NoError(t, err)
	assert.Equal(t, "\x1b[38;2;255;0;0mworld\x1b[0m", got)
}

func TestEngine_OrdersNestedStyleCodes(t *testing.T) {
	t.Parallel()

	e := New()
	require.NoError(t, e.Register("main", "(bold)(fg #00ff00)Green Bold(/fg) Still Bold(/bold)"))

	got, err := e.Render("main")

	require.NoError(t, err)
	assert.Equal(t, "\x1b[1m\x1b[38;2;0;255;0mGreen Bold\x1b[39m Still Bold\x1b[22m", got)
}

func TestEngine_Register_Fails_When_TagIsLeftOpen(t *testing.T) {
	t.Parallel()

	e := New()

	err := e.Register("bad", "(bold)oops")

	require.Error(t, err)
	assert.ErrorIs(t, err, preprocess.ErrUnclosedTags)
	assert.False(t, e.Has("bad"))
}

func TestEngine_Register_Fails_On_MalformedExpression(t *testing.T) {
	t.Parallel()

	e := New()

	err := e.Register("bad", "{{if}}")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse template")
}

func TestEngine_Render_Fails_When_NameIsUnknown(t *testing.T) {
	t.Parallel()

	e := New()

	_, err := e.Render("ghost")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "ghost")
}

func TestEngine_RendersMissingKeysEmpty(t *testing.T) {
	t.Parallel()

	e := New()
	require.NoError(t, e.Register("main", "x{{.ghost}}y"))

	got, err := e.Render("main")

	require.NoError(t, err)
	assert.Equal(t, "xy", got)
}

func TestEngine_RenderString_ResolvesThemeSymbols(t *testing.T) {
	t.Parallel()

	e := New()
	e.SetSymbols(map[string]string{"arrow": "→"})
	e.SetContext(map[string]any{"user": "world"})

	got, err := e.RenderString("@arrow {{.user}}")

	require.NoError(t, err)
	assert.Equal(t, "→ world", got)
}

func TestEngine_SnapshotsColors_AtRegistrationTime(t *testing.T) {
	t.Parallel()

	e := New()
	e.SetColors(map[string]string{"accent": "#ff0000"})
	require.NoError(t, e.Register("main", "(fg accent)x(/fg)"))

	e.SetColors(map[string]string{"accent": "#00ff00"})

	got, err := e.Render("main")
	require.NoError(t, err)
	assert.Equal(t, "\x1b[38;2;255;0;0mx\x1b[39m", got)
}

func TestEngine_ExpandsConfiguredSegments(t *testing.T) {
	t.Parallel()

	e := New()
	e.AddSegments(map[string]preprocess.Segment{
		"host": {Bg: "#ff0000", Fg: "#ffffff", Content: "hi", Sep: "none"},
	})
	require.NoError(t, e.Register("main", "{{segment:host}}"))

	got, err := e.Render("main")

	require.NoError(t, err)
	assert.Equal(t, "\x1b[48;2;255;0;0m\x1b[38;2;255;255;255m hi \x1b[39m\x1b[49m", got)
}

func TestEngine_SetValue_OverridesSingleKey(t *testing.T) {
	t.Parallel()

	e := New()
	e.SetContext(map[string]any{"user": "alice", "host": "dev"})
	e.SetValue("user", "bob")
	require.NoError(t, e.Register("main", "{{.user}}@{{.host}}"))

	got, err := e.Render("main")

	require.NoError(t, err)
	assert.Equal(t, "bob@dev", got)
}

func TestEngine_Source_ReturnsRawTemplate(t *testing.T) {
	t.Parallel()

	e := New()
	require.NoError(t, e.Register("main", "(bold)x(/bold)"))

	src, ok := e.Source("main")

	assert.True(t, ok)
	assert.Equal(t, "(bold)x(/bold)", src)

	_, ok = e.Source("ghost")
	assert.False(t, ok)
}
