package shell

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScript_ReturnsZshIntegration(t *testing.T) {
	t.Parallel()

	script, err := Script("zsh")
	require.NoError(t, err)
	require.NotEmpty(t, script)

	assert.True(t, strings.HasPrefix(script, "#!/usr/bin/env zsh"), "script should start with a zsh shebang")
}

func TestScript_RegistersPromptHooks(t *testing.T) {
	t.Parallel()

	script, err := Script("zsh")
	require.NoError(t, err)

	assert.Contains(t, script, "add-zsh-hook preexec zush_preexec")
	assert.Contains(t, script, "add-zsh-hook precmd zush_precmd")
	assert.Contains(t, script, "setopt PROMPT_SUBST")
	assert.Contains(t, script, "PROMPT='$(zush_prompt)'")
	assert.Contains(t, script, "RPROMPT=''")
	assert.Contains(t, script, "TRAPWINCH()")
}

func TestScript_BindsHistoryWidget(t *testing.T) {
	t.Parallel()

	script, err := Script("zsh")
	require.NoError(t, err)

	assert.Contains(t, script, "zle -N zush-history-widget")
	assert.Contains(t, script, "bindkey '^R' zush-history-widget")
	assert.Contains(t, script, "history search --tui")
	assert.Contains(t, script, "setopt SHARE_HISTORY")
}

func TestScript_RecordsCommandsInBackground(t *testing.T) {
	t.Parallel()

	script, err := Script("zsh")
	require.NoError(t, err)

	assert.Contains(t, script, "history add")
	assert.Contains(t, script, "--session \"$ZUSH_SESSION_ID\"")
	assert.Contains(t, script, "&!", "history writes must not block the prompt")
}

func TestScript_ExposesThemeSwitcher(t *testing.T) {
	t.Parallel()

	script, err := Script("zsh")
	require.NoError(t, err)

	assert.Contains(t, script, "zush-theme()")
	assert.Contains(t, script, "export ZUSH_THEME")
	assert.Contains(t, script, "compdef _zush_theme_completion zush-theme")
}

func TestScript_Fails_When_ShellUnknown(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		shell string
	}{
		{name: "bash", shell: "bash"},
		{name: "fish", shell: "fish"},
		{name: "empty", shell: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			script, err := Script(tt.shell)
			require.Error(t, err)
			assert.Empty(t, script)
			assert.Contains(t, err.Error(), "not supported")
			assert.Contains(t, err.Error(), "zsh", "the error should point at the supported shell")
		})
	}
}
