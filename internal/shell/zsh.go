package shell

// zshScript is the zsh integration. It must stay self-contained: users
// eval it straight from .zshrc, so it cannot assume any zush state
// beyond the binary being on PATH (or named by ZUSH_BIN).
const zshScript = `#!/usr/bin/env zsh
# zush integration for zsh

zmodload zsh/datetime

# Runtime knobs. Export these before sourcing this file; visual
# appearance (colors, symbols, templates) lives in the theme TOML files.

# ZUSH_BIN - path to the zush binary, resolved via $PATH by default.
ZUSH_BIN="${ZUSH_BIN:-zush}"

# ZUSH_THEME - active theme name. Leave empty to use the config file's
# theme key. Switch at runtime with zush-theme <name>.
typeset -g ZUSH_THEME="${ZUSH_THEME:-}"

# ZUSH_PROMPT_NEWLINE_BEFORE / ZUSH_PROMPT_NEWLINE_AFTER - blank line
# around the prompt. Before defaults on, after defaults off.
typeset -g ZUSH_PROMPT_NEWLINE_BEFORE="${ZUSH_PROMPT_NEWLINE_BEFORE:-1}"
typeset -g ZUSH_PROMPT_NEWLINE_AFTER="${ZUSH_PROMPT_NEWLINE_AFTER:-0}"

# Performance switches read by the binary itself:
#   ZUSH_GIT_MINIMAL=1            branch only, skip all counting
#   ZUSH_GIT_DISABLE_UNTRACKED=1  skip the untracked-file scan
#   ZUSH_DISABLE_MODULES=1        no language/environment detection
#   ZUSH_DISABLE_<ID>=1           disable one module (PYTHON, NODE, ...)

# History must be saved and shared for the history subsystem to be
# useful. Only fill in what the user has not already configured.
[[ -z "$HISTFILE" ]] && export HISTFILE="${HOME}/.zsh_history"
[[ -z "$HISTSIZE" || "$HISTSIZE" -lt 1000 ]] && export HISTSIZE=50000
[[ -z "$SAVEHIST" || "$SAVEHIST" -lt 1000 ]] && export SAVEHIST=50000

# SHARE_HISTORY already appends incrementally; INC_APPEND_HISTORY must
# be off alongside it or entries get lost.
setopt SHARE_HISTORY
setopt NO_INC_APPEND_HISTORY
setopt HIST_IGNORE_DUPS
setopt HIST_IGNORE_SPACE
setopt HIST_EXPIRE_DUPS_FIRST
setopt EXTENDED_HISTORY

# Switch themes without reloading the shell.
zush-theme() {
    local theme_name="$1"

    if [[ -z "$theme_name" ]]; then
        echo "Current theme: ${ZUSH_THEME:-(config default)}"
        echo ""
        echo "Themes are TOML files in ~/.config/zush/themes/"
        echo ""
        echo "Usage: zush-theme <theme-name>"
        echo "       zush-theme list [--preview]"
        echo "       zush-theme preview [--compact]"
        echo "       zush-theme reset"
        return 0
    fi

    case "$theme_name" in
        list)
            shift
            _zush_theme_list "$@"
            return 0
            ;;
        preview)
            shift
            _zush_theme_preview_all "$@"
            return 0
            ;;
        reset)
            unset ZUSH_THEME
            ZUSH_THEME=""
            echo "✓ Reset to config default (reload shell to apply)"
            zle && zle reset-prompt
            return 0
            ;;
    esac

    ZUSH_THEME="$theme_name"
    export ZUSH_THEME
    echo "✓ Switched to theme: ${ZUSH_THEME}"
    zle && zle reset-prompt
}

_zush_theme_list() {
    local show_preview=false
    [[ "$1" == "--preview" ]] && show_preview=true

    local bold="\e[1m" dim="\e[2m" blue="\e[34m" green="\e[32m" yellow="\e[33m" reset="\e[0m"
    local themes_dir=~/.config/zush/themes
    local context='{"pwd":"~/projects/app","pwd_short":"~/projects/app","user":"'$USER'","git_branch":"main","time":"'$(date +%H:%M:%S)'","git_modified":2,"git_staged":1}'

    echo ""
    echo -e "${bold}Available themes${reset}"
    echo ""

    local found=0
    for theme_file in $themes_dir/*.toml(N); do
        found=1
        local name="${theme_file:t:r}"
        local description=$(grep '^description' "$theme_file" 2>/dev/null | sed 's/description = "\(.*\)"/\1/')

        local marker=""
        [[ "$name" == "$ZUSH_THEME" ]] && marker=" ${green}→ (active)${reset}"

        echo -e "${bold}${blue}${name}${reset}${marker}"
        [[ -n "$description" ]] && echo -e "  ${dim}${description}${reset}"
        echo -e "  ${yellow}Command:${reset} zush-theme ${name}"

        if [[ "$show_preview" == true ]]; then
            echo ""
            echo -n "  "
            $ZUSH_BIN prompt --theme "$name" --format raw --context "$context" --exit-code 0 2>/dev/null | head -1
        fi
        echo ""
    done

    [[ $found -eq 0 ]] && echo "  (no theme files in $themes_dir)"
    echo -e "${dim}Tip: zush-theme list --preview shows each theme rendered${reset}"
}

_zush_theme_preview_all() {
    local compact=false
    [[ "$1" == "--compact" ]] && compact=true

    local bold="\e[1m" dim="\e[2m" yellow="\e[33m" magenta="\e[35m" reset="\e[0m"
    local current_time=$(date +%H:%M:%S)
    local scenarios=(
        "Success|{\"pwd\":\"~/projects/app\",\"pwd_short\":\"~/projects/app\",\"user\":\"$USER\",\"git_branch\":\"main\",\"time\":\"$current_time\"}|0"
        "With Git Changes|{\"pwd\":\"~/code/app\",\"pwd_short\":\"~/code/app\",\"user\":\"$USER\",\"git_branch\":\"feature/preview\",\"git_modified\":3,\"git_staged\":1,\"git_untracked\":2,\"time\":\"$current_time\"}|0"
        "Error State|{\"pwd\":\"~/projects/app\",\"pwd_short\":\"~/projects/app\",\"user\":\"$USER\",\"git_branch\":\"main\",\"time\":\"$current_time\"}|1"
    )

    local themes_dir=~/.config/zush/themes
    for theme_file in $themes_dir/*.toml(N); do
        local name="${theme_file:t:r}"

        echo -e "${bold}${magenta}────────────────────────────────────────${reset}"
        echo -e "${bold}${yellow}Theme: ${name}${reset}"
        echo ""

        for scenario in "${scenarios[@]}"; do
            local label="${scenario%%|*}"
            local rest="${scenario#*|}"
            local context="${rest%%|*}"
            local exit_code="${rest##*|}"

            [[ "$compact" == false ]] && echo -e "  ${dim}${label}:${reset}"

            local prompt_output=$($ZUSH_BIN prompt --theme "$name" --format raw --context "$context" --exit-code "$exit_code" 2>/dev/null)

            if [[ "$compact" == true ]]; then
                echo "$prompt_output" | head -1
            else
                echo "$prompt_output" | while IFS= read -r line; do echo "    $line"; done
                echo ""
            fi
        done
        echo ""
    done

    echo -e "${dim}Tip: zush-theme <name> activates a theme${reset}"
}

_zush_theme_completion() {
    local -a commands themes
    commands=('list:List all available themes' 'preview:Preview all themes' 'reset:Reset to default')

    if [[ -d ~/.config/zush/themes ]]; then
        for theme_file in ~/.config/zush/themes/*.toml(N); do
            local name="${theme_file:t:r}"
            local desc=$(grep '^description' "$theme_file" 2>/dev/null | sed 's/description = "\(.*\)"/\1/')
            [[ -n "$desc" ]] && themes+=("${name}:${desc}") || themes+=("${name}")
        done
    fi

    if (( CURRENT == 2 )); then
        _describe -t commands 'commands' commands
        _describe -t themes 'themes' themes
    elif (( CURRENT == 3 )); then
        case "$words[2]" in
            list) _arguments '--preview[Show theme previews]' ;;
            preview) _arguments '--compact[Show compact previews]' ;;
        esac
    fi
}
compdef _zush_theme_completion zush-theme

alias zt='zush-theme'

# Render state shared between hooks.
typeset -g ZUSH_LAST_EXIT_CODE=0
typeset -g ZUSH_CMD_START_TIME=0
typeset -g ZUSH_CMD_DURATION=0
typeset -g ZUSH_PROMPT_RENDERED=0
typeset -g ZUSH_PROMPT_LINES=3
typeset -g ZUSH_LAST_COMMAND=""

# One session id per shell, used to group history entries.
typeset -g ZUSH_SESSION_ID="${ZUSH_SESSION_ID:-$(head -c 8 /dev/urandom 2>/dev/null | xxd -p 2>/dev/null || echo $$)}"

_zush_theme_args() {
    [[ -n "$ZUSH_THEME" ]] && echo "--theme $ZUSH_THEME"
}

_zush_transient_context() {
    echo "{\"time\": \"$(date +%H:%M:%S)\"}"
}

_zush_full_context() {
    cat <<EOF
{
    "pwd": "$PWD",
    "pwd_short": "${PWD/#$HOME/~}",
    "user": "$USER",
    "host": "$HOST",
    "shell": "zsh",
    "ssh": "${SSH_CONNECTION:+true}",
    "virtual_env": "${VIRTUAL_ENV:+$(basename $VIRTUAL_ENV)}",
    "jobs": "$(jobs | wc -l | tr -d ' ')",
    "history_number": "$HISTCMD",
    "time": "$(date +%H:%M:%S)",
    "terminal_width": ${COLUMNS:-80}
}
EOF
}

# Replace the prompt already on screen with its transient form.
# $1 exit code, $2 execution time, $3 optional command text to append.
_zush_render_transient() {
    local exit_code="$1"
    local exec_time="$2"
    local cmd="$3"

    local transient_prompt=$($ZUSH_BIN prompt --template transient --format raw --quiet $(_zush_theme_args) \
        --context "$(_zush_transient_context)" \
        --exit-code "$exit_code" \
        --execution-time "$exec_time")

    # \e[<n>A cursor up, \e[0G line start, \e[0J clear to end of screen.
    if [[ -n "$cmd" ]]; then
        printf '\e[%dA\e[0G\e[0J%s%s\n' "$ZUSH_PROMPT_LINES" "$transient_prompt" "$cmd"
    else
        printf '\e[%dA\e[0G\e[0J%s\n' "$ZUSH_PROMPT_LINES" "$transient_prompt"
    fi
}

zush_preexec() {
    ZUSH_CMD_START_TIME=$EPOCHREALTIME
    ZUSH_PROMPT_RENDERED=0
    ZUSH_LAST_COMMAND="$1"

    _zush_render_transient "$ZUSH_LAST_EXIT_CODE" "$ZUSH_CMD_DURATION" "$1"

    [[ $ZUSH_PROMPT_NEWLINE_AFTER -eq 1 ]] && print
}

zush_precmd() {
    ZUSH_LAST_EXIT_CODE=$?

    if [[ $ZUSH_CMD_START_TIME -gt 0 ]]; then
        ZUSH_CMD_DURATION=$(( EPOCHREALTIME - ZUSH_CMD_START_TIME ))
        ZUSH_CMD_START_TIME=0
    else
        ZUSH_CMD_DURATION=0
    fi

    # Record the finished command without blocking the prompt. Commands
    # starting with a space stay private, matching HIST_IGNORE_SPACE.
    if [[ -n "$ZUSH_LAST_COMMAND" ]]; then
        if [[ "$ZUSH_LAST_COMMAND" != " "* ]]; then
            $ZUSH_BIN history add \
                --session "$ZUSH_SESSION_ID" \
                --exit-code $ZUSH_LAST_EXIT_CODE \
                --duration $ZUSH_CMD_DURATION \
                --directory "$PWD" \
                -- "$ZUSH_LAST_COMMAND" &!
        fi
        ZUSH_LAST_COMMAND=""
    fi

    # Enter on an empty line: no preexec ran, convert the prompt that is
    # already displayed to its transient form.
    [[ $ZUSH_PROMPT_RENDERED -eq 1 ]] && _zush_render_transient "$ZUSH_LAST_EXIT_CODE" 0

    ZUSH_PROMPT_RENDERED=1

    [[ $ZUSH_PROMPT_NEWLINE_BEFORE -eq 1 ]] && print
}

zush_prompt() {
    local output=$($ZUSH_BIN prompt --template main --format zsh $(_zush_theme_args) \
        --context "$(_zush_full_context)" \
        --exit-code $ZUSH_LAST_EXIT_CODE \
        --execution-time $ZUSH_CMD_DURATION)

    # Count the prompt's lines so the transient replacement clears the
    # right amount of screen. %{...%} wrappers carry no width.
    local raw_output="${output//\%\{/}"
    raw_output="${raw_output//\%\}/}"
    local line_count=$(( $(echo -n "$raw_output" | wc -l) + 1 ))
    ZUSH_PROMPT_LINES=$line_count

    echo -n "$output"
}

add-zsh-hook preexec zush_preexec
add-zsh-hook precmd zush_precmd

TRAPWINCH() {
    zle && zle reset-prompt
}

setopt PROMPT_SUBST
PROMPT='$(zush_prompt)'

# Right-aligned content is composed inline on the first line; RPROMPT
# would fight the transient replacement.
RPROMPT=''

# Ctrl+R history search. The picker talks to /dev/tty itself and hands
# the selection back through a temp file.
zush-history-widget() {
    local tmpfile="/tmp/zush-history-$$"
    $ZUSH_BIN history search --tui --output "$tmpfile" 2>/dev/null
    if [[ -f "$tmpfile" ]]; then
        local selected="$(cat "$tmpfile")"
        rm -f "$tmpfile"
        if [[ -n "$selected" ]]; then
            LBUFFER="$selected"
            RBUFFER=""
        fi
    fi
    zle reset-prompt
}

zle -N zush-history-widget
bindkey '^R' zush-history-widget

alias zh='$ZUSH_BIN history'
alias zhl='$ZUSH_BIN history list'
alias zhs='$ZUSH_BIN history search --tui'
`
