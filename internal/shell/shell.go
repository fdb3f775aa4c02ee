// Package shell emits the per-shell integration scripts that wire zush
// into an interactive session: prompt hooks, command timing, transient
// prompt replacement, theme switching, and the history widget.
package shell

import "fmt"

// Script returns the integration script for the named shell, the text a
// user evals from their rc file.
func Script(shell string) (string, error) {
	switch shell {
	case "zsh":
		return zshScript, nil
	default:
		return "", fmt.Errorf("shell %q is not supported (supported shells: zsh)", shell)
	}
}
