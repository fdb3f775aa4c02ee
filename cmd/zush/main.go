// zush renders a themeable zsh prompt and keeps a structured command
// history.
//
// Usage:
//
//	eval "$(zush init zsh)"           # wire the shell hooks
//	zush prompt --format zsh          # render the main prompt
//	zush prompt --transient --quiet   # render the transient form
//	zush history search --tui         # interactive history picker
//	zush config > ~/.config/zush/config.toml
//
// Rendering never exits non-zero: a broken theme falls back to the
// built-in templates, a broken template to a hard-coded prompt, so the
// shell always gets something usable.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/mikemackintosh/zush/internal/config"
	"github.com/mikemackintosh/zush/internal/history"
	"github.com/mikemackintosh/zush/internal/prompt"
	"github.com/mikemackintosh/zush/internal/shell"
	"github.com/mikemackintosh/zush/internal/version"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	_ = stdin

	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		switch args[0] {
		case "prompt":
			return runPrompt(args[1:], stdout, stderr)
		case "init":
			return runInit(args[1:], stdout, stderr)
		case "config":
			return runConfig(stdout)
		case "history":
			return runHistory(args[1:], stdout, stderr)
		case "version":
			fmt.Fprintln(stdout, version.String())
			return 0
		default:
			fmt.Fprintf(stderr, "zush: unknown command %q (expected prompt, init, config, history, version)\n", args[0])
			return 2
		}
	}

	// Bare invocation renders the prompt, so PROMPT='$(zush)' also works.
	return runPrompt(args, stdout, stderr)
}

func runPrompt(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("zush prompt", flag.ContinueOnError)
	fs.SetOutput(stderr)
	format := fs.String("format", "zsh", "Output format: zsh, raw, debug")
	templateName := fs.String("template", "main", "Template to render")
	configPath := fs.String("config", "", "Config file path")
	theme := fs.String("theme", "", "Theme name, or a path when it contains a slash")
	transient := fs.Bool("transient", false, "Render the transient template")
	quiet := fs.Bool("quiet", false, "Suppress template loading diagnostics")
	contextJSON := fs.String("context", "", "Additional context values as a JSON object")

	var exitCode int
	fs.IntVar(&exitCode, "exit-code", 0, "Exit code of the last command")
	fs.IntVar(&exitCode, "e", 0, "Shorthand for --exit-code")
	var executionTime float64
	fs.Float64Var(&executionTime, "execution-time", 0, "Runtime of the last command in seconds")
	fs.Float64Var(&executionTime, "t", 0, "Shorthand for --execution-time")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	name := *templateName
	if *transient {
		name = "transient"
	}

	renderer := prompt.New()
	renderer.Stderr = stderr

	output := renderer.Render(prompt.Options{
		Template:      name,
		Format:        *format,
		ConfigPath:    *configPath,
		Theme:         *theme,
		Quiet:         *quiet,
		ContextJSON:   *contextJSON,
		ExitCode:      exitCode,
		ExecutionTime: executionTime,
	})

	// No trailing newline: the shell substitutes the output verbatim.
	fmt.Fprint(stdout, output)
	return 0
}

func runInit(args []string, stdout, stderr io.Writer) int {
	name := "zsh"
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		name = args[0]
	}

	script, err := shell.Script(name)
	if err != nil {
		fmt.Fprintf(stderr, "zush: %v\n", err)
		return 1
	}

	fmt.Fprint(stdout, script)
	return 0
}

func runConfig(stdout io.Writer) int {
	fmt.Fprint(stdout, config.DefaultConfigTOML)
	return 0
}

func runHistory(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintf(stderr, "zush history: missing subcommand (expected add, list, search, clear, stats)\n")
		return 2
	}

	switch args[0] {
	case "add":
		return runHistoryAdd(args[1:], stderr)
	case "list":
		return runHistoryList(args[1:], stdout, stderr)
	case "search":
		return runHistorySearch(args[1:], stdout, stderr)
	case "clear":
		return runHistoryClear(args[1:], stdout, stderr)
	case "stats":
		return runHistoryStats(args[1:], stdout, stderr)
	default:
		fmt.Fprintf(stderr, "zush history: unknown subcommand %q (expected add, list, search, clear, stats)\n", args[0])
		return 2
	}
}

func runHistoryAdd(args []string, stderr io.Writer) int {
	fs := flag.NewFlagSet("zush history add", flag.ContinueOnError)
	fs.SetOutput(stderr)
	session := fs.String("session", "", "Session identifier")
	exitCode := fs.Int("exit-code", 0, "Exit code of the command")
	duration := fs.Float64("duration", 0, "Runtime of the command in seconds")
	directory := fs.String("directory", "", "Directory the command ran in")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	command := strings.Join(fs.Args(), " ")
	if command == "" {
		fmt.Fprintf(stderr, "zush history add: missing command\n")
		return 2
	}

	dir := *directory
	if dir == "" {
		dir = os.Getenv("PWD")
	}
	if dir == "" {
		if wd, err := os.Getwd(); err == nil {
			dir = wd
		} else {
			dir = "."
		}
	}

	hostname, err := os.Hostname()
	if err != nil || hostname == "" {
		hostname = "unknown"
	}

	sessionID := *session
	if sessionID == "" {
		sessionID = history.NewSessionID()
	}

	store, err := history.NewStore()
	if err != nil {
		fmt.Fprintf(stderr, "zush: %v\n", err)
		return 1
	}

	entry := history.NewEntry(command, dir, sessionID, *exitCode, int64(*duration*1000), hostname)
	if err := store.Append(entry); err != nil {
		fmt.Fprintf(stderr, "zush: %v\n", err)
		return 1
	}
	return 0
}

func runHistoryList(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("zush history list", flag.ContinueOnError)
	fs.SetOutput(stderr)
	count := fs.Int("count", 20, "Number of entries to show")
	asJSON := fs.Bool("json", false, "Emit entries as a JSON array")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	store, err := history.NewStore()
	if err != nil {
		fmt.Fprintf(stderr, "zush: %v\n", err)
		return 1
	}

	entries, err := store.ReadRecent(*count)
	if err != nil {
		fmt.Fprintf(stderr, "zush: %v\n", err)
		return 1
	}

	if *asJSON {
		if entries == nil {
			entries = []history.Entry{}
		}
		out, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			fmt.Fprintf(stderr, "zush: %v\n", err)
			return 1
		}
		fmt.Fprintf(stdout, "%s\n", out)
		return 0
	}

	// Newest first for reading, unlike the file which appends.
	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		indicator := "\x1b[32m✓\x1b[0m"
		if e.ExitCode != 0 {
			indicator = "\x1b[31m✗\x1b[0m"
		}
		fmt.Fprintf(stdout, "%s %s \x1b[90m%s\x1b[0m %s\n", indicator, e.FormattedTime(), e.ShortDir(), e.Command)
	}
	return 0
}

func runHistorySearch(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("zush history search", flag.ContinueOnError)
	fs.SetOutput(stderr)
	tui := fs.Bool("tui", false, "Open the interactive picker")
	outputPath := fs.String("output", "", "Write the picker selection to this file")
	dir := fs.String("dir", "", "Only commands run under this directory")
	session := fs.String("session", "", "Only commands from this session")
	successful := fs.Bool("successful", false, "Only commands that exited 0")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	store, err := history.NewStore()
	if err != nil {
		fmt.Fprintf(stderr, "zush: %v\n", err)
		return 1
	}

	entries, err := store.ReadAll()
	if err != nil {
		fmt.Fprintf(stderr, "zush: %v\n", err)
		return 1
	}

	filter := history.SearchFilter{
		Directory:      *dir,
		Session:        *session,
		SuccessfulOnly: *successful,
	}

	if *tui {
		matching := entries[:0:0]
		for _, e := range entries {
			if filter.Matches(e) {
				matching = append(matching, e)
			}
		}

		selected, ok, err := history.RunPicker(matching)
		if err != nil {
			fmt.Fprintf(stderr, "zush: %v\n", err)
			return 1
		}
		if !ok {
			return 0
		}

		// The ZLE widget reads the selection from a file because the
		// picker owns the terminal while it runs.
		if *outputPath != "" {
			if err := os.WriteFile(*outputPath, []byte(selected), 0o644); err != nil {
				fmt.Fprintf(stderr, "zush: %v\n", err)
				return 1
			}
			return 0
		}
		fmt.Fprint(stdout, selected)
		return 0
	}

	query := strings.Join(fs.Args(), " ")
	for _, e := range history.Search(entries, query, filter, 20) {
		fmt.Fprintln(stdout, e.Command)
	}
	return 0
}

func runHistoryClear(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("zush history clear", flag.ContinueOnError)
	fs.SetOutput(stderr)
	olderThan := fs.Int("older-than", 0, "Remove entries older than this many days")
	all := fs.Bool("all", false, "Remove every entry")
	force := fs.Bool("force", false, "Confirm clearing all history")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	store, err := history.NewStore()
	if err != nil {
		fmt.Fprintf(stderr, "zush: %v\n", err)
		return 1
	}

	switch {
	case *olderThan > 0:
		removed, err := store.ClearOlderThan(*olderThan)
		if err != nil {
			fmt.Fprintf(stderr, "zush: %v\n", err)
			return 1
		}
		fmt.Fprintf(stdout, "Removed %d entries older than %d days\n", removed, *olderThan)
		return 0
	case *all && *force:
		if err := store.ClearAll(); err != nil {
			fmt.Fprintf(stderr, "zush: %v\n", err)
			return 1
		}
		fmt.Fprintln(stdout, "History cleared")
		return 0
	case *all:
		fmt.Fprintln(stderr, "Use --force to confirm clearing all history")
		return 1
	default:
		fmt.Fprintln(stderr, "Specify --older-than <days> or --all --force")
		return 1
	}
}

func runHistoryStats(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("zush history stats", flag.ContinueOnError)
	fs.SetOutput(stderr)
	if err := fs.Parse(args); err != nil {
		return 2
	}

	store, err := history.NewStore()
	if err != nil {
		fmt.Fprintf(stderr, "zush: %v\n", err)
		return 1
	}

	stats, err := store.Stats()
	if err != nil {
		fmt.Fprintf(stderr, "zush: %v\n", err)
		return 1
	}

	fmt.Fprintf(stdout, "History file: %s\n", store.Path)
	fmt.Fprintf(stdout, "Total entries: %d\n", stats.Entries)
	fmt.Fprintf(stdout, "File size: %.2f KB\n", float64(stats.FileSizeBytes)/1024.0)

	if stats.Entries == 0 {
		return 0
	}

	fmt.Fprintf(stdout, "Oldest entry: %s\n", time.Unix(stats.Oldest, 0).Format("2006-01-02 15:04:05"))
	fmt.Fprintf(stdout, "Newest entry: %s\n", time.Unix(stats.Newest, 0).Format("2006-01-02 15:04:05"))
	fmt.Fprintf(stdout, "Unique commands: %d\n", stats.UniqueCommands)
	fmt.Fprintf(stdout, "Success rate: %.1f%%\n", stats.SuccessRate*100)

	if len(stats.TopCommands) > 0 {
		fmt.Fprintln(stdout, "Top commands:")
		for _, tc := range stats.TopCommands {
			fmt.Fprintf(stdout, "  %4d  %s\n", tc.Count, tc.Command)
		}
	}
	return 0
}
