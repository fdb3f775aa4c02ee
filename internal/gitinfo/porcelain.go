package gitinfo

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Porcelain is the production collector. The branch is read straight from
// .git/HEAD; file counts come from `git status --porcelain`.
type Porcelain struct {
	run func(dir string, args ...string) (string, error)
}

// NewPorcelain returns a collector that shells out to the git binary for
// status counts.
func NewPorcelain() *Porcelain {
	return &Porcelain{run: runGit}
}

// Status implements Collector.
func (p *Porcelain) Status(dir string) (*Status, bool) {
	gitDir, found := findGitDir(dir)
	if !found {
		return nil, false
	}

	status := &Status{}
	if head, err := os.ReadFile(filepath.Join(gitDir, "HEAD")); err == nil {
		status.Branch = parseHead(string(head))
	}
	if status.Branch == "" {
		out, err := p.run(dir, "branch", "--show-current")
		if err != nil {
			return nil, false
		}
		status.Branch = strings.TrimSpace(out)
	}
	if status.Branch == "" {
		return nil, false
	}

	if envEnabled("ZUSH_GIT_MINIMAL") {
		return status, true
	}

	untracked := "--untracked-files=normal"
	if envEnabled("ZUSH_GIT_DISABLE_UNTRACKED") {
		untracked = "--untracked-files=no"
	}
	out, err := p.run(dir, "status", "--porcelain", untracked)
	if err != nil {
		// Counting failed but the branch is known; a partial answer beats
		// pretending we are outside the repo.
		return status, true
	}
	countPorcelain(status, out)
	return status, true
}

// parseHead extracts a display name from .git/HEAD contents: the branch for
// a refs/heads symbolic ref, the full ref path for any other symbolic ref,
// or the first seven hash characters for a detached head.
func parseHead(contents string) string {
	trimmed := strings.TrimSpace(contents)
	if ref, isSymbolic := strings.CutPrefix(trimmed, "ref: "); isSymbolic {
		if branch, isLocal := strings.CutPrefix(ref, "refs/heads/"); isLocal {
			return branch
		}
		return ref
	}
	if len(trimmed) > 7 {
		return trimmed[:7]
	}
	return trimmed
}

// findGitDir walks up from dir looking for a .git entry. A directory is the
// repository's git dir; a regular file marks a linked worktree and names
// the real git dir after a "gitdir: " prefix.
func findGitDir(dir string) (string, bool) {
	for {
		gitPath := filepath.Join(dir, ".git")
		if info, err := os.Stat(gitPath); err == nil {
			if info.IsDir() {
				return gitPath, true
			}
			if contents, err := os.ReadFile(gitPath); err == nil {
				if target, ok := strings.CutPrefix(strings.TrimSpace(string(contents)), "gitdir: "); ok {
					return target, true
				}
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

// countPorcelain tallies `git status --porcelain` output into status.
// Conflicted entries count once and contribute to no other bucket.
func countPorcelain(status *Status, output string) {
	for _, line := range strings.Split(output, "\n") {
		if len(line) < 3 {
			continue
		}
		x, y := line[0], line[1]

		switch {
		case x == '?' && y == '?':
			status.Untracked++
			continue
		case x == 'U' || y == 'U' || (x == 'A' && y == 'A') || (x == 'D' && y == 'D'):
			status.Conflicted++
			continue
		}

		switch x {
		case 'A':
			status.Added++
			status.Staged++
		case 'M':
			status.Staged++
		case 'D':
			status.Deleted++
			status.Staged++
		case 'R':
			status.Renamed++
			status.Staged++
		}

		switch y {
		case 'M':
			status.Modified++
		case 'D':
			status.Deleted++
		}
	}
}

func runGit(dir string, args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("git %s: %s", strings.Join(args, " "), strings.TrimSpace(stderr.String()))
	}
	return stdout.String(), nil
}

func envEnabled(name string) bool {
	v := os.Getenv(name)
	return v == "1" || strings.EqualFold(v, "true")
}
