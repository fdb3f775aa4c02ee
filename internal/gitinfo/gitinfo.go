// Package gitinfo reports repository state for the prompt: the checked-out
// branch and counts of staged, changed, and untracked files.
//
// The prompt renders on every keystroke-loop cycle, so the production
// collector avoids spawning processes where it can: the branch comes from
// reading .git/HEAD directly, and only the file counts shell out to git.
// Two environment switches tune behavior in very large repositories:
// ZUSH_GIT_MINIMAL=1 skips counting entirely, and
// ZUSH_GIT_DISABLE_UNTRACKED=1 skips the untracked-file scan.
package gitinfo

import (
	"strconv"
	"strings"
)

// Status describes a repository at one point in time.
type Status struct {
	Branch     string
	Staged     int
	Modified   int
	Added      int
	Deleted    int
	Renamed    int
	Untracked  int
	Conflicted int
}

// Collector produces a Status for a directory. ok is false when the
// directory is not inside a git repository. Implementations decide their
// own caching policy; callers hold whichever collector suits them.
type Collector interface {
	Status(dir string) (*Status, bool)
}

// IsDirty reports whether any tracked or untracked change exists.
func (s *Status) IsDirty() bool {
	return s.Staged > 0 || s.Modified > 0 || s.Added > 0 || s.Deleted > 0 ||
		s.Renamed > 0 || s.Untracked > 0 || s.Conflicted > 0
}

// FormatShort renders the non-zero counts as a compact glyph summary,
// for example "●1 ✚2 …3". A clean tree renders empty.
func (s *Status) FormatShort() string {
	parts := make([]string, 0, 7)
	appendCount := func(glyph string, n int) {
		if n > 0 {
			parts = append(parts, glyph+strconv.Itoa(n))
		}
	}
	appendCount("●", s.Staged)
	appendCount("✚", s.Modified)
	appendCount("+", s.Added)
	appendCount("-", s.Deleted)
	appendCount("➜", s.Renamed)
	appendCount("…", s.Untracked)
	appendCount("✖", s.Conflicted)
	return strings.Join(parts, " ")
}

// ContextValues returns the template context keys for this status. A nil
// status reports the outside-a-repo defaults: empty branch, zero counts.
func (s *Status) ContextValues() map[string]any {
	if s == nil {
		s = &Status{}
	}
	return map[string]any{
		"git_branch":     s.Branch,
		"git_staged":     s.Staged,
		"git_modified":   s.Modified,
		"git_added":      s.Added,
		"git_deleted":    s.Deleted,
		"git_renamed":    s.Renamed,
		"git_untracked":  s.Untracked,
		"git_conflicted": s.Conflicted,
	}
}
