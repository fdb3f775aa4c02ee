package history

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// SearchFilter narrows which entries are eligible before any fuzzy
// matching happens. Zero values mean no constraint.
type SearchFilter struct {
	// Directory matches entries recorded in this directory or below.
	Directory string
	// Session matches one shell session exactly.
	Session string
	// Hostname matches one machine exactly.
	Hostname string
	// SuccessfulOnly keeps entries that exited zero.
	SuccessfulOnly bool
	// After and Before bound the timestamp, inclusive.
	After  int64
	Before int64
}

// Matches reports whether an entry passes every set constraint.
func (f SearchFilter) Matches(e Entry) bool {
	if f.Directory != "" && !strings.HasPrefix(e.Directory, f.Directory) {
		return false
	}
	if f.Session != "" && e.SessionID != f.Session {
		return false
	}
	if f.Hostname != "" && e.Hostname != f.Hostname {
		return false
	}
	if f.SuccessfulOnly && e.ExitCode != 0 {
		return false
	}
	if f.After != 0 && e.Timestamp < f.After {
		return false
	}
	if f.Before != 0 && e.Timestamp > f.Before {
		return false
	}
	return true
}

// Search filters entries and ranks them against the query. With a
// query the results are ordered best match first; fuzzy scoring is
// stable, so entries fed most recent first keep recency as the
// tie-break. An empty query returns the filtered entries most recent
// first. maxResults <= 0 means unlimited.
func Search(entries []Entry, query string, filter SearchFilter, maxResults int) []Entry {
	filtered := make([]Entry, 0, len(entries))
	for i := len(entries) - 1; i >= 0; i-- {
		if filter.Matches(entries[i]) {
			filtered = append(filtered, entries[i])
		}
	}

	if query == "" {
		return capResults(filtered, maxResults)
	}

	commands := make([]string, len(filtered))
	for i, entry := range filtered {
		commands[i] = entry.Command
	}
	matches := fuzzy.Find(query, commands)

	results := make([]Entry, 0, len(matches))
	for _, match := range matches {
		results = append(results, filtered[match.Index])
	}
	return capResults(results, maxResults)
}

func capResults(entries []Entry, maxResults int) []Entry {
	if maxResults > 0 && len(entries) > maxResults {
		return entries[:maxResults]
	}
	return entries
}
