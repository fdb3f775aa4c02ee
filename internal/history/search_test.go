package history

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func searchFixture() []Entry {
	return []Entry{
		{Timestamp: 100, Command: "git status", Directory: "/home/alex/dev/api", SessionID: "s1", Hostname: "laptop", ExitCode: 0},
		{Timestamp: 200, Command: "make build", Directory: "/home/alex/dev/api", SessionID: "s1", Hostname: "laptop", ExitCode: 1},
		{Timestamp: 300, Command: "cargo test", Directory: "/home/alex/dev/cli", SessionID: "s2", Hostname: "server", ExitCode: 0},
		{Timestamp: 400, Command: "git stash", Directory: "/home/alex/dev/api", SessionID: "s2", Hostname: "laptop", ExitCode: 0},
	}
}

func commands(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Command
	}
	return out
}

func TestSearch_ReturnsMostRecentFirst_When_QueryEmpty(t *testing.T) {
	t.Parallel()

	results := Search(searchFixture(), "", SearchFilter{}, 0)
	assert.Equal(t, []string{"git stash", "cargo test", "make build", "git status"}, commands(results))
}

func TestSearch_CapsResults_When_LimitSet(t *testing.T) {
	t.Parallel()

	results := Search(searchFixture(), "", SearchFilter{}, 2)
	assert.Equal(t, []string{"git stash", "cargo test"}, commands(results))
}

func TestSearch_MatchesFuzzily_When_QueryGiven(t *testing.T) {
	t.Parallel()

	results := Search(searchFixture(), "git", SearchFilter{}, 0)
	require.Len(t, results, 2)
	// Equal scores fall back to recency because the ranking is stable.
	assert.Equal(t, "git stash", results[0].Command)
	assert.Equal(t, "git status", results[1].Command)
}

func TestSearch_ReturnsNothing_When_QueryMatchesNothing(t *testing.T) {
	t.Parallel()

	results := Search(searchFixture(), "zzqx", SearchFilter{}, 0)
	assert.Empty(t, results)
}

func TestSearchFilter_AppliesConstraints_When_Set(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		filter SearchFilter
		want   []string
	}{
		{
			name:   "directory prefix",
			filter: SearchFilter{Directory: "/home/alex/dev/api"},
			want:   []string{"git stash", "make build", "git status"},
		},
		{
			name:   "session exact",
			filter: SearchFilter{Session: "s2"},
			want:   []string{"git stash", "cargo test"},
		},
		{
			name:   "hostname exact",
			filter: SearchFilter{Hostname: "server"},
			want:   []string{"cargo test"},
		},
		{
			name:   "successful only",
			filter: SearchFilter{SuccessfulOnly: true},
			want:   []string{"git stash", "cargo test", "git status"},
		},
		{
			name:   "after bound",
			filter: SearchFilter{After: 250},
			want:   []string{"git stash", "cargo test"},
		},
		{
			name:   "before bound",
			filter: SearchFilter{Before: 250},
			want:   []string{"make build", "git status"},
		},
		{
			name:   "combined",
			filter: SearchFilter{Hostname: "laptop", SuccessfulOnly: true, After: 150},
			want:   []string{"git stash"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			results := Search(searchFixture(), "", tc.filter, 0)
			assert.Equal(t, tc.want, commands(results))
		})
	}
}
