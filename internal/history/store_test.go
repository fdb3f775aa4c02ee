package history

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	return &Store{Path: filepath.Join(t.TempDir(), historyFilename)}
}

func TestStore_ReadsBackEntries_When_Appended(t *testing.T) {
	t.Parallel()

	store := testStore(t)
	first := Entry{Timestamp: 100, Command: "ls", Directory: "/tmp", SessionID: "a", Hostname: "h"}
	second := Entry{Timestamp: 200, Command: "git status", Directory: "/tmp", SessionID: "a", Hostname: "h"}

	require.NoError(t, store.Append(first))
	require.NoError(t, store.Append(second))

	entries, err := store.ReadAll()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, first, entries[0])
	assert.Equal(t, second, entries[1])
}

func TestStore_ReturnsNothing_When_FileMissing(t *testing.T) {
	t.Parallel()

	store := testStore(t)
	entries, err := store.ReadAll()
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestStore_SkipsMalformedLines_When_Reading(t *testing.T) {
	t.Parallel()

	store := testStore(t)
	contents := `{"ts":1,"dir":"/a","sid":"s","cmd":"ls","exit":0,"dur":1,"host":"h"}
not json at all
{"ts":2,"dir":

{"ts":3,"dir":"/b","sid":"s","cmd":"pwd","exit":0,"dur":1,"host":"h"}
`
	require.NoError(t, os.WriteFile(store.Path, []byte(contents), 0o644))

	entries, err := store.ReadAll()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "ls", entries[0].Command)
	assert.Equal(t, "pwd", entries[1].Command)
}

func TestStore_ReturnsTail_When_ReadRecent(t *testing.T) {
	t.Parallel()

	store := testStore(t)
	for i := int64(1); i <= 5; i++ {
		require.NoError(t, store.Append(Entry{Timestamp: i, Command: "cmd"}))
	}

	recent, err := store.ReadRecent(2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, int64(4), recent[0].Timestamp)
	assert.Equal(t, int64(5), recent[1].Timestamp)

	all, err := store.ReadRecent(50)
	require.NoError(t, err)
	assert.Len(t, all, 5)
}

func TestStore_RemovesExpired_When_ClearOlderThan(t *testing.T) {
	t.Parallel()

	store := testStore(t)
	now := time.Now().Unix()
	stale := Entry{Timestamp: now - 10*24*60*60, Command: "old"}
	fresh := Entry{Timestamp: now, Command: "new"}
	require.NoError(t, store.Append(stale))
	require.NoError(t, store.Append(fresh))

	removed, err := store.ClearOlderThan(7)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	entries, err := store.ReadAll()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "new", entries[0].Command)

	removed, err = store.ClearOlderThan(7)
	require.NoError(t, err)
	assert.Zero(t, removed)
}

func TestStore_EmptiesFile_When_ClearAll(t *testing.T) {
	t.Parallel()

	store := testStore(t)
	require.NoError(t, store.Append(Entry{Timestamp: 1, Command: "ls"}))
	require.NoError(t, store.ClearAll())

	entries, err := store.ReadAll()
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestStore_Succeeds_When_ClearAllWithoutFile(t *testing.T) {
	t.Parallel()

	store := testStore(t)
	assert.NoError(t, store.ClearAll())
}

func TestStore_Summarizes_When_Stats(t *testing.T) {
	t.Parallel()

	store := testStore(t)
	seed := []Entry{
		{Timestamp: 100, Command: "git status", ExitCode: 0},
		{Timestamp: 200, Command: "make build", ExitCode: 1},
		{Timestamp: 300, Command: "git status", ExitCode: 0},
		{Timestamp: 400, Command: "ls", ExitCode: 0},
	}
	for _, entry := range seed {
		require.NoError(t, store.Append(entry))
	}

	stats, err := store.Stats()
	require.NoError(t, err)
	assert.Equal(t, 4, stats.Entries)
	assert.Equal(t, 3, stats.UniqueCommands)
	assert.Equal(t, int64(100), stats.Oldest)
	assert.Equal(t, int64(400), stats.Newest)
	assert.InDelta(t, 0.75, stats.SuccessRate, 1e-9)
	assert.Positive(t, stats.FileSizeBytes)
	require.NotEmpty(t, stats.TopCommands)
	assert.Equal(t, CommandCount{Command: "git status", Count: 2}, stats.TopCommands[0])
}

func TestStore_ReportsZeroStats_When_Empty(t *testing.T) {
	t.Parallel()

	store := testStore(t)
	stats, err := store.Stats()
	require.NoError(t, err)
	assert.Zero(t, stats.Entries)
	assert.Zero(t, stats.Oldest)
	assert.Zero(t, stats.Newest)
	assert.Empty(t, stats.TopCommands)
}

func TestTopCommands_BreaksTies_When_CountsEqual(t *testing.T) {
	t.Parallel()

	counts := map[string]int{"b": 2, "a": 2, "c": 5, "d": 1}
	ranked := topCommands(counts, 3)
	require.Len(t, ranked, 3)
	assert.Equal(t, "c", ranked[0].Command)
	assert.Equal(t, "a", ranked[1].Command)
	assert.Equal(t, "b", ranked[2].Command)
}
