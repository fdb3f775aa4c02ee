package history

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntry_UsesCompactKeys_When_Encoded(t *testing.T) {
	t.Parallel()

	entry := Entry{
		Timestamp:  1700000000,
		Directory:  "/home/alex/dev/api",
		SessionID:  "s-1",
		Command:    "git status",
		ExitCode:   0,
		DurationMs: 42,
		Hostname:   "workbox",
	}

	raw, err := json.Marshal(entry)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"ts": 1700000000,
		"dir": "/home/alex/dev/api",
		"sid": "s-1",
		"cmd": "git status",
		"exit": 0,
		"dur": 42,
		"host": "workbox"
	}`, string(raw))

	var decoded Entry
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, entry, decoded)
}

func TestEntry_FormatsDuration_When_MagnitudeVaries(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		durationMs int64
		want       string
	}{
		{name: "instant", durationMs: 0, want: "0ms"},
		{name: "sub second", durationMs: 500, want: "500ms"},
		{name: "seconds", durationMs: 2500, want: "2.5s"},
		{name: "whole minute", durationMs: 60000, want: "1m0s"},
		{name: "minutes and seconds", durationMs: 125000, want: "2m5s"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			entry := Entry{DurationMs: tc.durationMs}
			assert.Equal(t, tc.want, entry.FormattedDuration())
		})
	}
}

func TestEntry_FormatsTime_When_Rendered(t *testing.T) {
	t.Parallel()

	ts := time.Date(2025, 3, 9, 14, 30, 5, 0, time.Local).Unix()
	entry := Entry{Timestamp: ts}
	assert.Equal(t, "2025-03-09 14:30:05", entry.FormattedTime())
}

func TestEntry_ShortensHome_When_DirectoryUnderIt(t *testing.T) {
	t.Setenv("HOME", "/home/alex")

	assert.Equal(t, "~/dev/api", Entry{Directory: "/home/alex/dev/api"}.ShortDir())
	assert.Equal(t, "/tmp/scratch", Entry{Directory: "/tmp/scratch"}.ShortDir())
}

func TestNewEntry_StampsCurrentTime_When_Created(t *testing.T) {
	t.Parallel()

	before := time.Now().Unix()
	entry := NewEntry("make test", "/srv/app", "s-9", 2, 1500, "buildhost")
	after := time.Now().Unix()

	assert.GreaterOrEqual(t, entry.Timestamp, before)
	assert.LessOrEqual(t, entry.Timestamp, after)
	assert.Equal(t, "make test", entry.Command)
	assert.Equal(t, "/srv/app", entry.Directory)
	assert.Equal(t, "s-9", entry.SessionID)
	assert.Equal(t, 2, entry.ExitCode)
	assert.Equal(t, int64(1500), entry.DurationMs)
	assert.Equal(t, "buildhost", entry.Hostname)
}

func TestNewSessionID_ReturnsDistinctValues_When_CalledTwice(t *testing.T) {
	t.Parallel()

	first := NewSessionID()
	second := NewSessionID()
	assert.Len(t, first, 36)
	assert.NotEqual(t, first, second)
}
