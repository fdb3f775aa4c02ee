package history

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Entry is one recorded command. The short JSON keys keep the history
// file compact; a day of heavy use is a few thousand lines.
type Entry struct {
	Timestamp  int64  `json:"ts"`
	Directory  string `json:"dir"`
	SessionID  string `json:"sid"`
	Command    string `json:"cmd"`
	ExitCode   int    `json:"exit"`
	DurationMs int64  `json:"dur"`
	Hostname   string `json:"host"`
}

// NewEntry stamps a command with the current time.
func NewEntry(command, directory, sessionID string, exitCode int, durationMs int64, hostname string) Entry {
	return Entry{
		Timestamp:  time.Now().Unix(),
		Directory:  directory,
		SessionID:  sessionID,
		Command:    command,
		ExitCode:   exitCode,
		DurationMs: durationMs,
		Hostname:   hostname,
	}
}

// NewSessionID returns a fresh session identifier for shells that do
// not supply their own.
func NewSessionID() string {
	return uuid.NewString()
}

// FormattedTime renders the timestamp in local time for display.
func (e Entry) FormattedTime() string {
	return time.Unix(e.Timestamp, 0).Format("2006-01-02 15:04:05")
}

// FormattedDuration renders the runtime at a precision that matches its
// magnitude: milliseconds under a second, tenths of a second under a
// minute, then whole minutes and seconds.
func (e Entry) FormattedDuration() string {
	switch {
	case e.DurationMs < 1000:
		return fmt.Sprintf("%dms", e.DurationMs)
	case e.DurationMs < 60000:
		return fmt.Sprintf("%.1fs", float64(e.DurationMs)/1000.0)
	default:
		return fmt.Sprintf("%dm%ds", e.DurationMs/60000, (e.DurationMs%60000)/1000)
	}
}

// ShortDir abbreviates the home directory to ~ the way prompts do.
func (e Entry) ShortDir() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return e.Directory
	}
	return strings.ReplaceAll(e.Directory, home, "~")
}
