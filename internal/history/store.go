package history

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const historyFilename = "history.jsonl"

// Store reads and writes the JSON-lines history file.
type Store struct {
	// Path is the history file location, normally DefaultPath().
	Path string
}

// NewStore opens a store at the default location. The file itself is
// created lazily on first append.
func NewStore() (*Store, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return &Store{Path: path}, nil
}

// DefaultPath resolves the history file location, honoring
// XDG_DATA_HOME before falling back to ~/.local/share.
func DefaultPath() (string, error) {
	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve history path: %w", err)
		}
		dataDir = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataDir, "zush", historyFilename), nil
}

// Append adds one entry to the end of the history file, creating the
// file and its directory as needed. The write happens under an
// exclusive lock so entries from concurrent shells never interleave.
func (s *Store) Append(entry Entry) error {
	if err := os.MkdirAll(filepath.Dir(s.Path), 0o755); err != nil {
		return fmt.Errorf("create history directory: %w", err)
	}
	f, err := os.OpenFile(s.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open history file: %w", err)
	}
	defer f.Close()

	if err := lockFile(f, true); err != nil {
		return fmt.Errorf("lock history file: %w", err)
	}
	defer unlockFile(f)

	line, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("encode history entry: %w", err)
	}
	if _, err := f.Write(append(line, '\n')); err != nil {
		return fmt.Errorf("write history entry: %w", err)
	}
	return nil
}

// ReadAll returns every parseable entry in file order, oldest first.
// A missing file is an empty history, and malformed lines are skipped
// so one bad write cannot poison the whole file.
func (s *Store) ReadAll() ([]Entry, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("open history file: %w", err)
	}
	defer f.Close()

	if err := lockFile(f, false); err != nil {
		return nil, fmt.Errorf("lock history file: %w", err)
	}
	defer unlockFile(f)

	var entries []Entry
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var entry Entry
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			continue
		}
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read history file: %w", err)
	}
	return entries, nil
}

// ReadRecent returns the last n entries in file order.
func (s *Store) ReadRecent(n int) ([]Entry, error) {
	entries, err := s.ReadAll()
	if err != nil {
		return nil, err
	}
	if n <= 0 || len(entries) <= n {
		return entries, nil
	}
	return entries[len(entries)-n:], nil
}

// ClearAll truncates the history file. A missing file counts as
// already cleared.
func (s *Store) ClearAll() error {
	if err := os.Truncate(s.Path, 0); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("clear history file: %w", err)
	}
	return nil
}

// ClearOlderThan removes entries older than the given number of days
// and reports how many were removed. The file is rewritten only when
// something actually expired.
func (s *Store) ClearOlderThan(days int) (int, error) {
	entries, err := s.ReadAll()
	if err != nil {
		return 0, err
	}
	cutoff := time.Now().Unix() - int64(days)*24*60*60
	kept := entries[:0]
	for _, entry := range entries {
		if entry.Timestamp >= cutoff {
			kept = append(kept, entry)
		}
	}
	removed := len(entries) - len(kept)
	if removed == 0 {
		return 0, nil
	}
	if err := s.rewrite(kept); err != nil {
		return 0, err
	}
	return removed, nil
}

func (s *Store) rewrite(entries []Entry) error {
	f, err := os.OpenFile(s.Path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("open history file: %w", err)
	}
	defer f.Close()

	if err := lockFile(f, true); err != nil {
		return fmt.Errorf("lock history file: %w", err)
	}
	defer unlockFile(f)

	w := bufio.NewWriter(f)
	for _, entry := range entries {
		line, err := json.Marshal(entry)
		if err != nil {
			return fmt.Errorf("encode history entry: %w", err)
		}
		w.Write(line)
		w.WriteByte('\n')
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("write history file: %w", err)
	}
	return nil
}
