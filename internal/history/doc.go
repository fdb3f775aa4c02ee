// Package history records executed commands and searches them back.
//
// # Storage
//
// Entries are appended as JSON lines to
// $XDG_DATA_HOME/zush/history.jsonl (falling back to ~/.local/share).
// Appends and rewrites take an exclusive flock so concurrent shells can
// share one file; reads take a shared lock. Malformed lines are skipped
// on read, never repaired.
//
// # Search
//
// Search applies a SearchFilter (directory prefix, session, hostname,
// successful-only, time bounds) and then fuzzy-ranks commands against
// the query. An empty query returns the filtered entries most recent
// first.
//
// # Picker
//
// RunPicker presents the interactive Ctrl+R picker on /dev/tty so it
// works from a ZLE widget where stdin and stdout are redirected.
package history
