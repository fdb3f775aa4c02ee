package history

import (
	"os"
	"sort"
)

// Stats summarizes the history file for `zush history stats`.
type Stats struct {
	Entries        int
	UniqueCommands int
	FileSizeBytes  int64
	Oldest         int64
	Newest         int64
	SuccessRate    float64
	TopCommands    []CommandCount
}

// CommandCount pairs a command with how often it was run.
type CommandCount struct {
	Command string
	Count   int
}

// Stats scans the whole file once. Oldest and Newest are zero when the
// history is empty.
func (s *Store) Stats() (Stats, error) {
	entries, err := s.ReadAll()
	if err != nil {
		return Stats{}, err
	}

	stats := Stats{Entries: len(entries)}
	if info, err := os.Stat(s.Path); err == nil {
		stats.FileSizeBytes = info.Size()
	}
	if len(entries) == 0 {
		return stats, nil
	}

	stats.Oldest = entries[0].Timestamp
	stats.Newest = entries[len(entries)-1].Timestamp

	succeeded := 0
	counts := make(map[string]int)
	for _, entry := range entries {
		counts[entry.Command]++
		if entry.ExitCode == 0 {
			succeeded++
		}
	}
	stats.UniqueCommands = len(counts)
	stats.SuccessRate = float64(succeeded) / float64(len(entries))
	stats.TopCommands = topCommands(counts, 5)
	return stats, nil
}

func topCommands(counts map[string]int, n int) []CommandCount {
	ranked := make([]CommandCount, 0, len(counts))
	for command, count := range counts {
		ranked = append(ranked, CommandCount{Command: command, Count: count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Command < ranked[j].Command
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
