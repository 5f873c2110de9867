package query

import (
	"slices"
	"time"

	"github.com/aretw0/quire/pkg/core"
)

// RecentWindow is the trailing window counted by Stats.RecentNotes.
const RecentWindow = 7 * 24 * time.Hour

// UniqueTags returns the union of every note's tags, case as stored,
// deduplicated and sorted lexicographically.
func UniqueTags(notes []core.Note) []string {
	seen := make(map[string]struct{})
	for _, n := range notes {
		for _, t := range n.Tags {
			seen[t] = struct{}{}
		}
	}

	tags := make([]string, 0, len(seen))
	for t := range seen {
		tags = append(tags, t)
	}
	slices.Sort(tags)
	return tags
}

// ComputeStats summarizes notes as of now.
// ByPriority always carries every priority; ByCategory only those that occur.
// A note is recent when CreatedAt >= now-RecentWindow (lower bound inclusive).
func ComputeStats(notes []core.Note, now time.Time) core.Stats {
	s := core.Stats{
		Total:      len(notes),
		ByPriority: make(map[core.Priority]int, len(core.AllPriorities)),
		ByCategory: make(map[core.Category]int),
	}
	for _, p := range core.AllPriorities {
		s.ByPriority[p] = 0
	}

	cutoff := now.Add(-RecentWindow)
	for _, n := range notes {
		if n.IsFavorite {
			s.Favorites++
		}
		s.ByPriority[n.Priority]++
		s.ByCategory[n.Category]++
		if !n.CreatedAt.Before(cutoff) {
			s.RecentNotes++
		}
	}
	s.TotalTags = len(UniqueTags(notes))
	return s
}
