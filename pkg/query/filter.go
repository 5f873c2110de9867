// Package query derives the displayed subset of notes: text search, structured
// filters, ordering, and collection statistics. Every function is pure: inputs are
// never mutated and equal inputs always produce equal outputs.
package query

import (
	"strings"

	"github.com/aretw0/quire/pkg/core"
)

// Predicate decides whether a note is retained.
type Predicate func(core.Note) bool

// Predicates returns one predicate per active field of f.
// A note is retained only if it satisfies all of them.
func Predicates(f core.Filters) []Predicate {
	var preds []Predicate

	if q := strings.ToLower(strings.TrimSpace(f.Query)); q != "" {
		preds = append(preds, func(n core.Note) bool {
			return strings.Contains(searchText(n), q)
		})
	}

	if f.Priority != nil {
		p := *f.Priority
		preds = append(preds, func(n core.Note) bool {
			return n.Priority == p
		})
	}

	if f.Category != nil {
		c := *f.Category
		preds = append(preds, func(n core.Note) bool {
			return n.Category == c
		})
	}

	if f.IsFavorite != nil {
		fav := *f.IsFavorite
		preds = append(preds, func(n core.Note) bool {
			return n.IsFavorite == fav
		})
	}

	if wanted := lowerAll(f.Tags); len(wanted) > 0 {
		preds = append(preds, func(n core.Note) bool {
			return matchesAnyTag(n.Tags, wanted)
		})
	}

	return preds
}

// Filter returns the notes satisfying every active field of f,
// in their original relative order.
func Filter(notes []core.Note, f core.Filters) []core.Note {
	preds := Predicates(f)
	out := make([]core.Note, 0, len(notes))
	for _, n := range notes {
		if all(preds, n) {
			out = append(out, n)
		}
	}
	return out
}

// Apply filters and then sorts: the displayed subset.
func Apply(notes []core.Note, f core.Filters, opt core.SortOption) []core.Note {
	return Sort(Filter(notes, f), opt)
}

func all(preds []Predicate, n core.Note) bool {
	for _, p := range preds {
		if !p(n) {
			return false
		}
	}
	return true
}

// searchText is the lower-cased haystack for the free-text query:
// title, content, tags, category and priority identifiers.
func searchText(n core.Note) string {
	var b strings.Builder
	b.WriteString(n.Title)
	b.WriteByte(' ')
	b.WriteString(n.Content)
	for _, t := range n.Tags {
		b.WriteByte(' ')
		b.WriteString(t)
	}
	b.WriteByte(' ')
	b.WriteString(string(n.Category))
	b.WriteByte(' ')
	b.WriteString(string(n.Priority))
	return strings.ToLower(b.String())
}

// matchesAnyTag reports whether some wanted tag is a substring of some note tag.
func matchesAnyTag(noteTags, wanted []string) bool {
	for _, w := range wanted {
		for _, t := range noteTags {
			if strings.Contains(strings.ToLower(t), w) {
				return true
			}
		}
	}
	return false
}

func lowerAll(tags []string) []string {
	var out []string
	for _, t := range tags {
		if t = strings.ToLower(strings.TrimSpace(t)); t != "" {
			out = append(out, t)
		}
	}
	return out
}
