package query

import (
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/aretw0/quire/pkg/core"
)

// DefaultLocale drives title collation when Sort is called without a locale.
var DefaultLocale = language.English

// Sort returns a new slice ordered by opt. The input is never mutated.
// Every ordering is stable: notes that compare equal keep their input order.
// Unknown options return an unsorted copy.
func Sort(notes []core.Note, opt core.SortOption) []core.Note {
	return SortLocale(notes, opt, DefaultLocale)
}

// SortLocale is Sort with an explicit collation locale for the title ordering.
func SortLocale(notes []core.Note, opt core.SortOption, tag language.Tag) []core.Note {
	out := slices.Clone(notes)
	if out == nil {
		out = []core.Note{}
	}

	switch opt {
	case core.SortNewest:
		slices.SortStableFunc(out, func(a, b core.Note) int {
			return b.CreatedAt.Compare(a.CreatedAt)
		})
	case core.SortOldest:
		slices.SortStableFunc(out, func(a, b core.Note) int {
			return a.CreatedAt.Compare(b.CreatedAt)
		})
	case core.SortTitle:
		// Collators keep internal buffers; one per call.
		col := collate.New(tag)
		slices.SortStableFunc(out, func(a, b core.Note) int {
			return col.CompareString(a.Title, b.Title)
		})
	case core.SortPriority:
		slices.SortStableFunc(out, func(a, b core.Note) int {
			return b.Priority.Rank() - a.Priority.Rank()
		})
	}
	return out
}
