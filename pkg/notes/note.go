// Package notes holds the lifecycle helpers for note records: default
// construction, edits, favorite toggling, tag normalization, validation,
// and identifier generation.
package notes

import (
	"time"

	"github.com/aretw0/quire/pkg/core"
)

// Override customizes a note built by New.
type Override func(*core.Note)

// WithID forces the identifier instead of generating one.
func WithID(id string) Override {
	return func(n *core.Note) {
		n.ID = id
	}
}

// WithTitle sets the title.
func WithTitle(title string) Override {
	return func(n *core.Note) {
		n.Title = title
	}
}

// WithContent sets the body.
func WithContent(content string) Override {
	return func(n *core.Note) {
		n.Content = content
	}
}

// WithTags sets the tags, normalizing them.
func WithTags(tags ...string) Override {
	return func(n *core.Note) {
		n.Tags = NormalizeTags(tags)
	}
}

// WithPriority sets the priority.
func WithPriority(p core.Priority) Override {
	return func(n *core.Note) {
		n.Priority = p
	}
}

// WithCategory sets the category.
func WithCategory(c core.Category) Override {
	return func(n *core.Note) {
		n.Category = c
	}
}

// WithFavorite sets the favorite flag.
func WithFavorite(fav bool) Override {
	return func(n *core.Note) {
		n.IsFavorite = fav
	}
}

// WithDraft copies every editable field of d.
func WithDraft(d core.Draft) Override {
	return func(n *core.Note) {
		n.Title = d.Title
		n.Content = d.Content
		n.Tags = NormalizeTags(d.Tags)
		n.Priority = core.Priority(d.Priority)
		n.Category = core.Category(d.Category)
	}
}

// New builds a note with the defaults (medium priority, task category,
// not favorite, no tags), applies the overrides, and stamps both timestamps with now.
func New(now time.Time, overrides ...Override) core.Note {
	n := core.Note{
		Priority:  core.PriorityMedium,
		Category:  core.CategoryTask,
		Tags:      []string{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, o := range overrides {
		o(&n)
	}
	if n.ID == "" {
		n.ID = GenerateID()
	}
	if n.Tags == nil {
		n.Tags = []string{}
	}
	return n
}

// Edit replaces the editable fields of n with d, keeping ID and CreatedAt.
func Edit(n core.Note, d core.Draft, now time.Time) core.Note {
	out := n.Clone()
	WithDraft(d)(&out)
	out.UpdatedAt = touch(out.CreatedAt, now)
	return out
}

// ToggleFavorite flips the favorite flag and refreshes UpdatedAt.
func ToggleFavorite(n core.Note, now time.Time) core.Note {
	out := n.Clone()
	out.IsFavorite = !out.IsFavorite
	out.UpdatedAt = touch(out.CreatedAt, now)
	return out
}

// touch keeps CreatedAt <= UpdatedAt even if the wall clock stepped backwards.
func touch(created, now time.Time) time.Time {
	if now.Before(created) {
		return created
	}
	return now
}
