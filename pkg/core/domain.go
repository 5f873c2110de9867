// Package core holds the domain model of Quire: notes, their closed enumerations,
// the ephemeral query types, and the storage ports the rest of the module plugs into.
package core

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// Priority is the closed set of note priorities.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// AllPriorities lists every priority, highest rank first.
var AllPriorities = []Priority{PriorityHigh, PriorityMedium, PriorityLow}

// Valid reports whether p is one of the recognized priorities.
func (p Priority) Valid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// Rank orders priorities for sorting: high=3, medium=2, low=1.
// Unrecognized values rank 0 and sink to the bottom.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	}
	return 0
}

// ParsePriority converts user input into a Priority.
func ParsePriority(s string) (Priority, error) {
	p := Priority(strings.ToLower(strings.TrimSpace(s)))
	if !p.Valid() {
		return "", fmt.Errorf("unknown priority %q", s)
	}
	return p, nil
}

// Category is the closed set of note categories.
type Category string

const (
	CategoryBug      Category = "bug"
	CategoryTask     Category = "task"
	CategoryLearning Category = "learning"
	CategoryMeeting  Category = "meeting"
	CategoryFeedback Category = "feedback"
)

// AllCategories lists the built-in categories in display order.
var AllCategories = []Category{CategoryBug, CategoryTask, CategoryLearning, CategoryMeeting, CategoryFeedback}

// Valid reports whether c is one of the built-in categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryBug, CategoryTask, CategoryLearning, CategoryMeeting, CategoryFeedback:
		return true
	}
	return false
}

// ParseCategory converts user input into a Category.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", fmt.Errorf("unknown category %q", s)
	}
	return c, nil
}

// Note is the sole persisted entity.
// ID is the join key between the in-memory collection and the stored blob.
type Note struct {
	ID         string    `json:"id" yaml:"id"`
	Title      string    `json:"title" yaml:"title"`
	Content    string    `json:"content" yaml:"content"`
	Tags       []string  `json:"tags" yaml:"tags"`
	Priority   Priority  `json:"priority" yaml:"priority"`
	Category   Category  `json:"category" yaml:"category"`
	IsFavorite bool      `json:"isFavorite" yaml:"isFavorite"`
	CreatedAt  time.Time `json:"createdAt" yaml:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt" yaml:"updatedAt"`
}

// Clone returns a copy of n that shares no slices with it.
func (n Note) Clone() Note {
	n.Tags = slices.Clone(n.Tags)
	return n
}

// Draft carries the user-editable fields of a note, as typed into a form.
// Priority and Category stay raw strings so validation can report bad input.
type Draft struct {
	Title    string
	Content  string
	Tags     []string
	Priority string
	Category string
}

// DraftOf returns the editable fields of n.
func DraftOf(n Note) Draft {
	return Draft{
		Title:    n.Title,
		Content:  n.Content,
		Tags:     slices.Clone(n.Tags),
		Priority: string(n.Priority),
		Category: string(n.Category),
	}
}

// Filters is a structured query. A nil field imposes no constraint;
// a present field constrains even when it holds a zero value (IsFavorite=false).
type Filters struct {
	Query      string
	Priority   *Priority
	Category   *Category
	IsFavorite *bool
	Tags       []string
}

// IsZero reports whether no field of f is active.
func (f Filters) IsZero() bool {
	return f.Query == "" && f.Priority == nil && f.Category == nil && f.IsFavorite == nil && len(f.Tags) == 0
}

// SortOption selects the ordering of the displayed notes.
type SortOption string

const (
	SortNewest   SortOption = "newest"
	SortOldest   SortOption = "oldest"
	SortTitle    SortOption = "title"
	SortPriority SortOption = "priority"
)

// AllSortOptions lists every sort option.
var AllSortOptions = []SortOption{SortNewest, SortOldest, SortTitle, SortPriority}

// ParseSortOption converts user input into a SortOption.
func ParseSortOption(s string) (SortOption, error) {
	switch o := SortOption(strings.ToLower(strings.TrimSpace(s))); o {
	case SortNewest, SortOldest, SortTitle, SortPriority:
		return o, nil
	}
	return "", fmt.Errorf("unknown sort option %q", s)
}

// Stats summarizes a note collection.
type Stats struct {
	Total       int              `json:"total"`
	Favorites   int              `json:"favorites"`
	ByPriority  map[Priority]int `json:"byPriority"`
	ByCategory  map[Category]int `json:"byCategory"`
	RecentNotes int              `json:"recentNotes"`
	TotalTags   int              `json:"totalTags"`
}

// EventType represents the type of change observed in a store.
type EventType string

const (
	EventCreate EventType = "CREATE"
	EventModify EventType = "MODIFY"
	EventDelete EventType = "DELETE"
)

// Event represents a change to a stored key.
type Event struct {
	Type      EventType
	Key       string
	Timestamp int64 // Unix timestamp
}

func (e Event) String() string {
	return fmt.Sprintf("%s %s", e.Type, e.Key)
}
