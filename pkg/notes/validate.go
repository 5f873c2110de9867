package notes

import (
	"strings"

	"github.com/aretw0/quire/pkg/core"
)

// Validation messages, one per rule.
const (
	MsgTitleRequired    = "Title is required"
	MsgContentRequired  = "Content is required"
	MsgPriorityRequired = "Priority is required"
	MsgCategoryRequired = "Category is required"
)

// Validate returns one message per violated rule, or nil when d is valid.
// This is advisory validation for the user, not a schema enforced by the store.
func Validate(d core.Draft) []string {
	var msgs []string
	if strings.TrimSpace(d.Title) == "" {
		msgs = append(msgs, MsgTitleRequired)
	}
	if strings.TrimSpace(d.Content) == "" {
		msgs = append(msgs, MsgContentRequired)
	}
	if !core.Priority(d.Priority).Valid() {
		msgs = append(msgs, MsgPriorityRequired)
	}
	if !core.Category(d.Category).Valid() {
		msgs = append(msgs, MsgCategoryRequired)
	}
	return msgs
}

// ValidateErr is Validate expressed as an error: nil when valid,
// otherwise a *core.ValidationError carrying every message.
func ValidateErr(d core.Draft) error {
	if msgs := Validate(d); len(msgs) > 0 {
		return &core.ValidationError{Messages: msgs}
	}
	return nil
}

// ValidateNote checks a complete note, e.g. one read from an import file.
func ValidateNote(n core.Note) error {
	d := core.DraftOf(n)
	msgs := Validate(d)
	if strings.TrimSpace(n.ID) == "" {
		msgs = append(msgs, "ID is required")
	}
	if n.UpdatedAt.Before(n.CreatedAt) {
		msgs = append(msgs, "updatedAt must not precede createdAt")
	}
	if len(msgs) > 0 {
		return &core.ValidationError{Messages: msgs}
	}
	return nil
}
