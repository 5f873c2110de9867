package notes_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/aretw0/quire/pkg/core"
	"github.com/aretw0/quire/pkg/notes"
)

func TestParseTags(t *testing.T) {
	t.Run("Commas And Whitespace", func(t *testing.T) {
		assert.Equal(t, []string{"bug", "urgent", "frontend"}, notes.ParseTags("Bug, Urgent  frontend"))
	})

	t.Run("Drops Empty Pieces", func(t *testing.T) {
		assert.Equal(t, []string{"a", "b"}, notes.ParseTags(" ,, a ,\t\n b , "))
	})

	t.Run("Keeps Duplicates", func(t *testing.T) {
		assert.Equal(t, []string{"go", "go"}, notes.ParseTags("go, GO"))
	})

	t.Run("Empty Input", func(t *testing.T) {
		assert.Empty(t, notes.ParseTags("   "))
	})
}

func testParseTagsNormalized(t *rapid.T) {
	raw := rapid.StringMatching(`[A-Za-z0-9 ,\t]{0,60}`).Draw(t, "raw")
	for _, tag := range notes.ParseTags(raw) {
		if tag == "" {
			t.Fatalf("empty tag from %q", raw)
		}
		if tag != strings.ToLower(tag) {
			t.Fatalf("tag %q not lower-cased", tag)
		}
		if strings.ContainsAny(tag, ", \t") {
			t.Fatalf("tag %q contains a separator", tag)
		}
	}
}

func TestParseTags_Normalized(t *testing.T) {
	t.Parallel()
	rapid.Check(t, testParseTagsNormalized)
}

func TestValidate(t *testing.T) {
	t.Run("Missing Title Only", func(t *testing.T) {
		msgs := notes.Validate(core.Draft{Title: "", Content: "x", Priority: "high", Category: "bug"})
		require.Len(t, msgs, 1)
		assert.Equal(t, notes.MsgTitleRequired, msgs[0])
	})

	t.Run("Whitespace Counts As Empty", func(t *testing.T) {
		msgs := notes.Validate(core.Draft{Title: "  ", Content: "\t", Priority: "low", Category: "task"})
		assert.Equal(t, []string{notes.MsgTitleRequired, notes.MsgContentRequired}, msgs)
	})

	t.Run("Unknown Enumerations", func(t *testing.T) {
		msgs := notes.Validate(core.Draft{Title: "t", Content: "c", Priority: "urgent", Category: ""})
		assert.Equal(t, []string{notes.MsgPriorityRequired, notes.MsgCategoryRequired}, msgs)
	})

	t.Run("Valid Draft", func(t *testing.T) {
		assert.Empty(t, notes.Validate(core.Draft{Title: "t", Content: "c", Priority: "medium", Category: "meeting"}))
		assert.NoError(t, notes.ValidateErr(core.Draft{Title: "t", Content: "c", Priority: "medium", Category: "meeting"}))
	})

	t.Run("ValidateErr Carries Messages", func(t *testing.T) {
		err := notes.ValidateErr(core.Draft{})
		var verr *core.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Len(t, verr.Messages, 4)
	})
}

func TestValidateNote(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	n := notes.New(now, notes.WithTitle("t"), notes.WithContent("c"))
	assert.NoError(t, notes.ValidateNote(n))

	n.UpdatedAt = now.Add(-time.Minute)
	assert.Error(t, notes.ValidateNote(n))

	n = notes.New(now, notes.WithTitle("t"), notes.WithContent("c"))
	n.ID = ""
	assert.Error(t, notes.ValidateNote(n))
}

func TestNew_Defaults(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	n := notes.New(now)

	assert.NotEmpty(t, n.ID)
	assert.Equal(t, core.PriorityMedium, n.Priority)
	assert.Equal(t, core.CategoryTask, n.Category)
	assert.False(t, n.IsFavorite)
	assert.NotNil(t, n.Tags)
	assert.Empty(t, n.Tags)
	assert.Equal(t, now, n.CreatedAt)
	assert.Equal(t, now, n.UpdatedAt)
}

func TestNew_Overrides(t *testing.T) {
	now := time.Now()
	n := notes.New(now,
		notes.WithID("fixed"),
		notes.WithTitle("Title"),
		notes.WithContent("Body"),
		notes.WithTags("Go", " Tools "),
		notes.WithPriority(core.PriorityHigh),
		notes.WithCategory(core.CategoryBug),
		notes.WithFavorite(true),
	)

	assert.Equal(t, "fixed", n.ID)
	assert.Equal(t, "Title", n.Title)
	assert.Equal(t, "Body", n.Content)
	assert.Equal(t, []string{"go", "tools"}, n.Tags)
	assert.Equal(t, core.PriorityHigh, n.Priority)
	assert.Equal(t, core.CategoryBug, n.Category)
	assert.True(t, n.IsFavorite)
}

func TestEdit_PreservesIdentity(t *testing.T) {
	created := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	n := notes.New(created, notes.WithTitle("old"), notes.WithContent("old"), notes.WithFavorite(true))

	later := created.Add(time.Hour)
	edited := notes.Edit(n, core.Draft{
		Title:    "new",
		Content:  "new body",
		Tags:     []string{"A", "b"},
		Priority: "high",
		Category: "bug",
	}, later)

	assert.Equal(t, n.ID, edited.ID)
	assert.Equal(t, created, edited.CreatedAt)
	assert.Equal(t, later, edited.UpdatedAt)
	assert.Equal(t, "new", edited.Title)
	assert.Equal(t, []string{"a", "b"}, edited.Tags)
	assert.True(t, edited.IsFavorite, "edit must not touch the favorite flag")
	assert.Equal(t, "old", n.Title, "input must not be mutated")
}

func TestToggleFavorite(t *testing.T) {
	created := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	n := notes.New(created)

	on := notes.ToggleFavorite(n, created.Add(time.Minute))
	assert.True(t, on.IsFavorite)
	assert.Equal(t, created.Add(time.Minute), on.UpdatedAt)

	off := notes.ToggleFavorite(on, created.Add(2*time.Minute))
	assert.False(t, off.IsFavorite)
}

func TestTouch_ClockStepBack(t *testing.T) {
	created := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	n := notes.New(created)

	toggled := notes.ToggleFavorite(n, created.Add(-time.Hour))
	assert.False(t, toggled.UpdatedAt.Before(toggled.CreatedAt))
}

func TestGenerateID_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := notes.GenerateID()
		require.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestSampleNotes_Valid(t *testing.T) {
	now := time.Now()
	samples := notes.SampleNotes(now)
	require.NotEmpty(t, samples)
	for _, n := range samples {
		assert.NoError(t, notes.ValidateNote(n), n.Title)
	}
}
