package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/quire/pkg/core"
)

func TestPriority(t *testing.T) {
	assert.Equal(t, 3, core.PriorityHigh.Rank())
	assert.Equal(t, 2, core.PriorityMedium.Rank())
	assert.Equal(t, 1, core.PriorityLow.Rank())
	assert.Equal(t, 0, core.Priority("urgent").Rank())

	p, err := core.ParsePriority(" High ")
	require.NoError(t, err)
	assert.Equal(t, core.PriorityHigh, p)

	_, err = core.ParsePriority("urgent")
	assert.Error(t, err)
}

func TestCategory(t *testing.T) {
	for _, c := range core.AllCategories {
		assert.True(t, c.Valid(), c)
	}
	assert.False(t, core.Category("chores").Valid())

	c, err := core.ParseCategory("MEETING")
	require.NoError(t, err)
	assert.Equal(t, core.CategoryMeeting, c)
}

func TestParseSortOption(t *testing.T) {
	for _, o := range core.AllSortOptions {
		got, err := core.ParseSortOption(string(o))
		require.NoError(t, err)
		assert.Equal(t, o, got)
	}
	_, err := core.ParseSortOption("random")
	assert.Error(t, err)
}

func TestFilters_IsZero(t *testing.T) {
	assert.True(t, core.Filters{}.IsZero())
	assert.True(t, core.Filters{Tags: []string{}}.IsZero())

	fav := false
	assert.False(t, core.Filters{IsFavorite: &fav}.IsZero(), "a present false still constrains")
	assert.False(t, core.Filters{Query: "x"}.IsZero())
}

func TestNote_Clone(t *testing.T) {
	n := core.Note{ID: "1", Tags: []string{"a"}}
	c := n.Clone()
	c.Tags[0] = "b"
	assert.Equal(t, "a", n.Tags[0])

	empty := core.Note{Tags: []string{}}.Clone()
	assert.NotNil(t, empty.Tags)
}

func TestDraftOf(t *testing.T) {
	n := core.Note{Title: "t", Content: "c", Tags: []string{"x"}, Priority: core.PriorityLow, Category: core.CategoryBug}
	d := core.DraftOf(n)
	assert.Equal(t, core.Draft{Title: "t", Content: "c", Tags: []string{"x"}, Priority: "low", Category: "bug"}, d)
}

func TestEvent_String(t *testing.T) {
	assert.Equal(t, "MODIFY notes.json", core.Event{Type: core.EventModify, Key: "notes.json"}.String())
}

func TestValidationError(t *testing.T) {
	err := &core.ValidationError{Messages: []string{"Title is required", "Content is required"}}
	assert.Equal(t, "validation failed: Title is required; Content is required", err.Error())
}
