package main

import (
	"bytes"
	"regexp"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/quire/pkg/core"
	"github.com/aretw0/quire/pkg/notes"
)

func TestResolveID(t *testing.T) {
	list := []core.Note{
		{ID: "0190aaaa-0000-7000-8000-000000000abc"},
		{ID: "0190bbbb-0000-7000-8000-000000000def"},
		{ID: "0190cccc-0000-7000-8000-111111111def"},
	}

	id, err := resolveID(list, list[0].ID)
	require.NoError(t, err)
	assert.Equal(t, list[0].ID, id)

	id, err = resolveID(list, "0abc")
	require.NoError(t, err)
	assert.Equal(t, list[0].ID, id)

	_, err = resolveID(list, "def")
	assert.ErrorContains(t, err, "ambiguous")

	_, err = resolveID(list, "zzz")
	assert.ErrorIs(t, err, core.ErrNotFound)

	for _, blank := range []string{"", "  "} {
		_, err = resolveID(list[:1], blank)
		assert.ErrorContains(t, err, "empty note id", "ref %q", blank)
	}

	id, err = resolveID(list, " 0abc ")
	require.NoError(t, err)
	assert.Equal(t, list[0].ID, id)
}

func TestListFilters(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.Flags().BoolVar(&listFavorite, "favorite", false, "")
	t.Cleanup(func() {
		listQuery, listPriority, listCategory, listTags = "", "", "", nil
	})

	listQuery = "login"
	listPriority = "HIGH"
	listTags = []string{"Front", "auth"}
	require.NoError(t, cmd.Flags().Set("favorite", "true"))

	f, err := listFilters(cmd)
	require.NoError(t, err)
	assert.Equal(t, "login", f.Query)
	require.NotNil(t, f.Priority)
	assert.Equal(t, core.PriorityHigh, *f.Priority)
	assert.Nil(t, f.Category)
	require.NotNil(t, f.IsFavorite)
	assert.True(t, *f.IsFavorite)
	assert.Equal(t, []string{"front", "auth"}, f.Tags)

	listCategory = "chores"
	_, err = listFilters(cmd)
	assert.Error(t, err)
}

func TestPrintTable(t *testing.T) {
	color.NoColor = true
	now := time.Date(2026, 2, 1, 10, 0, 0, 0, time.Local)
	n := notes.New(now, notes.WithID("abcdef0123456789"), notes.WithTitle("Weekly sync"), notes.WithTags("team"))

	var buf bytes.Buffer
	printTable(&buf, []core.Note{n})
	out := buf.String()

	assert.Contains(t, out, "23456789")
	assert.Contains(t, out, "Weekly sync")
	assert.Contains(t, out, "2026-02-01")
	assert.Equal(t, 2, strings.Count(out, "\n"))
}

var ansi = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func TestPrintTable_ColouredColumnsStayAligned(t *testing.T) {
	prev := color.NoColor
	color.NoColor = false
	t.Cleanup(func() { color.NoColor = prev })

	now := time.Date(2026, 2, 1, 10, 0, 0, 0, time.Local)
	list := []core.Note{
		notes.New(now, notes.WithID("id-000000001"), notes.WithTitle("a"),
			notes.WithPriority(core.PriorityHigh), notes.WithFavorite(true)),
		notes.New(now, notes.WithID("id-000000002"), notes.WithTitle("b"),
			notes.WithPriority(core.PriorityMedium)),
		notes.New(now, notes.WithID("id-000000003"), notes.WithTitle("c"),
			notes.WithPriority(core.PriorityLow)),
	}

	var buf bytes.Buffer
	printTable(&buf, list)
	require.True(t, ansi.MatchString(buf.String()), "expected coloured output")

	lines := strings.Split(strings.TrimSuffix(ansi.ReplaceAllString(buf.String(), ""), "\n"), "\n")
	require.Len(t, lines, 4)
	idCol := column(lines[0], "ID")
	for i, n := range list {
		assert.Equal(t, idCol, column(lines[i+1], shortID(n.ID)), "row %d: %q", i, lines[i+1])
	}
	assert.Equal(t, column(lines[0], "TITLE"), column(lines[2], "b"))
}

// column is the rune offset of sub in line.
func column(line, sub string) int {
	i := strings.Index(line, sub)
	if i < 0 {
		return -1
	}
	return utf8.RuneCountInString(line[:i])
}
