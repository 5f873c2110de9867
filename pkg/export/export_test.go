package export_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/quire/pkg/core"
	"github.com/aretw0/quire/pkg/export"
	"github.com/aretw0/quire/pkg/notes"
)

var now = time.Date(2026, 3, 7, 18, 45, 0, 0, time.UTC)

func TestFileName(t *testing.T) {
	assert.Equal(t, "quire-export-2026-03-07.json", export.FileName(export.FormatJSON, now))
	assert.Equal(t, "quire-export-2026-03-07.md", export.FileName(export.FormatMarkdown, now))
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]export.Format{
		"": export.FormatJSON, "JSON": export.FormatJSON, "yml": export.FormatYAML,
		".md": export.FormatMarkdown, "markdown": export.FormatMarkdown,
	} {
		got, err := export.ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := export.ParseFormat("csv")
	assert.Error(t, err)
}

func TestWrite_JSONIsPrettyPrinted(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.Write(&buf, notes.SampleNotes(now)[:1], export.FormatJSON))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "[\n  {\n    \"id\": "), out)
	assert.True(t, json.Valid(buf.Bytes()))
}

func TestWrite_EmptyJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.Write(&buf, nil, export.FormatJSON))
	assert.Equal(t, "[]\n", buf.String())
}

func TestRoundTrip(t *testing.T) {
	want := notes.SampleNotes(now)
	for _, f := range []export.Format{export.FormatJSON, export.FormatYAML} {
		t.Run(string(f), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, export.Write(&buf, want, f))

			got, err := export.Read(&buf, f)
			require.NoError(t, err)
			require.Len(t, got, len(want))
			for i := range want {
				assert.Equal(t, want[i].ID, got[i].ID)
				assert.Equal(t, want[i].Tags, got[i].Tags)
				assert.True(t, want[i].CreatedAt.Equal(got[i].CreatedAt))
			}
		})
	}
}

func TestWrite_Markdown(t *testing.T) {
	n := notes.New(now,
		notes.WithID("n1"),
		notes.WithTitle("Weekly sync"),
		notes.WithContent("Agreed on Thursdays."),
		notes.WithTags("team"),
		notes.WithCategory(core.CategoryMeeting),
	)

	var buf bytes.Buffer
	require.NoError(t, export.Write(&buf, []core.Note{n, n}, export.FormatMarkdown))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "---\nid: n1\ntags: [team]\n"), out)
	assert.Contains(t, out, "category: meeting\n")
	assert.Contains(t, out, "---\n# Weekly sync\n\nAgreed on Thursdays.\n")
	assert.Equal(t, 4, strings.Count(out, "---\n"))

	_, err := export.Read(strings.NewReader(out), export.FormatMarkdown)
	assert.Error(t, err)
}
