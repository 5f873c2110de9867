// Package export writes the note collection to a portable file and reads it back.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/quire/pkg/core"
)

// Format names an export encoding.
type Format string

const (
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatMarkdown Format = "markdown"
)

// Formats lists every writable format.
var Formats = []Format{FormatJSON, FormatYAML, FormatMarkdown}

// ParseFormat accepts a format name or a common file extension.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "", "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	}
	return "", fmt.Errorf("unknown export format %q", s)
}

// Ext returns the file extension, without the dot.
func (f Format) Ext() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatMarkdown:
		return "md"
	default:
		return "json"
	}
}

// FileName returns the suggested export file name for the local date of now,
// e.g. quire-export-2026-05-10.json.
func FileName(f Format, now time.Time) string {
	return fmt.Sprintf("quire-export-%s.%s", now.Format(time.DateOnly), f.Ext())
}

// Write encodes notes to w.
func Write(w io.Writer, notes []core.Note, f Format) error {
	if notes == nil {
		notes = []core.Note{}
	}
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(notes)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(notes); err != nil {
			return err
		}
		return enc.Close()
	case FormatMarkdown:
		return writeMarkdown(w, notes)
	}
	return fmt.Errorf("unknown export format %q", f)
}

// frontmatter is the per-note metadata block of a Markdown export.
type frontmatter struct {
	ID         string        `yaml:"id"`
	Tags       []string      `yaml:"tags,flow"`
	Priority   core.Priority `yaml:"priority"`
	Category   core.Category `yaml:"category"`
	IsFavorite bool          `yaml:"isFavorite"`
	CreatedAt  time.Time     `yaml:"createdAt"`
	UpdatedAt  time.Time     `yaml:"updatedAt"`
}

func writeMarkdown(w io.Writer, notes []core.Note) error {
	var buf bytes.Buffer
	for i, n := range notes {
		if i > 0 {
			buf.WriteString("\n")
		}
		meta, err := yaml.Marshal(frontmatter{
			ID:         n.ID,
			Tags:       n.Tags,
			Priority:   n.Priority,
			Category:   n.Category,
			IsFavorite: n.IsFavorite,
			CreatedAt:  n.CreatedAt,
			UpdatedAt:  n.UpdatedAt,
		})
		if err != nil {
			return fmt.Errorf("failed to marshal frontmatter for %s: %w", n.ID, err)
		}
		buf.WriteString("---\n")
		buf.Write(meta)
		buf.WriteString("---\n")
		fmt.Fprintf(&buf, "# %s\n\n", n.Title)
		buf.WriteString(strings.TrimRight(n.Content, "\n"))
		buf.WriteString("\n")
	}
	_, err := w.Write(buf.Bytes())
	return err
}

// Read decodes a JSON or YAML export.
func Read(r io.Reader, f Format) ([]core.Note, error) {
	var notes []core.Note
	switch f {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&notes); err != nil {
			return nil, fmt.Errorf("failed to decode json export: %w", err)
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&notes); err != nil && err != io.EOF {
			return nil, fmt.Errorf("failed to decode yaml export: %w", err)
		}
	default:
		return nil, fmt.Errorf("cannot import %s exports", f)
	}
	if notes == nil {
		notes = []core.Note{}
	}
	return notes, nil
}
