package notes

import (
	"strings"
	"unicode"
)

// ParseTags splits raw user input on commas and whitespace runs.
// Pieces are trimmed and lower-cased; empty pieces are dropped. Duplicates are kept.
func ParseTags(raw string) []string {
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})

	tags := make([]string, 0, len(fields))
	for _, f := range fields {
		if t := strings.ToLower(strings.TrimSpace(f)); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// NormalizeTags applies the ParseTags rules to tags that arrive already split
// (e.g. from an import file), so stored tags are always normalized.
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		out = append(out, ParseTags(t)...)
	}
	return out
}
