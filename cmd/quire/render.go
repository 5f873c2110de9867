package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"

	"github.com/aretw0/quire/pkg/core"
)

func priorityLabel(p core.Priority) string {
	return colorPriority(p, string(p))
}

// colorPriority paints text in the colour of p.
func colorPriority(p core.Priority, text string) string {
	switch p {
	case core.PriorityHigh:
		return color.New(color.FgRed, color.Bold).Sprint(text)
	case core.PriorityMedium:
		return color.New(color.FgYellow).Sprint(text)
	case core.PriorityLow:
		return color.New(color.FgGreen).Sprint(text)
	}
	return text
}

func favoriteMark(fav bool) string {
	if fav {
		return color.New(color.FgYellow).Sprint("★")
	}
	return " "
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[len(id)-8:]
	}
	return id
}

const priorityWidth = len("PRIORITY")

var cellReplacer = strings.NewReplacer("\t", " ", "\n", " ", "\r", " ")

// printTable lays out the plain columns with a tabwriter and prefixes each row
// with the coloured ones, already padded, so escape codes never skew widths.
func printTable(w io.Writer, notes []core.Note) {
	var body bytes.Buffer
	tw := tabwriter.NewWriter(&body, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCATEGORY\tTITLE\tTAGS\tCREATED")
	for _, n := range notes {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			shortID(n.ID),
			n.Category,
			cellReplacer.Replace(n.Title),
			strings.Join(n.Tags, ","),
			n.CreatedAt.Local().Format(time.DateOnly),
		)
	}
	tw.Flush()

	rows := strings.Split(strings.TrimSuffix(body.String(), "\n"), "\n")
	fmt.Fprintf(w, "  %-*s  %s\n", priorityWidth, "PRIORITY", rows[0])
	for i, n := range notes {
		label := colorPriority(n.Priority, fmt.Sprintf("%-*s", priorityWidth, n.Priority))
		fmt.Fprintf(w, "%s %s  %s\n", favoriteMark(n.IsFavorite), label, rows[i+1])
	}
}

func printNote(w io.Writer, n core.Note) {
	bold := color.New(color.Bold)
	fmt.Fprintf(w, "%s %s\n", favoriteMark(n.IsFavorite), bold.Sprint(n.Title))
	fmt.Fprintf(w, "  id:       %s\n", n.ID)
	fmt.Fprintf(w, "  priority: %s\n", priorityLabel(n.Priority))
	fmt.Fprintf(w, "  category: %s\n", n.Category)
	if len(n.Tags) > 0 {
		fmt.Fprintf(w, "  tags:     %s\n", strings.Join(n.Tags, ", "))
	}
	fmt.Fprintf(w, "  created:  %s\n", n.CreatedAt.Local().Format(time.DateTime))
	fmt.Fprintf(w, "  updated:  %s\n", n.UpdatedAt.Local().Format(time.DateTime))
	fmt.Fprintf(w, "\n%s\n", n.Content)
}

// resolveID accepts a full ID or a unique suffix (as shown by list).
func resolveID(notes []core.Note, ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", errors.New("empty note id")
	}
	var match string
	for _, n := range notes {
		if n.ID == ref {
			return n.ID, nil
		}
		if strings.HasSuffix(n.ID, ref) {
			if match != "" {
				return "", fmt.Errorf("ambiguous id %q", ref)
			}
			match = n.ID
		}
	}
	if match == "" {
		return "", fmt.Errorf("%w: %s", core.ErrNotFound, ref)
	}
	return match, nil
}
