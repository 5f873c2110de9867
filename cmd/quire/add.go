package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/quire"
	"github.com/aretw0/quire/pkg/core"
	"github.com/aretw0/quire/pkg/notes"
)

var (
	noteTitle    string
	noteContent  string
	noteTags     string
	notePriority string
	noteCategory string
	noteFavorite bool
)

var addCmd = &cobra.Command{
	Use:   "add [title]",
	Short: "Create a note",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 && noteTitle == "" {
			noteTitle = args[0]
		}
		d := core.Draft{
			Title:    noteTitle,
			Content:  noteContent,
			Tags:     quire.ParseTags(noteTags),
			Priority: notePriority,
			Category: noteCategory,
		}
		return withService(cmd, func(ctx context.Context, svc *quire.Service) error {
			n, err := svc.Create(ctx, d, notes.WithFavorite(noteFavorite))
			if err != nil {
				return err
			}
			fmt.Printf("Created note %s\n", n.ID)
			return nil
		})
	},
}

func noteFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&noteTitle, "title", "", "Note title")
	f.StringVarP(&noteContent, "content", "c", "", "Note content")
	f.StringVarP(&noteTags, "tags", "t", "", "Tags, separated by commas or spaces")
	f.StringVarP(&notePriority, "priority", "p", string(core.PriorityMedium),
		"Priority ("+joinPriorities()+")")
	f.StringVar(&noteCategory, "category", string(core.CategoryTask),
		"Category ("+joinCategories()+")")
}

func joinPriorities() string {
	out := make([]string, len(core.AllPriorities))
	for i, p := range core.AllPriorities {
		out[i] = string(p)
	}
	return strings.Join(out, ", ")
}

func joinCategories() string {
	out := make([]string, len(core.AllCategories))
	for i, c := range core.AllCategories {
		out[i] = string(c)
	}
	return strings.Join(out, ", ")
}

func init() {
	rootCmd.AddCommand(addCmd)
	noteFlags(addCmd)
	addCmd.Flags().BoolVar(&noteFavorite, "favorite", false, "Mark the note as favorite")
}
