package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/quire"
	"github.com/aretw0/quire/pkg/core"
)

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a note; only the given flags change",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withService(cmd, func(ctx context.Context, svc *quire.Service) error {
			id, err := resolveID(svc.Notes(), args[0])
			if err != nil {
				return err
			}
			n, err := svc.Get(id)
			if err != nil {
				return err
			}

			d := core.DraftOf(n)
			f := cmd.Flags()
			if f.Changed("title") {
				d.Title = noteTitle
			}
			if f.Changed("content") {
				d.Content = noteContent
			}
			if f.Changed("tags") {
				d.Tags = quire.ParseTags(noteTags)
			}
			if f.Changed("priority") {
				d.Priority = notePriority
			}
			if f.Changed("category") {
				d.Category = noteCategory
			}

			updated, err := svc.Update(ctx, id, d)
			if err != nil {
				return err
			}
			fmt.Printf("Updated note %s\n", updated.ID)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
	noteFlags(editCmd)
}
