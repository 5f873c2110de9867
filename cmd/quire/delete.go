package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/quire"
)

var rmCmd = &cobra.Command{
	Use:     "rm <id>",
	Aliases: []string{"delete"},
	Short:   "Delete a note",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withService(cmd, func(ctx context.Context, svc *quire.Service) error {
			id, err := resolveID(svc.Notes(), args[0])
			if err != nil {
				return err
			}
			if err := svc.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Printf("Deleted note %s\n", id)
			return nil
		})
	},
}

var favCmd = &cobra.Command{
	Use:   "fav <id>",
	Short: "Toggle the favorite flag of a note",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withService(cmd, func(ctx context.Context, svc *quire.Service) error {
			id, err := resolveID(svc.Notes(), args[0])
			if err != nil {
				return err
			}
			n, err := svc.ToggleFavorite(ctx, id)
			if err != nil {
				return err
			}
			state := "removed from"
			if n.IsFavorite {
				state = "added to"
			}
			fmt.Printf("Note %s %s favorites\n", n.ID, state)
			return nil
		})
	},
}

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print a note",
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
			printNote(cmd.OutOrStdout(), n)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(rmCmd, favCmd, showCmd)
}
