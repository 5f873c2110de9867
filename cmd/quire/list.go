package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/quire"
	"github.com/aretw0/quire/pkg/core"
)

var (
	listJSON     bool
	listQuery    string
	listPriority string
	listCategory string
	listFavorite bool
	listTags     []string
	listSort     string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List notes, filtered and sorted",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		filters, err := listFilters(cmd)
		if err != nil {
			return err
		}
		sortOpt, err := core.ParseSortOption(listSort)
		if err != nil {
			return err
		}

		return withService(cmd, func(ctx context.Context, svc *quire.Service) error {
			svc.SetFilters(filters)
			svc.SetSort(sortOpt)
			visible := svc.Visible()

			if listJSON {
				encoder := json.NewEncoder(os.Stdout)
				encoder.SetIndent("", "  ")
				return encoder.Encode(visible)
			}

			if len(visible) == 0 {
				if filters.IsZero() {
					fmt.Println("No notes yet. Create one with 'quire add'.")
				} else {
					fmt.Println("No notes match the filters.")
				}
				return nil
			}
			printTable(cmd.OutOrStdout(), visible)
			fmt.Printf("\n%d of %d notes\n", len(visible), len(svc.Notes()))
			return nil
		})
	},
}

func listFilters(cmd *cobra.Command) (core.Filters, error) {
	f := core.Filters{Query: listQuery, Tags: quire.ParseTags(strings.Join(listTags, ","))}
	if listPriority != "" {
		p, err := core.ParsePriority(listPriority)
		if err != nil {
			return f, err
		}
		f.Priority = &p
	}
	if listCategory != "" {
		c, err := core.ParseCategory(listCategory)
		if err != nil {
			return f, err
		}
		f.Category = &c
	}
	if cmd.Flags().Changed("favorite") {
		fav := listFavorite
		f.IsFavorite = &fav
	}
	return f, nil
}

func init() {
	rootCmd.AddCommand(listCmd)
	f := listCmd.Flags()
	f.BoolVar(&listJSON, "json", false, "Output in JSON format")
	f.StringVarP(&listQuery, "query", "q", "", "Case-insensitive text search")
	f.StringVar(&listPriority, "priority", "", "Only this priority")
	f.StringVar(&listCategory, "category", "", "Only this category")
	f.BoolVar(&listFavorite, "favorite", false, "Only favorites (--favorite=false for non-favorites)")
	f.StringSliceVar(&listTags, "tag", nil, "Match any of these tags (substring)")
	f.StringVarP(&listSort, "sort", "s", string(core.SortNewest), "Sort order (newest, oldest, title, priority)")
}
