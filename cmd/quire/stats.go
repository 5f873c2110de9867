package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/aretw0/quire"
	"github.com/aretw0/quire/pkg/core"
)

var statsJSON bool

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarize the collection",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withService(cmd, func(ctx context.Context, svc *quire.Service) error {
			st := svc.Stats()
			if statsJSON {
				encoder := json.NewEncoder(os.Stdout)
				encoder.SetIndent("", "  ")
				return encoder.Encode(st)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(tw, "Total\t%d\n", st.Total)
			fmt.Fprintf(tw, "Favorites\t%d\n", st.Favorites)
			fmt.Fprintf(tw, "Recent (7 days)\t%d\n", st.RecentNotes)
			fmt.Fprintf(tw, "Distinct tags\t%d\n", st.TotalTags)
			for _, p := range core.AllPriorities {
				fmt.Fprintf(tw, "Priority %s\t%d\n", priorityLabel(p), st.ByPriority[p])
			}
			for _, c := range core.AllCategories {
				if n := st.ByCategory[c]; n > 0 {
					fmt.Fprintf(tw, "Category %s\t%d\n", c, n)
				}
			}
			return tw.Flush()
		})
	},
}

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "List every distinct tag",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withService(cmd, func(ctx context.Context, svc *quire.Service) error {
			tags := svc.Tags()
			if len(tags) == 0 {
				fmt.Println("No tags.")
				return nil
			}
			fmt.Println(color.New(color.FgCyan).Sprint(strings.Join(tags, "  ")))
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(statsCmd, tagsCmd)
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "Output in JSON format")
}
