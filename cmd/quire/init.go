package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/quire"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a quire store",
	Long:  `Create the store (.quire/) in the current directory, or under --store.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		root := storePath
		if root == "" {
			root = "."
		}
		svc, err := quire.New(cmd.Context(), root, storeOptions()...)
		if err != nil {
			return fmt.Errorf("failed to initialize store: %w", err)
		}
		defer svc.Close()

		fmt.Printf("Initialized quire store in %s (%d notes)\n", root, len(svc.Notes()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
