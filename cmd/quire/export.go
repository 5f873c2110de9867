package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/aretw0/quire"
	"github.com/aretw0/quire/pkg/export"
)

var (
	exportFormat string
	exportOut    string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write every note to a file (quire-export-YYYY-MM-DD.json by default)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := export.ParseFormat(exportFormat)
		if err != nil {
			return err
		}
		return withService(cmd, func(ctx context.Context, svc *quire.Service) error {
			if exportOut == "-" {
				return export.Write(cmd.OutOrStdout(), svc.Notes(), f)
			}

			out := exportOut
			if out == "" {
				out = export.FileName(f, time.Now())
			}
			file, err := os.Create(out)
			if err != nil {
				return err
			}
			if err := export.Write(file, svc.Notes(), f); err != nil {
				_ = file.Close()
				return err
			}
			if err := file.Close(); err != nil {
				return err
			}
			fmt.Printf("Exported %d notes to %s\n", len(svc.Notes()), out)
			return nil
		})
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace the collection with the notes of a JSON or YAML export",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		f, err := export.ParseFormat(filepath.Ext(name))
		if err != nil {
			return err
		}
		file, err := os.Open(name)
		if err != nil {
			return err
		}
		defer file.Close()

		incoming, err := export.Read(file, f)
		if err != nil {
			return err
		}
		return withService(cmd, func(ctx context.Context, svc *quire.Service) error {
			before := len(svc.Notes())
			if err := svc.Replace(ctx, incoming); err != nil {
				return err
			}
			fmt.Printf("Imported %d notes (replaced %d)\n", len(incoming), before)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(exportCmd, importCmd)
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "json", "Export format (json, yaml, markdown)")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Output file ('-' for stdout)")
}
