package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/aretw0/quire"
	qlifecycle "github.com/aretw0/quire/pkg/adapters/lifecycle"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Follow changes to the store made by any process",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return withService(cmd, func(_ context.Context, svc *quire.Service) error {
			events, err := svc.Watch(ctx)
			if err != nil {
				return err
			}
			src := qlifecycle.NewSource(events, svc)
			if err := src.Start(ctx); err != nil {
				return err
			}

			fmt.Printf("Watching %d notes. Press Ctrl+C to stop.\n", len(svc.Notes()))
			stamp := color.New(color.Faint)
			for e := range src.Events() {
				if re, ok := e.(qlifecycle.ReloadEvent); ok && re.Err != nil {
					slog.Warn("reload failed", "change", re.Change.String(), "error", re.Err)
				}
				fmt.Printf("%s %s\n", stamp.Sprint(time.Now().Format(time.TimeOnly)), e.String())
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
