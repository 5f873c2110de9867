package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/aretw0/quire"
)

var (
	verbose   bool
	storePath string
	adapter   string
	format    string
	readOnly  bool
	noSeed    bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "quire",
	Short: "A personal note keeper for the terminal",
	Long: `Quire keeps short notes with a title, tags, a priority and a category.
Notes live in a local store (.quire/ by default) and can be searched,
filtered, sorted and exported.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	flags.StringVar(&storePath, "store", "", "Directory holding the store (default: nearest .quire or .git upwards, else the current directory)")
	flags.StringVar(&adapter, "adapter", quire.AdapterFS, "Storage adapter (fs, sqlite, memory)")
	flags.StringVar(&format, "format", "json", "Blob encoding (json, yaml)")
	flags.BoolVar(&readOnly, "read-only", false, "Never write to the store")
	flags.BoolVar(&noSeed, "no-seed", false, "Do not seed sample notes into an empty store")
}

// storeRoot resolves the directory the store lives under.
func storeRoot() (string, error) {
	if storePath != "" {
		return storePath, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	root, err := quire.FindRoot(cwd)
	if err != nil {
		return cwd, nil
	}
	return root, nil
}

func storeOptions() []quire.Option {
	return []quire.Option{
		quire.WithAdapter(adapter),
		quire.WithFormat(format),
		quire.WithReadOnly(readOnly),
		quire.WithSeed(!noSeed),
		quire.WithLogger(slog.Default()),
	}
}

// openService loads the store and reports load warnings on stderr.
func openService(ctx context.Context) (*quire.Service, error) {
	root, err := storeRoot()
	if err != nil {
		return nil, err
	}
	svc, err := quire.New(ctx, root, storeOptions()...)
	if err != nil {
		return nil, err
	}
	warn := color.New(color.FgYellow)
	for _, w := range svc.Warnings() {
		fmt.Fprintln(os.Stderr, warn.Sprint("warning: ")+w)
	}
	return svc, nil
}

// withService runs fn against a loaded service and closes it afterwards.
func withService(cmd *cobra.Command, fn func(ctx context.Context, svc *quire.Service) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	svc, err := openService(ctx)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer func() {
		if cerr := svc.Close(); cerr != nil {
			slog.Warn("failed to close store", "error", cerr)
		}
	}()
	return fn(ctx, svc)
}
