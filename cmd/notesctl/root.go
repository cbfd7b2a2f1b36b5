package main

import (
	"context"
	"fmt"
	"log/slog"
	"quick-notes/config"
	"quick-notes/database"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	dataDir string
	name    string
	seed    bool
	verbose bool
}

func newRootCmd() *cobra.Command {
	cfg := config.Load()
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "notesctl",
		Short:         "Inspect and manage a quick-notes database",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	cmd.PersistentFlags().StringVar(&opts.dataDir, "data-dir", cfg.DataDir, "directory holding database files")
	cmd.PersistentFlags().StringVar(&opts.name, "name", cfg.DBName, "database name")
	cmd.PersistentFlags().BoolVar(&opts.seed, "seed", cfg.SeedSampleData, "insert sample data when creating a database")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log database activity to stderr")

	cmd.AddCommand(
		newInitCmd(opts),
		newDropCmd(opts),
		newNotesCmd(opts),
		newCategoriesCmd(opts),
	)

	return cmd
}

func (o *rootOptions) logger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelWarn
	if o.verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}

func (o *rootOptions) manager(cmd *cobra.Command) *database.Manager {
	return database.NewManager(o.dataDir, o.seed, o.logger(cmd))
}

// withDatabase initialises the named database and closes it once fn returns
func (o *rootOptions) withDatabase(cmd *cobra.Command, fn func(ctx context.Context, m *database.Manager) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	m := o.manager(cmd)
	if _, err := m.Initialise(ctx, o.name); err != nil {
		return fmt.Errorf("failed to open database %q: %w", o.name, err)
	}
	defer m.CloseDB()

	return fn(ctx, m)
}

func newTable(cmd *cobra.Command, header table.Row) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(header)
	return t
}
