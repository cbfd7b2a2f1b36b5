package main

import (
	"context"
	"fmt"
	"quick-notes/database"

	"github.com/spf13/cobra"
)

func newInitCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the database if missing and report its contents",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withDatabase(cmd, func(ctx context.Context, m *database.Manager) error {
				notes, err := m.Notes().CountNotes(ctx)
				if err != nil {
					return err
				}
				categories, err := m.Categories().CountCategories(ctx)
				if err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "database %s ready at %s (%d notes, %d categories)\n",
					m.Name(), m.Handle().Path(), notes, categories)
				return nil
			})
		},
	}
}

func newDropCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "drop",
		Short: "Delete the database and all of its records",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			if err := opts.manager(cmd).DeleteDatabase(ctx, opts.name); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "database %s deleted\n", opts.name)
			return nil
		},
	}
}
