package main

import (
	"context"
	"fmt"
	"quick-notes/database"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func newCategoriesCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "categories",
		Aliases: []string{"cat"},
		Short:   "Manage categories",
	}

	cmd.AddCommand(newCategoriesListCmd(opts), newCategoriesAddCmd(opts))
	return cmd
}

func newCategoriesListCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withDatabase(cmd, func(ctx context.Context, m *database.Manager) error {
				categories, err := m.Categories().ReadAllCategories(ctx)
				if err != nil {
					return err
				}
				if len(categories) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No categories found.")
					return nil
				}

				t := newTable(cmd, table.Row{"ID", "Name", "Description"})
				for _, c := range categories {
					t.AppendRow(table.Row{c.ID, c.Name, c.Description})
				}
				t.Render()
				return nil
			})
		},
	}
}

func newCategoriesAddCmd(opts *rootOptions) *cobra.Command {
	var description string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Create a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.TrimSpace(args[0])
			if name == "" {
				return fmt.Errorf("category name is required")
			}

			return opts.withDatabase(cmd, func(ctx context.Context, m *database.Manager) error {
				category, err := m.Categories().CreateCategory(ctx, name, description)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "created category %d\n", category.ID)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "category description")
	return cmd
}
