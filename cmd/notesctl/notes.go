package main

import (
	"context"
	"fmt"
	"quick-notes/database"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func newNotesCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notes",
		Short: "Manage notes",
	}

	cmd.AddCommand(
		newNotesListCmd(opts),
		newNotesAddCmd(opts),
		newNotesSwapCmd(opts),
		newNotesRmCmd(opts),
	)
	return cmd
}

func newNotesListCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List notes in store order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withDatabase(cmd, func(ctx context.Context, m *database.Manager) error {
				notes, err := m.Notes().ReadAllNotes(ctx)
				if err != nil {
					return err
				}
				if len(notes) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No notes found.")
					return nil
				}

				t := newTable(cmd, table.Row{"ID", "Title", "Category", "Created", "Updated"})
				for _, n := range notes {
					t.AppendRow(table.Row{n.ID, n.Title, fmt.Sprint(n.Category), n.DateCreated, n.DateUpdated})
				}
				t.Render()
				return nil
			})
		},
	}
}

func newNotesAddCmd(opts *rootOptions) *cobra.Command {
	var (
		title    string
		content  string
		category []int64
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a note",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withDatabase(cmd, func(ctx context.Context, m *database.Manager) error {
				note, err := m.Notes().CreateNote(ctx, title, content, category)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "created note %d\n", note.ID)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "note title")
	cmd.Flags().StringVarP(&content, "content", "c", "", "note body")
	cmd.Flags().Int64SliceVar(&category, "category", nil, "category IDs the note belongs to")
	_ = cmd.MarkFlagRequired("title")
	return cmd
}

func newNotesSwapCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "swap <id1> <id2>",
		Short: "Exchange the IDs of two notes",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id1, err := parseID(args[0])
			if err != nil {
				return err
			}
			id2, err := parseID(args[1])
			if err != nil {
				return err
			}

			return opts.withDatabase(cmd, func(ctx context.Context, m *database.Manager) error {
				if err := m.Notes().UpdateSwapNoteID(ctx, id1, id2); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "swapped notes %d and %d\n", id1, id2)
				return nil
			})
		},
	}
}

func newNotesRmCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			return opts.withDatabase(cmd, func(ctx context.Context, m *database.Manager) error {
				if err := m.Notes().DeleteNote(ctx, id); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "deleted note %d\n", id)
				return nil
			})
		},
	}
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid ID %q: must be a positive integer", arg)
	}
	return id, nil
}
