package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/RizPur/AnkiNotesCLI/internal/notes"
)

func newListCmd() *cobra.Command {
	var number int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent notes",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, number)
		},
	}

	cmd.Flags().IntVarP(&number, "number", "n", notes.DefaultRecentLimit, "Number of notes to show")

	return cmd
}

func runList(cmd *cobra.Command, number int) error {
	out := cmd.OutOrStdout()

	ctx, err := newCommandContext()
	if err != nil {
		return err
	}
	if err := ctx.requireCourse(); err != nil {
		return err
	}

	if !ctx.Notes.Exists(ctx.Course) {
		fmt.Fprintln(out, warningStyle.Render(fmt.Sprintf("No notes found for %s.", ctx.Course)))
		return nil
	}

	recent, err := ctx.Notes.Recent(ctx.Course, number)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, boldStyle.Render(fmt.Sprintf("Recent notes from %s:", ctx.Course)))
	fmt.Fprintln(out)

	for _, entry := range recent {
		marker := warningStyle.Render("○")
		if entry.Note.Synced {
			marker = successStyle.Render("✓")
		}
		fmt.Fprintf(out, "%s %s\n", marker, boldStyle.Render(entry.Term))

		if entry.Note.Translation != "" {
			fmt.Fprintf(out, "  → %s\n", entry.Note.Translation)
		} else if entry.Note.Explanation != "" {
			fmt.Fprintf(out, "  → %s\n", entry.Note.Explanation)
		}
		if entry.Note.Level != "" {
			fmt.Fprintf(out, "  Level: %s\n", entry.Note.Level)
		}
		fmt.Fprintln(out)
	}
	return nil
}
