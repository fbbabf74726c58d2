package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/RizPur/AnkiNotesCLI/internal/anki"
	"github.com/RizPur/AnkiNotesCLI/internal/syncer"
)

func newSyncCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Push unsynced notes to Anki",
		Long: `Creates the course's deck (and level sub-decks when enabled) through
AnkiConnect and submits every note that has not been synced yet. Notes
that fail are reported and left unsynced; the rest of the batch
continues. Requires Anki to be running with the AnkiConnect add-on.`,
		RunE: runSync,
	}
}

func runSync(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	ctx, err := newCommandContext()
	if err != nil {
		return err
	}
	if err := ctx.requireCourse(); err != nil {
		return err
	}

	fmt.Fprintln(out, infoStyle.Render("Syncing notes from ")+boldStyle.Render(ctx.Course)+infoStyle.Render(" to Anki..."))

	if !ctx.Notes.Exists(ctx.Course) {
		fmt.Fprintln(out, warningStyle.Render("No notes found to sync."))
		return nil
	}

	progress := func(ev syncer.ProgressEvent) {
		if ev.Err != nil {
			fmt.Fprintf(out, "  [%d/%d] %s Failed to sync '%s': %v\n",
				ev.Index, ev.Total, errorStyle.Render("✗"), ev.Term, ev.Err)
			return
		}
		fmt.Fprintf(out, "  [%d/%d] %s Synced '%s'\n",
			ev.Index, ev.Total, successStyle.Render("✓"), ev.Term)
	}

	engine := syncer.New(anki.NewClient(), ctx.Notes, progress)
	result, err := engine.Sync(cmd.Context(), ctx.Config)
	if err != nil {
		return err
	}

	if result.Total == 0 {
		fmt.Fprintln(out, warningStyle.Render("All notes are already synced!"))
		return nil
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, successStyle.Render(fmt.Sprintf("Sync complete! %d/%d notes synced successfully.", result.Synced, result.Total)))
	return nil
}
