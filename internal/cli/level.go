package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newLevelCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "level <level>",
		Short: "Set the current level/topic within the course",
		Long: `Sets the current level (e.g. "Beginner", "HSK 3", "Chapter 5") for the
selected course. New notes record the level they were added at, and sync
routes them into a matching sub-deck when sub-decks are enabled.`,
		Args: cobra.ExactArgs(1),
		RunE: runLevel,
	}
}

func runLevel(cmd *cobra.Command, args []string) error {
	level := args[0]
	out := cmd.OutOrStdout()

	ctx, err := newCommandContext()
	if err != nil {
		return err
	}
	if err := ctx.requireCourse(); err != nil {
		return err
	}

	ctx.Config.CurrentLevel = level
	if err := ctx.Store.SaveCourse(ctx.Course, ctx.Config); err != nil {
		return err
	}

	fmt.Fprintln(out, successStyle.Render("✓ Level set to: ")+boldStyle.Render(level))
	fmt.Fprintf(out, "  Course: %s\n", ctx.Course)
	return nil
}
