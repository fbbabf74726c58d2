// Package cli wires the notes subcommands.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "notes",
		Short: "Capture, enrich, and sync learning notes to Anki",
		Long: `notes captures short learning notes per course, enriches them with
AI-generated explanations, and syncs them to Anki for spaced repetition.

Select a course with 'notes course', optionally set a level with
'notes level', then add notes with 'notes new' and push them to Anki
with 'notes sync'.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newCourseCmd())
	rootCmd.AddCommand(newLevelCmd())
	rootCmd.AddCommand(newNewCmd())
	rootCmd.AddCommand(newSyncCmd())
	rootCmd.AddCommand(newListCmd())

	return rootCmd
}

// Execute runs the root command. Command failures are rendered once here
// and reported through the exit code.
func Execute(version string) error {
	rootCmd := newRootCmd()
	rootCmd.Version = version

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(errorStyle.Render("Error: " + err.Error()))
		return err
	}
	return nil
}
