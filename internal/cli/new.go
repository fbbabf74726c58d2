package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/RizPur/AnkiNotesCLI/internal/enrich"
	"github.com/RizPur/AnkiNotesCLI/internal/notes"
	"github.com/RizPur/AnkiNotesCLI/internal/prompt"
)

func newNewCmd() *cobra.Command {
	var (
		context string
		grammar string
	)

	cmd := &cobra.Command{
		Use:   "new <phrase>",
		Short: "Add a new note, enriched with AI-generated content",
		Long: `Sends the phrase to the enrichment API using the course's prompt
template and stores the structured result in the course's notes file.
Requires OPENAI_API_KEY in the environment or a local .env file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNew(cmd, args[0], context, grammar)
		},
	}

	cmd.Flags().StringVarP(&context, "context", "c", "", "Context or example sentence")
	cmd.Flags().StringVarP(&grammar, "grammar", "g", "", "Grammar points or additional info")

	return cmd
}

func runNew(cmd *cobra.Command, phrase, context, grammar string) error {
	out := cmd.OutOrStdout()

	ctx, err := newCommandContext()
	if err != nil {
		return err
	}
	if err := ctx.requireCourse(); err != nil {
		return err
	}
	if ctx.Env.OpenAIKey == "" {
		return fmt.Errorf("OPENAI_API_KEY not set. Export it or add it to a local .env file")
	}

	level := ctx.Config.CurrentLevel
	if level == "" {
		level = prompt.DefaultLevel
	}

	rendered, err := prompt.Build(ctx.Config.AIPrompt, ctx.Config.CourseName, phrase, level, context, grammar)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, infoStyle.Render("Adding new note to ")+boldStyle.Render(ctx.Course)+infoStyle.Render(fmt.Sprintf(" (Level: %s)...", level)))

	client := enrich.NewClient(ctx.Env.OpenAIKey)
	fields, err := client.Enrich(cmd.Context(), rendered)
	if err != nil {
		return err
	}

	note := notes.FromFields(fields)
	termKey := note.Term
	if termKey == "" {
		termKey = phrase
	}

	if err := ctx.Notes.Append(ctx.Course, termKey, note, level, context, grammar); err != nil {
		return err
	}

	fmt.Fprintln(out, successStyle.Render("✓ Successfully added:"))
	printNoteSummary(cmd, termKey, note)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run "+boldStyle.Render("notes sync")+" to add it to Anki.")
	return nil
}

func printNoteSummary(cmd *cobra.Command, term string, n *notes.Note) {
	out := cmd.OutOrStdout()

	rows := []struct {
		label, value string
	}{
		{"Term", n.Term},
		{"Pronunciation", n.Pronunciation},
		{"Translation", n.Translation},
		{"Explanation", n.Explanation},
		{"Example", n.Example},
		{"Example translation", n.ExampleTranslation},
		{"Example explanation", n.ExampleExplanation},
		{"Notes", n.Notes},
		{"Context", n.Context},
		{"Grammar", n.Grammar},
	}

	if n.Term == "" {
		fmt.Fprintf(out, "  Term: %s\n", term)
	}
	for _, row := range rows {
		if row.value != "" {
			fmt.Fprintf(out, "  %s: %s\n", row.label, row.value)
		}
	}
}
