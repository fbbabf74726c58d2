package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/RizPur/AnkiNotesCLI/internal/config"
)

func newCourseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "course <name>",
		Short: "Select a course, creating it if needed",
		Long: `Selects the given course as the current one. If the course does not
exist yet it is created interactively: you choose whether it is a
language-learning course (which changes the default field naming and
prompt template) and may supply a custom prompt template.`,
		Args: cobra.ExactArgs(1),
		RunE: runCourse,
	}
}

func runCourse(cmd *cobra.Command, args []string) error {
	name := args[0]
	out := cmd.OutOrStdout()

	ctx, err := newCommandContext()
	if err != nil {
		return err
	}

	courseCfg, err := ctx.Store.LoadCourse(name)
	if err != nil {
		return err
	}

	if courseCfg == nil {
		courseCfg, err = createCourse(cmd, ctx.Store, name)
		if err != nil {
			return err
		}
	}

	// Unconditionally make it the current course.
	if err := ctx.Store.SaveGlobal(&config.GlobalConfig{CurrentCourse: name}); err != nil {
		return err
	}

	fmt.Fprintln(out, successStyle.Render("✓ Current course set to: ")+boldStyle.Render(name))
	if courseCfg.CurrentLevel != "" {
		fmt.Fprintf(out, "  Current level: %s\n", courseCfg.CurrentLevel)
	}
	return nil
}

func createCourse(cmd *cobra.Command, store *config.Store, name string) (*config.CourseConfig, error) {
	out := cmd.OutOrStdout()
	reader := bufio.NewReader(cmd.InOrStdin())

	fmt.Fprintln(out, infoStyle.Render("Creating new course: ")+boldStyle.Render(name))
	fmt.Fprintln(out)

	fmt.Fprint(out, "Is this a language learning course? (y/n) [n]: ")
	isLanguage := strings.EqualFold(readLine(reader), "y")

	defaultPrompt := config.DefaultPrompt()
	if isLanguage {
		defaultPrompt = config.LanguagePrompt()
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, warningStyle.Render("AI Prompt Template"))
	fmt.Fprintln(out, "This template will be used to generate note content with AI.")
	fmt.Fprintln(out, "Default template will be used. You can customize it anytime in:")
	fmt.Fprintf(out, "  %s\n", store.CoursePath(name))
	fmt.Fprintln(out)

	fmt.Fprint(out, "Enter custom AI prompt (or press Enter to use default): ")
	customPrompt := readLine(reader)

	aiPrompt := defaultPrompt
	if customPrompt != "" {
		aiPrompt = customPrompt
	}

	courseCfg := config.NewCourseConfig(name, isLanguage, aiPrompt)
	if err := store.SaveCourse(name, courseCfg); err != nil {
		return nil, err
	}

	fmt.Fprintln(out, successStyle.Render(fmt.Sprintf("✓ Course '%s' created successfully!", name)))
	fmt.Fprintln(out)
	return courseCfg, nil
}

// readLine reads one trimmed line. EOF reads as an empty answer, so piped
// input can accept the defaults.
func readLine(reader *bufio.Reader) string {
	line, _ := reader.ReadString('\n')
	return strings.TrimSpace(line)
}
