package cli

import (
	"fmt"

	"github.com/RizPur/AnkiNotesCLI/internal/config"
	"github.com/RizPur/AnkiNotesCLI/internal/notes"
)

// commandContext carries everything a command handler needs, resolved once
// up front instead of re-reading ambient state throughout.
type commandContext struct {
	Env    *config.Env
	Store  *config.Store
	Notes  *notes.Store
	Course string               // selected course name, "" when none
	Config *config.CourseConfig // selected course config, nil when none
}

// newCommandContext opens the stores and reads the current-course pointer.
func newCommandContext() (*commandContext, error) {
	env := config.LoadEnv()
	store := config.NewStore(env.Home)

	global, err := store.LoadGlobal()
	if err != nil {
		return nil, err
	}

	cc := &commandContext{
		Env:    env,
		Store:  store,
		Notes:  notes.NewStore(store.CoursesDir()),
		Course: global.CurrentCourse,
	}

	if cc.Course != "" {
		cfg, err := store.LoadCourse(cc.Course)
		if err != nil {
			return nil, err
		}
		cc.Config = cfg
	}
	return cc, nil
}

// requireCourse fails with a user-facing error when no course is selected
// or the selected course's config is gone.
func (c *commandContext) requireCourse() error {
	if c.Course == "" {
		return fmt.Errorf("no course selected. Run 'notes course <name>' first")
	}
	if c.Config == nil {
		return fmt.Errorf("course %q has no configuration. Run 'notes course %s' to recreate it", c.Course, c.Course)
	}
	return nil
}
