// Package config manages the tool's persisted configuration: the global
// current-course pointer and one config file per course.
package config

import (
	"strings"
	"time"
)

// GlobalConfig is the process-wide state shared across invocations.
type GlobalConfig struct {
	CurrentCourse string `json:"current_course"`
}

// AnkiSettings controls how a course's notes are exported to Anki.
type AnkiSettings struct {
	DeckName    string `json:"deck_name"`
	ModelName   string `json:"model_name"`
	UseSubDecks bool   `json:"use_sub_decks"`
}

// CourseConfig is the per-course configuration. CourseName is immutable
// after creation; CurrentLevel is written only by the level command.
type CourseConfig struct {
	CourseName   string             `json:"course_name"`
	Created      string             `json:"created"`
	IsLanguage   bool               `json:"is_language"`
	CurrentLevel string             `json:"current_level"`
	AIPrompt     string             `json:"ai_prompt"`
	Anki         AnkiSettings       `json:"anki"`
	Fields       map[string]*string `json:"fields"`
}

// NewCourseConfig builds a course config with default Anki settings and
// field mapping. Language courses map the translation field to "Translation"
// and carry a pronunciation field; general courses map it to "Explanation"
// and leave pronunciation null (never exported).
func NewCourseConfig(name string, isLanguage bool, aiPrompt string) *CourseConfig {
	translation := "Explanation"
	var pronunciation *string
	if isLanguage {
		translation = "Translation"
		p := "Pronunciation"
		pronunciation = &p
	}

	return &CourseConfig{
		CourseName: name,
		Created:    time.Now().Format(time.RFC3339),
		IsLanguage: isLanguage,
		AIPrompt:   aiPrompt,
		Anki: AnkiSettings{
			DeckName:    name,
			ModelName:   name + " (Notes)",
			UseSubDecks: true,
		},
		Fields: map[string]*string{
			"term":                strptr("Term"),
			"translation":         strptr(translation),
			"example":             strptr("Example"),
			"example_translation": strptr("Example Explanation"),
			"notes":               strptr("Notes"),
			"pronunciation":       pronunciation,
		},
	}
}

// Field resolves a logical field name to its Anki field name. A missing or
// null mapping means the field is not exported.
func (c *CourseConfig) Field(name string) (string, bool) {
	v, ok := c.Fields[name]
	if !ok || v == nil || *v == "" {
		return "", false
	}
	return *v, true
}

// SanitizeName converts a course name to a safe filename stem: lower-cased,
// with spaces and slashes replaced by underscores. Idempotent. Distinct
// names that sanitize identically share one file.
func SanitizeName(name string) string {
	return strings.NewReplacer(" ", "_", "/", "_").Replace(strings.ToLower(name))
}

func strptr(s string) *string { return &s }
