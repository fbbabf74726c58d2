// Package prompt renders course enrichment templates.
//
// A placeholder is an identifier in braces, e.g. {phrase}. Braces that do
// not wrap a bare identifier (such as the JSON skeleton embedded in the
// built-in templates) pass through untouched. Referencing a placeholder the
// builder does not define is an error, not a silent fallback.
package prompt

import (
	"fmt"
	"regexp"
	"strings"
)

var placeholderRe = regexp.MustCompile(`\{([a-zA-Z_][a-zA-Z0-9_]*)\}`)

// DefaultLevel is used when a course has no level selected.
const DefaultLevel = "general"

// Build renders a course's stored template for one phrase. Context and
// grammar are optional user hints; when given they are pre-rendered into
// one-line sections so the template need not handle conditionality.
func Build(template, course, phrase, level, context, grammar string) (string, error) {
	if level == "" {
		level = DefaultLevel
	}

	return Render(template, map[string]string{
		"course":          course,
		"phrase":          phrase,
		"level":           level,
		"context_section": ContextSection(context),
		"grammar_section": GrammarSection(grammar),
	})
}

// Render substitutes every {identifier} placeholder in template from
// values, in a single pass. An identifier-shaped placeholder missing from
// values fails the render.
func Render(template string, values map[string]string) (string, error) {
	var missing []string

	out := placeholderRe.ReplaceAllStringFunc(template, func(m string) string {
		name := m[1 : len(m)-1]
		v, ok := values[name]
		if !ok {
			missing = append(missing, name)
			return m
		}
		return v
	})

	if len(missing) > 0 {
		return "", fmt.Errorf("template references undefined placeholder(s): {%s}", strings.Join(missing, "}, {"))
	}
	return out, nil
}

// ContextSection renders the optional context hint.
func ContextSection(context string) string {
	if context == "" {
		return ""
	}
	return "\nContext/Example: " + context
}

// GrammarSection renders the optional grammar hint.
func GrammarSection(grammar string) string {
	if grammar == "" {
		return ""
	}
	return "\nAdditional info: " + grammar
}
