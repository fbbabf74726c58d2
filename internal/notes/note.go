// Package notes stores each course's enriched notes as one JSON document
// keyed by term.
package notes

// Note is one captured term with its generated content. Which content
// fields are populated depends on the course's prompt template: language
// courses fill translation/example_translation, general courses fill
// explanation/example_explanation.
type Note struct {
	ID                 string `json:"id,omitempty"`
	Term               string `json:"term,omitempty"`
	Translation        string `json:"translation,omitempty"`
	Explanation        string `json:"explanation,omitempty"`
	Pronunciation      string `json:"pronunciation,omitempty"`
	Example            string `json:"example,omitempty"`
	ExampleTranslation string `json:"example_translation,omitempty"`
	ExampleExplanation string `json:"example_explanation,omitempty"`
	Notes              string `json:"notes,omitempty"`
	Context            string `json:"context,omitempty"`
	Grammar            string `json:"grammar,omitempty"`
	Added              string `json:"added,omitempty"`
	Level              string `json:"level,omitempty"`
	Synced             bool   `json:"synced"`
}

// FromFields builds a note from the enrichment client's opaque field map,
// keeping the fields the tool understands.
func FromFields(fields map[string]any) *Note {
	return &Note{
		Term:               str(fields, "term"),
		Translation:        str(fields, "translation"),
		Explanation:        str(fields, "explanation"),
		Pronunciation:      str(fields, "pronunciation"),
		Example:            str(fields, "example"),
		ExampleTranslation: str(fields, "example_translation"),
		ExampleExplanation: str(fields, "example_explanation"),
		Notes:              str(fields, "notes"),
	}
}

func str(m map[string]any, key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}
