package enrich

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrUnexpectedShape marks a reply that parsed as JSON but is not a usable
// field object.
var ErrUnexpectedShape = errors.New("model reply did not match the expected shape")

// Parse extracts the JSON payload from the model's free-text reply and
// validates its shape. The payload must be a JSON object with at least one
// non-empty field.
func Parse(text string) (map[string]any, error) {
	raw := ExtractJSON(text)

	var fields map[string]any
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		return nil, fmt.Errorf("parse model reply as JSON: %w", err)
	}

	for _, v := range fields {
		switch val := v.(type) {
		case string:
			if val != "" {
				return fields, nil
			}
		case nil:
		default:
			return fields, nil
		}
	}
	return nil, fmt.Errorf("%w: empty JSON object", ErrUnexpectedShape)
}

// ExtractJSON picks the JSON substring out of a reply, trying in order: the
// first ```json fence pair, the first generic fence pair, the raw text. An
// unterminated fence takes everything after it.
func ExtractJSON(text string) string {
	if seg, ok := fencedBlock(text, "```json"); ok {
		return seg
	}
	if seg, ok := fencedBlock(text, "```"); ok {
		return seg
	}
	return text
}

func fencedBlock(text, fence string) (string, bool) {
	start := strings.Index(text, fence)
	if start < 0 {
		return "", false
	}

	rest := text[start+len(fence):]
	if end := strings.Index(rest, "```"); end >= 0 {
		rest = rest[:end]
	}
	return strings.TrimSpace(rest), true
}
