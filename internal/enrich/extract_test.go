package enrich

import (
	"errors"
	"testing"
)

func TestExtractJSONTaggedFence(t *testing.T) {
	t.Parallel()

	text := "Here you go:\n```json\n{\"term\": \"bonjour\"}\n```\nAnything else?"
	if got := ExtractJSON(text); got != `{"term": "bonjour"}` {
		t.Errorf("ExtractJSON = %q", got)
	}
}

func TestExtractJSONTaggedFenceWins(t *testing.T) {
	t.Parallel()

	// A generic fence before the tagged one must not win.
	text := "```\nnot this\n```\n```json\n{\"term\": \"x\"}\n```"
	if got := ExtractJSON(text); got != `{"term": "x"}` {
		t.Errorf("ExtractJSON = %q", got)
	}
}

func TestExtractJSONGenericFence(t *testing.T) {
	t.Parallel()

	text := "Sure:\n```\n{\"term\": \"x\"}\n```"
	if got := ExtractJSON(text); got != `{"term": "x"}` {
		t.Errorf("ExtractJSON = %q", got)
	}
}

func TestExtractJSONRawText(t *testing.T) {
	t.Parallel()

	text := `{"term": "x"}`
	if got := ExtractJSON(text); got != text {
		t.Errorf("ExtractJSON = %q", got)
	}
}

func TestExtractJSONUnterminatedFence(t *testing.T) {
	t.Parallel()

	text := "```json\n{\"term\": \"x\"}"
	if got := ExtractJSON(text); got != `{"term": "x"}` {
		t.Errorf("ExtractJSON = %q", got)
	}
}

func TestParse(t *testing.T) {
	t.Parallel()

	fields, err := Parse("```json\n{\"term\": \"bonjour\", \"translation\": \"hello\"}\n```")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if fields["term"] != "bonjour" {
		t.Errorf(`fields["term"] = %v`, fields["term"])
	}
	if fields["translation"] != "hello" {
		t.Errorf(`fields["translation"] = %v`, fields["translation"])
	}
}

func TestParseMalformedJSON(t *testing.T) {
	t.Parallel()

	if _, err := Parse("I could not produce JSON, sorry."); err == nil {
		t.Fatal("Expected error for non-JSON reply")
	}
}

func TestParseUnexpectedShape(t *testing.T) {
	t.Parallel()

	for _, text := range []string{"{}", `{"term": ""}`} {
		_, err := Parse(text)
		if err == nil {
			t.Fatalf("Expected shape error for %q", text)
		}
		if !errors.Is(err, ErrUnexpectedShape) {
			t.Errorf("Expected ErrUnexpectedShape for %q, got: %v", text, err)
		}
	}
}

func TestParseArrayIsMalformed(t *testing.T) {
	t.Parallel()

	if _, err := Parse(`["not", "an", "object"]`); err == nil {
		t.Fatal("Expected error for a JSON array reply")
	}
}
