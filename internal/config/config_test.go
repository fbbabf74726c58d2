package config

import "testing"

func TestSanitizeName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"French", "french"},
		{"Mandarin Chinese", "mandarin_chinese"},
		{"TCP/IP Networking", "tcp_ip_networking"},
		{"already_safe", "already_safe"},
		{"Mixed Case/With Both", "mixed_case_with_both"},
	}

	for _, tt := range tests {
		if got := SanitizeName(tt.in); got != tt.want {
			t.Errorf("SanitizeName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSanitizeNameIdempotent(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"French", "Mandarin Chinese", "TCP/IP Networking", "a b/c D"} {
		once := SanitizeName(name)
		if twice := SanitizeName(once); twice != once {
			t.Errorf("SanitizeName not idempotent for %q: %q != %q", name, twice, once)
		}
	}
}

func TestNewCourseConfigLanguage(t *testing.T) {
	t.Parallel()

	cfg := NewCourseConfig("French", true, LanguagePrompt())

	if cfg.CourseName != "French" {
		t.Errorf("CourseName = %q, want French", cfg.CourseName)
	}
	if !cfg.IsLanguage {
		t.Error("Expected IsLanguage true")
	}
	if cfg.CurrentLevel != "" {
		t.Errorf("Expected no level on creation, got %q", cfg.CurrentLevel)
	}
	if cfg.Created == "" {
		t.Error("Expected creation timestamp")
	}
	if cfg.Anki.DeckName != "French" {
		t.Errorf("DeckName = %q, want French", cfg.Anki.DeckName)
	}
	if cfg.Anki.ModelName != "French (Notes)" {
		t.Errorf("ModelName = %q, want 'French (Notes)'", cfg.Anki.ModelName)
	}
	if !cfg.Anki.UseSubDecks {
		t.Error("Expected sub-decks enabled by default")
	}

	if name, ok := cfg.Field("translation"); !ok || name != "Translation" {
		t.Errorf("translation field = %q, %v, want Translation", name, ok)
	}
	if name, ok := cfg.Field("pronunciation"); !ok || name != "Pronunciation" {
		t.Errorf("pronunciation field = %q, %v, want Pronunciation", name, ok)
	}
}

func TestNewCourseConfigGeneral(t *testing.T) {
	t.Parallel()

	cfg := NewCourseConfig("Biology", false, DefaultPrompt())

	if name, ok := cfg.Field("translation"); !ok || name != "Explanation" {
		t.Errorf("translation field = %q, %v, want Explanation", name, ok)
	}
	if _, ok := cfg.Field("pronunciation"); ok {
		t.Error("Expected pronunciation to be unconfigured for a general course")
	}
	if name, ok := cfg.Field("term"); !ok || name != "Term" {
		t.Errorf("term field = %q, %v, want Term", name, ok)
	}
}

func TestFieldUnknown(t *testing.T) {
	t.Parallel()

	cfg := NewCourseConfig("Biology", false, DefaultPrompt())
	if _, ok := cfg.Field("nonexistent"); ok {
		t.Error("Expected unknown logical field to be unconfigured")
	}
}
