package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadGlobalMissing(t *testing.T) {
	t.Parallel()
	store := NewStore(t.TempDir())

	cfg, err := store.LoadGlobal()
	if err != nil {
		t.Fatalf("LoadGlobal failed: %v", err)
	}
	if cfg.CurrentCourse != "" {
		t.Errorf("Expected no current course, got %q", cfg.CurrentCourse)
	}
}

func TestLoadGlobalCorrupt(t *testing.T) {
	t.Parallel()
	home := t.TempDir()
	store := NewStore(home)

	if err := os.WriteFile(store.GlobalPath(), []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := store.LoadGlobal()
	if err != nil {
		t.Fatalf("LoadGlobal failed on corrupt file: %v", err)
	}
	if cfg.CurrentCourse != "" {
		t.Errorf("Expected corrupt global config to read as empty, got %q", cfg.CurrentCourse)
	}
}

func TestGlobalRoundTrip(t *testing.T) {
	t.Parallel()
	store := NewStore(t.TempDir())

	if err := store.SaveGlobal(&GlobalConfig{CurrentCourse: "French"}); err != nil {
		t.Fatalf("SaveGlobal failed: %v", err)
	}

	cfg, err := store.LoadGlobal()
	if err != nil {
		t.Fatalf("LoadGlobal failed: %v", err)
	}
	if cfg.CurrentCourse != "French" {
		t.Errorf("CurrentCourse = %q, want French", cfg.CurrentCourse)
	}
}

func TestLoadCourseMissing(t *testing.T) {
	t.Parallel()
	store := NewStore(t.TempDir())

	cfg, err := store.LoadCourse("French")
	if err != nil {
		t.Fatalf("LoadCourse failed: %v", err)
	}
	if cfg != nil {
		t.Error("Expected nil config for missing course")
	}
}

func TestLoadCourseCorrupt(t *testing.T) {
	t.Parallel()
	store := NewStore(t.TempDir())

	if err := os.MkdirAll(store.CoursesDir(), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(store.CoursePath("French"), []byte("{{{{"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := store.LoadCourse("French")
	if err != nil {
		t.Fatalf("LoadCourse failed on corrupt file: %v", err)
	}
	if cfg != nil {
		t.Error("Expected corrupt course config to read as absent")
	}
}

func TestCourseRoundTrip(t *testing.T) {
	t.Parallel()
	store := NewStore(t.TempDir())

	saved := NewCourseConfig("Mandarin Chinese", true, LanguagePrompt())
	if err := store.SaveCourse("Mandarin Chinese", saved); err != nil {
		t.Fatalf("SaveCourse failed: %v", err)
	}

	// The file lives under the sanitized name.
	if _, err := os.Stat(filepath.Join(store.CoursesDir(), "mandarin_chinese.json")); err != nil {
		t.Fatalf("Course file not at sanitized path: %v", err)
	}

	loaded, err := store.LoadCourse("Mandarin Chinese")
	if err != nil {
		t.Fatalf("LoadCourse failed: %v", err)
	}
	if loaded == nil {
		t.Fatal("Expected course config, got nil")
	}
	if loaded.CourseName != "Mandarin Chinese" {
		t.Errorf("CourseName = %q", loaded.CourseName)
	}
	if loaded.AIPrompt != saved.AIPrompt {
		t.Error("AIPrompt did not survive the round trip")
	}
	if v, ok := loaded.Fields["pronunciation"]; !ok || v == nil || *v != "Pronunciation" {
		t.Error("pronunciation mapping did not survive the round trip")
	}
}

func TestWriteJSONPreservesNonASCII(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "out.json")

	if err := WriteJSON(path, map[string]string{"term": "你好", "note": "a & b"}); err != nil {
		t.Fatalf("WriteJSON failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	content := string(data)

	if !strings.Contains(content, "你好") {
		t.Error("Expected non-ASCII characters to be preserved literally")
	}
	if strings.Contains(content, `&`) {
		t.Error("Expected & to not be HTML-escaped")
	}
	if !strings.Contains(content, "\n  ") {
		t.Error("Expected pretty-printed output")
	}
}
