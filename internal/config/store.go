package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// Store reads and writes the config files under the notes home directory.
// Malformed JSON in any persisted file is treated as if the file were
// absent, with a logged warning; only I/O failures are surfaced as errors.
type Store struct {
	home string
}

// NewStore creates a store rooted at the given home directory.
func NewStore(home string) *Store {
	return &Store{home: home}
}

// Home returns the store's root directory.
func (s *Store) Home() string {
	return s.home
}

// CoursesDir returns the directory holding per-course files.
func (s *Store) CoursesDir() string {
	return filepath.Join(s.home, "courses")
}

// GlobalPath returns the path of the global config file.
func (s *Store) GlobalPath() string {
	return filepath.Join(s.home, "config.json")
}

// CoursePath returns the config file path for a course name.
func (s *Store) CoursePath(name string) string {
	return filepath.Join(s.CoursesDir(), SanitizeName(name)+".json")
}

// LoadGlobal reads the global config, returning the default (no course
// selected) if the file is missing or unparsable.
func (s *Store) LoadGlobal() (*GlobalConfig, error) {
	cfg := &GlobalConfig{}

	data, err := os.ReadFile(s.GlobalPath())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read global config: %w", err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		log.Printf("warning: global config is not valid JSON, treating as empty: %v", err)
		return &GlobalConfig{}, nil
	}
	return cfg, nil
}

// SaveGlobal writes the global config.
func (s *Store) SaveGlobal(cfg *GlobalConfig) error {
	return WriteJSON(s.GlobalPath(), cfg)
}

// LoadCourse reads a course config. A missing or unparsable file yields
// (nil, nil): the course is treated as not yet created.
func (s *Store) LoadCourse(name string) (*CourseConfig, error) {
	data, err := os.ReadFile(s.CoursePath(name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read course config: %w", err)
	}

	cfg := &CourseConfig{}
	if err := json.Unmarshal(data, cfg); err != nil {
		log.Printf("warning: course config %s is not valid JSON, treating as absent: %v", s.CoursePath(name), err)
		return nil, nil
	}
	return cfg, nil
}

// SaveCourse writes a course config under the sanitized course name.
func (s *Store) SaveCourse(name string, cfg *CourseConfig) error {
	return WriteJSON(s.CoursePath(name), cfg)
}

// WriteJSON writes v pretty-printed, UTF-8, with non-ASCII characters
// preserved literally.
func WriteJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("marshal %s: %w", filepath.Base(path), err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
