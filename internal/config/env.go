package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Env holds values read from the process environment and an optional local
// .env file.
type Env struct {
	// OpenAIKey authenticates enrichment requests. Empty when unset.
	OpenAIKey string
	// Home is the notes data directory, NOTES_HOME or ~/.notes.
	Home string
}

// LoadEnv reads a .env file from the working directory when present and
// binds the environment. The environment always wins over the file.
func LoadEnv() *Env {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	_ = v.ReadInConfig() // a missing or unreadable .env is fine
	v.AutomaticEnv()

	home := v.GetString("NOTES_HOME")
	if home == "" {
		userHome, err := os.UserHomeDir()
		if err != nil {
			userHome = "."
		}
		home = filepath.Join(userHome, ".notes")
	}

	return &Env{
		OpenAIKey: v.GetString("OPENAI_API_KEY"),
		Home:      home,
	}
}
