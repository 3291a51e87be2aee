// Package config loads runtime settings from the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

// Settings is the runtime configuration. Every field has a working default,
// so an empty environment yields a playable setup.
type Settings struct {
	// DBPath is the SQLite database location. Empty means the default
	// under the user's home directory.
	DBPath string `env:"PENUMBRA_DB"`

	// FOVRadius is the sight radius in tiles.
	FOVRadius int `env:"PENUMBRA_FOV_RADIUS" envDefault:"5"`

	// HistoryDays bounds how far back the calendar source reaches.
	HistoryDays int `env:"PENUMBRA_HISTORY_DAYS" envDefault:"14"`

	// RepoPath is the git repository mined for commit history. Empty
	// means the current directory.
	RepoPath string `env:"PENUMBRA_REPO"`

	// Sound toggles audio cues.
	Sound bool `env:"PENUMBRA_SOUND" envDefault:"true"`

	// SaveSlot selects which save slot play and resume use.
	SaveSlot int `env:"PENUMBRA_SAVE_SLOT" envDefault:"1"`
}

// Load reads Settings from the environment and fills in path defaults.
func Load() (Settings, error) {
	var s Settings
	if err := env.Parse(&s); err != nil {
		return Settings{}, fmt.Errorf("parse env: %w", err)
	}
	if err := s.validate(); err != nil {
		return Settings{}, err
	}
	if s.DBPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Settings{}, fmt.Errorf("resolve home dir: %w", err)
		}
		s.DBPath = filepath.Join(home, ".penumbra", "penumbra.db")
	}
	return s, nil
}

func (s Settings) validate() error {
	if s.FOVRadius < 1 {
		return fmt.Errorf("fov radius must be at least 1, got %d", s.FOVRadius)
	}
	if s.HistoryDays < 1 {
		return fmt.Errorf("history days must be at least 1, got %d", s.HistoryDays)
	}
	if s.SaveSlot < 1 {
		return fmt.Errorf("save slot must be at least 1, got %d", s.SaveSlot)
	}
	return nil
}
