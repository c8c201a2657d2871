// Package config reads the optional TOML settings file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// Keymap binds terminal keys to actions.
type Keymap struct {
	Quit    string `toml:"quit"`
	Up      string `toml:"up"`
	Down    string `toml:"down"`
	Open    string `toml:"open"`
	Back    string `toml:"back"`
	Add     string `toml:"add"`
	Edit    string `toml:"edit"`
	Remove  string `toml:"remove"`
	Advance string `toml:"advance"`
	Theme   string `toml:"theme"`
	Confirm string `toml:"confirm"`
	Cancel  string `toml:"cancel"`
}

type Config struct {
	LogLevel string `toml:"log_level"`
	Keys     Keymap `toml:"keys"`
}

// LoadOrCreate reads path, writing the defaults there first when the file
// does not exist. Keys missing from the file keep their defaults.
func LoadOrCreate(path string) (Config, error) {
	cfg := Default()
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := write(path, cfg); err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse %s: %w", path, err)
	}
	cfg.Keys = cfg.Keys.withDefaults(Default().Keys)
	return cfg, nil
}

func write(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		LogLevel: "info",
		Keys: Keymap{
			Quit:    "q",
			Up:      "k",
			Down:    "j",
			Open:    "enter",
			Back:    "esc",
			Add:     "a",
			Edit:    "e",
			Remove:  "d",
			Advance: " ",
			Theme:   "t",
			Confirm: "enter",
			Cancel:  "esc",
		},
	}
}

func (k Keymap) withDefaults(d Keymap) Keymap {
	fill := func(v *string, def string) {
		if *v == "" {
			*v = def
		}
	}
	fill(&k.Quit, d.Quit)
	fill(&k.Up, d.Up)
	fill(&k.Down, d.Down)
	fill(&k.Open, d.Open)
	fill(&k.Back, d.Back)
	fill(&k.Add, d.Add)
	fill(&k.Edit, d.Edit)
	fill(&k.Remove, d.Remove)
	fill(&k.Advance, d.Advance)
	fill(&k.Theme, d.Theme)
	fill(&k.Confirm, d.Confirm)
	fill(&k.Cancel, d.Cancel)
	return k
}
