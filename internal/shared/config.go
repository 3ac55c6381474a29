package shared

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

//go:embed config.example.toml
var exampleConf []byte

// Config represents the application configuration loaded from a TOML file.
type Config struct {
	Main      MainConfig       `toml:"main"`
	Playlists []PlaylistConfig `toml:"playlist"`
}

// MainConfig contains global settings applied to every playlist unless overridden.
type MainConfig struct {
	Root       string `toml:"root"`       // Default root directory for playlist folders
	Database   string `toml:"database"`   // Path to the sync history database
	Downloader string `toml:"downloader"` // External media/listing fetch tool
	Tagger     string `toml:"tagger"`     // External tag read/write tool
}

// PlaylistConfig describes one remote playlist to mirror locally.
//
// Root is optional and falls back to [MainConfig.Root].
type PlaylistConfig struct {
	Name  string `toml:"name"`
	Genre string `toml:"genre"`
	URL   string `toml:"url"`
	Root  string `toml:"root"`
}

// LoadConfig reads and parses a TOML configuration file from the specified path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read config file: %v", ErrMissingConfig, err)
	}

	var config Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("%w: failed to parse config: %v", ErrInvalidConfig, err)
	}

	config.applyDefaults()
	return &config, nil
}

// DefaultConfig returns a Config with sensible defaults loaded from the embedded example config.
func DefaultConfig() *Config {
	var config Config
	if err := toml.Unmarshal(exampleConf, &config); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	config.applyDefaults()
	return &config
}

// SaveConfig writes the configuration to the specified path as TOML.
func SaveConfig(path string, config *Config) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(config); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	return nil
}

// CreateConfigFile creates a config.toml file at the specified path using the embedded example config.
func CreateConfigFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	if err := os.WriteFile(path, exampleConf, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// applyDefaults fills unset main settings from the embedded example values.
func (c *Config) applyDefaults() {
	if c.Main.Root == "" {
		c.Main.Root = "."
	}
	if c.Main.Database == "" {
		c.Main.Database = "playlist-dl.db"
	}
	if c.Main.Downloader == "" {
		c.Main.Downloader = "yt-dlp"
	}
	if c.Main.Tagger == "" {
		c.Main.Tagger = "AtomicParsley"
	}
}

// Resolve returns the configured playlists with per-playlist root defaulting applied.
//
// rootOverride takes precedence over both the playlist root and the global root
// (command line beats configuration, matching flag semantics).
func (c *Config) Resolve(rootOverride string) []PlaylistConfig {
	resolved := make([]PlaylistConfig, len(c.Playlists))
	for i, pc := range c.Playlists {
		if rootOverride != "" {
			pc.Root = rootOverride
		} else if pc.Root == "" {
			pc.Root = c.Main.Root
		}
		resolved[i] = pc
	}
	return resolved
}
