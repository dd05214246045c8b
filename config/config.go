// Package config loads the self-play runner configuration from the
// user's XDG config directory, falling back to defaults when no file
// exists.
package config

import (
	"encoding/json"
	"io/fs"
	"os"

	"github.com/adrg/xdg"
	"github.com/pkg/errors"
)

var cfgFile = "qwerty-othello/config.json"

// SearchConfig holds the search parameters agents play with.
type SearchConfig struct {
	Depth int    `json:"depth"`
	Mode  string `json:"mode"` // "positional" or "stonediff"
}

// ArenaConfig holds the self-play batch parameters.
type ArenaConfig struct {
	Games       int `json:"games"`
	Concurrency int `json:"concurrency"`
	RandomPlies int `json:"random_plies"`
}

// OutputConfig holds the diagnostic output settings.
type OutputConfig struct {
	// SVGDir, when set, is where final positions are written as SVG
	// diagrams, one file per game.
	SVGDir string `json:"svg_dir"`
}

type Config struct {
	Search SearchConfig `json:"search"`
	Arena  ArenaConfig  `json:"arena"`
	Output OutputConfig `json:"output"`
}

// DefaultConfig is the configuration used when no config file exists.
var DefaultConfig = Config{
	Search: SearchConfig{Depth: 7, Mode: "positional"},
	Arena:  ArenaConfig{Games: 1, Concurrency: 1, RandomPlies: 0},
}

// InitConfig returns the configuration, merging the user's config file
// over the defaults when one is found in the XDG config search path.
func InitConfig() (*Config, error) {
	config := DefaultConfig
	absPath, err := xdg.SearchConfigFile(cfgFile)
	if err == nil {
		if err := readCfgFile(absPath, &config); err != nil {
			return nil, err
		}
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Validate rejects configurations the runner cannot honor.
func (c *Config) Validate() error {
	if c.Search.Depth < 1 {
		return errors.Errorf("config: search depth %d, want >= 1", c.Search.Depth)
	}
	if c.Search.Mode != "positional" && c.Search.Mode != "stonediff" {
		return errors.Errorf("config: unknown eval mode %q", c.Search.Mode)
	}
	if c.Arena.Games < 1 {
		return errors.Errorf("config: games %d, want >= 1", c.Arena.Games)
	}
	if c.Arena.Concurrency < 1 {
		return errors.Errorf("config: concurrency %d, want >= 1", c.Arena.Concurrency)
	}
	if c.Arena.RandomPlies < 0 {
		return errors.Errorf("config: random plies %d, want >= 0", c.Arena.RandomPlies)
	}
	return nil
}

// Save writes the configuration to the XDG config location.
func (c *Config) Save() error {
	absPath, err := xdg.ConfigFile(cfgFile)
	if err != nil {
		return errors.Wrap(err, "config: resolving config path")
	}
	return saveCfgFile(absPath, c, 0o664)
}

func saveCfgFile(filePath string, a interface{}, perm fs.FileMode) error {
	jsonData, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return errors.Wrap(err, "config: encoding")
	}
	if err := os.WriteFile(filePath, jsonData, perm); err != nil {
		return errors.Wrapf(err, "config: writing %s", filePath)
	}
	return nil
}

func readCfgFile(filePath string, a interface{}) error {
	raw, err := os.ReadFile(filePath)
	if err != nil {
		return errors.Wrapf(err, "config: reading %s", filePath)
	}
	if err := json.Unmarshal(raw, a); err != nil {
		return errors.Wrapf(err, "config: parsing %s", filePath)
	}
	return nil
}
