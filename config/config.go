package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/lixenwraith/vi-tennis/constants"
	"github.com/lixenwraith/vi-tennis/input"
)

// Config is the runner configuration; the engine itself takes no options
type Config struct {
	Game    GameConfig          `toml:"game"`
	Display DisplayConfig       `toml:"display"`
	Keys    map[string][]string `toml:"keys"`
	Log     LogConfig           `toml:"log"`
	Record  RecordConfig        `toml:"record"`
}

type GameConfig struct {
	// TickRate is simulated ticks per second
	TickRate int `toml:"tick_rate"`
	// HoldTicks is how long a key press counts as held without a repeat
	HoldTicks int `toml:"hold_ticks"`
}

type DisplayConfig struct {
	DebugHitboxes bool `toml:"debug_hitboxes"`
	LandingMarker bool `toml:"landing_marker"`
}

type LogConfig struct {
	Debug bool   `toml:"debug"`
	Dir   string `toml:"dir"`
}

type RecordConfig struct {
	// Path receives the replay journal at exit; empty disables recording
	Path string `toml:"path"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Game: GameConfig{
			TickRate:  constants.TickRate,
			HoldTicks: input.DefaultHoldTicks,
		},
		Display: DisplayConfig{LandingMarker: true},
		Keys:    input.DefaultBindings(),
		Log:     LogConfig{Dir: "logs"},
	}
}

// Load decodes the TOML file at path over the defaults; "" skips the file
// Key tables merge per action: a listed action replaces its default keys, others keep theirs
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, fmt.Errorf("unknown config key %q in %s", undecoded[0].String(), path)
	}

	return cfg, cfg.Validate()
}

// Save writes cfg as TOML, creating the parent directory
func Save(path string, cfg Config) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create config dir: %w", err)
		}
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return os.WriteFile(path, buf.Bytes(), 0644)
}

// Validate rejects values the runner cannot use
func (c Config) Validate() error {
	var errs []error
	if c.Game.TickRate < 1 || c.Game.TickRate > 1000 {
		errs = append(errs, fmt.Errorf("game.tick_rate %d out of range 1..1000", c.Game.TickRate))
	}
	if c.Game.HoldTicks < 1 {
		errs = append(errs, fmt.Errorf("game.hold_ticks must be positive, got %d", c.Game.HoldTicks))
	}
	if _, err := input.ParseKeyMap(c.Keys); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// KeyMap builds the key table from the configured bindings
func (c Config) KeyMap() (*input.KeyMap, error) {
	return input.ParseKeyMap(c.Keys)
}
