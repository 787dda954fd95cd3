package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variable names
const (
	EnvConfig   = "VITENNIS_CONFIG"
	EnvDebug    = "VITENNIS_DEBUG"
	EnvRecord   = "VITENNIS_RECORD"
	EnvTickRate = "VITENNIS_TICK_RATE"
	EnvLogDir   = "VITENNIS_LOG_DIR"
)

// LoadEnvFile loads a .env file into the process environment
// Variables already set are kept; a missing file is ignored
func LoadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides file values from VITENNIS_* variables
// lookup is os.LookupEnv in production
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if lookup == nil {
		lookup = os.LookupEnv
	}

	if v, ok := lookup(EnvDebug); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvDebug, err)
		}
		c.Log.Debug = b
	}
	if v, ok := lookup(EnvTickRate); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvTickRate, err)
		}
		c.Game.TickRate = n
	}
	if v, ok := lookup(EnvRecord); ok {
		c.Record.Path = v
	}
	if v, ok := lookup(EnvLogDir); ok && v != "" {
		c.Log.Dir = v
	}

	return c.Validate()
}
