// Package config loads the game settings from the environment and an optional
// .env file. Command-line flags are applied on top by the caller.
package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Renderer names accepted by MAZE_RENDERER and -renderer
const (
	RendererTUI    = "tui"
	RendererEbiten = "ebiten"
)

// Environment variables read by Load
const (
	EnvRenderer = "MAZE_RENDERER"
	EnvSeed     = "MAZE_SEED"
	EnvLang     = "MAZE_LANG"
	EnvLocales  = "MAZE_LOCALES"
	EnvLogFile  = "MAZE_LOG"
)

var ErrUnknownRenderer = errors.New("unknown renderer")

// Config holds the game settings.
type Config struct {
	Renderer   string // Rendering backend, "tui" or "ebiten"
	Seed       int64  // Maze seed; 0 seeds from the clock
	Lang       string // Language of the message catalogue, e.g. "pt_BR"
	LocalesDir string // Directory holding <lang>/LC_MESSAGES/default.po
	LogFile    string // Diagnostic log destination; empty discards it in the terminal
}

// Defaults returns the settings used when nothing is configured
func Defaults() Config {
	return Config{
		Renderer:   RendererTUI,
		Lang:       "en",
		LocalesDir: "locales",
	}
}

// Load builds a Config from the defaults, the given .env files (".env" when
// none are named) and the process environment, in increasing precedence.
// Missing .env files are not an error.
func Load(envFiles ...string) (Config, error) {
	fileVars, err := godotenv.Read(envFiles...)
	if err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
		fileVars = map[string]string{}
	}

	lookup := func(key string) (string, bool) {
		if value, exists := os.LookupEnv(key); exists {
			return value, true
		}
		value, exists := fileVars[key]
		return value, exists
	}

	cfg := Defaults()
	cfg.Renderer = getWithDefault(lookup, EnvRenderer, cfg.Renderer)
	cfg.Lang = getWithDefault(lookup, EnvLang, cfg.Lang)
	cfg.LocalesDir = getWithDefault(lookup, EnvLocales, cfg.LocalesDir)
	cfg.LogFile = getWithDefault(lookup, EnvLogFile, cfg.LogFile)

	if value, exists := lookup(EnvSeed); exists {
		seed, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("environment variable %s must be an integer: %w", EnvSeed, err)
		}
		cfg.Seed = seed
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the settings that have a fixed set of values
func (c Config) Validate() error {
	switch c.Renderer {
	case RendererTUI, RendererEbiten:
		return nil
	default:
		return fmt.Errorf("%w %q, expected %q or %q", ErrUnknownRenderer, c.Renderer, RendererTUI, RendererEbiten)
	}
}

// getWithDefault retrieves the value of a setting or returns a default value if not set.
func getWithDefault(lookup func(string) (string, bool), key, defaultValue string) string {
	if value, exists := lookup(key); exists {
		return value
	}
	return defaultValue
}
