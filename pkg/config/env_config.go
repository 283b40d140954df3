// Package config provides environment-driven configuration for the
// go-slingshot clients. The simulation constants themselves are fixed
// gameplay tuning and are not configurable; this covers the surface
// around the core (catalog location, renderer choice, window geometry).
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Renderer selection values for SLINGSHOT_RENDERER.
const (
	RendererEngo     = "engo"
	RendererTerminal = "terminal"
	RendererNull     = "null"
)

// EnvironmentConfig holds client configuration loaded from the environment.
type EnvironmentConfig struct {
	LevelsPath   string // optional path to a YAML level catalog; empty means built-in levels
	Renderer     string // engo, terminal, or null
	WindowWidth  int
	WindowHeight int
	WorldScale   float64 // world units per terminal cell for the terminal client
}

// LoadConfigFromEnv reads configuration from SLINGSHOT_* environment
// variables, applying defaults for anything unset.
func LoadConfigFromEnv() (*EnvironmentConfig, error) {
	cfg := &EnvironmentConfig{
		LevelsPath: os.Getenv("SLINGSHOT_LEVELS_PATH"),
		Renderer:   getEnvString("SLINGSHOT_RENDERER", RendererEngo),
	}

	var err error
	if cfg.WindowWidth, err = getEnvInt("SLINGSHOT_WINDOW_WIDTH", 1024); err != nil {
		return nil, err
	}
	if cfg.WindowHeight, err = getEnvInt("SLINGSHOT_WINDOW_HEIGHT", 768); err != nil {
		return nil, err
	}
	if cfg.WorldScale, err = getEnvFloat("SLINGSHOT_WORLD_SCALE", 1.5); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks configuration invariants.
func (c *EnvironmentConfig) Validate() error {
	switch c.Renderer {
	case RendererEngo, RendererTerminal, RendererNull:
	default:
		return fmt.Errorf("invalid renderer %q (must be %s, %s, or %s)",
			c.Renderer, RendererEngo, RendererTerminal, RendererNull)
	}
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.WindowWidth, c.WindowHeight)
	}
	if c.WorldScale <= 0 {
		return fmt.Errorf("world scale must be positive, got %v", c.WorldScale)
	}
	return nil
}

func getEnvString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid value for %s: %q", key, v)
	}
	return n, nil
}

func getEnvFloat(key string, fallback float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid value for %s: %q", key, v)
	}
	return f, nil
}
