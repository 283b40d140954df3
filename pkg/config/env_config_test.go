// pkg/config/env_config_test.go
package config

import (
	"testing"
)

func TestLoadConfigFromEnv(t *testing.T) {
	clear := func(t *testing.T) {
		for _, key := range []string{
			"SLINGSHOT_LEVELS_PATH",
			"SLINGSHOT_RENDERER",
			"SLINGSHOT_WINDOW_WIDTH",
			"SLINGSHOT_WINDOW_HEIGHT",
			"SLINGSHOT_WORLD_SCALE",
		} {
			t.Setenv(key, "")
		}
	}

	t.Run("DefaultValues", func(t *testing.T) {
		clear(t)
		cfg, err := LoadConfigFromEnv()
		if err != nil {
			t.Fatalf("LoadConfigFromEnv() failed: %v", err)
		}
		if cfg.Renderer != RendererEngo {
			t.Errorf("Renderer = %q, expected %q", cfg.Renderer, RendererEngo)
		}
		if cfg.WindowWidth != 1024 || cfg.WindowHeight != 768 {
			t.Errorf("window = %dx%d, expected 1024x768", cfg.WindowWidth, cfg.WindowHeight)
		}
		if cfg.WorldScale != 1.5 {
			t.Errorf("WorldScale = %v, expected 1.5", cfg.WorldScale)
		}
		if cfg.LevelsPath != "" {
			t.Errorf("LevelsPath = %q, expected empty (built-in catalog)", cfg.LevelsPath)
		}
	})

	t.Run("CustomValues", func(t *testing.T) {
		clear(t)
		t.Setenv("SLINGSHOT_RENDERER", "terminal")
		t.Setenv("SLINGSHOT_WINDOW_WIDTH", "640")
		t.Setenv("SLINGSHOT_WINDOW_HEIGHT", "480")
		t.Setenv("SLINGSHOT_WORLD_SCALE", "2.0")
		t.Setenv("SLINGSHOT_LEVELS_PATH", "/tmp/levels.yaml")

		cfg, err := LoadConfigFromEnv()
		if err != nil {
			t.Fatalf("LoadConfigFromEnv() failed: %v", err)
		}
		if cfg.Renderer != RendererTerminal {
			t.Errorf("Renderer = %q, expected terminal", cfg.Renderer)
		}
		if cfg.WindowWidth != 640 || cfg.WindowHeight != 480 {
			t.Errorf("window = %dx%d, expected 640x480", cfg.WindowWidth, cfg.WindowHeight)
		}
		if cfg.WorldScale != 2.0 {
			t.Errorf("WorldScale = %v, expected 2.0", cfg.WorldScale)
		}
		if cfg.LevelsPath != "/tmp/levels.yaml" {
			t.Errorf("LevelsPath = %q", cfg.LevelsPath)
		}
	})

	t.Run("MalformedInt", func(t *testing.T) {
		clear(t)
		t.Setenv("SLINGSHOT_WINDOW_WIDTH", "wide")
		if _, err := LoadConfigFromEnv(); err == nil {
			t.Error("expected error for malformed SLINGSHOT_WINDOW_WIDTH")
		}
	})

	t.Run("InvalidRenderer", func(t *testing.T) {
		clear(t)
		t.Setenv("SLINGSHOT_RENDERER", "vulkan")
		if _, err := LoadConfigFromEnv(); err == nil {
			t.Error("expected error for unknown renderer")
		}
	})

	t.Run("NonPositiveWindow", func(t *testing.T) {
		clear(t)
		t.Setenv("SLINGSHOT_WINDOW_WIDTH", "-1")
		if _, err := LoadConfigFromEnv(); err == nil {
			t.Error("expected error for negative window width")
		}
	})
}
