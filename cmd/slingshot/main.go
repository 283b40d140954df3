// cmd/slingshot/main.go
package main

import (
	"log"

	"github.com/EngoEngine/engo"

	"github.com/opd-ai/go-slingshot/pkg/config"
	"github.com/opd-ai/go-slingshot/pkg/engine"
	"github.com/opd-ai/go-slingshot/pkg/level"
	engorender "github.com/opd-ai/go-slingshot/pkg/render/engo"
)

func main() {
	cfg, err := config.LoadConfigFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	catalog, err := loadCatalog(cfg)
	if err != nil {
		log.Fatalf("Failed to load level catalog: %v", err)
	}

	game := engine.NewGame(catalog)
	scene := engorender.NewGameScene(game)

	opts := engo.RunOptions{
		Title:  "Slingshot",
		Width:  cfg.WindowWidth,
		Height: cfg.WindowHeight,
		VSync:  true,
	}
	engo.Run(opts, scene)
}

// loadCatalog loads the YAML catalog when a path is configured,
// falling back to the built-in levels.
func loadCatalog(cfg *config.EnvironmentConfig) (*level.Catalog, error) {
	if cfg.LevelsPath == "" {
		return level.DefaultCatalog(), nil
	}
	return level.LoadCatalog(cfg.LevelsPath)
}
