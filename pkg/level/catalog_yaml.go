// pkg/level/catalog_yaml.go
package level

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/opd-ai/go-slingshot/pkg/physics"
)

// catalogFile is the YAML document shape for an external level catalog.
type catalogFile struct {
	Levels []levelConfig `yaml:"levels"`
}

// levelConfig mirrors Level for YAML decoding.
type levelConfig struct {
	Name        string       `yaml:"name"`
	Description string       `yaml:"description"`
	Hint        string       `yaml:"hint"`
	Start       vectorConfig `yaml:"start"`
	Goal        vectorConfig `yaml:"goal"`
	Bodies      []bodyConfig `yaml:"bodies"`
}

type vectorConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type bodyConfig struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Mass   float64 `yaml:"mass"`
	Radius float64 `yaml:"radius"`
}

// LoadCatalog reads a level catalog from a YAML file. Invalid level data
// (missing name, non-positive body radius or mass) is rejected here so a
// broken layout can never reach a flight.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read level catalog %s: %w", path, err)
	}
	return ParseCatalog(data)
}

// ParseCatalog decodes a YAML level catalog document.
func ParseCatalog(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse level catalog YAML: %w", err)
	}
	if len(file.Levels) == 0 {
		return nil, fmt.Errorf("level catalog contains no levels")
	}

	levels := make([]Level, 0, len(file.Levels))
	for _, lc := range file.Levels {
		levels = append(levels, lc.toLevel())
	}
	return NewCatalog(levels)
}

func (lc levelConfig) toLevel() Level {
	bodies := make([]physics.Body, 0, len(lc.Bodies))
	for _, bc := range lc.Bodies {
		bodies = append(bodies, physics.Body{
			Position: physics.Vector2D{X: bc.X, Y: bc.Y},
			Mass:     bc.Mass,
			Radius:   bc.Radius,
		})
	}
	return Level{
		Name:        lc.Name,
		Description: lc.Description,
		Hint:        lc.Hint,
		Start:       physics.Vector2D{X: lc.Start.X, Y: lc.Start.Y},
		Goal:        physics.Vector2D{X: lc.Goal.X, Y: lc.Goal.Y},
		Bodies:      bodies,
	}
}
