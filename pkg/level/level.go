// Package level defines the immutable per-level layout: where the craft
// starts, where the goal portal sits, and which bodies bend the flight.
package level

import (
	"fmt"

	"github.com/opd-ai/go-slingshot/pkg/physics"
)

// Level is one puzzle layout. Levels are read-only after construction;
// the engine clones what it needs into each run.
type Level struct {
	Name        string
	Description string
	Hint        string
	Start       physics.Vector2D
	Goal        physics.Vector2D
	Bodies      []physics.Body
}

// Clone returns a copy of the level with its own body slice, so a run
// can never alias catalog data.
func (l Level) Clone() Level {
	bodies := make([]physics.Body, len(l.Bodies))
	copy(bodies, l.Bodies)
	l.Bodies = bodies
	return l
}

// Catalog is an ordered, immutable collection of levels.
type Catalog struct {
	levels []Level
}

// NewCatalog builds a catalog from the given levels, validating each one.
func NewCatalog(levels []Level) (*Catalog, error) {
	for i, l := range levels {
		if err := validateLevel(l); err != nil {
			return nil, fmt.Errorf("level %d (%q): %w", i, l.Name, err)
		}
	}
	return &Catalog{levels: levels}, nil
}

// Count returns the number of levels in the catalog.
func (c *Catalog) Count() int {
	return len(c.levels)
}

// Level returns a clone of the level at the given index. The index must
// be in range; an out-of-range index is a programming error.
func (c *Catalog) Level(index int) Level {
	if index < 0 || index >= len(c.levels) {
		panic(fmt.Sprintf("level index %d out of range [0,%d)", index, len(c.levels)))
	}
	return c.levels[index].Clone()
}

// validateLevel rejects layouts that would misbehave mid-flight. A body
// with non-positive radius or mass is a catalog authoring error and is
// caught here, at load time.
func validateLevel(l Level) error {
	if l.Name == "" {
		return fmt.Errorf("level name is required")
	}
	for i, b := range l.Bodies {
		if b.Radius <= 0 {
			return fmt.Errorf("body %d: radius must be positive, got %v", i, b.Radius)
		}
		if b.Mass <= 0 {
			return fmt.Errorf("body %d: mass must be positive, got %v", i, b.Mass)
		}
	}
	return nil
}
