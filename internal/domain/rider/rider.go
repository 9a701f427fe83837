// Package rider holds the Rider entity: a passenger waiting at, or riding
// from, a grid cell.
package rider

import (
	"errors"
	"strings"

	"ride-hail-sim/internal/domain/grid"
)

// Rider is a single passenger in the world.
type Rider struct {
	ID       string
	Position grid.Position
}

var ErrIDRequired = errors.New("rider id is required")

// New creates a Rider at pos, validated against bounds.
func New(id string, pos grid.Position, bounds grid.Bounds) (*Rider, error) {
	if id = strings.TrimSpace(id); id == "" {
		return nil, ErrIDRequired
	}
	if err := bounds.Validate(pos); err != nil {
		return nil, err
	}
	return &Rider{ID: id, Position: pos}, nil
}
