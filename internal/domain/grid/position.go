// Package grid holds the coordinate system shared by every entity in the
// simulation: an integer (x, y) pair bounded by the city's grid size.
package grid

import (
	"errors"
	"fmt"
)

// Position is an integer grid coordinate.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

var (
	ErrOutOfBounds = errors.New("position out of bounds")
)

// Bounds describes the inclusive coordinate range a Position must fall
// within. The zero value is invalid; use NewBounds.
type Bounds struct {
	MaxX int
	MaxY int
}

// NewBounds builds a Bounds for a width x height grid (coordinates
// 0..width-1, 0..height-1).
func NewBounds(width, height int) (Bounds, error) {
	if width <= 0 || height <= 0 {
		return Bounds{}, fmt.Errorf("grid dimensions must be positive, got %dx%d", width, height)
	}
	return Bounds{MaxX: width - 1, MaxY: height - 1}, nil
}

// Validate reports whether p falls within b.
func (b Bounds) Validate(p Position) error {
	if p.X < 0 || p.X > b.MaxX || p.Y < 0 || p.Y > b.MaxY {
		return fmt.Errorf("%w: (%d,%d) not within 0..%d,0..%d", ErrOutOfBounds, p.X, p.Y, b.MaxX, b.MaxY)
	}
	return nil
}

// ManhattanDistance returns |x1-x2| + |y1-y2|.
func ManhattanDistance(a, b Position) int {
	return absInt(a.X-b.X) + absInt(a.Y-b.Y)
}

// Equal reports whether a and b denote the same cell.
func (a Position) Equal(b Position) bool {
	return a.X == b.X && a.Y == b.Y
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
