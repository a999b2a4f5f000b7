// Package game provides the engine-independent gameplay types shared by
// the save backend and its callers: world positions, level/scene naming,
// and the per-session runtime state. It contains no external dependencies
// to keep the types pure and testable.
package game

import (
	"fmt"
	"strconv"
	"strings"
)

// Position is a 2D world coordinate of the player character.
type Position struct {
	X, Y float64
}

// DefaultSpawn is the fixed spawn point every level shares. Auto-save
// fires when the player stands here, so it is also the position written
// for sessions that have a dialogue flag but no real checkpoint yet.
var DefaultSpawn = Position{X: -4.75, Y: -2.04}

// String serializes the position in the stored wire format: two
// fixed two-decimal components joined by a comma, e.g. "-4.75,-2.04".
func (p Position) String() string {
	return fmt.Sprintf("%.2f,%.2f", p.X, p.Y)
}

// ParsePosition parses the stored "x,y" format back into a Position.
// The string must contain exactly two parseable float components;
// anything else is an error, never a zero fallback.
func ParsePosition(s string) (Position, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return Position{}, fmt.Errorf("game: position %q: expected two comma-separated components", s)
	}

	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return Position{}, fmt.Errorf("game: position %q: bad x component: %w", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return Position{}, fmt.Errorf("game: position %q: bad y component: %w", s, err)
	}

	return Position{X: x, Y: y}, nil
}
