package world

import "fmt"

// Direction represents one of the four sides of a cell
type Direction int

// Direction constants
const (
	Up Direction = iota
	Down
	Left
	Right
)

// AllDirections returns the directions in neighbor order: left, right, top, bottom.
// Generation builds its candidate list in this order, so scripted random sources
// depend on it staying fixed.
func AllDirections() []Direction {
	return []Direction{Left, Right, Up, Down}
}

// String returns the string representation of a direction
func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the direction is one of the four sides
func (d Direction) IsValid() bool {
	return d >= Up && d <= Right
}

// MustBeValid panics when d is not one of the four sides.
func (d Direction) MustBeValid() {
	if !d.IsValid() {
		panic(fmt.Sprintf("world: invalid direction %d", int(d)))
	}
}

// Opposite returns the opposite direction
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	default:
		return d
	}
}

// Delta returns the column and row offsets for this direction
func (d Direction) Delta() (colDelta, rowDelta int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	default:
		return 0, 0
	}
}
