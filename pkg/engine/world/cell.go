// Package world provides the maze grid primitives: positions, cells and
// their wall flags.
package world

import "fmt"

// Pos identifies a cell by column and row, both 0-indexed.
type Pos struct {
	Col int
	Row int
}

// String returns "(col,row)"
func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.Col, p.Row)
}

// Step returns the position one cell away in the given direction.
// The result may be out of bounds.
func (p Pos) Step(dir Direction) Pos {
	dc, dr := dir.Delta()
	return Pos{Col: p.Col + dc, Row: p.Row + dr}
}

// directionTo returns the direction leading from p to an adjacent q.
// ok is false unless q differs from p by exactly 1 on exactly one axis.
func (p Pos) directionTo(q Pos) (dir Direction, ok bool) {
	for _, d := range AllDirections() {
		if p.Step(d) == q {
			return d, true
		}
	}
	return 0, false
}

// Walls holds the four wall flags of a cell. A true flag means the wall is present.
type Walls struct {
	Top    bool
	Bottom bool
	Left   bool
	Right  bool
}

// AllWalls returns a Walls value with every wall present
func AllWalls() Walls {
	return Walls{Top: true, Bottom: true, Left: true, Right: true}
}

// Has reports whether the wall on the given side is present
func (w Walls) Has(dir Direction) bool {
	switch dir {
	case Up:
		return w.Top
	case Down:
		return w.Bottom
	case Left:
		return w.Left
	case Right:
		return w.Right
	default:
		return true
	}
}

// set assigns the wall flag on the given side
func (w *Walls) set(dir Direction, present bool) {
	switch dir {
	case Up:
		w.Top = present
	case Down:
		w.Bottom = present
	case Left:
		w.Left = present
	case Right:
		w.Right = present
	}
}

// Cell represents a single cell in the grid
type Cell struct {
	Walls

	// visited is only meaningful during a generation pass
	visited bool
}

// newCell creates a cell with every wall present
func newCell() Cell {
	return Cell{Walls: AllWalls()}
}
