package world

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"
)

// Grid is a fixed-size rectangle of cells stored row-major in a flat slice.
type Grid struct {
	cells []Cell
	cols  int
	rows  int
}

// NewGrid creates a grid with every wall present and every cell unvisited.
// It panics if either dimension is not positive.
func NewGrid(cols, rows int) *Grid {
	g := &Grid{}
	g.Build(cols, rows)
	return g
}

// Build initializes the grid with the given dimensions
func (g *Grid) Build(cols, rows int) {
	if cols <= 0 || rows <= 0 {
		panic(fmt.Sprintf("world: grid dimensions must be positive, got %dx%d", cols, rows))
	}

	g.cols = cols
	g.rows = rows
	g.cells = make([]Cell, cols*rows)

	for i := range g.cells {
		g.cells[i] = newCell()
	}
}

// Cols returns the number of columns in the grid
func (g *Grid) Cols() int {
	return g.cols
}

// Rows returns the number of rows in the grid
func (g *Grid) Rows() int {
	return g.rows
}

// Contains checks if a position is within grid bounds
func (g *Grid) Contains(p Pos) bool {
	return p.Col >= 0 && p.Col < g.cols && p.Row >= 0 && p.Row < g.rows
}

func (g *Grid) index(p Pos) int {
	if !g.Contains(p) {
		panic(fmt.Sprintf("world: position %v outside %dx%d grid", p, g.cols, g.rows))
	}
	return p.Row*g.cols + p.Col
}

// WallFlags returns the wall flags of the cell at p
func (g *Grid) WallFlags(p Pos) Walls {
	return g.cells[g.index(p)].Walls
}

// Passable reports whether the wall on side dir of the cell at p is absent
func (g *Grid) Passable(p Pos, dir Direction) bool {
	return !g.WallFlags(p).Has(dir)
}

// NeighborsOf returns the in-bounds cells adjacent to p in left, right, top, bottom order
func (g *Grid) NeighborsOf(p Pos) []Pos {
	neighbors := make([]Pos, 0, 4)
	for _, dir := range AllDirections() {
		if n := p.Step(dir); g.Contains(n) {
			neighbors = append(neighbors, n)
		}
	}
	return neighbors
}

// RemoveWallBetween clears the shared wall of two adjacent cells on both sides.
// It panics if a and b are not grid-adjacent.
func (g *Grid) RemoveWallBetween(a, b Pos) {
	dir, ok := a.directionTo(b)
	if !ok || !g.Contains(a) || !g.Contains(b) {
		panic(fmt.Sprintf("world: cannot remove wall between non-adjacent cells %v and %v", a, b))
	}

	g.cells[g.index(a)].set(dir, false)
	g.cells[g.index(b)].set(dir.Opposite(), false)
}

// Visited reports whether generation has reached the cell at p
func (g *Grid) Visited(p Pos) bool {
	return g.cells[g.index(p)].visited
}

// MarkVisited flags the cell at p as reached by generation
func (g *Grid) MarkVisited(p Pos) {
	g.cells[g.index(p)].visited = true
}

// ResetVisited clears the visited flag on every cell
func (g *Grid) ResetVisited() {
	for i := range g.cells {
		g.cells[i].visited = false
	}
}

// ForEachCell iterates over all cells in row-major order
func (g *Grid) ForEachCell(fn func(p Pos, w Walls)) {
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			fn(Pos{Col: col, Row: row}, g.cells[row*g.cols+col].Walls)
		}
	}
}

// Clone returns a deep copy of the grid
func (g *Grid) Clone() *Grid {
	c := &Grid{cols: g.cols, rows: g.rows, cells: make([]Cell, len(g.cells))}
	copy(c.cells, g.cells)
	return c
}

// PassageCount returns the number of removed walls, counting each shared wall once.
func (g *Grid) PassageCount() int {
	n := 0
	g.ForEachCell(func(p Pos, w Walls) {
		// Only look right and down so every shared wall is seen once
		if !w.Right && p.Col < g.cols-1 {
			n++
		}
		if !w.Bottom && p.Row < g.rows-1 {
			n++
		}
	})
	return n
}

// Reachable returns the number of cells reachable from start through absent walls
func (g *Grid) Reachable(start Pos) int {
	if !g.Contains(start) {
		return 0
	}

	visited := mapset.New[Pos]()
	queue := []Pos{start}
	visited.Put(start)

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, dir := range AllDirections() {
			next := current.Step(dir)
			if !g.Contains(next) || visited.Has(next) || !g.Passable(current, dir) {
				continue
			}
			visited.Put(next)
			queue = append(queue, next)
		}
	}

	return visited.Size()
}

// IsPerfect reports whether the passages form a spanning tree: every cell is
// reachable and there are exactly cols*rows-1 passages.
func (g *Grid) IsPerfect() bool {
	total := g.cols * g.rows
	return g.PassageCount() == total-1 && g.Reachable(Pos{}) == total
}

// Validate checks the grid for common issues and returns an error description or empty string if valid
func (g *Grid) Validate() string {
	if g.cols <= 0 || g.rows <= 0 {
		return "grid has invalid dimensions"
	}

	broken := ""
	g.ForEachCell(func(p Pos, w Walls) {
		if broken != "" {
			return
		}
		for _, dir := range AllDirections() {
			n := p.Step(dir)
			if !g.Contains(n) {
				if !w.Has(dir) {
					broken = fmt.Sprintf("boundary wall %s of %v is missing", dir, p)
				}
				continue
			}
			if w.Has(dir) != g.WallFlags(n).Has(dir.Opposite()) {
				broken = fmt.Sprintf("wall between %v and %v disagrees", p, n)
			}
		}
	})
	if broken != "" {
		return broken
	}

	if !g.IsPerfect() {
		return "grid is not a perfect maze"
	}

	return ""
}
