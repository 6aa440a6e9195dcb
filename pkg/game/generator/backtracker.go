package generator

import (
	"github.com/zyedidia/generic/stack"

	"growmaze/pkg/engine/world"
)

// Backtracker generates perfect mazes with randomized depth-first backtracking
type Backtracker struct {
	src Source
}

// NewBacktracker creates a backtracker drawing its choices from src
func NewBacktracker(src Source) *Backtracker {
	return &Backtracker{src: src}
}

// Name returns the name of this generator
func (b *Backtracker) Name() string {
	return "Depth-First Backtracker"
}

// Generate builds a new cols x rows grid and carves a perfect maze into it
// starting at start. Every cell is visited and exactly cols*rows-1 walls are removed.
func (b *Backtracker) Generate(cols, rows int, start world.Pos) *world.Grid {
	grid := world.NewGrid(cols, rows)
	b.carve(grid, start)
	return grid
}

// carve runs one generation pass over a fresh grid from start.
func (b *Backtracker) carve(grid *world.Grid, start world.Pos) {
	grid.ResetVisited()

	path := stack.New[world.Pos]()
	current := start
	grid.MarkVisited(current)

	for {
		candidates := unvisitedNeighbors(grid, current)

		if len(candidates) > 0 {
			next := candidates[b.src.Intn(len(candidates))]
			grid.RemoveWallBetween(current, next)
			path.Push(current)
			current = next
			grid.MarkVisited(current)
			continue
		}

		if path.Size() == 0 {
			return
		}
		current = path.Pop()
	}
}

// unvisitedNeighbors filters NeighborsOf by the visited flag, keeping its order
func unvisitedNeighbors(grid *world.Grid, p world.Pos) []world.Pos {
	neighbors := grid.NeighborsOf(p)
	unvisited := neighbors[:0]
	for _, n := range neighbors {
		if !grid.Visited(n) {
			unvisited = append(unvisited, n)
		}
	}
	return unvisited
}
