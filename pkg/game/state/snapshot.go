package state

import "growmaze/pkg/engine/world"

// Snapshot holds a consistent copy of everything a renderer draws in one frame.
type Snapshot struct {
	Cols     int
	Rows     int
	Walls    []world.Walls // Row-major, Cols*Rows entries
	Player   world.Pos
	Exit     world.Pos
	Level    int
	Moves    int
	Messages []string
}

// WallFlags returns the wall flags of the cell at p
func (s Snapshot) WallFlags(p world.Pos) world.Walls {
	return s.Walls[p.Row*s.Cols+p.Col]
}

// Snapshot copies the current state under a single read lock
func (g *Game) Snapshot() Snapshot {
	g.mu.RLock()
	defer g.mu.RUnlock()

	snap := Snapshot{
		Cols:     g.cols,
		Rows:     g.rows,
		Walls:    make([]world.Walls, 0, g.cols*g.rows),
		Player:   g.player,
		Exit:     g.exit,
		Level:    g.level,
		Moves:    g.moves,
		Messages: append([]string(nil), g.messages...),
	}
	g.grid.ForEachCell(func(_ world.Pos, w world.Walls) {
		snap.Walls = append(snap.Walls, w)
	})
	return snap
}
