// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/zyedidia/generic/mapset"

	"growmaze/pkg/engine/world"
	"growmaze/pkg/game/state"
)

const mapDumpFilename = "maze.txt"

// writeMazeBlocks draws the maze with one character per cell and one per wall
// slot, giving a (2*cols+1) x (2*rows+1) block. '#' is a wall, '@' the player,
// 'E' the exit and '.' a cell on the marked path.
func writeMazeBlocks(b *strings.Builder, snap state.Snapshot, path mapset.Set[world.Pos]) {
	width := 2*snap.Cols + 1
	height := 2*snap.Rows + 1

	block := make([][]byte, height)
	for y := range block {
		block[y] = []byte(strings.Repeat("#", width))
	}

	for row := 0; row < snap.Rows; row++ {
		for col := 0; col < snap.Cols; col++ {
			p := world.Pos{Col: col, Row: row}
			w := snap.WallFlags(p)
			x, y := 2*col+1, 2*row+1

			block[y][x] = cellSymbol(snap, p, path)
			if !w.Top {
				block[y-1][x] = ' '
			}
			if !w.Bottom {
				block[y+1][x] = ' '
			}
			if !w.Left {
				block[y][x-1] = ' '
			}
			if !w.Right {
				block[y][x+1] = ' '
			}
		}
	}

	for _, line := range block {
		b.Write(line)
		b.WriteByte('\n')
	}
}

// cellSymbol returns the single-character symbol for a cell
func cellSymbol(snap state.Snapshot, p world.Pos, path mapset.Set[world.Pos]) byte {
	switch {
	case p == snap.Player:
		return '@'
	case p == snap.Exit:
		return 'E'
	case path.Has(p):
		return '.'
	default:
		return ' '
	}
}

// pathCells returns the cells visited when following dirs from start
func pathCells(start world.Pos, dirs []world.Direction) mapset.Set[world.Pos] {
	cells := mapset.New[world.Pos]()
	p := start
	for _, dir := range dirs {
		p = p.Step(dir)
		cells.Put(p)
	}
	return cells
}

// WriteMazeDump writes a debug dump of the current level to w: metadata, the
// maze, and the maze with the path from the player to the exit marked.
// Format is sections of "key: value" lines so it diffs and greps well.
func WriteMazeDump(w io.Writer, g *state.Game) error {
	snap := g.Snapshot()
	grid := g.Grid()
	route := g.HintPath()

	var b strings.Builder

	// --- Metadata ---
	fmt.Fprintln(&b, "=== MAZE DUMP DEBUG (level layout, route) ===")
	fmt.Fprintln(&b, "")
	fmt.Fprintln(&b, "--- Metadata ---")
	fmt.Fprintf(&b, "level: %d\n", snap.Level)
	fmt.Fprintf(&b, "grid_cols: %d\n", snap.Cols)
	fmt.Fprintf(&b, "grid_rows: %d\n", snap.Rows)
	fmt.Fprintf(&b, "coordinate_system: col,row (0-based, col=horizontal, row=vertical)\n")
	fmt.Fprintf(&b, "generator: %s\n", g.GeneratorName())
	fmt.Fprintf(&b, "player_cell: %d,%d\n", snap.Player.Col, snap.Player.Row)
	fmt.Fprintf(&b, "exit_cell: %d,%d\n", snap.Exit.Col, snap.Exit.Row)
	fmt.Fprintf(&b, "moves: %d\n", snap.Moves)
	fmt.Fprintf(&b, "passages: %d\n", grid.PassageCount())
	fmt.Fprintf(&b, "perfect: %v\n", grid.IsPerfect())
	if problem := grid.Validate(); problem != "" {
		fmt.Fprintf(&b, "problem: %s\n", problem)
	}
	fmt.Fprintf(&b, "steps_to_exit: %d\n", len(route))
	fmt.Fprintln(&b, "")

	// --- Legend ---
	fmt.Fprintln(&b, "--- Legend ---")
	fmt.Fprintln(&b, "# = wall  @ = player  E = exit  . = path to exit")
	fmt.Fprintln(&b, "")

	fmt.Fprintln(&b, "--- Maze ---")
	writeMazeBlocks(&b, snap, mapset.New[world.Pos]())
	fmt.Fprintln(&b, "")

	fmt.Fprintln(&b, "--- Maze (path to exit) ---")
	writeMazeBlocks(&b, snap, pathCells(snap.Player, route))

	// --- Route ---
	steps := make([]string, len(route))
	for i, dir := range route {
		steps[i] = dir.String()
	}
	fmt.Fprintln(&b, "")
	fmt.Fprintln(&b, "--- Route ---")
	fmt.Fprintf(&b, "route: %s\n", strings.Join(steps, " "))

	_, err := io.WriteString(w, b.String())
	return err
}

// DumpMazeToFile writes WriteMazeDump's output to maze.txt in the working
// directory and returns the absolute path.
func DumpMazeToFile(g *state.Game) (string, error) {
	absPath, err := filepath.Abs(mapDumpFilename)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := WriteMazeDump(f, g); err != nil {
		return "", fmt.Errorf("devtools: cannot write %s: %w", absPath, err)
	}
	return absPath, nil
}
