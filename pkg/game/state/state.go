package state

import (
	"log"
	"sync"

	"growmaze/pkg/engine/world"
	"growmaze/pkg/game/generator"
)

// StartSize is the number of columns and rows of the first maze
const StartSize = 5

const maxMessages = 5

// MoveResult reports what a move request did
type MoveResult struct {
	Moved bool // The player stepped into the adjacent cell
	Grew  bool // The exit was reached and a larger maze was generated
}

// Game represents the state of the maze puzzle. All fields are guarded by mu,
// so a move and the regeneration it may trigger are atomic to readers.
type Game struct {
	mu sync.RWMutex

	gen generator.GridGenerator

	cols int
	rows int
	grid *world.Grid

	player world.Pos
	exit   world.Pos

	level    int // Number of the current maze, starting at 1
	moves    int // Successful steps taken on the current maze
	messages []string
}

// NewGame creates a new game with a StartSize x StartSize maze carved by gen
func NewGame(gen generator.GridGenerator) *Game {
	g := &Game{
		gen:      gen,
		cols:     StartSize,
		rows:     StartSize,
		level:    1,
		messages: make([]string, 0),
	}
	g.regenerate()
	return g
}

// regenerate replaces grid, player and exit wholesale for the current size.
// Callers must hold mu for writing (or own g exclusively).
func (g *Game) regenerate() {
	g.grid = g.gen.Generate(g.cols, g.rows, world.Pos{})
	g.player = world.Pos{}
	g.exit = world.Pos{Col: g.cols - 1, Row: g.rows - 1}
	g.moves = 0
}

// RequestMove tries to move the player one cell in dir. A move into a wall is
// a no-op. After every attempt, reaching the exit grows the grid by one column
// and one row and generates a new maze. It panics on an invalid direction.
func (g *Game) RequestMove(dir world.Direction) MoveResult {
	dir.MustBeValid()

	g.mu.Lock()
	defer g.mu.Unlock()

	var res MoveResult
	if g.grid.Passable(g.player, dir) {
		g.player = g.player.Step(dir)
		g.moves++
		res.Moved = true
	}

	if g.player == g.exit {
		g.advanceLevel()
		res.Grew = true
	}

	return res
}

// advanceLevel grows the grid and starts a new maze. Callers must hold mu.
func (g *Game) advanceLevel() {
	g.level++
	g.cols++
	g.rows++
	g.regenerate()
	log.Printf("Level %d: generated %dx%d maze with %s", g.level, g.cols, g.rows, g.gen.Name())
}

// Cols returns the number of columns of the current maze
func (g *Game) Cols() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.cols
}

// Rows returns the number of rows of the current maze
func (g *Game) Rows() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.rows
}

// Grid returns the current maze. Callers must treat it as read-only; it is
// replaced, never mutated, when the maze grows.
func (g *Game) Grid() *world.Grid {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.grid
}

// WallFlags returns the wall flags of a cell of the current maze
func (g *Game) WallFlags(p world.Pos) world.Walls {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.grid.WallFlags(p)
}

// Player returns the player's position
func (g *Game) Player() world.Pos {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.player
}

// Exit returns the exit position
func (g *Game) Exit() world.Pos {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.exit
}

// Level returns the current level number
func (g *Game) Level() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.level
}

// Moves returns the number of steps taken on the current maze
func (g *Game) Moves() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.moves
}

// GeneratorName returns the name of the maze generator in use
func (g *Game) GeneratorName() string {
	return g.gen.Name()
}

// AddMessage adds a message to the game's message log
func (g *Game) AddMessage(msg string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.messages = append(g.messages, msg)

	// Keep only the last maxMessages
	if len(g.messages) > maxMessages {
		g.messages = g.messages[len(g.messages)-maxMessages:]
	}
}

// ClearMessages clears all messages
func (g *Game) ClearMessages() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.messages = make([]string, 0)
}

// Messages returns a copy of the message log, oldest first
func (g *Game) Messages() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return append([]string(nil), g.messages...)
}

// HintPath returns the remaining directions from the player to the exit
func (g *Game) HintPath() []world.Direction {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.grid.Path(g.player, g.exit)
}
