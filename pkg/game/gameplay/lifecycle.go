package gameplay

import (
	"log"

	"github.com/leonelquinteros/gotext"

	"growmaze/pkg/game/generator"
	"growmaze/pkg/game/state"
)

// BuildGame creates a new game whose mazes are carved by gen
func BuildGame(gen generator.GridGenerator) *state.Game {
	g := state.NewGame(gen)

	log.Printf("Level 1: generated %dx%d maze with %s", g.Cols(), g.Rows(), gen.Name())

	logMessage(g, gotext.Get("Welcome to the maze!"))
	logMessage(g, gotext.Get("Reach the exit to grow the maze."))

	return g
}

// BuildSeededGame creates a new game using the default generator and seed.
// A zero seed picks one from the clock.
func BuildSeededGame(seed int64) *state.Game {
	return BuildGame(generator.DefaultGenerator(seed))
}
