package gameplay

import (
	"github.com/leonelquinteros/gotext"

	engineinput "growmaze/pkg/engine/input"
	"growmaze/pkg/game/devtools"
	"growmaze/pkg/game/state"
)

// ProcessIntent handles a high-level input intent from the tiered input system.
// It returns true when the player asked to quit.
func ProcessIntent(g *state.Game, intent engineinput.Intent) (quit bool) {
	if dir, ok := DirectionFor(intent.Action); ok {
		MovePlayer(g, dir)
		return false
	}

	switch intent.Action {
	case engineinput.ActionNone:
		return false

	case engineinput.ActionHint:
		ShowHint(g)
		return false

	case engineinput.ActionQuit:
		return true

	case engineinput.ActionDumpMaze:
		path, err := devtools.DumpMazeToFile(g)
		if err != nil {
			logMessage(g, gotext.Get("Maze dump failed: %v", err))
		} else {
			logMessage(g, gotext.Get("Maze dumped to %s", path))
		}
		return false
	}

	logMessage(g, gotext.Get("Unknown command."))
	return false
}
