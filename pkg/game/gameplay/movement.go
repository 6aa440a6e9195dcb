// Package gameplay connects player intents to the maze state.
package gameplay

import (
	"github.com/leonelquinteros/gotext"

	engineinput "growmaze/pkg/engine/input"
	"growmaze/pkg/engine/world"
	"growmaze/pkg/game/state"
)

// DirectionFor maps a movement action to a maze direction.
// ok is false for non-movement actions.
func DirectionFor(a engineinput.Action) (dir world.Direction, ok bool) {
	switch a {
	case engineinput.ActionMoveUp:
		return world.Up, true
	case engineinput.ActionMoveDown:
		return world.Down, true
	case engineinput.ActionMoveLeft:
		return world.Left, true
	case engineinput.ActionMoveRight:
		return world.Right, true
	default:
		return 0, false
	}
}

// MovePlayer asks the game to move the player one cell and records level-ups
// in the message log
func MovePlayer(g *state.Game, dir world.Direction) state.MoveResult {
	res := g.RequestMove(dir)
	if res.Grew {
		snap := g.Snapshot()
		logMessage(g, gotext.Get("Level %d! The maze grows to %dx%d.", snap.Level, snap.Cols, snap.Rows))
	}
	return res
}

// logMessage adds a message to the game's message log
func logMessage(g *state.Game, msg string) {
	g.AddMessage(msg)
}
