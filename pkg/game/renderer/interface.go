package renderer

import (
	engineinput "growmaze/pkg/engine/input"
	"growmaze/pkg/game/state"
)

// IntentHandler applies a player intent to the game and reports whether the
// player asked to quit.
type IntentHandler func(intent engineinput.Intent) (quit bool)

// Renderer defines the interface for game rendering backends.
// Implementations own their input devices and draw from state snapshots.
type Renderer interface {
	// Name returns the identifier used to select the renderer
	Name() string

	// Init initializes the renderer (colors, window, etc.)
	Init() error

	// Run draws frames and feeds intents to handle until the player quits
	Run(g *state.Game, handle IntentHandler) error
}

// Current holds the active renderer instance
var Current Renderer

// SetRenderer sets the active renderer
func SetRenderer(r Renderer) {
	Current = r
}
