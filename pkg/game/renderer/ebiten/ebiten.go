// Package ebiten provides an Ebiten-based 2D graphical renderer for the maze.
// Ebiten is a 2D game library for Go: https://ebiten.org/
package ebiten

import (
	"fmt"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/leonelquinteros/gotext"
	"golang.org/x/image/font/basicfont"

	"growmaze/pkg/game/renderer"
	"growmaze/pkg/game/state"
)

// EbitenRenderer is the Ebiten-based graphical renderer
type EbitenRenderer struct {
	// Initial window dimensions; the window is resizable afterwards
	windowWidth  int
	windowHeight int

	// Logical screen size reported by the last Layout call
	screenWidth  int
	screenHeight int
	sizeMutex    sync.RWMutex

	face *text.GoXFace

	game   *state.Game
	handle renderer.IntentHandler

	// Touch IDs reused between ticks
	touchIDs []ebiten.TouchID

	// Flag to track if we've logged window opening
	windowOpenedLogged bool
}

// New creates a new Ebiten renderer
func New() *EbitenRenderer {
	return &EbitenRenderer{
		windowWidth:  defaultWindowWidth,
		windowHeight: defaultWindowHeight,
		screenWidth:  defaultWindowWidth,
		screenHeight: defaultWindowHeight,
	}
}

// Name returns the identifier used to select this renderer
func (e *EbitenRenderer) Name() string {
	return "ebiten"
}

// Init loads the font face used for status text
func (e *EbitenRenderer) Init() error {
	e.face = text.NewGoXFace(basicfont.Face7x13)
	return nil
}

// Run opens the window and blocks in the Ebiten game loop until the player quits
// or the window is closed.
func (e *EbitenRenderer) Run(g *state.Game, handle renderer.IntentHandler) error {
	e.game = g
	e.handle = handle

	ebiten.SetWindowSize(e.windowWidth, e.windowHeight)
	ebiten.SetWindowTitle(gotext.Get("Growing Maze"))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(e); err != nil {
		return fmt.Errorf("ebiten: %w", err)
	}
	return nil
}

// Layout returns the game's logical screen size (Ebiten interface).
// The logical size tracks the window so the maze refits on resize.
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	e.sizeMutex.Lock()
	e.screenWidth = outsideWidth
	e.screenHeight = outsideHeight
	e.sizeMutex.Unlock()
	return outsideWidth, outsideHeight
}

// screenSize returns the logical screen size
func (e *EbitenRenderer) screenSize() (width, height int) {
	e.sizeMutex.RLock()
	defer e.sizeMutex.RUnlock()
	return e.screenWidth, e.screenHeight
}

// mazeLayout fits the maze into the screen area left between the status
// header and the message footer.
func mazeLayout(width, height, cols, rows int) renderer.Layout {
	top := float64(headerLines * textLineHeight)
	bottom := float64(footerLines * textLineHeight)
	return renderer.FitGrid(float64(width), float64(height)-top-bottom, cols, rows).Shift(0, top)
}
