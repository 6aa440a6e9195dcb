package ebiten

import (
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	engineinput "growmaze/pkg/engine/input"
)

// keyBinding ties an Ebiten key to the code the input layer maps to an action
type keyBinding struct {
	key    ebiten.Key
	code   string
	repeat bool // Held keys keep firing
}

var keyBindings = []keyBinding{
	{ebiten.KeyArrowUp, "arrow_up", true},
	{ebiten.KeyArrowDown, "arrow_down", true},
	{ebiten.KeyArrowLeft, "arrow_left", true},
	{ebiten.KeyArrowRight, "arrow_right", true},
	{ebiten.KeyW, "w", true},
	{ebiten.KeyS, "s", true},
	{ebiten.KeyA, "a", true},
	{ebiten.KeyD, "d", true},
	{ebiten.KeyK, "k", true},
	{ebiten.KeyJ, "j", true},
	{ebiten.KeyH, "h", true},
	{ebiten.KeyL, "l", true},
	{ebiten.KeyQ, "q", false},
	{ebiten.KeyEscape, "escape", false},
	{ebiten.KeyF8, "f8", false},
}

// Update handles input (Ebiten interface). Intents are applied in the order
// they were read; a quit ends the game loop.
func (e *EbitenRenderer) Update() error {
	// Log window opening on first update (confirms window is actually running)
	if !e.windowOpenedLogged {
		e.windowOpenedLogged = true
		w, h := ebiten.WindowSize()
		log.Printf("Main window opened successfully (%dx%d)", w, h)
	}

	if e.game == nil || e.handle == nil {
		return nil
	}

	intents := e.checkInput()
	if intent := e.checkPointerInput(); intent.Action != engineinput.ActionNone {
		intents = append(intents, intent)
	}

	for _, intent := range intents {
		if e.handle(intent) {
			log.Printf("Quit requested from the %s renderer", e.Name())
			return ebiten.Termination
		}
	}
	return nil
}

// checkInput returns the intents of every key that fired this tick
func (e *EbitenRenderer) checkInput() []engineinput.Intent {
	var intents []engineinput.Intent
	now := time.Now()

	emit := func(code string) {
		intents = append(intents, engineinput.MapToIntent(engineinput.NewDebouncedInput(engineinput.RawInput{
			Device:    engineinput.DeviceKeyboard,
			Code:      code,
			Timestamp: now,
		})))
	}

	// Ctrl+C quits like it does in the terminal
	if inpututil.IsKeyJustPressed(ebiten.KeyC) && ebiten.IsKeyPressed(ebiten.KeyControl) {
		emit("ctrl_c")
		return intents
	}

	// Shift+/ produces ? for a hint
	if inpututil.IsKeyJustPressed(ebiten.KeySlash) && ebiten.IsKeyPressed(ebiten.KeyShift) {
		emit("?")
	}

	for _, b := range keyBindings {
		if keyTriggered(b.key, b.repeat) {
			emit(b.code)
		}
	}
	return intents
}

// keyTriggered reports whether key fires this tick: on the initial press and,
// for repeating keys, periodically while held.
func keyTriggered(key ebiten.Key, repeat bool) bool {
	d := inpututil.KeyPressDuration(key)
	if d == 1 {
		return true
	}
	if !repeat || d <= keyRepeatInitialDelay {
		return false
	}
	return (d-keyRepeatInitialDelay)%keyRepeatInterval == 0
}

// checkPointerInput turns a held mouse button or touch into a drag intent
// measured from the center of the player's cell.
func (e *EbitenRenderer) checkPointerInput() engineinput.Intent {
	x, y, ok := e.pointerPosition()
	if !ok {
		return engineinput.Intent{Action: engineinput.ActionNone}
	}

	w, h := e.screenSize()
	layout := mazeLayout(w, h, e.game.Cols(), e.game.Rows())
	if layout.CellSize <= 0 {
		return engineinput.Intent{Action: engineinput.ActionNone}
	}

	cx, cy := layout.CellCenter(e.game.Player())
	return engineinput.DragIntent(float64(x), float64(y), cx, cy, layout.CellSize)
}

// pointerPosition returns the position of the pressed mouse button or, failing
// that, of the first active touch.
func (e *EbitenRenderer) pointerPosition() (x, y int, ok bool) {
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y = ebiten.CursorPosition()
		return x, y, true
	}

	e.touchIDs = ebiten.AppendTouchIDs(e.touchIDs[:0])
	if len(e.touchIDs) > 0 {
		x, y = ebiten.TouchPosition(e.touchIDs[0])
		return x, y, true
	}
	return 0, 0, false
}
