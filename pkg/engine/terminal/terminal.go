// Package terminal wraps the few terminal queries the text renderer needs.
package terminal

import (
	"io"
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

const (
	clearScreen = "\x1b[2J"
	cursorHome  = "\x1b[H"
	hideCursor  = "\x1b[?25l"
	showCursor  = "\x1b[?25h"
)

// GetSize returns the width and height of the terminal attached to f.
// Falls back to defaults if the size cannot be determined.
func GetSize(f *os.File) (width, height int) {
	width, height, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 || height <= 0 {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// Clear clears the screen and moves the cursor to the top-left corner
func Clear(w io.Writer) error {
	_, err := io.WriteString(w, clearScreen+cursorHome)
	return err
}

// HideCursor hides the text cursor while the maze is on screen
func HideCursor(w io.Writer) error {
	_, err := io.WriteString(w, hideCursor)
	return err
}

// ShowCursor makes the text cursor visible again
func ShowCursor(w io.Writer) error {
	_, err := io.WriteString(w, showCursor)
	return err
}
