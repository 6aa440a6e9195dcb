package ebiten

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"growmaze/pkg/engine/world"
	"growmaze/pkg/game/renderer"
	"growmaze/pkg/game/state"
)

// Draw renders the game to the screen (Ebiten interface)
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	// Fill background first
	screen.Fill(colorBackground)

	if e.game == nil || e.face == nil {
		return
	}

	// One snapshot per frame so walls, player and exit always agree
	snap := e.game.Snapshot()

	screenWidth, screenHeight := screen.Bounds().Dx(), screen.Bounds().Dy()
	layout := mazeLayout(screenWidth, screenHeight, snap.Cols, snap.Rows)
	if layout.CellSize <= 0 {
		return
	}

	e.drawFloor(screen, layout, snap)
	e.drawMarker(screen, layout, snap.Exit, colorExit)
	e.drawMarker(screen, layout, snap.Player, colorPlayer)
	e.drawWalls(screen, layout, snap)
	e.drawStatus(screen, snap, screenHeight)
}

// drawFloor fills the area covered by the maze
func (e *EbitenRenderer) drawFloor(screen *ebiten.Image, layout renderer.Layout, snap state.Snapshot) {
	vector.DrawFilledRect(screen,
		float32(layout.MarginX), float32(layout.MarginY),
		float32(layout.CellSize*float64(snap.Cols)), float32(layout.CellSize*float64(snap.Rows)),
		colorFloor, false)
}

// drawMarker fills the cell at p, inset from its edges
func (e *EbitenRenderer) drawMarker(screen *ebiten.Image, layout renderer.Layout, p world.Pos, clr color.Color) {
	x, y := layout.CellOrigin(p)
	inset := layout.CellSize * markerInsetRatio
	size := layout.CellSize - 2*inset
	vector.DrawFilledRect(screen, float32(x+inset), float32(y+inset), float32(size), float32(size), clr, false)
}

// drawWalls strokes every present wall of every cell. Shared walls are drawn
// from both sides, which is harmless as they are always symmetric.
func (e *EbitenRenderer) drawWalls(screen *ebiten.Image, layout renderer.Layout, snap state.Snapshot) {
	width := float32(layout.CellSize * wallWidthRatio)
	if width < minWallWidth {
		width = minWallWidth
	}

	for row := 0; row < snap.Rows; row++ {
		for col := 0; col < snap.Cols; col++ {
			p := world.Pos{Col: col, Row: row}
			w := snap.WallFlags(p)

			ox, oy := layout.CellOrigin(p)
			x0, y0 := float32(ox), float32(oy)
			x1, y1 := float32(ox+layout.CellSize), float32(oy+layout.CellSize)

			if w.Top {
				vector.StrokeLine(screen, x0, y0, x1, y0, width, colorWall, true)
			}
			if w.Bottom {
				vector.StrokeLine(screen, x0, y1, x1, y1, width, colorWall, true)
			}
			if w.Left {
				vector.StrokeLine(screen, x0, y0, x0, y1, width, colorWall, true)
			}
			if w.Right {
				vector.StrokeLine(screen, x1, y0, x1, y1, width, colorWall, true)
			}
		}
	}
}

// drawStatus draws the status header, the latest messages and the key help
func (e *EbitenRenderer) drawStatus(screen *ebiten.Image, snap state.Snapshot, screenHeight int) {
	e.drawText(screen, renderer.StatusLine(snap), 8, 2, colorText)

	// The footer shows the two most recent messages above the help line
	messages := snap.Messages
	if len(messages) > footerLines-1 {
		messages = messages[len(messages)-(footerLines-1):]
	}

	y := float64(screenHeight - footerLines*textLineHeight)
	for _, msg := range messages {
		e.drawText(screen, msg, 8, y, colorText)
		y += textLineHeight
	}

	e.drawText(screen, renderer.HelpLine(), 8, float64(screenHeight-textLineHeight), colorSubtle)
}

// drawText draws a single line with its top-left corner at x, y
func (e *EbitenRenderer) drawText(screen *ebiten.Image, str string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, e.face, op)
}
