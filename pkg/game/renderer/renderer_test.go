package renderer

import (
	"testing"

	"github.com/leonelquinteros/gotext"
	"github.com/stretchr/testify/assert"

	"growmaze/pkg/engine/world"
	"growmaze/pkg/game/state"
)

func TestFitGrid(t *testing.T) {
	tests := []struct {
		name          string
		width, height float64
		cols, rows    int
		want          Layout
	}{
		// Portrait viewport: width constrains, one spare column
		{"portrait", 600, 1000, 5, 5, Layout{CellSize: 100, MarginX: 50, MarginY: 250}},
		// Landscape viewport: height constrains, one spare row
		{"landscape", 1000, 600, 5, 5, Layout{CellSize: 100, MarginX: 250, MarginY: 50}},
		// Equal aspect ratios fall through to the height rule
		{"same aspect", 700, 700, 6, 6, Layout{CellSize: 100, MarginX: 50, MarginY: 50}},
		// 5:4 viewport vs 7:5 grid; integer division would call these equal (1 == 1)
		{"close ratios", 500, 400, 7, 5, Layout{CellSize: 62.5, MarginX: 31.25, MarginY: 43.75}},
		{"empty viewport", 0, 400, 5, 5, Layout{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FitGrid(tt.width, tt.height, tt.cols, tt.rows)
			assert.InDelta(t, tt.want.CellSize, got.CellSize, 1e-9)
			assert.InDelta(t, tt.want.MarginX, got.MarginX, 1e-9)
			assert.InDelta(t, tt.want.MarginY, got.MarginY, 1e-9)
		})
	}
}

func TestLayout_CellGeometry(t *testing.T) {
	l := Layout{CellSize: 20, MarginX: 10, MarginY: 5}

	x, y := l.CellOrigin(world.Pos{Col: 2, Row: 1})
	assert.Equal(t, 50.0, x)
	assert.Equal(t, 25.0, y)

	x, y = l.CellCenter(world.Pos{Col: 0, Row: 0})
	assert.Equal(t, 20.0, x)
	assert.Equal(t, 15.0, y)
}

func TestLayout_Shift(t *testing.T) {
	l := Layout{CellSize: 20, MarginX: 10, MarginY: 5}.Shift(3, 16)
	assert.Equal(t, Layout{CellSize: 20, MarginX: 13, MarginY: 21}, l)

	x, y := l.CellOrigin(world.Pos{})
	assert.Equal(t, 13.0, x)
	assert.Equal(t, 21.0, y)
}

func TestStatusLine(t *testing.T) {
	line := StatusLine(state.Snapshot{Cols: 7, Rows: 7, Level: 3, Moves: 12})
	assert.Equal(t, "Level 3   Maze 7x7   Moves 12", line)
}

func TestHelpLine(t *testing.T) {
	help := HelpLine()
	assert.Contains(t, help, "Move Up: arrow_up/k/w")
	assert.Contains(t, help, "Quit: ctrl_c/escape/q")
	assert.NotContains(t, help, "drag_")
}

func TestStatusAndHelp_Translated(t *testing.T) {
	gotext.Configure("../../../locales", "pt_BR", "default")
	t.Cleanup(func() { gotext.Configure("", "en", "default") })

	assert.Equal(t, "Nível 2   Labirinto 6x6   Movimentos 4", StatusLine(state.Snapshot{Cols: 6, Rows: 6, Level: 2, Moves: 4}))
	assert.Contains(t, HelpLine(), "Sair: ctrl_c/escape/q")
}
