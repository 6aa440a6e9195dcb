package tui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gookit/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"growmaze/pkg/engine/world"
	"growmaze/pkg/game/state"
)

// corridor is a 2x1 maze with the wall between its two cells removed.
func corridor() state.Snapshot {
	return state.Snapshot{
		Cols: 2,
		Rows: 1,
		Walls: []world.Walls{
			{Top: true, Bottom: true, Left: true},
			{Top: true, Bottom: true, Right: true},
		},
		Player: world.Pos{Col: 0, Row: 0},
		Exit:   world.Pos{Col: 1, Row: 0},
		Level:  1,
	}
}

func newRenderer(t *testing.T, out *bytes.Buffer) *TUIRenderer {
	t.Helper()
	r := New(nil, out)
	require.NoError(t, r.Init())
	return r
}

func plain(lines []string) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = color.ClearCode(l)
	}
	return out
}

func TestMazeLines_Corridor(t *testing.T) {
	r := newRenderer(t, &bytes.Buffer{})

	assert.Equal(t, []string{
		"+---+---+",
		"| @   ⌂ |",
		"+---+---+",
	}, plain(r.MazeLines(corridor())))
}

func TestMazeLines_FullyWalledCells(t *testing.T) {
	r := newRenderer(t, &bytes.Buffer{})
	snap := state.Snapshot{
		Cols:   1,
		Rows:   2,
		Walls:  []world.Walls{world.AllWalls(), world.AllWalls()},
		Player: world.Pos{Col: 0, Row: 0},
		Exit:   world.Pos{Col: 0, Row: 1},
	}

	assert.Equal(t, []string{
		"+---+",
		"| @ |",
		"+---+",
		"| ⌂ |",
		"+---+",
	}, plain(r.MazeLines(snap)))
}

func TestMazeLines_OpenVerticalPassage(t *testing.T) {
	r := newRenderer(t, &bytes.Buffer{})
	snap := state.Snapshot{
		Cols: 1,
		Rows: 2,
		Walls: []world.Walls{
			{Top: true, Left: true, Right: true},
			{Bottom: true, Left: true, Right: true},
		},
		Player: world.Pos{Col: 0, Row: 1},
		Exit:   world.Pos{Col: 0, Row: 1},
	}

	lines := plain(r.MazeLines(snap))
	require.Len(t, lines, 5)
	assert.Equal(t, "+   +", lines[2])
	assert.Equal(t, "|   |", lines[1])
	// The player is drawn over the exit when they share a cell
	assert.Equal(t, "| @ |", lines[3])
}

func TestMazeSize(t *testing.T) {
	w, h := MazeSize(5, 5)
	assert.Equal(t, 21, w)
	assert.Equal(t, 11, h)

	for _, l := range plain(newRenderer(t, &bytes.Buffer{}).MazeLines(corridor())) {
		w, _ := MazeSize(2, 1)
		assert.Len(t, []rune(l), w)
	}
}

func TestFrameLines_WarnsWhenTerminalTooSmall(t *testing.T) {
	r := newRenderer(t, &bytes.Buffer{})

	small := strings.Join(plain(r.FrameLines(corridor(), 5, 5)), "\n")
	assert.Contains(t, small, "Enlarge the terminal to see the whole 2x1 maze.")

	large := strings.Join(plain(r.FrameLines(corridor(), 80, 40)), "\n")
	assert.NotContains(t, large, "Enlarge the terminal")
}

func TestFrameLines_MessagesPane(t *testing.T) {
	r := newRenderer(t, &bytes.Buffer{})

	empty := strings.Join(plain(r.FrameLines(corridor(), 40, 40)), "\n")
	assert.Contains(t, empty, " Messages ")
	assert.Contains(t, empty, "(no messages)")

	snap := corridor()
	snap.Messages = []string{"Welcome to the maze!"}
	withMsg := strings.Join(plain(r.FrameLines(snap, 40, 40)), "\n")
	assert.Contains(t, withMsg, "  Welcome to the maze!")
	assert.NotContains(t, withMsg, "(no messages)")
}

func TestFrameLines_StatusAndHelp(t *testing.T) {
	r := newRenderer(t, &bytes.Buffer{})

	lines := plain(r.FrameLines(corridor(), 80, 40))
	assert.Equal(t, "Level 1   Maze 2x1   Moves 0", lines[0])
	assert.Contains(t, lines[len(lines)-1], "Quit:")
}

func TestRenderFrame_ClearsThenWritesRawModeLines(t *testing.T) {
	var out bytes.Buffer
	r := newRenderer(t, &out)

	require.NoError(t, r.RenderFrame(corridor(), 80, 40))

	got := out.String()
	assert.True(t, strings.HasPrefix(got, "\x1b[2J\x1b[H"))
	assert.Contains(t, color.ClearCode(got), "+---+---+\r\n| @   ⌂ |\r\n")
	assert.True(t, strings.HasSuffix(got, "\r\n"))
}

func TestName(t *testing.T) {
	assert.Equal(t, "tui", New(nil, nil).Name())
}
