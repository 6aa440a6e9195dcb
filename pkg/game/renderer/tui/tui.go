package tui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"growmaze/pkg/engine/input"
	"growmaze/pkg/engine/terminal"
	"growmaze/pkg/engine/world"
	"growmaze/pkg/game/renderer"
	"growmaze/pkg/game/state"
)

// Icon constants for the maze
const (
	PlayerIcon = "@"
	IconExit   = "⌂"
	IconVoid   = " "
)

// Wall pieces; every cell is three characters wide plus a shared border column
const (
	cornerPiece     = "+"
	horizontalWall  = "---"
	horizontalOpen  = "   "
	verticalWall    = "|"
	verticalOpen    = " "
	linesPerMessage = 1
)

// chromeLines is the number of lines drawn around the maze: status,
// blank, messages header, messages, footer and help.
const chromeLines = 5 + 5*linesPerMessage

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	in  *os.File
	out io.Writer

	colorWall    color.Style
	colorPlayer  color.Style
	colorExit    color.Style
	colorStatus  color.Style
	colorSubtle  color.Style
	colorWarning color.Style
}

// New creates a new TUI renderer reading keys from in and drawing to out
func New(in *os.File, out io.Writer) *TUIRenderer {
	return &TUIRenderer{in: in, out: out}
}

// Name returns the identifier used to select this renderer
func (t *TUIRenderer) Name() string {
	return "tui"
}

// Init initializes the TUI renderer colors
func (t *TUIRenderer) Init() error {
	t.colorWall = color.Style{color.FgGray}
	t.colorPlayer = color.Style{color.FgRed, color.OpBold}
	t.colorExit = color.Style{color.FgBlue, color.OpBold}
	t.colorStatus = color.Style{color.FgMagenta, color.OpBold}
	t.colorSubtle = color.Style{color.FgGray, color.OpBold}
	t.colorWarning = color.Style{color.FgYellow}
	return nil
}

// Run puts the terminal into raw mode and loops: draw a frame, read one key,
// hand its intent to handle. It returns when handle reports quit or input ends.
func (t *TUIRenderer) Run(g *state.Game, handle renderer.IntentHandler) (err error) {
	restore, err := input.EnterRawMode(t.in)
	if err != nil {
		return err
	}
	defer func() {
		if rerr := restore(); rerr != nil && err == nil {
			err = fmt.Errorf("tui: cannot restore terminal: %w", rerr)
		}
	}()

	if err := terminal.HideCursor(t.out); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	defer terminal.ShowCursor(t.out)

	keys := input.NewKeyReader(t.in)
	for {
		width, height := terminal.GetSize(t.in)
		if err := t.RenderFrame(g.Snapshot(), width, height); err != nil {
			return err
		}

		raw, err := keys.ReadRaw()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("tui: cannot read key: %w", err)
		}

		if handle(input.MapToIntent(input.NewDebouncedInput(raw))) {
			return terminal.Clear(t.out)
		}
	}
}

// RenderFrame clears the screen and draws one complete frame
func (t *TUIRenderer) RenderFrame(snap state.Snapshot, width, height int) error {
	if err := terminal.Clear(t.out); err != nil {
		return fmt.Errorf("tui: %w", err)
	}

	// Raw mode does not translate \n, so lines end with an explicit carriage return
	_, err := io.WriteString(t.out, strings.Join(t.FrameLines(snap, width, height), "\r\n")+"\r\n")
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

// FrameLines returns every line of a frame for a terminal of the given size
func (t *TUIRenderer) FrameLines(snap state.Snapshot, width, height int) []string {
	var lines []string

	lines = append(lines, t.colorStatus.Sprint(renderer.StatusLine(snap)), "")

	mazeWidth, mazeHeight := MazeSize(snap.Cols, snap.Rows)
	if mazeWidth > width || mazeHeight+chromeLines > height {
		lines = append(lines, t.colorWarning.Sprint(gotext.Get("Enlarge the terminal to see the whole %dx%d maze.", snap.Cols, snap.Rows)))
	}

	lines = append(lines, t.MazeLines(snap)...)
	lines = append(lines, t.messagesPane(snap, width)...)
	lines = append(lines, t.colorSubtle.Sprint(renderer.HelpLine()))

	return lines
}

// MazeSize returns the number of columns and lines the maze drawing occupies
func MazeSize(cols, rows int) (width, height int) {
	return cols*(len(horizontalWall)+1) + 1, rows*2 + 1
}

// MazeLines draws the maze: a border line above every row, a cell line per row
// and a closing border line below the last row.
func (t *TUIRenderer) MazeLines(snap state.Snapshot) []string {
	lines := make([]string, 0, snap.Rows*2+1)

	for row := 0; row < snap.Rows; row++ {
		var border, cells strings.Builder

		for col := 0; col < snap.Cols; col++ {
			p := world.Pos{Col: col, Row: row}
			w := snap.WallFlags(p)

			border.WriteString(t.colorWall.Sprint(cornerPiece))
			if w.Top {
				border.WriteString(t.colorWall.Sprint(horizontalWall))
			} else {
				border.WriteString(horizontalOpen)
			}

			if w.Left {
				cells.WriteString(t.colorWall.Sprint(verticalWall))
			} else {
				cells.WriteString(verticalOpen)
			}
			cells.WriteString(" " + t.renderCell(snap, p) + " ")

			if col == snap.Cols-1 {
				border.WriteString(t.colorWall.Sprint(cornerPiece))
				if w.Right {
					cells.WriteString(t.colorWall.Sprint(verticalWall))
				} else {
					cells.WriteString(verticalOpen)
				}
			}
		}

		lines = append(lines, border.String(), cells.String())
	}

	var bottom strings.Builder
	for col := 0; col < snap.Cols; col++ {
		bottom.WriteString(t.colorWall.Sprint(cornerPiece))
		if snap.WallFlags(world.Pos{Col: col, Row: snap.Rows - 1}).Bottom {
			bottom.WriteString(t.colorWall.Sprint(horizontalWall))
		} else {
			bottom.WriteString(horizontalOpen)
		}
	}
	bottom.WriteString(t.colorWall.Sprint(cornerPiece))
	lines = append(lines, bottom.String())

	return lines
}

// renderCell returns the one-character content of the cell at p
func (t *TUIRenderer) renderCell(snap state.Snapshot, p world.Pos) string {
	switch p {
	case snap.Player:
		return t.colorPlayer.Sprint(PlayerIcon)
	case snap.Exit:
		return t.colorExit.Sprint(IconExit)
	default:
		return IconVoid
	}
}

// messagesPane draws the message log between two rules spanning the terminal width
func (t *TUIRenderer) messagesPane(snap state.Snapshot, width int) []string {
	label := " " + gotext.Get("Messages") + " "
	labelLen := len([]rune(label))
	sideLen := (width - labelLen) / 2
	if sideLen < 1 {
		sideLen = 1
	}
	rightLen := width - sideLen - labelLen
	if rightLen < 1 {
		rightLen = 1
	}

	lines := []string{
		"",
		t.colorSubtle.Sprint(strings.Repeat("─", sideLen) + label + strings.Repeat("─", rightLen)),
	}

	if len(snap.Messages) == 0 {
		lines = append(lines, t.colorSubtle.Sprint("  "+gotext.Get("(no messages)")))
	} else {
		for _, msg := range snap.Messages {
			lines = append(lines, "  "+msg)
		}
	}

	return append(lines, t.colorSubtle.Sprint(strings.Repeat("─", width)))
}
