package terminal

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSize_FallsBackForNonTerminal(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "not-a-tty"))
	require.NoError(t, err)
	defer f.Close()

	w, h := GetSize(f)
	assert.Equal(t, DefaultWidth, w)
	assert.Equal(t, DefaultHeight, h)
}

func TestEscapeSequences(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, Clear(&buf))
	require.NoError(t, HideCursor(&buf))
	require.NoError(t, ShowCursor(&buf))

	assert.Equal(t, "\x1b[2J\x1b[H\x1b[?25l\x1b[?25h", buf.String())
}
