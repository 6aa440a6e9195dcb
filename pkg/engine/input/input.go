package input

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"golang.org/x/term"
)

// KeyReader decodes single key presses from a raw-mode terminal stream.
type KeyReader struct {
	r *bufio.Reader
}

// NewKeyReader creates a KeyReader over r (usually os.Stdin in raw mode)
func NewKeyReader(r io.Reader) *KeyReader {
	return &KeyReader{r: bufio.NewReader(r)}
}

// ReadKey blocks until a key is pressed and returns its code: "arrow_up",
// "arrow_down", "arrow_left", "arrow_right", "f8", "escape", "ctrl_c", "enter"
// or the lower-cased printable character. Unknown sequences return "".
func (k *KeyReader) ReadKey() (string, error) {
	b, err := k.r.ReadByte()
	if err != nil {
		return "", err
	}

	switch {
	case b == 0x1b:
		return k.readEscape()
	case b == 3:
		return "ctrl_c", nil
	case b == '\r' || b == '\n':
		return "enter", nil
	case b >= 32 && b < 127:
		return strings.ToLower(string(b)), nil
	}
	return "", nil
}

// ReadRaw reads one key and wraps it as a terminal RawInput
func (k *KeyReader) ReadRaw() (RawInput, error) {
	code, err := k.ReadKey()
	if err != nil {
		return RawInput{}, err
	}
	return RawInput{Device: DeviceTerminal, Code: code, Timestamp: time.Now()}, nil
}

// readEscape decodes the rest of an escape sequence.
// Handles both CSI sequences (ESC [) and SS3 sequences (ESC O).
func (k *KeyReader) readEscape() (string, error) {
	b2, err := k.r.ReadByte()
	if err != nil {
		if err == io.EOF {
			return "escape", nil
		}
		return "", err
	}

	if b2 != '[' && b2 != 'O' {
		// Not an arrow sequence; leave the byte for the next read
		if err := k.r.UnreadByte(); err != nil {
			return "", err
		}
		return "escape", nil
	}

	b3, err := k.r.ReadByte()
	if err != nil {
		return "", err
	}

	// Function keys: ESC [ <number> ~
	if b2 == '[' && b3 >= '0' && b3 <= '9' {
		return k.readTilde(b3)
	}

	switch b3 {
	case 'A':
		return "arrow_up", nil
	case 'B':
		return "arrow_down", nil
	case 'C':
		return "arrow_right", nil
	case 'D':
		return "arrow_left", nil
	}
	// Unknown escape sequence - discard it
	return "", nil
}

// functionKeys maps the number of an ESC [ <number> ~ sequence to a key code
var functionKeys = map[string]string{
	"19": "f8",
}

// readTilde reads the digits of a function key sequence up to the closing '~'
func (k *KeyReader) readTilde(first byte) (string, error) {
	num := []byte{first}
	for {
		b, err := k.r.ReadByte()
		if err != nil {
			return "", err
		}
		if b == '~' {
			return functionKeys[string(num)], nil
		}
		if b < '0' || b > '9' {
			// Unknown escape sequence - discard it
			return "", nil
		}
		num = append(num, b)
	}
}

// EnterRawMode puts the terminal attached to f into raw mode so single key
// presses arrive without Enter. The returned function restores the old state.
func EnterRawMode(f *os.File) (restore func() error, err error) {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return nil, fmt.Errorf("input: %s is not a terminal", f.Name())
	}

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("input: cannot set terminal to raw mode: %w", err)
	}

	return func() error {
		return term.Restore(fd, oldState)
	}, nil
}
