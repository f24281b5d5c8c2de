package ansigif

import (
	"io"
	"os"
	"strconv"

	"golang.org/x/term"
)

const (
	esc = "\x1b"
	csi = esc + "["
)

// Control sequences used to frame a document and drive a live terminal.
const (
	HideCursor   = csi + "?25l"
	ShowCursor   = csi + "?12l" + csi + "?25h"
	ResetCursor  = csi + "1;1H" // Row 1, column 1
	ResetStyle   = csi + "0m"
	ResetDisplay = ResetStyle + csi + "0J" // Reset styling, clear to end of screen
)

// CursorColumn moves the cursor to column n of the current line.
func CursorColumn(n int) string {
	return csi + strconv.Itoa(n) + "G"
}

// Background sets the 24-bit background color.
func Background(r, g, b uint8) string {
	return string(appendColor(nil, "48", r, g, b))
}

// Foreground sets the 24-bit foreground color.
func Foreground(r, g, b uint8) string {
	return string(appendColor(nil, "38", r, g, b))
}

func appendColor(buf []byte, target string, r, g, b uint8) []byte {
	buf = append(buf, csi...)
	buf = append(buf, target...)
	buf = append(buf, ";2;"...)
	buf = strconv.AppendUint(buf, uint64(r), 10)
	buf = append(buf, ';')
	buf = strconv.AppendUint(buf, uint64(g), 10)
	buf = append(buf, ';')
	buf = strconv.AppendUint(buf, uint64(b), 10)
	return append(buf, 'm')
}

// Terminal is a live display that frames can be echoed to while converting.
type Terminal interface {
	ResetCursor() error
	ShowCursor(show bool) error
	Draw(frame string) error
}

type Xterm struct {
	Writer io.Writer
}

// Move the cursor to the top left corner
func (t *Xterm) ResetCursor() error {
	_, err := io.WriteString(t.Writer, ResetCursor)
	return err
}

// Draw homes the cursor and writes frame over whatever was drawn before.
func (t *Xterm) Draw(frame string) error {
	if err := t.ResetCursor(); err != nil {
		return err
	}
	_, err := io.WriteString(t.Writer, frame)
	return err
}

func (t *Xterm) ShowCursor(show bool) error {
	code := HideCursor
	if show {
		code = ShowCursor
	}
	_, err := io.WriteString(t.Writer, code)
	return err
}

// IsTerminal reports whether w is a file attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
