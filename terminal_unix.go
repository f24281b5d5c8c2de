//go:build aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris

package ansigif

import (
	"os"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// TerminalSize returns the columns and lines of the terminal f is attached to.
func TerminalSize(f *os.File) (cols, lines int, err error) {
	ws, err := unix.IoctlGetWinsize(int(f.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return -1, -1, errors.Wrap(err, "terminal size")
	}
	return int(ws.Col), int(ws.Row), nil
}
