//go:build !(aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris)

package ansigif

import (
	"os"

	"github.com/pkg/errors"
	"golang.org/x/term"
)

// TerminalSize returns the columns and lines of the terminal f is attached to.
func TerminalSize(f *os.File) (cols, lines int, err error) {
	cols, lines, err = term.GetSize(int(f.Fd()))
	if err != nil {
		return -1, -1, errors.Wrap(err, "terminal size")
	}
	return cols, lines, nil
}
