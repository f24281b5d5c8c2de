package ansigif

import (
	"io"
	"math"
	"strings"
)

// DefaultBarLength is the number of cells in a progress bar.
const DefaultBarLength = 10

// Progress draws a bar such as [█████     ] in place on a live terminal. It is
// never part of a document.
type Progress struct {
	w      io.Writer
	length int
	filled int
}

func NewProgress(w io.Writer, length int) *Progress {
	if length <= 0 {
		length = DefaultBarLength
	}
	return &Progress{
		w:      w,
		length: length,
	}
}

// Filled returns how many cells are filled when index of total frames are done.
func (p *Progress) Filled(index, total int) int {
	if total <= 0 {
		return 0
	}
	filled := int(math.Floor(float64(p.length)*float64(index)/float64(total) + 0.5))
	if filled < 0 {
		return 0
	}
	if filled > p.length {
		return p.length
	}
	return filled
}

// Update redraws the bar, but only if the number of filled cells changed
// since the last call.
func (p *Progress) Update(index, total int) error {
	filled := p.Filled(index, total)
	if filled == p.filled {
		return nil
	}
	p.filled = filled
	_, err := io.WriteString(p.w, CursorColumn(1)+p.Bar())
	return err
}

// Bar renders the current state, eg: [███       ]
func (p *Progress) Bar() string {
	return "[" + strings.Repeat("█", p.filled) + strings.Repeat(" ", p.length-p.filled) + "]"
}

// Finish moves the terminal past the bar.
func (p *Progress) Finish() error {
	_, err := io.WriteString(p.w, "\n")
	return err
}
