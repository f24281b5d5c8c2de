/*
Package ansigif converts animated images into replayable truecolor ANSI art.

A document starts by hiding the cursor and printing a one line banner. Every
frame follows, prefixed with a cursor-home code, so that printing the whole
document to a terminal draws each frame over the last one. The document ends
by resetting the style and clearing the rest of the screen. Loop it with:

	while [ true ]; do cat out.txt; done
*/
package ansigif

import (
	"bytes"
	"image"
	"io"
	"strings"
	"sync"

	"github.com/nfnt/resize"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// DefaultBanner is the attribution line printed above the animation.
const DefaultBanner = "ANSI art made with ansigif (available on GitHub at https://github.com/kevin-cantwell/ansigif)"

var ErrInvalidBanner = errors.New("invalid banner")

type Option func(enc *Encoder)

// WithPalette sets the brightness to glyph mapping. Nil means DefaultPalette.
func WithPalette(p *Palette) Option {
	return func(enc *Encoder) {
		enc.palette = p
	}
}

// WithSize resizes every frame. A zero dimension keeps each frame's own.
func WithSize(width, height int) Option {
	return func(enc *Encoder) {
		enc.width = width
		enc.height = height
	}
}

// WithFilter sets the resize kernel. Defaults to resize.Bicubic.
func WithFilter(f resize.InterpolationFunction) Option {
	return func(enc *Encoder) {
		enc.filter = f
	}
}

func WithAdjustments(a Adjustments) Option {
	return func(enc *Encoder) {
		enc.adjust = a
	}
}

// WithBanner replaces DefaultBanner. The banner must fit on one line.
func WithBanner(banner string) Option {
	return func(enc *Encoder) {
		enc.banner = banner
	}
}

// WithEcho draws every frame on an xterm writing to w as soon as the frame
// is rendered. Echoing renders frames one at a time regardless of
// WithWorkers.
func WithEcho(w io.Writer) Option {
	return WithTerminal(&Xterm{Writer: w})
}

// WithTerminal is like WithEcho for any Terminal.
func WithTerminal(t Terminal) Option {
	return func(enc *Encoder) {
		enc.echo = t
	}
}

// WithProgress reports conversion progress to p.
func WithProgress(p *Progress) Option {
	return func(enc *Encoder) {
		enc.progress = p
	}
}

// WithWorkers renders up to n frames concurrently.
func WithWorkers(n int) Option {
	return func(enc *Encoder) {
		enc.workers = n
	}
}

type Encoder struct {
	palette  *Palette
	width    int // 0 keeps the frame's width
	height   int // 0 keeps the frame's height
	filter   resize.InterpolationFunction
	adjust   Adjustments
	banner   string
	echo     Terminal // Live output, never part of the document
	progress *Progress
	workers  int
}

func NewEncoder(opts ...Option) *Encoder {
	enc := Encoder{
		palette: DefaultPalette,
		filter:  resize.Bicubic,
		banner:  DefaultBanner,
		workers: 1,
	}
	for _, opt := range opts {
		opt(&enc)
	}
	if enc.palette == nil {
		enc.palette = DefaultPalette
	}
	return &enc
}

// Encode writes the document for frames with the default options.
func Encode(w io.Writer, frames []image.Image) error {
	return NewEncoder().Encode(w, frames)
}

// Encode builds the whole document before writing it to w in one call, so
// nothing is written when any frame fails.
func (enc *Encoder) Encode(w io.Writer, frames []image.Image) error {
	doc, err := enc.Document(frames)
	if err != nil {
		return err
	}
	_, err = w.Write(doc)
	return err
}

// Document resizes and renders every frame and joins them, in order, into
// a replayable document.
func (enc *Encoder) Document(frames []image.Image) ([]byte, error) {
	if enc.width < 0 || enc.height < 0 {
		return nil, errors.Wrapf(ErrInvalidSize, "%dx%d", enc.width, enc.height)
	}
	if strings.ContainsAny(enc.banner, "\r\n") {
		return nil, errors.Wrapf(ErrInvalidBanner, "%q spans more than one line", enc.banner)
	}

	var rendered []string
	var err error
	if enc.workers > 1 && enc.echo == nil {
		rendered, err = enc.renderConcurrently(frames)
	} else {
		rendered, err = enc.renderInOrder(frames)
	}
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.WriteString(HideCursor)
	buf.WriteString(enc.banner)
	buf.WriteByte('\n')
	for _, text := range rendered {
		buf.WriteString(ResetCursor)
		buf.WriteString(text)
	}
	buf.WriteString(ResetDisplay)
	return buf.Bytes(), nil
}

func (enc *Encoder) renderInOrder(frames []image.Image) ([]string, error) {
	rendered := make([]string, len(frames))
	for i, frame := range frames {
		text, err := enc.render(i, frame)
		if err != nil {
			return nil, err
		}
		rendered[i] = text
		if enc.echo != nil {
			// Echo is advisory, a broken terminal does not spoil the document.
			enc.echo.Draw(text)
		}
		enc.report(i, len(frames))
	}
	return rendered, nil
}

func (enc *Encoder) renderConcurrently(frames []image.Image) ([]string, error) {
	rendered := make([]string, len(frames))

	var (
		g    errgroup.Group
		mu   sync.Mutex
		done int
	)
	g.SetLimit(enc.workers)
	for i, frame := range frames {
		g.Go(func() error {
			text, err := enc.render(i, frame)
			if err != nil {
				return err
			}
			rendered[i] = text
			mu.Lock()
			enc.report(done, len(frames))
			done++
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return rendered, nil
}

func (enc *Encoder) render(i int, frame image.Image) (string, error) {
	img, err := Resize(frame, enc.width, enc.height, enc.filter)
	if err != nil {
		return "", errors.Wrapf(err, "frame %d", i)
	}
	text, err := RenderFrame(enc.adjust.Apply(img), enc.palette)
	if err != nil {
		return "", errors.Wrapf(err, "frame %d", i)
	}
	return text, nil
}

func (enc *Encoder) report(index, total int) {
	if enc.progress != nil {
		enc.progress.Update(index, total)
	}
}
