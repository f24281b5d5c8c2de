package ansigif

import (
	"image"
	"image/color"
	"strings"

	"github.com/pkg/errors"
)

// rgb drops the alpha channel of c without premultiplying.
func rgb(c color.Color) (r, g, b uint8) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return n.R, n.G, n.B
}

/*
RenderPixel encodes a single pixel as a background color, a foreground color
and a glyph. Both colors are the pixel's own color; the glyph's fill is what
carries the shading. For example a pure red pixel becomes:

	ESC[48;2;255;0;0m ESC[38;2;255;0;0m █
*/
func RenderPixel(c color.Color, p *Palette) (string, error) {
	if p == nil {
		p = DefaultPalette
	}
	buf, err := appendPixel(nil, c, p)
	if err != nil {
		return "", err
	}
	return string(buf), nil
}

func appendPixel(buf []byte, c color.Color, p *Palette) ([]byte, error) {
	r, g, b := rgb(c)
	glyph, err := p.Glyph(Brightness(r, g, b))
	if err != nil {
		return buf, err
	}
	buf = appendColor(buf, "48", r, g, b)
	buf = appendColor(buf, "38", r, g, b)
	return append(buf, string(glyph)...), nil
}

/*
RenderFrame encodes every pixel of img, left-right and top-bottom. Each row
ends with a style reset, so the last color does not bleed past the image, and
a line feed.
*/
func RenderFrame(img image.Image, p *Palette) (string, error) {
	if p == nil {
		p = DefaultPalette
	}

	var (
		sb  strings.Builder
		buf []byte
		err error
	)

	// An image's bounds do not necessarily start at (0, 0), so the two loops start
	// at bounds.Min.Y and bounds.Min.X.
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		buf = buf[:0]
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if buf, err = appendPixel(buf, img.At(x, y), p); err != nil {
				return "", errors.Wrapf(err, "pixel (%d,%d)", x, y)
			}
		}
		sb.Write(buf)
		sb.WriteString(ResetStyle)
		sb.WriteByte('\n')
	}
	return sb.String(), nil
}
