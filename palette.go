package ansigif

import (
	"math"
	"sort"
	"unicode"

	"github.com/pkg/errors"
	"golang.org/x/text/width"
)

// MaxBrightness is the brightness of a white pixel.
const MaxBrightness = 255.0

var (
	ErrInvalidPalette = errors.New("invalid palette")
	ErrNoGlyph        = errors.New("no glyph for brightness")
)

// Brightness is the perceived luma of an 8 bit color using the
// ITU-R BT.709 weights: 0.2126 R + 0.7152 G + 0.0722 B
func Brightness(r, g, b uint8) float64 {
	// Explicit conversions round each product and stop fused multiply-adds, so
	// white is 254.99999999999997 on every architecture.
	return float64(0.2126*float64(r)) + float64(0.7152*float64(g)) + float64(0.0722*float64(b))
}

// Band maps every brightness below Threshold, and at or above the previous
// band's threshold, to Glyph.
type Band struct {
	Threshold float64
	Glyph     rune
}

// Palette is an ascending list of bands. The last threshold is never below
// MaxBrightness so every 8 bit color has a glyph.
type Palette struct {
	bands []Band
}

// DefaultPalette goes from the densest block for dark pixels to the
// sparsest shade for bright ones.
var DefaultPalette = MustPalette(
	Band{Threshold: 64, Glyph: '█'},
	Band{Threshold: 128, Glyph: '▓'},
	Band{Threshold: 192, Glyph: '▒'},
	Band{Threshold: 256, Glyph: '░'},
)

// NewPalette sorts bands by threshold and validates them. A palette must have
// at least one band, unique thresholds, single cell printable glyphs, and a
// largest threshold of at least MaxBrightness.
func NewPalette(bands ...Band) (*Palette, error) {
	if len(bands) == 0 {
		return nil, errors.Wrap(ErrInvalidPalette, "no bands")
	}
	sorted := make([]Band, len(bands))
	copy(sorted, bands)
	for _, band := range sorted {
		if math.IsNaN(band.Threshold) {
			return nil, errors.Wrap(ErrInvalidPalette, "threshold is NaN")
		}
		if err := checkGlyph(band.Glyph); err != nil {
			return nil, err
		}
	}
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Threshold < sorted[j].Threshold
	})
	for i := 1; i < len(sorted); i++ {
		if sorted[i].Threshold == sorted[i-1].Threshold {
			return nil, errors.Wrapf(ErrInvalidPalette, "duplicate threshold %g", sorted[i].Threshold)
		}
	}
	if top := sorted[len(sorted)-1].Threshold; top < MaxBrightness {
		return nil, errors.Wrapf(ErrInvalidPalette, "largest threshold %g is below %g", top, MaxBrightness)
	}
	return &Palette{bands: sorted}, nil
}

// MustPalette is like NewPalette but panics on an invalid palette.
func MustPalette(bands ...Band) *Palette {
	p, err := NewPalette(bands...)
	if err != nil {
		panic(err)
	}
	return p
}

func checkGlyph(g rune) error {
	if g == unicode.ReplacementChar || !unicode.IsPrint(g) {
		return errors.Wrapf(ErrInvalidPalette, "glyph %U is not printable", g)
	}
	// Every glyph must fill exactly one terminal cell or rows lose their shape.
	switch width.LookupRune(g).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return errors.Wrapf(ErrInvalidPalette, "glyph %q is double width", g)
	}
	return nil
}

// Glyph returns the glyph of the first band whose threshold is strictly
// greater than brightness.
func (p *Palette) Glyph(brightness float64) (rune, error) {
	i := sort.Search(len(p.bands), func(i int) bool {
		return p.bands[i].Threshold > brightness
	})
	if i == len(p.bands) {
		return 0, errors.Wrapf(ErrNoGlyph, "brightness %g", brightness)
	}
	return p.bands[i].Glyph, nil
}

// Bands returns a copy of the palette's bands in ascending order.
func (p *Palette) Bands() []Band {
	bands := make([]Band, len(p.bands))
	copy(bands, p.bands)
	return bands
}
