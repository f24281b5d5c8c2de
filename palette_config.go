package ansigif

import (
	"io"
	"io/ioutil"
	"os"
	"unicode/utf8"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

/*
LoadPalette reads a YAML palette definition. Bands may be listed in any
order; they are sorted and validated by NewPalette. Eg:

	bands:
	  - threshold: 64
	    glyph: "█"
	  - threshold: 128
	    glyph: "▓"
	  - threshold: 256
	    glyph: "░"
*/
func LoadPalette(r io.Reader) (*Palette, error) {
	data, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "read palette")
	}
	var cfg struct {
		Bands []struct {
			Threshold *float64 `yaml:"threshold"`
			Glyph     string   `yaml:"glyph"`
		} `yaml:"bands"`
	}
	if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
		return nil, errors.Wrapf(ErrInvalidPalette, "parse: %v", err)
	}
	bands := make([]Band, 0, len(cfg.Bands))
	for i, b := range cfg.Bands {
		if b.Threshold == nil {
			return nil, errors.Wrapf(ErrInvalidPalette, "band %d has no threshold", i)
		}
		if utf8.RuneCountInString(b.Glyph) != 1 {
			return nil, errors.Wrapf(ErrInvalidPalette, "band %d glyph %q must be one character", i, b.Glyph)
		}
		g, _ := utf8.DecodeRuneInString(b.Glyph)
		bands = append(bands, Band{Threshold: *b.Threshold, Glyph: g})
	}
	return NewPalette(bands...)
}

// LoadPaletteFile reads a YAML palette definition from path.
func LoadPaletteFile(path string) (*Palette, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open palette")
	}
	defer f.Close()
	return LoadPalette(f)
}
