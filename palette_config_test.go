package ansigif_test

import (
	"strings"

	"github.com/kevin-cantwell/ansigif"
	"github.com/pkg/errors"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("LoadPalette", func() {
	It("reads bands in any order", func() {
		p, err := ansigif.LoadPalette(strings.NewReader(`
bands:
  - threshold: 256
    glyph: " "
  - threshold: 128
    glyph: "#"
`))
		Expect(err).NotTo(HaveOccurred())
		Expect(p.Bands()).To(Equal([]ansigif.Band{
			{Threshold: 128, Glyph: '#'},
			{Threshold: 256, Glyph: ' '},
		}))
	})

	It("validates the result like NewPalette", func() {
		_, err := ansigif.LoadPalette(strings.NewReader(`
bands:
  - threshold: 128
    glyph: "#"
`))
		Expect(errors.Cause(err)).To(Equal(ansigif.ErrInvalidPalette))
	})

	It("rejects multi character glyphs", func() {
		_, err := ansigif.LoadPalette(strings.NewReader(`
bands:
  - threshold: 256
    glyph: "##"
`))
		Expect(errors.Cause(err)).To(Equal(ansigif.ErrInvalidPalette))
	})

	It("rejects bands without a threshold", func() {
		_, err := ansigif.LoadPalette(strings.NewReader(`
bands:
  - glyph: "#"
`))
		Expect(errors.Cause(err)).To(Equal(ansigif.ErrInvalidPalette))
	})

	It("rejects unknown keys", func() {
		_, err := ansigif.LoadPalette(strings.NewReader(`
bands:
  - threshold: 256
    glyph: "#"
    colour: red
`))
		Expect(errors.Cause(err)).To(Equal(ansigif.ErrInvalidPalette))
	})

	It("reports missing files", func() {
		_, err := ansigif.LoadPaletteFile("does/not/exist.yaml")
		Expect(err).To(HaveOccurred())
	})
})
