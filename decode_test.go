package ansigif_test

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"image/png"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/kevin-cantwell/ansigif"
	"github.com/llgcode/draw2d/draw2dimg"
	"github.com/llgcode/draw2d/draw2dkit"
	"github.com/pkg/errors"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var (
	red         = color.RGBA{R: 255, A: 255}
	blue        = color.RGBA{B: 255, A: 255}
	gifPalette  = color.Palette{color.Black, color.White, red, blue, color.Transparent}
	transparent = uint8(4)
)

// paletted draws a rectangle filling bounds with draw2d and quantizes it.
func paletted(bounds image.Rectangle, c color.Color) *image.Paletted {
	rgba := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	gc := draw2dimg.NewGraphicContext(rgba)
	gc.SetFillColor(c)
	draw2dkit.Rectangle(gc, 0, 0, float64(bounds.Dx()), float64(bounds.Dy()))
	gc.Fill()

	img := image.NewPaletted(bounds, gifPalette)
	draw.Draw(img, bounds, rgba, image.Point{}, draw.Src)
	return img
}

func nrgba(img image.Image, x, y int) color.NRGBA {
	return color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
}

func encodeGIF(giff *gif.GIF) []byte {
	var buf bytes.Buffer
	Expect(gif.EncodeAll(&buf, giff)).To(Succeed())
	return buf.Bytes()
}

var _ = Describe("Decode", func() {
	It("decodes every frame of a gif in order", func() {
		giff := &gif.GIF{
			Image: []*image.Paletted{
				paletted(image.Rect(0, 0, 4, 4), red),
				paletted(image.Rect(0, 0, 4, 4), blue),
				paletted(image.Rect(0, 0, 4, 4), color.White),
			},
			Delay: []int{10, 10, 10},
		}
		frames, err := ansigif.Decode(bytes.NewReader(encodeGIF(giff)))
		Expect(err).NotTo(HaveOccurred())
		Expect(frames).To(HaveLen(3))
		Expect(nrgba(frames[0], 2, 2)).To(Equal(color.NRGBA{R: 255, A: 255}))
		Expect(nrgba(frames[1], 2, 2)).To(Equal(color.NRGBA{B: 255, A: 255}))
		Expect(nrgba(frames[2], 2, 2)).To(Equal(color.NRGBA{R: 255, G: 255, B: 255, A: 255}))
	})

	It("decodes still images as one frame", func() {
		var buf bytes.Buffer
		Expect(png.Encode(&buf, solid(3, 2, red))).To(Succeed())
		frames, err := ansigif.Decode(&buf)
		Expect(err).NotTo(HaveOccurred())
		Expect(frames).To(HaveLen(1))
		Expect(frames[0].Bounds().Size()).To(Equal(image.Pt(3, 2)))
	})

	It("fails on data that is not an image", func() {
		_, err := ansigif.Decode(bytes.NewReader([]byte("not an image")))
		Expect(errors.Cause(err)).To(Equal(ansigif.ErrDecode))
	})

	It("fails on a truncated gif", func() {
		data := encodeGIF(&gif.GIF{
			Image: []*image.Paletted{paletted(image.Rect(0, 0, 4, 4), red)},
			Delay: []int{0},
		})
		_, err := ansigif.Decode(bytes.NewReader(data[:len(data)/2]))
		Expect(errors.Cause(err)).To(Equal(ansigif.ErrDecode))
	})

	It("fails on missing files", func() {
		_, err := ansigif.DecodeFile(filepath.Join(os.TempDir(), "ansigif-missing.gif"))
		Expect(errors.Cause(err)).To(Equal(ansigif.ErrDecode))
	})

	It("decodes files", func() {
		dir, err := ioutil.TempDir("", "ansigif")
		Expect(err).NotTo(HaveOccurred())
		defer os.RemoveAll(dir)

		path := filepath.Join(dir, "in.gif")
		data := encodeGIF(&gif.GIF{
			Image: []*image.Paletted{paletted(image.Rect(0, 0, 2, 2), red), paletted(image.Rect(0, 0, 2, 2), blue)},
			Delay: []int{0, 0},
		})
		Expect(ioutil.WriteFile(path, data, 0644)).To(Succeed())

		frames, err := ansigif.DecodeFile(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(frames).To(HaveLen(2))
	})
})

var _ = Describe("Frames", func() {
	// A 4x1 screen with a 2x1 red frame on the left followed by a 1x1 blue
	// frame in the last column.
	var giff *gif.GIF

	BeforeEach(func() {
		giff = &gif.GIF{
			Image: []*image.Paletted{
				paletted(image.Rect(0, 0, 2, 1), red),
				paletted(image.Rect(3, 0, 4, 1), blue),
			},
			Delay:    []int{0, 0},
			Disposal: []byte{gif.DisposalNone, gif.DisposalNone},
			Config:   image.Config{Width: 4, Height: 1},
		}
	})

	It("composites partial frames onto the full screen", func() {
		frames := ansigif.Frames(giff)
		Expect(frames).To(HaveLen(2))
		for _, frame := range frames {
			Expect(frame.Bounds()).To(Equal(image.Rect(0, 0, 4, 1)))
		}
		Expect(nrgba(frames[1], 0, 0)).To(Equal(color.NRGBA{R: 255, A: 255}))
		Expect(nrgba(frames[1], 3, 0)).To(Equal(color.NRGBA{B: 255, A: 255}))
		Expect(nrgba(frames[1], 2, 0).A).To(BeZero())
	})

	It("keeps frames independent of each other", func() {
		frames := ansigif.Frames(giff)
		Expect(nrgba(frames[0], 3, 0).A).To(BeZero())
	})

	It("clears the frame area on background disposal", func() {
		giff.Disposal[0] = gif.DisposalBackground
		frames := ansigif.Frames(giff)
		Expect(nrgba(frames[0], 0, 0)).To(Equal(color.NRGBA{R: 255, A: 255}))
		Expect(nrgba(frames[1], 0, 0).A).To(BeZero())
	})

	It("restores the previous screen on previous disposal", func() {
		giff.Image = append(giff.Image, paletted(image.Rect(1, 0, 2, 1), color.White))
		giff.Delay = append(giff.Delay, 0)
		giff.Disposal = []byte{gif.DisposalNone, gif.DisposalPrevious, gif.DisposalNone}
		frames := ansigif.Frames(giff)
		Expect(frames).To(HaveLen(3))
		Expect(nrgba(frames[1], 3, 0)).To(Equal(color.NRGBA{B: 255, A: 255}))
		Expect(nrgba(frames[2], 3, 0).A).To(BeZero())
		Expect(nrgba(frames[2], 1, 0)).To(Equal(color.NRGBA{R: 255, G: 255, B: 255, A: 255}))
	})

	It("lets transparent pixels show what is underneath", func() {
		empty := image.NewPaletted(image.Rect(0, 0, 4, 1), gifPalette)
		for i := range empty.Pix {
			empty.Pix[i] = transparent
		}
		giff.Image[1] = empty
		frames := ansigif.Frames(giff)
		Expect(nrgba(frames[1], 0, 0)).To(Equal(color.NRGBA{R: 255, A: 255}))
	})

	It("reads transparent pixels as black", func() {
		text, err := ansigif.RenderFrame(ansigif.Frames(giff)[0], nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(text).To(ContainSubstring(ansigif.Background(0, 0, 0)))
	})
})
