package ansigif

import (
	"image"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"
	"github.com/pkg/errors"
)

var ErrInvalidSize = errors.New("invalid size")

var filters = map[string]resize.InterpolationFunction{
	"nearest":  resize.NearestNeighbor,
	"bilinear": resize.Bilinear,
	"bicubic":  resize.Bicubic,
	"mitchell": resize.MitchellNetravali,
	"lanczos2": resize.Lanczos2,
	"lanczos3": resize.Lanczos3,
}

// ParseFilter returns the resize kernel called name. One of nearest,
// bilinear, bicubic, mitchell, lanczos2 or lanczos3.
func ParseFilter(name string) (resize.InterpolationFunction, error) {
	f, ok := filters[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, errors.Errorf("unknown resize filter %q", name)
	}
	return f, nil
}

// Resize scales img to width x height. A zero dimension keeps the image's
// own. Resizing to the image's current size returns img itself.
func Resize(img image.Image, width, height int, filter resize.InterpolationFunction) (image.Image, error) {
	if width < 0 || height < 0 {
		return nil, errors.Wrapf(ErrInvalidSize, "%dx%d", width, height)
	}
	bounds := img.Bounds()
	if width == 0 {
		width = bounds.Dx()
	}
	if height == 0 {
		height = bounds.Dy()
	}
	if width == bounds.Dx() && height == bounds.Dy() {
		return img, nil
	}
	if bounds.Empty() || width == 0 || height == 0 {
		return nil, errors.Wrapf(ErrInvalidSize, "cannot resize %dx%d frame to %dx%d", bounds.Dx(), bounds.Dy(), width, height)
	}
	return resize.Resize(uint(width), uint(height), img, filter), nil
}

/*
Fit returns the largest size no bigger than the image that fits in cols
columns and lines lines while keeping its aspect ratio. Each pixel occupies
one cell. Images are never scaled up.
*/
func Fit(bounds image.Rectangle, cols, lines int) (width, height int) {
	dx, dy := bounds.Dx(), bounds.Dy()
	if dx == 0 || dy == 0 || cols <= 0 || lines <= 0 {
		return dx, dy
	}
	scalarX, scalarY := float64(cols)/float64(dx), float64(lines)/float64(dy)
	scalar := scalarX
	if scalarY < scalar {
		scalar = scalarY
	}
	if scalar >= 1.0 {
		return dx, dy
	}
	width, height = int(float64(dx)*scalar), int(float64(dy)*scalar)
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return width, height
}

// Adjustments are optional color corrections applied after resizing. The
// zero value leaves frames untouched.
type Adjustments struct {
	Gamma           float64 // 1.0 (or 0) gives the original image
	Brightness      float64 // Percentage, -100 to 100
	Contrast        float64 // Percentage, -100 to 100
	Sharpen         float64 // Sigma, 0 disables
	SigmoidMidpoint float64 // 0 to 1, 0 means 0.5
	SigmoidFactor   float64 // 0 disables
	Invert          bool
}

func (a Adjustments) IsZero() bool {
	// The midpoint means nothing without a factor.
	return (a.Gamma == 0 || a.Gamma == 1) &&
		a.Brightness == 0 &&
		a.Contrast == 0 &&
		a.Sharpen <= 0 &&
		a.SigmoidFactor == 0 &&
		!a.Invert
}

// Apply runs the adjustments over img in a fixed order: gamma, brightness,
// sharpen, contrast, sigmoid, invert.
func (a Adjustments) Apply(img image.Image) image.Image {
	if a.IsZero() {
		return img
	}
	if a.Gamma != 0 && a.Gamma != 1 {
		img = imaging.AdjustGamma(img, a.Gamma)
	}
	if a.Brightness != 0 {
		img = imaging.AdjustBrightness(img, a.Brightness)
	}
	if a.Sharpen > 0 {
		img = imaging.Sharpen(img, a.Sharpen)
	}
	if a.Contrast != 0 {
		img = imaging.AdjustContrast(img, a.Contrast)
	}
	if a.SigmoidFactor != 0 {
		midpoint := a.SigmoidMidpoint
		if midpoint == 0 {
			midpoint = 0.5
		}
		img = imaging.AdjustSigmoid(img, midpoint, a.SigmoidFactor)
	}
	if a.Invert {
		img = imaging.Invert(img)
	}
	return img
}
