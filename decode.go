package ansigif

import (
	"bytes"
	"image"
	"image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"io/ioutil"
	"os"

	"github.com/pkg/errors"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

var ErrDecode = errors.New("cannot decode image")

var gifMagic = []byte("GIF8")

// Decode reads an image as a sequence of frames. Gifs yield one composited
// frame per image; every other format yields a single frame.
func Decode(r io.Reader) ([]image.Image, error) {
	data, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, errors.Wrapf(ErrDecode, "read: %v", err)
	}

	if bytes.HasPrefix(data, gifMagic) {
		giff, err := gif.DecodeAll(bytes.NewReader(data))
		if err != nil {
			return nil, errors.Wrapf(ErrDecode, "%v", err)
		}
		return Frames(giff), nil
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrapf(ErrDecode, "%v", err)
	}
	return []image.Image{img}, nil
}

// DecodeFile opens path and decodes it with Decode.
func DecodeFile(path string) ([]image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(ErrDecode, "%v", err)
	}
	defer f.Close()
	return Decode(f)
}
