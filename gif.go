package ansigif

import (
	"image"
	"image/draw"
	"image/gif"
)

/*
Frames composites each frame of a gif onto its logical screen and returns a
full snapshot of the screen after every frame. Disposal methods are respected:
frames are drawn over the screen, and then either left in place, cleared to
transparent, or undone. Transparent screen pixels read as black.
*/
func Frames(giff *gif.GIF) []image.Image {
	bounds := image.Rect(0, 0, giff.Config.Width, giff.Config.Height)
	if bounds.Empty() {
		for _, frame := range giff.Image {
			bounds = bounds.Union(frame.Bounds())
		}
	}
	screen := image.NewRGBA(bounds)

	frames := make([]image.Image, 0, len(giff.Image))
	for i, frame := range giff.Image {
		var disposal byte
		if i < len(giff.Disposal) {
			disposal = giff.Disposal[i]
		}

		switch disposal {
		// Dispose previous essentially means draw then undo
		case gif.DisposalPrevious:
			previous := cloneRGBA(screen)
			draw.Draw(screen, frame.Bounds(), frame, frame.Bounds().Min, draw.Over)
			frames = append(frames, cloneRGBA(screen))
			screen = previous
		// Dispose background clears everything just drawn
		case gif.DisposalBackground:
			draw.Draw(screen, frame.Bounds(), frame, frame.Bounds().Min, draw.Over)
			frames = append(frames, cloneRGBA(screen))
			draw.Draw(screen, frame.Bounds(), image.Transparent, image.Point{}, draw.Src)
		// Dispose none or undefined means we just draw what we got over top
		default:
			draw.Draw(screen, frame.Bounds(), frame, frame.Bounds().Min, draw.Over)
			frames = append(frames, cloneRGBA(screen))
		}
	}
	return frames
}

func cloneRGBA(src *image.RGBA) *image.RGBA {
	dst := image.NewRGBA(src.Bounds())
	copy(dst.Pix, src.Pix)
	return dst
}
