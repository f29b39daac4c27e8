package render

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/colornames"
)

// PlaceholderImage draws a sheet of frames solid-filled with c, each with a
// dark border and a tick mark whose position encodes the frame index, so a
// missing sheet still shows the animation playing.
func PlaceholderImage(frameW, frameH, frames int, c color.Color) *image.RGBA {
	if frameW <= 0 {
		frameW = 1
	}
	if frameH <= 0 {
		frameH = 1
	}
	if frames <= 0 {
		frames = 1
	}
	if c == nil {
		c = colornames.Magenta
	}

	img := image.NewRGBA(image.Rect(0, 0, frameW*frames, frameH))
	for i := 0; i < frames; i++ {
		cell := image.Rect(i*frameW, 0, (i+1)*frameW, frameH)
		draw.Draw(img, cell, &image.Uniform{C: colornames.Black}, image.Point{}, draw.Src)
		if inner := cell.Inset(1); !inner.Empty() {
			draw.Draw(img, inner, &image.Uniform{C: c}, image.Point{}, draw.Src)
		}
		tickX := cell.Min.X + 1 + i*(frameW-2)/frames
		tick := image.Rect(tickX, frameH-3, tickX+1, frameH-1).Intersect(cell)
		draw.Draw(img, tick, &image.Uniform{C: colornames.White}, image.Point{}, draw.Src)
	}
	return img
}

// PlaceholderSheet is PlaceholderImage uploaded as an ebiten image.
func PlaceholderSheet(frameW, frameH, frames int, c color.Color) *ebiten.Image {
	return ebiten.NewImageFromImage(PlaceholderImage(frameW, frameH, frames, c))
}
