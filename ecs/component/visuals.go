package component

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// VisualBinding is the renderable resource shown while State is active.
// Frames are laid out left-to-right, top-to-bottom in Sheet.
type VisualBinding struct {
	State   string
	Sheet   *ebiten.Image
	FrameW  int
	FrameH  int
	Cols    int
	OriginX float64
	OriginY float64
}

// FrameRect returns the sheet rectangle of an absolute frame index.
func (b VisualBinding) FrameRect(index int) image.Rectangle {
	cols := b.Cols
	if cols <= 0 {
		cols = 1
	}
	if index < 0 {
		index = 0
	}
	x := (index % cols) * b.FrameW
	y := (index / cols) * b.FrameH
	return image.Rect(x, y, x+b.FrameW, y+b.FrameH)
}

// Visuals holds every binding of an entity keyed by state name. Only the
// binding named by Active is shown.
type Visuals struct {
	Bindings map[string]VisualBinding
	Active   string
}

var VisualsComponent = NewComponent[Visuals]()
