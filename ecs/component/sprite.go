package component

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Sprite is what the render system draws. Source selects the current frame
// from Image when UseSource is set; Hidden suppresses drawing while the
// active state has no visual.
type Sprite struct {
	Image      *ebiten.Image
	Source     image.Rectangle
	UseSource  bool
	OriginX    float64
	OriginY    float64
	FacingLeft bool
	Hidden     bool
}

var SpriteComponent = NewComponent[Sprite]()

// RenderLayer sorts draw order; higher indices draw on top.
type RenderLayer struct {
	Index int
}

var RenderLayerComponent = NewComponent[RenderLayer]()
