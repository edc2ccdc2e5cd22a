package component

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

type Sprite struct {
	Image      *ebiten.Image
	Source     image.Rectangle
	UseSource  bool
	OriginX    float64
	OriginY    float64
	FacingLeft bool
	// Tint is used for box sprites drawn without an image.
	Tint color.Color
}

var SpriteComponent = NewComponent[Sprite]()
