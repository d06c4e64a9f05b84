package component

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Sprite is a drawable image region. A zero Source draws the whole image.
type Sprite struct {
	Image   *ebiten.Image
	Source  image.Rectangle
	OffsetX float64
	OffsetY float64
	FlipX   bool
	Hidden  bool
}
