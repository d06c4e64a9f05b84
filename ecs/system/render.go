package system

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/okranz/collider/ecs"
	"github.com/okranz/collider/ecs/component"
)

// Render draws every visible sprite at its entity's world transform.
type Render struct{}

// NewRender creates the sprite renderer.
func NewRender() *Render {
	return &Render{}
}

func (r *Render) Update(w *ecs.World) {}

func (r *Render) Draw(w *ecs.World, screen *ebiten.Image) {
	if w == nil || screen == nil {
		return
	}
	sprites := w.Sprites()
	trs := w.Transforms()

	for _, id := range sprites.Entities() {
		sp, ok := sprites.Get(id).(*component.Sprite)
		if !ok || sp == nil || sp.Hidden || sp.Image == nil {
			continue
		}
		tr, ok := trs.Get(id).(*component.Transform)
		if !ok || tr == nil {
			continue
		}

		img := sp.Image
		if !sp.Source.Empty() {
			img = sp.Image.SubImage(sp.Source).(*ebiten.Image)
		}

		op := &ebiten.DrawImageOptions{}
		sx, sy := tr.WorldScaleX(), tr.WorldScaleY()
		if sp.FlipX {
			op.GeoM.Scale(-1, 1)
			op.GeoM.Translate(float64(img.Bounds().Dx()), 0)
		}
		op.GeoM.Scale(sx, sy)
		op.GeoM.Rotate(tr.WorldRotation() * math.Pi / 180)
		op.GeoM.Translate(tr.WorldX()+sp.OffsetX*sx, tr.WorldY()+sp.OffsetY*sy)
		screen.DrawImage(img, op)
	}
}
