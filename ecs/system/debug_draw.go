package system

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/okranz/collider/ecs"
	"github.com/okranz/collider/physics"
)

// DebugDraw renders every registered collider box: triggers blue, solids
// green, anything overlapping something else red. Purely a development
// overlay; toggle it by adding or not adding the system.
type DebugDraw struct {
	Enabled bool
}

// NewDebugDraw creates the overlay, enabled.
func NewDebugDraw() *DebugDraw {
	return &DebugDraw{Enabled: true}
}

func (d *DebugDraw) Update(w *ecs.World) {}

func (d *DebugDraw) Draw(w *ecs.World, screen *ebiten.Image) {
	if d == nil || !d.Enabled || w == nil || screen == nil {
		return
	}
	cw := w.Collisions()

	hot := make(map[physics.EntityID]bool)
	for _, info := range cw.DetectCollisions() {
		hot[info.EntityA] = true
		hot[info.EntityB] = true
	}

	for _, e := range cw.Entries() {
		b := e.Bounds()
		fill := color.RGBA{R: 0, G: 200, B: 80, A: 40}
		line := color.RGBA{R: 0, G: 200, B: 80, A: 200}
		if e.Collider.Trigger {
			fill = color.RGBA{R: 60, G: 120, B: 255, A: 40}
			line = color.RGBA{R: 60, G: 120, B: 255, A: 200}
		}
		if hot[e.Entity] {
			fill = color.RGBA{R: 255, G: 0, B: 0, A: 48}
			line = color.RGBA{R: 255, G: 0, B: 0, A: 220}
		}
		vector.FillRect(screen, float32(b.X), float32(b.Y), float32(b.Width), float32(b.Height), fill, false)
		vector.StrokeRect(screen, float32(b.X), float32(b.Y), float32(b.Width), float32(b.Height), 1.0, line, false)
	}
}
