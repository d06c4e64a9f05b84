package system

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/okranz/collider/ecs"
	"github.com/okranz/collider/ecs/component"
)

// Movement drives one entity's transform from the arrow keys or WASD.
// It exists for the sandbox probe; anything gameplay-shaped lives in the
// caller, not here.
type Movement struct {
	Target ecs.Entity
	Speed  float64
}

// NewMovement creates a movement system for the target entity moving at
// speed units per second.
func NewMovement(target ecs.Entity, speed float64) *Movement {
	return &Movement{Target: target, Speed: speed}
}

func (s *Movement) Update(w *ecs.World) {
	if s == nil || w == nil || !w.IsAlive(s.Target) {
		return
	}
	tr, ok := w.Transforms().Get(s.Target.ID).(*component.Transform)
	if !ok || tr == nil {
		return
	}

	var dx, dy float64
	if ebiten.IsKeyPressed(ebiten.KeyLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		dx -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		dx += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyUp) || ebiten.IsKeyPressed(ebiten.KeyW) {
		dy -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyDown) || ebiten.IsKeyPressed(ebiten.KeyS) {
		dy += 1
	}

	dt := w.Clock().Delta()
	tr.X += dx * s.Speed * dt
	tr.Y += dy * s.Speed * dt
}
