package system

import (
	"github.com/okranz/collider/ecs"
	"github.com/okranz/collider/ecs/component"
	"github.com/okranz/collider/physics"
)

// Collision mirrors enabled collider components into the collision world,
// runs detection, and republishes the world's callbacks as ecs events.
type Collision struct {
	tracked map[int]struct{}
}

// NewCollision creates the collision sync system.
func NewCollision() *Collision {
	return &Collision{tracked: make(map[int]struct{})}
}

// Update syncs colliders to transforms and processes the frame's overlaps.
func (s *Collision) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	cw := w.Collisions()
	cols := w.Colliders()
	trs := w.Transforms()

	seen := make(map[int]struct{}, cols.Len())
	for _, id := range cols.Entities() {
		col, ok := cols.Get(id).(*component.Collider)
		if !ok || col == nil || !col.Enabled {
			continue
		}
		tr, ok := trs.Get(id).(*component.Transform)
		if !ok || tr == nil {
			continue
		}
		seen[id] = struct{}{}

		pid := physics.EntityID(id)
		x, y := tr.WorldX(), tr.WorldY()
		sx, sy := tr.WorldScaleX(), tr.WorldScaleY()
		if entry, ok := cw.Entry(pid); ok {
			if entry.Collider != col.Shape {
				// Shape edits re-register so layer and size changes
				// take effect immediately.
				cw.AddColliderScaled(pid, x, y, sx, sy, col.Shape)
				continue
			}
			cw.UpdatePosition(pid, x, y)
			cw.UpdateScale(pid, sx, sy)
			continue
		}
		cw.AddColliderScaled(pid, x, y, sx, sy, col.Shape)
	}

	// Drop colliders whose component went away or was disabled.
	for id := range s.tracked {
		if _, ok := seen[id]; !ok {
			cw.RemoveCollider(physics.EntityID(id))
		}
	}
	s.tracked = seen

	events := w.Events()
	cw.SetCollisionCallback(func(info physics.CollisionInfo) {
		events.Push(ecs.Event{Type: ecs.EventCollision, Data: ecs.CollisionEvent{Info: info}})
	})
	cw.SetTriggerEnterCallback(func(a, b physics.EntityID) {
		events.Push(ecs.Event{Type: ecs.EventTriggerEnter, Data: ecs.TriggerEnterEvent{A: a, B: b}})
	})
	cw.ProcessCollisions()
}
