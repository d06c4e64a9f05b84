package ecs

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/okranz/collider/physics"
	"github.com/okranz/collider/timing"
)

// System updates a world each frame.
type System interface {
	Update(w *World)
}

// RenderSystem is implemented by systems that also draw.
type RenderSystem interface {
	Draw(w *World, screen *ebiten.Image)
}

// World owns entities, component tables, the simulation clock, the
// collision world, and system order. Component tables hold pointers; a
// system that mutates a fetched component edits it in place.
type World struct {
	entities entityStore
	systems  []System
	events   EventQueue

	clock      *timing.Clock
	collisions *physics.World

	transforms *SparseSet
	sprites    *SparseSet
	animators  *SparseSet
	colliders  *SparseSet
	tags       *SparseSet
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{}
}

// CreateEntity allocates a new entity.
func (w *World) CreateEntity() Entity {
	return w.entities.create()
}

// DestroyEntity removes an entity, its components, and its collider. It
// reports false for dead or stale handles.
func (w *World) DestroyEntity(e Entity) bool {
	if w == nil || !w.entities.destroy(e) {
		return false
	}
	w.transforms.Remove(e.ID)
	w.sprites.Remove(e.ID)
	w.animators.Remove(e.ID)
	w.colliders.Remove(e.ID)
	w.tags.Remove(e.ID)
	if w.collisions != nil {
		w.collisions.RemoveCollider(physics.EntityID(e.ID))
	}
	return true
}

// IsAlive reports whether an entity handle is still valid.
func (w *World) IsAlive(e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// AddSystem appends a system to the update order.
func (w *World) AddSystem(s System) {
	if w == nil || s == nil {
		return
	}
	w.systems = append(w.systems, s)
}

// Update steps the clock by dt seconds and runs all systems in order.
// Events still queued when the last system finishes are dropped.
func (w *World) Update(dt float64) {
	if w == nil {
		return
	}
	w.Clock().Step(dt)
	for _, s := range w.systems {
		if s != nil {
			s.Update(w)
		}
	}
	w.events.flush()
}

// Draw calls every render-capable system in system order.
func (w *World) Draw(screen *ebiten.Image) {
	if w == nil || screen == nil {
		return
	}
	for _, s := range w.systems {
		if rs, ok := s.(RenderSystem); ok && rs != nil {
			rs.Draw(w, screen)
		}
	}
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

// Clock returns the simulation clock, creating it on first use.
func (w *World) Clock() *timing.Clock {
	if w == nil {
		return nil
	}
	if w.clock == nil {
		w.clock = timing.NewClock()
	}
	return w.clock
}

// Collisions returns the collision world, creating it on first use.
func (w *World) Collisions() *physics.World {
	if w == nil {
		return nil
	}
	if w.collisions == nil {
		w.collisions = physics.NewWorld()
	}
	return w.collisions
}

// Transforms returns the transform storage.
func (w *World) Transforms() *SparseSet {
	if w == nil {
		return nil
	}
	if w.transforms == nil {
		w.transforms = &SparseSet{}
	}
	return w.transforms
}

// Sprites returns the sprite storage.
func (w *World) Sprites() *SparseSet {
	if w == nil {
		return nil
	}
	if w.sprites == nil {
		w.sprites = &SparseSet{}
	}
	return w.sprites
}

// Animators returns the animator storage.
func (w *World) Animators() *SparseSet {
	if w == nil {
		return nil
	}
	if w.animators == nil {
		w.animators = &SparseSet{}
	}
	return w.animators
}

// Colliders returns the collider storage.
func (w *World) Colliders() *SparseSet {
	if w == nil {
		return nil
	}
	if w.colliders == nil {
		w.colliders = &SparseSet{}
	}
	return w.colliders
}

// Tags returns the tag storage.
func (w *World) Tags() *SparseSet {
	if w == nil {
		return nil
	}
	if w.tags == nil {
		w.tags = &SparseSet{}
	}
	return w.tags
}
