package component

import "github.com/okranz/collider/physics"

// Collider attaches a collision box to an entity. The collision system
// mirrors enabled colliders into the collision world each frame, following
// the entity's transform.
type Collider struct {
	Shape   physics.Collider
	Enabled bool
}

// NewCollider returns an enabled collider with the given shape.
func NewCollider(shape physics.Collider) *Collider {
	return &Collider{Shape: shape, Enabled: true}
}
