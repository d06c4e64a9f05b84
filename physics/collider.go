package physics

// Collider describes an entity's collision box relative to its position:
// a size, an offset from the position anchor, the layer mask, and whether
// the box is a solid obstacle or a trigger sensor.
type Collider struct {
	Width, Height    float64
	OffsetX, OffsetY float64
	Mask             Mask
	// Trigger marks the collider as a sensor. Triggers are detected like
	// any other box but are reported through the trigger callback instead
	// of the collision callback.
	Trigger bool
}

// NewCollider returns a solid collider of the given size with no offset on
// the default layer, colliding with everything.
func NewCollider(width, height float64) Collider {
	return Collider{
		Width:  width,
		Height: height,
		Mask:   DefaultMask(),
	}
}

// DefaultCollider returns a 1x1 collider, the size colliders fall back to
// when no shape is configured.
func DefaultCollider() Collider {
	return NewCollider(1, 1)
}

// Bounds returns the world-space box for an entity at (x, y) with no
// scaling applied.
func (c Collider) Bounds(x, y float64) AABB {
	return c.ScaledBounds(x, y, 1, 1)
}

// ScaledBounds returns the world-space box for an entity at (x, y) scaled
// by (scaleX, scaleY). The offset scales with the entity so a collider
// centered on a sprite stays centered when the sprite grows. Negative and
// zero scales are passed through untouched; callers own the degenerate
// boxes they produce.
func (c Collider) ScaledBounds(x, y, scaleX, scaleY float64) AABB {
	return AABB{
		X:      x + c.OffsetX*scaleX,
		Y:      y + c.OffsetY*scaleY,
		Width:  c.Width * scaleX,
		Height: c.Height * scaleY,
	}
}
