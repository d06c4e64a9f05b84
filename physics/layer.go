package physics

// Layer is a bitmask of collision categories. An entity usually occupies a
// single layer but the type supports multi-bit values everywhere, so group
// filters like LayerEnemy|LayerProjectile work without special casing.
type Layer uint32

const (
	LayerDefault Layer = 1 << iota
	LayerPlayer
	LayerEnemy
	LayerProjectile
	LayerTerrain
	LayerTrigger
	LayerPickup
	LayerPlatform
)

const (
	// LayerNone matches nothing.
	LayerNone Layer = 0
	// LayerAll matches every layer.
	LayerAll Layer = 0xFFFFFFFF
)

// matrixRows is the number of named layer bits tracked by the collision
// matrix. Bits above this range still work as plain mask values.
const matrixRows = 8

// Has reports whether l and other share at least one bit.
func (l Layer) Has(other Layer) bool {
	return l&other != LayerNone
}

// Mask pairs the layer an entity lives on with the set of layers it scans
// for collisions.
type Mask struct {
	// Layer is the category this entity belongs to.
	Layer Layer
	// CollidesWith is the set of layers this entity's own collision
	// scans react to.
	CollidesWith Layer
}

// DefaultMask returns a mask on the default layer that collides with
// everything.
func DefaultMask() Mask {
	return Mask{Layer: LayerDefault, CollidesWith: LayerAll}
}

// NewMask builds a mask from a layer and a scan set.
func NewMask(layer, collidesWith Layer) Mask {
	return Mask{Layer: layer, CollidesWith: collidesWith}
}

// CanCollideWith reports whether m scans the layer other lives on. The check
// runs one way only: other's CollidesWith is not consulted, so A noticing B
// does not imply B notices A. Directional scans (a projectile that hits
// terrain which never scans back) depend on this.
func (m Mask) CanCollideWith(other Mask) bool {
	return m.CollidesWith.Has(other.Layer)
}
