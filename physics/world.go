package physics

import "math"

// EntityID identifies an entity to the collision world. The world treats it
// as opaque; any caller-owned id scheme works.
type EntityID uint32

// ColliderEntry is a registered collider: the owning entity, its world
// position and scale, and the collider shape.
type ColliderEntry struct {
	Entity         EntityID
	X, Y           float64
	ScaleX, ScaleY float64
	Collider       Collider
}

// Bounds returns the entry's current world-space box.
func (e ColliderEntry) Bounds() AABB {
	return e.Collider.ScaledBounds(e.X, e.Y, e.ScaleX, e.ScaleY)
}

// CollisionInfo describes one overlapping pair for a single frame.
type CollisionInfo struct {
	EntityA, EntityB EntityID
	BoundsA, BoundsB AABB
	// OverlapX and OverlapY are the minimum penetration depth per axis,
	// both positive for any reported pair. A resolver would push along
	// the smaller of the two.
	OverlapX, OverlapY float64
	// IsTrigger is set when either collider is a trigger sensor.
	IsTrigger bool
}

// CollisionFunc receives solid overlaps from ProcessCollisions.
type CollisionFunc func(info CollisionInfo)

// TriggerFunc receives trigger overlaps from ProcessCollisions.
type TriggerFunc func(a, b EntityID)

// World is a brute force broad phase: every registered collider is tested
// against every other, with no spatial partitioning and no contact memory
// between frames. Entries live in a dense slice with a map from entity id
// to slot, so add, remove and update are O(1) and detection walks a flat
// array. World is not safe for concurrent use; drive it from the game loop.
type World struct {
	entries []ColliderEntry
	index   map[EntityID]int

	onCollision    CollisionFunc
	onTriggerEnter TriggerFunc
	onTriggerExit  TriggerFunc

	layerMatrix [matrixRows]uint32
}

// NewWorld returns an empty world with every layer pair enabled in the
// collision matrix.
func NewWorld() *World {
	w := &World{index: make(map[EntityID]int)}
	for i := range w.layerMatrix {
		w.layerMatrix[i] = uint32(LayerAll)
	}
	return w
}

// AddCollider registers a collider for an entity at (x, y) with unit scale.
// If the entity already has a collider it is replaced.
func (w *World) AddCollider(id EntityID, x, y float64, c Collider) {
	w.AddColliderScaled(id, x, y, 1, 1, c)
}

// AddColliderScaled registers a collider with an explicit scale. Replacing
// an existing collider moves the entity to the end of the scan order.
func (w *World) AddColliderScaled(id EntityID, x, y, scaleX, scaleY float64, c Collider) {
	if w == nil {
		return
	}
	if _, ok := w.index[id]; ok {
		w.RemoveCollider(id)
	}
	w.entries = append(w.entries, ColliderEntry{
		Entity:   id,
		X:        x,
		Y:        y,
		ScaleX:   scaleX,
		ScaleY:   scaleY,
		Collider: c,
	})
	w.index[id] = len(w.entries) - 1
}

// RemoveCollider unregisters an entity's collider. The last entry is swapped
// into the vacated slot so removal is O(1); scan order is not preserved.
// Unknown ids are ignored.
func (w *World) RemoveCollider(id EntityID) {
	if w == nil {
		return
	}
	idx, ok := w.index[id]
	if !ok {
		return
	}
	last := len(w.entries) - 1
	if idx < last {
		w.entries[idx] = w.entries[last]
		w.index[w.entries[idx].Entity] = idx
	}
	w.entries = w.entries[:last]
	delete(w.index, id)
}

// UpdatePosition moves an entity's collider. Unknown ids are ignored.
func (w *World) UpdatePosition(id EntityID, x, y float64) {
	if w == nil {
		return
	}
	idx, ok := w.index[id]
	if !ok {
		return
	}
	w.entries[idx].X = x
	w.entries[idx].Y = y
}

// UpdateScale rescales an entity's collider. Unknown ids are ignored.
func (w *World) UpdateScale(id EntityID, scaleX, scaleY float64) {
	if w == nil {
		return
	}
	idx, ok := w.index[id]
	if !ok {
		return
	}
	w.entries[idx].ScaleX = scaleX
	w.entries[idx].ScaleY = scaleY
}

// Clear removes every collider. Callbacks and the layer matrix survive.
func (w *World) Clear() {
	if w == nil {
		return
	}
	w.entries = nil
	w.index = make(map[EntityID]int)
}

// HasCollider reports whether the entity has a registered collider.
func (w *World) HasCollider(id EntityID) bool {
	if w == nil {
		return false
	}
	_, ok := w.index[id]
	return ok
}

// Entry returns a copy of the entity's registered entry.
func (w *World) Entry(id EntityID) (ColliderEntry, bool) {
	if w == nil {
		return ColliderEntry{}, false
	}
	idx, ok := w.index[id]
	if !ok {
		return ColliderEntry{}, false
	}
	return w.entries[idx], true
}

// Len returns the number of registered colliders.
func (w *World) Len() int {
	if w == nil {
		return 0
	}
	return len(w.entries)
}

// Entries returns a copy of the registered entries in scan order. Mutating
// the result never touches the world; Entry is the only accessor that
// reads live state, and even that hands out a copy.
func (w *World) Entries() []ColliderEntry {
	if w == nil || len(w.entries) == 0 {
		return nil
	}
	out := make([]ColliderEntry, len(w.entries))
	copy(out, w.entries)
	return out
}

// DetectCollisions tests every unordered pair and returns the overlapping
// ones in scan order, earlier entry as EntityA. Layer masks and the layer
// matrix are not consulted here: this is the raw geometric sweep, and
// callers that want filtering apply it on the way out or use
// DetectCollisionsFor.
func (w *World) DetectCollisions() []CollisionInfo {
	if w == nil || len(w.entries) < 2 {
		return nil
	}
	var infos []CollisionInfo
	for i := 0; i < len(w.entries); i++ {
		a := &w.entries[i]
		boundsA := a.Bounds()
		for j := i + 1; j < len(w.entries); j++ {
			b := &w.entries[j]
			boundsB := b.Bounds()
			if !boundsA.Intersects(boundsB) {
				continue
			}
			infos = append(infos, pairInfo(a, b, boundsA, boundsB))
		}
	}
	return infos
}

// DetectCollisionsFor returns the overlaps involving one entity, with that
// entity always reported as EntityA. Unlike the full sweep this applies the
// target's layer mask: entries whose layer the target does not scan are
// skipped. The check is one-directional, from the target's side only.
// Unknown ids yield nil.
func (w *World) DetectCollisionsFor(id EntityID) []CollisionInfo {
	if w == nil {
		return nil
	}
	idx, ok := w.index[id]
	if !ok {
		return nil
	}
	target := &w.entries[idx]
	boundsA := target.Bounds()
	var infos []CollisionInfo
	for i := range w.entries {
		other := &w.entries[i]
		if other.Entity == id {
			continue
		}
		if !target.Collider.Mask.CanCollideWith(other.Collider.Mask) {
			continue
		}
		boundsB := other.Bounds()
		if !boundsA.Intersects(boundsB) {
			continue
		}
		infos = append(infos, pairInfo(target, other, boundsA, boundsB))
	}
	return infos
}

// CheckCollision tests one specific pair, a's layer mask against b's layer.
// It reports false when either id is unregistered, the boxes do not
// intersect, or a does not scan b's layer. On success the info carries a
// as EntityA.
func (w *World) CheckCollision(a, b EntityID) (CollisionInfo, bool) {
	if w == nil {
		return CollisionInfo{}, false
	}
	ia, ok := w.index[a]
	if !ok {
		return CollisionInfo{}, false
	}
	ib, ok := w.index[b]
	if !ok {
		return CollisionInfo{}, false
	}
	ea, eb := &w.entries[ia], &w.entries[ib]
	boundsA, boundsB := ea.Bounds(), eb.Bounds()
	if !boundsA.Intersects(boundsB) {
		return CollisionInfo{}, false
	}
	if !ea.Collider.Mask.CanCollideWith(eb.Collider.Mask) {
		return CollisionInfo{}, false
	}
	return pairInfo(ea, eb, boundsA, boundsB), true
}

// QueryPoint returns the ids of colliders whose bounds contain the point
// and whose layer is in filter. Pass LayerAll to match every layer. Edges
// count as inside. Results are in scan order.
func (w *World) QueryPoint(x, y float64, filter Layer) []EntityID {
	if w == nil {
		return nil
	}
	var ids []EntityID
	for i := range w.entries {
		e := &w.entries[i]
		if !e.Bounds().Contains(x, y) {
			continue
		}
		if !filter.Has(e.Collider.Mask.Layer) {
			continue
		}
		ids = append(ids, e.Entity)
	}
	return ids
}

// QueryAABB returns the ids of colliders whose bounds intersect the probe
// box, in scan order. The filter parameter is accepted for symmetry with
// QueryPoint but is not applied; area probes currently return matches from
// every layer.
func (w *World) QueryAABB(bounds AABB, filter Layer) []EntityID {
	if w == nil {
		return nil
	}
	// TODO: honor filter the way QueryPoint does.
	var ids []EntityID
	for i := range w.entries {
		e := &w.entries[i]
		if !bounds.Intersects(e.Bounds()) {
			continue
		}
		ids = append(ids, e.Entity)
	}
	return ids
}

// SetCollisionCallback installs the receiver for solid overlaps. Nil
// disables dispatch.
func (w *World) SetCollisionCallback(fn CollisionFunc) {
	if w == nil {
		return
	}
	w.onCollision = fn
}

// SetTriggerEnterCallback installs the receiver for trigger overlaps. The
// world has no contact memory, so the callback fires on every frame the
// pair overlaps, not just the first.
func (w *World) SetTriggerEnterCallback(fn TriggerFunc) {
	if w == nil {
		return
	}
	w.onTriggerEnter = fn
}

// SetTriggerExitCallback stores the receiver for trigger separations. No
// engine path fires it today: without cross-frame contact memory the world
// cannot tell an overlap ending from one that never started. Callers that
// need exits track enter events themselves.
//
// TODO: fire this once contact pairs persist across frames.
func (w *World) SetTriggerExitCallback(fn TriggerFunc) {
	if w == nil {
		return
	}
	w.onTriggerExit = fn
}

// ProcessCollisions runs the full unfiltered sweep and dispatches each
// overlap: trigger pairs to the trigger-enter callback, solid pairs to the
// collision callback. Nil callbacks skip their class of events.
func (w *World) ProcessCollisions() {
	if w == nil {
		return
	}
	for _, info := range w.DetectCollisions() {
		if info.IsTrigger {
			if w.onTriggerEnter != nil {
				w.onTriggerEnter(info.EntityA, info.EntityB)
			}
			continue
		}
		if w.onCollision != nil {
			w.onCollision(info)
		}
	}
}

// SetLayerCollisionEnabled records whether two layers should interact. The
// update is symmetric and applies to every named bit in multi-bit
// arguments. The matrix is bookkeeping for callers: detection does not
// consult it, so disabling a pair hides nothing from DetectCollisions.
// Use collider masks to actually cut pairs from scans.
func (w *World) SetLayerCollisionEnabled(l1, l2 Layer, enabled bool) {
	if w == nil {
		return
	}
	for i := 0; i < matrixRows; i++ {
		bit := Layer(1) << i
		if l1.Has(bit) {
			if enabled {
				w.layerMatrix[i] |= uint32(l2)
			} else {
				w.layerMatrix[i] &^= uint32(l2)
			}
		}
		if l2.Has(bit) {
			if enabled {
				w.layerMatrix[i] |= uint32(l1)
			} else {
				w.layerMatrix[i] &^= uint32(l1)
			}
		}
	}
}

// IsLayerCollisionEnabled reports whether every named bit of l1 still has
// all of l2 enabled in the matrix. Layers outside the named range, and
// LayerNone, pass vacuously.
func (w *World) IsLayerCollisionEnabled(l1, l2 Layer) bool {
	if w == nil {
		return true
	}
	for i := 0; i < matrixRows; i++ {
		bit := Layer(1) << i
		if !l1.Has(bit) {
			continue
		}
		if w.layerMatrix[i]&uint32(l2) == 0 {
			return false
		}
	}
	return true
}

func pairInfo(a, b *ColliderEntry, boundsA, boundsB AABB) CollisionInfo {
	return CollisionInfo{
		EntityA:   a.Entity,
		EntityB:   b.Entity,
		BoundsA:   boundsA,
		BoundsB:   boundsB,
		OverlapX:  math.Min(boundsA.Right()-boundsB.Left(), boundsB.Right()-boundsA.Left()),
		OverlapY:  math.Min(boundsA.Bottom()-boundsB.Top(), boundsB.Bottom()-boundsA.Top()),
		IsTrigger: a.Collider.Trigger || b.Collider.Trigger,
	}
}
