package physics

// AABB is an axis-aligned box with its origin at the top-left corner and Y
// growing downward, matching screen space. It is a plain value: methods
// never mutate the receiver, so copies are safe to pass around.
type AABB struct {
	X, Y          float64
	Width, Height float64
}

// NewAABB builds a box from a top-left corner and a size.
func NewAABB(x, y, width, height float64) AABB {
	return AABB{X: x, Y: y, Width: width, Height: height}
}

// Left returns the minimum x edge.
func (b AABB) Left() float64 { return b.X }

// Right returns the maximum x edge.
func (b AABB) Right() float64 { return b.X + b.Width }

// Top returns the minimum y edge.
func (b AABB) Top() float64 { return b.Y }

// Bottom returns the maximum y edge.
func (b AABB) Bottom() float64 { return b.Y + b.Height }

// CenterX returns the horizontal center.
func (b AABB) CenterX() float64 { return b.X + b.Width*0.5 }

// CenterY returns the vertical center.
func (b AABB) CenterY() float64 { return b.Y + b.Height*0.5 }

// Contains reports whether the point lies inside the box. All four edges
// count as inside, so a point on a shared edge of two touching boxes is
// contained by both even though the boxes themselves do not intersect.
func (b AABB) Contains(px, py float64) bool {
	return px >= b.Left() && px <= b.Right() &&
		py >= b.Top() && py <= b.Bottom()
}

// Intersects reports whether the two boxes overlap. The comparisons are
// strict, so boxes that only share an edge or a corner do not intersect.
// A zero-size box strictly inside another still intersects it; degenerate
// boxes only fail once they sit on the other box's edge or beyond.
func (b AABB) Intersects(o AABB) bool {
	return b.Left() < o.Right() && b.Right() > o.Left() &&
		b.Top() < o.Bottom() && b.Bottom() > o.Top()
}

// Union returns the smallest box covering both b and o.
func (b AABB) Union(o AABB) AABB {
	left := b.Left()
	if o.Left() < left {
		left = o.Left()
	}
	top := b.Top()
	if o.Top() < top {
		top = o.Top()
	}
	right := b.Right()
	if o.Right() > right {
		right = o.Right()
	}
	bottom := b.Bottom()
	if o.Bottom() > bottom {
		bottom = o.Bottom()
	}
	return AABB{X: left, Y: top, Width: right - left, Height: bottom - top}
}
