package component

import (
	"math"

	"github.com/okranz/collider/common"
)

// Transform is an entity's position, rotation in degrees, and scale.
// Setting Parent makes the transform local: world coordinates resolve
// through the parent chain, applying each parent's rotation and scale.
type Transform struct {
	X        float64
	Y        float64
	Rotation float64
	ScaleX   float64
	ScaleY   float64

	Parent *Transform
}

// NewTransform returns a transform at (x, y) with unit scale.
func NewTransform(x, y float64) *Transform {
	return &Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1}
}

// Rotate adds degrees to the rotation, normalized into [0, 360).
func (t *Transform) Rotate(degrees float64) {
	if t == nil {
		return
	}
	t.Rotation = math.Mod(t.Rotation+degrees, 360)
	if t.Rotation < 0 {
		t.Rotation += 360
	}
}

// WorldX returns the world-space x position through the parent chain.
func (t *Transform) WorldX() float64 {
	if t == nil {
		return 0
	}
	if t.Parent == nil {
		return t.X
	}
	rad := t.Parent.WorldRotation() * math.Pi / 180
	lx := t.X * t.Parent.WorldScaleX()
	ly := t.Y * t.Parent.WorldScaleY()
	return t.Parent.WorldX() + lx*math.Cos(rad) - ly*math.Sin(rad)
}

// WorldY returns the world-space y position through the parent chain.
func (t *Transform) WorldY() float64 {
	if t == nil {
		return 0
	}
	if t.Parent == nil {
		return t.Y
	}
	rad := t.Parent.WorldRotation() * math.Pi / 180
	lx := t.X * t.Parent.WorldScaleX()
	ly := t.Y * t.Parent.WorldScaleY()
	return t.Parent.WorldY() + lx*math.Sin(rad) + ly*math.Cos(rad)
}

// WorldRotation returns the accumulated rotation through the parent chain.
func (t *Transform) WorldRotation() float64 {
	if t == nil {
		return 0
	}
	if t.Parent == nil {
		return t.Rotation
	}
	return t.Parent.WorldRotation() + t.Rotation
}

// WorldScaleX returns the accumulated x scale through the parent chain.
func (t *Transform) WorldScaleX() float64 {
	if t == nil {
		return 1
	}
	if t.Parent == nil {
		return t.ScaleX
	}
	return t.Parent.WorldScaleX() * t.ScaleX
}

// WorldScaleY returns the accumulated y scale through the parent chain.
func (t *Transform) WorldScaleY() float64 {
	if t == nil {
		return 1
	}
	if t.Parent == nil {
		return t.ScaleY
	}
	return t.Parent.WorldScaleY() * t.ScaleY
}

// Interpolate returns a transform blended between a and b at t in [0, 1].
// t clamps, so overshoot holds the endpoints. Parent is taken from b.
func Interpolate(a, b *Transform, t float64) Transform {
	t = common.Clamp(t, 0, 1)
	if a == nil || b == nil {
		if b != nil {
			return *b
		}
		if a != nil {
			return *a
		}
		return Transform{ScaleX: 1, ScaleY: 1}
	}
	return Transform{
		X:        common.Lerp(a.X, b.X, t),
		Y:        common.Lerp(a.Y, b.Y, t),
		Rotation: common.Lerp(a.Rotation, b.Rotation, t),
		ScaleX:   common.Lerp(a.ScaleX, b.ScaleX, t),
		ScaleY:   common.Lerp(a.ScaleY, b.ScaleY, t),
		Parent:   b.Parent,
	}
}
