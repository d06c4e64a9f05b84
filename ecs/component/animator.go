package component

import "github.com/okranz/collider/anim"

// Animator drives an entity's sprite from an animation controller. The
// animation system advances the controller with scaled frame time and
// copies the current frame's sheet rectangle and offset into the sprite.
type Animator struct {
	Controller *anim.Controller
}

// NewAnimator wraps a controller for storage on an entity.
func NewAnimator(c *anim.Controller) *Animator {
	return &Animator{Controller: c}
}
