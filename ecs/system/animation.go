package system

import (
	"github.com/okranz/collider/ecs"
	"github.com/okranz/collider/ecs/component"
)

// Animation advances animator controllers by the frame's scaled time and
// copies the current frame into the entity's sprite.
type Animation struct{}

// NewAnimation creates the animation system.
func NewAnimation() *Animation {
	return &Animation{}
}

func (s *Animation) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := w.Clock().Delta()
	animators := w.Animators()
	sprites := w.Sprites()

	for _, id := range animators.Entities() {
		an, ok := animators.Get(id).(*component.Animator)
		if !ok || an == nil || an.Controller == nil {
			continue
		}
		an.Controller.Update(dt)

		sp, ok := sprites.Get(id).(*component.Sprite)
		if !ok || sp == nil {
			continue
		}
		frame, ok := an.Controller.Frame()
		if !ok {
			continue
		}
		cur, ok := an.Controller.Animation(an.Controller.Current())
		if !ok {
			continue
		}
		sp.Source = cur.FrameRect(frame.Index)
		sp.OffsetX = frame.OffsetX
		sp.OffsetY = frame.OffsetY
	}
}
