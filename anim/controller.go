package anim

import "github.com/okranz/collider/timing"

// Controller owns a set of animations and plays one at a time. Update is
// driven with scaled frame time; speed multiplies on top of that. The
// controller never touches images, it only tracks which frame is current,
// so renderers read Frame and FrameRect each draw.
type Controller struct {
	animations map[string]*Animation

	current    *Animation
	frame      int
	frameTimer float64
	speed      float64
	playing    bool
	direction  int

	blending  bool
	blendTime float64
	blendDur  float64
	blendEase timing.Easing
	pending   *Animation

	// OnEnd fires when a pass completes: once for Once, every wrap for
	// Loop, every full out-and-back for PingPong.
	OnEnd func(name string)
	// OnFrameChange fires whenever the current frame index changes,
	// including the first frame of Play.
	OnFrameChange func(name string, frame int)
}

// NewController returns an empty controller at speed 1.
func NewController() *Controller {
	return &Controller{
		animations: make(map[string]*Animation),
		speed:      1,
		direction:  1,
	}
}

// Add registers an animation, replacing any previous one with the same
// name. Nil and unnamed animations are ignored.
func (c *Controller) Add(a *Animation) {
	if c == nil || a == nil || a.Name == "" {
		return
	}
	c.animations[a.Name] = a
}

// Animation returns a registered animation by name.
func (c *Controller) Animation(name string) (*Animation, bool) {
	if c == nil {
		return nil, false
	}
	a, ok := c.animations[name]
	return a, ok
}

// Play starts an animation from its first frame, restarting it if it is
// already current. It reports false for unknown names and animations with
// no frames. Any blend in progress is dropped.
func (c *Controller) Play(name string) bool {
	if c == nil {
		return false
	}
	a, ok := c.animations[name]
	if !ok || len(a.Frames) == 0 {
		return false
	}
	c.current = a
	c.playing = true
	c.direction = 1
	c.frameTimer = 0
	c.blending = false
	c.pending = nil
	c.enterFrame(0)
	return true
}

// Pause freezes playback on the current frame.
func (c *Controller) Pause() {
	if c == nil {
		return
	}
	c.playing = false
}

// Resume continues a paused animation.
func (c *Controller) Resume() {
	if c == nil || c.current == nil {
		return
	}
	c.playing = true
}

// Stop halts playback and rewinds to the first frame.
func (c *Controller) Stop() {
	if c == nil {
		return
	}
	c.playing = false
	c.frame = 0
	c.frameTimer = 0
	c.direction = 1
	c.blending = false
	c.pending = nil
}

// SetSpeed sets the playback speed multiplier. Negative values clamp to 0.
func (c *Controller) SetSpeed(speed float64) {
	if c == nil {
		return
	}
	if speed < 0 {
		speed = 0
	}
	c.speed = speed
}

// Speed returns the playback speed multiplier.
func (c *Controller) Speed() float64 {
	if c == nil {
		return 0
	}
	return c.speed
}

// Current returns the name of the current animation, or "".
func (c *Controller) Current() string {
	if c == nil || c.current == nil {
		return ""
	}
	return c.current.Name
}

// Frame returns the current frame of the current animation.
func (c *Controller) Frame() (Frame, bool) {
	if c == nil || c.current == nil || c.frame >= len(c.current.Frames) {
		return Frame{}, false
	}
	return c.current.Frames[c.frame], true
}

// FrameIndex returns the position within the current frame sequence.
func (c *Controller) FrameIndex() int {
	if c == nil {
		return 0
	}
	return c.frame
}

// Playing reports whether playback is advancing.
func (c *Controller) Playing() bool {
	if c == nil {
		return false
	}
	return c.playing
}

// NormalizedTime returns playback position within the current animation in
// [0, 1], measured along the forward frame order regardless of PingPong
// direction.
func (c *Controller) NormalizedTime() float64 {
	if c == nil || c.current == nil {
		return 0
	}
	total := c.current.Duration()
	if total <= 0 {
		return 0
	}
	var elapsed float64
	for i := 0; i < c.frame && i < len(c.current.Frames); i++ {
		elapsed += c.current.Frames[i].Duration
	}
	elapsed += c.frameTimer
	t := elapsed / total
	if t > 1 {
		t = 1
	}
	return t
}

// TransitionTo starts a timed blend into another animation. The current
// animation keeps playing underneath; when the blend completes the target
// starts from its first frame. With no current animation, or a
// non-positive duration, the target plays immediately. Reports false for
// unknown names.
func (c *Controller) TransitionTo(name string, duration float64, easing timing.Easing) bool {
	if c == nil {
		return false
	}
	a, ok := c.animations[name]
	if !ok || len(a.Frames) == 0 {
		return false
	}
	if c.current == nil || duration <= 0 {
		return c.Play(name)
	}
	c.blending = true
	c.blendTime = 0
	c.blendDur = duration
	c.blendEase = easing
	c.pending = a
	return true
}

// Blending reports whether a transition is in progress.
func (c *Controller) Blending() bool {
	if c == nil {
		return false
	}
	return c.blending
}

// BlendWeight returns the eased progress of the active transition in
// [0, 1]: 0 all current animation, 1 all target. Renderers use it to fade
// between the two.
func (c *Controller) BlendWeight() float64 {
	if c == nil || !c.blending || c.blendDur <= 0 {
		return 0
	}
	return timing.Ease(c.blendEase, c.blendTime/c.blendDur)
}

// Update advances playback by dt seconds of scaled time.
func (c *Controller) Update(dt float64) {
	if c == nil || c.current == nil {
		return
	}
	dt *= c.speed
	if dt < 0 {
		dt = 0
	}

	if c.blending {
		c.blendTime += dt
		if c.blendTime >= c.blendDur {
			target := c.pending
			c.blending = false
			c.pending = nil
			if target != nil {
				c.Play(target.Name)
				return
			}
		}
	}

	if !c.playing {
		return
	}

	c.frameTimer += dt
	for c.playing {
		d := c.current.Frames[c.frame].Duration
		if d <= 0 {
			// Zero-length frames advance once per update so a bad
			// duration cannot spin the loop.
			c.frameTimer = 0
			c.advanceFrame()
			break
		}
		if c.frameTimer < d {
			break
		}
		c.frameTimer -= d
		c.advanceFrame()
	}
}

func (c *Controller) advanceFrame() {
	last := len(c.current.Frames) - 1
	switch c.current.Mode {
	case Loop:
		if c.frame >= last {
			c.enterFrame(0)
			c.fireEnd()
			return
		}
		c.enterFrame(c.frame + 1)
	case PingPong:
		next := c.frame + c.direction
		if next > last {
			// Bounce off the end without holding the last frame twice.
			c.direction = -1
			next = last - 1
			if next < 0 {
				next = 0
			}
		} else if next < 0 {
			c.direction = 1
			next = 1
			if next > last {
				next = last
			}
		}
		c.enterFrame(next)
		// Arriving back at the first frame completes one full cycle.
		if next == 0 && c.direction == -1 {
			c.fireEnd()
		}
	default: // Once
		if c.frame >= last {
			c.playing = false
			c.fireEnd()
			return
		}
		c.enterFrame(c.frame + 1)
	}
}

func (c *Controller) enterFrame(i int) {
	c.frame = i
	if c.OnFrameChange != nil {
		c.OnFrameChange(c.current.Name, i)
	}
	if fn := c.current.Frames[i].OnEnter; fn != nil {
		fn()
	}
}

func (c *Controller) fireEnd() {
	if c.OnEnd != nil {
		c.OnEnd(c.current.Name)
	}
}
