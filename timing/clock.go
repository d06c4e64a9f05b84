package timing

import "time"

const (
	// fpsWindow is how many frame samples feed the FPS average.
	fpsWindow = 120
	// fpsUpdateInterval is how often the published FPS value refreshes,
	// in seconds of unscaled time.
	fpsUpdateInterval = 0.5
)

// TimerFunc runs when a named timer fires.
type TimerFunc func()

type timer struct {
	name      string
	duration  float64
	elapsed   float64
	repeating bool
	paused    bool
	done      bool
	fn        TimerFunc
}

// Clock tracks scaled and unscaled frame time for a game loop and drives
// named one-shot and repeating timers. Timers run on scaled time, so
// SetScale(0) freezes them along with everything else that consumes Delta.
// Clock is not safe for concurrent use.
type Clock struct {
	delta         float64
	unscaledDelta float64
	total         float64
	scale         float64
	targetDelta   float64
	frames        uint64

	lastTick time.Time

	frameTimes []float64
	frameHead  int
	fpsTimer   float64
	fps        float64

	timers []*timer
	byName map[string]*timer
}

// NewClock returns a clock at scale 1 targeting 60 frames per second.
func NewClock() *Clock {
	return &Clock{
		scale:       1,
		targetDelta: 1.0 / 60.0,
		frameTimes:  make([]float64, 0, fpsWindow),
		byName:      make(map[string]*timer),
	}
}

// Update advances the clock from the wall clock and returns the scaled
// delta. The first call only arms the clock and returns 0.
func (c *Clock) Update() float64 {
	if c == nil {
		return 0
	}
	now := time.Now()
	if c.lastTick.IsZero() {
		c.lastTick = now
		return 0
	}
	dt := now.Sub(c.lastTick).Seconds()
	c.lastTick = now
	c.Step(dt)
	return c.delta
}

// Step advances the clock by a fixed unscaled dt in seconds. Fixed-step
// loops and tests drive this directly instead of Update.
func (c *Clock) Step(dt float64) {
	if c == nil {
		return
	}
	if dt < 0 {
		dt = 0
	}
	c.unscaledDelta = dt
	c.delta = dt * c.scale
	c.total += c.delta
	c.frames++
	c.recordFrame(dt)
	c.fireTimers(c.delta)
}

// Delta returns the scaled duration of the last frame in seconds.
func (c *Clock) Delta() float64 {
	if c == nil {
		return 0
	}
	return c.delta
}

// UnscaledDelta returns the raw duration of the last frame in seconds.
func (c *Clock) UnscaledDelta() float64 {
	if c == nil {
		return 0
	}
	return c.unscaledDelta
}

// Total returns the accumulated scaled time in seconds.
func (c *Clock) Total() float64 {
	if c == nil {
		return 0
	}
	return c.total
}

// Frames returns the number of steps taken.
func (c *Clock) Frames() uint64 {
	if c == nil {
		return 0
	}
	return c.frames
}

// Scale returns the current time scale.
func (c *Clock) Scale() float64 {
	if c == nil {
		return 0
	}
	return c.scale
}

// SetScale sets the time scale. Negative values clamp to 0; 0 freezes
// scaled time and every timer.
func (c *Clock) SetScale(scale float64) {
	if c == nil {
		return
	}
	if scale < 0 {
		scale = 0
	}
	c.scale = scale
}

// SetTargetFPS sets the frame rate used by Deviation. Non-positive rates
// are ignored.
func (c *Clock) SetTargetFPS(fps float64) {
	if c == nil || fps <= 0 {
		return
	}
	c.targetDelta = 1 / fps
}

// Deviation returns how far the last unscaled frame ran from the target
// frame time, in seconds. Always non-negative.
func (c *Clock) Deviation() float64 {
	if c == nil {
		return 0
	}
	d := c.unscaledDelta - c.targetDelta
	if d < 0 {
		d = -d
	}
	return d
}

// FPS returns the average frame rate over the sample window. The value
// refreshes every half second of unscaled time and reads 0 until the
// first refresh.
func (c *Clock) FPS() float64 {
	if c == nil {
		return 0
	}
	return c.fps
}

// After registers a one-shot timer that fires fn after d seconds of
// scaled time. A timer with the same name is replaced.
func (c *Clock) After(name string, d float64, fn TimerFunc) {
	c.addTimer(name, d, fn, false)
}

// Every registers a repeating timer that fires fn each d seconds of
// scaled time until cancelled. A timer with the same name is replaced.
// Repeating timers rearm by subtracting the period, so firing does not
// drift over long runs.
func (c *Clock) Every(name string, d float64, fn TimerFunc) {
	c.addTimer(name, d, fn, true)
}

func (c *Clock) addTimer(name string, d float64, fn TimerFunc, repeating bool) {
	if c == nil {
		return
	}
	if old, ok := c.byName[name]; ok {
		old.done = true
		delete(c.byName, name)
	}
	t := &timer{name: name, duration: d, repeating: repeating, fn: fn}
	c.timers = append(c.timers, t)
	c.byName[name] = t
}

// Cancel removes a timer. It reports whether the name was registered.
func (c *Clock) Cancel(name string) bool {
	if c == nil {
		return false
	}
	t, ok := c.byName[name]
	if !ok {
		return false
	}
	t.done = true
	delete(c.byName, name)
	return true
}

// Pause suspends a timer without losing its elapsed time.
func (c *Clock) Pause(name string) bool {
	if c == nil {
		return false
	}
	t, ok := c.byName[name]
	if !ok {
		return false
	}
	t.paused = true
	return true
}

// Resume restarts a paused timer.
func (c *Clock) Resume(name string) bool {
	if c == nil {
		return false
	}
	t, ok := c.byName[name]
	if !ok {
		return false
	}
	t.paused = false
	return true
}

// PauseAll suspends every timer.
func (c *Clock) PauseAll() {
	if c == nil {
		return
	}
	for _, t := range c.timers {
		t.paused = true
	}
}

// ResumeAll restarts every timer.
func (c *Clock) ResumeAll() {
	if c == nil {
		return
	}
	for _, t := range c.timers {
		t.paused = false
	}
}

// HasTimer reports whether a timer is registered under name.
func (c *Clock) HasTimer(name string) bool {
	if c == nil {
		return false
	}
	_, ok := c.byName[name]
	return ok
}

// Remaining returns the scaled seconds until the named timer fires next.
func (c *Clock) Remaining(name string) (float64, bool) {
	if c == nil {
		return 0, false
	}
	t, ok := c.byName[name]
	if !ok {
		return 0, false
	}
	r := t.duration - t.elapsed
	if r < 0 {
		r = 0
	}
	return r, true
}

func (c *Clock) recordFrame(dt float64) {
	if len(c.frameTimes) < fpsWindow {
		c.frameTimes = append(c.frameTimes, dt)
	} else {
		c.frameTimes[c.frameHead] = dt
		c.frameHead = (c.frameHead + 1) % fpsWindow
	}
	c.fpsTimer += dt
	if c.fpsTimer < fpsUpdateInterval {
		return
	}
	c.fpsTimer = 0
	var sum float64
	for _, ft := range c.frameTimes {
		sum += ft
	}
	if avg := sum / float64(len(c.frameTimes)); avg > 0 {
		c.fps = 1 / avg
	}
}

// fireTimers advances every live timer. Timers fire at most once per step;
// callbacks may register or cancel timers, and timers registered during
// dispatch first tick on the next step.
func (c *Clock) fireTimers(dt float64) {
	if len(c.timers) == 0 {
		return
	}
	snapshot := c.timers
	for _, t := range snapshot {
		if t.done || t.paused {
			continue
		}
		t.elapsed += dt
		if t.elapsed < t.duration {
			continue
		}
		if t.repeating {
			t.elapsed -= t.duration
		} else {
			t.done = true
			delete(c.byName, t.name)
		}
		if t.fn != nil {
			t.fn()
		}
	}
	alive := c.timers[:0]
	for _, t := range c.timers {
		if !t.done {
			alive = append(alive, t)
		}
	}
	c.timers = alive
}
