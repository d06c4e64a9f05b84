package anim

import "image"

// Mode controls what happens when playback reaches the last frame.
type Mode int

const (
	// Once plays through and stops on the final frame.
	Once Mode = iota
	// Loop wraps back to the first frame.
	Loop
	// PingPong reverses direction at both ends.
	PingPong
)

// Frame is one step of an animation: a cell index into the sheet grid, how
// long to hold it in seconds, a draw offset, and an optional hook fired
// when playback enters the frame.
type Frame struct {
	Index    int
	Duration float64
	OffsetX  float64
	OffsetY  float64
	OnEnter  func()
}

// Animation is a named frame sequence cut from a sprite sheet laid out as
// a fixed grid.
type Animation struct {
	Name string
	Mode Mode

	Frames []Frame

	frameW, frameH int
	columns        int
}

// New returns an empty animation for a sheet with the given cell size and
// column count.
func New(name string, frameW, frameH, columns int) *Animation {
	if columns < 1 {
		columns = 1
	}
	return &Animation{Name: name, frameW: frameW, frameH: frameH, columns: columns}
}

// AddFrame appends a frame.
func (a *Animation) AddFrame(f Frame) {
	if a == nil {
		return
	}
	a.Frames = append(a.Frames, f)
}

// AddFrameRange appends cells start through end inclusive, each held for
// duration. A descending range plays the cells backwards.
func (a *Animation) AddFrameRange(start, end int, duration float64) {
	if a == nil {
		return
	}
	step := 1
	if end < start {
		step = -1
	}
	for i := start; ; i += step {
		a.AddFrame(Frame{Index: i, Duration: duration})
		if i == end {
			break
		}
	}
}

// FrameRect returns the sheet rectangle for a cell index, reading the grid
// left to right, top to bottom.
func (a *Animation) FrameRect(index int) image.Rectangle {
	if a == nil || index < 0 {
		return image.Rectangle{}
	}
	col := index % a.columns
	row := index / a.columns
	x := col * a.frameW
	y := row * a.frameH
	return image.Rect(x, y, x+a.frameW, y+a.frameH)
}

// Duration returns the total length of one forward pass in seconds.
func (a *Animation) Duration() float64 {
	if a == nil {
		return 0
	}
	var total float64
	for _, f := range a.Frames {
		total += f.Duration
	}
	return total
}
