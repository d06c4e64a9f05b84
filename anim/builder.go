package anim

// Builder assembles an Animation without the caller juggling Frame
// literals:
//
//	walk := anim.NewBuilder("walk").
//		Grid(32, 32, 8).
//		Range(0, 5, 0.1).
//		Mode(anim.Loop).
//		Build()
type Builder struct {
	name    string
	frameW  int
	frameH  int
	columns int
	mode    Mode
	frames  []Frame
}

// NewBuilder starts a builder for a named animation.
func NewBuilder(name string) *Builder {
	return &Builder{name: name, columns: 1}
}

// Grid sets the sheet cell size and column count.
func (b *Builder) Grid(frameW, frameH, columns int) *Builder {
	b.frameW = frameW
	b.frameH = frameH
	if columns < 1 {
		columns = 1
	}
	b.columns = columns
	return b
}

// Mode sets the playback mode.
func (b *Builder) Mode(m Mode) *Builder {
	b.mode = m
	return b
}

// Frame appends a single cell held for duration.
func (b *Builder) Frame(index int, duration float64) *Builder {
	b.frames = append(b.frames, Frame{Index: index, Duration: duration})
	return b
}

// Range appends cells start through end inclusive, each held for duration.
// A descending range plays backwards.
func (b *Builder) Range(start, end int, duration float64) *Builder {
	step := 1
	if end < start {
		step = -1
	}
	for i := start; ; i += step {
		b.frames = append(b.frames, Frame{Index: i, Duration: duration})
		if i == end {
			break
		}
	}
	return b
}

// Offset sets the draw offset of the most recently added frame.
func (b *Builder) Offset(x, y float64) *Builder {
	if len(b.frames) > 0 {
		b.frames[len(b.frames)-1].OffsetX = x
		b.frames[len(b.frames)-1].OffsetY = y
	}
	return b
}

// Hook attaches an on-enter hook to the most recently added frame.
func (b *Builder) Hook(fn func()) *Builder {
	if len(b.frames) > 0 {
		b.frames[len(b.frames)-1].OnEnter = fn
	}
	return b
}

// Build returns the finished animation. The builder can keep being used;
// later calls do not affect animations already built.
func (b *Builder) Build() *Animation {
	a := New(b.name, b.frameW, b.frameH, b.columns)
	a.Mode = b.mode
	a.Frames = append([]Frame(nil), b.frames...)
	return a
}
