package timing

// Easing selects an interpolation curve for tweens and transitions.
type Easing int

const (
	Linear Easing = iota
	EaseIn
	EaseOut
	EaseInOut
)

// Ease maps a normalized time through the curve. t is clamped to [0, 1]
// first, so callers can feed raw elapsed/duration ratios.
func Ease(e Easing, t float64) float64 {
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	switch e {
	case EaseIn:
		return t * t
	case EaseOut:
		return t * (2 - t)
	case EaseInOut:
		if t < 0.5 {
			return 2 * t * t
		}
		return -1 + (4-2*t)*t
	default:
		return t
	}
}
