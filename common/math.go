package common

import "math"

// Point is an integer pair, used for quantized directions and wheel deltas.
type Point struct {
	X, Y int
}

func (p Point) IsZero() bool {
	return p.X == 0 && p.Y == 0
}

// Vec2 is a continuous 2D value such as an analog stick position.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Sign quantizes f into -1, 0 or 1 using a symmetric deadzone. Values must be
// strictly outside the deadzone to count.
func Sign(f, deadzone float64) int {
	switch {
	case f > deadzone:
		return 1
	case f < -deadzone:
		return -1
	default:
		return 0
	}
}
