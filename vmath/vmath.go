package vmath

import "math"

// Clamp limits v to [lo, hi]; lo wins when the range is inverted
func Clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// Direction returns the unit vector pointing from (fromX, fromY) toward (toX, toY)
// Derived from the angle between the two points; coincident points yield (1, 0)
func Direction(fromX, fromY, toX, toY float64) (dx, dy float64) {
	angle := math.Atan2(toY-fromY, toX-fromX)
	return math.Cos(angle), math.Sin(angle)
}
