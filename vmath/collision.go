package vmath

// Overlap reports whether two axis-aligned boxes intersect
// Boxes are given as top-left corner plus size; touching edges do not overlap
// Symmetric in argument order
func Overlap(x1, y1, w1, h1, x2, y2, w2, h2 float64) bool {
	return max(x1, x2) < min(x1+w1, x2+w2) && max(y1, y2) < min(y1+h1, y2+h2)
}
