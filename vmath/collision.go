package vmath

// Square is an axis-aligned square anchored at its top-left corner
type Square struct {
	X, Y int
	Size int
}

// ContainsPoint reports whether (px, py) lies inside s, inclusive on all four edges
func (s Square) ContainsPoint(px, py int) bool {
	return px >= s.X && px <= s.X+s.Size &&
		py >= s.Y && py <= s.Y+s.Size
}

// Center returns the center of a box of the given size anchored at (x, y)
func Center(x, y, size int) (cx, cy int) {
	return x + size/2, y + size/2
}
