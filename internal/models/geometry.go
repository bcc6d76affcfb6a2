package models

// Point is a pointer position in screen space
type Point struct {
	X float64
	Y float64
}

// Rect is the on-screen bounding box of a rendered column
type Rect struct {
	Left   float64
	Right  float64
	Top    float64
	Bottom float64
}

// ContainsX reports whether x lies within the horizontal span of r, edges included
func (r Rect) ContainsX(x float64) bool {
	return r.Left <= x && x <= r.Right
}

// Width returns the horizontal extent of r
func (r Rect) Width() float64 {
	return r.Right - r.Left
}
