package outline

// Rect is an axis-aligned rectangle.
type Rect struct {
	X0, Y0 float64
	X1, Y1 float64
}

// NewRectFromPoints returns a rectangle with the extents of p0 and p1, ensuring that
// width and height are non-negative.
func NewRectFromPoints(p0, p1 Point) Rect {
	return Rect{
		X0: min(p0.X, p1.X),
		Y0: min(p0.Y, p1.Y),
		X1: max(p0.X, p1.X),
		Y1: max(p0.Y, p1.Y),
	}
}

// Width returns the rectangle's width, defined as X1 − X0.
func (r Rect) Width() float64 {
	return r.X1 - r.X0
}

// Height returns the rectangle's height, defined as Y1 − Y0.
func (r Rect) Height() float64 {
	return r.Y1 - r.Y0
}

// UnionPoint computes the union with one point.
func (r Rect) UnionPoint(pt Point) Rect {
	return Rect{
		X0: min(r.X0, pt.X),
		Y0: min(r.Y0, pt.Y),
		X1: max(r.X1, pt.X),
		Y1: max(r.Y1, pt.Y),
	}
}

// BoundingRect computes the bounding box of all vertices of path pathID of
// src. It reports false if the path has no vertices.
func BoundingRect(src VertexSource, pathID int) (Rect, bool) {
	src.Rewind(pathID)
	var r Rect
	first := true
	for {
		pt, cmd := src.Vertex()
		if cmd.IsStop() {
			break
		}
		if !cmd.IsVertex() {
			continue
		}
		if first {
			r = NewRectFromPoints(pt, pt)
			first = false
		} else {
			r = r.UnionPoint(pt)
		}
	}
	return r, !first
}
