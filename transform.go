package outline

import (
	"math"
)

// Affine describes an affine transform via coefficients.
//
// If the coefficients are (a, b, c, d, e, f), then the resulting
// transformation represents this augmented matrix:
//
//	| a c e |
//	| b d f |
//	| 0 0 1 |
//
// The idea is that (A * B) * v == A * (B * v).
type Affine struct {
	N0, N1, N2, N3, N4, N5 float64
}

// Identity is the identity transform.
var Identity = Affine{1, 0, 0, 1, 0, 0}

// Scale creates an affine transform representing non-uniform scaling with
// different scale values for x and y.
func Scale(x, y float64) Affine {
	return Affine{x, 0, 0, y, 0, 0}
}

// Translate creates an affine transform representing translation.
func Translate(v Vec2) Affine {
	return Affine{1, 0, 0, 1, v.X, v.Y}
}

// Rotate creates an affine transform representing rotation by th radians.
// A positive angle rotates the positive X direction into positive Y.
func Rotate(th float64) Affine {
	sin, cos := math.Sincos(th)
	return Affine{cos, sin, -sin, cos, 0, 0}
}

func (aff Affine) Mul(o Affine) Affine {
	return Affine{
		aff.N0*o.N0 + aff.N2*o.N1,
		aff.N1*o.N0 + aff.N3*o.N1,
		aff.N0*o.N2 + aff.N2*o.N3,
		aff.N1*o.N2 + aff.N3*o.N3,
		aff.N0*o.N4 + aff.N2*o.N5 + aff.N4,
		aff.N1*o.N4 + aff.N3*o.N5 + aff.N5,
	}
}

// ThenRotate creates aff followed by a rotation of th.
func (aff Affine) ThenRotate(th float64) Affine {
	return Rotate(th).Mul(aff)
}

// ThenScale creates aff followed by a scale of (x, y).
func (aff Affine) ThenScale(x, y float64) Affine {
	return Scale(x, y).Mul(aff)
}

// ThenTranslate creates aff followed by a translation of v.
func (aff Affine) ThenTranslate(v Vec2) Affine {
	aff.N4 += v.X
	aff.N5 += v.Y
	return aff
}

// Determinant computes the determinant.
func (aff Affine) Determinant() float64 {
	return aff.N0*aff.N3 - aff.N1*aff.N2
}

// Invert computes the inverse transform.
//
// Produces NaN values when the determinant is zero.
func (aff Affine) Invert() Affine {
	invDet := 1 / aff.Determinant()
	return Affine{
		+invDet * aff.N3,
		-invDet * aff.N1,
		-invDet * aff.N2,
		+invDet * aff.N0,
		+invDet * (aff.N2*aff.N5 - aff.N3*aff.N4),
		+invDet * (aff.N1*aff.N4 - aff.N0*aff.N5),
	}
}

// ApproximationScale returns the average linear scale of the transform,
// the length a diagonal unit vector is mapped to. Geometry generated in
// user space and drawn through aff should use it as its approximation
// scale.
func (aff Affine) ApproximationScale() float64 {
	x := math.Sqrt2 / 2 * (aff.N0 + aff.N2)
	y := math.Sqrt2 / 2 * (aff.N1 + aff.N3)
	return math.Sqrt(x*x + y*y)
}

func (pt Point) Transform(aff Affine) Point {
	return Point{
		X: aff.N0*pt.X + aff.N2*pt.Y + aff.N4,
		Y: aff.N1*pt.X + aff.N3*pt.Y + aff.N5,
	}
}

// ConvTransform wraps a vertex source and transforms the points of all
// vertex commands.
type ConvTransform struct {
	source VertexSource
	aff    Affine
}

var _ VertexSource = (*ConvTransform)(nil)

func NewConvTransform(src VertexSource, aff Affine) *ConvTransform {
	return &ConvTransform{source: src, aff: aff}
}

func (c *ConvTransform) Attach(src VertexSource) { c.source = src }
func (c *ConvTransform) SetTransform(aff Affine) { c.aff = aff }
func (c *ConvTransform) Transform() Affine       { return c.aff }
func (c *ConvTransform) Rewind(pathID int)       { c.source.Rewind(pathID) }

func (c *ConvTransform) Vertex() (Point, Command) {
	pt, cmd := c.source.Vertex()
	if cmd.IsVertex() {
		pt = pt.Transform(c.aff)
	}
	return pt, cmd
}
