package outline

import (
	"fmt"
	"math"
)

const (
	// Two consecutive vertices closer than this are considered coincident.
	vertexDistEpsilon = 1e-10
	// Determinants at or below this magnitude mean the lines are parallel.
	intersectionEpsilon = 1e-30
)

// Point is a location in 2D space.
type Point struct {
	X float64
	Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (pt Point) Splat() (float64, float64) {
	return pt.X, pt.Y
}

func (pt Point) String() string {
	return fmt.Sprintf("(%g, %g)", pt.X, pt.Y)
}

func (pt Point) Translate(o Vec2) Point {
	return Point{
		X: pt.X + o.X,
		Y: pt.Y + o.Y,
	}
}

// Sub computes p−o.
func (pt Point) Sub(o Point) Vec2 {
	return Vec2{
		X: pt.X - o.X,
		Y: pt.Y - o.Y,
	}
}

// Lerp linearly interpolates between two points.
func (pt Point) Lerp(o Point, t float64) Point {
	return Point{
		X: pt.X + (o.X-pt.X)*t,
		Y: pt.Y + (o.Y-pt.Y)*t,
	}
}

// Midpoint returns the midpoint of two points.
func (pt Point) Midpoint(o Point) Point {
	return Point{
		X: 0.5 * (pt.X + o.X),
		Y: 0.5 * (pt.Y + o.Y),
	}
}

// Distance returns the euclidean distance between two points.
func (pt Point) Distance(o Point) float64 {
	return math.Sqrt(pt.DistanceSquared(o))
}

// DistanceSquared returns the squared euclidean distance between two points.
func (pt Point) DistanceSquared(o Point) float64 {
	x := pt.X - o.X
	y := pt.Y - o.Y
	return x*x + y*y
}

// IsInf reports whether at least one of x and y is infinite.
func (pt Point) IsInf() bool {
	return math.IsInf(pt.X, 0) || math.IsInf(pt.Y, 0)
}

// IsNaN reports whether at least one of x and y is NaN.
func (pt Point) IsNaN() bool {
	return math.IsNaN(pt.X) || math.IsNaN(pt.Y)
}

// Vec2 is a displacement in 2D space.
type Vec2 struct {
	X float64
	Y float64
}

// Vec returns the vector (x, y).
func Vec(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) Splat() (float64, float64) {
	return v.X, v.Y
}

func (v Vec2) String() string {
	return fmt.Sprintf("⟨%g, %g⟩", v.X, v.Y)
}

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Cross returns the z component of the cross product of v and o.
func (v Vec2) Cross(o Vec2) float64 {
	return v.X*o.Y - v.Y*o.X
}

// Hypot returns the magnitude of the vector.
func (v Vec2) Hypot() float64 {
	return math.Sqrt(v.Hypot2())
}

// Hypot2 returns the squared magnitude of the vector.
func (v Vec2) Hypot2() float64 {
	return v.Dot(v)
}

// Angle returns the angle of the vector in radians, in the range [-π, π].
func (v Vec2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// VecFromAngle returns the unit vector with the given angle.
func VecFromAngle(th float64) Vec2 {
	sin, cos := math.Sincos(th)
	return Vec2{X: cos, Y: sin}
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vec2) Mul(f float64) Vec2 {
	return Vec2{X: v.X * f, Y: v.Y * f}
}

func (v Vec2) Negate() Vec2 {
	return Vec2{X: -v.X, Y: -v.Y}
}

// Perp returns v rotated by 90° so that it points to the right of v in a
// y-up coordinate system.
func (v Vec2) Perp() Vec2 {
	return Vec2{X: v.Y, Y: -v.X}
}

// Distance returns the euclidean distance between a and b.
func Distance(a, b Point) float64 {
	return a.Distance(b)
}

// PointLocation returns twice the signed area of the triangle (p1, p2, p).
//
// The result is zero when p lies on the line through p1 and p2. In a y-up
// coordinate system it is negative when p is to the left of the directed
// line from p1 to p2, that is, when p1 → p2 → p turns counterclockwise.
func PointLocation(p1, p2, p Point) float64 {
	return (p.X-p2.X)*(p2.Y-p1.Y) - (p.Y-p2.Y)*(p2.X-p1.X)
}

// Intersection computes the intersection of the infinite lines through a, b
// and through c, d. It reports false if the lines are parallel or
// degenerate.
func Intersection(a, b, c, d Point) (Point, bool) {
	num := (a.Y-c.Y)*(d.X-c.X) - (a.X-c.X)*(d.Y-c.Y)
	den := (b.X-a.X)*(d.Y-c.Y) - (b.Y-a.Y)*(d.X-c.X)
	if math.Abs(den) <= intersectionEpsilon {
		return Point{}, false
	}
	r := num / den
	return Point{
		X: a.X + r*(b.X-a.X),
		Y: a.Y + r*(b.Y-a.Y),
	}, true
}
