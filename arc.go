package outline

import (
	"iter"
	"math"
)

// Segments shorter than this fraction of a quarter turn are merged into
// their neighbor.
const arcAngleEpsilon = 0.01

// Arc is an elliptical arc in center parameterization. Angles are in
// radians; positive angles turn the positive X axis towards positive Y.
type Arc struct {
	Center     Point
	Radii      Vec2
	StartAngle float64
	SweepAngle float64
	XRotation  float64
}

// ArcFromSVG converts an arc given by its endpoints, the way SVG path data
// specifies it, to center parameterization.
//
// Radii too small to span from and to are scaled up uniformly until they
// do. ok is false if that required growing them by more than a factor of
// √10, in which case callers usually draw a straight line instead. from
// and to must be distinct.
func ArcFromSVG(from Point, radii Vec2, xRotation float64, largeArc, sweep bool, to Point) (a Arc, ok bool) {
	rx, ry := math.Abs(radii.X), math.Abs(radii.Y)
	sin, cos := math.Sincos(xRotation)

	// Half the chord, in the ellipse's coordinate system.
	h := from.Sub(to).Mul(0.5)
	x1 := cos*h.X + sin*h.Y
	y1 := -sin*h.X + cos*h.Y

	ok = true
	prx, pry := rx*rx, ry*ry
	px1, py1 := x1*x1, y1*y1
	if check := px1/prx + py1/pry; check > 1 {
		s := math.Sqrt(check)
		rx, ry = rx*s, ry*s
		prx, pry = rx*rx, ry*ry
		if check > 10 {
			ok = false
		}
	}

	sign := 1.0
	if largeArc == sweep {
		sign = -1
	}
	sq := (prx*pry - prx*py1 - pry*px1) / (prx*py1 + pry*px1)
	coef := sign * math.Sqrt(max(sq, 0))
	cx1 := coef * (rx * y1 / ry)
	cy1 := coef * -(ry * x1 / rx)

	m := from.Midpoint(to)
	center := Pt(m.X+cos*cx1-sin*cy1, m.Y+sin*cx1+cos*cy1)

	u := Vec((x1-cx1)/rx, (y1-cy1)/ry)
	v := Vec((-x1-cx1)/rx, (-y1-cy1)/ry)
	sweepAngle := math.Atan2(u.Cross(v), u.Dot(v))
	if !sweep && sweepAngle > 0 {
		sweepAngle -= 2 * math.Pi
	} else if sweep && sweepAngle < 0 {
		sweepAngle += 2 * math.Pi
	}

	return Arc{
		Center:     center,
		Radii:      Vec(rx, ry),
		StartAngle: u.Angle(),
		SweepAngle: sweepAngle,
		XRotation:  xRotation,
	}, ok
}

// Cubics approximates the arc with cubic Béziers, each spanning at most
// about a quarter turn. Sweeps beyond a full turn are clamped to one.
func (a Arc) Cubics() iter.Seq[CubicBez] {
	return func(yield func(CubicBez) bool) {
		sweep := max(-2*math.Pi, min(2*math.Pi, a.SweepAngle))
		n := max(1, int(math.Ceil(math.Abs(sweep)/(math.Pi/2)-arcAngleEpsilon)))
		step := sweep / float64(n)
		arm := (4.0 / 3.0) * math.Tan(step/4)

		// The segments are built on the unit circle and mapped onto the
		// ellipse afterwards.
		aff := Scale(a.Radii.X, a.Radii.Y).
			ThenRotate(a.XRotation).
			ThenTranslate(Vec2(a.Center))

		angle0 := a.StartAngle
		p0 := Point(VecFromAngle(angle0))
		for range n {
			angle1 := angle0 + step
			p3 := Point(VecFromAngle(angle1))
			cb := CubicBez{
				P0: p0,
				P1: p0.Translate(VecFromAngle(angle0 + math.Pi/2).Mul(arm)),
				P2: p3.Translate(VecFromAngle(angle1 + math.Pi/2).Mul(-arm)),
				P3: p3,
			}
			if !yield(cb.Transform(aff)) {
				return
			}
			angle0 = angle1
			p0 = p3
		}
	}
}

// ArcPath is a vertex source producing an arc as a move-to its start point
// followed by [CmdCurve4] commands.
type ArcPath struct {
	pts []Point
	i   int
}

var _ VertexSource = (*ArcPath)(nil)

// NewArcPath returns a vertex source for a.
func NewArcPath(a Arc) *ArcPath {
	p := &ArcPath{}
	for cb := range a.Cubics() {
		if len(p.pts) == 0 {
			p.pts = append(p.pts, cb.P0)
		}
		p.pts = append(p.pts, cb.P1, cb.P2, cb.P3)
	}
	return p
}

func (p *ArcPath) Rewind(int) { p.i = 0 }

func (p *ArcPath) Vertex() (Point, Command) {
	if p.i >= len(p.pts) {
		return Point{}, CmdStop
	}
	pt := p.pts[p.i]
	p.i++
	if p.i == 1 {
		return pt, CmdMoveTo
	}
	return pt, CmdCurve4
}
