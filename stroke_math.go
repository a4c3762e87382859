package outline

import (
	"math"
)

// arcStep returns the angular step for approximating an arc of the given
// radius so that the chord deviates from the arc by at most 0.125 device
// units.
func arcStep(radius, approxScale float64) float64 {
	return math.Acos(radius/(radius+0.125/approxScale)) * 2
}

// StrokeArc appends an arc around center from center+d1 to center+d2 to
// out. The arc turns the short way around. Both offsets should have a
// length of width; intermediate points lie exactly at distance width from
// center.
func StrokeArc(out VertexConsumer, center Point, d1, d2 Vec2, width, approxScale float64) {
	a1 := d1.Angle()
	a2 := d2.Angle()
	da := a1 - a2
	ccw := da > 0 && da < math.Pi

	width = math.Abs(width)
	da = arcStep(width, normalizeScale(approxScale))

	out.Add(center.Translate(d1))
	if !ccw {
		if a1 > a2 {
			a2 += 2 * math.Pi
		}
		a2 -= da / 4
		a1 += da
		for a1 < a2 {
			out.Add(center.Translate(VecFromAngle(a1).Mul(width)))
			a1 += da
		}
	} else {
		if a1 < a2 {
			a2 -= 2 * math.Pi
		}
		a2 += da / 4
		a1 -= da
		for a1 > a2 {
			out.Add(center.Translate(VecFromAngle(a1).Mul(width)))
			a1 -= da
		}
	}
	out.Add(center.Translate(d2))
}

// StrokeMiter appends a miter join at v1 to out. The segment v0→v1 is
// offset by n1, the segment v1→v2 by n2. If the miter tip lies farther than
// width·miterLimit from v1, join decides the fallback: MiterJoinRevert
// bevels, MiterJoinRound emits an arc, and anything else clips the miter.
func StrokeMiter(
	out VertexConsumer,
	v0, v1, v2 Point,
	n1, n2 Vec2,
	width float64,
	join LineJoin,
	miterLimit float64,
	approxScale float64,
) {
	exceeded := true
	p1 := v1.Translate(n1)
	p2 := v1.Translate(n2)

	if xi, ok := Intersection(v0.Translate(n1), p1, p2, v2.Translate(n2)); ok {
		if v1.Distance(xi) <= width*miterLimit {
			out.Add(xi)
			exceeded = false
		}
	} else if (n1.Cross(p1.Sub(v0)) < 0) != (n1.Cross(p1.Sub(v2)) < 0) {
		// The offset lines are parallel and the path continues straight
		// ahead rather than turning back on itself.
		out.Add(p1)
		exceeded = false
	}

	if !exceeded {
		return
	}
	switch join {
	case MiterJoinRevert:
		out.Add(p1)
		out.Add(p2)
	case MiterJoinRound:
		StrokeArc(out, v1, n1, n2, width, approxScale)
	default:
		out.Add(p1.Translate(Vec(-n1.Y, n1.X).Mul(miterLimit)))
		out.Add(p2.Translate(Vec(n2.Y, -n2.X).Mul(miterLimit)))
	}
}

// StrokeCap replaces the contents of out with the cap at v0 of the segment
// v0→v1 of the given length.
func StrokeCap(out VertexConsumer, v0, v1 Point, length float64, style Stroke) {
	out.RemoveAll()
	width := style.halfWidth()
	dir := v1.Sub(v0).Mul(1 / length)
	n := dir.Perp().Mul(width)

	if style.Cap != RoundCap {
		var ext Vec2
		if style.Cap == SquareCap {
			ext = dir.Mul(width)
		}
		out.Add(v0.Translate(n.Negate()).Translate(ext.Negate()))
		out.Add(v0.Translate(n).Translate(ext.Negate()))
		return
	}

	a1 := n.Negate().Angle()
	a2 := a1 + math.Pi
	da := arcStep(width, normalizeScale(style.ApproximationScale))
	out.Add(v0.Translate(n.Negate()))
	a1 += da
	a2 -= da / 4
	for a1 < a2 {
		out.Add(v0.Translate(VecFromAngle(a1).Mul(width)))
		a1 += da
	}
	out.Add(v0.Translate(n))
}

// StrokeJoin replaces the contents of out with the join at v1 between the
// segments v0→v1 of length len1 and v1→v2 of length len2. Corners turning
// away from the offset side use style.InnerJoin, all others style.Join.
func StrokeJoin(out VertexConsumer, v0, v1, v2 Point, len1, len2 float64, style Stroke) {
	width := style.halfWidth()
	n1 := v1.Sub(v0).Perp().Mul(width / len1)
	n2 := v2.Sub(v1).Perp().Mul(width / len2)
	scale := normalizeScale(style.ApproximationScale)

	out.RemoveAll()

	if PointLocation(v0, v1, v2) > 0 {
		switch style.InnerJoin {
		case InnerMiter:
			StrokeMiter(out, v0, v1, v2, n1, n2, width, MiterJoinRevert, style.InnerMiterLimit, 1.0)
		case InnerJag, InnerRound:
			d := n1.Sub(n2).Hypot2()
			if d < len1*len1 && d < len2*len2 {
				StrokeMiter(out, v0, v1, v2, n1, n2, width, MiterJoinRevert, style.InnerMiterLimit, 1.0)
				break
			}
			out.Add(v1.Translate(n1))
			out.Add(v1)
			if style.InnerJoin == InnerRound {
				StrokeArc(out, v1, n2, n1, width, scale)
				out.Add(v1)
			}
			out.Add(v1.Translate(n2))
		default:
			out.Add(v1.Translate(n1))
			out.Add(v1.Translate(n2))
		}
		return
	}

	switch style.Join {
	case MiterJoin, MiterJoinRevert, MiterJoinRound:
		StrokeMiter(out, v0, v1, v2, n1, n2, width, style.Join, style.MiterLimit, scale)
	case RoundJoin:
		StrokeArc(out, v1, n1, n2, width, scale)
	default:
		out.Add(v1.Translate(n1))
		out.Add(v1.Translate(n2))
	}
}
