package outline

// QuadBez is a quadratic Bézier segment.
type QuadBez struct {
	P0 Point
	P1 Point
	P2 Point
}

// IsInf reports whether any point of q is infinite.
func (q QuadBez) IsInf() bool {
	return q.P0.IsInf() || q.P1.IsInf() || q.P2.IsInf()
}

// IsNaN reports whether any coordinate of q is NaN.
func (q QuadBez) IsNaN() bool {
	return q.P0.IsNaN() || q.P1.IsNaN() || q.P2.IsNaN()
}

// Eval evaluates the curve at t ∈ [0, 1].
func (q QuadBez) Eval(t float64) Point {
	mt := 1.0 - t
	return Point{
		X: q.P0.X*(mt*mt) + (q.P1.X*(mt*2.0)+q.P2.X*t)*t,
		Y: q.P0.Y*(mt*mt) + (q.P1.Y*(mt*2.0)+q.P2.Y*t)*t,
	}
}

// Subdivide splits the curve in half using de Casteljau's algorithm.
func (q QuadBez) Subdivide() (QuadBez, QuadBez) {
	p12 := q.P0.Midpoint(q.P1)
	p23 := q.P1.Midpoint(q.P2)
	p123 := p12.Midpoint(p23)
	return QuadBez{q.P0, p12, p123}, QuadBez{p123, p23, q.P2}
}

// controlLength returns the length of the control polygon.
func (q QuadBez) controlLength() float64 {
	return q.P0.Distance(q.P1) + q.P1.Distance(q.P2)
}

// isStraight reports whether the control point lies strictly between the
// endpoints on the chord, in which case the curve is the chord itself.
func (q QuadBez) isStraight() bool {
	chord := q.P2.Sub(q.P0)
	k := chord.Hypot2()
	if k == 0 {
		return false
	}
	if d := q.P1.Sub(q.P0).Cross(chord); d*d > curveCollinearityEpsilon*k {
		return false
	}
	t := q.P1.Sub(q.P0).Dot(chord) / k
	return t > 0 && t < 1
}

// CubicBez is a cubic Bézier segment.
type CubicBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

func (c CubicBez) IsInf() bool {
	return c.P0.IsInf() || c.P1.IsInf() || c.P2.IsInf() || c.P3.IsInf()
}

func (c CubicBez) IsNaN() bool {
	return c.P0.IsNaN() || c.P1.IsNaN() || c.P2.IsNaN() || c.P3.IsNaN()
}

// Eval evaluates the curve at t ∈ [0, 1].
func (c CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := mt * mt * mt
	b := 3 * mt * mt * t
	cc := 3 * mt * t * t
	d := t * t * t
	return Point{
		X: c.P0.X*a + c.P1.X*b + c.P2.X*cc + c.P3.X*d,
		Y: c.P0.Y*a + c.P1.Y*b + c.P2.Y*cc + c.P3.Y*d,
	}
}

// Subdivide splits the curve in half using de Casteljau's algorithm.
func (c CubicBez) Subdivide() (CubicBez, CubicBez) {
	p12 := c.P0.Midpoint(c.P1)
	p23 := c.P1.Midpoint(c.P2)
	p34 := c.P2.Midpoint(c.P3)
	p123 := p12.Midpoint(p23)
	p234 := p23.Midpoint(p34)
	p1234 := p123.Midpoint(p234)
	return CubicBez{c.P0, p12, p123, p1234}, CubicBez{p1234, p234, p34, c.P3}
}

func (c CubicBez) Transform(aff Affine) CubicBez {
	return CubicBez{
		P0: c.P0.Transform(aff),
		P1: c.P1.Transform(aff),
		P2: c.P2.Transform(aff),
		P3: c.P3.Transform(aff),
	}
}

func (c CubicBez) controlLength() float64 {
	return c.P0.Distance(c.P1) + c.P1.Distance(c.P2) + c.P2.Distance(c.P3)
}

// isStraight reports whether both control points lie strictly between the
// endpoints on the chord.
func (c CubicBez) isStraight() bool {
	chord := c.P3.Sub(c.P0)
	k := chord.Hypot2()
	if k == 0 {
		return false
	}
	for _, p := range [2]Point{c.P1, c.P2} {
		v := p.Sub(c.P0)
		if d := v.Cross(chord); d*d > curveCollinearityEpsilon*k {
			return false
		}
		if t := v.Dot(chord) / k; t <= 0 || t >= 1 {
			return false
		}
	}
	return true
}
