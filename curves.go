package outline

import (
	"context"
	"log/slog"
	"math"
)

const (
	curveCollinearityEpsilon    = 1e-30
	curveAngleToleranceEpsilon  = 0.01
	curveRecursionLimit         = 32
	curveMinIncrementalSteps    = 4
	curveIncrementalStepDivisor = 0.25
)

// CurveMethod selects how curves are approximated by line segments.
type CurveMethod int

const (
	// Adaptive subdivision driven by distance, angle, and cusp tolerances.
	CurveDiv CurveMethod = iota
	// Fixed number of steps derived from the length of the control polygon,
	// evaluated with forward differences.
	CurveInc
)

func (m CurveMethod) String() string {
	switch m {
	case CurveDiv:
		return "CurveDiv"
	case CurveInc:
		return "CurveInc"
	default:
		return "InvalidCurveMethod"
	}
}

// CurveOpts configures curve flattening.
type CurveOpts struct {
	Method CurveMethod
	// ApproximationScale is the ratio between device and user units. Larger
	// values produce more segments. Non-positive values are treated as 1.
	ApproximationScale float64
	// AngleTolerance in radians. Values below 0.01 disable the angle
	// criterion, which is the default.
	AngleTolerance float64
	// CuspLimit is an angle in radians. Zero disables cusp handling.
	CuspLimit float64
}

var DefaultCurveOpts = CurveOpts{
	Method:             CurveDiv,
	ApproximationScale: 1,
}

func (o CurveOpts) WithMethod(m CurveMethod) CurveOpts         { o.Method = m; return o }
func (o CurveOpts) WithApproximationScale(s float64) CurveOpts { o.ApproximationScale = s; return o }
func (o CurveOpts) WithAngleTolerance(a float64) CurveOpts     { o.AngleTolerance = a; return o }
func (o CurveOpts) WithCuspLimit(a float64) CurveOpts          { o.CuspLimit = a; return o }

func normalizeScale(s float64) float64 {
	if !(s > 0) || math.IsInf(s, 0) {
		return 1
	}
	return s
}

// cuspThreshold converts a user-facing cusp limit into the angle threshold
// used by the subdivision.
func cuspThreshold(limit float64) float64 {
	if limit == 0 {
		return 0
	}
	return math.Pi - limit
}

// normalizeAngle folds an absolute angle difference into [0, π].
func normalizeAngle(da float64) float64 {
	if da >= math.Pi {
		return 2*math.Pi - da
	}
	return da
}

func logRecursionLimit() {
	l := Logger()
	if l.Enabled(context.Background(), slog.LevelDebug) {
		l.Debug("curve: recursion limit reached", slog.Int("limit", curveRecursionLimit))
	}
}

// incrementalSteps returns the number of forward-difference steps for a
// control polygon of the given length.
func incrementalSteps(length, scale float64) int {
	n := int(length * curveIncrementalStepDivisor * scale)
	if n < curveMinIncrementalSteps {
		n = curveMinIncrementalSteps
	}
	return n
}

// Curve3Inc flattens a quadratic Bézier into a fixed number of steps using
// forward differences.
//
// The zero value is ready to use with an approximation scale of 1 and
// produces no vertices until Init is called.
type Curve3Inc struct {
	scale    float64
	numSteps int
	step     int
	start    Point
	end      Point
	f        Point
	df       Vec2
	ddf      Vec2
	savedF   Point
	savedDF  Vec2
}

func (c *Curve3Inc) SetApproximationScale(s float64) { c.scale = s }
func (c *Curve3Inc) ApproximationScale() float64     { return normalizeScale(c.scale) }

// Reset discards the current curve.
func (c *Curve3Inc) Reset() {
	c.numSteps = 0
	c.step = -1
}

// Init sets up the curve from p1 through control point p2 to p3.
func (c *Curve3Inc) Init(p1, p2, p3 Point) {
	q := QuadBez{p1, p2, p3}
	c.start = p1
	c.end = p3
	if q.isStraight() || q.IsNaN() || q.IsInf() {
		c.numSteps = 1
	} else {
		c.numSteps = incrementalSteps(q.controlLength(), c.ApproximationScale())
	}

	step := 1.0 / float64(c.numSteps)
	step2 := step * step
	tmp := Vec2{
		X: (p1.X - p2.X*2 + p3.X) * step2,
		Y: (p1.Y - p2.Y*2 + p3.Y) * step2,
	}
	c.f = p1
	c.savedF = p1
	c.df = tmp.Add(p2.Sub(p1).Mul(2 * step))
	c.savedDF = c.df
	c.ddf = tmp.Mul(2)
	c.step = c.numSteps
}

func (c *Curve3Inc) Rewind(int) {
	if c.numSteps == 0 {
		c.step = -1
		return
	}
	c.step = c.numSteps
	c.f = c.savedF
	c.df = c.savedDF
}

func (c *Curve3Inc) Vertex() (Point, Command) {
	if c.step < 0 || c.numSteps == 0 {
		return Point{}, CmdStop
	}
	if c.step == c.numSteps {
		c.step--
		return c.start, CmdMoveTo
	}
	if c.step == 0 {
		c.step--
		return c.end, CmdLineTo
	}
	c.f = c.f.Translate(c.df)
	c.df = c.df.Add(c.ddf)
	c.step--
	return c.f, CmdLineTo
}

// Curve3Div flattens a quadratic Bézier by adaptive subdivision.
//
// The zero value is ready to use with an approximation scale of 1, no
// angle tolerance, and produces no vertices until Init is called.
type Curve3Div struct {
	scale            float64
	angleTolerance   float64
	distTolSquare    float64
	distTolManhattan float64
	points           []Point
	count            int
	limitHit         bool
}

func (c *Curve3Div) SetApproximationScale(s float64) { c.scale = s }
func (c *Curve3Div) ApproximationScale() float64     { return normalizeScale(c.scale) }
func (c *Curve3Div) SetAngleTolerance(a float64)     { c.angleTolerance = a }
func (c *Curve3Div) AngleTolerance() float64         { return c.angleTolerance }

// Reset discards the current curve.
func (c *Curve3Div) Reset() {
	c.points = c.points[:0]
	c.count = 0
}

// Points returns the flattened polyline, including both endpoints. The
// slice is only valid until the next call to Init or Reset.
func (c *Curve3Div) Points() []Point { return c.points }

// Init flattens the curve from p1 through control point p2 to p3.
func (c *Curve3Div) Init(p1, p2, p3 Point) {
	c.points = c.points[:0]
	c.count = 0
	tol := 0.5 / c.ApproximationScale()
	c.distTolSquare = tol * tol
	c.distTolManhattan = 4.0 / c.ApproximationScale()
	c.limitHit = false

	q := QuadBez{p1, p2, p3}
	c.points = append(c.points, p1)
	// Non-finite coordinates never satisfy the tolerances and would
	// subdivide all the way to the recursion limit.
	if !q.isStraight() && !q.IsNaN() && !q.IsInf() {
		c.recursive(q, 0)
	}
	c.points = append(c.points, p3)
	if c.limitHit {
		logRecursionLimit()
	}
}

func (c *Curve3Div) recursive(q QuadBez, level int) {
	left, right := q.Subdivide()
	mid := left.P2
	if level > curveRecursionLimit {
		c.limitHit = true
		c.points = append(c.points, mid)
		return
	}

	chord := q.P2.Sub(q.P0)
	d := math.Abs(q.P1.Sub(q.P2).Cross(chord))
	if d > curveCollinearityEpsilon {
		if d*d <= c.distTolSquare*chord.Hypot2() {
			if c.angleTolerance < curveAngleToleranceEpsilon {
				c.points = append(c.points, mid)
				return
			}
			da := normalizeAngle(math.Abs(q.P2.Sub(q.P1).Angle() - q.P1.Sub(q.P0).Angle()))
			if da < c.angleTolerance {
				c.points = append(c.points, mid)
				return
			}
		}
	} else {
		if math.Abs(q.P0.X+q.P2.X-q.P1.X-q.P1.X)+
			math.Abs(q.P0.Y+q.P2.Y-q.P1.Y-q.P1.Y) <= c.distTolManhattan {
			c.points = append(c.points, mid)
			return
		}
	}

	c.recursive(left, level+1)
	c.recursive(right, level+1)
}

func (c *Curve3Div) Rewind(int) { c.count = 0 }

func (c *Curve3Div) Vertex() (Point, Command) {
	if c.count >= len(c.points) {
		return Point{}, CmdStop
	}
	p := c.points[c.count]
	c.count++
	if c.count == 1 {
		return p, CmdMoveTo
	}
	return p, CmdLineTo
}

// Curve4Inc flattens a cubic Bézier into a fixed number of steps using
// forward differences.
type Curve4Inc struct {
	scale    float64
	numSteps int
	step     int
	start    Point
	end      Point
	f        Point
	df       Vec2
	ddf      Vec2
	dddf     Vec2
	savedF   Point
	savedDF  Vec2
	savedDDF Vec2
}

func (c *Curve4Inc) SetApproximationScale(s float64) { c.scale = s }
func (c *Curve4Inc) ApproximationScale() float64     { return normalizeScale(c.scale) }

// Reset discards the current curve.
func (c *Curve4Inc) Reset() {
	c.numSteps = 0
	c.step = -1
}

// Init sets up the curve from p1 through control points p2 and p3 to p4.
func (c *Curve4Inc) Init(p1, p2, p3, p4 Point) {
	cb := CubicBez{p1, p2, p3, p4}
	c.start = p1
	c.end = p4
	if cb.isStraight() || cb.IsNaN() || cb.IsInf() {
		c.numSteps = 1
	} else {
		c.numSteps = incrementalSteps(cb.controlLength(), c.ApproximationScale())
	}

	step := 1.0 / float64(c.numSteps)
	step2 := step * step
	step3 := step2 * step
	pre1 := 3.0 * step
	pre2 := 3.0 * step2
	pre4 := 6.0 * step2
	pre5 := 6.0 * step3

	tmp1 := Vec2{
		X: p1.X - p2.X*2 + p3.X,
		Y: p1.Y - p2.Y*2 + p3.Y,
	}
	tmp2 := Vec2{
		X: (p2.X-p3.X)*3 - p1.X + p4.X,
		Y: (p2.Y-p3.Y)*3 - p1.Y + p4.Y,
	}

	c.f = p1
	c.savedF = p1
	c.df = p2.Sub(p1).Mul(pre1).Add(tmp1.Mul(pre2)).Add(tmp2.Mul(step3))
	c.savedDF = c.df
	c.ddf = tmp1.Mul(pre4).Add(tmp2.Mul(pre5))
	c.savedDDF = c.ddf
	c.dddf = tmp2.Mul(pre5)
	c.step = c.numSteps
}

func (c *Curve4Inc) Rewind(int) {
	if c.numSteps == 0 {
		c.step = -1
		return
	}
	c.step = c.numSteps
	c.f = c.savedF
	c.df = c.savedDF
	c.ddf = c.savedDDF
}

func (c *Curve4Inc) Vertex() (Point, Command) {
	if c.step < 0 || c.numSteps == 0 {
		return Point{}, CmdStop
	}
	if c.step == c.numSteps {
		c.step--
		return c.start, CmdMoveTo
	}
	if c.step == 0 {
		c.step--
		return c.end, CmdLineTo
	}
	c.f = c.f.Translate(c.df)
	c.df = c.df.Add(c.ddf)
	c.ddf = c.ddf.Add(c.dddf)
	c.step--
	return c.f, CmdLineTo
}

// Curve4Div flattens a cubic Bézier by adaptive subdivision.
type Curve4Div struct {
	scale            float64
	angleTolerance   float64
	cuspLimit        float64
	distTolSquare    float64
	distTolManhattan float64
	points           []Point
	count            int
	limitHit         bool
}

func (c *Curve4Div) SetApproximationScale(s float64) { c.scale = s }
func (c *Curve4Div) ApproximationScale() float64     { return normalizeScale(c.scale) }
func (c *Curve4Div) SetAngleTolerance(a float64)     { c.angleTolerance = a }
func (c *Curve4Div) AngleTolerance() float64         { return c.angleTolerance }

// SetCuspLimit sets the cusp limit as an angle in radians. Zero disables
// cusp handling.
func (c *Curve4Div) SetCuspLimit(a float64) { c.cuspLimit = cuspThreshold(a) }

// CuspLimit returns the angle set with SetCuspLimit.
func (c *Curve4Div) CuspLimit() float64 {
	if c.cuspLimit == 0 {
		return 0
	}
	return math.Pi - c.cuspLimit
}

// Reset discards the current curve.
func (c *Curve4Div) Reset() {
	c.points = c.points[:0]
	c.count = 0
}

// Points returns the flattened polyline, including both endpoints. The
// slice is only valid until the next call to Init or Reset.
func (c *Curve4Div) Points() []Point { return c.points }

// Init flattens the curve from p1 through control points p2 and p3 to p4.
func (c *Curve4Div) Init(p1, p2, p3, p4 Point) {
	c.points = c.points[:0]
	c.count = 0
	tol := 0.5 / c.ApproximationScale()
	c.distTolSquare = tol * tol
	c.distTolManhattan = 4.0 / c.ApproximationScale()
	c.limitHit = false

	cb := CubicBez{p1, p2, p3, p4}
	c.points = append(c.points, p1)
	if !cb.isStraight() && !cb.IsNaN() && !cb.IsInf() {
		c.recursive(cb, 0)
	}
	c.points = append(c.points, p4)
	if c.limitHit {
		logRecursionLimit()
	}
}

func (c *Curve4Div) recursive(cb CubicBez, level int) {
	left, right := cb.Subdivide()
	if level > curveRecursionLimit {
		c.limitHit = true
		c.points = append(c.points, left.P3)
		return
	}

	p1, p2, p3, p4 := cb.P0, cb.P1, cb.P2, cb.P3
	mid23 := p2.Midpoint(p3)
	chord := p4.Sub(p1)
	d2 := math.Abs(p2.Sub(p4).Cross(chord))
	d3 := math.Abs(p3.Sub(p4).Cross(chord))

	var kind int
	if d2 > curveCollinearityEpsilon {
		kind |= 2
	}
	if d3 > curveCollinearityEpsilon {
		kind |= 1
	}

	switch kind {
	case 0:
		// All collinear, or p1 == p4.
		if math.Abs(p1.X+p3.X-p2.X-p2.X)+
			math.Abs(p1.Y+p3.Y-p2.Y-p2.Y)+
			math.Abs(p2.X+p4.X-p3.X-p3.X)+
			math.Abs(p2.Y+p4.Y-p3.Y-p3.Y) <= c.distTolManhattan {
			c.points = append(c.points, left.P3)
			return
		}

	case 1:
		// p1, p2, p4 are collinear, p3 is significant.
		if d3*d3 <= c.distTolSquare*chord.Hypot2() {
			if c.angleTolerance < curveAngleToleranceEpsilon {
				c.points = append(c.points, mid23)
				return
			}
			da1 := normalizeAngle(math.Abs(p4.Sub(p3).Angle() - p3.Sub(p2).Angle()))
			if da1 < c.angleTolerance {
				c.points = append(c.points, p2, p3)
				return
			}
			if c.cuspLimit != 0 && da1 > c.cuspLimit {
				c.points = append(c.points, p3)
				return
			}
		}

	case 2:
		// p1, p3, p4 are collinear, p2 is significant.
		if d2*d2 <= c.distTolSquare*chord.Hypot2() {
			if c.angleTolerance < curveAngleToleranceEpsilon {
				c.points = append(c.points, mid23)
				return
			}
			da1 := normalizeAngle(math.Abs(p3.Sub(p2).Angle() - p2.Sub(p1).Angle()))
			if da1 < c.angleTolerance {
				c.points = append(c.points, p2, p3)
				return
			}
			if c.cuspLimit != 0 && da1 > c.cuspLimit {
				c.points = append(c.points, p2)
				return
			}
		}

	case 3:
		if (d2+d3)*(d2+d3) <= c.distTolSquare*chord.Hypot2() {
			if c.angleTolerance < curveAngleToleranceEpsilon {
				c.points = append(c.points, mid23)
				return
			}
			a23 := p3.Sub(p2).Angle()
			da1 := normalizeAngle(math.Abs(a23 - p2.Sub(p1).Angle()))
			da2 := normalizeAngle(math.Abs(p4.Sub(p3).Angle() - a23))
			if da1+da2 < c.angleTolerance {
				c.points = append(c.points, mid23)
				return
			}
			if c.cuspLimit != 0 {
				if da1 > c.cuspLimit {
					c.points = append(c.points, p2)
					return
				}
				if da2 > c.cuspLimit {
					c.points = append(c.points, p3)
					return
				}
			}
		}
	}

	c.recursive(left, level+1)
	c.recursive(right, level+1)
}

func (c *Curve4Div) Rewind(int) { c.count = 0 }

func (c *Curve4Div) Vertex() (Point, Command) {
	if c.count >= len(c.points) {
		return Point{}, CmdStop
	}
	p := c.points[c.count]
	c.count++
	if c.count == 1 {
		return p, CmdMoveTo
	}
	return p, CmdLineTo
}

// Curve3 flattens a quadratic Bézier with a selectable method.
type Curve3 struct {
	method CurveMethod
	inc    Curve3Inc
	div    Curve3Div
}

// NewCurve3 returns a flattener configured by opts.
func NewCurve3(opts CurveOpts) *Curve3 {
	c := &Curve3{}
	c.SetOpts(opts)
	return c
}

// SetOpts applies opts. It takes effect on the next call to Init.
func (c *Curve3) SetOpts(opts CurveOpts) {
	c.method = opts.Method
	c.SetApproximationScale(opts.ApproximationScale)
	c.div.SetAngleTolerance(opts.AngleTolerance)
}

func (c *Curve3) SetMethod(m CurveMethod) { c.method = m }
func (c *Curve3) Method() CurveMethod     { return c.method }

func (c *Curve3) SetApproximationScale(s float64) {
	c.inc.SetApproximationScale(s)
	c.div.SetApproximationScale(s)
}

func (c *Curve3) ApproximationScale() float64 { return c.inc.ApproximationScale() }
func (c *Curve3) SetAngleTolerance(a float64) { c.div.SetAngleTolerance(a) }

func (c *Curve3) Reset() {
	c.inc.Reset()
	c.div.Reset()
}

func (c *Curve3) Init(p1, p2, p3 Point) {
	if c.method == CurveInc {
		c.inc.Init(p1, p2, p3)
	} else {
		c.div.Init(p1, p2, p3)
	}
}

func (c *Curve3) Rewind(pathID int) {
	if c.method == CurveInc {
		c.inc.Rewind(pathID)
	} else {
		c.div.Rewind(pathID)
	}
}

func (c *Curve3) Vertex() (Point, Command) {
	if c.method == CurveInc {
		return c.inc.Vertex()
	}
	return c.div.Vertex()
}

// Curve4 flattens a cubic Bézier with a selectable method.
type Curve4 struct {
	method CurveMethod
	inc    Curve4Inc
	div    Curve4Div
}

// NewCurve4 returns a flattener configured by opts.
func NewCurve4(opts CurveOpts) *Curve4 {
	c := &Curve4{}
	c.SetOpts(opts)
	return c
}

// SetOpts applies opts. It takes effect on the next call to Init.
func (c *Curve4) SetOpts(opts CurveOpts) {
	c.method = opts.Method
	c.SetApproximationScale(opts.ApproximationScale)
	c.div.SetAngleTolerance(opts.AngleTolerance)
	c.div.SetCuspLimit(opts.CuspLimit)
}

func (c *Curve4) SetMethod(m CurveMethod) { c.method = m }
func (c *Curve4) Method() CurveMethod     { return c.method }

func (c *Curve4) SetApproximationScale(s float64) {
	c.inc.SetApproximationScale(s)
	c.div.SetApproximationScale(s)
}

func (c *Curve4) ApproximationScale() float64 { return c.inc.ApproximationScale() }
func (c *Curve4) SetAngleTolerance(a float64) { c.div.SetAngleTolerance(a) }
func (c *Curve4) SetCuspLimit(a float64)      { c.div.SetCuspLimit(a) }

func (c *Curve4) Reset() {
	c.inc.Reset()
	c.div.Reset()
}

func (c *Curve4) Init(p1, p2, p3, p4 Point) {
	if c.method == CurveInc {
		c.inc.Init(p1, p2, p3, p4)
	} else {
		c.div.Init(p1, p2, p3, p4)
	}
}

func (c *Curve4) Rewind(pathID int) {
	if c.method == CurveInc {
		c.inc.Rewind(pathID)
	} else {
		c.div.Rewind(pathID)
	}
}

func (c *Curve4) Vertex() (Point, Command) {
	if c.method == CurveInc {
		return c.inc.Vertex()
	}
	return c.div.Vertex()
}
