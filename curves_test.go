package outline

import (
	"fmt"
	"math"
	"testing"
)

func curvePoints(src VertexSource) []Point {
	var out []Point
	for i, v := range drain(src, 0) {
		if i == 0 && v.Cmd != CmdMoveTo {
			panic(fmt.Sprintf("curve starts with %v", v.Cmd))
		}
		out = append(out, v.Pt)
	}
	return out
}

// maxDeviation returns the largest distance from any of pts to the curve
// described by eval, sampled densely.
func maxDeviation(pts []Point, eval func(float64) Point) float64 {
	const n = 10000
	samples := make([]Point, n+1)
	for i := range samples {
		samples[i] = eval(float64(i) / n)
	}
	var worst float64
	for _, pt := range pts {
		best := pt.Distance(samples[0])
		for _, s := range samples[1:] {
			best = min(best, pt.Distance(s))
		}
		worst = max(worst, best)
	}
	return worst
}

func TestStraightCurves(t *testing.T) {
	for _, method := range []CurveMethod{CurveDiv, CurveInc} {
		t.Run(method.String(), func(t *testing.T) {
			opts := DefaultCurveOpts.WithMethod(method)

			c3 := NewCurve3(opts)
			c3.Init(Pt(0, 0), Pt(1, 1), Pt(3, 3))
			diff(t, []Point{{0, 0}, {3, 3}}, curvePoints(c3))

			c4 := NewCurve4(opts)
			c4.Init(Pt(0, 0), Pt(3, 0), Pt(7, 0), Pt(10, 0))
			diff(t, []Point{{0, 0}, {10, 0}}, curvePoints(c4))
		})
	}
}

func TestCollinearOvershootingCurve(t *testing.T) {
	// The control point lies on the chord's line but beyond the end point,
	// so the curve doubles back on itself and must not be replaced by the
	// chord.
	c := NewCurve3(DefaultCurveOpts)
	c.Init(Pt(0, 0), Pt(20, 0), Pt(10, 0))
	pts := curvePoints(c)
	if len(pts) < 3 {
		t.Fatalf("got %d points, want at least 3", len(pts))
	}
	var maxX float64
	for _, pt := range pts {
		maxX = max(maxX, pt.X)
	}
	// The curve reaches x = 40/3 at t = 2/3.
	if maxX < 12 {
		t.Errorf("got maximum x of %v, want close to 13.33", maxX)
	}
}

func TestCubicAdaptive(t *testing.T) {
	cb := CubicBez{Pt(0, 0), Pt(0, 10), Pt(10, 10), Pt(10, 0)}
	c := NewCurve4(DefaultCurveOpts)
	c.Init(cb.P0, cb.P1, cb.P2, cb.P3)
	pts := curvePoints(c)

	if len(pts) < 4 {
		t.Fatalf("got %d points, want at least two interior points", len(pts))
	}
	diff(t, Pt(0, 0), pts[0])
	diff(t, Pt(10, 0), pts[len(pts)-1])
	for i := 1; i < len(pts); i++ {
		if d := pts[i].Distance(pts[i-1]); d <= 0 {
			t.Errorf("segment %d has length %v", i, d)
		}
	}
	if d := maxDeviation(pts, cb.Eval); d > 0.5 {
		t.Errorf("got deviation %v, want at most 0.5", d)
	}

	// A higher approximation scale produces more points.
	fine := NewCurve4(DefaultCurveOpts.WithApproximationScale(10))
	fine.Init(cb.P0, cb.P1, cb.P2, cb.P3)
	if n := len(curvePoints(fine)); n <= len(pts) {
		t.Errorf("got %d points at scale 10, want more than %d", n, len(pts))
	}

	// The angle criterion only ever adds points.
	angled := NewCurve4(DefaultCurveOpts.WithAngleTolerance(0.05))
	angled.Init(cb.P0, cb.P1, cb.P2, cb.P3)
	if n := len(curvePoints(angled)); n < len(pts) {
		t.Errorf("got %d points with angle tolerance, want at least %d", n, len(pts))
	}
}

func TestCuspLimit(t *testing.T) {
	// The control polygon folds back on itself at P1 while the whole curve
	// stays within the distance tolerance of its chord.
	p1, p2, p3, p4 := Pt(0, 0), Pt(20, 0.01), Pt(-10, 0.01), Pt(10, 0)
	opts := DefaultCurveOpts.WithAngleTolerance(0.1)

	c := NewCurve4(opts.WithCuspLimit(0.1))
	c.Init(p1, p2, p3, p4)
	diff(t, []Point{p1, p2, p4}, curvePoints(c))

	c = NewCurve4(opts)
	c.Init(p1, p2, p3, p4)
	pts := curvePoints(c)
	if len(pts) <= 3 {
		t.Fatalf("got %d points without cusp limit, want more than 3", len(pts))
	}
	for _, pt := range pts {
		if pt == p2 {
			t.Errorf("control point %v emitted without cusp limit", p2)
		}
	}
	diff(t, p4, pts[len(pts)-1])
}

func TestNonFiniteCurves(t *testing.T) {
	nan := math.NaN()
	inf := math.Inf(1)
	for _, method := range []CurveMethod{CurveDiv, CurveInc} {
		t.Run(method.String(), func(t *testing.T) {
			opts := DefaultCurveOpts.WithMethod(method)

			c3 := NewCurve3(opts)
			c3.Init(Pt(0, 0), Pt(nan, 5), Pt(10, 0))
			if got := len(curvePoints(c3)); got != 2 {
				t.Errorf("quadratic with NaN control point: got %d points, want 2", got)
			}

			c4 := NewCurve4(opts)
			c4.Init(Pt(0, 0), Pt(5, inf), Pt(5, 5), Pt(10, 0))
			if got := len(curvePoints(c4)); got != 2 {
				t.Errorf("cubic with infinite control point: got %d points, want 2", got)
			}
		})
	}
}

func TestQuadAdaptive(t *testing.T) {
	q := QuadBez{Pt(0, 0), Pt(50, 100), Pt(100, 0)}
	c := NewCurve3(DefaultCurveOpts)
	c.Init(q.P0, q.P1, q.P2)
	pts := curvePoints(c)
	if len(pts) < 3 {
		t.Fatalf("got %d points, want at least 3", len(pts))
	}
	diff(t, q.P0, pts[0])
	diff(t, q.P2, pts[len(pts)-1])
	if d := maxDeviation(pts, q.Eval); d > 0.5 {
		t.Errorf("got deviation %v, want at most 0.5", d)
	}
}

func TestIncrementalSteps(t *testing.T) {
	// Short curves use the minimum of four steps.
	q := QuadBez{Pt(0, 0), Pt(1, 1), Pt(2, 0)}
	var c Curve3Inc
	c.Init(q.P0, q.P1, q.P2)
	pts := curvePoints(&c)
	if len(pts) != 5 {
		t.Fatalf("got %d points, want 5", len(pts))
	}
	for i, pt := range pts {
		diff(t, q.Eval(float64(i)/4), pt, pointComparer)
	}

	// Longer curves get one step per four units of control polygon.
	cb := CubicBez{Pt(0, 0), Pt(0, 100), Pt(100, 100), Pt(100, 0)}
	var c4 Curve4Inc
	c4.Init(cb.P0, cb.P1, cb.P2, cb.P3)
	pts = curvePoints(&c4)
	if len(pts) != 76 {
		t.Fatalf("got %d points, want 76", len(pts))
	}
	for i, pt := range pts {
		want := cb.Eval(float64(i) / 75)
		if d := pt.Distance(want); d > 1e-9 {
			t.Errorf("point %d: got %v, want %v", i, pt, want)
		}
	}

	c4.SetApproximationScale(2)
	c4.Init(cb.P0, cb.P1, cb.P2, cb.P3)
	if n := len(curvePoints(&c4)); n != 151 {
		t.Errorf("got %d points at scale 2, want 151", n)
	}
}

func TestCurveRewind(t *testing.T) {
	for _, method := range []CurveMethod{CurveDiv, CurveInc} {
		t.Run(method.String(), func(t *testing.T) {
			c := NewCurve4(DefaultCurveOpts.WithMethod(method))
			c.Init(Pt(0, 0), Pt(0, 10), Pt(10, 10), Pt(10, 0))
			first := drain(c, 0)
			second := drain(c, 0)
			diff(t, first, second)
		})
	}
}

func TestCurveZeroValue(t *testing.T) {
	var inc Curve4Inc
	if _, cmd := inc.Vertex(); cmd != CmdStop {
		t.Errorf("got %v from uninitialized curve, want Stop", cmd)
	}
	var div Curve3Div
	if _, cmd := div.Vertex(); cmd != CmdStop {
		t.Errorf("got %v from uninitialized curve, want Stop", cmd)
	}
	c := NewCurve3(DefaultCurveOpts)
	c.Init(Pt(0, 0), Pt(5, 5), Pt(10, 0))
	c.Reset()
	if _, cmd := c.Vertex(); cmd != CmdStop {
		t.Errorf("got %v from reset curve, want Stop", cmd)
	}
}
