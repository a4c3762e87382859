package outline

import (
	"math"
	"slices"
	"testing"
)

func TestArcFromSVG(t *testing.T) {
	tests := []struct {
		name   string
		radii  Vec2
		ok     bool
		center Point
		r      float64
	}{
		{"exact", Vec(5, 5), true, Pt(5, 0), 5},
		{"negative radii", Vec(-5, -5), true, Pt(5, 0), 5},
		{"scaled up", Vec(2, 2), true, Pt(5, 0), 5},
		{"too small", Vec(1, 1), false, Pt(5, 0), 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, ok := ArcFromSVG(Pt(0, 0), tt.radii, 0, false, true, Pt(10, 0))
			if ok != tt.ok {
				t.Errorf("got ok = %t, want %t", ok, tt.ok)
			}
			diff(t, tt.center, a.Center, pointComparer)
			diff(t, Vec(tt.r, tt.r), a.Radii, approxFloat)
			diff(t, math.Pi, a.SweepAngle, approxFloat)
		})
	}
}

// onEllipse reports how far pt is from lying on a's ellipse, as the
// difference of the implicit equation from 1.
func onEllipse(a Arc, pt Point) float64 {
	q := Point(pt.Sub(a.Center)).Transform(Rotate(-a.XRotation))
	x, y := q.X/a.Radii.X, q.Y/a.Radii.Y
	return math.Abs(x*x + y*y - 1)
}

func TestArcFromSVGFlags(t *testing.T) {
	from, to := Pt(0, 0), Pt(8, 3)
	radii := Vec(10, 5)
	rot := math.Pi / 6
	for _, large := range []bool{false, true} {
		for _, sweep := range []bool{false, true} {
			a, ok := ArcFromSVG(from, radii, rot, large, sweep, to)
			if !ok {
				t.Fatalf("large=%t sweep=%t: radii rejected", large, sweep)
			}
			diff(t, radii, a.Radii, approxFloat)
			if (a.SweepAngle > 0) != sweep {
				t.Errorf("large=%t sweep=%t: got sweep angle %v", large, sweep, a.SweepAngle)
			}
			if (math.Abs(a.SweepAngle) > math.Pi) != large {
				t.Errorf("large=%t sweep=%t: got sweep angle %v", large, sweep, a.SweepAngle)
			}

			cubics := slices.Collect(a.Cubics())
			diff(t, from, cubics[0].P0, pointComparer)
			diff(t, to, cubics[len(cubics)-1].P3, pointComparer)
			for _, cb := range cubics {
				if d := onEllipse(a, cb.P3); d > 1e-9 {
					t.Errorf("large=%t sweep=%t: segment end %v off the ellipse by %v", large, sweep, cb.P3, d)
				}
			}
		}
	}
}

func TestArcCubics(t *testing.T) {
	a := Arc{Radii: Vec(1, 1), SweepAngle: 2 * math.Pi}
	cubics := slices.Collect(a.Cubics())
	if len(cubics) != 4 {
		t.Fatalf("got %d segments for a full circle, want 4", len(cubics))
	}
	for i, cb := range cubics {
		diff(t, Point(VecFromAngle(float64(i)*math.Pi/2)), cb.P0, pointComparer)
		if i > 0 {
			diff(t, cubics[i-1].P3, cb.P0, pointComparer)
		}
		if r := cb.Eval(0.5).Distance(Point{}); math.Abs(r-1) > 1e-3 {
			t.Errorf("segment %d: midpoint at radius %v", i, r)
		}
	}

	// Sweeps beyond a full turn are clamped.
	a.SweepAngle = -5 * math.Pi
	if n := len(slices.Collect(a.Cubics())); n != 4 {
		t.Errorf("got %d segments for an overlong sweep, want 4", n)
	}

	// A small sweep is a single segment.
	a.SweepAngle = 0.1
	if n := len(slices.Collect(a.Cubics())); n != 1 {
		t.Errorf("got %d segments for a small sweep, want 1", n)
	}

	for range a.Cubics() {
		break
	}
}

func TestArcPath(t *testing.T) {
	p := NewArcPath(Arc{Center: Pt(1, 1), Radii: Vec(2, 2), SweepAngle: math.Pi})
	vs := drain(p, 0)
	if len(vs) != 7 {
		t.Fatalf("got %d commands, want 7", len(vs))
	}
	diff(t, vertex{Pt(3, 1), CmdMoveTo}, vs[0], pointComparer)
	diff(t, vertex{Pt(-1, 1), CmdCurve4}, vs[6], pointComparer)
	for _, v := range vs[1:] {
		if v.Cmd != CmdCurve4 {
			t.Errorf("got %v, want curve4", v.Cmd)
		}
	}

	// Rewinding replays the same commands.
	diff(t, vs, drain(p, 0))
}
