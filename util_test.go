package outline

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

var pointComparer = cmp.Comparer(func(p1, p2 Point) bool {
	return p1.Distance(p2) <= 1e-9
})

var approxFloat = cmpopts.EquateApprox(0, 1e-9)

// vertex is a single command read from a VertexSource.
type vertex struct {
	Pt  Point
	Cmd Command
}

// drain reads path pathID of src until it stops.
func drain(src VertexSource, pathID int) []vertex {
	src.Rewind(pathID)
	var out []vertex
	for {
		pt, cmd := src.Vertex()
		if cmd.IsStop() {
			return out
		}
		if !cmd.IsVertex() {
			pt = Point{}
		}
		out = append(out, vertex{pt, cmd})
	}
}

// contours splits drained output into the point lists of its contours and
// the end-poly commands terminating them.
func contours(vs []vertex) ([][]Point, []Command) {
	var pts [][]Point
	var ends []Command
	for _, v := range vs {
		switch {
		case v.Cmd.IsMoveTo():
			pts = append(pts, []Point{v.Pt})
		case v.Cmd.IsVertex():
			pts[len(pts)-1] = append(pts[len(pts)-1], v.Pt)
		case v.Cmd.IsEndPoly():
			ends = append(ends, v.Cmd)
		}
	}
	return pts, ends
}

// signedArea returns the shoelace area of a polygon, positive for
// counterclockwise polygons in a y-up coordinate system.
func signedArea(pts []Point) float64 {
	var area float64
	for i, p1 := range pts {
		p2 := pts[(i+1)%len(pts)]
		area += p1.X*p2.Y - p1.Y*p2.X
	}
	return area / 2
}

func polyline(closed bool, pts ...Point) *PathStorage {
	ps := NewPathStorage()
	ps.AddPoly(pts, false, FlagNone)
	if closed {
		ps.ClosePolygon(FlagNone)
	}
	return ps
}

func approxEqual(x, y float64) bool {
	return math.Abs(x-y) < 1e-9
}
