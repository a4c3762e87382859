package outline

import (
	"iter"
	"math"
)

type pathVertex struct {
	pt  Point
	cmd Command
}

// PathStorage is a growable container of path commands. It implements
// [VertexSource]: Rewind takes the index of the first command to read,
// as returned by StartNewPath.
//
// Curves are stored as their control points; a quadratic Bézier is two
// consecutive [CmdCurve3] vertices and a cubic one is three consecutive
// [CmdCurve4] vertices, following the vertex that starts the curve.
type PathStorage struct {
	vertices []pathVertex
	iter     int
}

var _ VertexSource = (*PathStorage)(nil)

// NewPathStorage returns an empty path storage.
func NewPathStorage() *PathStorage {
	return &PathStorage{}
}

// Len returns the number of stored commands.
func (ps *PathStorage) Len() int { return len(ps.vertices) }

// RemoveAll discards all commands, retaining the storage.
func (ps *PathStorage) RemoveAll() {
	ps.vertices = ps.vertices[:0]
	ps.iter = 0
}

// VertexAt returns the i'th command and its point. Out of range indices
// yield [CmdStop].
func (ps *PathStorage) VertexAt(i int) (Point, Command) {
	if i < 0 || i >= len(ps.vertices) {
		return Point{}, CmdStop
	}
	v := ps.vertices[i]
	return v.pt, v.cmd
}

// CommandAt returns the i'th command. Out of range indices yield [CmdStop].
func (ps *PathStorage) CommandAt(i int) Command {
	_, cmd := ps.VertexAt(i)
	return cmd
}

// LastVertex returns the last command, or CmdStop if there are none.
func (ps *PathStorage) LastVertex() (Point, Command) {
	return ps.VertexAt(len(ps.vertices) - 1)
}

// PrevVertex returns the second to last command, or CmdStop if there are
// fewer than two.
func (ps *PathStorage) PrevVertex() (Point, Command) {
	return ps.VertexAt(len(ps.vertices) - 2)
}

// LastPoint returns the point of the last command.
func (ps *PathStorage) LastPoint() Point {
	pt, _ := ps.LastVertex()
	return pt
}

func (ps *PathStorage) ModifyVertex(i int, pt Point)     { ps.vertices[i].pt = pt }
func (ps *PathStorage) ModifyCommand(i int, cmd Command) { ps.vertices[i].cmd = cmd }

// AddVertex appends a raw command.
func (ps *PathStorage) AddVertex(pt Point, cmd Command) {
	ps.vertices = append(ps.vertices, pathVertex{pt: pt, cmd: cmd})
}

// relToAbs turns a displacement from the last vertex into a point.
func (ps *PathStorage) relToAbs(d Vec2) Point {
	if last, cmd := ps.LastVertex(); cmd.IsVertex() {
		return last.Translate(d)
	}
	return Point(d)
}

// StartNewPath terminates the current path, if any, and returns the index
// at which the new path starts. That index can be passed to Rewind.
func (ps *PathStorage) StartNewPath() int {
	if n := len(ps.vertices); n > 0 && !ps.vertices[n-1].cmd.IsStop() {
		ps.AddVertex(Point{}, CmdStop)
	}
	return len(ps.vertices)
}

func (ps *PathStorage) MoveTo(pt Point) { ps.AddVertex(pt, CmdMoveTo) }
func (ps *PathStorage) MoveRel(d Vec2)  { ps.MoveTo(ps.relToAbs(d)) }
func (ps *PathStorage) LineTo(pt Point) { ps.AddVertex(pt, CmdLineTo) }
func (ps *PathStorage) LineRel(d Vec2)  { ps.LineTo(ps.relToAbs(d)) }

// HLineTo draws a horizontal line to x.
func (ps *PathStorage) HLineTo(x float64) {
	ps.LineTo(Pt(x, ps.LastPoint().Y))
}

// VLineTo draws a vertical line to y.
func (ps *PathStorage) VLineTo(y float64) {
	ps.LineTo(Pt(ps.LastPoint().X, y))
}

// Curve3 draws a quadratic Bézier through ctrl to to.
func (ps *PathStorage) Curve3(ctrl, to Point) {
	ps.AddVertex(ctrl, CmdCurve3)
	ps.AddVertex(to, CmdCurve3)
}

func (ps *PathStorage) Curve3Rel(ctrl, to Vec2) {
	c := ps.relToAbs(ctrl)
	t := ps.relToAbs(to)
	ps.Curve3(c, t)
}

// Curve3Smooth draws a quadratic Bézier to to whose control point is the
// reflection of the previous curve's last control point. If the previous
// command isn't a curve, the control point is the current point. It does
// nothing if there is no current point.
func (ps *PathStorage) Curve3Smooth(to Point) {
	ctrl, ok := ps.reflectedControl()
	if !ok {
		return
	}
	ps.Curve3(ctrl, to)
}

// Curve4 draws a cubic Bézier through ctrl1 and ctrl2 to to.
func (ps *PathStorage) Curve4(ctrl1, ctrl2, to Point) {
	ps.AddVertex(ctrl1, CmdCurve4)
	ps.AddVertex(ctrl2, CmdCurve4)
	ps.AddVertex(to, CmdCurve4)
}

func (ps *PathStorage) Curve4Rel(ctrl1, ctrl2, to Vec2) {
	c1 := ps.relToAbs(ctrl1)
	c2 := ps.relToAbs(ctrl2)
	t := ps.relToAbs(to)
	ps.Curve4(c1, c2, t)
}

// Curve4Smooth draws a cubic Bézier through ctrl2 to to whose first control
// point is the reflection of the previous curve's last control point, like
// [PathStorage.Curve3Smooth].
func (ps *PathStorage) Curve4Smooth(ctrl2, to Point) {
	ctrl1, ok := ps.reflectedControl()
	if !ok {
		return
	}
	ps.Curve4(ctrl1, ctrl2, to)
}

func (ps *PathStorage) reflectedControl() (Point, bool) {
	p0, cmd := ps.LastVertex()
	if !cmd.IsVertex() {
		return Point{}, false
	}
	ctrl, prev := ps.PrevVertex()
	if cmd.IsCurve() && prev.IsCurve() {
		return p0.Translate(p0.Sub(ctrl)), true
	}
	return p0, true
}

// ArcTo draws an elliptical arc from the current point to to, with the
// parameters of the SVG path "A" command. The arc is stored as cubic
// Béziers. Without a current point it moves to to. Radii close to zero,
// or too small by far to span the endpoints, give a straight line, and an
// arc ending at the current point is omitted.
func (ps *PathStorage) ArcTo(radii Vec2, xRotation float64, largeArc, sweep bool, to Point) {
	from, cmd := ps.LastVertex()
	if !cmd.IsVertex() {
		ps.MoveTo(to)
		return
	}

	const epsilon = 1e-30
	if math.Abs(radii.X) < epsilon || math.Abs(radii.Y) < epsilon {
		ps.LineTo(to)
		return
	}
	if from.Distance(to) < epsilon {
		return
	}

	a, ok := ArcFromSVG(from, radii, xRotation, largeArc, sweep, to)
	if !ok {
		ps.LineTo(to)
		return
	}
	p := NewArcPath(a)
	// Pin the endpoints so that rounding doesn't open a gap.
	p.pts[0] = from
	p.pts[len(p.pts)-1] = to
	ps.AddPath(p, 0, true)
}

// ArcRel is like ArcTo with the end point relative to the current point.
func (ps *PathStorage) ArcRel(radii Vec2, xRotation float64, largeArc, sweep bool, d Vec2) {
	ps.ArcTo(radii, xRotation, largeArc, sweep, ps.relToAbs(d))
}

// EndPoly terminates the current polygon with the given flags. It does
// nothing unless the last command is a vertex.
func (ps *PathStorage) EndPoly(flags Command) {
	if _, cmd := ps.LastVertex(); cmd.IsVertex() {
		ps.AddVertex(Point{}, CmdEndPoly|flags)
	}
}

// ClosePolygon terminates the current polygon as closed.
func (ps *PathStorage) ClosePolygon(flags Command) {
	ps.EndPoly(FlagClose | flags)
}

// AddPoly appends a polyline. If solid is true, the first point continues
// the current contour, otherwise it starts a new one. A non-zero endFlags
// terminates the polyline with an end-poly command carrying those flags.
func (ps *PathStorage) AddPoly(pts []Point, solid bool, endFlags Command) {
	if len(pts) == 0 {
		return
	}
	if !solid {
		ps.MoveTo(pts[0])
		pts = pts[1:]
	}
	for _, pt := range pts {
		ps.LineTo(pt)
	}
	if endFlags != 0 {
		ps.EndPoly(endFlags)
	}
}

// AddPath appends all commands of path pathID of src. If solid is true, a
// leading move-to is turned into a line-to so that src continues the
// current contour.
func (ps *PathStorage) AddPath(src VertexSource, pathID int, solid bool) {
	src.Rewind(pathID)
	for {
		pt, cmd := src.Vertex()
		if cmd.IsStop() {
			return
		}
		if cmd.IsMoveTo() && solid && len(ps.vertices) > 0 {
			cmd = CmdLineTo
		}
		ps.AddVertex(pt, cmd)
	}
}

// AppendElements appends a sequence of path elements.
func (ps *PathStorage) AppendElements(seq iter.Seq[PathElement]) {
	for el := range seq {
		switch el.Kind {
		case MoveToKind:
			ps.MoveTo(el.P0)
		case LineToKind:
			ps.LineTo(el.P0)
		case QuadToKind:
			ps.Curve3(el.P0, el.P1)
		case CubicToKind:
			ps.Curve4(el.P0, el.P1, el.P2)
		case ClosePathKind:
			ps.ClosePolygon(FlagNone)
		default:
			panic("unreachable")
		}
	}
}

func (ps *PathStorage) Rewind(pathID int) { ps.iter = pathID }

func (ps *PathStorage) Vertex() (Point, Command) {
	if ps.iter >= len(ps.vertices) || ps.iter < 0 {
		return Point{}, CmdStop
	}
	v := ps.vertices[ps.iter]
	ps.iter++
	return v.pt, v.cmd
}

// FlipX mirrors all vertices horizontally within [x1, x2].
func (ps *PathStorage) FlipX(x1, x2 float64) {
	for i := range ps.vertices {
		if v := &ps.vertices[i]; v.cmd.IsVertex() {
			v.pt.X = x2 - v.pt.X + x1
		}
	}
}

// FlipY mirrors all vertices vertically within [y1, y2].
func (ps *PathStorage) FlipY(y1, y2 float64) {
	for i := range ps.vertices {
		if v := &ps.vertices[i]; v.cmd.IsVertex() {
			v.pt.Y = y2 - v.pt.Y + y1
		}
	}
}

// Transform applies aff to all vertices.
func (ps *PathStorage) Transform(aff Affine) {
	for i := range ps.vertices {
		if v := &ps.vertices[i]; v.cmd.IsVertex() {
			v.pt = v.pt.Transform(aff)
		}
	}
}

// PerceivePolygonOrientation computes the orientation of the polygon
// formed by the vertices in [start, end) from its signed area. It returns
// [FlagCW] for negative area and [FlagCCW] otherwise.
func (ps *PathStorage) PerceivePolygonOrientation(start, end int) Command {
	np := end - start
	var area float64
	for i := 0; i < np; i++ {
		p1 := ps.vertices[start+i].pt
		p2 := ps.vertices[start+(i+1)%np].pt
		area += p1.X*p2.Y - p1.Y*p2.X
	}
	if area < 0 {
		return FlagCW
	}
	return FlagCCW
}

// InvertPolygon reverses the vertices in [start, end). Commands are rotated
// so that the polygon still begins with the command that began it.
func (ps *PathStorage) InvertPolygon(start, end int) {
	v := ps.vertices
	tmp := v[start].cmd
	end--
	for i := start; i < end; i++ {
		v[i].cmd = v[i+1].cmd
	}
	v[end].cmd = tmp
	for end > start {
		v[start], v[end] = v[end], v[start]
		start++
		end--
	}
}

// ArrangePolygonOrientation makes the polygon beginning at or after start
// have the given orientation, inverting it if necessary. Inverted polygons
// have the orientation stamped on their end-poly commands. It returns the
// index following the polygon.
func (ps *PathStorage) ArrangePolygonOrientation(start int, orientation Command) int {
	if orientation == FlagNone {
		return start
	}
	n := len(ps.vertices)

	for start < n && !ps.vertices[start].cmd.IsVertex() {
		start++
	}
	for start+1 < n && ps.vertices[start].cmd.IsMoveTo() && ps.vertices[start+1].cmd.IsMoveTo() {
		start++
	}
	end := start + 1
	for end < n && !ps.vertices[end].cmd.IsNextPoly() {
		end++
	}
	if end-start > 2 {
		if ps.PerceivePolygonOrientation(start, end) != orientation {
			ps.InvertPolygon(start, end)
			for end < n && ps.vertices[end].cmd.IsEndPoly() {
				ps.vertices[end].cmd = ps.vertices[end].cmd.WithOrientation(orientation)
				end++
			}
		}
	}
	return end
}

// ArrangeOrientations applies ArrangePolygonOrientation to every polygon of
// the path beginning at start. It returns the index following the path's
// terminating stop command.
func (ps *PathStorage) ArrangeOrientations(start int, orientation Command) int {
	if orientation == FlagNone {
		return start
	}
	for start < len(ps.vertices) {
		start = ps.ArrangePolygonOrientation(start, orientation)
		if ps.CommandAt(start).IsStop() {
			start++
			break
		}
	}
	return start
}

// ArrangeOrientationsAllPaths applies ArrangeOrientations to every path.
func (ps *PathStorage) ArrangeOrientationsAllPaths(orientation Command) {
	if orientation == FlagNone {
		return
	}
	start := 0
	for start < len(ps.vertices) {
		start = ps.ArrangeOrientations(start, orientation)
	}
}
