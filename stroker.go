package outline

import (
	"context"
	"log/slog"
)

type strokeStatus int

const (
	statusInitial strokeStatus = iota
	statusReady
	statusCap1
	statusCap2
	statusOutline1
	statusCloseFirst
	statusOutline2
	statusOutVertices
	statusEndPoly1
	statusEndPoly2
	statusStop
)

// Stroker converts a single polyline into the outline of its stroke.
//
// Vertices are fed with AddVertex. The first call to Rewind or Vertex
// finalizes the path, after which the outline can be read with Vertex and
// re-read any number of times after Rewind. Feeding a vertex after that
// starts over with the finalization, so paths are normally separated by
// RemoveAll.
//
// An open path produces a single closed contour: the start cap, the joins
// along one side, the end cap, and the joins back along the other side,
// terminated by an end-poly command with the close and CW flags. A closed
// path produces two contours: the joins along one side, terminated with
// close|CCW, then the joins along the other side in reverse, terminated
// with close|CW.
type Stroker struct {
	style      Stroke
	src        VertexSequence
	out        PointBuffer
	closed     bool
	status     strokeStatus
	prevStatus strokeStatus
	srcVertex  int
	outVertex  int
}

var _ VertexSource = (*Stroker)(nil)

// NewStroker returns a stroker using the given style.
func NewStroker(style Stroke) *Stroker {
	s := &Stroker{}
	s.SetStyle(style)
	return s
}

// SetStyle replaces the stroke style. It applies to the current path if
// that has not been finalized yet.
func (s *Stroker) SetStyle(style Stroke) {
	s.style = style.normalize()
}

// Style returns the current stroke style.
func (s *Stroker) Style() Stroke { return s.style }

// RemoveAll discards the current path.
func (s *Stroker) RemoveAll() {
	s.src.RemoveAll()
	s.closed = false
	s.status = statusInitial
}

// AddVertex feeds a command of the input path. Consecutive move-tos replace
// each other, end-poly commands set whether the path is closed, and all
// other commands add a vertex.
func (s *Stroker) AddVertex(pt Point, cmd Command) {
	s.status = statusInitial
	switch {
	case cmd.IsMoveTo():
		s.src.ModifyLast(pt)
	case cmd.IsVertex():
		s.src.Add(pt)
	default:
		s.closed = cmd.CloseFlag() != 0
	}
}

// Rewind finalizes the path if needed and restarts the output.
func (s *Stroker) Rewind(int) {
	if s.status == statusInitial {
		s.src.Close(s.closed)
		s.src.Shorten(s.style.Shorten, s.closed)
		if s.src.Len() < 3 {
			s.closed = false
		}
		if s.src.Len() < 2 {
			l := Logger()
			if l.Enabled(context.Background(), slog.LevelDebug) {
				l.Debug("stroke: path dropped",
					slog.Int("vertices", s.src.Len()),
					slog.Bool("closed", s.closed))
			}
		}
	}
	s.status = statusReady
	s.srcVertex = 0
	s.outVertex = 0
}

func (s *Stroker) Vertex() (Point, Command) {
	cmd := CmdLineTo
	for !cmd.IsStop() {
		switch s.status {
		case statusInitial:
			s.Rewind(0)
			fallthrough

		case statusReady:
			minVertices := 2
			if s.closed {
				minVertices = 3
			}
			if s.src.Len() < minVertices {
				cmd = CmdStop
				break
			}
			if s.closed {
				s.status = statusOutline1
			} else {
				s.status = statusCap1
			}
			cmd = CmdMoveTo
			s.srcVertex = 0
			s.outVertex = 0

		case statusCap1:
			StrokeCap(&s.out, s.src.At(0).Point, s.src.At(1).Point, s.src.At(0).Dist, s.style)
			s.srcVertex = 1
			s.prevStatus = statusOutline1
			s.status = statusOutVertices
			s.outVertex = 0

		case statusCap2:
			n := s.src.Len()
			StrokeCap(&s.out, s.src.At(n-1).Point, s.src.At(n-2).Point, s.src.At(n-2).Dist, s.style)
			s.prevStatus = statusOutline2
			s.status = statusOutVertices
			s.outVertex = 0

		case statusOutline1:
			if s.closed {
				if s.srcVertex >= s.src.Len() {
					s.prevStatus = statusCloseFirst
					s.status = statusEndPoly1
					break
				}
			} else if s.srcVertex >= s.src.Len()-1 {
				s.status = statusCap2
				break
			}
			prev := s.src.Prev(s.srcVertex)
			curr := s.src.Curr(s.srcVertex)
			next := s.src.Next(s.srcVertex)
			StrokeJoin(&s.out, prev.Point, curr.Point, next.Point, prev.Dist, curr.Dist, s.style)
			s.srcVertex++
			s.prevStatus = s.status
			s.status = statusOutVertices
			s.outVertex = 0

		case statusCloseFirst:
			s.status = statusOutline2
			cmd = CmdMoveTo
			fallthrough

		case statusOutline2:
			last := 1
			if s.closed {
				last = 0
			}
			if s.srcVertex <= last {
				s.status = statusEndPoly2
				s.prevStatus = statusStop
				break
			}
			s.srcVertex--
			prev := s.src.Prev(s.srcVertex)
			curr := s.src.Curr(s.srcVertex)
			next := s.src.Next(s.srcVertex)
			StrokeJoin(&s.out, next.Point, curr.Point, prev.Point, curr.Dist, prev.Dist, s.style)
			s.prevStatus = s.status
			s.status = statusOutVertices
			s.outVertex = 0

		case statusOutVertices:
			if s.outVertex >= len(s.out) {
				s.status = s.prevStatus
				break
			}
			pt := s.out[s.outVertex]
			s.outVertex++
			return pt, cmd

		case statusEndPoly1:
			s.status = s.prevStatus
			return Point{}, CmdEndPoly | FlagClose | FlagCCW

		case statusEndPoly2:
			s.status = s.prevStatus
			return Point{}, CmdEndPoly | FlagClose | FlagCW

		case statusStop:
			cmd = CmdStop

		default:
			panic("unreachable")
		}
	}
	return Point{}, cmd
}
