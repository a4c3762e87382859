package outline

import (
	"strings"
)

// Command is a path command, optionally combined with flags.
//
// The low four bits hold the command proper, the high four bits hold flags
// that only have meaning on [CmdEndPoly].
type Command uint8

const (
	// End of the vertex stream.
	CmdStop Command = 0
	// Start a new contour at the vertex.
	CmdMoveTo Command = 1
	// Draw a straight line to the vertex.
	CmdLineTo Command = 2
	// Quadratic Bézier. The vertex is the control point and the next vertex
	// is the end point.
	CmdCurve3 Command = 3
	// Cubic Bézier. The vertex and the next vertex are the control points,
	// the one after that is the end point.
	CmdCurve4 Command = 4
	// End of a polygon. The coordinates are meaningless.
	CmdEndPoly Command = 0x0F

	cmdMask Command = 0x0F
)

const (
	FlagNone  Command = 0
	FlagCCW   Command = 0x10
	FlagCW    Command = 0x20
	FlagClose Command = 0x40

	flagsMask Command = 0xF0
)

// Kind returns the command without its flags.
func (c Command) Kind() Command { return c & cmdMask }

// Flags returns the flags of the command.
func (c Command) Flags() Command { return c & flagsMask }

// IsVertex reports whether the command carries a vertex, i.e. is one of move-to,
// line-to, or a curve command.
func (c Command) IsVertex() bool { return c >= CmdMoveTo && c < CmdEndPoly }

func (c Command) IsStop() bool    { return c == CmdStop }
func (c Command) IsMoveTo() bool  { return c == CmdMoveTo }
func (c Command) IsLineTo() bool  { return c == CmdLineTo }
func (c Command) IsCurve() bool   { return c == CmdCurve3 || c == CmdCurve4 }
func (c Command) IsCurve3() bool  { return c == CmdCurve3 }
func (c Command) IsCurve4() bool  { return c == CmdCurve4 }
func (c Command) IsEndPoly() bool { return c&cmdMask == CmdEndPoly }

// IsClosed reports whether c is an end-poly command with the close flag.
func (c Command) IsClosed() bool { return c&^(FlagCW|FlagCCW) == CmdEndPoly|FlagClose }

// IsNextPoly reports whether c terminates the current polygon.
func (c Command) IsNextPoly() bool { return c.IsStop() || c.IsMoveTo() || c.IsEndPoly() }

func (c Command) IsCW() bool  { return c&FlagCW != 0 }
func (c Command) IsCCW() bool { return c&FlagCCW != 0 }

// IsOriented reports whether c carries an orientation flag.
func (c Command) IsOriented() bool { return c&(FlagCW|FlagCCW) != 0 }

// Orientation returns the orientation flag of c, if any.
func (c Command) Orientation() Command { return c & (FlagCW | FlagCCW) }

// CloseFlag returns the close flag of c, if any.
func (c Command) CloseFlag() Command { return c & FlagClose }

// WithOrientation replaces the orientation flag of c with o.
func (c Command) WithOrientation(o Command) Command {
	return c&^(FlagCW|FlagCCW) | o&(FlagCW|FlagCCW)
}

// ClearOrientation removes the orientation flag of c.
func (c Command) ClearOrientation() Command { return c &^ (FlagCW | FlagCCW) }

func (c Command) String() string {
	var name string
	switch c.Kind() {
	case CmdStop:
		name = "Stop"
	case CmdMoveTo:
		name = "MoveTo"
	case CmdLineTo:
		name = "LineTo"
	case CmdCurve3:
		name = "Curve3"
	case CmdCurve4:
		name = "Curve4"
	case CmdEndPoly:
		name = "EndPoly"
	default:
		name = "InvalidCommand"
	}
	if c.Flags() == 0 {
		return name
	}
	sb := strings.Builder{}
	sb.WriteString(name)
	if c&FlagClose != 0 {
		sb.WriteString("|Close")
	}
	if c&FlagCCW != 0 {
		sb.WriteString("|CCW")
	}
	if c&FlagCW != 0 {
		sb.WriteString("|CW")
	}
	return sb.String()
}

// VertexSource is a pull-based producer of path commands.
//
// Rewind resets the source to the start of the path identified by pathID;
// sources with only one path ignore the argument. Vertex then returns one
// command per call until it returns [CmdStop], after which it keeps
// returning CmdStop until the next Rewind. The point is meaningful only for
// commands that carry a vertex.
type VertexSource interface {
	Rewind(pathID int)
	Vertex() (Point, Command)
}

// VertexConsumer receives the points produced by the stroke math helpers.
type VertexConsumer interface {
	Add(pt Point)
	RemoveAll()
}

// PointBuffer is a growable list of points implementing [VertexConsumer].
type PointBuffer []Point

var _ VertexConsumer = (*PointBuffer)(nil)

func (b *PointBuffer) Add(pt Point) { *b = append(*b, pt) }
func (b *PointBuffer) RemoveAll()   { *b = (*b)[:0] }
func (b PointBuffer) Len() int      { return len(b) }
