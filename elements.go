package outline

import (
	"fmt"
	"io"
	"iter"
	"slices"
	"strconv"
	"strings"
)

type PathElementKind int

const (
	// Move directly to the point without drawing anything, starting a new
	// subpath.
	MoveToKind PathElementKind = iota + 1
	// Draw a line from the current location to the point.
	LineToKind
	// Draw a quadratic Bézier using the current location and the two points.
	QuadToKind
	// Draw a cubic Bézier using the current location and the three points.
	CubicToKind
	// Close off the path.
	ClosePathKind
)

// PathElement is one element of a Bézier path.
//
// A valid path has MoveTo at the beginning of each subpath.
type PathElement struct {
	Kind PathElementKind
	P0   Point
	P1   Point
	P2   Point
}

func (el PathElement) String() string {
	var kind string
	switch el.Kind {
	case MoveToKind:
		kind = "MoveTo"
	case LineToKind:
		kind = "LineTo"
	case QuadToKind:
		kind = "QuadTo"
	case CubicToKind:
		kind = "CubicTo"
	case ClosePathKind:
		kind = "ClosePath"
	default:
		kind = "InvalidPathElement"
	}
	return fmt.Sprintf("%s(%s, %s, %s)", kind, el.P0, el.P1, el.P2)
}

func MoveTo(pt Point) PathElement {
	return PathElement{Kind: MoveToKind, P0: pt}
}

func LineTo(pt Point) PathElement {
	return PathElement{Kind: LineToKind, P0: pt}
}

func QuadTo(p0, p1 Point) PathElement {
	return PathElement{Kind: QuadToKind, P0: p0, P1: p1}
}

func CubicTo(p0, p1, p2 Point) PathElement {
	return PathElement{Kind: CubicToKind, P0: p0, P1: p1, P2: p2}
}

func ClosePath() PathElement {
	return PathElement{Kind: ClosePathKind}
}

// BezPath is a list of path elements.
type BezPath []PathElement

func (p *BezPath) Push(el PathElement)      { *p = append(*p, el) }
func (p *BezPath) MoveTo(pt Point)          { p.Push(MoveTo(pt)) }
func (p *BezPath) LineTo(pt Point)          { p.Push(LineTo(pt)) }
func (p *BezPath) QuadTo(p1, p2 Point)      { p.Push(QuadTo(p1, p2)) }
func (p *BezPath) CubicTo(p1, p2, p3 Point) { p.Push(CubicTo(p1, p2, p3)) }
func (p *BezPath) ClosePath()               { p.Push(ClosePath()) }

// Elements returns an iterator over the path's elements.
func (p BezPath) Elements() iter.Seq[PathElement] { return slices.Values(p) }

// Collect reads path pathID of src into a BezPath.
func Collect(src VertexSource, pathID int) BezPath {
	return slices.Collect(Elements(src, pathID))
}

// Elements returns an iterator over path pathID of src as path elements.
// Curve commands are grouped into QuadTo and CubicTo elements, closed
// end-poly commands become ClosePath, and open end-poly commands are
// dropped.
func Elements(src VertexSource, pathID int) iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		src.Rewind(pathID)
		for {
			pt, cmd := src.Vertex()
			var el PathElement
			switch {
			case cmd.IsStop():
				return
			case cmd.IsMoveTo():
				el = MoveTo(pt)
			case cmd.IsLineTo():
				el = LineTo(pt)
			case cmd.IsCurve3():
				end, _ := src.Vertex()
				el = QuadTo(pt, end)
			case cmd.IsCurve4():
				ctrl2, _ := src.Vertex()
				end, _ := src.Vertex()
				el = CubicTo(pt, ctrl2, end)
			case cmd.IsClosed():
				el = ClosePath()
			default:
				continue
			}
			if !yield(el) {
				return
			}
		}
	}
}

// SVGOptions specifies optional settings for [SVG] and [WriteSVG].
type SVGOptions struct {
	// The maximum precision with which to format coordinates. A value of 0
	// chooses the highest precision necessary to unambiguously represent any
	// given coordinate.
	MaxPrecision int
}

// SVG converts path pathID of src to a string of SVG path commands.
//
// See [WriteSVG] for a version that writes to an [io.Writer] instead of
// returning a string.
func SVG(src VertexSource, pathID int, opts SVGOptions) string {
	sb := &strings.Builder{}
	WriteSVG(sb, src, pathID, opts)
	return sb.String()
}

// WriteSVG converts path pathID of src to a string of SVG path commands and
// writes it to w.
func WriteSVG(w io.Writer, src VertexSource, pathID int, opts SVGOptions) error {
	return writeSVG(w, Elements(src, pathID), opts)
}

// SVG converts the path to a string of SVG path commands.
func (p BezPath) SVG(opts SVGOptions) string {
	sb := &strings.Builder{}
	writeSVG(sb, p.Elements(), opts)
	return sb.String()
}

func writeSVG(w io.Writer, seq iter.Seq[PathElement], opts SVGOptions) error {
	space := []byte(" ")
	z := []byte("Z")
	var err error
	write := func(s []byte) {
		if err != nil {
			return
		}
		_, err = w.Write(s)
	}
	writef := func(s string, v ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, s, v...)
	}
	format := func(n float64) string {
		maxPrec := opts.MaxPrecision
		if maxPrec <= 0 {
			return strconv.FormatFloat(n, 'f', -1, 64)
		}
		s := strconv.FormatFloat(n, 'f', maxPrec, 64)
		s = strings.TrimRight(s, "0")
		return strings.TrimSuffix(s, ".")
	}
	first := true
	for el := range seq {
		if err != nil {
			return err
		}
		if !first {
			write(space)
		}
		first = false
		switch el.Kind {
		case MoveToKind:
			writef("M%s,%s", format(el.P0.X), format(el.P0.Y))
		case LineToKind:
			writef("L%s,%s", format(el.P0.X), format(el.P0.Y))
		case QuadToKind:
			writef("Q%s,%s %s,%s",
				format(el.P0.X), format(el.P0.Y),
				format(el.P1.X), format(el.P1.Y))
		case CubicToKind:
			writef("C%s,%s %s,%s %s,%s",
				format(el.P0.X), format(el.P0.Y),
				format(el.P1.X), format(el.P1.Y),
				format(el.P2.X), format(el.P2.Y))
		case ClosePathKind:
			write(z)
		default:
			panic("unreachable")
		}
	}
	return err
}
