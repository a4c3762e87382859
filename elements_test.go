package outline

import (
	"errors"
	"testing"
)

func TestSVG(t *testing.T) {
	var p BezPath
	p.MoveTo(Pt(0, 0))
	p.LineTo(Pt(1.5, 0))
	p.QuadTo(Pt(2, 1), Pt(3, 0.127))
	p.CubicTo(Pt(4, 1), Pt(5, -1), Pt(6, 1.0/3))
	p.ClosePath()

	diff(t, "M0,0 L1.5,0 Q2,1 3,0.127 C4,1 5,-1 6,0.3333333333333333 Z", p.SVG(SVGOptions{}))
	diff(t, "M0,0 L1.5,0 Q2,1 3,0.13 C4,1 5,-1 6,0.33 Z", p.SVG(SVGOptions{MaxPrecision: 2}))
}

func TestSVGStroke(t *testing.T) {
	s := strokeOf(DefaultStroke.WithWidth(2).WithInnerMiterLimit(1.5), true, square...)
	got := SVG(s, 0, SVGOptions{MaxPrecision: 3})
	diff(t, "M-1,-1 L11,-1 L11,11 L-1,11 Z M1,9 L9,9 L9,1 L1,1 Z", got)
}

func TestElementsSkipOpenEndPoly(t *testing.T) {
	ps := NewPathStorage()
	ps.MoveTo(Pt(0, 0))
	ps.LineTo(Pt(1, 0))
	ps.EndPoly(FlagCW)
	ps.MoveTo(Pt(2, 0))
	ps.LineTo(Pt(3, 0))
	ps.ClosePolygon(FlagCCW)

	want := BezPath{
		MoveTo(Pt(0, 0)),
		LineTo(Pt(1, 0)),
		MoveTo(Pt(2, 0)),
		LineTo(Pt(3, 0)),
		ClosePath(),
	}
	diff(t, want, Collect(ps, 0))

	// Stopping early doesn't read the rest of the source.
	n := 0
	for range Elements(ps, 0) {
		n++
		if n == 2 {
			break
		}
	}
	if _, cmd := ps.Vertex(); cmd != CmdEndPoly|FlagCW {
		t.Errorf("got %v after stopping, want EndPoly|CW", cmd)
	}
}

type failingWriter struct{ n int }

var errWrite = errors.New("write failed")

func (w *failingWriter) Write(b []byte) (int, error) {
	if w.n == 0 {
		return 0, errWrite
	}
	w.n--
	return len(b), nil
}

func TestWriteSVGError(t *testing.T) {
	ps := polyline(true, square...)
	if err := WriteSVG(&failingWriter{n: 2}, ps, 0, SVGOptions{}); !errors.Is(err, errWrite) {
		t.Errorf("got error %v, want %v", err, errWrite)
	}
}
