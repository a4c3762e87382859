package outline_test

import (
	"fmt"

	"honnef.co/go/outline"
)

func ExampleStroker() {
	s := outline.NewStroker(outline.DefaultStroke.
		WithWidth(2).
		WithJoin(outline.BevelJoin))
	s.AddVertex(outline.Pt(0, 0), outline.CmdMoveTo)
	s.AddVertex(outline.Pt(10, 0), outline.CmdLineTo)
	s.AddVertex(outline.Pt(10, 10), outline.CmdLineTo)

	fmt.Println(outline.SVG(s, 0, outline.SVGOptions{MaxPrecision: 3}))
	// Output:
	// M0,1 L0,-1 L10,-1 L11,0 L11,10 L9,10 L9,0 L10,1 Z
}

func ExampleConvStroke() {
	path := outline.NewPathStorage()
	path.MoveTo(outline.Pt(0, 0))
	path.HLineTo(10)
	path.VLineTo(10)
	path.HLineTo(0)
	path.ClosePolygon(outline.FlagNone)

	// Closed paths produce an outer and an inner contour.
	stroke := outline.NewConvStroke(path, outline.DefaultStroke.WithWidth(2))
	fmt.Println(outline.SVG(stroke, 0, outline.SVGOptions{MaxPrecision: 3}))
	// Output:
	// M-1,-1 L11,-1 L11,11 L-1,11 Z M1,10 L0,9 L10,9 L9,10 L9,0 L10,1 L0,1 L1,0 Z
}

func ExampleConvCurve() {
	path := outline.NewPathStorage()
	path.MoveTo(outline.Pt(0, 0))
	path.Curve3(outline.Pt(50, 100), outline.Pt(100, 0))

	// Flatten the curve into a fixed number of segments, then stroke it.
	curves := outline.NewConvCurve(path, outline.DefaultCurveOpts.WithMethod(outline.CurveInc))
	stroke := outline.NewConvStroke(curves, outline.DefaultStroke.WithWidth(4))
	r, _ := outline.BoundingRect(stroke, 0)
	fmt.Printf("%.1f %.1f\n", r.Width(), r.Height())
	// Output:
	// 103.6 52.9
}
