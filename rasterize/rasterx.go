package rasterize

import (
	"image"
	"image/color"
	"math"

	"honnef.co/go/outline"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

// ToFixed converts a point to 26.6 fixed point, rounding to the nearest
// representable value.
func ToFixed(pt outline.Point) fixed.Point26_6 {
	return fixed.Point26_6{
		X: fixed.Int26_6(math.Round(pt.X * 64)),
		Y: fixed.Int26_6(math.Round(pt.Y * 64)),
	}
}

// FromFixed converts a 26.6 fixed point to a point.
func FromFixed(p fixed.Point26_6) outline.Point {
	return outline.Pt(float64(p.X)/64, float64(p.Y)/64)
}

// AddTo replays path pathID of src into a. Contours terminated by a closed
// end-poly command are stopped with closeLoop set; all others are stopped
// without it.
func AddTo(a rasterx.Adder, src outline.VertexSource, pathID int) {
	src.Rewind(pathID)
	open := false
	for {
		pt, cmd := src.Vertex()
		switch {
		case cmd.IsStop():
			if open {
				a.Stop(false)
			}
			return
		case cmd.IsMoveTo():
			if open {
				a.Stop(false)
			}
			a.Start(ToFixed(pt))
			open = true
		case cmd.IsLineTo():
			a.Line(ToFixed(pt))
		case cmd.IsCurve3():
			end, _ := src.Vertex()
			a.QuadBezier(ToFixed(pt), ToFixed(end))
		case cmd.IsCurve4():
			ctrl2, _ := src.Vertex()
			end, _ := src.Vertex()
			a.CubeBezier(ToFixed(pt), ToFixed(ctrl2), ToFixed(end))
		case cmd.IsEndPoly():
			if open {
				a.Stop(cmd.IsClosed())
				open = false
			}
		}
	}
}

// Paint fills path pathID of src into img with a solid color, using the
// non-zero winding rule.
func Paint(img *image.RGBA, src outline.VertexSource, pathID int, clr color.Color) {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	filler := rasterx.NewFiller(w, h, scanner)
	filler.SetWinding(true)
	filler.SetColor(clr)
	AddTo(filler, src, pathID)
	filler.Draw()
}
