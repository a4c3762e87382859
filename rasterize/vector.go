// Package rasterize feeds outline vertex sources into third-party
// rasterizers.
package rasterize

import (
	"image"
	"image/draw"

	"honnef.co/go/outline"

	"golang.org/x/image/vector"
)

// Fill replays path pathID of src into r. Every contour is closed, as
// required for filling. Points are translated by offset first, which lets
// callers map the path's bounding box into the rasterizer's positive
// quadrant.
func Fill(r *vector.Rasterizer, src outline.VertexSource, pathID int, offset outline.Vec2) {
	f32 := func(pt outline.Point) (float32, float32) {
		pt = pt.Translate(offset)
		return float32(pt.X), float32(pt.Y)
	}

	src.Rewind(pathID)
	open := false
	for {
		pt, cmd := src.Vertex()
		switch {
		case cmd.IsStop():
			if open {
				r.ClosePath()
			}
			return
		case cmd.IsMoveTo():
			if open {
				r.ClosePath()
			}
			r.MoveTo(f32(pt))
			open = true
		case cmd.IsLineTo():
			r.LineTo(f32(pt))
		case cmd.IsCurve3():
			end, _ := src.Vertex()
			cx, cy := f32(pt)
			ex, ey := f32(end)
			r.QuadTo(cx, cy, ex, ey)
		case cmd.IsCurve4():
			ctrl2, _ := src.Vertex()
			end, _ := src.Vertex()
			c1x, c1y := f32(pt)
			c2x, c2y := f32(ctrl2)
			ex, ey := f32(end)
			r.CubeTo(c1x, c1y, c2x, c2y, ex, ey)
		case cmd.IsEndPoly():
			if open {
				r.ClosePath()
				open = false
			}
		}
	}
}

// Mask rasterizes path pathID of src into an alpha mask covering bounds.
// Path coordinates are pixel coordinates; the part of the path outside
// bounds is clipped.
func Mask(src outline.VertexSource, pathID int, bounds image.Rectangle) *image.Alpha {
	r := vector.NewRasterizer(bounds.Dx(), bounds.Dy())
	r.DrawOp = draw.Src
	Fill(r, src, pathID, outline.Vec(-float64(bounds.Min.X), -float64(bounds.Min.Y)))

	mask := image.NewAlpha(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	r.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	mask.Rect = mask.Rect.Add(bounds.Min)
	return mask
}
