// Package outline converts vector paths into polygon outlines suitable for
// scanline rasterization. It flattens Bézier curves into polylines and
// expands polylines into the outline of their stroke, with configurable
// caps, joins, and miter limits.
//
// # Vertex sources
//
// All components communicate through [VertexSource], a pull-based
// protocol: Rewind restarts a path and Vertex yields one [Command] at a
// time until [CmdStop]. Components wrap one another to form pipelines:
//
//	path := outline.NewPathStorage()
//	path.MoveTo(outline.Pt(0, 0))
//	path.Curve3(outline.Pt(50, 100), outline.Pt(100, 0))
//
//	curves := outline.NewConvCurve(path, outline.DefaultCurveOpts)
//	stroke := outline.NewConvStroke(curves, outline.DefaultStroke.WithWidth(4))
//
// The stroke outline can then be fed to a rasterizer; see the rasterize
// sub-package for adapters to golang.org/x/image/vector and rasterx.
//
// # Outline conventions
//
// The stroker emits closed contours terminated by end-poly commands with
// the close flag. An open path yields a single contour running along one
// side of the path, around the end cap, and back along the other side; it
// is flagged CW. A closed path yields two contours flagged CCW and CW. The
// second one walks the path in reverse, so the two always have opposite
// windings and a non-zero fill leaves the enclosed area empty.
//
// The flags describe the order of traversal, not measured geometry. For a
// path running counterclockwise in a y-up coordinate system, the outer
// contour of a closed path is counterclockwise as flagged. Use
// [PathStorage.ArrangeOrientationsAllPaths] to enforce a specific
// orientation.
//
// # Degenerate input
//
// Nothing in this package returns errors for geometric input. Coincident
// consecutive points are merged, paths too short to stroke produce no
// output, and closed paths with fewer than three distinct points are
// stroked as open paths.
package outline
