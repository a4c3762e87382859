package outline

import (
	"math"
)

// LineCap defines the shape drawn at the ends of an open stroke.
type LineCap int

const (
	// Flat cap through the endpoint.
	ButtCap LineCap = iota
	// Flat cap extended beyond the endpoint by half the stroke width.
	SquareCap
	// Semicircle with radius equal to half the stroke width.
	RoundCap
)

func (c LineCap) String() string {
	switch c {
	case ButtCap:
		return "ButtCap"
	case SquareCap:
		return "SquareCap"
	case RoundCap:
		return "RoundCap"
	default:
		return "InvalidLineCap"
	}
}

// LineJoin defines the shape of the outer side of a corner.
type LineJoin int

const (
	// The offset edges are extended to their intersection. If that exceeds
	// the miter limit, the miter is clipped at the limit.
	MiterJoin LineJoin = 0
	// Like MiterJoin, but falls back to a bevel when the limit is exceeded.
	MiterJoinRevert LineJoin = 1
	// An arc around the corner.
	RoundJoin LineJoin = 2
	// A straight line connecting the offset edges.
	BevelJoin LineJoin = 3
	// Like MiterJoin, but falls back to an arc when the limit is exceeded.
	MiterJoinRound LineJoin = 4
)

func (j LineJoin) String() string {
	switch j {
	case MiterJoin:
		return "MiterJoin"
	case MiterJoinRevert:
		return "MiterJoinRevert"
	case RoundJoin:
		return "RoundJoin"
	case BevelJoin:
		return "BevelJoin"
	case MiterJoinRound:
		return "MiterJoinRound"
	default:
		return "InvalidLineJoin"
	}
}

// InnerJoin defines the shape of the inner side of a corner.
type InnerJoin int

const (
	// Both offset edge endpoints are emitted as-is.
	InnerBevel InnerJoin = iota
	// The offset edges are cut at their intersection, limited by the inner
	// miter limit.
	InnerMiter
	// Sharp corners are routed through the corner vertex.
	InnerJag
	// Sharp corners are routed around an arc about the corner vertex.
	InnerRound
)

func (j InnerJoin) String() string {
	switch j {
	case InnerBevel:
		return "InnerBevel"
	case InnerMiter:
		return "InnerMiter"
	case InnerJag:
		return "InnerJag"
	case InnerRound:
		return "InnerRound"
	default:
		return "InvalidInnerJoin"
	}
}

// Stroke describes the visual style of a stroke.
type Stroke struct {
	// Full width of the stroke. Negative widths are treated as their
	// absolute value.
	Width float64
	// Style for capping both ends of an open path.
	Cap LineCap
	// Style for the outer side of corners.
	Join LineJoin
	// Style for the inner side of corners.
	InnerJoin InnerJoin
	// Limit for miter joins, as a multiple of half the width.
	MiterLimit float64
	// Limit for inner miter joins, as a multiple of half the width.
	InnerMiterLimit float64
	// Ratio between device and user units. Controls the number of
	// segments in arcs and round caps. Non-positive values are treated as 1.
	ApproximationScale float64
	// Length to remove from the end of each path before stroking.
	Shorten float64
}

var DefaultStroke = Stroke{
	Width:              1.0,
	Cap:                ButtCap,
	Join:               MiterJoin,
	InnerJoin:          InnerMiter,
	MiterLimit:         4.0,
	InnerMiterLimit:    1.01,
	ApproximationScale: 1.0,
}

func (s Stroke) WithWidth(width float64) Stroke           { s.Width = width; return s }
func (s Stroke) WithCap(cap LineCap) Stroke               { s.Cap = cap; return s }
func (s Stroke) WithJoin(join LineJoin) Stroke            { s.Join = join; return s }
func (s Stroke) WithInnerJoin(join InnerJoin) Stroke      { s.InnerJoin = join; return s }
func (s Stroke) WithMiterLimit(limit float64) Stroke      { s.MiterLimit = limit; return s }
func (s Stroke) WithInnerMiterLimit(limit float64) Stroke { s.InnerMiterLimit = limit; return s }
func (s Stroke) WithApproximationScale(scale float64) Stroke {
	s.ApproximationScale = scale
	return s
}
func (s Stroke) WithShorten(length float64) Stroke { s.Shorten = length; return s }

// WithMiterLimitTheta sets the miter limit so that corners whose interior
// angle is at least theta radians are mitered. Angles for which the limit
// is undefined leave the limit unchanged.
func (s Stroke) WithMiterLimitTheta(theta float64) Stroke {
	limit := 1.0 / math.Sin(theta*0.5)
	if math.IsInf(limit, 0) || math.IsNaN(limit) {
		return s
	}
	s.MiterLimit = limit
	return s
}

// normalize resolves out-of-range settings.
func (s Stroke) normalize() Stroke {
	s.Width = math.Abs(s.Width)
	s.ApproximationScale = normalizeScale(s.ApproximationScale)
	return s
}

// halfWidth returns the offset distance of both outline sides.
func (s Stroke) halfWidth() float64 {
	return math.Abs(s.Width) * 0.5
}
