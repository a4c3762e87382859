package outline

import (
	"math"
)

// Ellipse is a vertex source producing an axis-aligned ellipse as a closed
// polygon.
type Ellipse struct {
	Center Point
	Radii  Vec2
	// CW reverses the direction of traversal.
	CW    bool
	scale float64
	steps int
	step  int
}

var _ VertexSource = (*Ellipse)(nil)

// NewEllipse returns an ellipse with the given center and radii. The number
// of vertices is derived from the radii and the approximation scale, the
// same way as for round joins.
func NewEllipse(center Point, radii Vec2, cw bool) *Ellipse {
	e := &Ellipse{Center: center, Radii: radii, CW: cw, scale: 1}
	e.calcSteps()
	return e
}

// NewEllipseSteps returns an ellipse with a fixed number of vertices.
func NewEllipseSteps(center Point, radii Vec2, steps int, cw bool) *Ellipse {
	return &Ellipse{Center: center, Radii: radii, CW: cw, scale: 1, steps: max(steps, 3)}
}

// SetApproximationScale recomputes the number of vertices for the given
// scale.
func (e *Ellipse) SetApproximationScale(s float64) {
	e.scale = normalizeScale(s)
	e.calcSteps()
}

// Steps returns the number of vertices.
func (e *Ellipse) Steps() int { return e.steps }

func (e *Ellipse) calcSteps() {
	ra := (math.Abs(e.Radii.X) + math.Abs(e.Radii.Y)) / 2
	da := arcStep(ra, normalizeScale(e.scale))
	e.steps = max(int(math.Round(2*math.Pi/da)), 3)
}

func (e *Ellipse) Rewind(int) { e.step = 0 }

func (e *Ellipse) Vertex() (Point, Command) {
	if e.step == e.steps {
		e.step++
		orientation := FlagCCW
		if e.CW {
			orientation = FlagCW
		}
		return Point{}, CmdEndPoly | FlagClose | orientation
	}
	if e.step > e.steps {
		return Point{}, CmdStop
	}
	angle := float64(e.step) / float64(e.steps) * 2 * math.Pi
	if e.CW {
		angle = 2*math.Pi - angle
	}
	sin, cos := math.Sincos(angle)
	e.step++
	pt := Pt(e.Center.X+cos*e.Radii.X, e.Center.Y+sin*e.Radii.Y)
	if e.step == 1 {
		return pt, CmdMoveTo
	}
	return pt, CmdLineTo
}
