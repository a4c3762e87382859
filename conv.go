package outline

// ConvCurve wraps a vertex source and replaces its curve commands with
// line-tos approximating the curves.
type ConvCurve struct {
	source VertexSource
	last   Point
	curve3 Curve3
	curve4 Curve4
}

var _ VertexSource = (*ConvCurve)(nil)

// NewConvCurve returns a converter reading from src.
func NewConvCurve(src VertexSource, opts CurveOpts) *ConvCurve {
	c := &ConvCurve{source: src}
	c.SetOpts(opts)
	return c
}

// Attach replaces the underlying source.
func (c *ConvCurve) Attach(src VertexSource) { c.source = src }

// SetOpts configures the flattening of subsequent curves.
func (c *ConvCurve) SetOpts(opts CurveOpts) {
	c.curve3.SetOpts(opts)
	c.curve4.SetOpts(opts)
}

func (c *ConvCurve) Rewind(pathID int) {
	c.source.Rewind(pathID)
	c.last = Point{}
	c.curve3.Reset()
	c.curve4.Reset()
}

func (c *ConvCurve) Vertex() (Point, Command) {
	if pt, cmd := c.curve3.Vertex(); !cmd.IsStop() {
		c.last = pt
		return pt, CmdLineTo
	}
	if pt, cmd := c.curve4.Vertex(); !cmd.IsStop() {
		c.last = pt
		return pt, CmdLineTo
	}

	pt, cmd := c.source.Vertex()
	switch cmd {
	case CmdCurve3:
		end, _ := c.source.Vertex()
		c.curve3.Init(c.last, pt, end)
		// Skip the move-to to the current point.
		c.curve3.Vertex()
		pt, _ = c.curve3.Vertex()
		cmd = CmdLineTo
	case CmdCurve4:
		ctrl2, _ := c.source.Vertex()
		end, _ := c.source.Vertex()
		c.curve4.Init(c.last, pt, ctrl2, end)
		c.curve4.Vertex()
		pt, _ = c.curve4.Vertex()
		cmd = CmdLineTo
	}
	if cmd.IsVertex() {
		c.last = pt
	}
	return pt, cmd
}

type convStatus int

const (
	convInitial convStatus = iota
	convAccumulate
	convGenerate
)

// ConvStroke wraps a vertex source and produces the stroke outline of each
// of its sub-paths. Sub-paths are delimited by move-to, end-poly, and stop
// commands. The source must not contain curve commands; wrap it in a
// [ConvCurve] first.
type ConvStroke struct {
	source  VertexSource
	stroker Stroker
	status  convStatus
	lastCmd Command
	start   Point
}

var _ VertexSource = (*ConvStroke)(nil)

// NewConvStroke returns a converter stroking src with the given style.
func NewConvStroke(src VertexSource, style Stroke) *ConvStroke {
	c := &ConvStroke{source: src}
	c.stroker.SetStyle(style)
	return c
}

// Attach replaces the underlying source.
func (c *ConvStroke) Attach(src VertexSource) { c.source = src }

func (c *ConvStroke) SetStyle(style Stroke) { c.stroker.SetStyle(style) }
func (c *ConvStroke) Style() Stroke         { return c.stroker.Style() }

func (c *ConvStroke) Rewind(pathID int) {
	c.source.Rewind(pathID)
	c.status = convInitial
}

func (c *ConvStroke) Vertex() (Point, Command) {
	for {
		switch c.status {
		case convInitial:
			c.start, c.lastCmd = c.source.Vertex()
			c.status = convAccumulate
			fallthrough

		case convAccumulate:
			// After an end-poly, the next sub-path starts with the next
			// command.
			for c.lastCmd.IsEndPoly() {
				c.start, c.lastCmd = c.source.Vertex()
			}
			if c.lastCmd.IsStop() {
				return Point{}, CmdStop
			}
			c.stroker.RemoveAll()
			c.stroker.AddVertex(c.start, CmdMoveTo)
			for {
				pt, cmd := c.source.Vertex()
				if cmd.IsVertex() {
					c.lastCmd = cmd
					if cmd.IsMoveTo() {
						c.start = pt
						break
					}
					c.stroker.AddVertex(pt, cmd)
					continue
				}
				if cmd.IsStop() {
					c.lastCmd = CmdStop
					break
				}
				if cmd.IsEndPoly() {
					c.stroker.AddVertex(pt, cmd)
					c.lastCmd = cmd
					break
				}
			}
			c.stroker.Rewind(0)
			c.status = convGenerate
			fallthrough

		case convGenerate:
			pt, cmd := c.stroker.Vertex()
			if cmd.IsStop() {
				c.status = convAccumulate
				continue
			}
			return pt, cmd

		default:
			panic("unreachable")
		}
	}
}
