package outline

// VertexDist is a vertex together with the distance to its successor.
type VertexDist struct {
	Point
	// Dist is the distance to the next vertex in the sequence. It is only
	// meaningful once the sequence has been closed.
	Dist float64
}

// VertexSequence is an ordered list of vertices that rejects consecutive
// coincident points.
//
// Points are filtered as they are added: when a new point is added, the
// previous last point is dropped if it coincides with its own predecessor.
// [VertexSequence.Close] finishes the filtering and computes the distance
// from every vertex to its successor.
type VertexSequence struct {
	vs []VertexDist
}

// Len returns the number of vertices.
func (s *VertexSequence) Len() int { return len(s.vs) }

// At returns the i'th vertex.
func (s *VertexSequence) At(i int) VertexDist { return s.vs[i] }

// Last returns the last vertex. It must not be called on an empty sequence.
func (s *VertexSequence) Last() VertexDist { return s.vs[len(s.vs)-1] }

// Prev returns the predecessor of the i'th vertex, wrapping around.
func (s *VertexSequence) Prev(i int) VertexDist {
	n := len(s.vs)
	return s.vs[(i+n-1)%n]
}

// Curr returns the i'th vertex, wrapping around.
func (s *VertexSequence) Curr(i int) VertexDist {
	return s.vs[i%len(s.vs)]
}

// Next returns the successor of the i'th vertex, wrapping around.
func (s *VertexSequence) Next(i int) VertexDist {
	return s.vs[(i+1)%len(s.vs)]
}

// Add appends a point.
func (s *VertexSequence) Add(pt Point) {
	if n := len(s.vs); n > 1 && !s.measure(n-2, n-1) {
		s.RemoveLast()
	}
	s.vs = append(s.vs, VertexDist{Point: pt})
}

// ModifyLast replaces the last point with pt. On an empty sequence it is
// equivalent to Add.
func (s *VertexSequence) ModifyLast(pt Point) {
	s.RemoveLast()
	s.Add(pt)
}

// RemoveLast removes the last point, if any.
func (s *VertexSequence) RemoveLast() {
	if len(s.vs) > 0 {
		s.vs = s.vs[:len(s.vs)-1]
	}
}

// RemoveAll empties the sequence, retaining its storage.
func (s *VertexSequence) RemoveAll() {
	s.vs = s.vs[:0]
}

// Close finishes the sequence. Trailing points that coincide with their
// predecessor are removed and, if closed is true, trailing points that
// coincide with the first point are removed as well. Afterwards every
// vertex's Dist holds the distance to its successor; for open sequences,
// the last vertex's Dist is zero.
func (s *VertexSequence) Close(closed bool) {
	for len(s.vs) > 1 {
		n := len(s.vs)
		if s.measure(n-2, n-1) {
			break
		}
		t := s.vs[n-1]
		s.RemoveLast()
		s.ModifyLast(t.Point)
	}
	if closed {
		for len(s.vs) > 1 {
			if s.measure(len(s.vs)-1, 0) {
				break
			}
			s.RemoveLast()
		}
	}

	n := len(s.vs)
	for i := 0; i < n-1; i++ {
		s.vs[i].Dist = s.vs[i].Distance(s.vs[i+1].Point)
	}
	if n > 0 {
		if closed && n > 1 {
			s.vs[n-1].Dist = s.vs[n-1].Distance(s.vs[0].Point)
		} else {
			s.vs[n-1].Dist = 0
		}
	}
}

// Shorten removes a total length of d from the end of the sequence,
// interpolating a new end point on the last remaining segment. If the
// sequence is not longer than d, it becomes empty. The
// sequence must have been closed with the same closed argument before.
func (s *VertexSequence) Shorten(d float64, closed bool) {
	if d <= 0 || len(s.vs) <= 1 {
		return
	}
	n := len(s.vs) - 2
	// The first segment may be consumed too, leaving nothing to draw
	// rather than extending the path backwards.
	for n >= 0 {
		if s.vs[n].Dist > d {
			break
		}
		d -= s.vs[n].Dist
		s.RemoveLast()
		n--
	}
	if len(s.vs) < 2 {
		s.RemoveAll()
		return
	}
	n = len(s.vs) - 1
	prev := s.vs[n-1]
	last := &s.vs[n]
	t := (prev.Dist - d) / prev.Dist
	last.Point = prev.Lerp(last.Point, t)
	if !s.measure(n-1, n) {
		s.RemoveLast()
	}
	s.Close(closed)
}

// measure stores the distance from vertex i to vertex j in vertex i and
// reports whether the two are distinct. Coincident vertices get a huge
// distance so that a stale value is never mistaken for a short segment.
func (s *VertexSequence) measure(i, j int) bool {
	d := s.vs[i].Distance(s.vs[j].Point)
	ok := d > vertexDistEpsilon
	if !ok {
		d = 1 / vertexDistEpsilon
	}
	s.vs[i].Dist = d
	return ok
}
