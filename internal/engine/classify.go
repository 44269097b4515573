package engine

// NoMatch is the result value for a point contained by no collection.
const NoMatch = int32(-1)

// containment is the relation of a point to a single ring.
type containment int

const (
	contOutside containment = iota
	contInside
	contOnEdge
)

// classifyPoint returns the index of the first collection (lowest index,
// construction order) containing the point, or NoMatch. Ties between
// overlapping collections are resolved deterministically by that order.
//
// Pure function over immutable geometry: safe to call from any number of
// goroutines concurrently. x is longitude, y is latitude.
func (idx *Index) classifyPoint(x, y float64) int32 {
	if idx.rtree != nil {
		rect, err := pointRect(x, y)
		if err != nil {
			return idx.classifyLinear(x, y)
		}

		// Candidates come back in tree order; keep the lowest matching
		// index so first-match-wins holds regardless of that order.
		best := NoMatch
		for _, spatial := range idx.rtree.SearchIntersect(rect) {
			entry := spatial.(*collectionEntry)
			if best != NoMatch && int32(entry.index) >= best {
				continue
			}
			if collectionContains(&idx.collections[entry.index], x, y) {
				best = int32(entry.index)
			}
		}
		return best
	}

	return idx.classifyLinear(x, y)
}

// classifyLinear is the scan fallback when no R-tree is available.
func (idx *Index) classifyLinear(x, y float64) int32 {
	for i := range idx.collections {
		if collectionContains(&idx.collections[i], x, y) {
			return int32(i)
		}
	}
	return NoMatch
}

// collectionContains reports whether any polygon of the collection contains
// the point (logical OR across polygons).
func collectionContains(c *Collection, x, y float64) bool {
	if !c.bounds.ContainsPoint(x, y) {
		return false
	}
	for i := range c.Polygons {
		if polygonContains(&c.Polygons[i], x, y) {
			return true
		}
	}
	return false
}

// polygonContains runs the outer-minus-holes test for one polygon.
// The boundary is closed: a point exactly on any ring segment, outer or
// hole, belongs to the polygon.
func polygonContains(p *Polygon, x, y float64) bool {
	if !p.bounds.ContainsPoint(x, y) {
		return false
	}

	switch ringContainment(p.outerEdges, x, y) {
	case contOnEdge:
		return true
	case contOutside:
		return false
	}

	for _, hole := range p.holeEdges {
		switch ringContainment(hole, x, y) {
		case contOnEdge:
			return true
		case contInside:
			return false
		}
	}

	return true
}

// ringContainment is the even-odd crossing-number test for one ring.
//
// Edges are selected with the half-open rule (ay <= y < by) or
// (by <= y < ay), which counts each vertex crossing exactly once and skips
// horizontal edges entirely (ay == by can never satisfy it, so the
// x-intersection below never divides by zero). An edge crosses the point's
// rightward ray when its x-intersection at y lies strictly right of x; odd
// parity means inside.
//
// Points exactly on a segment are detected before the parity count: parity
// alone leaves right-side and top-side boundary points with an even count,
// and the boundary is defined as inside.
func ringContainment(edges []segment, x, y float64) containment {
	inside := false

	for _, e := range edges {
		if onSegment(e, x, y) {
			return contOnEdge
		}
		if (e.ay <= y && y < e.by) || (e.by <= y && y < e.ay) {
			xIntersect := e.ax + (y-e.ay)*(e.bx-e.ax)/(e.by-e.ay)
			if x < xIntersect {
				inside = !inside
			}
		}
	}

	if inside {
		return contInside
	}
	return contOutside
}

// onSegment reports whether (x, y) lies exactly on the segment, endpoints
// included. Exact comparison is intentional: the contract covers points
// precisely on a ring edge, not points near it.
func onSegment(e segment, x, y float64) bool {
	if x < e.ax && x < e.bx || x > e.ax && x > e.bx {
		return false
	}
	if y < e.ay && y < e.by || y > e.ay && y > e.by {
		return false
	}
	cross := (e.bx-e.ax)*(y-e.ay) - (e.by-e.ay)*(x-e.ax)
	return cross == 0
}
