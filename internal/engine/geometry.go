package engine

// Coord is a single 2D vertex. X is longitude, Y is latitude.
type Coord struct {
	X, Y float64
}

// Ring is an ordered sequence of vertices forming a closed loop.
// The closing segment from the last vertex back to the first is implicit;
// parsing strips an explicit duplicate closing vertex.
type Ring struct {
	Vertices []Coord
}

// segment is one precomputed polygon edge from (ax, ay) to (bx, by).
// Edge tables are flattened into segment slices once at construction so the
// hot path never re-walks ring vertex lists.
type segment struct {
	ax, ay, bx, by float64
}

// Polygon is one outer ring plus zero or more hole rings.
// A point is inside a Polygon iff it is inside the outer ring and inside
// none of the holes. Bounds and edge tables are precomputed by the Index.
type Polygon struct {
	Outer Ring
	Holes []Ring

	bounds     Bounds
	outerEdges []segment
	holeEdges  [][]segment
}

// Collection groups one or more polygons that share a single external
// result index. A point matches the collection if any of its polygons
// contains it.
type Collection struct {
	Polygons []Polygon

	bounds Bounds
}

// Raw input shapes accepted by ParseCollections. Nesting follows GeoJSON
// coordinate order: a vertex is [x, y] (extra values are ignored), ring 0 of
// a polygon is the outer boundary and subsequent rings are holes.
type (
	RawRing       [][]float64
	RawPolygon    []RawRing
	RawCollection []RawPolygon
)

// Bounds is an axis-aligned geographic bounding box.
type Bounds struct {
	MinLon, MaxLon float64
	MinLat, MaxLat float64
}

// ContainsPoint reports whether (x, y) lies within the box.
// Closed on all four edges so a boundary point is never rejected before
// the full ray-cast runs.
func (b Bounds) ContainsPoint(x, y float64) bool {
	return x >= b.MinLon && x <= b.MaxLon &&
		y >= b.MinLat && y <= b.MaxLat
}

// Union returns the smallest box covering both b and other.
func (b Bounds) Union(other Bounds) Bounds {
	if other.MinLon < b.MinLon {
		b.MinLon = other.MinLon
	}
	if other.MaxLon > b.MaxLon {
		b.MaxLon = other.MaxLon
	}
	if other.MinLat < b.MinLat {
		b.MinLat = other.MinLat
	}
	if other.MaxLat > b.MaxLat {
		b.MaxLat = other.MaxLat
	}
	return b
}

// ringBounds computes the min/max reduce over a ring's vertices.
func ringBounds(r Ring) Bounds {
	v := r.Vertices[0]
	b := Bounds{MinLon: v.X, MaxLon: v.X, MinLat: v.Y, MaxLat: v.Y}
	for _, v := range r.Vertices[1:] {
		if v.X < b.MinLon {
			b.MinLon = v.X
		}
		if v.X > b.MaxLon {
			b.MaxLon = v.X
		}
		if v.Y < b.MinLat {
			b.MinLat = v.Y
		}
		if v.Y > b.MaxLat {
			b.MaxLat = v.Y
		}
	}
	return b
}
