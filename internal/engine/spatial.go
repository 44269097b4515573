package engine

import (
	"runtime"

	"github.com/dhconnelly/rtreego"
)

// rectPadding inflates R-tree rectangles slightly in each direction.
// rtreego rejects zero-length rects, and the tree is only a candidate
// filter: exact membership is always decided by the bbox and ray-cast path,
// so over-approximating coverage is safe and under-approximating is not.
const rectPadding = 1e-9

// Index holds the immutable, query-ready form of all polygon collections:
// precomputed bounding boxes, flattened edge tables, and an R-tree over
// collection bounds for fast candidate lookup. Built once, then shared
// read-only by every worker goroutine for its entire lifetime.
type Index struct {
	collections []Collection
	rtree       *rtreego.Rtree
	workers     int
}

// collectionEntry is the rtreego.Spatial element for one collection.
type collectionEntry struct {
	index int
	rect  rtreego.Rect
}

// Bounds implements the rtreego.Spatial interface.
func (e *collectionEntry) Bounds() rtreego.Rect {
	return e.rect
}

// NewIndex precomputes bounding boxes and edge tables for parsed collections
// and builds the spatial index over them. workers fixes the batch fan-out
// width for the lifetime of the index; if <= 0 it defaults to
// runtime.NumCPU().
func NewIndex(collections []Collection, workers int) *Index {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	idx := &Index{
		collections: collections,
		workers:     workers,
	}

	for i := range idx.collections {
		precomputeCollection(&idx.collections[i])
	}
	idx.rtree = buildTree(idx.collections)

	return idx
}

// Collections returns the number of indexed collections.
func (idx *Index) Collections() int {
	return len(idx.collections)
}

// Workers returns the fixed fan-out width used for batches.
func (idx *Index) Workers() int {
	return idx.workers
}

// precomputeCollection derives bounds and edge tables for every polygon in
// the collection, then the collection's union bounds.
func precomputeCollection(c *Collection) {
	for i := range c.Polygons {
		precomputePolygon(&c.Polygons[i])
	}

	c.bounds = c.Polygons[0].bounds
	for _, p := range c.Polygons[1:] {
		c.bounds = c.bounds.Union(p.bounds)
	}
}

// precomputePolygon builds the polygon's bounding box (outer ring only, which
// is sufficient for the reject test) and its flattened edge tables, outer and
// holes kept separate.
func precomputePolygon(p *Polygon) {
	p.bounds = ringBounds(p.Outer)
	p.outerEdges = ringSegments(p.Outer)

	p.holeEdges = make([][]segment, len(p.Holes))
	for i, hole := range p.Holes {
		p.holeEdges[i] = ringSegments(hole)
	}
}

// ringSegments flattens a ring into consecutive-vertex segments, including
// the implicit closing segment from the last vertex back to the first.
func ringSegments(r Ring) []segment {
	n := len(r.Vertices)
	segments := make([]segment, n)

	for i := 0; i < n; i++ {
		a := r.Vertices[i]
		b := r.Vertices[(i+1)%n]
		segments[i] = segment{ax: a.X, ay: a.Y, bx: b.X, by: b.Y}
	}

	return segments
}

// buildTree creates the R-tree over collection bounds
// (2D, min 25 / max 50 children per node).
func buildTree(collections []Collection) *rtreego.Rtree {
	tree := rtreego.NewTree(2, 25, 50)

	for i := range collections {
		rect, err := boundsRect(collections[i].bounds)
		if err != nil {
			// A rect that cannot be represented falls back to the
			// linear scan path for every query.
			return nil
		}
		tree.Insert(&collectionEntry{index: i, rect: rect})
	}

	return tree
}

// boundsRect converts geographic bounds to a padded R-tree rectangle.
func boundsRect(b Bounds) (rtreego.Rect, error) {
	point := rtreego.Point{b.MinLon - rectPadding, b.MinLat - rectPadding}
	lengths := []float64{
		b.MaxLon - b.MinLon + 2*rectPadding,
		b.MaxLat - b.MinLat + 2*rectPadding,
	}
	return rtreego.NewRect(point, lengths)
}

// pointRect builds the stab-query rectangle for a single point.
func pointRect(x, y float64) (rtreego.Rect, error) {
	point := rtreego.Point{x - rectPadding, y - rectPadding}
	lengths := []float64{2 * rectPadding, 2 * rectPadding}
	return rtreego.NewRect(point, lengths)
}
