package engine

import (
	"fmt"
	"math"
)

// ParseCollections converts nested coordinate sequences into validated
// Collections. The position of each collection in the output defines its
// external result index. The transform is pure: it fails with
// *ErrMalformedGeometry on invalid input and never returns a partial result.
func ParseCollections(raw []RawCollection) ([]Collection, error) {
	collections := make([]Collection, 0, len(raw))

	for ci, rawCollection := range raw {
		if len(rawCollection) == 0 {
			return nil, &ErrMalformedGeometry{
				Collection: ci, Polygon: -1, Ring: -1,
				Reason: "collection has no polygons",
			}
		}

		polygons := make([]Polygon, 0, len(rawCollection))
		for pi, rawPolygon := range rawCollection {
			if len(rawPolygon) == 0 {
				return nil, &ErrMalformedGeometry{
					Collection: ci, Polygon: pi, Ring: -1,
					Reason: "polygon has no rings",
				}
			}

			rings := make([]Ring, 0, len(rawPolygon))
			for ri, rawRing := range rawPolygon {
				ring, err := parseRing(rawRing, ci, pi, ri)
				if err != nil {
					return nil, err
				}
				rings = append(rings, ring)
			}

			polygons = append(polygons, Polygon{
				Outer: rings[0],
				Holes: rings[1:],
			})
		}

		collections = append(collections, Collection{Polygons: polygons})
	}

	return collections, nil
}

// parseRing validates one ring's vertex list. An explicit closing vertex
// (last == first) is accepted and dropped; after that a ring needs at least
// 3 vertices. Extra per-vertex values beyond [x, y] are ignored.
func parseRing(raw RawRing, ci, pi, ri int) (Ring, error) {
	vertices := make([]Coord, 0, len(raw))

	for vi, pair := range raw {
		if len(pair) < 2 {
			return Ring{}, &ErrMalformedGeometry{
				Collection: ci, Polygon: pi, Ring: ri,
				Reason: fmt.Sprintf("vertex %d has %d values, need at least [x y]", vi, len(pair)),
			}
		}

		x, y := pair[0], pair[1]
		if !isFinite(x) || !isFinite(y) {
			return Ring{}, &ErrMalformedGeometry{
				Collection: ci, Polygon: pi, Ring: ri,
				Reason: fmt.Sprintf("vertex %d is not finite: x=%v y=%v", vi, x, y),
			}
		}

		vertices = append(vertices, Coord{X: x, Y: y})
	}

	// Drop the explicit closing vertex; the closing segment is implicit.
	if len(vertices) > 1 && vertices[0] == vertices[len(vertices)-1] {
		vertices = vertices[:len(vertices)-1]
	}

	if len(vertices) < 3 {
		return Ring{}, &ErrMalformedGeometry{
			Collection: ci, Polygon: pi, Ring: ri,
			Reason: fmt.Sprintf("ring has %d vertices, need at least 3", len(vertices)),
		}
	}

	return Ring{Vertices: vertices}, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
