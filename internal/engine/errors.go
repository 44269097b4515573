package engine

import (
	"fmt"
)

// ErrMalformedGeometry indicates a polygon-collection description that
// violates the expected nesting shape or contains invalid coordinates.
// Raised at construction time; no partial engine is built.
//
// Collection, Polygon and Ring locate the offending element in the input.
// A value of -1 means the position does not apply (for example a collection
// with no polygons has no polygon position).
type ErrMalformedGeometry struct {
	Collection int
	Polygon    int
	Ring       int
	Reason     string
}

func (e *ErrMalformedGeometry) Error() string {
	switch {
	case e.Polygon < 0:
		return fmt.Sprintf("malformed geometry: collection %d: %s", e.Collection, e.Reason)
	case e.Ring < 0:
		return fmt.Sprintf("malformed geometry: collection %d, polygon %d: %s",
			e.Collection, e.Polygon, e.Reason)
	default:
		return fmt.Sprintf("malformed geometry: collection %d, polygon %d, ring %d: %s",
			e.Collection, e.Polygon, e.Ring, e.Reason)
	}
}

// ErrBatchLengthMismatch indicates that the latitude and longitude arrays
// of a batch differ in length. Raised at query time; the engine stays valid.
type ErrBatchLengthMismatch struct {
	LatLen, LonLen int
}

func (e *ErrBatchLengthMismatch) Error() string {
	return fmt.Sprintf("batch length mismatch: %d latitudes, %d longitudes",
		e.LatLen, e.LonLen)
}

// ErrInvalidQueryPoint indicates a NaN or infinite coordinate in a query
// batch. The whole call fails rather than returning a misleading index.
type ErrInvalidQueryPoint struct {
	Index    int
	Lat, Lon float64
}

func (e *ErrInvalidQueryPoint) Error() string {
	return fmt.Sprintf("invalid query point at index %d: lat=%v lon=%v (coordinates must be finite)",
		e.Index, e.Lat, e.Lon)
}
