package pip

import (
	"github.com/beetlebugorg/pip/internal/engine"
)

// NoMatch is the result value for a point contained by no collection.
const NoMatch = engine.NoMatch

// Raw construction input shapes, nested in GeoJSON coordinate order:
// a vertex is [x, y] (longitude first; extra values are ignored), ring 0 of
// a polygon is the outer boundary and subsequent rings are holes, and every
// polygon of one RawCollection maps to the same result index.
type (
	RawRing       = engine.RawRing
	RawPolygon    = engine.RawPolygon
	RawCollection = engine.RawCollection
)

// Error types returned by construction and query operations. Use errors.As
// to inspect the failing element:
//
//	var malformed *pip.MalformedGeometryError
//	if errors.As(err, &malformed) {
//	    fmt.Printf("bad ring %d in collection %d\n", malformed.Ring, malformed.Collection)
//	}
type (
	MalformedGeometryError   = engine.ErrMalformedGeometry
	BatchLengthMismatchError = engine.ErrBatchLengthMismatch
	InvalidQueryPointError   = engine.ErrInvalidQueryPoint
)

// Engine classifies coordinates against a fixed set of polygon collections.
//
// Construction parses and validates all geometry, precomputes per-polygon
// bounding boxes and edge tables, and builds a spatial index over collection
// bounds. All of that state is immutable afterwards: the engine exposes no
// mutating operations and is safe for concurrent queries.
type Engine struct {
	index *engine.Index
}

// New builds an Engine from nested coordinate sequences, one RawCollection
// per external result index. Fails with *MalformedGeometryError on invalid
// input; no partial engine is returned.
//
// Example:
//
//	square := pip.RawCollection{
//	    {{{0, 0}, {0, 10}, {10, 10}, {10, 0}}},
//	}
//	engine, err := pip.New([]pip.RawCollection{square}, pip.DefaultOptions())
func New(collections []RawCollection, opts Options) (*Engine, error) {
	parsed, err := engine.ParseCollections(collections)
	if err != nil {
		return nil, err
	}

	return &Engine{
		index: engine.NewIndex(parsed, opts.Workers),
	}, nil
}

// ClassifyBatch classifies every (lat[i], lon[i]) pair and returns one
// result per point: the index of the first containing collection in
// construction order, or NoMatch. The result slice has the same length and
// order as the input and is owned by the caller; the input slices are only
// read for the duration of the call.
//
// The call blocks until the whole batch is classified. Fails with
// *BatchLengthMismatchError when the slices differ in length and with
// *InvalidQueryPointError when a coordinate is NaN or infinite; the engine
// stays valid either way.
func (e *Engine) ClassifyBatch(lat, lon []float64) ([]int32, error) {
	return e.index.ClassifyBatch(lat, lon)
}

// ClassifyPoint classifies a single coordinate pair. Equivalent to a
// one-element ClassifyBatch without the fan-out.
func (e *Engine) ClassifyPoint(lat, lon float64) (int32, error) {
	return e.index.ClassifyPoint(lat, lon)
}

// Collections returns the number of polygon collections the engine was
// built with. Valid results of a query are NoMatch or [0, Collections()-1].
func (e *Engine) Collections() int {
	return e.index.Collections()
}

// Workers returns the fixed batch fan-out width.
func (e *Engine) Workers() int {
	return e.index.Workers()
}
