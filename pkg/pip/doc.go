// Package pip provides a high-throughput point-in-polygon classification
// engine.
//
// An Engine is built once from a fixed set of polygon collections and then
// queried repeatedly with large coordinate batches. Each query point is
// resolved to the index of the first collection that contains it, or
// NoMatch (-1) when no collection does.
//
// # Basic Usage
//
//	engine, err := pip.NewFromGeoJSON([]string{tokyo, channel, hamburg}, pip.DefaultOptions())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	results, err := engine.ClassifyBatch(lats, lons)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// results[i] is the collection index for (lats[i], lons[i]), or pip.NoMatch
//
// # Geometry Model
//
// A collection holds one or more polygons that all resolve to the same
// result index (a GeoJSON FeatureCollection with several disjoint shapes is
// one collection). A polygon is one outer ring plus zero or more hole rings;
// a point is inside the polygon when it is inside the outer ring and inside
// none of the holes. Ring boundaries are closed: a point exactly on a ring
// edge or vertex classifies as inside.
//
// Membership is decided by planar even-odd ray-casting on raw lon/lat
// coordinates. There is no reprojection and no curved-earth model.
//
// # Resolution Order
//
// When collections overlap, the first one supplied at construction wins:
// the result is always the lowest index of any containing collection. This
// makes ties deterministic and independent of the spatial index.
//
// # Concurrency
//
// Engine geometry is immutable after construction and shared read-only, so
// an Engine is safe for concurrent ClassifyBatch calls from any number of
// goroutines. Each batch is fanned out over a fixed number of workers
// (Options.Workers, defaulting to runtime.NumCPU()); the output slice always
// matches input order regardless of scheduling.
package pip
