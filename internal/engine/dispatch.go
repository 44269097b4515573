package engine

import (
	"sync"
)

// ClassifyBatch classifies every (lat[i], lon[i]) pair against the indexed
// collections and returns one int32 per input point: the index of the first
// containing collection, or NoMatch.
//
// The index range [0, n) is partitioned into contiguous chunks of
// ceil(n/workers) points, one goroutine per chunk. Each goroutine writes
// only its own disjoint sub-slice of the result, so no synchronization is
// needed on the output and result order always matches input order, whatever
// the scheduling order. The call blocks until every chunk is done.
//
// Fails with *ErrBatchLengthMismatch when the input slices differ in length
// and with *ErrInvalidQueryPoint when a coordinate is NaN or infinite; in
// both cases the index stays valid for further batches.
func (idx *Index) ClassifyBatch(lat, lon []float64) ([]int32, error) {
	if len(lat) != len(lon) {
		return nil, &ErrBatchLengthMismatch{LatLen: len(lat), LonLen: len(lon)}
	}

	n := len(lat)
	results := make([]int32, n)
	if n == 0 {
		return results, nil
	}

	workers := idx.workers
	if workers > n {
		workers = n
	}
	chunk := (n + workers - 1) / workers

	// One error slot per chunk. Chunks cover ascending index ranges, so
	// scanning slots in order after the join yields the error with the
	// lowest input index, independent of goroutine completion order.
	errs := make([]*ErrInvalidQueryPoint, workers)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		start := w * chunk
		if start >= n {
			break
		}
		end := start + chunk
		if end > n {
			end = n
		}

		wg.Add(1)
		go func(w, start, end int) {
			defer wg.Done()
			errs[w] = idx.classifyChunk(lat, lon, results, start, end)
		}(w, start, end)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return results, nil
}

// classifyChunk fills results[start:end]. It stops at the first non-finite
// point; the remaining slots of a failed chunk are never observed because
// the batch call discards the result slice on error.
func (idx *Index) classifyChunk(lat, lon []float64, results []int32, start, end int) *ErrInvalidQueryPoint {
	for i := start; i < end; i++ {
		if !isFinite(lat[i]) || !isFinite(lon[i]) {
			return &ErrInvalidQueryPoint{Index: i, Lat: lat[i], Lon: lon[i]}
		}
		results[i] = idx.classifyPoint(lon[i], lat[i])
	}
	return nil
}

// ClassifyPoint classifies a single coordinate pair. Fails with
// *ErrInvalidQueryPoint when the coordinate is NaN or infinite.
func (idx *Index) ClassifyPoint(lat, lon float64) (int32, error) {
	if !isFinite(lat) || !isFinite(lon) {
		return NoMatch, &ErrInvalidQueryPoint{Index: 0, Lat: lat, Lon: lon}
	}
	return idx.classifyPoint(lon, lat), nil
}
