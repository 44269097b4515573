package engine

import (
	"math"
	"math/rand"
	"testing"
)

// Benchmark batch classification with and without the worker fan-out, and
// the R-tree candidate filter against the linear collection scan.

// benchIndex builds an index of regular polygons spread across a region.
func benchIndex(b *testing.B, collections, vertices, workers int) *Index {
	b.Helper()

	raw := make([]RawCollection, 0, collections)
	for c := 0; c < collections; c++ {
		cx := float64(c%10) * 20
		cy := float64(c/10) * 20

		ring := make(RawRing, 0, vertices)
		for v := 0; v < vertices; v++ {
			angle := 2 * math.Pi * float64(v) / float64(vertices)
			ring = append(ring, []float64{
				cx + 8*math.Cos(angle),
				cy + 8*math.Sin(angle),
			})
		}
		raw = append(raw, RawCollection{{ring}})
	}

	parsed, err := ParseCollections(raw)
	if err != nil {
		b.Fatalf("ParseCollections() error = %v", err)
	}
	return NewIndex(parsed, workers)
}

// benchPoints generates a reproducible batch covering the indexed region.
func benchPoints(n int) (lat, lon []float64) {
	rng := rand.New(rand.NewSource(1))
	lat = make([]float64, n)
	lon = make([]float64, n)
	for i := 0; i < n; i++ {
		lat[i] = rng.Float64()*220 - 10
		lon[i] = rng.Float64()*220 - 10
	}
	return lat, lon
}

func BenchmarkClassifyBatch_Serial(b *testing.B) {
	idx := benchIndex(b, 50, 64, 1)
	lat, lon := benchPoints(100000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := idx.ClassifyBatch(lat, lon); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkClassifyBatch_Parallel(b *testing.B) {
	idx := benchIndex(b, 50, 64, 0) // 0 = NumCPU
	lat, lon := benchPoints(100000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := idx.ClassifyBatch(lat, lon); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkClassifyPoint_Rtree(b *testing.B) {
	idx := benchIndex(b, 100, 64, 1)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = idx.classifyPoint(105, 105)
	}
}

func BenchmarkClassifyPoint_Linear(b *testing.B) {
	idx := benchIndex(b, 100, 64, 1)
	idx.rtree = nil // force the scan path

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = idx.classifyPoint(105, 105)
	}
}
