package engine

import (
	"testing"
)

// buildIndex parses raw collections and builds an index, failing the test
// on malformed input.
func buildIndex(t *testing.T, raw []RawCollection, workers int) *Index {
	t.Helper()

	collections, err := ParseCollections(raw)
	if err != nil {
		t.Fatalf("ParseCollections() error = %v", err)
	}
	return NewIndex(collections, workers)
}

func TestClassifyPointUnitSquare(t *testing.T) {
	idx := buildIndex(t, []RawCollection{
		{{RawRing{{0, 0}, {0, 1}, {1, 1}, {1, 0}}}},
	}, 1)

	tests := []struct {
		name string
		x, y float64
		want int32
	}{
		{"center", 0.5, 0.5, 0},
		{"outside left", -0.5, 0.5, NoMatch},
		{"outside above", 0.5, 1.5, NoMatch},
		{"far away", 50, 50, NoMatch},
		// Closed boundary: every edge and vertex is inside.
		{"left edge", 0, 0.5, 0},
		{"right edge", 1, 0.5, 0},
		{"bottom edge", 0.5, 0, 0},
		{"top edge", 0.5, 1, 0},
		{"corner origin", 0, 0, 0},
		{"corner opposite", 1, 1, 0},
		{"just outside right edge", 1.0000001, 0.5, NoMatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := idx.classifyPoint(tt.x, tt.y); got != tt.want {
				t.Errorf("classifyPoint(%v, %v) = %d, want %d", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestClassifyPointConcavePolygon(t *testing.T) {
	// U-shape: the notch between the prongs is outside.
	u := RawRing{
		{0, 0}, {6, 0}, {6, 4}, {4, 4}, {4, 2}, {2, 2}, {2, 4}, {0, 4},
	}
	idx := buildIndex(t, []RawCollection{{{u}}}, 1)

	tests := []struct {
		name string
		x, y float64
		want int32
	}{
		{"left prong", 1, 3, 0},
		{"right prong", 5, 3, 0},
		{"base", 3, 1, 0},
		{"inside notch", 3, 3, NoMatch},
		{"above notch", 3, 4.5, NoMatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := idx.classifyPoint(tt.x, tt.y); got != tt.want {
				t.Errorf("classifyPoint(%v, %v) = %d, want %d", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestClassifyPointHoleExclusion(t *testing.T) {
	idx := buildIndex(t, []RawCollection{
		{{square(0, 0, 10), square(4, 4, 2)}},
	}, 1)

	tests := []struct {
		name string
		x, y float64
		want int32
	}{
		{"inside outer, outside hole", 1, 1, 0},
		{"inside hole", 5, 5, NoMatch},
		// Hole boundary belongs to the polygon's closure.
		{"on hole edge", 4, 5, 0},
		{"on hole corner", 4, 4, 0},
		{"outside outer", 11, 5, NoMatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := idx.classifyPoint(tt.x, tt.y); got != tt.want {
				t.Errorf("classifyPoint(%v, %v) = %d, want %d", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestClassifyPointMultiPolygonCollection(t *testing.T) {
	// Two disjoint squares share result index 0.
	idx := buildIndex(t, []RawCollection{
		{{square(0, 0, 2)}, {square(10, 10, 2)}},
	}, 1)

	tests := []struct {
		name string
		x, y float64
		want int32
	}{
		{"first polygon", 1, 1, 0},
		{"second polygon", 11, 11, 0},
		{"between the two", 6, 6, NoMatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := idx.classifyPoint(tt.x, tt.y); got != tt.want {
				t.Errorf("classifyPoint(%v, %v) = %d, want %d", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestClassifyPointFirstMatchWins(t *testing.T) {
	// Collections 0 and 1 overlap on [5,10)x[5,10); construction order
	// breaks the tie.
	idx := buildIndex(t, []RawCollection{
		{{square(0, 0, 10)}},
		{{square(5, 5, 10)}},
	}, 1)

	tests := []struct {
		name string
		x, y float64
		want int32
	}{
		{"overlap region resolves to collection 0", 7, 7, 0},
		{"only collection 0", 1, 1, 0},
		{"only collection 1", 12, 12, 1},
		{"neither", 30, 30, NoMatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := idx.classifyPoint(tt.x, tt.y); got != tt.want {
				t.Errorf("classifyPoint(%v, %v) = %d, want %d", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestClassifyPointTreeMatchesLinearScan(t *testing.T) {
	raw := []RawCollection{
		{{square(0, 0, 10)}},
		{{square(5, 5, 10), square(7, 7, 1)}},
		{{square(-20, -20, 5)}, {square(100, 100, 50)}},
	}

	idx := buildIndex(t, raw, 1)
	if idx.rtree == nil {
		t.Fatal("expected R-tree to be built")
	}

	linear := buildIndex(t, raw, 1)
	linear.rtree = nil

	points := []struct{ x, y float64 }{
		{1, 1}, {7, 7}, {7.5, 7.5}, {12, 12}, {-18, -18},
		{125, 125}, {0, 0}, {10, 10}, {5, 5}, {-100, 40}, {15.0001, 5},
	}

	for _, p := range points {
		got := idx.classifyPoint(p.x, p.y)
		want := linear.classifyPoint(p.x, p.y)
		if got != want {
			t.Errorf("classifyPoint(%v, %v): tree = %d, linear scan = %d",
				p.x, p.y, got, want)
		}
	}
}

func TestRingContainment(t *testing.T) {
	edges := ringSegments(Ring{Vertices: []Coord{
		{0, 0}, {0, 1}, {1, 1}, {1, 0},
	}})

	tests := []struct {
		name string
		x, y float64
		want containment
	}{
		{"inside", 0.5, 0.5, contInside},
		{"outside", 2, 0.5, contOutside},
		{"on left edge", 0, 0.5, contOnEdge},
		{"on right edge", 1, 0.5, contOnEdge},
		{"on vertex", 0, 1, contOnEdge},
		// Collinear with the bottom edge but beyond the vertex.
		{"collinear outside segment", 1.5, 0, contOutside},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ringContainment(edges, tt.x, tt.y); got != tt.want {
				t.Errorf("ringContainment(%v, %v) = %d, want %d", tt.x, tt.y, got, tt.want)
			}
		})
	}
}
