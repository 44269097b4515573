package pip

import (
	"encoding/json"
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// NewFromGeoJSON builds an Engine from GeoJSON documents, one collection per
// document. Each document may be a FeatureCollection, a Feature, or a bare
// geometry; every Polygon and MultiPolygon it contains contributes to that
// document's single result index.
//
// Example:
//
//	tokyo, _ := os.ReadFile("tokyo.geojson")
//	channel, _ := os.ReadFile("channel.geojson")
//
//	engine, err := pip.NewFromGeoJSON(
//	    []string{string(tokyo), string(channel)},
//	    pip.DefaultOptions(),
//	)
func NewFromGeoJSON(documents []string, opts Options) (*Engine, error) {
	raw := make([]RawCollection, 0, len(documents))

	for i, doc := range documents {
		collection, err := decodeDocument([]byte(doc))
		if err != nil {
			return nil, fmt.Errorf("geojson document %d: %w", i, err)
		}
		raw = append(raw, collection)
	}

	return New(raw, opts)
}

// decodeDocument converts one GeoJSON document into a RawCollection.
func decodeDocument(data []byte) (RawCollection, error) {
	var probe struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	var geometries []orb.Geometry

	switch probe.Type {
	case "FeatureCollection":
		fc, err := geojson.UnmarshalFeatureCollection(data)
		if err != nil {
			return nil, fmt.Errorf("decode feature collection: %w", err)
		}
		for _, f := range fc.Features {
			if f.Geometry == nil {
				continue
			}
			geometries = append(geometries, f.Geometry)
		}

	case "Feature":
		f, err := geojson.UnmarshalFeature(data)
		if err != nil {
			return nil, fmt.Errorf("decode feature: %w", err)
		}
		if f.Geometry != nil {
			geometries = append(geometries, f.Geometry)
		}

	default:
		g, err := geojson.UnmarshalGeometry(data)
		if err != nil {
			return nil, fmt.Errorf("decode geometry: %w", err)
		}
		geometries = append(geometries, g.Geometry())
	}

	var collection RawCollection
	for _, g := range geometries {
		var err error
		collection, err = appendGeometry(collection, g)
		if err != nil {
			return nil, err
		}
	}

	if len(collection) == 0 {
		return nil, fmt.Errorf("document contains no polygon geometry")
	}

	return collection, nil
}

// appendGeometry flattens Polygon, MultiPolygon and nested Collection
// geometries into the raw polygon list.
func appendGeometry(collection RawCollection, g orb.Geometry) (RawCollection, error) {
	switch geom := g.(type) {
	case orb.Polygon:
		return append(collection, polygonCoords(geom)), nil

	case orb.MultiPolygon:
		for _, p := range geom {
			collection = append(collection, polygonCoords(p))
		}
		return collection, nil

	case orb.Collection:
		for _, member := range geom {
			var err error
			collection, err = appendGeometry(collection, member)
			if err != nil {
				return nil, err
			}
		}
		return collection, nil

	default:
		return nil, fmt.Errorf("unsupported geometry type %q, need Polygon or MultiPolygon", g.GeoJSONType())
	}
}

// polygonCoords converts an orb.Polygon into nested raw coordinates.
// orb already orders rings outer-first, matching the engine's convention.
func polygonCoords(p orb.Polygon) RawPolygon {
	polygon := make(RawPolygon, 0, len(p))

	for _, ring := range p {
		coords := make(RawRing, 0, len(ring))
		for _, pt := range ring {
			coords = append(coords, []float64{pt[0], pt[1]})
		}
		polygon = append(polygon, coords)
	}

	return polygon
}
