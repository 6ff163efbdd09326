package mapsdk

import (
	"fmt"

	"github.com/twpayne/go-polyline"
)

// LatLng is a decoded path vertex
type LatLng struct {
	lat float64
	lng float64
}

// NewLatLng builds a vertex from a latitude and longitude
func NewLatLng(lat, lng float64) LatLng {
	return LatLng{lat: lat, lng: lng}
}

func (p LatLng) Lat() float64 { return p.lat }

func (p LatLng) Lng() float64 { return p.lng }

// GeometryCodec encodes and decodes paths in the encoded polyline format
// (1e-5 precision, latitude first).
type GeometryCodec struct {
	codec polyline.Codec
}

// NewGeometryCodec returns a codec using the standard five decimal precision
func NewGeometryCodec() *GeometryCodec {
	return &GeometryCodec{codec: polyline.Codec{Dim: 2, Scale: 1e5}}
}

// DecodePath decodes an encoded polyline. A malformed string yields an error
// and no points.
func (g *GeometryCodec) DecodePath(encoded string) ([]LatLng, error) {
	coords, _, err := g.codec.DecodeCoords([]byte(encoded))
	if err != nil {
		return nil, fmt.Errorf("failed to decode path: %w", err)
	}

	path := make([]LatLng, 0, len(coords))
	for _, c := range coords {
		path = append(path, LatLng{lat: c[0], lng: c[1]})
	}
	return path, nil
}

// EncodePath encodes a path as an encoded polyline
func (g *GeometryCodec) EncodePath(path []LatLng) string {
	coords := make([][]float64, 0, len(path))
	for _, p := range path {
		coords = append(coords, []float64{p.lat, p.lng})
	}
	return string(g.codec.EncodeCoords(nil, coords))
}

// GeometryProvider exposes the geometry codec once it is usable. The boolean is
// false while the capability is unavailable.
type GeometryProvider interface {
	Geometry() (*GeometryCodec, bool)
}

type nativeGeometry struct {
	codec *GeometryCodec
}

// NativeGeometry returns a provider whose codec is always available. Mobile
// clients ship the codec with the app, so there is nothing to load.
func NativeGeometry() GeometryProvider {
	return &nativeGeometry{codec: NewGeometryCodec()}
}

func (n *nativeGeometry) Geometry() (*GeometryCodec, bool) {
	return n.codec, true
}
