package mapsdk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeometryCodec_DecodePath(t *testing.T) {
	codec := NewGeometryCodec()

	path, err := codec.DecodePath("_p~iF~ps|U_ulLnnqC_mqNvxq`@")
	require.NoError(t, err)
	require.Len(t, path, 3)

	assert.InDelta(t, 38.5, path[0].Lat(), 1e-9)
	assert.InDelta(t, -120.2, path[0].Lng(), 1e-9)
	assert.InDelta(t, 40.7, path[1].Lat(), 1e-9)
	assert.InDelta(t, -120.95, path[1].Lng(), 1e-9)
	assert.InDelta(t, 43.252, path[2].Lat(), 1e-9)
	assert.InDelta(t, -126.453, path[2].Lng(), 1e-9)
}

func TestGeometryCodec_DecodePathEmpty(t *testing.T) {
	path, err := NewGeometryCodec().DecodePath("")
	require.NoError(t, err)
	assert.Empty(t, path)
}

func TestGeometryCodec_DecodePathMalformed(t *testing.T) {
	// "_" opens a continuation group that never terminates
	path, err := NewGeometryCodec().DecodePath("_p~iF~ps|U_")
	assert.Error(t, err)
	assert.Nil(t, path)
}

func TestGeometryCodec_RoundTrip(t *testing.T) {
	codec := NewGeometryCodec()

	tests := []string{
		"_p~iF~ps|U_ulLnnqC_mqNvxq`@",
		"_p~iF~ps|U",
		"??",
	}

	for _, encoded := range tests {
		t.Run(encoded, func(t *testing.T) {
			path, err := codec.DecodePath(encoded)
			require.NoError(t, err)
			assert.Equal(t, encoded, codec.EncodePath(path))
		})
	}
}

func TestNativeGeometry_AlwaysAvailable(t *testing.T) {
	codec, ok := NativeGeometry().Geometry()
	assert.True(t, ok)
	assert.NotNil(t, codec)
}
