package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceIdenticalPoints(t *testing.T) {
	points := [][2]float64{
		{0, 0},
		{35.6812, 139.7671},
		{-33.8688, 151.2093},
		{89.9, 0},
	}
	for _, p := range points {
		assert.Zero(t, Distance(p[0], p[1], p[0], p[1]))
	}
}

func TestDistanceSymmetry(t *testing.T) {
	d1 := Distance(35.6812, 139.7671, 34.6937, 135.5023)
	d2 := Distance(34.6937, 135.5023, 35.6812, 139.7671)
	assert.Equal(t, d1, d2)
}

func TestDistanceOneDegreeOfLatitude(t *testing.T) {
	// One degree along a meridian is about 111 km on the sphere we use.
	d := Distance(35.0, 139.0, 36.0, 139.0)
	assert.InDelta(t, 111000.0, d, 500.0)
}

func TestDistanceKnownCities(t *testing.T) {
	// Tokyo Station to Osaka Station, roughly 400 km.
	d := Distance(35.6812, 139.7671, 34.7025, 135.4959)
	assert.InDelta(t, 400000.0, d, 10000.0)
}

func TestBoundingBoxContainsCenter(t *testing.T) {
	tests := []struct {
		name   string
		lat    float64
		lon    float64
		radius float64
	}{
		{"tokyo 5km", 35.6812, 139.7671, 5000},
		{"equator small", 0, 0, 5},
		{"southern hemisphere", -33.8688, 151.2093, 1000},
		{"high latitude", 68.0, 20.0, 2000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := BoundingBox(tt.lat, tt.lon, tt.radius)
			assert.Less(t, b.MinLat, tt.lat)
			assert.Greater(t, b.MaxLat, tt.lat)
			assert.Less(t, b.MinLon, tt.lon)
			assert.Greater(t, b.MaxLon, tt.lon)
		})
	}
}

func TestBoundingBoxCornersOutsideRadius(t *testing.T) {
	lat, lon, radius := 35.6812, 139.7671, 5000.0
	b := BoundingBox(lat, lon, radius)

	corners := [][2]float64{
		{b.MinLat, b.MinLon},
		{b.MinLat, b.MaxLon},
		{b.MaxLat, b.MinLon},
		{b.MaxLat, b.MaxLon},
	}
	for _, c := range corners {
		assert.GreaterOrEqual(t, Distance(lat, lon, c[0], c[1]), radius)
	}
}

func TestBoundingBoxEdgesApproximateRadius(t *testing.T) {
	lat, lon, radius := 35.6812, 139.7671, 5000.0
	b := BoundingBox(lat, lon, radius)

	// Edge midpoints should sit near the requested radius.
	assert.InDelta(t, radius, Distance(lat, lon, b.MaxLat, lon), radius*0.05)
	assert.InDelta(t, radius, Distance(lat, lon, lat, b.MaxLon), radius*0.05)
}

func TestBoundingBoxPolarClamp(t *testing.T) {
	b := BoundingBox(90.0, 0.0, 1000)
	assert.False(t, math.IsInf(b.MaxLon, 1))
	assert.False(t, math.IsNaN(b.MaxLon))
	assert.Greater(t, b.MaxLon, 0.0)
}

func TestAccuracyAcceptable(t *testing.T) {
	assert.True(t, AccuracyAcceptable(5))
	assert.True(t, AccuracyAcceptable(20))
	assert.False(t, AccuracyAcceptable(20.1))
	assert.False(t, AccuracyAcceptable(0))
	assert.False(t, AccuracyAcceptable(-1))
}
