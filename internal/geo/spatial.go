package geo

import "math"

const (
	// earthRadiusMeters is the mean Earth radius used by the haversine formula.
	earthRadiusMeters = 6371000.0

	// metersPerLatDegree approximates one degree of latitude.
	metersPerLatDegree = 111000.0

	// maxBoundingBoxLat keeps the longitude correction away from the poles,
	// where cos(lat) approaches zero and the delta blows up.
	maxBoundingBoxLat = 89.9

	// GoodAccuracyMeters is the GPS accuracy threshold below which a fix is
	// considered reliable enough to place a medal.
	GoodAccuracyMeters = 20.0
)

// Bounds describes a latitude/longitude rectangle around a center point.
type Bounds struct {
	MinLat float64 `json:"minLat"`
	MaxLat float64 `json:"maxLat"`
	MinLon float64 `json:"minLon"`
	MaxLon float64 `json:"maxLon"`
}

// Distance calculates the great-circle distance between two points in meters
// using the haversine formula.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLon := toRadians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusMeters * c
}

// BoundingBox approximates a square region of the given radius around a center
// point. The box is a pre-filter, not a geodesic circle: its corners lie
// farther than radiusMeters from the center, so callers wanting an exact
// circle must post-filter with Distance.
func BoundingBox(lat, lon, radiusMeters float64) Bounds {
	latDelta := radiusMeters / metersPerLatDegree

	// Longitude degrees shrink with latitude; clamp before the cosine
	// division so polar queries stay finite.
	clamped := math.Max(-maxBoundingBoxLat, math.Min(maxBoundingBoxLat, lat))
	lonDelta := radiusMeters / (metersPerLatDegree * math.Cos(toRadians(clamped)))

	return Bounds{
		MinLat: lat - latDelta,
		MaxLat: lat + latDelta,
		MinLon: lon - lonDelta,
		MaxLon: lon + lonDelta,
	}
}

// AccuracyAcceptable reports whether a GPS accuracy reading (meters) is good
// enough to trust the fix.
func AccuracyAcceptable(accuracyMeters float64) bool {
	return accuracyMeters > 0 && accuracyMeters <= GoodAccuracyMeters
}

func toRadians(degrees float64) float64 {
	return degrees * math.Pi / 180.0
}
