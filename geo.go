// Package geoutil provides measurement and conversion utilities for
// geographic coordinates: great-circle distance, bearing and midpoint on a
// spherical earth, encoded polyline decoding, bounding boxes, and WGS84 UTM
// projection.
package geoutil

import (
	"math"
	"math/rand/v2"
)

// EarthRadiusKm is the approximate radius of a spherical earth in
// kilometers. It is subject to notable error, particularly near the poles.
const EarthRadiusKm = 6371.01

// Ranges drawn from by RandomCoordinate.
const (
	MinLatitudeDegrees  = -90.0
	MaxLatitudeDegrees  = 90.0
	MinLongitudeDegrees = -180.0
	MaxLongitudeDegrees = 180.0

	MinLatitudeRadians  = -math.Pi / 2
	MaxLatitudeRadians  = math.Pi / 2
	MinLongitudeRadians = -math.Pi
	MaxLongitudeRadians = math.Pi
)

// DistanceSpherical returns the great-circle distance in kilometers between
// two coordinates using the spherical law of cosines. It loses precision for
// very short distances; prefer DistanceHaversine.
func DistanceSpherical(c0, c1 Coordinate) float64 {
	lat0 := c0.LatitudeRadians()
	lat1 := c1.LatitudeRadians()
	deltaLon := c1.LongitudeRadians() - c0.LongitudeRadians()

	sum := math.Sin(lat0)*math.Sin(lat1) +
		math.Cos(lat0)*math.Cos(lat1)*math.Cos(deltaLon)
	return EarthRadiusKm * math.Acos(clamp(sum, -1, 1))
}

// DistanceHaversine returns the great-circle distance in kilometers between
// two coordinates using the haversine formula.
//
// See http://www.movable-type.co.uk/scripts/latlong.html
func DistanceHaversine(c0, c1 Coordinate) float64 {
	lat0 := c0.LatitudeRadians()
	lat1 := c1.LatitudeRadians()
	deltaLat := lat1 - lat0
	deltaLon := c1.LongitudeRadians() - c0.LongitudeRadians()

	s0 := math.Sin(deltaLat / 2)
	s1 := math.Sin(deltaLon / 2)
	h := clamp(s0*s0+s1*s1*math.Cos(lat0)*math.Cos(lat1), 0, 1)
	return EarthRadiusKm * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// BearingHaversine returns the initial compass bearing in degrees, in
// [0, 360), of the great circle from c0 to c1.
func BearingHaversine(c0, c1 Coordinate) float64 {
	lat0 := c0.LatitudeRadians()
	lat1 := c1.LatitudeRadians()
	deltaLon := c1.LongitudeRadians() - c0.LongitudeRadians()

	y := math.Sin(deltaLon) * math.Cos(lat1)
	x := math.Cos(lat0)*math.Sin(lat1) -
		math.Sin(lat0)*math.Cos(lat1)*math.Cos(deltaLon)
	return wrapDegrees(degrees(math.Atan2(y, x)), 0, 360)
}

// Midpoint returns the point halfway along the great circle from c0 to c1.
// Its longitude is normalized to [-180, 180).
func Midpoint(c0, c1 Coordinate) Coordinate {
	lat0 := c0.LatitudeRadians()
	lat1 := c1.LatitudeRadians()
	lon0 := c0.LongitudeRadians()
	deltaLon := c1.LongitudeRadians() - lon0

	bx := math.Cos(lat1) * math.Cos(deltaLon)
	by := math.Cos(lat1) * math.Sin(deltaLon)
	cx := math.Cos(lat0) + bx

	lat := math.Atan2(math.Sin(lat0)+math.Sin(lat1), math.Sqrt(cx*cx+by*by))
	lon := lon0 + math.Atan2(by, cx)
	return Coordinate{
		Latitude:  degrees(lat),
		Longitude: wrapDegrees(degrees(lon), -180, 180),
	}
}

// DestinationPoint returns the point reached by travelling distanceKm along
// the great circle leaving origin at the given initial bearing in degrees.
func DestinationPoint(origin Coordinate, bearing, distanceKm float64) Coordinate {
	lat0 := origin.LatitudeRadians()
	lon0 := origin.LongitudeRadians()
	theta := bearing * math.Pi / 180
	delta := distanceKm / EarthRadiusKm

	sinLat := math.Sin(lat0)*math.Cos(delta) +
		math.Cos(lat0)*math.Sin(delta)*math.Cos(theta)
	lat := math.Asin(clamp(sinLat, -1, 1))
	lon := lon0 + math.Atan2(
		math.Sin(theta)*math.Sin(delta)*math.Cos(lat0),
		math.Cos(delta)-math.Sin(lat0)*sinLat)
	return Coordinate{
		Latitude:  degrees(lat),
		Longitude: wrapDegrees(degrees(lon), -180, 180),
	}
}

// RandomCoordinate returns a coordinate drawn uniformly in degrees with
// latitude in [MinLatitudeDegrees, MaxLatitudeDegrees) and longitude in
// [MinLongitudeDegrees, MaxLongitudeDegrees). The points are not uniform over
// the sphere's surface.
//
// r is not safe for concurrent use; callers sharing a source must serialize
// access.
func RandomCoordinate(r *rand.Rand) Coordinate {
	return Coordinate{
		Latitude:  MinLatitudeDegrees + r.Float64()*(MaxLatitudeDegrees-MinLatitudeDegrees),
		Longitude: MinLongitudeDegrees + r.Float64()*(MaxLongitudeDegrees-MinLongitudeDegrees),
	}
}

// RandomUTMLocation projects a random coordinate inside the UTM domain with
// DefaultProjection.
func RandomUTMLocation(r *rand.Rand) (UTMLocation, error) {
	for {
		c := RandomCoordinate(r)
		if !(c.Latitude >= utmMinLatDegrees && c.Latitude < utmMaxLatDegrees) {
			continue
		}
		return ToUTM(c)
	}
}

func degrees(radians float64) float64 {
	return radians * 180 / math.Pi
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// wrapDegrees wraps v into [from, to).
func wrapDegrees(v, from, to float64) float64 {
	span := to - from
	v = math.Mod(v-from, span)
	if v < 0 {
		v += span
	}
	// Mod of a tiny negative value can round up to span
	if v >= span {
		v = 0
	}
	return v + from
}
