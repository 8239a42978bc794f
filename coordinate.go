package geoutil

import (
	"math"
	"strconv"
	"strings"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

// DefaultPrecision is the number of decimal places used by String. Eight
// places resolve positions to about a millimeter.
const DefaultPrecision = 8

// Coordinate is a latitude / longitude pair in degrees. Values are stored as
// given and never normalized or clamped.
type Coordinate struct {
	Latitude  float64
	Longitude float64
}

// NewCoordinate returns a Coordinate with the given latitude and longitude
// in degrees.
func NewCoordinate(latitude, longitude float64) Coordinate {
	return Coordinate{Latitude: latitude, Longitude: longitude}
}

// CoordinateFromLatLng converts an s2.LatLng to a Coordinate.
func CoordinateFromLatLng(ll s2.LatLng) Coordinate {
	return Coordinate{Latitude: ll.Lat.Degrees(), Longitude: ll.Lng.Degrees()}
}

// LatitudeRadians returns the latitude in radians.
func (c Coordinate) LatitudeRadians() float64 {
	return c.Latitude * math.Pi / 180
}

// LongitudeRadians returns the longitude in radians.
func (c Coordinate) LongitudeRadians() float64 {
	return c.Longitude * math.Pi / 180
}

// LatLng returns the coordinate as an s2.LatLng.
func (c Coordinate) LatLng() s2.LatLng {
	return s2.LatLng{
		Lat: s1.Angle(c.LatitudeRadians()),
		Lng: s1.Angle(c.LongitudeRadians()),
	}
}

// Format returns the comma separated "latitude,longitude" pair with the given
// number of decimal places. A negative precision selects DefaultPrecision.
func (c Coordinate) Format(precision int) string {
	return joinFloats(precision, c.Latitude, c.Longitude)
}

func (c Coordinate) String() string {
	return c.Format(DefaultPrecision)
}

// Hash returns a non-cryptographic hash of the coordinate. Two coordinates
// hash equal when their fields are bit-identical.
func (c Coordinate) Hash() uint64 {
	var seed uint64
	seed = hashCombine(seed, c.Latitude)
	seed = hashCombine(seed, c.Longitude)
	return seed
}

// ElevatedCoordinate is a Coordinate with an elevation in meters.
type ElevatedCoordinate struct {
	Coordinate
	Elevation float64
}

// NewElevatedCoordinate returns an ElevatedCoordinate with the given latitude
// and longitude in degrees and elevation in meters.
func NewElevatedCoordinate(latitude, longitude, elevation float64) ElevatedCoordinate {
	return ElevatedCoordinate{
		Coordinate: Coordinate{Latitude: latitude, Longitude: longitude},
		Elevation:  elevation,
	}
}

// Format returns "latitude,longitude,elevation".
func (c ElevatedCoordinate) Format(precision int) string {
	return joinFloats(precision, c.Latitude, c.Longitude, c.Elevation)
}

func (c ElevatedCoordinate) String() string {
	return c.Format(DefaultPrecision)
}

// Hash extends the coordinate hash with the elevation.
func (c ElevatedCoordinate) Hash() uint64 {
	return hashCombine(c.Coordinate.Hash(), c.Elevation)
}

// hashCombine mixes the bits of v into seed. The result depends on the order
// in which values are combined.
func hashCombine(seed uint64, v float64) uint64 {
	h := math.Float64bits(v)
	return seed ^ (h + 0x9e3779b97f4a7c15 + (seed << 6) + (seed >> 2))
}

func joinFloats(precision int, values ...float64) string {
	if precision < 0 {
		precision = DefaultPrecision
	}
	var sb strings.Builder
	for i, v := range values {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.FormatFloat(v, 'f', precision, 64))
	}
	return sb.String()
}
