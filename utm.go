package geoutil

import (
	"errors"
	"math"
	"strconv"

	"github.com/golang/geo/s2"
)

// UTM projection domain. The upper bound is the northern edge of band X.
const (
	utmMinLatDegrees = -80.0
	utmMaxLatDegrees = 84.0
	utmMinEasting    = 100000.0
	utmMaxEasting    = 900000.0
	utmMinNorthing   = 0.0
	utmMaxNorthing   = 10000000.0

	utmFalseEasting  = 500000.0
	utmFalseNorthing = 10000000.0 // southern hemisphere only
	utmScaleFactor   = 0.9996
)

// epsilonDegrees is about one meter of latitude; inverse projections may land
// that far outside the forward domain.
const epsilonDegrees = 1.0e-5

// UTM is a WGS84 UTM converter. It implements Projection and is safe for
// concurrent use.
type UTM struct {
	override int
	zones    [61]*transverseMercator // indexed by zone number
}

// NewUTM constructs a new UTM converter for the WGS84 ellipsoid.
func NewUTM() *UTM {
	u := &UTM{}
	for zone := 1; zone <= 60; zone++ {
		centralMeridian := float64(6*zone-183) * math.Pi / 180
		u.zones[zone] = newTransverseMercator(centralMeridian, utmFalseEasting, utmScaleFactor)
	}
	return u
}

// NewUTMZoneOverride constructs a converter whose forward projection uses
// the given zone number instead of the computed one. The override must lie
// within one zone of the computed zone, wrapping between 60 and 1.
func NewUTMZoneOverride(zone int) (*UTM, error) {
	if zone < 1 || zone > 60 {
		return nil, errors.New("zone override out of range")
	}
	u := NewUTM()
	u.override = zone
	return u, nil
}

// ZoneNumber returns the UTM zone number for a coordinate in degrees,
// including the exceptions over southern Norway and Svalbard.
func ZoneNumber(latitude, longitude float64) int {
	lon := wrapDegrees(longitude, -180, 180)
	zone := int((lon+180)/6) + 1
	if zone > 60 {
		zone = 60
	}

	switch {
	case latitude >= 56 && latitude < 64 && lon >= 3 && lon < 12:
		zone = 32
	case latitude >= 72 && latitude < 84:
		switch {
		case lon >= 0 && lon < 9:
			zone = 31
		case lon >= 9 && lon < 21:
			zone = 33
		case lon >= 21 && lon < 33:
			zone = 35
		case lon >= 33 && lon < 42:
			zone = 37
		}
	}
	return zone
}

func (u *UTM) applyOverride(zone int) (int, error) {
	if u.override == 0 {
		return zone, nil
	}
	o := u.override
	switch {
	case zone == 1 && o == 60, zone == 60 && o == 1:
	case o >= zone-1 && o <= zone+1:
	default:
		return 0, &ProjectionRangeError{Op: "forward", Field: "zone", Value: strconv.Itoa(o)}
	}
	return o, nil
}

// Forward projects a latitude and longitude in degrees to UTM.
func (u *UTM) Forward(latitude, longitude float64) (easting, northing float64, zone Zone, err error) {
	// tiny negative latitudes belong to the northern hemisphere
	if latitude > -1.0e-9 && latitude < 0 {
		latitude = 0
	}
	letter, ok := LatitudeBand(latitude)
	if !ok {
		return 0, 0, Zone{}, rangeError("forward", "latitude", latitude)
	}
	if !(longitude >= -180 && longitude <= 180) {
		return 0, 0, Zone{}, rangeError("forward", "longitude", longitude)
	}

	number, err := u.applyOverride(ZoneNumber(latitude, longitude))
	if err != nil {
		return 0, 0, Zone{}, err
	}

	easting, northing, err = u.zones[number].project(s2.LatLngFromDegrees(latitude, longitude))
	if err != nil {
		return 0, 0, Zone{}, rangeError("forward", "longitude", longitude)
	}
	if latitude < 0 {
		northing += utmFalseNorthing
	}

	if easting < utmMinEasting || easting > utmMaxEasting {
		return 0, 0, Zone{}, rangeError("forward", "easting", easting)
	}
	if northing < utmMinNorthing || northing > utmMaxNorthing {
		return 0, 0, Zone{}, rangeError("forward", "northing", northing)
	}
	return easting, northing, Zone{Number: number, Letter: letter}, nil
}

// Inverse converts a UTM northing, easting and zone to latitude and
// longitude in degrees. The hemisphere is taken from the zone's latitude
// band.
func (u *UTM) Inverse(northing, easting float64, zone Zone) (latitude, longitude float64, err error) {
	if !zone.Valid() {
		return 0, 0, &ProjectionRangeError{Op: "inverse", Field: "zone", Value: zone.String()}
	}
	if !(easting >= utmMinEasting && easting <= utmMaxEasting) {
		return 0, 0, rangeError("inverse", "easting", easting)
	}
	if !(northing >= utmMinNorthing && northing <= utmMaxNorthing) {
		return 0, 0, rangeError("inverse", "northing", northing)
	}

	if zone.Hemisphere() == HemisphereSouth {
		northing -= utmFalseNorthing
	}
	ll := u.zones[zone.Number].unproject(easting, northing)

	latitude = ll.Lat.Degrees()
	longitude = ll.Lng.Degrees()
	if latitude < utmMinLatDegrees-epsilonDegrees || latitude >= utmMaxLatDegrees+epsilonDegrees {
		return 0, 0, rangeError("inverse", "latitude", latitude)
	}
	return latitude, longitude, nil
}

func rangeError(op, field string, v float64) error {
	return &ProjectionRangeError{Op: op, Field: field, Value: strconv.FormatFloat(v, 'g', -1, 64)}
}
