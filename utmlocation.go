package geoutil

import (
	"fmt"
	"strconv"
	"strings"
)

// Hemisphere represents the hemisphere, north or south
type Hemisphere byte

// Hemisphere constants
const (
	HemisphereInvalid Hemisphere = iota
	HemisphereNorth
	HemisphereSouth
)

func (h Hemisphere) String() string {
	switch h {
	case HemisphereNorth:
		return "N"
	case HemisphereSouth:
		return "S"
	}
	return "invalid"
}

// latitudeBands holds the UTM latitude band letters from south to north.
// Each band spans 8 degrees starting at -80, except X which spans 12.
const latitudeBands = "CDEFGHJKLMNPQRSTUVWX"

// LatitudeBand returns the UTM latitude band letter for a latitude in
// degrees. It reports false outside [-80, 84).
func LatitudeBand(latitude float64) (byte, bool) {
	if !(latitude >= -80 && latitude < 84) {
		return 0, false
	}
	i := int((latitude + 80) / 8)
	if i >= len(latitudeBands) {
		i = len(latitudeBands) - 1
	}
	return latitudeBands[i], true
}

// Zone identifies a UTM grid zone by its longitudinal zone number (1-60) and
// latitude band letter.
type Zone struct {
	Number int
	Letter byte
}

// ParseZone parses the canonical zone form, e.g. "18T". The letter is case
// insensitive; surrounding whitespace is ignored.
func ParseZone(s string) (Zone, error) {
	s = strings.TrimSpace(s)
	if len(s) < 2 {
		return Zone{}, fmt.Errorf("invalid zone %q", s)
	}
	n, err := strconv.Atoi(s[:len(s)-1])
	if err != nil {
		return Zone{}, fmt.Errorf("invalid zone number in %q", s)
	}
	z := Zone{Number: n, Letter: toUpper(s[len(s)-1])}
	if !z.Valid() {
		return Zone{}, fmt.Errorf("invalid zone %q", s)
	}
	return z, nil
}

// MustParseZone is like ParseZone but panics on error.
func MustParseZone(s string) Zone {
	z, err := ParseZone(s)
	if err != nil {
		panic(err)
	}
	return z
}

// Valid reports whether the zone number is in 1-60 and the letter is a UTM
// latitude band.
func (z Zone) Valid() bool {
	return z.Number >= 1 && z.Number <= 60 && strings.IndexByte(latitudeBands, z.Letter) >= 0
}

// Hemisphere returns the hemisphere of the latitude band. Bands N and above
// are northern.
func (z Zone) Hemisphere() Hemisphere {
	if strings.IndexByte(latitudeBands, z.Letter) < 0 {
		return HemisphereInvalid
	}
	if z.Letter >= 'N' {
		return HemisphereNorth
	}
	return HemisphereSouth
}

func (z Zone) String() string {
	if z.Letter == 0 {
		return strconv.Itoa(z.Number)
	}
	return strconv.Itoa(z.Number) + string(z.Letter)
}

// MarshalText implements encoding.TextMarshaler.
func (z Zone) MarshalText() ([]byte, error) {
	return []byte(z.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (z *Zone) UnmarshalText(text []byte) error {
	parsed, err := ParseZone(string(text))
	if err != nil {
		return err
	}
	*z = parsed
	return nil
}

// UTMLocation is a position in the UTM grid.
type UTMLocation struct {
	Easting  float64 // meters
	Northing float64 // meters
	Zone     Zone
}

// NewUTMLocation returns a UTMLocation with the given easting, northing and
// zone.
func NewUTMLocation(easting, northing float64, zone Zone) UTMLocation {
	return UTMLocation{Easting: easting, Northing: northing, Zone: zone}
}

// Vec returns the easting and northing as a planar x, y pair.
func (l UTMLocation) Vec() (x, y float64) {
	return l.Easting, l.Northing
}

// Format returns "easting,northing,zone".
func (l UTMLocation) Format(precision int) string {
	return joinFloats(precision, l.Easting, l.Northing) + "," + l.Zone.String()
}

func (l UTMLocation) String() string {
	return l.Format(DefaultPrecision)
}

// Hash returns a non-cryptographic hash of the location.
func (l UTMLocation) Hash() uint64 {
	var seed uint64
	seed = hashCombine(seed, l.Easting)
	seed = hashCombine(seed, l.Northing)
	seed = hashCombine(seed, float64(l.Zone.Number))
	return hashCombine(seed, float64(l.Zone.Letter))
}

// ElevatedUTMLocation is a UTMLocation with an elevation in meters.
type ElevatedUTMLocation struct {
	UTMLocation
	Elevation float64
}

// NewElevatedUTMLocation returns an ElevatedUTMLocation.
func NewElevatedUTMLocation(easting, northing, elevation float64, zone Zone) ElevatedUTMLocation {
	return ElevatedUTMLocation{
		UTMLocation: UTMLocation{Easting: easting, Northing: northing, Zone: zone},
		Elevation:   elevation,
	}
}

// Format returns "easting,northing,elevation,zone".
func (l ElevatedUTMLocation) Format(precision int) string {
	return joinFloats(precision, l.Easting, l.Northing, l.Elevation) + "," + l.Zone.String()
}

func (l ElevatedUTMLocation) String() string {
	return l.Format(DefaultPrecision)
}

// Hash extends the location hash with the elevation.
func (l ElevatedUTMLocation) Hash() uint64 {
	return hashCombine(l.UTMLocation.Hash(), l.Elevation)
}

func toUpper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - ('a' - 'A')
	}
	return b
}
