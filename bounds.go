package geoutil

// MaximumBounds is the largest box a CoordinateBounds reports. An unset
// bounds answers corner queries with these corners.
var MaximumBounds = CoordinateBounds{
	set:          true,
	minLatitude:  -85,
	maxLatitude:  90,
	minLongitude: -180,
	maxLongitude: 180,
}

// CoordinateBounds is an axis-aligned latitude / longitude box that grows to
// include the coordinates it is given. The zero value is an unset bounds,
// whose corner queries report MaximumBounds.
//
// Boxes crossing the antimeridian are not supported: including 179 and -179
// produces the box spanning the whole range between them.
//
// A CoordinateBounds must not be grown from multiple goroutines at once.
type CoordinateBounds struct {
	set          bool
	minLatitude  float64
	maxLatitude  float64
	minLongitude float64
	maxLongitude float64
}

// NewCoordinateBounds returns an unset bounds.
func NewCoordinateBounds() *CoordinateBounds {
	return &CoordinateBounds{}
}

// NewCoordinateBoundsFrom returns the bounds of the given coordinates.
func NewCoordinateBoundsFrom(coordinates ...Coordinate) *CoordinateBounds {
	b := &CoordinateBounds{}
	for _, c := range coordinates {
		b.GrowToInclude(c)
	}
	return b
}

// GrowToInclude expands the bounds to include c. The first call sets both
// corners to c.
func (b *CoordinateBounds) GrowToInclude(c Coordinate) {
	if !b.set {
		b.set = true
		b.minLatitude, b.maxLatitude = c.Latitude, c.Latitude
		b.minLongitude, b.maxLongitude = c.Longitude, c.Longitude
		return
	}
	b.minLatitude = min(b.minLatitude, c.Latitude)
	b.maxLatitude = max(b.maxLatitude, c.Latitude)
	b.minLongitude = min(b.minLongitude, c.Longitude)
	b.maxLongitude = max(b.maxLongitude, c.Longitude)
}

// IsSet reports whether any coordinate has been included.
func (b *CoordinateBounds) IsSet() bool {
	return b.set
}

func (b *CoordinateBounds) extent() (minLat, maxLat, minLon, maxLon float64) {
	if !b.set {
		b = &MaximumBounds
	}
	return b.minLatitude, b.maxLatitude, b.minLongitude, b.maxLongitude
}

// Northwest returns the corner at maximum latitude and minimum longitude.
func (b *CoordinateBounds) Northwest() Coordinate {
	_, maxLat, minLon, _ := b.extent()
	return Coordinate{Latitude: maxLat, Longitude: minLon}
}

// Southeast returns the corner at minimum latitude and maximum longitude.
func (b *CoordinateBounds) Southeast() Coordinate {
	minLat, _, _, maxLon := b.extent()
	return Coordinate{Latitude: minLat, Longitude: maxLon}
}

// Southwest returns the corner at minimum latitude and minimum longitude.
func (b *CoordinateBounds) Southwest() Coordinate {
	minLat, _, minLon, _ := b.extent()
	return Coordinate{Latitude: minLat, Longitude: minLon}
}

// Northeast returns the corner at maximum latitude and maximum longitude.
func (b *CoordinateBounds) Northeast() Coordinate {
	_, maxLat, _, maxLon := b.extent()
	return Coordinate{Latitude: maxLat, Longitude: maxLon}
}

// Center returns the midpoint of the latitude and longitude ranges. It is
// not the great-circle midpoint of the corners.
func (b *CoordinateBounds) Center() Coordinate {
	minLat, maxLat, minLon, maxLon := b.extent()
	return Coordinate{
		Latitude:  (minLat + maxLat) / 2,
		Longitude: (minLon + maxLon) / 2,
	}
}

// Contains reports whether c lies inside the box, edges included.
func (b *CoordinateBounds) Contains(c Coordinate) bool {
	minLat, maxLat, minLon, maxLon := b.extent()
	return c.Latitude >= minLat && c.Latitude <= maxLat &&
		c.Longitude >= minLon && c.Longitude <= maxLon
}

// Format returns the northwest and southeast corners as
// "lat,lon,lat,lon".
func (b *CoordinateBounds) Format(precision int) string {
	return b.Northwest().Format(precision) + "," + b.Southeast().Format(precision)
}

func (b *CoordinateBounds) String() string {
	return b.Format(DefaultPrecision)
}

// UTMLocationBounds is a box in the UTM grid with fixed corners.
type UTMLocationBounds struct {
	Northwest UTMLocation
	Southeast UTMLocation
}

// NewUTMLocationBounds returns bounds with the given corners.
func NewUTMLocationBounds(northwest, southeast UTMLocation) UTMLocationBounds {
	return UTMLocationBounds{Northwest: northwest, Southeast: southeast}
}

// Southwest returns the corner with the southeast northing and the northwest
// easting, in the zone of the southeast corner.
func (b UTMLocationBounds) Southwest() UTMLocation {
	return UTMLocation{
		Easting:  b.Northwest.Easting,
		Northing: b.Southeast.Northing,
		Zone:     b.Southeast.Zone,
	}
}

// Northeast returns the corner with the northwest northing and the southeast
// easting, in the zone of the northwest corner.
func (b UTMLocationBounds) Northeast() UTMLocation {
	return UTMLocation{
		Easting:  b.Southeast.Easting,
		Northing: b.Northwest.Northing,
		Zone:     b.Northwest.Zone,
	}
}

// Format returns the northwest and southeast corners joined by a comma.
func (b UTMLocationBounds) Format(precision int) string {
	return b.Northwest.Format(precision) + "," + b.Southeast.Format(precision)
}

func (b UTMLocationBounds) String() string {
	return b.Format(DefaultPrecision)
}
