package geoutil

// Projection converts between geographic and UTM coordinates.
type Projection interface {
	// Forward projects a latitude and longitude in degrees.
	Forward(latitude, longitude float64) (easting, northing float64, zone Zone, err error)
	// Inverse returns the latitude and longitude in degrees of a UTM
	// position.
	Inverse(northing, easting float64, zone Zone) (latitude, longitude float64, err error)
}

// ToUTM converts the coordinate to a UTMLocation with DefaultProjection.
func ToUTM(c Coordinate) (UTMLocation, error) {
	return ToUTMWith(DefaultProjection, c)
}

// ToUTMWith converts the coordinate to a UTMLocation with p.
func ToUTMWith(p Projection, c Coordinate) (UTMLocation, error) {
	easting, northing, zone, err := p.Forward(c.Latitude, c.Longitude)
	if err != nil {
		return UTMLocation{}, err
	}
	return UTMLocation{Easting: easting, Northing: northing, Zone: zone}, nil
}

// ToCoordinate converts the UTMLocation to a Coordinate with
// DefaultProjection.
func ToCoordinate(l UTMLocation) (Coordinate, error) {
	return ToCoordinateWith(DefaultProjection, l)
}

// ToCoordinateWith converts the UTMLocation to a Coordinate with p.
func ToCoordinateWith(p Projection, l UTMLocation) (Coordinate, error) {
	lat, lon, err := p.Inverse(l.Northing, l.Easting, l.Zone)
	if err != nil {
		return Coordinate{}, err
	}
	return Coordinate{Latitude: lat, Longitude: lon}, nil
}

// ToElevatedUTM converts the coordinate, carrying its elevation through.
func ToElevatedUTM(c ElevatedCoordinate) (ElevatedUTMLocation, error) {
	l, err := ToUTM(c.Coordinate)
	if err != nil {
		return ElevatedUTMLocation{}, err
	}
	return ElevatedUTMLocation{UTMLocation: l, Elevation: c.Elevation}, nil
}

// ToElevatedCoordinate converts the location, carrying its elevation
// through.
func ToElevatedCoordinate(l ElevatedUTMLocation) (ElevatedCoordinate, error) {
	c, err := ToCoordinate(l.UTMLocation)
	if err != nil {
		return ElevatedCoordinate{}, err
	}
	return ElevatedCoordinate{Coordinate: c, Elevation: l.Elevation}, nil
}
