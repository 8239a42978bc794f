package geoutil

// DefaultUTMConverter is a WGS84 ellipsoid based UTM converter.
var DefaultUTMConverter = NewUTM()

// DefaultProjection is the projection used by ToUTM and ToCoordinate.
var DefaultProjection Projection = DefaultUTMConverter
