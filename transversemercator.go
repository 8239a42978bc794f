package geoutil

import (
	"errors"
	"math"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

// nTerms is the number of Krüger series terms evaluated.
const nTerms = 6

// WGS84 ellipsoid parameters.
const (
	wgs84SemiMajorAxis = 6378137.0
	wgs84Flattening    = 1 / 298.257223563
)

// Series coefficients for the WGS84 ellipsoid (C. Rollins, 2006). alpha maps
// conformal to rectifying latitude, beta is its inverse.
var (
	wgs84Alpha = [nTerms]float64{
		8.3773182062446983032e-04,
		7.608527773572489156e-07,
		1.19764550324249210e-09,
		2.4291706803973131e-12,
		5.711818369154105e-15,
		1.47999802705262e-17,
	}
	wgs84Beta = [nTerms]float64{
		-8.3773216405794867707e-04,
		-5.905870152220365181e-08,
		-1.67348266534382493e-10,
		-2.1647981104903862e-13,
		-3.787930968839601e-16,
		-7.23676928796690e-19,
	}
)

// maxDeltaLongitude is the widest distance from the central meridian the
// series is evaluated at.
const maxDeltaLongitude = 70 * math.Pi / 180

var errTooFarFromMeridian = errors.New("too far from central meridian")

// transverseMercator projects between geodetic coordinates and transverse
// Mercator easting / northing on the WGS84 ellipsoid. The origin latitude is
// the equator, so the only false offset is the false easting.
type transverseMercator struct {
	centralMeridian float64 // radians, in (-Pi, Pi]
	falseEasting    float64 // meters
	eccentricity    float64
	k0R4            float64 // scale factor times the meridional isoperimetric radius
	k0R4inv         float64
}

func newTransverseMercator(centralMeridian, falseEasting, scaleFactor float64) *transverseMercator {
	if centralMeridian > math.Pi {
		centralMeridian -= 2 * math.Pi
	}
	f := wgs84Flattening
	n := f / (2 - f) // Helmert's n, (a - b)/(a + b)
	n2 := n * n
	r4oa := (1 + n2/4 + n2*n2/64 + n2*n2*n2/256 +
		25*n2*n2*n2*n2/16384 + 49*n2*n2*n2*n2*n2/65536) / (1 + n)

	t := &transverseMercator{
		centralMeridian: centralMeridian,
		falseEasting:    falseEasting,
		eccentricity:    math.Sqrt(2*f - f*f),
		k0R4:            r4oa * scaleFactor * wgs84SemiMajorAxis,
	}
	t.k0R4inv = 1 / t.k0R4
	return t
}

// project returns the easting and northing of ll. The northing is relative
// to the equator, negative in the southern hemisphere.
func (t *transverseMercator) project(ll s2.LatLng) (easting, northing float64, err error) {
	latitude := ll.Lat.Radians()
	lambda := wrapRadians(ll.Lng.Radians() - t.centralMeridian)
	if err := checkMeridianDistance(latitude, lambda); err != nil {
		return 0, 0, err
	}

	sinPhi, cosPhi := math.Sincos(latitude)
	sinLam, cosLam := math.Sincos(lambda)

	// geodetic to conformal latitude; only its sine and cosine are needed
	e := t.eccentricity
	p := math.Exp(e * math.Atanh(e*sinPhi))
	part1 := (1 + sinPhi) / p
	part2 := (1 - sinPhi) * p
	denom := part1 + part2
	cosChi := 2 * cosPhi / denom
	sinChi := (part1 - part2) / denom

	// spherical transverse Mercator
	u := math.Atanh(cosChi * sinLam)
	v := math.Atan2(sinChi, cosChi*cosLam)

	coshU, sinhU := hyperbolicSeries(2 * u)
	cosV, sinV := trigSeries(2 * v)

	x, y := u, v
	for k := nTerms - 1; k >= 0; k-- {
		x += wgs84Alpha[k] * sinhU[k] * cosV[k]
		y += wgs84Alpha[k] * coshU[k] * sinV[k]
	}
	return t.k0R4*x + t.falseEasting, t.k0R4 * y, nil
}

// unproject is the inverse of project.
func (t *transverseMercator) unproject(easting, northing float64) s2.LatLng {
	x := t.k0R4inv * (easting - t.falseEasting)
	y := t.k0R4inv * northing

	coshX, sinhX := hyperbolicSeries(2 * x)
	cosY, sinY := trigSeries(2 * y)

	u, v := x, y
	for k := nTerms - 1; k >= 0; k-- {
		u += wgs84Beta[k] * sinhX[k] * cosY[k]
		v += wgs84Beta[k] * coshX[k] * sinY[k]
	}

	coshU := math.Cosh(u)
	sinV, cosV := math.Sincos(v)

	var lambda float64
	if math.Abs(cosV) >= 1e-11 || math.Abs(coshU) >= 1e-11 {
		lambda = math.Atan2(math.Sinh(u), cosV)
	}
	latitude := conformalToGeodetic(sinV/coshU, t.eccentricity)
	longitude := wrapRadians(t.centralMeridian + lambda)
	return s2.LatLng{Lat: s1.Angle(latitude), Lng: s1.Angle(longitude)}
}

// checkMeridianDistance rejects points more than maxDeltaLongitude from the
// central meridian, unless they are that close to a pole or to the
// antimeridian of the central meridian.
func checkMeridianDistance(latitude, lambda float64) error {
	d := min(
		math.Abs(lambda),
		math.Abs(lambda-math.Pi),
		math.Abs(lambda+math.Pi),
		math.Pi/2-latitude,
		math.Pi/2+latitude,
	)
	if d > maxDeltaLongitude {
		return errTooFarFromMeridian
	}
	return nil
}

// conformalToGeodetic iterates the geodetic latitude from the sine of the
// conformal latitude.
func conformalToGeodetic(sinChi, e float64) float64 {
	onePlus := 1 + sinChi
	oneMinus := 1 - sinChi

	s := sinChi
	for i := 0; i < 30; i++ {
		p := math.Exp(e * math.Atanh(e*s))
		pSq := p * p
		next := (onePlus*pSq - oneMinus) / (onePlus*pSq + oneMinus)
		if math.Abs(next-s) < 1e-12 {
			s = next
			break
		}
		s = next
	}
	return math.Asin(s)
}

// hyperbolicSeries returns cosh(k*twoX) and sinh(k*twoX) for k = 1..nTerms
// by repeated angle addition.
func hyperbolicSeries(twoX float64) (c, s [nTerms]float64) {
	c0, s0 := math.Cosh(twoX), math.Sinh(twoX)
	c[0], s[0] = c0, s0
	for k := 1; k < nTerms; k++ {
		c[k] = c[k-1]*c0 + s[k-1]*s0
		s[k] = s[k-1]*c0 + c[k-1]*s0
	}
	return c, s
}

// trigSeries returns cos(k*twoY) and sin(k*twoY) for k = 1..nTerms.
func trigSeries(twoY float64) (c, s [nTerms]float64) {
	s0, c0 := math.Sincos(twoY)
	c[0], s[0] = c0, s0
	for k := 1; k < nTerms; k++ {
		c[k] = c[k-1]*c0 - s[k-1]*s0
		s[k] = s[k-1]*c0 + c[k-1]*s0
	}
	return c, s
}

// wrapRadians wraps an angle into (-Pi, Pi].
func wrapRadians(a float64) float64 {
	if a > math.Pi {
		a -= 2 * math.Pi
	}
	if a <= -math.Pi {
		a += 2 * math.Pi
	}
	return a
}
