package geoutil

import "math"

// PolylinePrecision is the number of decimal places of the Google encoded
// polyline format. OSRM and GraphHopper also emit precision 6.
const PolylinePrecision = 5

// DecodePolyline decodes an encoded polyline string into coordinates, in
// input order.
//
// See https://developers.google.com/maps/documentation/utilities/polylinealgorithm
func DecodePolyline(encoded string) ([]Coordinate, error) {
	return DecodePolylinePrecision(encoded, PolylinePrecision)
}

// DecodePolylinePrecision decodes a polyline whose values are scaled by
// 10^precision.
//
// Malformed input returns a *DecodeError. A point whose latitude is not
// followed by a longitude is truncated.
func DecodePolylinePrecision(encoded string, precision int) ([]Coordinate, error) {
	factor := math.Pow10(precision)
	points := make([]Coordinate, 0, len(encoded)/4)

	var lat, lng int64
	for index := 0; index < len(encoded); {
		dlat, next, err := decodeSigned(encoded, index)
		if err != nil {
			return nil, err
		}
		dlng, next, err := decodeSigned(encoded, next)
		if err != nil {
			return nil, err
		}
		index = next

		lat += dlat
		lng += dlng
		points = append(points, Coordinate{
			Latitude:  float64(lat) / factor,
			Longitude: float64(lng) / factor,
		})
	}
	return points, nil
}

// decodeSigned reads one zig-zag encoded value starting at index and returns
// it with the index of the following byte.
func decodeSigned(encoded string, index int) (int64, int, error) {
	var result uint64
	var shift uint
	for {
		if index >= len(encoded) {
			return 0, index, &DecodeError{Offset: index, Err: ErrTruncated}
		}
		c := encoded[index]
		if c < 63 || c > 126 {
			return 0, index, &DecodeError{Offset: index, Err: ErrInvalidByte}
		}
		// twelve chunks already fill 60 bits
		if shift >= 60 {
			return 0, index, &DecodeError{Offset: index, Err: ErrOverflow}
		}
		b := uint64(c - 63)
		index++

		result |= (b & 0x1f) << shift
		shift += 5
		if b < 0x20 {
			break
		}
	}

	v := int64(result >> 1)
	if result&1 != 0 {
		v = ^v
	}
	return v, index, nil
}

// EncodePolyline encodes coordinates in the Google encoded polyline format.
func EncodePolyline(points []Coordinate) string {
	return EncodePolylinePrecision(points, PolylinePrecision)
}

// EncodePolylinePrecision encodes coordinates scaled by 10^precision.
// Values are rounded to the nearest unit of the last decimal place.
func EncodePolylinePrecision(points []Coordinate, precision int) string {
	factor := math.Pow10(precision)
	buf := make([]byte, 0, len(points)*6)

	var prevLat, prevLng int64
	for _, p := range points {
		lat := int64(math.Round(p.Latitude * factor))
		lng := int64(math.Round(p.Longitude * factor))
		buf = appendSigned(buf, lat-prevLat)
		buf = appendSigned(buf, lng-prevLng)
		prevLat, prevLng = lat, lng
	}
	return string(buf)
}

func appendSigned(buf []byte, value int64) []byte {
	s := uint64(value) << 1
	if value < 0 {
		s = ^s
	}
	for s >= 0x20 {
		buf = append(buf, byte((0x20|(s&0x1f))+63))
		s >>= 5
	}
	return append(buf, byte(s+63))
}
