package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tzneal/geoutil"

	"github.com/jessevdk/go-flags"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const places = `
precision: 2
places:
  - name: London
    lat: 51.50853
    lon: -0.12574
  - name: Tokyo
    lat: 35.61488
    lon: 139.5813
  - name: Lausanne
    lat: 46.5197
    lon: 6.6323
    elevation: 372.5
`

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	args = append([]string{"--log-level", "disabled"}, args...)
	var buf bytes.Buffer
	a := &app{out: &buf}
	parser := newParser(a, flags.HelpFlag|flags.PassDoubleDash)
	_, err := parser.ParseArgs(args)
	return buf.String(), err
}

func writePlaces(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "places.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDistance(t *testing.T) {
	path := writePlaces(t, places)
	out, err := execute(t, "--places", path, "distance", "london", "Tokyo")
	require.NoError(t, err)
	require.Equal(t, "spherical  9562.12 km\n"+
		"haversine  9562.12 km\n"+
		"bearing    31.80\n"+
		"midpoint   68.94,89.62\n", out)

	out, err = execute(t, "--format", "json", "distance", "51.50853,-0.12574", "35.61488,139.5813")
	require.NoError(t, err)
	var v distanceView
	require.NoError(t, json.Unmarshal([]byte(out), &v))
	require.InDelta(t, 9562.12, v.HaversineKm, 0.01)
	require.InDelta(t, 9562.12, v.SphericalKm, 0.01)
	require.InDelta(t, 31.8043, v.Bearing, 1e-3)
	require.Equal(t, 51.50853, v.From.Latitude)
	require.Equal(t, 139.5813, v.To.Longitude)
}

func TestDistanceInvalidPoint(t *testing.T) {
	_, err := execute(t, "distance", "nowhere", "1,2")
	require.ErrorContains(t, err, "invalid point")

	_, err = execute(t, "distance", "1,x", "1,2")
	require.ErrorContains(t, err, "bad number")

	_, err = execute(t, "distance", "1,2,3,4", "1,2")
	require.ErrorContains(t, err, "invalid point")
}

func TestDecode(t *testing.T) {
	out, err := execute(t, "--precision", "3", "decode", "_p~iF~ps|U_ulLnnqC_mqNvxq`@")
	require.NoError(t, err)
	require.Equal(t, "38.500,-120.200\n40.700,-120.950\n43.252,-126.453\n", out)

	out, err = execute(t, "--format", "json", "decode", "_p~iF~ps|U_ulLnnqC_mqNvxq`@")
	require.NoError(t, err)
	var v decodeView
	require.NoError(t, json.Unmarshal([]byte(out), &v))
	require.Len(t, v.Points, 3)
	require.NotNil(t, v.Bounds)
	require.InDelta(t, 43.252, v.Bounds.Northwest.Latitude, 1e-9)
	require.InDelta(t, -126.453, v.Bounds.Northwest.Longitude, 1e-9)
	require.InDelta(t, 38.5, v.Bounds.Southeast.Latitude, 1e-9)
	require.InDelta(t, -120.2, v.Bounds.Southeast.Longitude, 1e-9)
}

func TestDecodeMalformed(t *testing.T) {
	_, err := execute(t, "decode", "_p~iF")
	require.ErrorIs(t, err, geoutil.ErrTruncated)

	var decodeErr *geoutil.DecodeError
	require.True(t, errors.As(err, &decodeErr))
	require.Equal(t, 5, decodeErr.Offset)
}

func TestEncode(t *testing.T) {
	out, err := execute(t, "encode", "38.5,-120.2", "40.7,-120.95", "43.252,-126.453")
	require.NoError(t, err)
	require.Equal(t, "_p~iF~ps|U_ulLnnqC_mqNvxq`@\n", out)

	out, err = execute(t, "encode", "--polyline-precision", "6", "38.5,-120.2", "40.7,-120.95", "43.252,-126.453")
	require.NoError(t, err)
	require.Equal(t, "_izlhA~rlgdF_{geC~ywl@_kwzCn`{nI\n", out)

	out, err = execute(t, "--format", "yaml", "encode", "0,0")
	require.NoError(t, err)
	var v encodeView
	require.NoError(t, yaml.Unmarshal([]byte(out), &v))
	require.Equal(t, encodeView{Polyline: "??", Precision: 5}, v)
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	encoded, err := execute(t, "encode", "--", "-33.8688,151.2093", "-37.8136,144.9631")
	require.NoError(t, err)

	out, err := execute(t, "--precision", "4", "decode", "--", strings.TrimSpace(encoded))
	require.NoError(t, err)
	require.Equal(t, "-33.8688,151.2093\n-37.8136,144.9631\n", out)
}

func TestUTM(t *testing.T) {
	out, err := execute(t, "--precision", "0", "utm", "40.7128,-74.0060")
	require.NoError(t, err)
	require.Equal(t, "583959,4507351,18T\n", out)

	path := writePlaces(t, places)
	out, err = execute(t, "--places", path, "--format", "json", "utm", "lausanne")
	require.NoError(t, err)
	var v utmView
	require.NoError(t, json.Unmarshal([]byte(out), &v))
	require.Equal(t, "32T", v.Zone)
	require.Equal(t, "N", v.Hemisphere)
	require.NotNil(t, v.Elevation)
	require.Equal(t, 372.5, *v.Elevation)

	out, err = execute(t, "--format", "json", "utm", "--zone", "17", "40,-77.9")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &v))
	require.Equal(t, "17T", v.Zone)
	require.Nil(t, v.Elevation)
}

func TestUTMErrors(t *testing.T) {
	_, err := execute(t, "utm", "85,0")
	require.ErrorIs(t, err, geoutil.ErrOutOfRange)

	_, err = execute(t, "utm", "--zone", "61", "40,-74")
	require.Error(t, err)

	_, err = execute(t, "utm", "--zone", "20", "40,-74")
	require.ErrorIs(t, err, geoutil.ErrOutOfRange)
}

func TestGeo(t *testing.T) {
	out, err := execute(t, "--precision", "3", "geo", "583959.372", "4507350.998", "18T")
	require.NoError(t, err)
	require.Equal(t, "40.713,-74.006\n", out)

	out, err = execute(t, "--format", "yaml", "geo", "334368.634", "6250948.345", "56h")
	require.NoError(t, err)
	var p point
	require.NoError(t, yaml.Unmarshal([]byte(out), &p))
	require.InDelta(t, -33.8688, p.Latitude, 1e-6)
	require.InDelta(t, 151.2093, p.Longitude, 1e-6)

	_, err = execute(t, "geo", "500000", "4500000", "18I")
	require.ErrorContains(t, err, "invalid zone")

	_, err = execute(t, "geo", "50000", "4500000", "18T")
	require.ErrorIs(t, err, geoutil.ErrOutOfRange)
}

func TestBounds(t *testing.T) {
	out, err := execute(t, "--format", "json", "bounds", "--", "10,20", "-5,30", "15,25")
	require.NoError(t, err)
	var v boundsView
	require.NoError(t, json.Unmarshal([]byte(out), &v))
	require.Equal(t, point{Latitude: 15, Longitude: 20}, v.Northwest)
	require.Equal(t, point{Latitude: 15, Longitude: 30}, v.Northeast)
	require.Equal(t, point{Latitude: -5, Longitude: 20}, v.Southwest)
	require.Equal(t, point{Latitude: -5, Longitude: 30}, v.Southeast)
	require.Equal(t, point{Latitude: 5, Longitude: 25}, v.Center)

	out, err = execute(t, "--precision", "0", "bounds", "1,2")
	require.NoError(t, err)
	require.Equal(t, "northwest  1,2\n"+
		"northeast  1,2\n"+
		"southwest  1,2\n"+
		"southeast  1,2\n"+
		"center     1,2\n", out)
}

func TestRandom(t *testing.T) {
	first, err := execute(t, "random", "-n", "3", "--seed", "42")
	require.NoError(t, err)
	second, err := execute(t, "random", "-n", "3", "--seed", "42")
	require.NoError(t, err)
	require.Equal(t, first, second)

	lines := strings.Split(strings.TrimSpace(first), "\n")
	require.Len(t, lines, 3)
	for _, line := range lines {
		fields := strings.Split(line, ",")
		require.Len(t, fields, 2)
	}

	out, err := execute(t, "--format", "json", "random", "--utm", "-n", "5", "--seed", "7")
	require.NoError(t, err)
	var views []utmView
	require.NoError(t, json.Unmarshal([]byte(out), &views))
	require.Len(t, views, 5)
	for _, v := range views {
		zone, err := geoutil.ParseZone(v.Zone)
		require.NoError(t, err)
		require.Equal(t, zone.Hemisphere().String(), v.Hemisphere)
	}

	_, err = execute(t, "random", "--count=-1")
	require.ErrorContains(t, err, "must not be negative")
}

func TestPlacesFile(t *testing.T) {
	_, err := execute(t, "--places", filepath.Join(t.TempDir(), "missing.yaml"), "distance", "1,2", "3,4")
	require.ErrorContains(t, err, "load places")

	path := writePlaces(t, "format: json\nplaces:\n  - name: home\n    lat: 1\n    lon: 2\n")
	out, err := execute(t, "--places", path, "distance", "home", "home")
	require.NoError(t, err)
	var v distanceView
	require.NoError(t, json.Unmarshal([]byte(out), &v))
	require.Zero(t, v.HaversineKm)
	require.InDelta(t, 1, v.Midpoint.Latitude, 1e-9)
	require.InDelta(t, 2, v.Midpoint.Longitude, 1e-9)
}

func TestCommandRequired(t *testing.T) {
	_, err := execute(t)
	var flagsErr *flags.Error
	require.True(t, errors.As(err, &flagsErr))
	require.Equal(t, flags.ErrCommandRequired, flagsErr.Type)
}
