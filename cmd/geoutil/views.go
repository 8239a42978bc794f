package main

import (
	"strconv"
	"strings"

	"github.com/tzneal/geoutil"
)

func formatFloat(v float64, precision int) string {
	if precision < 0 {
		precision = geoutil.DefaultPrecision
	}
	return strconv.FormatFloat(v, 'f', precision, 64)
}

type point struct {
	Latitude  float64  `json:"lat" yaml:"lat"`
	Longitude float64  `json:"lon" yaml:"lon"`
	Elevation *float64 `json:"elevation,omitempty" yaml:"elevation,omitempty"`
}

func newPoint(c geoutil.Coordinate) point {
	return point{Latitude: c.Latitude, Longitude: c.Longitude}
}

func newElevatedPoint(c geoutil.ElevatedCoordinate, elevated bool) point {
	p := newPoint(c.Coordinate)
	if elevated {
		p.Elevation = &c.Elevation
	}
	return p
}

func (p point) Text(precision int) string {
	if p.Elevation != nil {
		return geoutil.NewElevatedCoordinate(p.Latitude, p.Longitude, *p.Elevation).Format(precision)
	}
	return geoutil.NewCoordinate(p.Latitude, p.Longitude).Format(precision)
}

type points []point

func (ps points) Text(precision int) string {
	lines := make([]string, len(ps))
	for i, p := range ps {
		lines[i] = p.Text(precision)
	}
	return strings.Join(lines, "\n")
}

// labeled renders label / value rows with aligned values.
func labeled(rows ...[2]string) string {
	width := 0
	for _, r := range rows {
		width = max(width, len(r[0]))
	}
	var sb strings.Builder
	for i, r := range rows {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(r[0])
		sb.WriteString(strings.Repeat(" ", width-len(r[0])+2))
		sb.WriteString(r[1])
	}
	return sb.String()
}

type distanceView struct {
	From        point   `json:"from" yaml:"from"`
	To          point   `json:"to" yaml:"to"`
	SphericalKm float64 `json:"spherical_km" yaml:"spherical_km"`
	HaversineKm float64 `json:"haversine_km" yaml:"haversine_km"`
	Bearing     float64 `json:"bearing" yaml:"bearing"`
	Midpoint    point   `json:"midpoint" yaml:"midpoint"`
}

func (v distanceView) Text(precision int) string {
	return labeled(
		[2]string{"spherical", formatFloat(v.SphericalKm, precision) + " km"},
		[2]string{"haversine", formatFloat(v.HaversineKm, precision) + " km"},
		[2]string{"bearing", formatFloat(v.Bearing, precision)},
		[2]string{"midpoint", v.Midpoint.Text(precision)},
	)
}

type boundsView struct {
	Northwest point `json:"northwest" yaml:"northwest"`
	Northeast point `json:"northeast" yaml:"northeast"`
	Southwest point `json:"southwest" yaml:"southwest"`
	Southeast point `json:"southeast" yaml:"southeast"`
	Center    point `json:"center" yaml:"center"`
}

func newBoundsView(b *geoutil.CoordinateBounds) boundsView {
	return boundsView{
		Northwest: newPoint(b.Northwest()),
		Northeast: newPoint(b.Northeast()),
		Southwest: newPoint(b.Southwest()),
		Southeast: newPoint(b.Southeast()),
		Center:    newPoint(b.Center()),
	}
}

func (v boundsView) Text(precision int) string {
	return labeled(
		[2]string{"northwest", v.Northwest.Text(precision)},
		[2]string{"northeast", v.Northeast.Text(precision)},
		[2]string{"southwest", v.Southwest.Text(precision)},
		[2]string{"southeast", v.Southeast.Text(precision)},
		[2]string{"center", v.Center.Text(precision)},
	)
}

type decodeView struct {
	Points points      `json:"points" yaml:"points"`
	Bounds *boundsView `json:"bounds,omitempty" yaml:"bounds,omitempty"`
}

func (v decodeView) Text(precision int) string {
	return v.Points.Text(precision)
}

type encodeView struct {
	Polyline  string `json:"polyline" yaml:"polyline"`
	Precision int    `json:"precision" yaml:"precision"`
}

func (v encodeView) Text(int) string {
	return v.Polyline
}

type utmView struct {
	Easting    float64  `json:"easting" yaml:"easting"`
	Northing   float64  `json:"northing" yaml:"northing"`
	Elevation  *float64 `json:"elevation,omitempty" yaml:"elevation,omitempty"`
	Zone       string   `json:"zone" yaml:"zone"`
	Hemisphere string   `json:"hemisphere" yaml:"hemisphere"`

	zone geoutil.Zone
}

func newUTMView(l geoutil.UTMLocation) utmView {
	return utmView{
		Easting:    l.Easting,
		Northing:   l.Northing,
		Zone:       l.Zone.String(),
		Hemisphere: l.Zone.Hemisphere().String(),
		zone:       l.Zone,
	}
}

func (v utmView) Text(precision int) string {
	if v.Elevation != nil {
		return geoutil.NewElevatedUTMLocation(v.Easting, v.Northing, *v.Elevation, v.zone).Format(precision)
	}
	return geoutil.NewUTMLocation(v.Easting, v.Northing, v.zone).Format(precision)
}

type utmViews []utmView

func (vs utmViews) Text(precision int) string {
	lines := make([]string, len(vs))
	for i, v := range vs {
		lines[i] = v.Text(precision)
	}
	return strings.Join(lines, "\n")
}
