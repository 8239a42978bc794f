package main

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/tzneal/geoutil"
)

// parsePoint resolves a place name or a literal "lat,lon[,elevation]". The
// boolean reports whether an elevation was given.
func (a *app) parsePoint(s string) (geoutil.ElevatedCoordinate, bool, error) {
	if p, ok := a.cfg.Lookup(s); ok {
		return p.Coordinate(), p.Elevation != nil, nil
	}

	fields := strings.Split(s, ",")
	if len(fields) != 2 && len(fields) != 3 {
		return geoutil.ElevatedCoordinate{}, false, fmt.Errorf("invalid point %q: want lat,lon[,elevation] or a place name", s)
	}
	values := make([]float64, 3)
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return geoutil.ElevatedCoordinate{}, false, fmt.Errorf("invalid point %q: bad number %q", s, f)
		}
		values[i] = v
	}
	return geoutil.NewElevatedCoordinate(values[0], values[1], values[2]), len(fields) == 3, nil
}

func (a *app) parsePoints(args []string) ([]geoutil.Coordinate, error) {
	points := make([]geoutil.Coordinate, 0, len(args))
	for _, s := range args {
		c, _, err := a.parsePoint(s)
		if err != nil {
			return nil, err
		}
		points = append(points, c.Coordinate)
	}
	return points, nil
}
