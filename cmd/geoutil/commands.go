package main

import (
	"fmt"
	"math/rand/v2"

	"github.com/tzneal/geoutil"

	"github.com/rs/zerolog/log"
)

type distanceCommand struct {
	app  *app
	Args struct {
		From string `positional-arg-name:"FROM" description:"Start point"`
		To   string `positional-arg-name:"TO" description:"End point"`
	} `positional-args:"yes" required:"yes"`
}

func (c *distanceCommand) Execute([]string) error {
	points, err := c.app.parsePoints([]string{c.Args.From, c.Args.To})
	if err != nil {
		return err
	}
	from, to := points[0], points[1]
	return c.app.render(distanceView{
		From:        newPoint(from),
		To:          newPoint(to),
		SphericalKm: geoutil.DistanceSpherical(from, to),
		HaversineKm: geoutil.DistanceHaversine(from, to),
		Bearing:     geoutil.BearingHaversine(from, to),
		Midpoint:    newPoint(geoutil.Midpoint(from, to)),
	})
}

type decodeCommand struct {
	app               *app
	PolylinePrecision int `long:"polyline-precision" description:"Decimal places of the encoding, 6 for polyline6" default:"5"`
	Args              struct {
		Polyline string `positional-arg-name:"POLYLINE" description:"Encoded polyline"`
	} `positional-args:"yes" required:"yes"`
}

func (c *decodeCommand) Execute([]string) error {
	decoded, err := geoutil.DecodePolylinePrecision(c.Args.Polyline, c.PolylinePrecision)
	if err != nil {
		return err
	}
	log.Debug().
		Int("points", len(decoded)).
		Int("bytes", len(c.Args.Polyline)).
		Msg("Decoded polyline")

	v := decodeView{Points: make(points, len(decoded))}
	for i, p := range decoded {
		v.Points[i] = newPoint(p)
	}
	if len(decoded) > 0 {
		bounds := newBoundsView(geoutil.NewCoordinateBoundsFrom(decoded...))
		v.Bounds = &bounds
	}
	return c.app.render(v)
}

type encodeCommand struct {
	app               *app
	PolylinePrecision int `long:"polyline-precision" description:"Decimal places of the encoding, 6 for polyline6" default:"5"`
	Args              struct {
		Points []string `positional-arg-name:"POINT" description:"Points to encode" required:"1"`
	} `positional-args:"yes" required:"yes"`
}

func (c *encodeCommand) Execute([]string) error {
	points, err := c.app.parsePoints(c.Args.Points)
	if err != nil {
		return err
	}
	return c.app.render(encodeView{
		Polyline:  geoutil.EncodePolylinePrecision(points, c.PolylinePrecision),
		Precision: c.PolylinePrecision,
	})
}

type utmCommand struct {
	app  *app
	Zone int `short:"z" long:"zone" description:"Project into this zone number instead of the computed one; must be a neighbor"`
	Args struct {
		Point string `positional-arg-name:"POINT" description:"Point to project"`
	} `positional-args:"yes" required:"yes"`
}

func (c *utmCommand) Execute([]string) error {
	p, elevated, err := c.app.parsePoint(c.Args.Point)
	if err != nil {
		return err
	}

	projection := geoutil.DefaultProjection
	if c.Zone != 0 {
		override, err := geoutil.NewUTMZoneOverride(c.Zone)
		if err != nil {
			return err
		}
		projection = override
	}

	loc, err := geoutil.ToUTMWith(projection, p.Coordinate)
	if err != nil {
		return err
	}
	log.Debug().
		Str("point", p.String()).
		Str("zone", loc.Zone.String()).
		Msg("Projected point")

	v := newUTMView(loc)
	if elevated {
		v.Elevation = &p.Elevation
	}
	return c.app.render(v)
}

type geoCommand struct {
	app  *app
	Args struct {
		Easting  float64 `positional-arg-name:"EASTING" description:"Easting in meters"`
		Northing float64 `positional-arg-name:"NORTHING" description:"Northing in meters"`
		Zone     string  `positional-arg-name:"ZONE" description:"Zone number and latitude band, e.g. 18T"`
	} `positional-args:"yes" required:"yes"`
}

func (c *geoCommand) Execute([]string) error {
	zone, err := geoutil.ParseZone(c.Args.Zone)
	if err != nil {
		return err
	}
	coord, err := geoutil.ToCoordinate(geoutil.NewUTMLocation(c.Args.Easting, c.Args.Northing, zone))
	if err != nil {
		return err
	}
	return c.app.render(newPoint(coord))
}

type boundsCommand struct {
	app  *app
	Args struct {
		Points []string `positional-arg-name:"POINT" description:"Points to include" required:"1"`
	} `positional-args:"yes" required:"yes"`
}

func (c *boundsCommand) Execute([]string) error {
	points, err := c.app.parsePoints(c.Args.Points)
	if err != nil {
		return err
	}
	return c.app.render(newBoundsView(geoutil.NewCoordinateBoundsFrom(points...)))
}

type randomCommand struct {
	app   *app
	Count int    `short:"n" long:"count" description:"Number of points" default:"1"`
	Seed  uint64 `short:"s" long:"seed" description:"Seed for a reproducible sequence, 0 picks one"`
	UTM   bool   `short:"u" long:"utm" description:"Print UTM locations instead of coordinates"`
}

func (c *randomCommand) Execute([]string) error {
	if c.Count < 0 {
		return fmt.Errorf("count must not be negative, got %d", c.Count)
	}
	seed := c.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	log.Debug().Uint64("seed", seed).Int("count", c.Count).Msg("Generating random points")
	r := rand.New(rand.NewPCG(seed, seed))

	if c.UTM {
		views := make(utmViews, c.Count)
		for i := range views {
			loc, err := geoutil.RandomUTMLocation(r)
			if err != nil {
				return err
			}
			views[i] = newUTMView(loc)
		}
		return c.app.render(views)
	}

	ps := make(points, c.Count)
	for i := range ps {
		ps[i] = newPoint(geoutil.RandomCoordinate(r))
	}
	return c.app.render(ps)
}
