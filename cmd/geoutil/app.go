package main

import (
	"fmt"
	"io"

	"github.com/tzneal/geoutil/internal/config"
	"github.com/tzneal/geoutil/internal/logger"
	"github.com/tzneal/geoutil/internal/render"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"
)

// Options are the flags shared by every command.
type Options struct {
	Logger logger.Logger `group:"Logger options"`

	Places    string `short:"p" long:"places"    env:"GEOUTIL_PLACES" description:"Path to a YAML file of named places"`
	Format    string `short:"f" long:"format"    env:"GEOUTIL_FORMAT" description:"Output format" choice:"text" choice:"json" choice:"yaml"`
	Precision int    `short:"P" long:"precision" description:"Decimal places in text output, negative for the default" default:"-1"`
}

type app struct {
	opts Options
	out  io.Writer
	cfg  *config.Config
}

func newParser(a *app, options flags.Options) *flags.Parser {
	parser := flags.NewParser(&a.opts, options)
	parser.CommandHandler = a.run

	commands := []struct {
		name, short, long string
		data              any
	}{
		{"distance", "Distance between two points",
			"Prints the spherical and haversine distances in kilometers, the initial bearing and the midpoint.",
			&distanceCommand{app: a}},
		{"decode", "Decode an encoded polyline",
			"Prints the points of an encoded polyline and their bounds.",
			&decodeCommand{app: a}},
		{"encode", "Encode points as a polyline",
			"Prints the encoded polyline of the given points.",
			&encodeCommand{app: a}},
		{"utm", "Project a point to UTM",
			"Prints the UTM easting, northing and zone of a point.",
			&utmCommand{app: a}},
		{"geo", "Convert a UTM location to latitude and longitude",
			"Prints the latitude and longitude of a UTM easting, northing and zone such as 18T.",
			&geoCommand{app: a}},
		{"bounds", "Bounding box of points",
			"Prints the corners and center of the box containing the given points.",
			&boundsCommand{app: a}},
		{"random", "Random points",
			"Prints uniformly distributed random coordinates or UTM locations.",
			&randomCommand{app: a}},
	}
	for _, c := range commands {
		if _, err := parser.AddCommand(c.name, c.short, c.long, c.data); err != nil {
			panic(err)
		}
	}
	return parser
}

// run prepares logging and the places file before executing a command.
func (a *app) run(cmd flags.Commander, args []string) error {
	if cmd == nil {
		return nil
	}

	a.opts.Logger.Setup()

	if a.opts.Places != "" {
		cfg, err := config.Load(a.opts.Places)
		if err != nil {
			return fmt.Errorf("load places: %w", err)
		}
		a.cfg = cfg
		log.Debug().
			Str("path", a.opts.Places).
			Int("places", len(cfg.Places)).
			Msg("Loaded places")
	}

	return cmd.Execute(args)
}

func (a *app) render(v render.Texter) error {
	r := render.Renderer{
		Out:       a.out,
		Format:    a.opts.Format,
		Precision: a.opts.Precision,
	}
	if a.cfg != nil {
		if r.Format == "" {
			r.Format = a.cfg.Format
		}
		if r.Precision < 0 {
			r.Precision = a.cfg.Precision
		}
	}
	return r.Render(v)
}
